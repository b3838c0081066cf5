package tui

import (
	"math"
	"testing"

	"github.com/vovakirdan/ink-soccer/internal/core"
	"github.com/vovakirdan/ink-soccer/internal/game"
)

func TestViewportCorners(t *testing.T) {
	vp := newViewport(110, 67)

	x, y := vp.toCell(core.V(0, 0))
	if x != vp.x || y != vp.y {
		t.Errorf("origin mapped to (%d,%d), want (%d,%d)", x, y, vp.x, vp.y)
	}

	x, y = vp.toCell(core.V(game.FieldWidth, game.FieldHeight))
	if x != vp.x+vp.w-1 || y != vp.y+vp.h-1 {
		t.Errorf("far corner mapped to (%d,%d), want (%d,%d)", x, y, vp.x+vp.w-1, vp.y+vp.h-1)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	vp := newViewport(120, 50)

	// A cell mapped back to field space must land within half a cell of
	// the original point's cell.
	for _, p := range []core.Vec{
		core.V(550, 325),
		core.V(40, 40),
		core.V(1060, 610),
	} {
		cx, cy := vp.toCell(p)
		q, ok := vp.toField(cx, cy)
		if !ok {
			t.Fatalf("toField(%d,%d) not in field", cx, cy)
		}
		if math.Abs(q.X-p.X) > 1/vp.sx || math.Abs(q.Y-p.Y) > 1/vp.sy {
			t.Errorf("round trip of %v gave %v", p, q)
		}
	}
}

func TestViewportRejectsOutside(t *testing.T) {
	vp := newViewport(100, 40)

	if _, ok := vp.toField(-5, 10); ok {
		t.Error("cell left of the field area should not map")
	}
	if _, ok := vp.toField(10, 0); ok {
		t.Error("HUD row should not map into the field")
	}
}

func TestArrowRune(t *testing.T) {
	cases := []struct {
		dir  core.Vec
		want rune
	}{
		{core.V(1, 0), '→'},
		{core.V(-1, 0), '←'},
		{core.V(0, 1), '↓'},
		{core.V(0, -1), '↑'},
	}
	for _, tc := range cases {
		if got := arrowRune(tc.dir); got != tc.want {
			t.Errorf("arrowRune(%v) = %c, want %c", tc.dir, got, tc.want)
		}
	}
}
