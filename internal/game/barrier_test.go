package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/ink-soccer/internal/core"
)

func TestAppendStrokeSubdivides(t *testing.T) {
	var l BarrierLedger
	l.AppendStroke(core.V(100, 100), core.V(148, 100), 0)

	// 48 units at step 8 -> 6 pieces of 8 units each.
	if got := len(l.Segments()); got != 6 {
		t.Fatalf("segment count = %d, expected 6", got)
	}
	if !almostEqual(l.InkUsed(), 48) {
		t.Errorf("inkUsed = %v, expected 48", l.InkUsed())
	}

	// Pieces are contiguous in stroke order.
	segs := l.Segments()
	for i := 1; i < len(segs); i++ {
		if !vecAlmostEqual(segs[i].A, segs[i-1].B) {
			t.Errorf("segment %d not contiguous: %v vs %v", i, segs[i].A, segs[i-1].B)
		}
	}

	last, ok := l.LastPoint()
	if !ok || !vecAlmostEqual(last, core.V(148, 100)) {
		t.Errorf("last point = %v (%v), expected (148,100)", last, ok)
	}
}

func TestInkBudgetNeverExceeded(t *testing.T) {
	var l BarrierLedger

	// Draw far more than the budget allows, in several strokes.
	for i := 0; i < 5; i++ {
		y := 100.0 + float64(i)*20
		l.AppendStroke(core.V(100, y), core.V(400, y), 0)
		if l.InkUsed() > MaxInkLength {
			t.Fatalf("ink budget exceeded after stroke %d: %v > %v", i, l.InkUsed(), MaxInkLength)
		}
	}

	// The truncated stroke still committed whole pieces only: the used ink
	// equals the exact sum of segment lengths.
	sum := 0.0
	for _, seg := range l.Segments() {
		sum += seg.Length
	}
	if !almostEqual(sum, l.InkUsed()) {
		t.Errorf("inkUsed %v != sum of segment lengths %v", l.InkUsed(), sum)
	}
}

func TestStrokeTruncationDropsPartialPiece(t *testing.T) {
	var l BarrierLedger

	// Fill the budget almost exactly, then try one more long stroke.
	l.AppendStroke(core.V(100, 100), core.V(100+MaxInkLength-4, 100), 0)
	before := len(l.Segments())
	l.AppendStroke(core.V(100, 200), core.V(180, 200), 0)

	// Any appended piece is a whole step; no partial-length piece exists.
	for _, seg := range l.Segments()[before:] {
		if seg.Length > 4+1e-6 {
			t.Errorf("piece of length %v appended past the budget", seg.Length)
		}
	}
	if l.InkUsed() > MaxInkLength {
		t.Errorf("inkUsed = %v exceeds budget %v", l.InkUsed(), MaxInkLength)
	}
}

func TestDegenerateStrokeIsNoOp(t *testing.T) {
	var l BarrierLedger
	l.AppendStroke(core.V(50, 50), core.V(50, 50), 0)
	if len(l.Segments()) != 0 || l.InkUsed() != 0 {
		t.Errorf("degenerate stroke appended segments: %d, ink %v", len(l.Segments()), l.InkUsed())
	}
}

func TestExpireRemovesOldSegments(t *testing.T) {
	var l BarrierLedger
	l.AppendStroke(core.V(100, 100), core.V(132, 100), 0)
	l.AppendStroke(core.V(100, 120), core.V(132, 120), 1.5)

	l.Expire(BarrierLifetime + 0.01)

	for _, seg := range l.Segments() {
		if seg.CreatedAt != 1.5 {
			t.Errorf("expired segment survived: createdAt %v", seg.CreatedAt)
		}
	}

	sum := 0.0
	for _, seg := range l.Segments() {
		sum += seg.Length
	}
	if !almostEqual(sum, l.InkUsed()) {
		t.Errorf("inkUsed %v != sum of remaining lengths %v", l.InkUsed(), sum)
	}
}

func TestExpireIdempotent(t *testing.T) {
	var l BarrierLedger
	l.AppendStroke(core.V(100, 100), core.V(164, 100), 0)
	l.AppendStroke(core.V(100, 130), core.V(164, 130), 1.9)

	l.Expire(2.5)
	countAfterFirst := len(l.Segments())
	inkAfterFirst := l.InkUsed()

	l.Expire(2.5)
	if len(l.Segments()) != countAfterFirst {
		t.Errorf("second expire changed segment count: %d vs %d", len(l.Segments()), countAfterFirst)
	}
	if !almostEqual(l.InkUsed(), inkAfterFirst) {
		t.Errorf("second expire changed inkUsed: %v vs %v", l.InkUsed(), inkAfterFirst)
	}
}

func TestClearZeroesLedger(t *testing.T) {
	var l BarrierLedger
	l.AppendStroke(core.V(100, 100), core.V(164, 100), 0)
	l.Clear()

	if len(l.Segments()) != 0 || l.InkUsed() != 0 {
		t.Errorf("clear left segments=%d ink=%v", len(l.Segments()), l.InkUsed())
	}
	if !almostEqual(l.InkRemaining(), 1) {
		t.Errorf("ink remaining after clear = %v, expected 1", l.InkRemaining())
	}
}

func TestBarrierAlphaFades(t *testing.T) {
	seg := BarrierSegment{A: core.V(0, 0), B: core.V(8, 0), CreatedAt: 0, Length: 8}

	if a := seg.Alpha(0); !almostEqual(a, 1) {
		t.Errorf("fresh alpha = %v, expected 1", a)
	}
	if a := seg.Alpha(BarrierLifetime / 2); !almostEqual(a, 0.5) {
		t.Errorf("half-life alpha = %v, expected 0.5", a)
	}
	if a := seg.Alpha(BarrierLifetime * 2); a != 0 {
		t.Errorf("expired alpha = %v, expected 0", a)
	}
	if seg.Alive(BarrierLifetime) {
		t.Error("segment at exact lifetime should be dead")
	}
}

func TestLastPointForFullyTruncatedStroke(t *testing.T) {
	var l BarrierLedger

	// Exhaust the budget completely.
	l.AppendStroke(core.V(100, 100), core.V(100+math.Ceil(MaxInkLength)+40, 100), 0)
	used := l.InkUsed()

	// A further stroke commits nothing but still anchors the chain one unit
	// along the stroke direction.
	l.AppendStroke(core.V(200, 300), core.V(280, 300), 0)
	if !almostEqual(l.InkUsed(), used) {
		t.Errorf("stroke past budget changed ink: %v vs %v", l.InkUsed(), used)
	}
	last, ok := l.LastPoint()
	if !ok || !vecAlmostEqual(last, core.V(201, 300)) {
		t.Errorf("anchor = %v, expected (201,300)", last)
	}
}
