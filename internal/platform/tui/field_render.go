package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ink-soccer/internal/core"
	"github.com/vovakirdan/ink-soccer/internal/game"
)

// viewport maps field coordinates to screen cells. The top screen row is the
// score line and the bottom row is the ink meter; the field scales into the
// rows between them.
type viewport struct {
	x, y   int     // top-left cell of the field area
	w, h   int     // field area in cells
	sx, sy float64 // cells per field unit
}

const (
	hudRows   = 1
	meterRows = 1
)

func newViewport(width, height int) viewport {
	w := width
	h := height - hudRows - meterRows
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	return viewport{
		x:  0,
		y:  hudRows,
		w:  w,
		h:  h,
		sx: float64(w-1) / game.FieldWidth,
		sy: float64(h-1) / game.FieldHeight,
	}
}

// toCell converts a field point to a screen cell.
func (v viewport) toCell(p core.Vec) (int, int) {
	return v.x + int(math.Round(p.X*v.sx)), v.y + int(math.Round(p.Y*v.sy))
}

// toField converts a screen cell back to field coordinates. Returns false
// for cells outside the field area.
func (v viewport) toField(cx, cy int) (core.Vec, bool) {
	if v.sx <= 0 || v.sy <= 0 {
		return core.Vec{}, false
	}
	p := core.V(float64(cx-v.x)/v.sx, float64(cy-v.y)/v.sy)
	if p.X < 0 || p.X > game.FieldWidth || p.Y < 0 || p.Y > game.FieldHeight {
		return core.Vec{}, false
	}
	return p, true
}

// drawMatch renders a full match snapshot into the screen buffer.
func drawMatch(s *core.Screen, snap game.Snapshot, vp viewport, showZones bool, banner string) {
	s.Clear()

	drawHUD(s, snap)
	drawPitch(s, vp)
	if showZones {
		drawBlockZone(s, vp, game.SideLeft)
		drawBlockZone(s, vp, game.SideRight)
	}
	if snap.ShieldActive {
		drawShield(s, vp, game.SideLeft)
		drawShield(s, vp, game.SideRight)
	}
	for _, b := range snap.Barriers {
		drawBarrier(s, vp, b)
	}
	if snap.HasPad {
		drawPad(s, vp, snap.Pad)
	}
	if snap.BoostDragActive {
		ax, ay := vp.toCell(snap.BoostDragA)
		bx, by := vp.toCell(snap.BoostDragB)
		s.DrawLine(ax, ay, bx, by, '·', core.ColorBoost)
	}

	bx, by := vp.toCell(snap.BallPos)
	s.Set(bx, by, '●', core.ColorBall)

	drawInkMeter(s, snap.InkRemaining)
	drawBanner(s, vp, snap, banner)
}

func drawHUD(s *core.Screen, snap game.Snapshot) {
	score := fmt.Sprintf("LEFT %d : %d RIGHT", snap.LeftScore, snap.RightScore)
	s.DrawTextCentered(0, score, core.ColorText)
	s.DrawText(1, 0, "you: "+snap.ControlledSide.String(), core.ColorMuted)

	phase := snap.Phase.String()
	s.DrawText(s.Width()-len(phase)-2, 0, phase, core.ColorMuted)
}

// drawPitch draws the rounded field boundary, goal mouths, and midline.
func drawPitch(s *core.Screen, vp viewport) {
	const (
		mg = game.FieldMargin
		cr = game.FieldCornerRadius
		fw = game.FieldWidth
		fh = game.FieldHeight
	)

	// Straight edges. The left and right edges skip the goal openings.
	hline(s, vp, core.V(mg+cr, mg), core.V(fw-mg-cr, mg), '─', core.ColorPitch)
	hline(s, vp, core.V(mg+cr, fh-mg), core.V(fw-mg-cr, fh-mg), '─', core.ColorPitch)
	vline(s, vp, core.V(mg, mg+cr), core.V(mg, game.GoalTop), '│', core.ColorPitch)
	vline(s, vp, core.V(mg, game.GoalBottom), core.V(mg, fh-mg-cr), '│', core.ColorPitch)
	vline(s, vp, core.V(fw-mg, mg+cr), core.V(fw-mg, game.GoalTop), '│', core.ColorPitch)
	vline(s, vp, core.V(fw-mg, game.GoalBottom), core.V(fw-mg, fh-mg-cr), '│', core.ColorPitch)

	// Corner arcs, one quadrant each.
	drawArc(s, vp, core.V(mg+cr, mg+cr), cr, math.Pi, 1.5*math.Pi)
	drawArc(s, vp, core.V(fw-mg-cr, mg+cr), cr, 1.5*math.Pi, 2*math.Pi)
	drawArc(s, vp, core.V(fw-mg-cr, fh-mg-cr), cr, 0, 0.5*math.Pi)
	drawArc(s, vp, core.V(mg+cr, fh-mg-cr), cr, 0.5*math.Pi, math.Pi)

	// Goal mouths: three-sided boxes opening into the field.
	drawGoalMouth(s, vp, game.SideLeft)
	drawGoalMouth(s, vp, game.SideRight)

	// Dotted midline.
	cx, cy0 := vp.toCell(core.V(fw/2, mg))
	_, cy1 := vp.toCell(core.V(fw/2, fh-mg))
	for cy := cy0; cy <= cy1; cy += 2 {
		s.Set(cx, cy, '·', core.ColorPitchDim)
	}
}

func drawGoalMouth(s *core.Screen, vp viewport, side game.Side) {
	lineX := game.GoalLineXLeft
	outerX := lineX - game.GoalDepth
	if side == game.SideRight {
		lineX = game.GoalLineXRight
		outerX = lineX + game.GoalDepth
	}

	vline(s, vp, core.V(outerX, game.GoalTop), core.V(outerX, game.GoalBottom), '║', core.ColorGoal)
	hline(s, vp, core.V(math.Min(outerX, lineX), game.GoalTop), core.V(math.Max(outerX, lineX), game.GoalTop), '═', core.ColorGoal)
	hline(s, vp, core.V(math.Min(outerX, lineX), game.GoalBottom), core.V(math.Max(outerX, lineX), game.GoalBottom), '═', core.ColorGoal)
}

func drawBlockZone(s *core.Screen, vp viewport, side game.Side) {
	zone := game.BlockZone(side)

	frontX := zone.Right()
	innerX := game.GoalLineXLeft
	if side == game.SideRight {
		frontX = zone.X
		innerX = game.GoalLineXRight
	}

	vline(s, vp, core.V(frontX, zone.Y), core.V(frontX, zone.Bottom()), '┊', core.ColorZone)
	hline(s, vp, core.V(math.Min(frontX, innerX), zone.Y), core.V(math.Max(frontX, innerX), zone.Y), '┄', core.ColorZone)
	hline(s, vp, core.V(math.Min(frontX, innerX), zone.Bottom()), core.V(math.Max(frontX, innerX), zone.Bottom()), '┄', core.ColorZone)
}

func drawShield(s *core.Screen, vp viewport, side game.Side) {
	drawCircle(s, vp, game.ShieldCenter(side), game.ShieldRadius, '◦', core.ColorShield)
}

func drawBarrier(s *core.Screen, vp viewport, b game.BarrierView) {
	r, c := '█', core.ColorBarrier
	if b.Alpha < 0.5 {
		r, c = '▒', core.ColorBarrierDim
	}
	ax, ay := vp.toCell(b.A)
	bx, by := vp.toCell(b.B)
	s.DrawLine(ax, ay, bx, by, r, c)
}

func drawPad(s *core.Screen, vp viewport, pad game.PadView) {
	ax, ay := vp.toCell(pad.A)
	bx, by := vp.toCell(pad.B)
	s.DrawLine(ax, ay, bx, by, '▬', core.ColorBoost)
	// The push direction points from the release end toward the anchor.
	s.Set(ax, ay, arrowRune(pad.Dir), core.ColorBoost)
}

// arrowRune picks the arrow closest to the impulse direction.
func arrowRune(d core.Vec) rune {
	arrows := []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	angle := math.Atan2(d.Y, d.X)
	idx := int(math.Round(angle/(math.Pi/4))) % 8
	if idx < 0 {
		idx += 8
	}
	return arrows[idx]
}

func drawInkMeter(s *core.Screen, remaining float64) {
	const barWidth = 20
	y := s.Height() - 1
	filled := int(math.Round(remaining * barWidth))
	filled = core.Clamp(filled, 0, barWidth)

	s.DrawText(1, y, "ink ", core.ColorMuted)
	for i := 0; i < barWidth; i++ {
		r, c := '░', core.ColorBarrierDim
		if i < filled {
			r, c = '█', core.ColorBarrier
		}
		s.Set(5+i, y, r, c)
	}
	s.DrawText(5+barWidth+1, y, fmt.Sprintf("%3.0f%%", remaining*100), core.ColorMuted)
}

func drawBanner(s *core.Screen, vp viewport, snap game.Snapshot, banner string) {
	mid := vp.y + vp.h/2

	switch snap.Phase {
	case game.PhaseCountdown:
		s.DrawTextCentered(mid-1, fmt.Sprintf("— %d —", snap.CountdownValue), core.ColorAccent)
		s.DrawTextCentered(mid+1, "kickoff: "+snap.KickoffSide.String(), core.ColorMuted)
	case game.PhaseWaitingTouch:
		s.DrawTextCentered(mid+6, "boost the ball from the "+snap.KickoffSide.String()+" half to start", core.ColorMuted)
	}

	if banner != "" {
		s.DrawTextCentered(mid-3, banner, core.ColorAccent)
	}
}

// hline draws a horizontal field-space segment.
func hline(s *core.Screen, vp viewport, a, b core.Vec, r rune, c core.Color) {
	ax, ay := vp.toCell(a)
	bx, _ := vp.toCell(b)
	if bx < ax {
		ax, bx = bx, ax
	}
	s.DrawHLine(ax, ay, bx-ax+1, r, c)
}

// vline draws a vertical field-space segment.
func vline(s *core.Screen, vp viewport, a, b core.Vec, r rune, c core.Color) {
	ax, ay := vp.toCell(a)
	_, by := vp.toCell(b)
	if by < ay {
		ay, by = by, ay
	}
	s.DrawVLine(ax, ay, by-ay+1, r, c)
}

// drawArc plots a circular arc by sampling.
func drawArc(s *core.Screen, vp viewport, center core.Vec, radius, from, to float64) {
	const samples = 14
	for i := 0; i <= samples; i++ {
		a := from + (to-from)*float64(i)/samples
		p := center.Add(core.V(math.Cos(a)*radius, math.Sin(a)*radius))
		cx, cy := vp.toCell(p)
		s.Set(cx, cy, '·', core.ColorPitch)
	}
}

// drawCircle plots a full circle by sampling.
func drawCircle(s *core.Screen, vp viewport, center core.Vec, radius float64, r rune, c core.Color) {
	const samples = 28
	for i := 0; i < samples; i++ {
		a := 2 * math.Pi * float64(i) / samples
		p := center.Add(core.V(math.Cos(a)*radius, math.Sin(a)*radius))
		cx, cy := vp.toCell(p)
		s.Set(cx, cy, r, c)
	}
}
