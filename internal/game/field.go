package game

import (
	"math"

	"github.com/vovakirdan/ink-soccer/internal/core"
)

// Side identifies one half of the field and the player defending it.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// blockZoneTop is the y of both block zones, truncated to a whole unit so
// the zone edges sit on integer coordinates.
var blockZoneTop = math.Trunc(GoalCenterY - BlockZoneHeight*0.5)

// Block zones straddle each goal line, centered vertically on the goal mouth.
var (
	leftBlockZone = core.NewRectF(
		math.Trunc(GoalLineXLeft-BlockZoneDepth*0.5),
		blockZoneTop,
		BlockZoneDepth,
		BlockZoneHeight,
	)
	rightBlockZone = core.NewRectF(
		math.Trunc(GoalLineXRight-BlockZoneDepth*0.5),
		blockZoneTop,
		BlockZoneDepth,
		BlockZoneHeight,
	)
)

// fieldCorner describes one rounded field corner: the arc center plus the
// sign tests that select its quadrant.
type fieldCorner struct {
	center core.Vec
	xLess  bool // quadrant is x < center.X (otherwise x > center.X)
	yLess  bool // quadrant is y < center.Y (otherwise y > center.Y)
}

// fieldCorners lists the four rounded corners in reading order.
var fieldCorners = [4]fieldCorner{
	{center: core.V(FieldMargin+FieldCornerRadius, FieldMargin+FieldCornerRadius), xLess: true, yLess: true},
	{center: core.V(FieldWidth-FieldMargin-FieldCornerRadius, FieldMargin+FieldCornerRadius), xLess: false, yLess: true},
	{center: core.V(FieldMargin+FieldCornerRadius, FieldHeight-FieldMargin-FieldCornerRadius), xLess: true, yLess: false},
	{center: core.V(FieldWidth-FieldMargin-FieldCornerRadius, FieldHeight-FieldMargin-FieldCornerRadius), xLess: false, yLess: false},
}

// inQuadrant reports whether p lies in this corner's quadrant of the field.
func (c fieldCorner) inQuadrant(p core.Vec) bool {
	inX := p.X > c.center.X
	if c.xLess {
		inX = p.X < c.center.X
	}
	inY := p.Y > c.center.Y
	if c.yLess {
		inY = p.Y < c.center.Y
	}
	return inX && inY
}

// KickoffSpot returns the point where the ball is pinned while the given
// side kicks off: the center of that side's half.
func KickoffSpot(side Side) core.Vec {
	if side == SideLeft {
		return core.V(FieldWidth*0.25, FieldHeight*0.5)
	}
	return core.V(FieldWidth*0.75, FieldHeight*0.5)
}

// PointInSide reports whether p lies in the given side's half of the field.
// The midline belongs to both halves.
func PointInSide(p core.Vec, side Side) bool {
	mid := FieldWidth * 0.5
	if side == SideLeft {
		return p.X <= mid
	}
	return p.X >= mid
}

// InBlockZone reports whether p lies inside either goal-approach block zone.
func InBlockZone(p core.Vec) bool {
	return core.PointInRoundedRect(p, leftBlockZone, BlockZoneRadius) ||
		core.PointInRoundedRect(p, rightBlockZone, BlockZoneRadius)
}

// BlockZone returns the block zone rectangle for the given side,
// for presentation use.
func BlockZone(side Side) core.RectF {
	if side == SideLeft {
		return leftBlockZone
	}
	return rightBlockZone
}

// ShieldCenter returns the center of the goal shield for the given side:
// a fixed inset in front of the goal mouth.
func ShieldCenter(side Side) core.Vec {
	if side == SideLeft {
		return core.V(GoalLineXLeft+ShieldInsetX, FieldHeight*0.5)
	}
	return core.V(GoalLineXRight-ShieldInsetX, FieldHeight*0.5)
}
