package core

// RectF is an axis-aligned rectangle in field coordinates.
type RectF struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRectF creates a new rectangle with the given position and dimensions.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r RectF) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains returns true if the point lies inside the rectangle (edges inclusive).
func (r RectF) Contains(p Vec) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// DistanceToSegment returns the distance from point p to the segment ab,
// along with the closest point on the segment and the parametric position
// t in [0,1] of that point. A degenerate segment (a == b) reports the
// distance to a with t = 0.
func DistanceToSegment(p, a, b Vec) (dist float64, closest Vec, t float64) {
	ap := p.Sub(a)
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return ap.Len(), a, 0
	}
	t = ClampF(ap.Dot(ab)/lenSq, 0, 1)
	closest = a.Add(ab.Scale(t))
	return p.Sub(closest).Len(), closest, t
}

// SegmentNormal returns the unit vector perpendicular to b-a.
// A degenerate segment falls back to (0,-1).
func SegmentNormal(a, b Vec) Vec {
	d := b.Sub(a)
	n := Vec{X: -d.Y, Y: d.X}
	if n.LenSq() == 0 {
		return Vec{X: 0, Y: -1}
	}
	return n.Normalize()
}

// PointInRoundedRect reports whether p lies inside rect after rounding its
// corners with the given radius. The point is inside the rounded shape iff
// it is inside the bounding box and within radius of the clamped point of
// the inner core box.
func PointInRoundedRect(p Vec, rect RectF, radius float64) bool {
	if !rect.Contains(p) {
		return false
	}
	cx := ClampF(p.X, rect.X+radius, rect.Right()-radius)
	cy := ClampF(p.Y, rect.Y+radius, rect.Bottom()-radius)
	dx := p.X - cx
	dy := p.Y - cy
	return dx*dx+dy*dy <= radius*radius
}

// ClampSegmentEnd returns the endpoint of the segment from a toward b,
// shortened to at most maxLen. Segments already short enough (or degenerate)
// keep their original endpoint.
func ClampSegmentEnd(a, b Vec, maxLen float64) Vec {
	delta := b.Sub(a)
	dist := delta.Len()
	if dist <= maxLen || dist <= 1e-6 {
		return b
	}
	return a.Add(delta.Scale(maxLen / dist))
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts an int value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
