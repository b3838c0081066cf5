package game

import "github.com/vovakirdan/ink-soccer/internal/core"

// BarrierSegment is one fixed-length piece of a drawn ink wall. Segments are
// immutable after creation and disappear once their lifetime elapses.
type BarrierSegment struct {
	A         core.Vec
	B         core.Vec
	CreatedAt float64
	Length    float64
}

// Age returns how long the segment has existed.
func (s BarrierSegment) Age(now float64) float64 {
	return now - s.CreatedAt
}

// Alive reports whether the segment has not yet expired.
func (s BarrierSegment) Alive(now float64) bool {
	return s.Age(now) < BarrierLifetime
}

// Alpha returns the remaining-life fraction in [0,1], used by the renderer
// to fade old segments.
func (s BarrierSegment) Alpha(now float64) float64 {
	return core.ClampF(1.0-s.Age(now)/BarrierLifetime, 0, 1)
}

// BarrierLedger owns the live set of ink wall segments and the shared ink
// budget. Strokes append segments until the budget is exhausted; expiry
// returns their ink to the pool.
type BarrierLedger struct {
	segments  []BarrierSegment
	inkUsed   float64
	lastPoint core.Vec
	hasLast   bool
}

// AppendStroke subdivides the stroke fragment p0->p1 into fixed-length pieces
// and appends each piece while it still fits in the ink budget. Subdivision
// stops at the first piece that would exceed the budget; the partial stroke
// is kept, the rest is silently dropped. Degenerate fragments are no-ops.
//
// The ledger remembers the last committed point so the caller can chain
// subsequent drag-move events into a contiguous stroke.
func (l *BarrierLedger) AppendStroke(p0, p1 core.Vec, now float64) {
	delta := p1.Sub(p0)
	dist := delta.Len()
	if dist < 1e-5 {
		return
	}

	dir := delta.Scale(1 / dist)
	steps := int(dist / BarrierSegmentStep)
	if steps < 1 {
		steps = 1
	}

	prev := p0
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		cur := p0.Add(delta.Scale(t))
		pieceLen := cur.Sub(prev).Len()
		if l.inkUsed+pieceLen > MaxInkLength {
			break
		}
		l.segments = append(l.segments, BarrierSegment{
			A:         prev,
			B:         cur,
			CreatedAt: now,
			Length:    pieceLen,
		})
		l.inkUsed += pieceLen
		prev = cur
	}

	if prev != p0 {
		l.lastPoint = prev
	} else {
		step := dist
		if step > 1 {
			step = 1
		}
		l.lastPoint = p0.Add(dir.Scale(step))
	}
	l.hasLast = true
}

// Expire drops every segment whose lifetime has elapsed and recomputes the
// ink budget as the exact sum of the survivors' lengths. Called once per
// tick before any collision test. Calling it again with the same time is a
// no-op.
func (l *BarrierLedger) Expire(now float64) {
	if len(l.segments) == 0 {
		return
	}
	alive := l.segments[:0]
	used := 0.0
	for _, seg := range l.segments {
		if seg.Alive(now) {
			alive = append(alive, seg)
			used += seg.Length
		}
	}
	l.segments = alive
	l.inkUsed = used
}

// Clear empties the ledger and returns all ink. Used on goal and reset.
func (l *BarrierLedger) Clear() {
	l.segments = l.segments[:0]
	l.inkUsed = 0
	l.hasLast = false
}

// Segments returns the live segments in stroke order.
func (l *BarrierLedger) Segments() []BarrierSegment {
	return l.segments
}

// InkUsed returns the total length of live segments.
func (l *BarrierLedger) InkUsed() float64 {
	return l.inkUsed
}

// InkRemaining returns the unused fraction of the ink budget in [0,1].
func (l *BarrierLedger) InkRemaining() float64 {
	return core.ClampF((MaxInkLength-l.inkUsed)/MaxInkLength, 0, 1)
}

// LastPoint returns the last committed stroke point and whether one exists.
func (l *BarrierLedger) LastPoint() (core.Vec, bool) {
	return l.lastPoint, l.hasLast
}

// StartStroke resets the chaining anchor to a fresh stroke's starting point.
// Fragments appended afterwards continue from the last committed point, so a
// budget-truncated stroke resumes at its anchor instead of jumping to the
// raw gesture position.
func (l *BarrierLedger) StartStroke(p core.Vec) {
	l.lastPoint = p
	l.hasLast = true
}
