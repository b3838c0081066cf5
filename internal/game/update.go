package game

import (
	"math"

	"github.com/vovakirdan/ink-soccer/internal/core"
)

// Update advances the simulation by one frame. dt is the elapsed time since
// the previous tick and now is the externally supplied monotonic clock.
// Pending commands are drained first, then barriers expire, then the phase
// decides what physics runs. The returned outcome carries a goal event (if
// any) and the cues emitted during this tick.
func (m *Match) Update(dt, now float64) TickOutcome {
	m.cues = m.cues[:0]

	m.drainCommands(now)
	m.barriers.Expire(now)

	switch m.phase {
	case PhaseCountdown:
		m.tickCountdown(now)
		return m.outcome(false, SideLeft)

	case PhaseWaitingTouch:
		m.pinBall()
		m.applyBoostIfCrossed(now)
		return m.outcome(false, SideLeft)
	}

	m.ballPos = m.ballPos.Add(m.ballVel.Scale(dt))
	m.ballVel = m.ballVel.Scale(BallDamping)

	m.applyStallNudge(dt)
	m.ballVel = m.ballVel.ClampLen(BallMaxSpeed)

	m.collideGoalShields(now)

	if scorer, scored := m.collideFieldAndGoals(now); scored {
		return m.outcome(true, scorer)
	}

	m.applyBoostIfCrossed(now)

	for _, seg := range m.barriers.Segments() {
		m.collideBarrier(seg)
	}

	return m.outcome(false, SideLeft)
}

func (m *Match) outcome(goal bool, scorer Side) TickOutcome {
	out := TickOutcome{Goal: goal, Scorer: scorer}
	if len(m.cues) > 0 {
		out.Cues = append([]Cue(nil), m.cues...)
	}
	return out
}

// pinBall freezes the ball at the kicking-off side's spot.
func (m *Match) pinBall() {
	m.ballPos = KickoffSpot(m.kickoffSide)
	m.ballVel = core.Vec{}
}

// tickCountdown keeps the ball pinned, emits one cue per integer second of
// the countdown, and hands off to WaitingTouch on expiry.
func (m *Match) tickCountdown(now float64) {
	m.pinBall()

	remain := math.Max(0, m.countdownEnd-now)
	value := int(math.Ceil(remain))
	if value != m.lastCountdownValue && value > 0 {
		m.emit(CueCountdownTick)
	}
	m.lastCountdownValue = value

	if now >= m.countdownEnd {
		m.phase = PhaseWaitingTouch
	}
}

// onGoal credits the scorer, clears all player-authored mechanics, and
// re-enters the countdown with the conceding side kicking off.
func (m *Match) onGoal(scorer Side, now float64) {
	conceding := scorer.Opposite()
	if scorer == SideRight {
		m.rightScore++
	} else {
		m.leftScore++
	}

	m.emit(CueGoalScored)
	m.clearDrawables()
	m.startKickoff(now, conceding)
}

// reflectOffBoundary reflects the outward velocity component off a field
// boundary normal, keeping most kinetic energy.
func (m *Match) reflectOffBoundary(normal core.Vec) {
	vn := m.ballVel.Dot(normal)
	if vn > 0 {
		m.ballVel = m.ballVel.Sub(normal.Scale(wallRestitution * vn))
	}
}

// collideFieldAndGoals applies goal detection, straight-edge reflection, and
// rounded-corner arcs, in that order. A goal-line crossing inside the goal
// opening ends the tick immediately: scoring and reset happen here and no
// further physics applies.
func (m *Match) collideFieldAndGoals(now float64) (scorer Side, scored bool) {
	const (
		left   = FieldMargin
		right  = FieldWidth - FieldMargin
		top    = FieldMargin
		bottom = FieldHeight - FieldMargin
		corner = FieldCornerRadius
	)

	inGoalWindow := m.ballPos.Y >= GoalTop && m.ballPos.Y <= GoalBottom

	if m.ballPos.X-BallRadius < GoalLineXLeft && inGoalWindow {
		m.onGoal(SideRight, now)
		return SideRight, true
	}
	if m.ballPos.X+BallRadius > GoalLineXRight && inGoalWindow {
		m.onGoal(SideLeft, now)
		return SideLeft, true
	}

	// Straight edges, restricted to the non-corner coordinate ranges.
	if m.ballPos.X >= left+corner && m.ballPos.X <= right-corner && m.ballPos.Y-BallRadius < top {
		m.ballPos.Y = top + BallRadius
		m.reflectOffBoundary(core.V(0, -1))
	}
	if m.ballPos.X >= left+corner && m.ballPos.X <= right-corner && m.ballPos.Y+BallRadius > bottom {
		m.ballPos.Y = bottom - BallRadius
		m.reflectOffBoundary(core.V(0, 1))
	}
	if m.ballPos.Y >= top+corner && m.ballPos.Y <= GoalTop && m.ballPos.X-BallRadius < left {
		m.ballPos.X = left + BallRadius
		m.reflectOffBoundary(core.V(-1, 0))
	}
	if m.ballPos.Y >= GoalBottom && m.ballPos.Y <= bottom-corner && m.ballPos.X-BallRadius < left {
		m.ballPos.X = left + BallRadius
		m.reflectOffBoundary(core.V(-1, 0))
	}
	if m.ballPos.Y >= top+corner && m.ballPos.Y <= GoalTop && m.ballPos.X+BallRadius > right {
		m.ballPos.X = right - BallRadius
		m.reflectOffBoundary(core.V(1, 0))
	}
	if m.ballPos.Y >= GoalBottom && m.ballPos.Y <= bottom-corner && m.ballPos.X+BallRadius > right {
		m.ballPos.X = right - BallRadius
		m.reflectOffBoundary(core.V(1, 0))
	}

	// Rounded corners: clamp the ball to a concentric circle inside each
	// corner arc and reflect off the radial normal.
	allowed := corner - BallRadius
	for _, fc := range fieldCorners {
		if !fc.inQuadrant(m.ballPos) {
			continue
		}
		rel := m.ballPos.Sub(fc.center)
		dist := rel.Len()
		if dist <= 1e-6 || dist <= allowed {
			continue
		}
		n := rel.Scale(1 / dist)
		m.ballPos = fc.center.Add(n.Scale(allowed))
		m.reflectOffBoundary(n)
	}

	return SideLeft, false
}

// collideBarrier resolves the ball against one ink wall segment: push out
// along the contact normal by the penetration depth and reflect the inward
// velocity component. Segments resolve in ledger order; they are thin and
// short-lived, so the first-created segment winning an overlap is fine.
func (m *Match) collideBarrier(seg BarrierSegment) {
	d, closest, _ := core.DistanceToSegment(m.ballPos, seg.A, seg.B)
	if d >= BallRadius+BarrierThickness/2 {
		return
	}

	n := m.ballPos.Sub(closest)
	if n.LenSq() == 0 {
		n = core.SegmentNormal(seg.A, seg.B)
	} else {
		n = n.Normalize()
	}

	penetration := BallRadius + BarrierThickness/2 - d
	m.ballPos = m.ballPos.Add(n.Scale(penetration))

	vn := m.ballVel.Dot(n)
	if vn < 0 {
		m.ballVel = m.ballVel.Sub(n.Scale(wallRestitution * vn))
	}
}
