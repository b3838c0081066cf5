package game

import "github.com/vovakirdan/ink-soccer/internal/core"

// applyStallNudge pushes a ball that sits slow inside a block zone back out
// toward open play. The timer only accumulates while the condition holds
// during live play; leaving the zone (or speeding up) resets the clock
// immediately. The nudge direction runs from the nearer goal-line center
// through the ball, with a fixed outward fallback when the two coincide.
func (m *Match) applyStallNudge(dt float64) {
	if m.phase != PhaseLive {
		m.stallTimer = 0
		return
	}

	speed := m.ballVel.Len()
	if !InBlockZone(m.ballPos) || speed >= StallSpeedThreshold {
		m.stallTimer = 0
		return
	}

	m.stallTimer += dt
	if m.stallTimer < StallTimeToNudge {
		return
	}

	var center, fallback core.Vec
	if m.ballPos.X <= FieldWidth*0.5 {
		center = core.V(GoalLineXLeft, GoalCenterY)
		fallback = core.V(1, 0)
	} else {
		center = core.V(GoalLineXRight, GoalCenterY)
		fallback = core.V(-1, 0)
	}

	n := m.ballPos.Sub(center)
	if n.LenSq() == 0 {
		n = fallback
	} else {
		n = n.Normalize()
	}

	m.ballVel = m.ballVel.Add(n.Scale(StallNudgeImpulse)).ClampLen(BallMaxSpeed)
	m.stallTimer = 0
	m.emit(CueShieldBounce)
}
