package game

import "github.com/vovakirdan/ink-soccer/internal/core"

// BoostPad is a one-way directional pad placed by a drag gesture. The pad
// pushes the ball from its release end toward its anchor end. At most one
// pad exists at a time; a new valid commit replaces it wholesale.
type BoostPad struct {
	A      core.Vec
	B      core.Vec
	Length float64
	Dir    core.Vec // unit vector pointing from B toward A
	Valid  bool
}

// NewBoostPad builds a pad candidate from a drag gesture, clamping the drag
// to the maximum pad length by shortening from a toward the raw endpoint.
// The candidate is valid only if the clamped drag meets the minimum length
// and has a usable direction.
func NewBoostPad(a, b core.Vec) BoostPad {
	end := core.ClampSegmentEnd(a, b, BoostPadMaxLength)
	pad := BoostPad{
		A:      a,
		B:      end,
		Length: end.Sub(a).Len(),
		Dir:    a.Sub(end).Normalize(),
	}
	pad.Valid = pad.Length >= BoostPadMinDrag && pad.Dir.LenSq() > 0
	return pad
}

// boostAllowed decides whether a pad candidate may be stored. Invalid
// candidates never pass. During WaitingTouch only the kicking-off player may
// place a pad, and the whole pad must lie in the kicking-off half: the pad
// is sampled at evenly spaced points so it cannot reach across the midline
// before play resumes.
func (m *Match) boostAllowed(pad BoostPad) bool {
	if !pad.Valid {
		return false
	}
	if m.sideRestricted() && m.controlledSide != m.kickoffSide {
		return false
	}
	for i := 0; i < boostSamplePoints; i++ {
		t := float64(i) / float64(boostSamplePoints-1)
		p := pad.A.Lerp(pad.B, t)
		if m.sideRestricted() && !PointInSide(p, m.kickoffSide) {
			return false
		}
	}
	return true
}

// applyBoostIfCrossed applies the pad impulse when the ball crosses the
// active pad and the cooldown has elapsed. Impulse magnitude scales with pad
// length and is weakened inside the goal-approach block zones. The first
// boost touch of a kickoff is the trigger that starts live play and arms the
// goal shields.
func (m *Match) applyBoostIfCrossed(now float64) {
	if m.pad == nil || !m.pad.Valid {
		return
	}
	if now-m.lastBoostTime < BoostCooldown {
		return
	}

	d, _, _ := core.DistanceToSegment(m.ballPos, m.pad.A, m.pad.B)
	if d > BallRadius+BoostPadThickness/2 {
		return
	}

	ratio := core.ClampF(m.pad.Length/BoostPadMaxLength, 0, 1)
	impulse := BoostImpulseMin + ratio*(BoostImpulseMax-BoostImpulseMin)
	if InBlockZone(m.ballPos) {
		impulse *= BoostZoneMultiplier
	}
	m.ballVel = m.ballVel.Add(m.pad.Dir.Scale(impulse)).ClampLen(BallMaxSpeed)
	m.lastBoostTime = now
	m.emit(CueBoostTriggered)

	if m.phase == PhaseWaitingTouch {
		m.phase = PhaseLive
		m.shieldEnd = now + GoalShieldDuration
	}
}
