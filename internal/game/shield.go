package game

// collideGoalShields repels the ball from the temporary no-entry zones in
// front of both goal mouths. A ball inside a zone and moving toward its
// center is pushed to the zone boundary and the inward velocity component is
// reflected with an energetic bounce. The shield cue is rate limited so
// repeated micro-penetrations don't flood the audio collaborator.
func (m *Match) collideGoalShields(now float64) {
	if !m.shieldActive(now) {
		return
	}

	blockRadius := ShieldRadius + BallRadius
	for _, side := range [2]Side{SideLeft, SideRight} {
		center := ShieldCenter(side)
		rel := m.ballPos.Sub(center)
		dist := rel.Len()
		if dist <= 1e-6 || dist >= blockRadius {
			continue
		}

		n := rel.Scale(1 / dist)
		m.ballPos = center.Add(n.Scale(blockRadius))
		vn := m.ballVel.Dot(n)
		if vn < 0 {
			m.ballVel = m.ballVel.Sub(n.Scale(shieldRestitution * vn))
			if now-m.lastShieldCue > shieldCueInterval {
				m.emit(CueShieldBounce)
				m.lastShieldCue = now
			}
		}
	}
}
