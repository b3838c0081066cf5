package game

import (
	"math"

	"github.com/vovakirdan/ink-soccer/internal/core"
)

// BarrierView is a render-ready barrier segment with its remaining-life
// fraction for fading.
type BarrierView struct {
	A     core.Vec
	B     core.Vec
	Alpha float64
}

// PadView is a render-ready boost pad.
type PadView struct {
	A   core.Vec
	B   core.Vec
	Dir core.Vec
}

// Snapshot is a read-only view of the match for the presentation layer.
// It aliases nothing; rendering can never disturb the simulation.
type Snapshot struct {
	BallPos core.Vec
	BallVel core.Vec

	LeftScore  int
	RightScore int

	Phase          Phase
	KickoffSide    Side
	ControlledSide Side

	CountdownRemaining float64 // seconds, 0 outside Countdown
	CountdownValue     int     // ceil of remaining, min 1, for the banner
	ShieldActive       bool
	ShieldRemaining    float64

	HasPad bool
	Pad    PadView

	BoostDragActive bool
	BoostDragA      core.Vec
	BoostDragB      core.Vec // clamped preview endpoint

	WallStrokeActive bool

	Barriers     []BarrierView
	InkRemaining float64 // fraction of the ink budget still available
}

// Snapshot captures the current state at the given monotonic time.
func (m *Match) Snapshot(now float64) Snapshot {
	s := Snapshot{
		BallPos:          m.ballPos,
		BallVel:          m.ballVel,
		LeftScore:        m.leftScore,
		RightScore:       m.rightScore,
		Phase:            m.phase,
		KickoffSide:      m.kickoffSide,
		ControlledSide:   m.controlledSide,
		WallStrokeActive: m.wallStrokeActive,
		InkRemaining:     m.barriers.InkRemaining(),
	}

	if m.phase == PhaseCountdown {
		s.CountdownRemaining = math.Max(0, m.countdownEnd-now)
		s.CountdownValue = int(math.Ceil(s.CountdownRemaining))
		if s.CountdownValue < 1 {
			s.CountdownValue = 1
		}
	}

	if m.shieldActive(now) {
		s.ShieldActive = true
		s.ShieldRemaining = m.shieldEnd - now
	}

	if m.pad != nil && m.pad.Valid {
		s.HasPad = true
		s.Pad = PadView{A: m.pad.A, B: m.pad.B, Dir: m.pad.Dir}
	}

	if m.boostDragActive {
		s.BoostDragActive = true
		s.BoostDragA = m.boostDragStart
		s.BoostDragB = core.ClampSegmentEnd(m.boostDragStart, m.boostDragCurrent, BoostPadMaxLength)
	}

	segs := m.barriers.Segments()
	if len(segs) > 0 {
		s.Barriers = make([]BarrierView, 0, len(segs))
		for _, seg := range segs {
			s.Barriers = append(s.Barriers, BarrierView{
				A:     seg.A,
				B:     seg.B,
				Alpha: seg.Alpha(now),
			})
		}
	}

	return s
}
