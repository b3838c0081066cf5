package game

import (
	"math/rand"

	"github.com/vovakirdan/ink-soccer/internal/core"
)

// Phase is the kickoff lifecycle stage. Transitions are one-directional:
// Countdown -> WaitingTouch -> Live -> (on goal) Countdown.
type Phase int

const (
	PhaseCountdown Phase = iota
	PhaseWaitingTouch
	PhaseLive
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseWaitingTouch:
		return "waiting_touch"
	case PhaseLive:
		return "live"
	default:
		return "unknown"
	}
}

// Cue is a discrete fire-and-forget signal for the audio/presentation
// collaborator. The core never renders or synthesizes anything itself.
type Cue int

const (
	CueCountdownTick Cue = iota
	CueBoostTriggered
	CueGoalScored
	CueShieldBounce
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueCountdownTick:
		return "countdown"
	case CueBoostTriggered:
		return "boost"
	case CueGoalScored:
		return "goal"
	case CueShieldBounce:
		return "shield"
	default:
		return "unknown"
	}
}

// TickOutcome reports what one Update call produced: whether a goal was
// scored (and by whom) plus any cues emitted during the tick.
type TickOutcome struct {
	Goal   bool
	Scorer Side
	Cues   []Cue
}

// Match owns the entire mutable simulation state. It is single-writer:
// all mutation happens inside Update, external callers observe state only
// between ticks. Time is supplied externally as a monotonic clock.
type Match struct {
	ballPos core.Vec
	ballVel core.Vec

	leftScore  int
	rightScore int

	pad           *BoostPad
	lastBoostTime float64

	barriers BarrierLedger

	phase              Phase
	kickoffSide        Side
	countdownEnd       float64
	lastCountdownValue int
	shieldEnd          float64
	lastShieldCue      float64

	controlledSide Side
	stallTimer     float64

	// Drag gesture state, owned here so permission checks and chaining
	// survive across ticks.
	boostDragActive  bool
	boostDragStart   core.Vec
	boostDragCurrent core.Vec
	wallStrokeActive bool

	pending []Command
	cues    []Cue

	rng *rand.Rand
}

// New creates a match with the ball pinned for the opening kickoff.
// The seed only decides which side kicks off first (and after manual
// resets); the simulation itself is deterministic.
func New(seed int64) *Match {
	m := &Match{
		rng:            rand.New(rand.NewSource(seed)),
		lastBoostTime:  -10,
		lastShieldCue:  -10,
		controlledSide: SideLeft,
	}
	m.startKickoff(0, m.randomSide())
	return m
}

func (m *Match) randomSide() Side {
	if m.rng.Intn(2) == 0 {
		return SideLeft
	}
	return SideRight
}

// startKickoff pins the ball at the conceding side's kickoff spot and
// begins the countdown.
func (m *Match) startKickoff(now float64, conceding Side) {
	m.kickoffSide = conceding
	m.phase = PhaseCountdown
	m.countdownEnd = now + KickoffCountdown
	m.shieldEnd = 0
	m.lastCountdownValue = -1
	m.ballPos = KickoffSpot(conceding)
	m.ballVel = core.Vec{}
}

// clearDrawables removes the boost pad, all barriers, and any in-flight
// drag gestures. Used on goal and manual reset.
func (m *Match) clearDrawables() {
	m.pad = nil
	m.barriers.Clear()
	m.boostDragActive = false
	m.wallStrokeActive = false
}

// emit queues a cue for the current tick's outcome.
func (m *Match) emit(c Cue) {
	m.cues = append(m.cues, c)
}

// controlsLocked reports whether all interaction is frozen (countdown).
func (m *Match) controlsLocked() bool {
	return m.phase == PhaseCountdown
}

// sideRestricted reports whether interaction is limited to the kicking-off
// side's half (waiting for the kickoff touch).
func (m *Match) sideRestricted() bool {
	return m.phase == PhaseWaitingTouch
}

// InteractionAllowed is the pure permission predicate for player gestures at
// point p: everything is locked during the countdown, only the kicking-off
// player inside their own half may act while waiting for the touch, and
// anything goes during live play.
func (m *Match) InteractionAllowed(p core.Vec) bool {
	if m.controlsLocked() {
		return false
	}
	if m.sideRestricted() {
		if m.controlledSide != m.kickoffSide {
			return false
		}
		return PointInSide(p, m.kickoffSide)
	}
	return true
}

// Phase returns the current kickoff phase.
func (m *Match) Phase() Phase {
	return m.phase
}

// Scores returns the left and right goal tallies.
func (m *Match) Scores() (left, right int) {
	return m.leftScore, m.rightScore
}

// ControlledSide returns the side the local player currently controls.
func (m *Match) ControlledSide() Side {
	return m.controlledSide
}

// Ball returns the ball position and velocity.
func (m *Match) Ball() (pos, vel core.Vec) {
	return m.ballPos, m.ballVel
}

// shieldActive reports whether the goal shields are currently up.
func (m *Match) shieldActive(now float64) bool {
	return now < m.shieldEnd
}
