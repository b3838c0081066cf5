package game

import "github.com/vovakirdan/ink-soccer/internal/core"

// Command is a pre-validated domain input event. The platform layer
// enqueues commands as gestures arrive; the match drains the queue once per
// tick, before physics, preserving arrival order. Side toggles and resets
// always apply; gesture commands are filtered by phase and by the
// interaction-permission predicate.
type Command interface {
	isCommand()
}

// ToggleControlledSide switches which side the local player controls.
type ToggleControlledSide struct{}

// ManualReset zeroes both scores, clears all drawn mechanics, and restarts
// with a fresh countdown for a randomly chosen side.
type ManualReset struct{}

// BeginBoostDrag starts a boost pad drag gesture at P.
type BeginBoostDrag struct {
	P core.Vec
}

// UpdateBoostDrag moves the current boost drag endpoint to P.
type UpdateBoostDrag struct {
	P core.Vec
}

// CommitBoostDrag releases the drag from A to B, storing the resulting pad
// if it validates. An invalid or disallowed candidate discards the pad.
type CommitBoostDrag struct {
	A core.Vec
	B core.Vec
}

// BeginWallStroke starts an ink wall stroke at P.
type BeginWallStroke struct {
	P core.Vec
}

// ExtendWallStroke appends the stroke fragment P0->P1 to the barrier ledger.
// While a stroke is active the ledger's committed anchor supersedes P0, so
// fragments chain contiguously even after a budget truncation.
type ExtendWallStroke struct {
	P0 core.Vec
	P1 core.Vec
}

// EndWallStroke finishes the current wall stroke.
type EndWallStroke struct{}

func (ToggleControlledSide) isCommand() {}
func (ManualReset) isCommand()          {}
func (BeginBoostDrag) isCommand()       {}
func (UpdateBoostDrag) isCommand()      {}
func (CommitBoostDrag) isCommand()      {}
func (BeginWallStroke) isCommand()      {}
func (ExtendWallStroke) isCommand()     {}
func (EndWallStroke) isCommand()        {}

// Enqueue appends a command for the next tick. Must only be called between
// ticks (single-writer model).
func (m *Match) Enqueue(c Command) {
	m.pending = append(m.pending, c)
}

// drainCommands applies all pending commands in arrival order.
func (m *Match) drainCommands(now float64) {
	for _, c := range m.pending {
		m.apply(c, now)
	}
	m.pending = m.pending[:0]
}

// apply dispatches one command. Toggle and reset act in any phase; every
// gesture command is dropped silently while controls are locked, and drag
// starts additionally require interaction permission at their point. A
// disallowed attempt causes no cue and no state change.
func (m *Match) apply(c Command, now float64) {
	switch c := c.(type) {
	case ToggleControlledSide:
		m.controlledSide = m.controlledSide.Opposite()
		return

	case ManualReset:
		m.leftScore = 0
		m.rightScore = 0
		m.clearDrawables()
		m.startKickoff(now, m.randomSide())
		return

	case BeginBoostDrag:
		if m.controlsLocked() || !m.InteractionAllowed(c.P) {
			return
		}
		m.boostDragActive = true
		m.boostDragStart = c.P
		m.boostDragCurrent = c.P

	case UpdateBoostDrag:
		if m.controlsLocked() || !m.boostDragActive {
			return
		}
		m.boostDragCurrent = c.P

	case CommitBoostDrag:
		if m.controlsLocked() {
			return
		}
		candidate := NewBoostPad(c.A, c.B)
		if m.boostAllowed(candidate) {
			m.pad = &candidate
		} else {
			m.pad = nil
		}
		m.boostDragActive = false

	case BeginWallStroke:
		if m.controlsLocked() || !m.InteractionAllowed(c.P) {
			return
		}
		m.wallStrokeActive = true
		m.barriers.StartStroke(c.P)

	case ExtendWallStroke:
		if m.controlsLocked() || !m.wallStrokeActive {
			return
		}
		// Chain from the last committed point so a budget-truncated
		// stroke stays contiguous when the drag continues.
		p0 := c.P0
		if anchor, ok := m.barriers.LastPoint(); ok {
			p0 = anchor
		}
		if !m.InteractionAllowed(p0) || !m.InteractionAllowed(c.P1) {
			return
		}
		m.barriers.AppendStroke(p0, c.P1, now)

	case EndWallStroke:
		m.wallStrokeActive = false
	}
}
