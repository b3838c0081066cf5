package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ink-soccer/internal/config"
	"github.com/vovakirdan/ink-soccer/internal/core"
	"github.com/vovakirdan/ink-soccer/internal/game"
	"github.com/vovakirdan/ink-soccer/internal/storage"
)

// Model is the Bubble Tea model for a running match. Mouse gestures are
// translated to match commands and enqueued; the simulation only advances on
// tick messages, so the Bubble Tea loop stays the single writer.
type Model struct {
	match  *game.Match
	screen *core.Screen
	store  *storage.Store
	cfg    config.Config
	keys   MatchKeyMap
	help   help.Model
	vp     viewport

	start   time.Time
	lastNow float64

	banner      string
	bannerUntil float64
	bellPending bool

	// active mouse gestures
	boostDrag  bool
	dragStart  core.Vec
	dragCur    core.Vec
	stroking   bool
	strokeLast core.Vec

	remote   bool
	quitting bool
}

// NewModel creates a match model sized to the given terminal.
func NewModel(store *storage.Store, cfg config.Config, seed int64, width, height int, remote bool) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	screenH := height - 1 // last line is the help bar

	h := help.New()
	h.ShowAll = false

	return Model{
		match:  game.New(seed),
		screen: core.NewScreen(width, screenH),
		store:  store,
		cfg:    cfg,
		keys:   DefaultMatchKeyMap(),
		help:   h,
		vp:     newViewport(width, screenH),
		start:  time.Now(),
		remote: remote,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.Tick.Rate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.match.Enqueue(game.ToggleControlledSide{})
	case key.Matches(msg, m.keys.Reset):
		m.match.Enqueue(game.ManualReset{})
	}
	return m, nil
}

// handleMouse maps drag gestures to match commands. Left drag places a boost
// pad; right drag paints an ink wall. Points outside the field area are
// ignored, the match validates everything else.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p, inField := m.vp.toField(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if !inField {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.match.Enqueue(game.BeginBoostDrag{P: p})
			m.boostDrag = true
			m.dragStart = p
			m.dragCur = p
		case tea.MouseButtonRight:
			m.match.Enqueue(game.BeginWallStroke{P: p})
			m.stroking = true
			m.strokeLast = p
		}

	case tea.MouseActionMotion:
		if !inField {
			return m, nil
		}
		if m.boostDrag {
			m.match.Enqueue(game.UpdateBoostDrag{P: p})
			m.dragCur = p
		}
		if m.stroking {
			m.match.Enqueue(game.ExtendWallStroke{P0: m.strokeLast, P1: p})
			m.strokeLast = p
		}

	case tea.MouseActionRelease:
		if m.boostDrag && msg.Button != tea.MouseButtonRight {
			m.match.Enqueue(game.CommitBoostDrag{A: m.dragStart, B: m.dragCur})
			m.boostDrag = false
		}
		if m.stroking && msg.Button != tea.MouseButtonLeft {
			m.match.Enqueue(game.EndWallStroke{})
			m.stroking = false
		}
	}

	return m, nil
}

// handleResize processes window resize events. The match itself is
// resolution independent; only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	screenH := msg.Height - 1
	if screenH < 2 {
		screenH = 2
	}
	m.screen.Resize(msg.Width, screenH)
	m.vp = newViewport(msg.Width, screenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the elapsed wall time, capped so a
// stalled terminal cannot produce one huge physics step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := time.Since(m.start).Seconds()
	dt := now - m.lastNow
	if m.lastNow == 0 || dt <= 0 {
		dt = 1.0 / float64(m.cfg.Tick.Rate)
	}
	if dt > 0.1 {
		dt = 0.1
	}
	m.lastNow = now
	m.bellPending = false

	outcome := m.match.Update(dt, now)

	if len(outcome.Cues) > 0 && m.cfg.Display.Bell {
		m.bellPending = true
	}
	if outcome.Goal {
		m.banner = fmt.Sprintf("GOAL for %s!", outcome.Scorer)
		m.bannerUntil = now + 1.5
	}
	if m.banner != "" && now >= m.bannerUntil {
		m.banner = ""
	}

	return m, tickCmd(m.cfg.Tick.Rate)
}

// saveSession records the session result. Best effort, quitting proceeds
// regardless.
func (m Model) saveSession() {
	if m.store == nil {
		return
	}
	left, right := m.match.Scores()
	if left == 0 && right == 0 {
		return
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveSession(storage.SessionResult{
		LeftScore:    left,
		RightScore:   right,
		DurationSecs: int(time.Since(m.start).Seconds()),
		Remote:       m.remote,
	})
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.match.Snapshot(m.lastNow)
	drawMatch(m.screen, snap, m.vp, m.cfg.Display.ShowBlockZones, m.banner)

	out := RenderScreen(m.screen)
	if m.cfg.Display.ShowHints {
		out += "\n" + m.help.View(m.keys)
	} else {
		out += "\n"
	}
	if m.bellPending {
		out = "\a" + out
	}
	return out
}

// Run starts a local match in the current terminal.
func Run(store *storage.Store, cfg config.Config, seed int64, width, height int) error {
	model := NewModel(store, cfg, seed, width, height, false)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // drag gestures need motion events
	)

	_, err := p.Run()
	return err
}
