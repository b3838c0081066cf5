package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestScoreboardShortTerminal(t *testing.T) {
	// Heights below the chrome budget must not produce a negative table.
	for _, height := range []int{1, 4, 8} {
		m := NewScoreboardModel(nil, 40, height)
		if got := m.table.Height(); got < 1 {
			t.Errorf("height %d: table height = %d, want >= 1", height, got)
		}
		// Rendering must not panic either.
		_ = m.View()
	}
}

func TestScoreboardResizeRebuildsTable(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 5})
	resized, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatal("Update did not return a ScoreboardModel")
	}
	if got := resized.table.Height(); got < 1 {
		t.Errorf("table height after shrink = %d, want >= 1", got)
	}
}
