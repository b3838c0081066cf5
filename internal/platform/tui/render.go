package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ink-soccer/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. The palette mirrors the
// pitch look: teal field lines, cyan goals and pads, pink ink, orange shields.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorPitch:      lipgloss.NewStyle().Foreground(lipgloss.Color("30")),
	core.ColorPitchDim:   lipgloss.NewStyle().Foreground(lipgloss.Color("23")),
	core.ColorGoal:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColorBall:       lipgloss.NewStyle().Foreground(lipgloss.Color("231")),
	core.ColorBoost:      lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
	core.ColorBarrier:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	core.ColorBarrierDim: lipgloss.NewStyle().Foreground(lipgloss.Color("132")),
	core.ColorShield:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorZone:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorText:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorMuted:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	core.ColorAccent:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
