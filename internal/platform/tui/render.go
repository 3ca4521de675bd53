package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/notsure/internal/core"
)

// Palette maps cell roles to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds the role styles over the given background color.
// An empty background leaves the terminal's own.
func NewPalette(background string) Palette {
	base := lipgloss.NewStyle()
	if background != "" {
		base = base.Background(lipgloss.Color(background))
	}
	return Palette{
		core.ColorDefault:  base,
		core.ColorBody:     base.Foreground(lipgloss.Color("7")),
		core.ColorSelected: base.Foreground(lipgloss.Color("11")).Bold(true),
		core.ColorOverlap:  base.Foreground(lipgloss.Color("9")),
		core.ColorSegment:  base.Foreground(lipgloss.Color("6")),
		core.ColorHit:      base.Foreground(lipgloss.Color("13")).Bold(true),
		core.ColorGhost:    base.Foreground(lipgloss.Color("240")),
		core.ColorText:     base.Foreground(lipgloss.Color("245")),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
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

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
