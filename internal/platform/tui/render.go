package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gander/internal/core"
)

// styleFor returns the lipgloss style painting cells of color c.
func styleFor(c core.Color) lipgloss.Style {
	code := c.ANSI()
	if code == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// RenderFrame converts a presented frame to a styled string, one escape
// sequence per run of same-coloured cells. Zero runes are the trailing
// halves of wide characters and are skipped.
func RenderFrame(f core.Frame) string {
	var sb strings.Builder
	sb.Grow(f.Width*f.Height*2 + f.Height)

	styles := make(map[core.Color]lipgloss.Style)
	var run strings.Builder
	for y := range f.Height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < f.Width; {
			color := f.GetCell(x, y).Color
			run.Reset()
			for ; x < f.Width; x++ {
				cell := f.GetCell(x, y)
				if cell.Color != color {
					break
				}
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
			}

			style, ok := styles[color]
			if !ok {
				style = styleFor(color)
				styles[color] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
