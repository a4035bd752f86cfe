package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// palette maps screen colors to ANSI color numbers. Bright colors render bold
// so the active parts of the duel stand out on 8-color terminals too.
var palette = map[core.Color]struct {
	ansi string
	bold bool
}{
	core.ColorRed:          {"1", false},
	core.ColorGreen:        {"2", false},
	core.ColorYellow:       {"3", false},
	core.ColorBlue:         {"4", false},
	core.ColorMagenta:      {"5", false},
	core.ColorCyan:         {"6", false},
	core.ColorWhite:        {"7", false},
	core.ColorBrightRed:    {"9", true},
	core.ColorBrightGreen:  {"10", true},
	core.ColorBrightYellow: {"11", true},
	core.ColorOrange:       {"208", false},
	core.ColorGray:         {"245", false},
}

var styles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	out := make(map[core.Color]lipgloss.Style, len(palette)+1)
	out[core.ColorDefault] = lipgloss.NewStyle()
	for c, p := range palette {
		out[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.ansi)).Bold(p.bold)
	}
	return out
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := styles[c]; ok {
		return st
	}
	return styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display,
// one escape sequence per run of same-colored cells.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

func renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	var run strings.Builder
	current := core.ColorDefault

	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(styleFor(current).Render(run.String()))
			run.Reset()
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != current {
			flush()
			current = cell.Color
		}
		// Zero runes sit behind wide characters.
		if cell.Rune != 0 {
			run.WriteRune(cell.Rune)
		}
	}
	flush()
	return sb.String()
}
