package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sandrunner/internal/core"
)

// palette maps core.Color to ANSI 256 codes tuned for a sand-coloured scene.
var palette = map[core.Color]string{
	core.ColorRed:           "160",
	core.ColorGreen:         "64",
	core.ColorYellow:        "186",
	core.ColorBlue:          "33",
	core.ColorMagenta:       "133",
	core.ColorCyan:          "37",
	core.ColorWhite:         "252",
	core.ColorBrightRed:     "196",
	core.ColorBrightGreen:   "112",
	core.ColorBrightYellow:  "220",
	core.ColorBrightBlue:    "75",
	core.ColorBrightMagenta: "171",
	core.ColorBrightCyan:    "87",
	core.ColorBrightWhite:   "231",
	core.ColorOrange:        "172",
	core.ColorGray:          "245",
}

var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range palette {
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		switch c {
		case core.ColorBrightRed, core.ColorBrightYellow, core.ColorBrightCyan:
			// hearts, gold and the player
			s = s.Bold(true)
		}
		styles[c] = s
	}
	return styles
}

// styleFor returns the style of c, plain for unknown colours.
func styleFor(c core.Color) lipgloss.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same colour share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
