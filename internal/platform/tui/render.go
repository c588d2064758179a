package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brick-arcade/internal/core"
)

// ansiCodes is the terminal palette index of each draw colour.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var cellStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(ansiCodes))
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}()

// styleFor returns the foreground style of c. Unknown colours and
// ColorDefault render unstyled.
func styleFor(c core.Color) lipgloss.Style {
	if st, ok := cellStyles[c]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// RenderScreen turns a cell buffer into terminal output, one line per row.
// Adjacent cells of one colour share a single styled span.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()
	var out strings.Builder
	out.Grow(w*h*2 + h)

	span := make([]rune, 0, w)
	flush := func(c core.Color) {
		if len(span) > 0 {
			out.WriteString(styleFor(c).Render(string(span)))
			span = span[:0]
		}
	}

	for y := range h {
		if y > 0 {
			out.WriteByte('\n')
		}
		cur := s.GetCell(0, y).Color
		for x := range w {
			cell := s.GetCell(x, y)
			if cell.Color != cur {
				flush(cur)
				cur = cell.Color
			}
			span = append(span, cell.Rune)
		}
		flush(cur)
	}
	return out.String()
}
