package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	full, empty := "█", "░"
	if current.Mono {
		full, empty = "#", "."
	}
	bar := strings.Repeat(full, filled) + strings.Repeat(empty, width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// PadRight pads s with spaces to width visible columns, ignoring escapes.
func PadRight(s string, width int) string {
	if vis := ansi.StringWidth(s); vis < width {
		return s + strings.Repeat(" ", width-vis)
	}
	return s
}

// Panel frames lines in a box using the current theme's border.
func Panel(r *lipgloss.Renderer, lines []string) string {
	border := r.NewStyle().
		Border(current.Border).
		BorderForeground(current.Muted).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}
