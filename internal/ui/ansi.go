package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	symCheck = "✔"
	symCross = "✖"

	fallbackWidth = 80
)

var (
	forceColor   bool
	disableColor bool
)

// SetColorForcing sets the color switches used by Renderer. disable wins.
func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

// Renderer returns a lipgloss renderer for w honoring the color switches.
// Without a switch the profile is detected from w.
func Renderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch {
	case disableColor:
		r.SetColorProfile(termenv.Ascii)
	case forceColor:
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

func OK(w io.Writer, msg string) {
	st := Renderer(w).NewStyle().Foreground(current.Success)
	fmt.Fprintln(w, st.Render(symCheck+" "+msg))
}

func Fail(w io.Writer, msg string) {
	st := Renderer(w).NewStyle().Foreground(current.Error)
	fmt.Fprintln(w, st.Render(symCross+" "+msg))
}

// Muted prints a dim hint line.
func Muted(w io.Writer, msg string) {
	fmt.Fprintln(w, Renderer(w).NewStyle().Foreground(current.Muted).Render(msg))
}

// TerminalWidth reports the column count of w when it is a terminal, then
// $COLUMNS, then 80.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 0 {
		return n
	}
	return fallbackWidth
}
