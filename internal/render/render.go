// Package render lays a parsed todo model out as terminal lines.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/idilsaglam/simpletodo/internal/model"
)

const (
	compactIndent  = 1
	sectionIndent  = 4
	minWrapWidth   = 10
	fallbackColumn = 80
)

// Colors are lipgloss color strings (ANSI index or hex). Empty means no color.
type Colors struct {
	Section string `toml:"section"`
	Todo    string `toml:"todo"`
	Done    string `toml:"done"`
}

// DefaultColors matches the classic terminal palette: white, red, green.
func DefaultColors() Colors {
	return Colors{Section: "15", Todo: "1", Done: "2"}
}

// Options tune rendering.
type Options struct {
	Indent          int // spaces before titles; 0 picks DefaultIndent
	ShowDescription bool
	ShowSection     bool
	Colors          Colors
	Width           int // terminal columns
	TodoIcon        string
	DoneIcon        string

	// Renderer defaults to lipgloss.DefaultRenderer().
	Renderer *lipgloss.Renderer
}

func DefaultOptions() Options {
	return Options{
		ShowDescription: true,
		ShowSection:     true,
		Colors:          DefaultColors(),
		Width:           fallbackColumn,
		TodoIcon:        "☐",
		DoneIcon:        "☑",
	}
}

// UnknownSectionError is returned when a requested section is not in the model.
type UnknownSectionError struct {
	Section string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("section not found: %s", e.Section)
}

// DefaultIndent keeps single-section views compact and indents multi-section
// views under their headers.
func DefaultIndent(sections int, showSection bool) int {
	if sections == 1 || !showSection {
		return compactIndent
	}
	return sectionIndent
}

// Render returns display lines for the selected sections, or for every
// section when selection is empty. Sections without items are skipped.
// Nothing is rendered if any selected section is unknown.
func Render(m *model.Model, selection []string, opt Options) ([]string, error) {
	sections := selection
	if len(sections) == 0 {
		sections = m.Sections()
	}
	for _, s := range sections {
		if !m.Has(s) {
			return nil, &UnknownSectionError{Section: s}
		}
	}

	indent := opt.Indent
	if indent <= 0 {
		indent = DefaultIndent(len(sections), opt.ShowSection)
	}
	st := newStyles(opt)

	var out []string
	for _, s := range sections {
		items := m.Items(s)
		if len(items) == 0 {
			continue
		}
		if opt.ShowSection && len(sections) > 1 {
			out = append(out, st.header.Render(s))
		}
		for _, it := range items {
			out = append(out, itemLines(it, indent, opt, st)...)
		}
	}
	return out, nil
}

// Write prints lines to w, one per row.
func Write(w io.Writer, lines []string) error {
	for _, ln := range lines {
		if _, err := fmt.Fprintln(w, ln); err != nil {
			return err
		}
	}
	return nil
}

type styles struct {
	header lipgloss.Style
	todo   lipgloss.Style
	done   lipgloss.Style
}

func newStyles(opt Options) styles {
	r := opt.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	fg := func(s lipgloss.Style, c string) lipgloss.Style {
		if c == "" {
			return s
		}
		return s.Foreground(lipgloss.Color(c))
	}
	return styles{
		header: fg(r.NewStyle().Bold(true).Underline(true), opt.Colors.Section),
		todo:   fg(r.NewStyle(), opt.Colors.Todo),
		done:   fg(r.NewStyle(), opt.Colors.Done),
	}
}

func itemLines(it model.Item, indent int, opt Options, st styles) []string {
	base, icon := st.todo, opt.TodoIcon
	if it.Done {
		base, icon = st.done, opt.DoneIcon
	}
	title := base.Strikethrough(it.Done).Render(it.Title)
	if icon != "" {
		title = base.Render(icon) + " " + title
	}

	lines := []string{strings.Repeat(" ", indent) + title}
	if !opt.ShowDescription {
		return lines
	}

	if it.HasDescription() {
		descStyle := base.Faint(true).Strikethrough(it.Done)
		pad := strings.Repeat(" ", indent+2)
		for _, row := range descriptionRows(it.DescriptionText(), wrapWidth(opt.Width, indent)) {
			if row == "" {
				lines = append(lines, "")
				continue
			}
			lines = append(lines, pad+descStyle.Render(row))
		}
	}
	return append(lines, "")
}

func wrapWidth(columns, indent int) int {
	if columns <= 0 {
		columns = fallbackColumn
	}
	w := columns - indent*2
	if w < minWrapWidth {
		w = minWrapWidth
	}
	return w
}

// descriptionRows splits a description into paragraphs at blank lines and
// wraps each one on its own. Every blank line yields one empty row.
func descriptionRows(desc string, width int) []string {
	desc = strings.Trim(desc, "\n")
	if strings.TrimSpace(desc) == "" {
		return nil
	}
	var rows, para []string
	flush := func() {
		if len(para) == 0 {
			return
		}
		rows = append(rows, wrapParagraph(strings.Join(para, " "), width)...)
		para = para[:0]
	}
	for _, ln := range strings.Split(desc, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			flush()
			rows = append(rows, "")
			continue
		}
		para = append(para, ln)
	}
	flush()
	return rows
}

func wrapParagraph(p string, width int) []string {
	wrapped := wrap.String(wordwrap.String(p, width), width)
	out := strings.Split(wrapped, "\n")
	for i := range out {
		out[i] = strings.TrimRight(out[i], " ")
	}
	return out
}
