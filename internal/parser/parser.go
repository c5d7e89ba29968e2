// Package parser turns the plain-text todo format into a model.Model.
//
// The format has no explicit delimiters: section headers end in a colon,
// items start with a checkbox, and indented lines continue the description
// of the item above them. Two blank lines inside an explicit section drop
// back to the general section. Lines that fit none of these are skipped.
package parser

import (
	"bufio"
	"strings"

	"github.com/idilsaglam/simpletodo/internal/model"
)

// sectionResetBlanks is the number of consecutive blank lines that ends an
// explicit section.
const sectionResetBlanks = 2

// Report describes what a parse pass skipped.
type Report struct {
	// Skipped holds 1-based line numbers of lines that matched no rule.
	Skipped []int
}

// Parse builds a model from the lines of a todo file. It never fails:
// unrecognized lines are dropped.
func Parse(lines []string) *model.Model {
	m, _ := ParseWithReport(lines)
	return m
}

// ParseString splits text into lines and parses them.
func ParseString(text string) *model.Model {
	return Parse(SplitLines(text))
}

// ParseWithReport is Parse plus the list of skipped lines.
func ParseWithReport(lines []string) (*model.Model, Report) {
	b := model.NewBuilder()
	c := newCursor(b)
	var rep Report
	for i, raw := range lines {
		ln := Classify(raw)
		if ln.Kind == KindUnknown {
			rep.Skipped = append(rep.Skipped, i+1)
		}
		c.step(ln)
	}
	c.finish()
	return b.Build(), rep
}

// SplitLines splits text on newlines. A final newline does not produce an
// extra empty line.
func SplitLines(text string) []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out
}

// pendingItem is the item being assembled. Blank lines seen after the
// description has started are held in heldBlanks and only written once more
// description text arrives, so trailing blanks never reach the model.
type pendingItem struct {
	section    string
	title      string
	done       bool
	desc       strings.Builder
	hasDesc    bool
	heldBlanks int
}

func (p *pendingItem) appendText(text string) {
	for ; p.heldBlanks > 0; p.heldBlanks-- {
		p.desc.WriteString("\n")
	}
	p.desc.WriteString(text)
	p.desc.WriteString("\n")
	p.hasDesc = true
}

func (p *pendingItem) appendBlank() {
	if p.hasDesc {
		p.heldBlanks++
	}
}

func (p *pendingItem) item() model.Item {
	it := model.Item{Title: p.title, Done: p.done}
	if p.hasDesc {
		d := p.desc.String()
		it.Description = &d
	}
	return it
}

// cursor is the parse state. The blank run (section scoping) and the held
// description blanks (paragraph breaks) are updated by the same blank line
// but tracked separately.
type cursor struct {
	out      *model.Builder
	section  string
	blankRun int
	pending  *pendingItem
}

func newCursor(out *model.Builder) *cursor {
	return &cursor{out: out, section: model.General}
}

func (c *cursor) step(ln Line) {
	if ln.Kind != KindBlank {
		c.blankRun = 0
	}

	switch ln.Kind {
	case KindSection:
		// A pending item keeps the section it was started under.
		c.section = ln.Text
		c.out.Section(ln.Text)

	case KindBlank:
		if c.section != model.General {
			c.blankRun++
			if c.blankRun == sectionResetBlanks {
				c.blankRun = 0
				c.section = model.General
			}
		}
		if c.pending != nil {
			c.pending.appendBlank()
		}

	case KindTitle:
		if c.pending != nil && c.pending.title == ln.Text {
			return
		}
		c.flush()
		c.pending = &pendingItem{section: c.section, title: ln.Text, done: ln.Done}

	case KindDescription:
		if c.pending != nil {
			c.pending.appendText(ln.Text)
		}
	}
}

func (c *cursor) flush() {
	if c.pending == nil {
		return
	}
	c.out.Add(c.pending.section, c.pending.item())
	c.pending = nil
}

func (c *cursor) finish() { c.flush() }
