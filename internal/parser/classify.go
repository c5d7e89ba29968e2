package parser

import (
	"regexp"
	"strings"
)

// Kind is the grammar category of a single input line.
type Kind int

const (
	KindUnknown Kind = iota
	KindSection
	KindTitle
	KindDescription
	KindBlank
)

func (k Kind) String() string {
	switch k {
	case KindSection:
		return "section"
	case KindTitle:
		return "title"
	case KindDescription:
		return "description"
	case KindBlank:
		return "blank"
	}
	return "unknown"
}

// Line is a classified input line. Text holds the section name, the item
// title or the description text depending on Kind; Done is only meaningful
// for KindTitle.
type Line struct {
	Kind Kind
	Text string
	Done bool
}

// \w in these patterns is spelled [\p{L}\p{N}_] so non-ASCII section names
// and titles classify the same way ASCII ones do.
var patterns = struct {
	section     *regexp.Regexp
	title       *regexp.Regexp
	description *regexp.Regexp
}{
	section:     regexp.MustCompile(`^([\p{L}\p{N}_](?:.*[^\s*])?)\s*:`),
	title:       regexp.MustCompile(`^[^\p{L}\p{N}_\[]*\[\s*([xX])?\s*\]\s*([\p{L}\p{N}_].*)$`),
	description: regexp.MustCompile(`^\s+([\p{L}\p{N}_].*)$`),
}

// Classify matches one line against the list grammar. Section headers win
// over titles, titles over descriptions. A trailing "\n" or "\r\n" is ignored.
// Only an empty line is blank; a line of spaces or tabs is unknown.
func Classify(line string) Line {
	line = strings.TrimRight(line, "\r\n")

	if m := patterns.section.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindSection, Text: m[1]}
	}
	if m := patterns.title.FindStringSubmatch(line); m != nil {
		return Line{
			Kind: KindTitle,
			Text: strings.TrimRight(m[2], " \t"),
			Done: m[1] != "",
		}
	}
	if m := patterns.description.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindDescription, Text: strings.TrimRight(m[1], " \t")}
	}
	if line == "" {
		return Line{Kind: KindBlank}
	}
	return Line{Kind: KindUnknown}
}
