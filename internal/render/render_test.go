package render

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/simpletodo/internal/parser"
)

func plainOptions() Options {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	opt := DefaultOptions()
	opt.Renderer = r
	return opt
}

func strip(lines []string) []string {
	out := make([]string, len(lines))
	for i, ln := range lines {
		out[i] = ansi.Strip(ln)
	}
	return out
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lines mismatch\n got: %q\nwant: %q", got, want)
	}
}

const workList = "Work:\n[ ] Fix bug\n    It crashes on startup.\n\n[x] Write docs\n"

func TestRenderAllSections(t *testing.T) {
	m := parser.ParseString(workList)

	got, err := Render(m, nil, plainOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	assertLines(t, strip(got), []string{
		"Work",
		"    ☐ Fix bug",
		"      It crashes on startup.",
		"",
		"    ☑ Write docs",
		"",
	})
}

func TestRenderSingleSectionIsCompact(t *testing.T) {
	m := parser.ParseString(workList)

	got, err := Render(m, []string{"Work"}, plainOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	assertLines(t, strip(got), []string{
		" ☐ Fix bug",
		"   It crashes on startup.",
		"",
		" ☑ Write docs",
		"",
	})
}

func TestRenderNoSectionNoDescription(t *testing.T) {
	m := parser.ParseString("[ ] loose\nWork:\n[x] tight\n    hidden\n")
	opt := plainOptions()
	opt.ShowSection = false
	opt.ShowDescription = false

	got, err := Render(m, nil, opt)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	assertLines(t, strip(got), []string{" ☐ loose", " ☑ tight"})
}

func TestRenderExplicitIndent(t *testing.T) {
	m := parser.ParseString("[ ] a\n")
	opt := plainOptions()
	opt.Indent = 3
	opt.ShowDescription = false
	opt.TodoIcon = ""

	got, _ := Render(m, nil, opt)
	assertLines(t, strip(got), []string{"   a"})
}

func TestRenderUnknownSection(t *testing.T) {
	m := parser.ParseString(workList)

	got, err := Render(m, []string{"Work", "Nonexistent"}, plainOptions())
	var ue *UnknownSectionError
	if !errors.As(err, &ue) {
		t.Fatalf("expected *UnknownSectionError, got %v", err)
	}
	if ue.Section != "Nonexistent" {
		t.Errorf("Section: got %q, want Nonexistent", ue.Section)
	}
	if got != nil {
		t.Errorf("expected no output, got %q", got)
	}
}

func TestRenderWrapsParagraphsIndependently(t *testing.T) {
	m := parser.ParseString("[ ] Plan\n    alpha beta\n    gamma delta\n\n    epsilon\n")
	opt := plainOptions()
	opt.Width = 12 // wrap width 10 at indent 1

	got, err := Render(m, nil, opt)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	assertLines(t, strip(got), []string{
		" ☐ Plan",
		"   alpha beta",
		"   gamma",
		"   delta",
		"",
		"   epsilon",
		"",
	})
}

func TestRenderHardWrapsLongWords(t *testing.T) {
	m := parser.ParseString("[ ] T\n    supercalifragilistic\n")
	opt := plainOptions()
	opt.Width = 12

	got, _ := Render(m, nil, opt)
	assertLines(t, strip(got), []string{
		" ☐ T",
		"   supercalif",
		"   ragilistic",
		"",
	})
}

func TestRenderSkipsEmptySections(t *testing.T) {
	m := parser.ParseString("Empty:\nWork:\n[ ] a\n")
	opt := plainOptions()
	opt.ShowDescription = false

	got, _ := Render(m, nil, opt)
	assertLines(t, strip(got), []string{"Work", "    ☐ a"})
}

var strikeSGR = regexp.MustCompile(`\x1b\[(?:[0-9]+;)*9(?:;[0-9]+)*m`)

func TestRenderStrikesCompletedItems(t *testing.T) {
	m := parser.ParseString("[x] finished\n    because\n[ ] open\n")
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	opt := DefaultOptions()
	opt.Renderer = r

	got, err := Render(m, nil, opt)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 lines, got %q", got)
	}
	if !strikeSGR.MatchString(got[0]) || !strikeSGR.MatchString(got[1]) {
		t.Errorf("completed title and description should be struck through: %q", got[:2])
	}
	if strikeSGR.MatchString(got[3]) {
		t.Errorf("open item must not be struck through: %q", got[3])
	}
	if ansi.Strip(got[1]) != "   because" {
		t.Errorf("description text: got %q", ansi.Strip(got[1]))
	}
}

func TestDefaultIndent(t *testing.T) {
	tests := []struct {
		sections int
		show     bool
		want     int
	}{
		{1, true, 1},
		{1, false, 1},
		{3, false, 1},
		{3, true, 4},
	}
	for _, tt := range tests {
		if got := DefaultIndent(tt.sections, tt.show); got != tt.want {
			t.Errorf("DefaultIndent(%d, %v): got %d, want %d", tt.sections, tt.show, got, tt.want)
		}
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []string{"a", "", "b"}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "a\n\nb\n" {
		t.Errorf("Write: got %q", got)
	}
}

func TestDescriptionRowsKeepsBlankRuns(t *testing.T) {
	got := descriptionRows("one\n\n\ntwo\n", 40)
	want := []string{"one", "", "", "two"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("descriptionRows: got %q, want %q", got, want)
	}
	if rows := descriptionRows("\n", 40); rows != nil {
		t.Errorf("blank description: got %q, want nil", rows)
	}
	if !strings.Contains(strings.Join(descriptionRows("a b", 40), ""), "a b") {
		t.Errorf("short paragraph should stay on one row")
	}
}
