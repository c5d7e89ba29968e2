package cli

import (
	"bufio"
	"fmt"
	"strings"
	"unicode"

	"github.com/idilsaglam/simpletodo/internal/config"
	"github.com/idilsaglam/simpletodo/internal/store/textstore"
	"github.com/idilsaglam/simpletodo/internal/ui"
)

// edit opens the todo list in the configured editor.
func (a *App) edit() error {
	return a.editFile(a.cfg.TodoList)
}

func (a *App) editFile(path string) error {
	if err := textstore.EnsureDir(path); err != nil {
		return err
	}
	argv := splitShellWords(a.cfg.Editor)
	if len(argv) == 0 {
		argv = []string{config.DefaultEditor}
	}
	a.log.Debug("running editor", "argv", argv, "file", path)
	if err := a.runCommand(argv[0], append(argv[1:], path)...); err != nil {
		return fmt.Errorf("editor %s: %w", argv[0], err)
	}
	return nil
}

// offerEdit asks whether to create a missing todo list.
func (a *App) offerEdit() error {
	fmt.Fprint(a.errOut, "File not found. Edit it? (y/N): ")
	answer, _ := bufio.NewReader(a.in).ReadString('\n')
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
		return a.edit()
	}
	fmt.Fprintln(a.errOut)
	ui.Fail(a.errOut, "todo list not found: "+a.cfg.TodoList)
	ui.Muted(a.errOut, "Hint: run `simpletodo -e` to create it")
	return errQuiet
}

// splitShellWords breaks an editor setting such as `code --wait` into argv
// the way sh would for the common cases. Text in '' is taken literally, text
// in "" may hold escaped quotes, and a backslash elsewhere protects the next
// rune. An empty quoted pair still yields an (empty) argument.
func splitShellWords(s string) []string {
	var (
		argv  []string
		word  strings.Builder
		inArg bool
		quote rune
	)
	end := func() {
		if inArg {
			argv = append(argv, word.String())
			word.Reset()
			inArg = false
		}
	}

	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case quote == '\'':
			if r == '\'' {
				quote = 0
			} else {
				word.WriteRune(r)
			}
		case r == '\\' && i+1 < len(rs):
			i++
			word.WriteRune(rs[i])
			inArg = true
		case quote == '"':
			if r == '"' {
				quote = 0
			} else {
				word.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inArg = true
		case unicode.IsSpace(r):
			end()
		default:
			word.WriteRune(r)
			inArg = true
		}
	}
	end()
	return argv
}
