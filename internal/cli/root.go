package cli

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/simpletodo/internal/config"
	"github.com/idilsaglam/simpletodo/internal/logging"
	"github.com/idilsaglam/simpletodo/internal/model"
	"github.com/idilsaglam/simpletodo/internal/parser"
	"github.com/idilsaglam/simpletodo/internal/render"
	"github.com/idilsaglam/simpletodo/internal/store/textstore"
	"github.com/idilsaglam/simpletodo/internal/ui"
)

// allSections is the positional value that selects every section.
const allSections = "all"

// App carries flag values and resolved settings for one invocation.
type App struct {
	ConfigPath    string
	TodoList      string
	Edit          bool
	Section       string
	NoDescription bool
	NoSection     bool
	IndentSpaces  int
	Colors        []string
	Theme         string
	ForceColor    bool
	JSON          bool
	Verbose       bool

	cfg *config.Config
	log *log.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// runCommand runs an external program attached to the terminal.
	runCommand func(name string, args ...string) error
}

func newApp(in io.Reader, out, errOut io.Writer) *App {
	app := &App{in: in, out: out, errOut: errOut, log: logging.Discard()}
	app.runCommand = func(name string, args ...string) error {
		c := exec.Command(name, args...)
		c.Stdin, c.Stdout, c.Stderr = app.in, app.out, app.errOut
		return c.Run()
	}
	return app
}

// usageError marks bad invocations; they exit with status 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// errQuiet ends a run with status 1 after the message was already shown.
var errQuiet = errors.New("quiet failure")

func NewRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "simpletodo [section]",
		Short:         "Show a plain-text todo list in the terminal",
		Long: `Show a plain-text todo list in the terminal.

The optional argument names one section, or "all". A section that shares
its name with a subcommand (sections, stats, browse) or with "all" is
selected with --section instead.

With -e the argument is a file to edit rather than a section.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		Example: strings.TrimSpace(`
  # Every section
  simpletodo

  # One section, titles only
  simpletodo Work -d

  # Open the list in $EDITOR
  simpletodo -e

  # A section called "stats"
  simpletodo --section stats
`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Edit {
				if len(args) == 1 {
					return app.editFile(config.ExpandPath(args[0]))
				}
				return app.edit()
			}
			sel, err := app.selection(cmd, args)
			if err != nil {
				return err
			}
			return app.show(sel)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.ConfigPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/simpletodo/config.toml)")
	pf.StringVarP(&app.TodoList, "todo-list", "l", "", "Todo list file (default: $SIMPLETODO_LIST or ~/.todo_list)")
	pf.BoolVarP(&app.NoDescription, "no-description", "d", false, "Do not print descriptions")
	pf.BoolVarP(&app.NoSection, "no-section", "s", false, "Do not print section headers")
	pf.IntVarP(&app.IndentSpaces, "indent-spaces", "i", 0, "Spaces before each item (default: 1 for one section, else 4)")
	pf.StringSliceVarP(&app.Colors, "color", "c", nil, "Colors for section,todo,done (ANSI index or #hex)")
	pf.StringVar(&app.Theme, "theme", "", "Icon theme: classic, neon or mono")
	pf.BoolVar(&app.ForceColor, "force-color", false, "Color output even when it is not a terminal")
	pf.BoolVarP(&app.Verbose, "verbose", "v", false, "Debug logging to stderr")

	cmd.Flags().BoolVarP(&app.Edit, "edit", "e", false, "Edit the todo list, or the file given as argument, with $EDITOR")
	cmd.Flags().StringVar(&app.Section, "section", "", "Show this section even if its name is a subcommand or \"all\"")
	cmd.Flags().BoolVar(&app.JSON, "json", false, "Print the parsed list as JSON")

	cmd.AddCommand(newSectionsCmd(app))
	cmd.AddCommand(newStatsCmd(app))
	cmd.AddCommand(newBrowseCmd(app))
	return cmd
}

// Execute runs the command tree and returns an exit code (0 ok, 1 error, 2 usage).
func Execute(args []string, in io.Reader, out, errOut io.Writer) int {
	return newApp(in, out, errOut).execute(args)
}

func (a *App) execute(args []string) int {
	cmd := NewRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)
	return a.exitCode(cmd.Execute())
}

func (a *App) exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, errQuiet) {
		return 1
	}
	var ue usageError
	if errors.As(err, &ue) {
		ui.Fail(a.errOut, ue.Error())
		return 2
	}
	ui.Fail(a.errOut, err.Error())
	return 1
}

// setup resolves configuration: defaults, file and env from config.Load,
// then any flag the user actually set.
func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("todo-list") {
		cfg.TodoList = config.ExpandPath(a.TodoList)
	}
	if flags.Changed("no-description") {
		cfg.NoDescription = a.NoDescription
	}
	if flags.Changed("no-section") {
		cfg.NoSection = a.NoSection
	}
	if flags.Changed("indent-spaces") {
		if a.IndentSpaces < 0 {
			return usagef("--indent-spaces must be >= 0")
		}
		cfg.IndentSpaces = a.IndentSpaces
	}
	if flags.Changed("color") {
		if len(a.Colors) != 3 {
			return usagef("--color takes three values: section,todo,done")
		}
		cfg.Colors = render.Colors{Section: a.Colors[0], Todo: a.Colors[1], Done: a.Colors[2]}
	}
	if flags.Changed("theme") {
		cfg.Theme = a.Theme
	}
	if flags.Changed("force-color") {
		cfg.ForceColor = a.ForceColor
	}
	if a.Verbose {
		cfg.LogLevel = "debug"
	}

	ui.SetColorForcing(cfg.ForceColor, cfg.NoColor)
	if err := ui.SetTheme(cfg.Theme); err != nil {
		return usageError{err}
	}

	opts := logging.DefaultOptions()
	opts.Level = cfg.LogLevel
	a.log = logging.New(a.errOut, opts)
	if cfg.File != "" {
		a.log.Debug("loaded config", "file", cfg.File)
	}
	a.log.Debug("using todo list", "path", cfg.TodoList)

	a.cfg = cfg
	return nil
}

// selection picks the sections to show. --section is taken literally, so
// it can name "all" or a section called like a subcommand.
func (a *App) selection(cmd *cobra.Command, args []string) ([]string, error) {
	if !cmd.Flags().Changed("section") {
		return sectionArg(args), nil
	}
	if len(args) > 0 {
		return nil, usagef("give the section as an argument or with --section, not both")
	}
	return []string{a.Section}, nil
}

func sectionArg(args []string) []string {
	if len(args) == 0 || args[0] == allSections {
		return nil
	}
	return []string{args[0]}
}

// loadModel reads and parses the todo list. A missing file comes back as a
// *textstore.FileAccessError for the caller to handle.
func (a *App) loadModel() (*model.Model, error) {
	lines, err := textstore.Load(a.cfg.TodoList)
	if err != nil {
		return nil, err
	}
	m, rep := parser.ParseWithReport(lines)
	if len(rep.Skipped) > 0 {
		a.log.Debug("skipped unrecognized lines", "file", a.cfg.TodoList, "lines", rep.Skipped)
	}
	a.log.Debug("parsed todo list", "sections", len(m.Sections()), "items", m.Len())
	return m, nil
}

// loadOrOffer loads the model, asking to create the file when it is
// missing. A nil model with a nil error means the editor was run instead.
func (a *App) loadOrOffer() (*model.Model, error) {
	m, err := a.loadModel()
	if err == nil {
		return m, nil
	}
	if !textstore.IsNotExist(err) {
		return nil, err
	}
	return nil, a.offerEdit()
}

func (a *App) renderOptions() render.Options {
	t := ui.Current()
	return render.Options{
		Indent:          a.cfg.IndentSpaces,
		ShowDescription: !a.cfg.NoDescription,
		ShowSection:     !a.cfg.NoSection,
		Colors:          a.cfg.Colors,
		Width:           ui.TerminalWidth(a.out),
		TodoIcon:        t.BoxUnchecked,
		DoneIcon:        t.BoxChecked,
		Renderer:        ui.Renderer(a.out),
	}
}
