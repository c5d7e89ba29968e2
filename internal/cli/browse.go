package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/simpletodo/internal/model"
	"github.com/idilsaglam/simpletodo/internal/render"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [section]",
		Short: "Scroll through the list in a full-screen pager",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.loadOrOffer()
			if err != nil || m == nil {
				return err
			}
			bm, err := newBrowseModel(m, sectionArg(args), app.renderOptions())
			if err != nil {
				return err
			}
			p := tea.NewProgram(bm, tea.WithAltScreen(), tea.WithInput(app.in), tea.WithOutput(app.out))
			_, err = p.Run()
			return err
		},
	}
}

type browseKeys struct {
	Up, Down, Descriptions, Sections, Quit key.Binding
}

func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Descriptions, k.Sections, k.Quit}
}

func (k browseKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func defaultBrowseKeys() browseKeys {
	return browseKeys{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Descriptions: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "descriptions")),
		Sections:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sections")),
		Quit:         key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// browseModel is a read-only pager over rendered lines. It re-renders on
// resize so descriptions wrap to the window.
type browseModel struct {
	todos     *model.Model
	selection []string
	opts      render.Options

	vp    viewport.Model
	keys  browseKeys
	help  help.Model
	ready bool
	lines []string
}

// newBrowseModel renders once up front so an unknown section fails before
// the program takes over the terminal.
func newBrowseModel(m *model.Model, selection []string, opts render.Options) (browseModel, error) {
	bm := browseModel{
		todos:     m,
		selection: selection,
		opts:      opts,
		keys:      defaultBrowseKeys(),
		help:      help.New(),
	}
	if err := bm.refresh(); err != nil {
		return browseModel{}, err
	}
	return bm, nil
}

func (m *browseModel) refresh() error {
	lines, err := render.Render(m.todos, m.selection, m.opts)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		lines = []string{"no items"}
	}
	m.lines = lines
	if m.ready {
		m.vp.SetContent(strings.Join(lines, "\n"))
	}
	return nil
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - 1
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.vp.Width, m.vp.Height = msg.Width, height
		}
		m.help.Width = msg.Width
		m.opts.Width = msg.Width
		_ = m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Descriptions):
			m.opts.ShowDescription = !m.opts.ShowDescription
			_ = m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Sections):
			m.opts.ShowSection = !m.opts.ShowSection
			_ = m.refresh()
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	if !m.ready {
		return "loading…"
	}
	return m.vp.View() + "\n" + m.help.View(m.keys)
}
