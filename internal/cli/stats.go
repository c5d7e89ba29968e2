package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/simpletodo/internal/model"
	"github.com/idilsaglam/simpletodo/internal/ui"
)

const progressWidth = 28

func newSectionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List section names with item counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.loadOrOffer()
			if err != nil || m == nil {
				return err
			}
			for _, ln := range sectionLines(m) {
				fmt.Fprintln(app.out, ln)
			}
			return nil
		},
	}
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show done/pending counts per section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.loadOrOffer()
			if err != nil || m == nil {
				return err
			}
			r := ui.Renderer(app.out)
			fmt.Fprintln(app.out, ui.Panel(r, statsLines(r, m)))
			return nil
		},
	}
}

func nameWidth(m *model.Model) int {
	w := 0
	for _, s := range m.Sections() {
		if n := ansi.StringWidth(s); n > w {
			w = n
		}
	}
	return w
}

func sectionLines(m *model.Model) []string {
	w := nameWidth(m)
	out := make([]string, 0, len(m.Sections()))
	for _, s := range m.Sections() {
		d, p := m.Stats(s)
		out = append(out, fmt.Sprintf("%s  %d/%d", ui.PadRight(s, w), d, d+p))
	}
	return out
}

func statsLines(r *lipgloss.Renderer, m *model.Model) []string {
	t := ui.Current()
	title := r.NewStyle().Foreground(t.Title).Bold(true)
	doneSt := r.NewStyle().Foreground(t.Success)
	pendingSt := r.NewStyle().Foreground(t.Pending)
	totalSt := r.NewStyle().Foreground(t.Accent)

	var done, pending int
	for _, s := range m.Sections() {
		d, p := m.Stats(s)
		done += d
		pending += p
	}

	lines := []string{
		fmt.Sprintf("%s  %s  %s  %s",
			title.Render("Todos"),
			doneSt.Render(fmt.Sprintf("%s %d", t.SymDone, done)),
			pendingSt.Render(fmt.Sprintf("%s %d", t.SymPending, pending)),
			totalSt.Render(fmt.Sprintf("Total %d", done+pending))),
		ui.ProgressBar(done, done+pending, progressWidth),
		"",
	}
	w := nameWidth(m)
	for _, s := range m.Sections() {
		d, p := m.Stats(s)
		if d+p == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s  %s", ui.PadRight(s, w), ui.ProgressBar(d, d+p, progressWidth/2)))
	}
	if done+pending == 0 {
		lines = append(lines, "no items")
	}
	return lines
}
