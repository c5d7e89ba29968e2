package cli

import (
	"encoding/json"
	"fmt"

	"github.com/idilsaglam/simpletodo/internal/model"
	"github.com/idilsaglam/simpletodo/internal/render"
)

// sectionJSON is one entry of the --json output.
type sectionJSON struct {
	Section string       `json:"section"`
	Items   []model.Item `json:"items"`
}

func (a *App) show(selection []string) error {
	m, err := a.loadOrOffer()
	if err != nil || m == nil {
		return err
	}

	if a.JSON {
		return a.writeJSON(m, selection)
	}

	lines, err := render.Render(m, selection, a.renderOptions())
	if err != nil {
		return err
	}
	return render.Write(a.out, lines)
}

func (a *App) writeJSON(m *model.Model, selection []string) error {
	sections := selection
	if len(sections) == 0 {
		sections = m.Sections()
	}
	out := make([]sectionJSON, 0, len(sections))
	for _, s := range sections {
		if !m.Has(s) {
			return &render.UnknownSectionError{Section: s}
		}
		out = append(out, sectionJSON{Section: s, Items: m.Items(s)})
	}
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}
