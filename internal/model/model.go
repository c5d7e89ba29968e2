package model

// General is the implicit section. It always exists, even when empty.
const General = "general"

// Model maps section names to their items, in first-seen section order.
// A Model is read-only once built.
type Model struct {
	order []string
	items map[string][]Item
}

// Sections returns section names in first-seen order, General first.
func (m *Model) Sections() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Has reports whether a section with exactly this name exists.
func (m *Model) Has(section string) bool {
	_, ok := m.items[section]
	return ok
}

// Items returns a copy of the items filed under section.
func (m *Model) Items(section string) []Item {
	src := m.items[section]
	out := make([]Item, len(src))
	copy(out, src)
	return out
}

// Len counts items across all sections.
func (m *Model) Len() int {
	n := 0
	for _, s := range m.order {
		n += len(m.items[s])
	}
	return n
}

// Stats counts done and pending items in one section.
func (m *Model) Stats(section string) (done, pending int) {
	for _, it := range m.items[section] {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// Builder assembles a Model. The zero value is not usable; call NewBuilder.
type Builder struct {
	m *Model
}

func NewBuilder() *Builder {
	b := &Builder{m: &Model{items: map[string][]Item{}}}
	b.Section(General)
	return b
}

// Section registers a section if it has not been seen yet.
func (b *Builder) Section(name string) {
	if _, ok := b.m.items[name]; ok {
		return
	}
	b.m.order = append(b.m.order, name)
	b.m.items[name] = []Item{}
}

// Add appends an item to section, registering the section if needed.
func (b *Builder) Add(section string, it Item) {
	b.Section(section)
	b.m.items[section] = append(b.m.items[section], it)
}

// Build returns the model. The builder must not be used afterwards.
func (b *Builder) Build() *Model {
	m := b.m
	b.m = nil
	return m
}
