package model

// Item is the domain model for a todo entry.
// Description is nil when the entry has no description lines at all.
type Item struct {
	Title       string  `json:"title"`
	Done        bool    `json:"done"`
	Description *string `json:"description,omitempty"`
}

// HasDescription reports whether the item carries description text.
func (it Item) HasDescription() bool { return it.Description != nil }

// DescriptionText returns the description or "" when absent.
func (it Item) DescriptionText() string {
	if it.Description == nil {
		return ""
	}
	return *it.Description
}
