package home

import (
	"sort"
	"strings"
)

// Entry is one component in the Blocksmith catalog.
type Entry struct {
	Name        string
	Slug        string
	Description string
	Playground  bool // has an interactive playground in this app
}

var catalog = []Entry{
	{Name: "Accordion", Slug: "accordion", Description: "A vertically stacked set of interactive headings that each reveal a section of content."},
	{Name: "Alert", Slug: "alert", Description: "Displays important messages in a prominent way."},
	{Name: "Avatar", Slug: "avatar", Description: "A graphical representation of a user or entity."},
	{Name: "Badge", Slug: "badge", Description: "A small count or status indicator for UI elements."},
	{Name: "Button", Slug: "button", Description: "A clickable button element for user actions."},
	{Name: "Card", Slug: "card", Description: "A flexible and extensible content container."},
	{Name: "Dropdown", Slug: "dropdown", Description: "A toggleable menu for displaying a list of actions."},
	{Name: "Text Input", Slug: "text-input", Description: "A single-line field for user text input."},
	{Name: "Tooltip", Slug: "tooltip", Description: "A popup that displays information related to an element."},
	{Name: "Select", Slug: "select", Description: "A dropdown select input for choosing a single option from a list."},
	{Name: "Checkbox", Slug: "checkbox", Description: "A standard checkbox input for toggling boolean values."},
	{Name: "Table", Slug: "table", Description: "A flexible table component for displaying tabular data with sorting, selection, and pagination."},
	{Name: "Date/Time Picker", Slug: "date-time-picker", Description: "A flexible picker for dates, times, and ranges.", Playground: true},
}

// Catalog returns every entry sorted by name.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// Filter keeps entries whose name or description contains query, ignoring case.
func Filter(entries []Entry, query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}
	var out []Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), q) || strings.Contains(strings.ToLower(e.Description), q) {
			out = append(out, e)
		}
	}
	return out
}
