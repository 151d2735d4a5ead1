package home

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/blocksmith/internal/constants"
)

func TestCatalogSorted(t *testing.T) {
	entries := Catalog()
	if len(entries) == 0 {
		t.Fatal("empty catalog")
	}
	for i := 1; i < len(entries); i++ {
		if strings.ToLower(entries[i-1].Name) > strings.ToLower(entries[i].Name) {
			t.Errorf("catalog not sorted: %q before %q", entries[i-1].Name, entries[i].Name)
		}
	}
}

func TestFilter(t *testing.T) {
	entries := Catalog()
	tests := []struct {
		query string
		want  []string
	}{
		{"", nil},
		{"picker", []string{"Date/Time Picker"}},
		{"CHECK", []string{"Checkbox"}},
		{"tabular", []string{"Table"}},
		{"zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Filter(entries, tt.query)
			if tt.want == nil {
				if len(got) != len(entries) {
					t.Errorf("empty query returned %d entries, want all %d", len(got), len(entries))
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q) = %d entries, want %d", tt.query, len(got), len(tt.want))
			}
			for i, e := range got {
				if e.Name != tt.want[i] {
					t.Errorf("Filter(%q)[%d] = %q, want %q", tt.query, i, e.Name, tt.want[i])
				}
			}
		})
	}
}

func TestSearchAndOpen(t *testing.T) {
	m := New(constants.ThemeDark)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !m.Searching() {
		t.Fatal("'/' should focus the search box")
	}
	for _, r := range "date" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Searching() {
		t.Fatal("enter should leave the search box")
	}

	if len(m.Visible()) != 1 {
		t.Fatalf("visible = %d entries, want 1", len(m.Visible()))
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on the picker entry should open its playground")
	}
	msg, ok := cmd().(OpenPlaygroundMsg)
	if !ok || msg.Slug != "date-time-picker" {
		t.Errorf("cmd() = %#v, want OpenPlaygroundMsg{date-time-picker}", msg)
	}
}

func TestComingSoonEntriesDoNotOpen(t *testing.T) {
	m := New(constants.ThemeLight)
	if e, _ := m.Selected(); e.Playground {
		t.Skip("first entry unexpectedly has a playground")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("entry without a playground should not open one")
	}
}

func TestViewListsEntries(t *testing.T) {
	out := New(constants.ThemeDark).View()
	for _, want := range []string{"Blocksmith UI", "Accordion", "Date/Time Picker"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
