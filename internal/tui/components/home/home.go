package home

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/blocksmith/internal/constants"
	"github.com/julianstephens/blocksmith/internal/tui/theme"
)

// OpenPlaygroundMsg asks the shell to switch to the playground for Slug.
type OpenPlaygroundMsg struct {
	Slug string
}

type KeyMap struct {
	Search key.Binding
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open playground"),
		),
	}
}

type Model struct {
	entries []Entry
	visible []Entry
	cursor  int
	search  textinput.Model
	keys    KeyMap
	palette theme.Palette
	width   int
	height  int
}

func New(t constants.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "Search components..."
	ti.Prompt = "/ "
	ti.CharLimit = 40

	entries := Catalog()
	return Model{
		entries: entries,
		visible: entries,
		search:  ti,
		keys:    DefaultKeyMap(),
		palette: theme.For(t),
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetTheme(t constants.Theme) {
	m.palette = theme.For(t)
}

// Searching reports whether the search box has focus; the shell must not
// treat keys as shortcuts while it does.
func (m Model) Searching() bool {
	return m.search.Focused()
}

func (m Model) Visible() []Entry { return m.visible }

// Selected returns the entry under the cursor.
func (m Model) Selected() (Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return Entry{}, false
	}
	return m.visible[m.cursor], true
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.search.Focused() {
		switch km.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(km)
		m.visible = Filter(m.entries, m.search.Value())
		m.cursor = 0
		return m, cmd
	}

	switch {
	case key.Matches(km, m.keys.Search):
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(km, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case key.Matches(km, m.keys.Open):
		if e, ok := m.Selected(); ok && e.Playground {
			slug := e.Slug
			return m, func() tea.Msg { return OpenPlaygroundMsg{Slug: slug} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	p := m.palette

	header := lipgloss.JoinVertical(lipgloss.Left,
		p.Title.Render(constants.DisplayName),
		p.Label.Render("Beautiful, accessible UI components. Pick one to explore."),
		"",
		m.search.View(),
		"",
	)

	if len(m.visible) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, p.Warn.Render("No components found."))
	}

	var rows []string
	for i, e := range m.visible {
		marker := "  "
		name := p.Value.Render(e.Name)
		if i == m.cursor {
			marker = p.Title.Render("> ")
		}
		tag := " " + p.Label.Render("(coming soon)")
		if e.Playground {
			tag = " " + p.ActiveTab.Render("playground")
		}
		rows = append(rows, fmt.Sprintf("%s%s%s", marker, name, tag))
		if i == m.cursor {
			rows = append(rows, "    "+p.Label.Render(e.Description))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(rows, "\n"))
}
