package about

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/blocksmith/internal/constants"
	"github.com/julianstephens/blocksmith/internal/logger"
)

//go:embed about.md
var Markdown string

type Model struct {
	theme    constants.Theme
	rendered string
	width    int
	height   int
}

func New(t constants.Theme) Model {
	m := Model{theme: t}
	m.render()
	return m
}

func (m *Model) SetSize(width, height int) {
	if width == m.width && height == m.height {
		return
	}
	m.width = width
	m.height = height
	m.render()
}

func (m *Model) SetTheme(t constants.Theme) {
	m.theme = t
	m.render()
}

// Render renders the about page as terminal markdown at the given wrap width.
func Render(t constants.Theme, wrap int) (string, error) {
	if wrap <= 0 {
		wrap = 80
	}
	style := "dark"
	if t == constants.ThemeLight {
		style = "light"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", err
	}
	return r.Render(Markdown)
}

func (m *Model) render() {
	wrap := min(m.width-4, 100)
	out, err := Render(m.theme, wrap)
	if err != nil {
		logger.Warn("Failed to render about page", "error", err)
		out = Markdown
	}
	m.rendered = out
}

func (m Model) View() string {
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, m.rendered)
	}
	return m.rendered
}
