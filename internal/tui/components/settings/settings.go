package settings

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/blocksmith/internal/models"
	"github.com/julianstephens/blocksmith/internal/tui/theme"
)

// ToggleThemeMsg asks the shell to flip and persist the theme.
type ToggleThemeMsg struct{}

// CycleModeMsg asks the shell to advance and persist the default picker mode.
type CycleModeMsg struct{}

type Model struct {
	settings   models.Settings
	configPath string
	palette    theme.Palette
	status     string
	width      int
	height     int
}

func New(settings models.Settings, configPath string, width, height int) Model {
	return Model{
		settings:   settings,
		configPath: configPath,
		palette:    theme.For(settings.Theme),
		width:      width,
		height:     height,
	}
}

func (m *Model) SetSettings(settings models.Settings) {
	m.settings = settings
	m.palette = theme.For(settings.Theme)
}

// SetStatus shows a one-line result (saved, or an error) under the settings.
func (m *Model) SetStatus(status string) {
	m.status = status
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "t":
			return m, func() tea.Msg { return ToggleThemeMsg{} }
		case "m":
			return m, func() tea.Msg { return CycleModeMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	p := m.palette
	label := p.Label.Width(20)
	row := func(name, value string) string {
		return fmt.Sprintf("%s %s", label.Render(name), p.Value.Render(value))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		p.Title.MarginBottom(1).Render("Appearance"),
		row("Theme:", string(m.settings.Theme)),
		row("Default mode:", m.settings.DefaultMode),
		row("Timezone:", m.settings.Timezone),
		"",
		row("Storage:", m.configPath),
	)

	if m.status != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", p.Warn.Render(m.status))
	}

	help := p.Help.MarginTop(2).Render("Press 't' to toggle light/dark, 'm' to change the default mode")
	content = lipgloss.JoinVertical(lipgloss.Left, content, help)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Left,
		lipgloss.Top,
		lipgloss.NewStyle().Padding(2, 4).Render(content),
	)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
