package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/blocksmith/internal/constants"
	"github.com/julianstephens/blocksmith/internal/tui/theme"
)

var tabTitles = []struct {
	state constants.SessionState
	title string
}{
	{constants.StateHome, "Home"},
	{constants.StatePlayground, "Playground"},
	{constants.StateAbout, "About"},
	{constants.StateSettings, "Settings"},
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var content string

	switch m.State {
	case constants.StateHome:
		content = docStyle.Render(m.HomeModel.View())
	case constants.StatePlayground:
		content = m.viewPlayground()
	case constants.StateAbout:
		content = m.AboutModel.View()
	case constants.StateSettings:
		content = m.SettingsModel.View()
	case constants.StateEditProps:
		content = m.viewEditProps()
	}

	var banner string
	if len(m.Conflicts) > 0 && (m.State == constants.StatePlayground || m.State == constants.StateEditProps) {
		banner = bannerStyle.Render(fmt.Sprintf("⚠ %d CONFLICT(S) DETECTED", len(m.Conflicts)))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		content,
		m.Help.View(m),
	)
}

func (m Model) palette() theme.Palette {
	return theme.For(m.Settings.Theme)
}

func (m Model) viewTabs() string {
	p := m.palette()
	active := m.State
	if active == constants.StateEditProps {
		active = constants.StatePlayground
	}

	var tabs []string
	for _, t := range tabTitles {
		if t.state == active {
			tabs = append(tabs, p.ActiveTab.Render(t.title))
		} else {
			tabs = append(tabs, p.InactiveTab.Render(t.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewPlayground() string {
	p := m.palette()

	props := lipgloss.JoinVertical(
		lipgloss.Left,
		p.Title.MarginBottom(1).Render("Controls"),
		m.propRow("Mode", m.Props.Mode.String()),
		m.propRow("Min Date", m.Props.MinDate),
		m.propRow("Max Date", m.Props.MaxDate),
		m.propRow("Min Time", m.Props.MinTime),
		m.propRow("Max Time", m.Props.MaxTime),
		m.propRow("Disabled", fmt.Sprintf("%t", m.Props.Disabled)),
	)

	last := m.LastValue
	if last == "" {
		last = "(empty)"
	}
	output := lipgloss.JoinVertical(
		lipgloss.Left,
		p.Title.MarginTop(1).Render("onChange"),
		m.propRow("Value", last),
		m.propRow("Changes", fmt.Sprintf("%d", m.Changes)),
	)

	left := p.Box.Render(lipgloss.JoinVertical(lipgloss.Left, props, output))
	right := p.Box.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		p.Title.MarginBottom(1).Render("Preview"),
		m.Picker.View(),
	))

	return docStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
}

func (m Model) propRow(name, value string) string {
	p := m.palette()
	if value == "" {
		value = "-"
	}
	return fmt.Sprintf("%s %s", p.Label.Width(10).Render(name+":"), p.Value.Render(value))
}

func (m Model) viewEditProps() string {
	if m.Form == nil {
		return ""
	}
	view := m.Form.View()
	if m.FormError != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, "", m.palette().Error.Render(m.FormError))
	}
	return docStyle.Render(view)
}
