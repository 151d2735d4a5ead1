package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/blocksmith/internal/constants"
	"github.com/julianstephens/blocksmith/internal/tui/handlers"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.SetSize(size.Width, size.Height)
		return m, nil
	}

	if m.State == constants.StateEditProps {
		cmd := handlers.HandleEditPropsState(&m.Model, msg)
		return m, cmd
	}

	if handled, cmd := handlers.HandlePlaygroundMessages(&m.Model, msg); handled {
		return m, cmd
	}
	if handled, cmd := handlers.HandleSettingsMessages(&m.Model, msg); handled {
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if handled, cmd := handlers.HandleGlobalKeys(&m.Model, keyMsg); handled {
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.State {
	case constants.StateHome:
		m.HomeModel, cmd = m.HomeModel.Update(keyMsg)
	case constants.StatePlayground:
		cmd = handlers.HandlePlaygroundKeys(&m.Model, keyMsg)
	case constants.StateSettings:
		m.SettingsModel, cmd = m.SettingsModel.Update(keyMsg)
	}
	return m, cmd
}
