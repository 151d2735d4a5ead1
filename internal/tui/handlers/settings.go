package handlers

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/blocksmith/internal/logger"
	"github.com/julianstephens/blocksmith/internal/models"
	"github.com/julianstephens/blocksmith/internal/selection"
	"github.com/julianstephens/blocksmith/internal/tui/components/settings"
	"github.com/julianstephens/blocksmith/internal/tui/state"
)

// HandleSettingsMessages handles messages from the settings component
func HandleSettingsMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg.(type) {
	case settings.ToggleThemeMsg:
		next := m.Settings
		next.Theme = models.ToggleTheme(next.Theme)
		if save(m, next) {
			m.SetTheme(next.Theme)
		}
		return true, nil
	case settings.CycleModeMsg:
		next := m.Settings
		next.DefaultMode = string(nextMode(next.DefaultMode))
		if save(m, next) {
			m.Settings = next
			m.SettingsModel.SetSettings(next)
		}
		return true, nil
	}
	return false, nil
}

// save persists next and reports the outcome on the settings view. On
// failure the in-memory settings are left alone.
func save(m *state.Model, next models.Settings) bool {
	if err := m.Store.SaveSettings(next); err != nil {
		logger.Error("Failed to save settings", "error", err)
		m.FormError = "Failed to update settings: " + err.Error()
		m.SettingsModel.SetStatus(m.FormError)
		return false
	}
	m.FormError = ""
	m.SettingsModel.SetStatus("Saved")
	return true
}

func nextMode(current string) selection.Mode {
	for i, mode := range selection.Modes {
		if string(mode) == current {
			return selection.Modes[(i+1)%len(selection.Modes)]
		}
	}
	return selection.Modes[0]
}
