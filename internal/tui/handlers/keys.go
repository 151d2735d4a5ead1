package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/blocksmith/internal/constants"
	"github.com/julianstephens/blocksmith/internal/tui/state"
)

// tabs is the order tab and shift+tab cycle through.
var tabs = []constants.SessionState{
	constants.StateHome,
	constants.StatePlayground,
	constants.StateAbout,
	constants.StateSettings,
}

// HandleGlobalKeys handles global key presses
func HandleGlobalKeys(m *state.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return true, tea.Quit
	}
	if m.CapturingInput() {
		return false, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return true, nil
	case key.Matches(msg, m.Keys.Tab):
		m.State = cycle(m.State, 1)
		return true, nil
	case key.Matches(msg, m.Keys.ShiftTab):
		m.State = cycle(m.State, -1)
		return true, nil
	}
	return false, nil
}

func cycle(current constants.SessionState, delta int) constants.SessionState {
	for i, s := range tabs {
		if s == current {
			return tabs[(i+delta+len(tabs))%len(tabs)]
		}
	}
	// sub-states don't switch views
	return current
}
