package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/blocksmith/internal/constants"
	"github.com/julianstephens/blocksmith/internal/models"
	"github.com/julianstephens/blocksmith/internal/storage"
	"github.com/julianstephens/blocksmith/internal/tui/state"
	"github.com/julianstephens/blocksmith/internal/utils"
)

type Model struct {
	state.Model
}

// NewModel builds the shell from the stored settings. Missing or unreadable
// settings fall back to the defaults.
func NewModel(store storage.Provider, clock utils.Clock) Model {
	current, err := store.GetSettings()
	if err != nil {
		current = models.DefaultSettings()
	}
	return Model{Model: state.New(store, current, clock)}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.Keys.Tab, m.Keys.Quit, m.Keys.Help}
	switch m.State {
	case constants.StatePlayground:
		pk := m.Picker.Keys()
		if m.Picker.IsOpen() {
			return pk.ShortHelp()
		}
		keys = append(keys, pk.Toggle, m.Keys.Edit, m.Keys.Reset)
	case constants.StateSettings:
		keys = append(keys, m.Keys.Theme, m.Keys.Mode)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.Keys.Tab, m.Keys.ShiftTab, m.Keys.Quit, m.Keys.Help}

	switch m.State {
	case constants.StatePlayground:
		return append([][]key.Binding{global, {m.Keys.Edit, m.Keys.Reset}}, m.Picker.Keys().FullHelp()...)
	case constants.StateSettings:
		return [][]key.Binding{global, {m.Keys.Theme, m.Keys.Mode}}
	}
	return [][]key.Binding{global}
}

func (m Model) Init() tea.Cmd {
	return m.HomeModel.Init()
}
