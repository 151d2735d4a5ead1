package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/blocksmith/internal/constants"
	"github.com/julianstephens/blocksmith/internal/logger"
	"github.com/julianstephens/blocksmith/internal/tui/components/home"
	"github.com/julianstephens/blocksmith/internal/tui/components/picker"
	"github.com/julianstephens/blocksmith/internal/tui/state"
)

// HandlePlaygroundKeys handles keys on the playground tab. Keys the shell
// does not bind go to the picker.
func HandlePlaygroundKeys(m *state.Model, msg tea.KeyMsg) tea.Cmd {
	if !m.Picker.IsOpen() {
		switch {
		case key.Matches(msg, m.Keys.Edit):
			form := m.Props
			m.PropsForm = &form
			m.Form = NewPropsForm(m.PropsForm)
			m.FormError = ""
			m.State = constants.StateEditProps
			return m.Form.Init()
		case key.Matches(msg, m.Keys.Reset):
			m.ResetPlayground()
			m.FormError = ""
			return nil
		}
	}

	var cmd tea.Cmd
	m.Picker, cmd = m.Picker.Update(msg)
	return cmd
}

// HandleEditPropsState handles the edit props state
func HandleEditPropsState(m *state.Model, msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.FormError = "" // Clear error on cancel
		m.State = constants.StatePlayground
		return nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	cmds = append(cmds, cmd)

	switch m.Form.State {
	case huh.StateCompleted:
		res := m.ApplyProps(*m.PropsForm)
		if res.HasConflicts() {
			// Stay in form state so the values can be corrected
			m.FormError = res.Conflicts[0].Description
			m.Form.State = huh.StateNormal
			return tea.Batch(cmds...)
		}
		logger.Debug("Playground props applied", "mode", m.Props.Mode, "disabled", m.Props.Disabled)
		m.FormError = ""
		m.State = constants.StatePlayground
	case huh.StateAborted:
		m.FormError = ""
		m.State = constants.StatePlayground
	}
	return tea.Batch(cmds...)
}

// HandlePlaygroundMessages handles messages from the picker and the catalog
func HandlePlaygroundMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case picker.ChangedMsg:
		if msg.PickerID != m.Picker.ID() {
			return true, nil
		}
		m.LastValue = msg.Value.String()
		m.Changes++
		return true, nil
	case home.OpenPlaygroundMsg:
		m.State = constants.StatePlayground
		return true, nil
	}
	return false, nil
}
