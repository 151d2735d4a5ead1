package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/blocksmith/internal/constants"
	"github.com/julianstephens/blocksmith/internal/logger"
	"github.com/julianstephens/blocksmith/internal/models"
	"github.com/julianstephens/blocksmith/internal/selection"
	"github.com/julianstephens/blocksmith/internal/storage"
	"github.com/julianstephens/blocksmith/internal/tui/components/about"
	"github.com/julianstephens/blocksmith/internal/tui/components/home"
	"github.com/julianstephens/blocksmith/internal/tui/components/picker"
	"github.com/julianstephens/blocksmith/internal/tui/components/settings"
	"github.com/julianstephens/blocksmith/internal/utils"
	"github.com/julianstephens/blocksmith/internal/validation"
)

// PropsFormModel is the playground controls form. Bounds are raw strings so
// the form can hold whatever was typed until it is validated.
type PropsFormModel struct {
	Mode     selection.Mode
	MinDate  string
	MaxDate  string
	MinTime  string
	MaxTime  string
	Disabled bool
}

// Model represents the shared state for the TUI
type Model struct {
	Store         storage.Provider
	Settings      models.Settings
	Clock         utils.Clock
	State         constants.SessionState
	Keys          KeyMap
	Help          help.Model
	HomeModel     home.Model
	AboutModel    about.Model
	SettingsModel settings.Model
	Picker        picker.Model
	Form          *huh.Form
	PropsForm     *PropsFormModel
	Props         PropsFormModel // last applied props
	LastValue     string
	Changes       int
	Conflicts     []validation.Conflict
	Quitting      bool
	Width         int
	Height        int
	FormError     string // Error message to display for form operations
}

// New creates a new state Model. A nil clock follows the settings timezone.
func New(store storage.Provider, current models.Settings, clock utils.Clock) Model {
	if clock == nil {
		clock = utils.ClockFromSettings(current)
	}

	m := Model{
		Store:         store,
		Settings:      current,
		Clock:         clock,
		State:         constants.StateHome,
		Keys:          DefaultKeyMap(),
		Help:          help.New(),
		HomeModel:     home.New(current.Theme),
		AboutModel:    about.New(current.Theme),
		SettingsModel: settings.New(current, store.GetConfigPath(), 0, 0),
	}
	m.ResetPlayground()
	return m
}

// DefaultProps is the playground's starting point for the saved default mode.
func DefaultProps(s models.Settings) PropsFormModel {
	mode, err := selection.ParseMode(s.DefaultMode)
	if err != nil {
		logger.Debug("Unknown default mode, using date", "mode", s.DefaultMode)
		mode = selection.ModeDate
	}
	return PropsFormModel{Mode: mode}
}

// ResetPlayground restores the default props and a fresh picker.
func (m *Model) ResetPlayground() {
	m.Props = DefaultProps(m.Settings)
	m.Conflicts = nil
	m.Changes = 0
	m.Picker = picker.New(picker.Config{
		Mode:  m.Props.Mode,
		Label: "Preview",
		Clock: m.Clock,
		Theme: m.Settings.Theme,
	})
	m.LastValue = m.Picker.Value().String()
}

// ApplyProps validates props and, when they are clean, pushes them into the
// picker. A mode change resets the picker value.
func (m *Model) ApplyProps(props PropsFormModel) validation.ValidationResult {
	bounds, res := validation.ParseProps(validation.PropsInput{
		MinDate: props.MinDate,
		MaxDate: props.MaxDate,
		MinTime: props.MinTime,
		MaxTime: props.MaxTime,
	})
	m.Conflicts = res.Conflicts
	if res.HasConflicts() {
		return res
	}

	if props.Mode != m.Picker.Mode() {
		m.Picker.SetMode(props.Mode)
		m.LastValue = m.Picker.Value().String()
	}
	m.Picker.SetBounds(bounds.MinDate, bounds.MaxDate, bounds.MinTime, bounds.MaxTime)
	m.Picker.SetDisabled(props.Disabled)
	m.Props = props
	return res
}

// SetTheme re-themes every component.
func (m *Model) SetTheme(t constants.Theme) {
	m.Settings.Theme = t
	m.HomeModel.SetTheme(t)
	m.AboutModel.SetTheme(t)
	m.Picker.SetTheme(t)
	m.SettingsModel.SetSettings(m.Settings)
}

// SetSize sizes the components below the tab bar and help line.
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	m.Help.Width = width

	body := max(height-4, 0)
	m.HomeModel.SetSize(width, body)
	m.AboutModel.SetSize(width, body)
	m.SettingsModel.SetSize(width, body)
}

// CapturingInput reports whether the focused component wants every key,
// including ones bound globally.
func (m Model) CapturingInput() bool {
	switch m.State {
	case constants.StateHome:
		return m.HomeModel.Searching()
	case constants.StatePlayground:
		return m.Picker.IsOpen()
	case constants.StateEditProps:
		return true
	}
	return false
}
