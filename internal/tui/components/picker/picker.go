// Package picker is the date/time picker component: a field that opens a
// month grid or a slot list and reports every committed selection.
package picker

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/julianstephens/blocksmith/internal/calendar"
	"github.com/julianstephens/blocksmith/internal/constants"
	"github.com/julianstephens/blocksmith/internal/logger"
	"github.com/julianstephens/blocksmith/internal/selection"
	"github.com/julianstephens/blocksmith/internal/timeslot"
	"github.com/julianstephens/blocksmith/internal/tui/theme"
	"github.com/julianstephens/blocksmith/internal/utils"
)

// slotColumns is how many time slots share a row in the open list.
const slotColumns = 4

// Config is everything the host controls.
type Config struct {
	Mode     selection.Mode
	Value    *selection.Value // nil starts from selection.Default
	MinDate  *calendar.Date
	MaxDate  *calendar.Date
	MinTime  string
	MaxTime  string
	Disabled bool
	Label    string
	Clock    utils.Clock // nil uses the local wall clock
	Theme    constants.Theme
}

// ChangedMsg is sent whenever a pick, clear, today, or now changes the value.
type ChangedMsg struct {
	PickerID string
	Value    selection.Value
}

type Model struct {
	id      string
	cfg     Config
	keys    KeyMap
	palette theme.Palette

	machine selection.Machine
	value   selection.Value
	open    bool

	viewYear  int
	viewMonth time.Month
	cursor    calendar.Date
	slots     []string
	slotIdx   int
}

func New(cfg Config) Model {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Mode == "" {
		cfg.Mode = selection.ModeDate
	}

	m := Model{
		id:      uuid.NewString(),
		cfg:     cfg,
		keys:    DefaultKeyMap(),
		palette: theme.For(cfg.Theme),
		machine: selection.NewMachine(cfg.Mode),
		slots:   timeslot.Generate(cfg.MinTime, cfg.MaxTime),
	}
	if cfg.Value != nil && cfg.Value.Mode == cfg.Mode {
		m.value = *cfg.Value
	} else {
		m.value = selection.Default(cfg.Mode, m.today())
	}
	m.syncView()
	return m
}

func (m Model) ID() string { return m.id }
func (m Model) Mode() selection.Mode { return m.cfg.Mode }
func (m Model) Value() selection.Value { return m.value }
func (m Model) IsOpen() bool { return m.open }
func (m Model) Disabled() bool { return m.cfg.Disabled }
func (m Model) Step() selection.RangeStep { return m.machine.Step() }
func (m Model) Keys() KeyMap { return m.keys }
func (m Model) Slots() []string { return m.slots }

// Cursor is the highlighted day in date modes.
func (m Model) Cursor() calendar.Date { return m.cursor }

// SlotCursor is the highlighted slot in time modes, or "" when the list is empty.
func (m Model) SlotCursor() string {
	if m.slotIdx < 0 || m.slotIdx >= len(m.slots) {
		return ""
	}
	return m.slots[m.slotIdx]
}

// ViewMonth is the month the open grid shows.
func (m Model) ViewMonth() (int, time.Month) { return m.viewYear, m.viewMonth }

// SetMode switches mode, dropping any half-built range and resetting the
// value to the mode's default.
func (m *Model) SetMode(mode selection.Mode) {
	m.cfg.Mode = mode
	m.machine = selection.NewMachine(mode)
	m.value = selection.Default(mode, m.today())
	m.open = false
	m.syncView()
}

// SetBounds replaces the date and time bounds and regenerates the slot list.
func (m *Model) SetBounds(minDate, maxDate *calendar.Date, minTime, maxTime string) {
	m.cfg.MinDate, m.cfg.MaxDate = minDate, maxDate
	m.cfg.MinTime, m.cfg.MaxTime = minTime, maxTime
	m.slots = timeslot.Generate(minTime, maxTime)
	m.syncView()
}

// SetDisabled closes the popover when disabling.
func (m *Model) SetDisabled(disabled bool) {
	m.cfg.Disabled = disabled
	if disabled {
		m.open = false
		m.machine = m.machine.Reset()
	}
}

func (m *Model) SetTheme(t constants.Theme) {
	m.cfg.Theme = t
	m.palette = theme.For(t)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.cfg.Disabled {
		return m, nil
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if !m.open {
		if key.Matches(km, m.keys.Toggle) {
			m.open = true
			m.syncView()
		}
		return m, nil
	}

	switch {
	case key.Matches(km, m.keys.Close):
		m.open = false
		m.machine = m.machine.Reset()
		return m, nil
	case key.Matches(km, m.keys.Toggle):
		return m.pick()
	case key.Matches(km, m.keys.Clear):
		next, res := m.machine.Clear(m.today())
		return m.apply(next, res)
	case key.Matches(km, m.keys.Today):
		return m.todayOrNow()
	case key.Matches(km, m.keys.PrevMonth):
		m.shiftMonth(-1)
	case key.Matches(km, m.keys.NextMonth):
		m.shiftMonth(1)
	case key.Matches(km, m.keys.Up):
		m.move(-constants.GridDays, -slotColumns)
	case key.Matches(km, m.keys.Down):
		m.move(constants.GridDays, slotColumns)
	case key.Matches(km, m.keys.Left):
		m.move(-1, -1)
	case key.Matches(km, m.keys.Right):
		m.move(1, 1)
	}
	return m, nil
}

// Grid is the month currently shown, with selection and bounds applied.
func (m Model) Grid() calendar.Grid {
	g := calendar.BuildMonthGrid(m.viewYear, m.viewMonth, m.value, m.today())
	return calendar.ApplyBounds(g, m.cfg.MinDate, m.cfg.MaxDate)
}

func (m Model) pick() (Model, tea.Cmd) {
	if m.cfg.Mode.IsDate() {
		g := m.Grid()
		i := g.Index(m.cursor)
		if i < 0 || !g[i].Selectable() {
			return m, nil
		}
		next, res := m.machine.PickDate(m.cursor)
		return m.apply(next, res)
	}

	slot := m.SlotCursor()
	if slot == "" {
		return m, nil
	}
	next, res := m.machine.PickTime(slot)
	return m.apply(next, res)
}

func (m Model) todayOrNow() (Model, tea.Cmd) {
	if m.cfg.Mode.IsDate() {
		today := m.today()
		if !m.dateInBounds(today) {
			return m, nil
		}
		next, res := m.machine.Today(today)
		return m.apply(next, res)
	}

	now := m.cfg.Clock.Now()
	if !m.timeInBounds(now) {
		return m, nil
	}
	next, res := m.machine.Now(now)
	return m.apply(next, res)
}

func (m Model) apply(next selection.Machine, res selection.Result) (Model, tea.Cmd) {
	m.machine = next
	if !res.Changed {
		return m, nil
	}
	m.value = res.Value
	if res.Close {
		m.open = false
	}

	logger.Debug("Picker value changed", "picker", m.id, "mode", m.cfg.Mode, "value", res.Value.String(), "step", next.Step())

	id, v := m.id, res.Value
	return m, func() tea.Msg { return ChangedMsg{PickerID: id, Value: v} }
}

func (m *Model) move(days, slots int) {
	if m.cfg.Mode.IsDate() {
		m.cursor = m.cursor.AddDays(days)
		m.viewYear, m.viewMonth = m.cursor.Year, m.cursor.Month
		return
	}
	if len(m.slots) == 0 {
		return
	}
	i := m.slotIdx + slots
	if i < 0 || i >= len(m.slots) {
		return
	}
	m.slotIdx = i
}

func (m *Model) shiftMonth(delta int) {
	if !m.cfg.Mode.IsDate() {
		return
	}
	m.viewYear, m.viewMonth = calendar.ShiftMonth(m.viewYear, m.viewMonth, delta)
	day := min(m.cursor.Day, calendar.DaysInMonth(m.viewYear, m.viewMonth))
	m.cursor = calendar.NewDate(m.viewYear, m.viewMonth, day)
}

// syncView points the month and cursors at the current selection, or at
// today when nothing is selected.
func (m *Model) syncView() {
	anchor := m.today()
	switch m.value.Mode {
	case selection.ModeDate:
		if !m.value.Date.IsZero() {
			anchor = m.value.Date
		}
	case selection.ModeDateRange:
		if !m.value.Dates.Start.IsZero() {
			anchor = m.value.Dates.Start
		}
	}
	m.cursor = anchor
	m.viewYear, m.viewMonth = anchor.Year, anchor.Month

	m.slotIdx = 0
	target := m.value.Time
	if m.value.Mode == selection.ModeTimeRange {
		target = m.value.Times.Start
	}
	if i := timeslot.Index(m.slots, target); i >= 0 {
		m.slotIdx = i
	}
}

func (m Model) today() calendar.Date {
	return m.cfg.Clock.Today()
}

func (m Model) dateInBounds(d calendar.Date) bool {
	if m.cfg.MinDate != nil && d.Before(*m.cfg.MinDate) {
		return false
	}
	if m.cfg.MaxDate != nil && d.After(*m.cfg.MaxDate) {
		return false
	}
	return true
}

func (m Model) timeInBounds(t string) bool {
	minTime, maxTime := m.cfg.MinTime, m.cfg.MaxTime
	if minTime == "" {
		minTime = constants.DefaultMinTime
	}
	if maxTime == "" {
		maxTime = constants.LatestNow
	}
	return t >= minTime && t <= maxTime
}
