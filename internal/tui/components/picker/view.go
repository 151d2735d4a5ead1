package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/blocksmith/internal/calendar"
	"github.com/julianstephens/blocksmith/internal/selection"
)

// visibleSlotRows caps the height of the open time list.
const visibleSlotRows = 6

var weekdayHeader = []string{"S", "M", "T", "W", "T", "F", "S"}

// Placeholder is the text shown in an empty field.
func Placeholder(mode selection.Mode) string {
	if mode.IsDate() {
		return "Select date"
	}
	return "Select time"
}

func (m Model) View() string {
	p := m.palette

	text := m.value.String()
	if text == "" {
		text = p.Label.Render(Placeholder(m.cfg.Mode))
	}

	field := p.Field
	if m.open {
		field = p.FieldFocus
	}
	if m.cfg.Disabled {
		field = field.Faint(true)
	}

	var parts []string
	if m.cfg.Label != "" {
		parts = append(parts, p.Label.Render(m.cfg.Label))
	}
	parts = append(parts, field.Render(text))

	if m.open {
		if m.cfg.Mode.IsDate() {
			parts = append(parts, m.viewCalendar())
		} else {
			parts = append(parts, m.viewSlots())
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewCalendar() string {
	p := m.palette
	g := m.Grid()

	title := p.Title.Render(fmt.Sprintf("‹ %s %d ›", m.viewMonth, m.viewYear))

	header := make([]string, len(weekdayHeader))
	for i, d := range weekdayHeader {
		header[i] = p.Label.Width(4).Align(lipgloss.Center).Render(d)
	}

	lines := []string{title, lipgloss.JoinHorizontal(lipgloss.Top, header...)}
	for _, week := range g.Rows() {
		row := make([]string, len(week))
		for i, c := range week {
			row[i] = m.cellStyle(c).Render(fmt.Sprintf("%d", c.Date.Day))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	lines = append(lines, m.viewActions("Today"))
	return p.Box.Render(strings.Join(lines, "\n"))
}

func (m Model) cellStyle(c calendar.Cell) lipgloss.Style {
	p := m.palette
	switch {
	case c.Date == m.cursor:
		return p.CellCursor
	case c.OutOfMonth:
		return p.CellOut
	case c.Disabled:
		return p.CellOff
	case c.Selected:
		return p.CellPicked
	case c.Today:
		return p.CellToday
	}
	return p.Cell
}

func (m Model) viewSlots() string {
	p := m.palette
	lines := []string{p.Title.Render("Select Time")}

	if len(m.slots) == 0 {
		lines = append(lines, p.Warn.Render("No times available"))
	} else {
		rows := (len(m.slots) + slotColumns - 1) / slotColumns
		cursorRow := m.slotIdx / slotColumns
		first := max(0, min(cursorRow-visibleSlotRows/2, rows-visibleSlotRows))

		for r := first; r < min(rows, first+visibleSlotRows); r++ {
			var row []string
			for c := 0; c < slotColumns; c++ {
				i := r*slotColumns + c
				if i >= len(m.slots) {
					break
				}
				row = append(row, m.slotStyle(i).Render(m.slots[i]))
			}
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		}
	}

	lines = append(lines, m.viewActions("Now"))
	return p.Box.Render(strings.Join(lines, "\n"))
}

func (m Model) slotStyle(i int) lipgloss.Style {
	p := m.palette
	base := p.Cell.Width(7)
	switch {
	case i == m.slotIdx:
		return base.Reverse(true)
	case m.value.ContainsTime(m.slots[i]):
		return base.Background(p.Selected).Foreground(lipgloss.Color("255"))
	}
	return base
}

func (m Model) viewActions(todayLabel string) string {
	p := m.palette
	actions := p.Help.Render(fmt.Sprintf("[c] Clear   [t] %s", todayLabel))
	if m.cfg.Mode.IsRange() {
		actions += "  " + p.Label.Render("picking "+m.machine.Step().String())
	}
	return actions
}

// Summary is a one-line rendering of the picker state for headless output.
func (m Model) Summary() string {
	v := m.value.String()
	if v == "" {
		v = "(empty)"
	}
	return fmt.Sprintf("%-10s %-24s step=%s", m.cfg.Mode, v, m.machine.Step())
}
