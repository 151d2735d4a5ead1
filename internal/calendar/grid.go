package calendar

import (
	"time"

	"github.com/julianstephens/blocksmith/internal/constants"
)

// Highlighter reports whether a date belongs to the current selection.
type Highlighter interface {
	ContainsDate(Date) bool
}

// Cell is one day in a month grid.
type Cell struct {
	Date       Date
	OutOfMonth bool // leading/trailing day from an adjacent month
	Today      bool
	Selected   bool
	Disabled   bool // outside the picker's min/max date bounds
}

// Selectable reports whether picking this cell has any effect.
func (c Cell) Selectable() bool {
	return !c.OutOfMonth && !c.Disabled
}

// Grid is a fixed 6x7 month view starting on Sunday.
type Grid [constants.GridCells]Cell

// Rows splits the grid into weeks.
func (g Grid) Rows() [constants.GridWeeks][constants.GridDays]Cell {
	var rows [constants.GridWeeks][constants.GridDays]Cell
	for i, c := range g {
		rows[i/constants.GridDays][i%constants.GridDays] = c
	}
	return rows
}

// Index returns the position of d in the grid, or -1 if it is not shown.
func (g Grid) Index(d Date) int {
	for i, c := range g {
		if c.Date == d {
			return i
		}
	}
	return -1
}

// InMonth returns the cells that belong to the grid's own month.
func (g Grid) InMonth() []Cell {
	var cells []Cell
	for _, c := range g {
		if !c.OutOfMonth {
			cells = append(cells, c)
		}
	}
	return cells
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return NewDate(year, month+1, 0).Day
}

// ShiftMonth moves year/month by delta months.
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	d := NewDate(year, month+time.Month(delta), 1)
	return d.Year, d.Month
}

// BuildMonthGrid lays out year/month as 42 cells. Leading cells come from the
// previous month and trailing cells from the next, both flagged OutOfMonth.
// sel may be nil.
func BuildMonthGrid(year int, month time.Month, sel Highlighter, today Date) Grid {
	var grid Grid

	daysInMonth := DaysInMonth(year, month)
	firstWeekday := int(NewDate(year, month, 1).Weekday())
	prevYear, prevMonth := ShiftMonth(year, month, -1)
	nextYear, nextMonth := ShiftMonth(year, month, 1)
	daysInPrev := DaysInMonth(prevYear, prevMonth)

	dayNum := 1
	for i := range grid {
		var cell Cell
		switch {
		case i < firstWeekday:
			cell.Date = Date{Year: prevYear, Month: prevMonth, Day: daysInPrev - (firstWeekday - i - 1)}
			cell.OutOfMonth = true
		case dayNum > daysInMonth:
			cell.Date = Date{Year: nextYear, Month: nextMonth, Day: dayNum - daysInMonth}
			cell.OutOfMonth = true
			dayNum++
		default:
			cell.Date = Date{Year: year, Month: month, Day: dayNum}
			dayNum++
		}
		cell.Today = cell.Date == today
		if sel != nil {
			cell.Selected = sel.ContainsDate(cell.Date)
		}
		grid[i] = cell
	}

	return grid
}

// ApplyBounds marks cells outside [min, max] as disabled. Nil bounds are open.
func ApplyBounds(grid Grid, minDate, maxDate *Date) Grid {
	for i := range grid {
		d := grid[i].Date
		if (minDate != nil && d.Before(*minDate)) || (maxDate != nil && d.After(*maxDate)) {
			grid[i].Disabled = true
		}
	}
	return grid
}
