package selection

import (
	"fmt"
	"strings"

	"github.com/julianstephens/blocksmith/internal/calendar"
	"github.com/julianstephens/blocksmith/internal/constants"
	apperrors "github.com/julianstephens/blocksmith/internal/errors"
)

// Mode selects what the picker edits and the shape of its Value.
type Mode string

const (
	ModeDate      Mode = "date"
	ModeDateRange Mode = "date-range"
	ModeTime      Mode = "time"
	ModeTimeRange Mode = "time-range"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeDate, ModeDateRange, ModeTime, ModeTimeRange}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidMode, s)
}

// IsRange reports whether values in this mode are (start, end) pairs.
func (m Mode) IsRange() bool {
	return m == ModeDateRange || m == ModeTimeRange
}

// IsDate reports whether this mode picks calendar days.
func (m Mode) IsDate() bool {
	return m == ModeDate || m == ModeDateRange
}

func (m Mode) String() string { return string(m) }

// DateRange is an inclusive span of days.
type DateRange struct {
	Start calendar.Date
	End   calendar.Date
}

// TimeRange is an inclusive span of HH:MM slots.
type TimeRange struct {
	Start string
	End   string
}

// Value is the picker's current selection. Only the fields matching Mode are
// meaningful.
type Value struct {
	Mode  Mode
	Date  calendar.Date // ModeDate
	Dates DateRange     // ModeDateRange
	Time  string        // ModeTime
	Times TimeRange     // ModeTimeRange
}

func SingleDate(d calendar.Date) Value {
	return Value{Mode: ModeDate, Date: d}
}

func DateSpan(start, end calendar.Date) Value {
	return Value{Mode: ModeDateRange, Dates: DateRange{Start: start, End: end}}
}

func SingleTime(t string) Value {
	return Value{Mode: ModeTime, Time: t}
}

func TimeSpan(start, end string) Value {
	return Value{Mode: ModeTimeRange, Times: TimeRange{Start: start, End: end}}
}

// Default returns the value a freshly selected mode starts with.
func Default(mode Mode, today calendar.Date) Value {
	switch mode {
	case ModeDateRange:
		return DateSpan(today, today)
	case ModeTime:
		return SingleTime(constants.DefaultTime)
	case ModeTimeRange:
		return TimeSpan(constants.DefaultRangeFrom, constants.DefaultRangeTo)
	default:
		return SingleDate(today)
	}
}

// ContainsDate reports whether d is highlighted: an exact match in date mode,
// or start <= d <= end in date-range mode. A range with only a start matches
// that start alone.
func (v Value) ContainsDate(d calendar.Date) bool {
	switch v.Mode {
	case ModeDate:
		return !v.Date.IsZero() && v.Date == d
	case ModeDateRange:
		start, end := v.Dates.Start, v.Dates.End
		switch {
		case !start.IsZero() && !end.IsZero():
			return !d.Before(start) && !d.After(end)
		case !start.IsZero():
			return d == start
		}
	}
	return false
}

// ContainsTime is the HH:MM counterpart of ContainsDate.
func (v Value) ContainsTime(t string) bool {
	switch v.Mode {
	case ModeTime:
		return v.Time != "" && v.Time == t
	case ModeTimeRange:
		start, end := v.Times.Start, v.Times.End
		switch {
		case start != "" && end != "":
			return t >= start && t <= end
		case start != "":
			return t == start
		}
	}
	return false
}

// IsEmpty reports whether nothing is selected.
func (v Value) IsEmpty() bool {
	switch v.Mode {
	case ModeDate:
		return v.Date.IsZero()
	case ModeDateRange:
		return v.Dates.Start.IsZero() && v.Dates.End.IsZero()
	case ModeTime:
		return v.Time == ""
	case ModeTimeRange:
		return v.Times.Start == "" && v.Times.End == ""
	}
	return true
}

// String renders the value the way the picker field displays it.
func (v Value) String() string {
	switch v.Mode {
	case ModeDate:
		return v.Date.String()
	case ModeDateRange:
		if v.IsEmpty() {
			return ""
		}
		return fmt.Sprintf("%s to %s", v.Dates.Start, v.Dates.End)
	case ModeTime:
		return v.Time
	case ModeTimeRange:
		if v.IsEmpty() {
			return ""
		}
		return fmt.Sprintf("%s to %s", v.Times.Start, v.Times.End)
	}
	return ""
}
