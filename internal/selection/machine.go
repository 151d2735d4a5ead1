package selection

import (
	"github.com/julianstephens/blocksmith/internal/calendar"
)

// RangeStep tells which endpoint of a range the next pick sets.
type RangeStep int

const (
	StepStart RangeStep = iota
	StepEnd
)

func (s RangeStep) String() string {
	if s == StepEnd {
		return "end"
	}
	return "start"
}

// Phase is the machine's position in the two-step range flow.
type Phase int

const (
	Idle Phase = iota
	// AwaitingEnd holds a start endpoint until the next pick.
	AwaitingEnd
)

// Result is what a transition proposes to the host.
type Result struct {
	Value   Value
	Changed bool // false means the event did not apply to this mode
	Close   bool // the popover should close
}

// Machine is the selection state machine. It is a plain value: every
// transition returns the next Machine instead of mutating the receiver.
type Machine struct {
	mode      Mode
	phase     Phase
	startDate calendar.Date
	startTime string
}

// NewMachine returns an Idle machine for mode.
func NewMachine(mode Mode) Machine {
	return Machine{mode: mode}
}

func (m Machine) Mode() Mode   { return m.mode }
func (m Machine) Phase() Phase { return m.phase }

// Step reports which endpoint the next pick sets. Single modes are always at StepStart.
func (m Machine) Step() RangeStep {
	if m.phase == AwaitingEnd {
		return StepEnd
	}
	return StepStart
}

// PickDate applies a click on day d.
func (m Machine) PickDate(d calendar.Date) (Machine, Result) {
	switch m.mode {
	case ModeDate:
		return NewMachine(m.mode), Result{Value: SingleDate(d), Changed: true, Close: true}
	case ModeDateRange:
		if m.phase == Idle {
			next := Machine{mode: m.mode, phase: AwaitingEnd, startDate: d}
			return next, Result{Value: DateSpan(d, d), Changed: true}
		}
		start, end := m.startDate, d
		if end.Before(start) {
			start, end = end, start
		}
		return NewMachine(m.mode), Result{Value: DateSpan(start, end), Changed: true, Close: true}
	}
	return m, Result{}
}

// PickTime applies a click on slot t. Ordering uses string comparison, which
// is chronological for HH:MM.
func (m Machine) PickTime(t string) (Machine, Result) {
	switch m.mode {
	case ModeTime:
		return NewMachine(m.mode), Result{Value: SingleTime(t), Changed: true, Close: true}
	case ModeTimeRange:
		if m.phase == Idle {
			next := Machine{mode: m.mode, phase: AwaitingEnd, startTime: t}
			return next, Result{Value: TimeSpan(t, t), Changed: true}
		}
		start, end := m.startTime, t
		if end < start {
			start, end = end, start
		}
		return NewMachine(m.mode), Result{Value: TimeSpan(start, end), Changed: true, Close: true}
	}
	return m, Result{}
}

// Clear resets the selection: date modes fall back to today, time modes to
// empty strings. Applying it twice yields the same value.
func (m Machine) Clear(today calendar.Date) (Machine, Result) {
	var v Value
	switch m.mode {
	case ModeDate:
		v = SingleDate(today)
	case ModeDateRange:
		v = DateSpan(today, today)
	case ModeTime:
		v = SingleTime("")
	case ModeTimeRange:
		v = TimeSpan("", "")
	default:
		return m, Result{}
	}
	return NewMachine(m.mode), Result{Value: v, Changed: true, Close: true}
}

// Today selects today as a single point, bypassing the two-step range flow.
func (m Machine) Today(today calendar.Date) (Machine, Result) {
	switch m.mode {
	case ModeDate:
		return NewMachine(m.mode), Result{Value: SingleDate(today), Changed: true, Close: true}
	case ModeDateRange:
		return NewMachine(m.mode), Result{Value: DateSpan(today, today), Changed: true, Close: true}
	}
	return m, Result{}
}

// Now selects the current HH:MM clock reading as a single point.
func (m Machine) Now(clock string) (Machine, Result) {
	switch m.mode {
	case ModeTime:
		return NewMachine(m.mode), Result{Value: SingleTime(clock), Changed: true, Close: true}
	case ModeTimeRange:
		return NewMachine(m.mode), Result{Value: TimeSpan(clock, clock), Changed: true, Close: true}
	}
	return m, Result{}
}

// Reset abandons a half-built range.
func (m Machine) Reset() Machine {
	return NewMachine(m.mode)
}
