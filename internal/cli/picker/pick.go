package picker

import (
	"fmt"
	"strings"

	"github.com/julianstephens/blocksmith/internal/calendar"
	"github.com/julianstephens/blocksmith/internal/cli"
	"github.com/julianstephens/blocksmith/internal/logger"
	"github.com/julianstephens/blocksmith/internal/selection"
	"github.com/julianstephens/blocksmith/internal/timeslot"
)

// PickCmd replays a sequence of picker events and prints where the value ends up.
type PickCmd struct {
	Mode   string   `help:"Picker mode (date|date-range|time|time-range)." default:"date"`
	Events []string `arg:"" optional:"" help:"Dates or times to pick in order. 'clear', 'today' and 'now' are also accepted."`
}

func (c *PickCmd) Run(ctx *cli.Context) error {
	mode, err := selection.ParseMode(c.Mode)
	if err != nil {
		return err
	}

	clock := ctx.ClockOrDefault()
	machine := selection.NewMachine(mode)
	value := selection.Default(mode, clock.Today())

	for _, event := range c.Events {
		next, res, err := replay(machine, mode, strings.TrimSpace(event), clock.Today(), clock.Now())
		if err != nil {
			return err
		}
		machine = next
		if !res.Changed {
			logger.Debug("Pick ignored", "mode", mode, "event", event)
			continue
		}
		value = res.Value
		ctx.Printf("%-12s -> %-26s step=%s\n", event, display(value), machine.Step())
	}

	ctx.Printf("value: %s\n", display(value))
	ctx.Printf("step:  %s\n", machine.Step())
	return nil
}

func replay(m selection.Machine, mode selection.Mode, event string, today calendar.Date, now string) (selection.Machine, selection.Result, error) {
	switch strings.ToLower(event) {
	case "clear":
		next, res := m.Clear(today)
		return next, res, nil
	case "today":
		next, res := m.Today(today)
		return next, res, nil
	case "now":
		next, res := m.Now(now)
		return next, res, nil
	}

	if mode.IsDate() {
		d, err := calendar.ParseDate(event)
		if err != nil {
			return m, selection.Result{}, err
		}
		next, res := m.PickDate(d)
		return next, res, nil
	}

	if !timeslot.Valid(event) {
		return m, selection.Result{}, fmt.Errorf("invalid time %q (expected HH:MM)", event)
	}
	next, res := m.PickTime(event)
	return next, res, nil
}

func display(v selection.Value) string {
	if s := v.String(); s != "" {
		return s
	}
	return "(empty)"
}
