package picker

import (
	"errors"

	"github.com/julianstephens/blocksmith/internal/calendar"
	"github.com/julianstephens/blocksmith/internal/cli"
	"github.com/julianstephens/blocksmith/internal/selection"
)

type CalendarCmd struct {
	Month   string `help:"Month to show (YYYY-MM). Defaults to the current month."`
	Select  string `help:"Highlight a single date (YYYY-MM-DD)." xor:"selection"`
	Range   string `help:"Highlight a date range (START,END)." xor:"selection"`
	MinDate string `help:"Earliest selectable date (YYYY-MM-DD)."`
	MaxDate string `help:"Latest selectable date (YYYY-MM-DD)."`
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	if c.Select != "" && c.Range != "" {
		return errors.New("--select and --range cannot be combined")
	}

	today := ctx.ClockOrDefault().Today()
	year, month, err := cli.ParseMonth(c.Month, today)
	if err != nil {
		return err
	}

	var sel calendar.Highlighter = selection.SingleDate(calendar.Date{})
	switch {
	case c.Select != "":
		d, err := calendar.ParseDate(c.Select)
		if err != nil {
			return err
		}
		sel = selection.SingleDate(d)
	case c.Range != "":
		start, end, err := cli.ParseDatePair(c.Range)
		if err != nil {
			return err
		}
		if end.Before(start) {
			start, end = end, start
		}
		sel = selection.DateSpan(start, end)
	}

	minDate, err := cli.OptionalDate(c.MinDate)
	if err != nil {
		return err
	}
	maxDate, err := cli.OptionalDate(c.MaxDate)
	if err != nil {
		return err
	}

	grid := calendar.ApplyBounds(calendar.BuildMonthGrid(year, month, sel, today), minDate, maxDate)
	ctx.Printf("%s", RenderGrid(year, month, grid))
	return nil
}
