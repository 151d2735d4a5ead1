package handlers

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/blocksmith/internal/calendar"
	"github.com/julianstephens/blocksmith/internal/selection"
	"github.com/julianstephens/blocksmith/internal/timeslot"
	"github.com/julianstephens/blocksmith/internal/tui/state"
)

// NewPropsForm creates the playground controls form
func NewPropsForm(fm *state.PropsFormModel) *huh.Form {
	modes := make([]huh.Option[selection.Mode], 0, len(selection.Modes))
	for _, mode := range selection.Modes {
		modes = append(modes, huh.NewOption(modeLabel(mode), mode))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[selection.Mode]().
				Title("Mode").
				Options(modes...).
				Value(&fm.Mode),
			huh.NewInput().
				Title("Min Date").
				Description("YYYY-MM-DD, blank for none").
				Value(&fm.MinDate).
				Validate(validateOptional(validDate, "date must be YYYY-MM-DD")),
			huh.NewInput().
				Title("Max Date").
				Description("YYYY-MM-DD, blank for none").
				Value(&fm.MaxDate).
				Validate(validateOptional(validDate, "date must be YYYY-MM-DD")),
			huh.NewInput().
				Title("Min Time").
				Description("HH:MM, blank for 00:00").
				Value(&fm.MinTime).
				Validate(validateOptional(timeslot.Valid, "time must be HH:MM")),
			huh.NewInput().
				Title("Max Time").
				Description("HH:MM, blank for 23:45").
				Value(&fm.MaxTime).
				Validate(validateOptional(timeslot.Valid, "time must be HH:MM")),
			huh.NewConfirm().
				Title("Disabled").
				Value(&fm.Disabled),
		),
	).WithTheme(huh.ThemeDracula())
}

func validDate(s string) bool {
	_, err := calendar.ParseDate(s)
	return err == nil
}

// validateOptional accepts blank input or anything valid reports true for.
func validateOptional(valid func(string) bool, message string) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" || valid(s) {
			return nil
		}
		return errors.New(message)
	}
}

func modeLabel(mode selection.Mode) string {
	switch mode {
	case selection.ModeDate:
		return "Date"
	case selection.ModeDateRange:
		return "Date Range"
	case selection.ModeTime:
		return "Time"
	case selection.ModeTimeRange:
		return "Time Range"
	}
	return string(mode)
}
