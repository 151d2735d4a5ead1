package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/blocksmith/internal/calendar"
	"github.com/julianstephens/blocksmith/internal/constants"
	"github.com/julianstephens/blocksmith/internal/logger"
	"github.com/julianstephens/blocksmith/internal/storage"
	"github.com/julianstephens/blocksmith/internal/utils"
)

type Context struct {
	Store storage.Provider
	Clock utils.Clock // nil follows the stored timezone setting
	Out   io.Writer   // nil writes to stdout
	Debug bool
}

// Stdout is where commands print their results.
func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Printf writes formatted command output.
func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

// Println writes a line of command output.
func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Stdout(), args...)
}

// ClockOrDefault returns the configured clock, or one in the stored timezone.
// Settings that cannot be read fall back to local time.
func (c *Context) ClockOrDefault() utils.Clock {
	if c.Clock != nil {
		return c.Clock
	}
	if c.Store != nil {
		if settings, err := c.Store.GetSettings(); err == nil {
			return utils.ClockFromSettings(settings)
		}
		logger.Debug("Settings unavailable, using local clock")
	}
	return time.Now
}

// ParseMonth parses a YYYY-MM flag value. Blank means the month containing today.
func ParseMonth(s string, today calendar.Date) (int, time.Month, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return today.Year, today.Month, nil
	}
	t, err := time.Parse(constants.MonthFormat, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (expected YYYY-MM)", s)
	}
	return t.Year(), t.Month(), nil
}

// ParseDatePair parses "START,END" into two dates, in the order given.
func ParseDatePair(s string) (calendar.Date, calendar.Date, error) {
	startStr, endStr, ok := strings.Cut(s, ",")
	if !ok {
		return calendar.Date{}, calendar.Date{}, fmt.Errorf("invalid range %q (expected START,END)", s)
	}
	start, err := calendar.ParseDate(strings.TrimSpace(startStr))
	if err != nil {
		return calendar.Date{}, calendar.Date{}, fmt.Errorf("invalid range start: %w", err)
	}
	end, err := calendar.ParseDate(strings.TrimSpace(endStr))
	if err != nil {
		return calendar.Date{}, calendar.Date{}, fmt.Errorf("invalid range end: %w", err)
	}
	return start, end, nil
}

// OptionalDate parses a date flag, returning nil for blank.
func OptionalDate(s string) (*calendar.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := calendar.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
