package utils

import (
	"time"

	"github.com/julianstephens/blocksmith/internal/calendar"
	"github.com/julianstephens/blocksmith/internal/models"
	"github.com/julianstephens/blocksmith/internal/timeslot"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ValidateTimezone reports whether timezone is "Local", empty, or a known IANA name.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}

// Clock supplies "today" and "now" to the picker. Tests pin it with Fixed.
type Clock func() time.Time

// ClockFromSettings returns a clock in the configured timezone, falling back
// to local time when the setting is unusable.
func ClockFromSettings(settings models.Settings) Clock {
	loc, err := LoadLocation(settings.Timezone)
	if err != nil {
		loc = time.Local
	}
	return func() time.Time { return time.Now().In(loc) }
}

// Fixed returns a clock that always reads t.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

// Today is the calendar day the clock is on.
func (c Clock) Today() calendar.Date {
	return calendar.FromTime(c())
}

// Now is the clock's HH:MM reading.
func (c Clock) Now() string {
	return timeslot.FromTime(c())
}
