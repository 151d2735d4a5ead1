// Package timeslot enumerates quarter-hour "HH:MM" slots for the time picker.
//
// Slot strings are fixed-width, zero-padded 24-hour values, so plain string
// comparison orders them chronologically.
package timeslot

import (
	"fmt"
	"time"

	"github.com/julianstephens/blocksmith/internal/constants"
	"github.com/julianstephens/blocksmith/internal/logger"
)

// Parse parses a zero-padded HH:MM string into hour and minute. Unpadded
// hours such as "9:30" are rejected because they do not sort as strings.
func Parse(s string) (hour, minute int, err error) {
	t, err := time.Parse(constants.TimeFormat, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, use HH:MM: %w", s, err)
	}
	if Format(t.Hour(), t.Minute()) != s {
		return 0, 0, fmt.Errorf("invalid time %q, use zero-padded HH:MM", s)
	}
	return t.Hour(), t.Minute(), nil
}

// Valid reports whether s parses as HH:MM.
func Valid(s string) bool {
	_, _, err := Parse(s)
	return err == nil
}

// Format renders hour and minute as zero-padded HH:MM.
func Format(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// FromTime returns the HH:MM clock reading of t.
func FromTime(t time.Time) string {
	return Format(t.Hour(), t.Minute())
}

// Generate lists slots from minTime up to and including maxTime in 15-minute
// steps. Empty bounds default to 00:00 and 23:45. Once the minute passes :45
// it resets to :00 of the next hour, so an off-grid start snaps back onto the
// quarter-hour grid. There is no wraparound past midnight: minTime > maxTime
// yields an empty list, as do malformed bounds.
func Generate(minTime, maxTime string) []string {
	if minTime == "" {
		minTime = constants.DefaultMinTime
	}
	if maxTime == "" {
		maxTime = constants.DefaultMaxTime
	}

	h, m, err := Parse(minTime)
	if err != nil {
		logger.Debug("Ignoring malformed min time", "min", minTime, "error", err)
		return []string{}
	}
	maxH, maxM, err := Parse(maxTime)
	if err != nil {
		logger.Debug("Ignoring malformed max time", "max", maxTime, "error", err)
		return []string{}
	}

	slots := []string{}
	for h < maxH || (h == maxH && m <= maxM) {
		slots = append(slots, Format(h, m))
		m += constants.SlotStepMin
		if m >= 60 {
			m = 0
			h++
		}
	}
	return slots
}

// Index returns the position of slot in slots, or -1.
func Index(slots []string, slot string) int {
	for i, s := range slots {
		if s == slot {
			return i
		}
	}
	return -1
}
