// Package validation checks the picker bounds entered in the playground.
package validation

import (
	"fmt"
	"strings"

	"github.com/julianstephens/blocksmith/internal/calendar"
	"github.com/julianstephens/blocksmith/internal/timeslot"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidDate   ConflictType = "invalid_date"
	ConflictInvalidTime   ConflictType = "invalid_time"
	ConflictInvertedDates ConflictType = "inverted_dates"
	ConflictInvertedTimes ConflictType = "inverted_times"
)

// Conflict is one problem with the props.
type Conflict struct {
	Type        ConflictType
	Field       string // prop name, e.g. "minDate"
	Description string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// For returns the first conflict reported against field, if any.
func (vr *ValidationResult) For(field string) (Conflict, bool) {
	for _, c := range vr.Conflicts {
		if c.Field == field {
			return c, true
		}
	}
	return Conflict{}, false
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, c := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", c.Description)
	}
	return b.String()
}

// PropsInput holds the raw bound strings. Empty means unbounded.
type PropsInput struct {
	MinDate string
	MaxDate string
	MinTime string
	MaxTime string
}

// Bounds is the parsed form of PropsInput.
type Bounds struct {
	MinDate *calendar.Date
	MaxDate *calendar.Date
	MinTime string
	MaxTime string
}

// ValidateProps checks formats first, then ordering. Ordering is only
// checked when both sides of a pair parsed.
func ValidateProps(in PropsInput) ValidationResult {
	_, result := ParseProps(in)
	return result
}

// ParseProps parses in and reports conflicts. Fields that fail to parse are
// left unbounded in the returned Bounds.
func ParseProps(in PropsInput) (Bounds, ValidationResult) {
	var (
		b   Bounds
		res ValidationResult
	)

	b.MinDate = parseDate(&res, "minDate", in.MinDate)
	b.MaxDate = parseDate(&res, "maxDate", in.MaxDate)
	b.MinTime = parseTime(&res, "minTime", in.MinTime)
	b.MaxTime = parseTime(&res, "maxTime", in.MaxTime)

	if b.MinDate != nil && b.MaxDate != nil && b.MaxDate.Before(*b.MinDate) {
		res.Conflicts = append(res.Conflicts, Conflict{
			Type:        ConflictInvertedDates,
			Field:       "maxDate",
			Description: fmt.Sprintf("maxDate %s is before minDate %s; no day can be picked", b.MaxDate, b.MinDate),
		})
	}
	if b.MinTime != "" && b.MaxTime != "" && b.MaxTime < b.MinTime {
		res.Conflicts = append(res.Conflicts, Conflict{
			Type:        ConflictInvertedTimes,
			Field:       "maxTime",
			Description: fmt.Sprintf("maxTime %s is before minTime %s; the slot list would be empty", b.MaxTime, b.MinTime),
		})
	}

	return b, res
}

func parseDate(res *ValidationResult, field, s string) *calendar.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := calendar.ParseDate(s)
	if err != nil {
		res.Conflicts = append(res.Conflicts, Conflict{
			Type:        ConflictInvalidDate,
			Field:       field,
			Description: fmt.Sprintf("%s %q is not a YYYY-MM-DD date", field, s),
		})
		return nil
	}
	return &d
}

func parseTime(res *ValidationResult, field, s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if !timeslot.Valid(s) {
		res.Conflicts = append(res.Conflicts, Conflict{
			Type:        ConflictInvalidTime,
			Field:       field,
			Description: fmt.Sprintf("%s %q is not an HH:MM time", field, s),
		})
		return ""
	}
	return s
}
