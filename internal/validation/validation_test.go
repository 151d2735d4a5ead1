package validation

import (
	"strings"
	"testing"
)

func TestValidateProps(t *testing.T) {
	tests := []struct {
		name  string
		in    PropsInput
		types []ConflictType
	}{
		{
			name: "all empty",
			in:   PropsInput{},
		},
		{
			name: "valid bounds",
			in:   PropsInput{MinDate: "2024-03-01", MaxDate: "2024-03-31", MinTime: "09:00", MaxTime: "17:00"},
		},
		{
			name: "same day and slot",
			in:   PropsInput{MinDate: "2024-03-01", MaxDate: "2024-03-01", MinTime: "09:00", MaxTime: "09:00"},
		},
		{
			name:  "bad date format",
			in:    PropsInput{MinDate: "03/01/2024"},
			types: []ConflictType{ConflictInvalidDate},
		},
		{
			name:  "impossible date",
			in:    PropsInput{MaxDate: "2024-02-30"},
			types: []ConflictType{ConflictInvalidDate},
		},
		{
			name:  "bad time",
			in:    PropsInput{MinTime: "9am", MaxTime: "24:00"},
			types: []ConflictType{ConflictInvalidTime, ConflictInvalidTime},
		},
		{
			name:  "unpadded hours rejected",
			in:    PropsInput{MinTime: "9:00", MaxTime: "10:00"},
			types: []ConflictType{ConflictInvalidTime},
		},
		{
			name:  "unpadded max does not hide inversion",
			in:    PropsInput{MinTime: "10:00", MaxTime: "9:30"},
			types: []ConflictType{ConflictInvalidTime},
		},
		{
			name:  "unpadded minute rejected",
			in:    PropsInput{MinTime: "09:00", MaxTime: "09:5"},
			types: []ConflictType{ConflictInvalidTime},
		},
		{
			name: "surrounding spaces trimmed",
			in:   PropsInput{MinTime: " 09:00", MaxTime: "10:00 "},
		},
		{
			name:  "inverted dates",
			in:    PropsInput{MinDate: "2024-03-10", MaxDate: "2024-03-05"},
			types: []ConflictType{ConflictInvertedDates},
		},
		{
			name:  "inverted times",
			in:    PropsInput{MinTime: "17:00", MaxTime: "09:00"},
			types: []ConflictType{ConflictInvertedTimes},
		},
		{
			name:  "ordering skipped when one side is malformed",
			in:    PropsInput{MinDate: "2024-03-10", MaxDate: "nope"},
			types: []ConflictType{ConflictInvalidDate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateProps(tt.in)
			if len(result.Conflicts) != len(tt.types) {
				t.Fatalf("got %d conflicts, want %d:\n%s", len(result.Conflicts), len(tt.types), result.FormatReport())
			}
			for i, c := range result.Conflicts {
				if c.Type != tt.types[i] {
					t.Errorf("conflict[%d].Type = %s, want %s", i, c.Type, tt.types[i])
				}
			}
		})
	}
}

func TestParsePropsBounds(t *testing.T) {
	b, res := ParseProps(PropsInput{MinDate: " 2024-03-01 ", MaxDate: "", MinTime: "08:00", MaxTime: "bad"})

	if b.MinDate == nil || b.MinDate.String() != "2024-03-01" {
		t.Errorf("MinDate = %v, want 2024-03-01", b.MinDate)
	}
	if b.MaxDate != nil {
		t.Errorf("MaxDate = %v, want nil", b.MaxDate)
	}
	if b.MinTime != "08:00" || b.MaxTime != "" {
		t.Errorf("times = %q..%q, want 08:00..\"\"", b.MinTime, b.MaxTime)
	}
	if _, ok := res.For("maxTime"); !ok {
		t.Error("expected a maxTime conflict")
	}
	if _, ok := res.For("minTime"); ok {
		t.Error("unexpected minTime conflict")
	}
}

func TestFormatReport(t *testing.T) {
	clean := ValidateProps(PropsInput{})
	if clean.FormatReport() != "No conflicts detected." {
		t.Errorf("FormatReport() = %q", clean.FormatReport())
	}

	bad := ValidateProps(PropsInput{MinTime: "17:00", MaxTime: "09:00"})
	report := bad.FormatReport()
	if !strings.HasPrefix(report, "Conflicts detected:\n") || !strings.Contains(report, "maxTime 09:00") {
		t.Errorf("FormatReport() = %q", report)
	}
}
