package handlers

import (
	"testing"

	"github.com/julianstephens/blocksmith/internal/constants"
	"github.com/julianstephens/blocksmith/internal/selection"
	"github.com/julianstephens/blocksmith/internal/timeslot"
)

func TestCycle(t *testing.T) {
	tests := []struct {
		name    string
		current constants.SessionState
		delta   int
		want    constants.SessionState
	}{
		{"home forward", constants.StateHome, 1, constants.StatePlayground},
		{"settings wraps", constants.StateSettings, 1, constants.StateHome},
		{"home backward wraps", constants.StateHome, -1, constants.StateSettings},
		{"sub-state stays", constants.StateEditProps, 1, constants.StateEditProps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cycle(tt.current, tt.delta); got != tt.want {
				t.Errorf("cycle(%v, %d) = %v, want %v", tt.current, tt.delta, got, tt.want)
			}
		})
	}
}

func TestNextMode(t *testing.T) {
	tests := []struct {
		current string
		want    selection.Mode
	}{
		{"date", selection.ModeDateRange},
		{"date-range", selection.ModeTime},
		{"time", selection.ModeTimeRange},
		{"time-range", selection.ModeDate},
		{"bogus", selection.ModeDate},
	}

	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			if got := nextMode(tt.current); got != tt.want {
				t.Errorf("nextMode(%q) = %s, want %s", tt.current, got, tt.want)
			}
		})
	}
}

func TestValidateOptional(t *testing.T) {
	date := validateOptional(validDate, "bad date")
	clock := validateOptional(timeslot.Valid, "bad time")

	tests := []struct {
		name    string
		fn      func(string) error
		input   string
		wantErr bool
	}{
		{"blank date", date, "", false},
		{"padded blank", date, "   ", false},
		{"good date", date, "2024-02-29", false},
		{"bad date", date, "2024-02-30", true},
		{"wrong layout", date, "03/15/2024", true},
		{"good time", clock, "09:45", false},
		{"bad time", clock, "24:00", true},
		{"no colon", clock, "0945", true},
		{"unpadded hour", clock, "9:00", true},
		{"unpadded minute", clock, "09:5", true},
		{"surrounding spaces trimmed", clock, " 09:00 ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
