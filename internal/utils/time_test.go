package utils

import (
	"testing"
	"time"

	"github.com/julianstephens/blocksmith/internal/models"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
		wantName string
	}{
		{name: "empty is local", timezone: "", wantName: time.Local.String()},
		{name: "Local keyword", timezone: "Local", wantName: time.Local.String()},
		{name: "UTC", timezone: "UTC", wantName: "UTC"},
		{name: "IANA name", timezone: "America/New_York", wantName: "America/New_York"},
		{name: "unknown", timezone: "Mars/Olympus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadLocation(%q) error = %v, wantErr %v", tt.timezone, err, tt.wantErr)
			}
			if !tt.wantErr && loc.String() != tt.wantName {
				t.Errorf("LoadLocation(%q) = %s, want %s", tt.timezone, loc, tt.wantName)
			}
			if ValidateTimezone(tt.timezone) == tt.wantErr {
				t.Errorf("ValidateTimezone(%q) disagrees with LoadLocation", tt.timezone)
			}
		})
	}
}

func TestFixedClock(t *testing.T) {
	c := Fixed(time.Date(2024, time.March, 15, 9, 7, 0, 0, time.UTC))
	if got := c.Today().String(); got != "2024-03-15" {
		t.Errorf("Today() = %s, want 2024-03-15", got)
	}
	if got := c.Now(); got != "09:07" {
		t.Errorf("Now() = %s, want 09:07", got)
	}
}

func TestClockFromSettingsUsesTimezone(t *testing.T) {
	c := ClockFromSettings(models.Settings{Timezone: "Asia/Tokyo"})
	if loc := c().Location().String(); loc != "Asia/Tokyo" {
		t.Errorf("clock location = %s, want Asia/Tokyo", loc)
	}

	fallback := ClockFromSettings(models.Settings{Timezone: "Not/AZone"})
	if fallback().Location() != time.Local {
		t.Errorf("bad timezone should fall back to local, got %s", fallback().Location())
	}
}
