package calendar

import (
	"testing"
	"time"
)

func TestNewDateNormalizes(t *testing.T) {
	tests := []struct {
		name string
		got  Date
		want string
	}{
		{"overflow day", NewDate(2024, time.February, 30), "2024-03-01"},
		{"day zero", NewDate(2024, time.March, 0), "2024-02-29"},
		{"month thirteen", NewDate(2024, 13, 1), "2025-01-01"},
		{"negative day", NewDate(2024, time.January, -1), "2023-12-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.String() != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"valid", "2024-03-10", NewDate(2024, time.March, 10), false},
		{"leap day", "2024-02-29", NewDate(2024, time.February, 29), false},
		{"invalid leap day", "2023-02-29", Date{}, true},
		{"wrong format", "03/10/2024", Date{}, true},
		{"empty", "", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateCompare(t *testing.T) {
	a := NewDate(2024, time.March, 5)
	b := NewDate(2024, time.March, 10)
	c := NewDate(2023, time.December, 31)

	if !a.Before(b) || a.After(b) || a.Compare(b) != -1 {
		t.Errorf("expected %s before %s", a, b)
	}
	if !b.After(a) || b.Compare(a) != 1 {
		t.Errorf("expected %s after %s", b, a)
	}
	if !c.Before(a) {
		t.Errorf("expected %s before %s across years", c, a)
	}
	if a.Compare(a) != 0 || !a.Equal(a) {
		t.Errorf("expected %s equal to itself", a)
	}
}

func TestFromTimeIgnoresClock(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	late := time.Date(2024, time.March, 10, 23, 59, 0, 0, loc)
	early := time.Date(2024, time.March, 10, 0, 1, 0, 0, loc)

	if FromTime(late) != FromTime(early) {
		t.Errorf("FromTime(%v) != FromTime(%v)", late, early)
	}
	if got := FromTime(late).String(); got != "2024-03-10" {
		t.Errorf("FromTime() = %s, want 2024-03-10", got)
	}
}

func TestZeroDateString(t *testing.T) {
	if got := (Date{}).String(); got != "" {
		t.Errorf("zero Date String() = %q, want empty", got)
	}
	if !(Date{}).IsZero() {
		t.Error("zero Date IsZero() = false")
	}
}
