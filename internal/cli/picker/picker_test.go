package picker

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/blocksmith/internal/cli"
	"github.com/julianstephens/blocksmith/internal/utils"
)

func testContext() (*cli.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	return &cli.Context{
		Out:   &buf,
		Clock: utils.Fixed(time.Date(2024, time.March, 15, 10, 7, 0, 0, time.UTC)),
	}, &buf
}

func TestCalendarCmd(t *testing.T) {
	t.Run("current month marks today", func(t *testing.T) {
		ctx, buf := testContext()
		if err := (&CalendarCmd{}).Run(ctx); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "March 2024") {
			t.Errorf("missing title:\n%s", out)
		}
		if !strings.Contains(out, "<15>") {
			t.Errorf("today not marked:\n%s", out)
		}
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		if len(lines) != 8 {
			t.Errorf("got %d lines, want title + header + 6 weeks", len(lines))
		}
		// March 2024 starts on a Friday
		if !strings.HasPrefix(lines[2], "  .   .   .   .   .   1   2") {
			t.Errorf("first week = %q", lines[2])
		}
	})

	t.Run("range is ordered and highlighted", func(t *testing.T) {
		ctx, buf := testContext()
		cmd := &CalendarCmd{Month: "2024-03", Range: "2024-03-12,2024-03-10"}
		if err := cmd.Run(ctx); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		out := buf.String()
		for _, want := range []string{"[10]", "[11]", "[12]"} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %s:\n%s", want, out)
			}
		}
		if strings.Contains(out, "[13]") {
			t.Errorf("13 should not be selected:\n%s", out)
		}
	})

	t.Run("bounds disable days", func(t *testing.T) {
		ctx, buf := testContext()
		cmd := &CalendarCmd{Month: "2024-03", MinDate: "2024-03-05", MaxDate: "2024-03-20"}
		if err := cmd.Run(ctx); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "  4-") || !strings.Contains(out, " 21-") {
			t.Errorf("out-of-bounds days not marked:\n%s", out)
		}
		if strings.Contains(out, "  5-") {
			t.Errorf("min date itself should be selectable:\n%s", out)
		}
	})

	t.Run("errors", func(t *testing.T) {
		tests := []CalendarCmd{
			{Month: "March"},
			{Select: "2024-03-32"},
			{Range: "2024-03-01"},
			{Select: "2024-03-01", Range: "2024-03-01,2024-03-02"},
			{MinDate: "soon"},
		}
		for _, cmd := range tests {
			ctx, _ := testContext()
			if err := cmd.Run(ctx); err == nil {
				t.Errorf("Run(%+v) should fail", cmd)
			}
		}
	})
}

func TestSlotsCmd(t *testing.T) {
	tests := []struct {
		name string
		cmd  SlotsCmd
		want string
	}{
		{"bounded", SlotsCmd{Min: "09:00", Max: "10:00", Columns: 4}, "09:00  09:15  09:30  09:45\n10:00\n"},
		{"off grid start snaps", SlotsCmd{Min: "09:50", Max: "10:30", Columns: 4}, "09:50  10:00  10:15  10:30\n"},
		{"inverted", SlotsCmd{Min: "18:00", Max: "09:00", Columns: 4}, "No times available\n"},
		{"malformed", SlotsCmd{Min: "9am", Columns: 4}, "No times available\n"},
		{"single column", SlotsCmd{Min: "23:30", Columns: 0}, "23:30\n23:45\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, buf := testContext()
			if err := tt.cmd.Run(ctx); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPickCmd(t *testing.T) {
	tests := []struct {
		name      string
		cmd       PickCmd
		wantValue string
		wantStep  string
	}{
		{"no events shows default", PickCmd{Mode: "date"}, "2024-03-15", "start"},
		{"date range swaps", PickCmd{Mode: "date-range", Events: []string{"2024-03-10", "2024-03-05"}}, "2024-03-05 to 2024-03-10", "start"},
		{"half built range", PickCmd{Mode: "date-range", Events: []string{"2024-03-10"}}, "2024-03-10 to 2024-03-10", "end"},
		{"time range", PickCmd{Mode: "time-range", Events: []string{"14:00", "09:30"}}, "09:30 to 14:00", "start"},
		{"clear time", PickCmd{Mode: "time", Events: []string{"08:00", "clear"}}, "(empty)", "start"},
		{"today bypasses range", PickCmd{Mode: "date-range", Events: []string{"2024-03-01", "today"}}, "2024-03-15 to 2024-03-15", "start"},
		{"now", PickCmd{Mode: "time", Events: []string{"now"}}, "10:07", "start"},
		{"today ignored in time mode", PickCmd{Mode: "time", Events: []string{"today"}}, "12:00", "start"},
		{"spaced time trimmed", PickCmd{Mode: "time", Events: []string{" 09:00"}}, "09:00", "start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, buf := testContext()
			if err := tt.cmd.Run(ctx); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			out := buf.String()
			if !strings.Contains(out, "value: "+tt.wantValue+"\n") {
				t.Errorf("output missing value %q:\n%s", tt.wantValue, out)
			}
			if !strings.Contains(out, "step:  "+tt.wantStep+"\n") {
				t.Errorf("output missing step %q:\n%s", tt.wantStep, out)
			}
		})
	}

	t.Run("errors", func(t *testing.T) {
		bad := []PickCmd{
			{Mode: "week"},
			{Mode: "date", Events: []string{"tomorrow"}},
			{Mode: "time", Events: []string{"25:00"}},
			{Mode: "time", Events: []string{"9:00"}},
			{Mode: "time", Events: []string{"09:5"}},
			{Mode: "time-range", Events: []string{"14:00", "9:30"}},
		}
		for _, cmd := range bad {
			ctx, _ := testContext()
			if err := cmd.Run(ctx); err == nil {
				t.Errorf("Run(%+v) should fail", cmd)
			}
		}
	})
}

func TestValidateCmd(t *testing.T) {
	ctx, buf := testContext()
	if err := (&ValidateCmd{MinDate: "2024-03-01", MaxDate: "2024-03-31"}).Run(ctx); err != nil {
		t.Fatalf("clean props error = %v", err)
	}
	if got := buf.String(); got != "No conflicts detected.\n" {
		t.Errorf("output = %q", got)
	}

	ctx, buf = testContext()
	err := (&ValidateCmd{MinTime: "18:00", MaxTime: "09:00", MinDate: "03/01/2024"}).Run(ctx)
	if err == nil {
		t.Fatal("conflicting props should fail")
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Conflicts detected:\n") || strings.Count(out, "\n- ") != 2 {
		t.Errorf("report = %q", out)
	}

	for _, cmd := range []ValidateCmd{
		{MinTime: "9:00", MaxTime: "10:00"},
		{MinTime: "10:00", MaxTime: "9:30"},
		{MinTime: "09:5"},
	} {
		ctx, buf = testContext()
		if err := cmd.Run(ctx); err == nil {
			t.Errorf("Run(%+v) should reject unpadded times", cmd)
		}
		if !strings.Contains(buf.String(), "is not an HH:MM time") {
			t.Errorf("Run(%+v) report = %q", cmd, buf.String())
		}
	}
}
