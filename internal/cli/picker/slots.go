package picker

import (
	"strings"

	"github.com/julianstephens/blocksmith/internal/cli"
	"github.com/julianstephens/blocksmith/internal/timeslot"
)

type SlotsCmd struct {
	Min     string `help:"Earliest slot (HH:MM). Defaults to 00:00."`
	Max     string `help:"Latest slot (HH:MM). Defaults to 23:45."`
	Columns int    `help:"Slots per line." default:"4"`
}

func (c *SlotsCmd) Run(ctx *cli.Context) error {
	slots := timeslot.Generate(c.Min, c.Max)
	if len(slots) == 0 {
		ctx.Println("No times available")
		return nil
	}

	cols := c.Columns
	if cols < 1 {
		cols = 1
	}
	for i := 0; i < len(slots); i += cols {
		end := min(i+cols, len(slots))
		ctx.Println(strings.Join(slots[i:end], "  "))
	}
	return nil
}
