package picker

import (
	"errors"
	"strings"

	"github.com/julianstephens/blocksmith/internal/cli"
	"github.com/julianstephens/blocksmith/internal/validation"
)

type ValidateCmd struct {
	MinDate string `help:"Minimum date prop (YYYY-MM-DD)."`
	MaxDate string `help:"Maximum date prop (YYYY-MM-DD)."`
	MinTime string `help:"Minimum time prop (HH:MM)."`
	MaxTime string `help:"Maximum time prop (HH:MM)."`
}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	result := validation.ValidateProps(validation.PropsInput{
		MinDate: c.MinDate,
		MaxDate: c.MaxDate,
		MinTime: c.MinTime,
		MaxTime: c.MaxTime,
	})

	report := result.FormatReport()
	ctx.Printf("%s", report)
	if !strings.HasSuffix(report, "\n") {
		ctx.Println()
	}

	if result.HasConflicts() {
		return errors.New("props have conflicts")
	}
	return nil
}
