package system

import (
	"github.com/julianstephens/blocksmith/internal/cli"
	"github.com/julianstephens/blocksmith/internal/models"
	"github.com/julianstephens/blocksmith/internal/tui/components/about"
)

type AboutCmd struct {
	Width int  `help:"Wrap width." default:"80"`
	Raw   bool `help:"Print the markdown source instead of rendering it."`
}

func (c *AboutCmd) Run(ctx *cli.Context) error {
	if c.Raw {
		ctx.Printf("%s", about.Markdown)
		return nil
	}

	// The about page works before init; fall back to the default theme
	theme := models.DefaultSettings().Theme
	if ctx.Store != nil {
		if settings, err := ctx.Store.GetSettings(); err == nil {
			theme = settings.Theme
		}
	}

	out, err := about.Render(theme, c.Width)
	if err != nil {
		return err
	}
	ctx.Printf("%s", out)
	return nil
}
