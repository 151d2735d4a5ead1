package settings

import (
	"fmt"

	"github.com/julianstephens/blocksmith/internal/cli"
	"github.com/julianstephens/blocksmith/internal/constants"
	"github.com/julianstephens/blocksmith/internal/models"
	"github.com/julianstephens/blocksmith/internal/selection"
	"github.com/julianstephens/blocksmith/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	DefaultMode *string `help:"Picker mode the playground opens with (date|date-range|time|time-range)."`
	Timezone    *string `help:"IANA timezone used for today and now, or Local."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		ctx.Println("Current Settings:")
		ctx.Printf("  Theme:         %s\n", settings.Theme)
		ctx.Printf("  Default Mode:  %s\n", settings.DefaultMode)
		ctx.Printf("  Timezone:      %s\n", settings.Timezone)
		ctx.Printf("  Storage:       %s\n", ctx.Store.GetConfigPath())
		return nil
	}

	updated := false
	if c.DefaultMode != nil {
		mode, err := selection.ParseMode(*c.DefaultMode)
		if err != nil {
			return err
		}
		settings.DefaultMode = string(mode)
		updated = true
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		ctx.Println("Settings updated successfully.")
	} else {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}

type ThemeCmd struct {
	Get    ThemeGetCmd    `cmd:"" help:"Show the current theme." default:"1"`
	Set    ThemeSetCmd    `cmd:"" help:"Set the theme."`
	Toggle ThemeToggleCmd `cmd:"" help:"Switch between light and dark."`
}

type ThemeGetCmd struct{}

func (c *ThemeGetCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	ctx.Println(settings.Theme)
	return nil
}

type ThemeSetCmd struct {
	Theme string `arg:"" help:"light or dark."`
}

func (c *ThemeSetCmd) Run(ctx *cli.Context) error {
	theme, err := models.ParseTheme(c.Theme)
	if err != nil {
		return err
	}
	return saveTheme(ctx, func(constants.Theme) constants.Theme { return theme })
}

type ThemeToggleCmd struct{}

func (c *ThemeToggleCmd) Run(ctx *cli.Context) error {
	return saveTheme(ctx, models.ToggleTheme)
}

func saveTheme(ctx *cli.Context, next func(constants.Theme) constants.Theme) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	settings.Theme = next(settings.Theme)
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Printf("Theme set to %s\n", settings.Theme)
	return nil
}
