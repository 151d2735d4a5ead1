package system

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/blocksmith/internal/cli"
	"github.com/julianstephens/blocksmith/internal/models"
)

type DebugCmd struct {
	DBPath       *DebugDBPathCmd       `cmd:"" help:"Show database path."`
	DumpSettings *DebugDumpSettingsCmd `cmd:"" help:"Dump settings data as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}
	return printJSON(ctx, output)
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	current, latest, err := ctx.Store.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	return printJSON(ctx, struct {
		models.Settings
		SchemaVersion int `json:"schema_version"`
		LatestVersion int `json:"latest_version"`
	}{settings, current, latest})
}

func printJSON(ctx *cli.Context, v interface{}) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(jsonBytes))
	return nil
}
