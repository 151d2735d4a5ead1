package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/blocksmith/internal/cli"
	"github.com/julianstephens/blocksmith/internal/cli/picker"
	"github.com/julianstephens/blocksmith/internal/cli/settings"
	"github.com/julianstephens/blocksmith/internal/cli/system"
	"github.com/julianstephens/blocksmith/internal/constants"
	apperrors "github.com/julianstephens/blocksmith/internal/errors"
	"github.com/julianstephens/blocksmith/internal/logger"
	"github.com/julianstephens/blocksmith/internal/storage"
	"github.com/julianstephens/blocksmith/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite file path, PostgreSQL connection string, or 'postgres' to read the connection string from BLOCKSMITH_DB_CONNECTION or the OS keyring. Credentials must NOT be embedded in a connection string given here." type:"string" default:"~/.config/blocksmith/blocksmith.db"`
	Debug   bool   `help:"Log debug output to stderr."`

	Init     system.InitCmd       `cmd:"" help:"Initialize blocksmith storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive demo site." default:"1"`
	About    system.AboutCmd      `cmd:"" help:"Show the about page."`
	Calendar picker.CalendarCmd   `cmd:"" help:"Print a month grid."`
	Slots    picker.SlotsCmd      `cmd:"" help:"List the time slots between two bounds."`
	Pick     picker.PickCmd       `cmd:"" help:"Replay picks through the selection state machine."`
	Validate picker.ValidateCmd   `cmd:"" help:"Validate picker bound props."`
	Theme    settings.ThemeCmd    `cmd:"" help:"Show or change the light/dark theme."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	DebugCmd system.DebugCmd      `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

// storeOptional lists commands that run without an initialized store.
var storeOptional = map[string]bool{
	"init":     true,
	"about":    true,
	"calendar": true,
	"slots":    true,
	"pick":     true,
	"validate": true,
	"keyring":  true,
	"doctor":   true,
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Blocksmith UI demo site and date/time picker playground"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	config := utils.ExpandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: logger.ConfigDirFor(config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	store, err := storage.Open(config)
	if err != nil {
		apperrors.Fatal(err)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	if err := loadStore(store, commandName(ctx)); err != nil {
		apperrors.Fatal(err)
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

// loadStore loads settings up front for commands that need them. A failure
// closes the store, since Fatal exits without running deferred calls.
func loadStore(store storage.Provider, command string) error {
	err := store.Load()
	if err == nil {
		return nil
	}
	if !storeOptional[command] {
		store.Close()
		return err
	}
	logger.Debug("Store not loaded", "command", command, "error", err)
	return nil
}

// commandName returns the top-level command, e.g. "keyring" for "keyring set".
func commandName(ctx *kong.Context) string {
	node := ctx.Selected()
	if node == nil {
		return ""
	}
	for node.Parent != nil && node.Parent.Type == kong.CommandNode {
		node = node.Parent
	}
	return node.Name
}
