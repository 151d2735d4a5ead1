package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/blocksmith/internal/cli"
	"github.com/julianstephens/blocksmith/internal/keyring"
	"github.com/julianstephens/blocksmith/internal/models"
	"github.com/julianstephens/blocksmith/internal/selection"
	"github.com/julianstephens/blocksmith/internal/storage/sqlite"
	"github.com/julianstephens/blocksmith/internal/utils"
)

type DoctorCmd struct{}

type check struct {
	name     string
	needsDB  bool
	warnOnly bool
	run      func(ctx *cli.Context) error
}

var checks = []check{
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Migrations complete", needsDB: true, run: checkMigrationsComplete},
	{name: "Settings", needsDB: true, run: checkSettings},
	{name: "Clock/timezone", needsDB: true, run: checkClockTimezone},
	{name: "Keyring", warnOnly: true, run: checkKeyring},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		ctx.Printf("❌ Database reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	// For SQLite, also try a simple query
	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	current, latest, err := ctx.Store.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current == 0 {
		return fmt.Errorf("no schema version recorded")
	}
	if current > latest {
		return fmt.Errorf("database schema version %d is newer than supported version %d", current, latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	current, latest, err := ctx.Store.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current < latest {
		return fmt.Errorf("%d pending migration(s), run 'migrate'", latest-current)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	if _, err := models.ParseTheme(string(settings.Theme)); err != nil {
		return err
	}
	if _, err := selection.ParseMode(settings.DefaultMode); err != nil {
		return fmt.Errorf("default mode %q: %w", settings.DefaultMode, err)
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("unknown timezone %q", settings.Timezone)
	}

	now := time.Now()
	if ctx.Clock != nil {
		now = ctx.Clock()
	}
	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkKeyring(ctx *cli.Context) error {
	st := keyring.Check()
	if !st.Available {
		return fmt.Errorf("OS keyring is not available; use the environment for PostgreSQL credentials")
	}
	return nil
}
