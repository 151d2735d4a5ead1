package system

import (
	"fmt"

	"github.com/julianstephens/blocksmith/internal/cli"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	current, latest, err := ctx.Store.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if current >= latest {
		ctx.Println("No migrations to apply. Database is up to date.")
		return nil
	}

	// Init applies every pending migration and leaves existing settings alone
	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	ctx.Printf("Successfully applied %d migration(s). Schema is at version %d.\n", latest-current, latest)
	return nil
}
