package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/blocksmith/internal/cli"
	"github.com/julianstephens/blocksmith/internal/storage"
	"github.com/julianstephens/blocksmith/internal/storage/postgres"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to copy settings from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	// If force flag is provided, delete existing database
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		// Don't delete if it's the source (user error protection)
		if c.Source != "" {
			absDbPath, err := filepath.Abs(dbPath)
			if err == nil {
				dbPath = absDbPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			// Close first so the file isn't held open
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			ctx.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized blocksmith storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		ctx.Printf("Copying settings from: %s\n", c.Source)
		if err := c.copySettings(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		ctx.Println("Settings copied successfully!")
	}

	return nil
}

func (c *InitCmd) copySettings(ctx *cli.Context, source string) error {
	if storage.IsPostgres(source) && source != storage.PostgresKeyword {
		if _, err := postgres.ValidateConnString(source); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return err
		}
	}

	sourceStore, err := storage.Open(source)
	if err != nil {
		return err
	}
	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer sourceStore.Close()

	settings, err := sourceStore.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}
	return nil
}
