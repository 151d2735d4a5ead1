package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/blocksmith/internal/cli"
	"github.com/julianstephens/blocksmith/internal/constants"
	"github.com/julianstephens/blocksmith/internal/keyring"
	"github.com/julianstephens/blocksmith/internal/storage"
	"github.com/julianstephens/blocksmith/internal/storage/postgres"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
	Get    KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password hidden."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	Status KeyringStatusCmd `cmd:"" help:"Check keyring availability." default:"1"`
}

// KeyringSetCmd stores database connection credentials in the OS keyring
type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring"`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if !strings.HasPrefix(cmd.ConnectionString, "postgres://") &&
		!strings.HasPrefix(cmd.ConnectionString, "postgresql://") &&
		!strings.Contains(cmd.ConnectionString, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	_, err := postgres.ValidateConnString(cmd.ConnectionString)
	if err != nil {
		if errors.Is(err, postgres.ErrEmbeddedCredentials) {
			// The keyring is encrypted, so a password is allowed here
			ctx.Println("⚠️  Warning: Connection string contains embedded credentials.")
			ctx.Println("   It will be stored as-is in the encrypted OS keyring.")
		} else {
			return fmt.Errorf("invalid connection string: %w", err)
		}
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	ctx.Println("✓ Connection string stored successfully in OS keyring")
	ctx.Printf("  Use --config %s to connect with it\n", storage.PostgresKeyword)
	return nil
}

// KeyringGetCmd retrieves database connection credentials from the OS keyring
type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("no connection string found in keyring. Use '%s keyring set' to store one", constants.AppName)
		}
		return fmt.Errorf("failed to retrieve connection string from keyring: %w", err)
	}

	ctx.Println("Connection string retrieved from keyring:")
	ctx.Println(keyring.Redact(connStr))
	return nil
}

// KeyringDeleteCmd removes database connection credentials from the OS keyring
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	err := keyring.DeleteConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}

	ctx.Println("✓ Connection string deleted from OS keyring")
	return nil
}

// KeyringStatusCmd reports whether the keyring works and holds a connection string
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	st := keyring.Check()
	if !st.Available {
		ctx.Println("❌ OS keyring is not available on this system")
		return errors.New("keyring unavailable")
	}

	ctx.Println("✓ OS keyring is available")
	if st.HasConnection {
		ctx.Printf("✓ Connection string is stored in keyring: %s\n", st.Redacted)
	} else {
		ctx.Println("ℹ No connection string stored in keyring")
	}
	return nil
}
