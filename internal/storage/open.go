package storage

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/blocksmith/internal/constants"
	"github.com/julianstephens/blocksmith/internal/keyring"
	"github.com/julianstephens/blocksmith/internal/logger"
	"github.com/julianstephens/blocksmith/internal/storage/postgres"
	"github.com/julianstephens/blocksmith/internal/storage/sqlite"
)

// PostgresKeyword selects PostgreSQL with the connection string taken from
// the environment or the OS keyring.
const PostgresKeyword = "postgres"

var (
	_ Provider = (*sqlite.Store)(nil)
	_ Provider = (*postgres.Store)(nil)
)

// IsPostgres reports whether config names a PostgreSQL backend.
func IsPostgres(config string) bool {
	return config == PostgresKeyword ||
		strings.HasPrefix(config, "postgres://") ||
		strings.HasPrefix(config, "postgresql://")
}

// ResolveConnString returns the PostgreSQL connection string for config.
// An explicit URL wins; otherwise the environment variable, then the keyring.
func ResolveConnString(config string) (string, error) {
	if config != PostgresKeyword {
		return config, nil
	}
	if env := strings.TrimSpace(os.Getenv(constants.ConnectionEnvVar)); env != "" {
		logger.Debug("Using connection string from environment", "var", constants.ConnectionEnvVar)
		return env, nil
	}
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("no PostgreSQL connection string: set %s or run '%s keyring set'", constants.ConnectionEnvVar, constants.AppName)
		}
		return "", err
	}
	logger.Debug("Using connection string from keyring")
	return connStr, nil
}

// Open picks a backend for config: a SQLite file path, a PostgreSQL URL, or
// the "postgres" keyword. The returned store is neither initialized nor loaded.
func Open(config string) (Provider, error) {
	if !IsPostgres(config) {
		return sqlite.NewStore(config), nil
	}

	// An explicit URL on the command line must not carry a password; the
	// environment and the keyring are trusted sources.
	if config != PostgresKeyword {
		if _, err := postgres.ValidateConnString(config); err != nil {
			return nil, err
		}
	}

	connStr, err := ResolveConnString(config)
	if err != nil {
		return nil, err
	}
	return postgres.New(connStr), nil
}
