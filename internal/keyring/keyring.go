// Package keyring stores the PostgreSQL connection string in the OS keyring so
// it never has to appear on the command line.
package keyring

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/blocksmith/internal/constants"
)

var (
	// ErrNotFound is returned when no connection string is stored
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

const probeUser = "availability-probe"

// GetConnectionString retrieves the database connection string.
func GetConnectionString() (string, error) {
	connStr, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		return "", ErrNotFound
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

// SetConnectionString stores the database connection string, replacing any previous one.
func SetConnectionString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, connStr); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// DeleteConnectionString removes the stored connection string.
func DeleteConnectionString() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		return ErrNotFound
	case err != nil:
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// IsAvailable is a best-effort check that the OS keyring answers reads.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, probeUser)
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// Status is what `blocksmith doctor` reports about the keyring.
type Status struct {
	Available     bool
	HasConnection bool
	Redacted      string
}

// Check inspects the keyring without exposing the stored secret.
func Check() Status {
	st := Status{Available: IsAvailable()}
	if !st.Available {
		return st
	}
	if connStr, err := GetConnectionString(); err == nil {
		st.HasConnection = true
		st.Redacted = Redact(connStr)
	}
	return st
}

// Redact hides the password of a URL-style connection string. DSN strings are
// reduced to their host.
func Redact(connStr string) string {
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" {
		return u.Redacted()
	}
	for _, field := range strings.Fields(connStr) {
		if k, v, ok := strings.Cut(field, "="); ok && strings.EqualFold(k, "host") {
			return "host=" + v
		}
	}
	return "(dsn)"
}
