package storage

import "github.com/julianstephens/blocksmith/internal/models"

// Provider persists the demo site's settings.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Utils
	SchemaVersion() (current, latest int, err error)
	GetConfigPath() string
}
