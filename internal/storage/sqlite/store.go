package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	apperrors "github.com/julianstephens/blocksmith/internal/errors"
	"github.com/julianstephens/blocksmith/internal/logger"
	"github.com/julianstephens/blocksmith/internal/migration"
	"github.com/julianstephens/blocksmith/internal/models"
	"github.com/julianstephens/blocksmith/migrations"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Init() error {
	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if s.db == nil {
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		s.db = db
	}

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Fill in defaults for a fresh database, keep whatever is already there
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return apperrors.ErrNotInitialized
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.runner().ValidateVersion()
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) runner() *migration.Runner {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		// fs.Sub only fails on an invalid path literal
		panic(err)
	}
	return migration.NewRunner(s.db, subFS, migration.SQLite)
}

func (s *Store) runMigrations() error {
	_, err := s.runner().Apply(func(msg string) {
		logger.Info(msg, "backend", "sqlite")
	})
	return err
}

// SchemaVersion reports the applied and the latest embedded schema versions.
func (s *Store) SchemaVersion() (current, latest int, err error) {
	if s.db == nil {
		return 0, 0, apperrors.ErrNotInitialized
	}
	r := s.runner()
	if current, err = r.CurrentVersion(); err != nil {
		return 0, 0, err
	}
	latest, err = r.LatestVersion()
	return current, latest, err
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection, or nil before Init/Load.
func (s *Store) GetDB() *sql.DB {
	return s.db
}
