package postgres

import (
	"fmt"
	"sort"

	apperrors "github.com/julianstephens/blocksmith/internal/errors"
	"github.com/julianstephens/blocksmith/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, apperrors.ErrNotInitialized
	}
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		data[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if len(data) == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return models.MapToSettings(data)
}

func (s *Store) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return apperrors.ErrNotInitialized
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// PostgreSQL uses INSERT ... ON CONFLICT for upsert
	stmt, err := tx.Prepare(`
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	data := models.SettingsToMap(settings)
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := stmt.Exec(k, data[k]); err != nil {
			return fmt.Errorf("saving %s: %w", k, err)
		}
	}

	return tx.Commit()
}
