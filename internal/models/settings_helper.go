package models

import (
	"fmt"

	"github.com/julianstephens/blocksmith/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
// Missing keys keep their defaults; an unknown theme is an error.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := DefaultSettings()

	for key, value := range data {
		switch key {
		case constants.SettingTheme:
			theme, err := ParseTheme(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			settings.Theme = theme
		case constants.SettingDefaultMode:
			settings.DefaultMode = value
		case constants.SettingTimezone:
			settings.Timezone = value
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingTheme:       string(settings.Theme),
		constants.SettingDefaultMode: settings.DefaultMode,
		constants.SettingTimezone:    settings.Timezone,
	}
}
