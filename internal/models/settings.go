package models

import (
	"fmt"
	"strings"

	"github.com/julianstephens/blocksmith/internal/constants"
	apperrors "github.com/julianstephens/blocksmith/internal/errors"
)

// Settings represents application-wide settings
type Settings struct {
	Theme       constants.Theme `json:"theme"`        // "light" or "dark"
	DefaultMode string          `json:"default_mode"` // picker mode the playground opens with
	Timezone    string          `json:"timezone"`     // IANA timezone name used to decide "today", or "Local"
}

// DefaultSettings returns the settings written by `blocksmith init`.
func DefaultSettings() Settings {
	return Settings{
		Theme:       constants.DefaultTheme,
		DefaultMode: constants.DefaultMode,
		Timezone:    constants.DefaultTimezone,
	}
}

// ParseTheme parses a theme name.
func ParseTheme(s string) (constants.Theme, error) {
	switch t := constants.Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case constants.ThemeLight, constants.ThemeDark:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidTheme, s)
}

// ToggleTheme returns the opposite theme.
func ToggleTheme(t constants.Theme) constants.Theme {
	if t == constants.ThemeLight {
		return constants.ThemeDark
	}
	return constants.ThemeLight
}
