package constants

const (
	// Settings keys
	SettingTheme       = "theme"
	SettingDefaultMode = "default_mode"
	SettingTimezone    = "timezone"

	// Default Settings Values
	DefaultTheme    = ThemeDark
	DefaultMode     = "date"
	DefaultTimezone = "Local" // Use system local timezone by default
)
