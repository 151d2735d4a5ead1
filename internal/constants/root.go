package constants

// SessionState represents the current state of the TUI application
type SessionState int

// Theme represents the persisted light/dark preference
type Theme string

const (
	AppName            = "blocksmith"
	DisplayName        = "Blocksmith UI"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/blocksmith/blocksmith.db"
	ConnectionEnvVar   = "BLOCKSMITH_DB_CONNECTION"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat is used by the calendar command's --month flag (YYYY-MM)
	MonthFormat = "2006-01"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Calendar grid shape: always 6 weeks of 7 days
	GridWeeks = 6
	GridDays  = 7
	GridCells = GridWeeks * GridDays

	// Time slot bounds and granularity
	SlotStepMin    = 15
	DefaultMinTime = "00:00"
	DefaultMaxTime = "23:45"
	// LatestNow is the upper bound for "Now" when no max time is set. It is
	// later than DefaultMaxTime because Now is not snapped to a slot.
	LatestNow = "23:59"

	// Playground default values
	DefaultTime      = "12:00"
	DefaultRangeFrom = "12:00"
	DefaultRangeTo   = "13:00"

	// Themes
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Session States
const (
	StateHome SessionState = iota
	StatePlayground
	StateAbout
	StateSettings
	StateEditProps
)
