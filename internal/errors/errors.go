package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/blocksmith/internal/logger"
)

var (
	// ErrNotInitialized is returned when storage is used before `blocksmith init`
	ErrNotInitialized = stderrors.New("storage not initialized, run 'blocksmith init' first")
	// ErrInvalidMode is returned for a picker mode outside date|date-range|time|time-range
	ErrInvalidMode = stderrors.New("invalid picker mode")
	// ErrInvalidTheme is returned for a theme other than light or dark
	ErrInvalidTheme = stderrors.New("invalid theme")
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Hint returns the user-facing hint for known errors, or "" when there is none.
func Hint(err error) string {
	switch {
	case stderrors.Is(err, ErrNotInitialized):
		return "Run 'blocksmith init' to create the settings database."
	case stderrors.Is(err, ErrInvalidMode):
		return "Valid modes: date, date-range, time, time-range."
	case stderrors.Is(err, ErrInvalidTheme):
		return "Valid themes: light, dark."
	}
	return ""
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		if hint := Hint(err); hint != "" {
			fmt.Fprintf(os.Stderr, "       %s\n", hint)
		}
		os.Exit(1)
	}
}
