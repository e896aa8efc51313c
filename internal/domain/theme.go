package domain

import "fmt"

// ThemeMode is the visitor's colour scheme preference.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// DefaultThemeMode applies when nothing was ever persisted.
const DefaultThemeMode = ThemeSystem

// ParseThemeMode accepts only the three known modes.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch m := ThemeMode(s); m {
	case ThemeLight, ThemeDark, ThemeSystem:
		return m, nil
	}
	return "", fmt.Errorf("unknown theme mode %q", s)
}

// Next cycles light -> dark -> system -> light.
func (m ThemeMode) Next() ThemeMode {
	switch m {
	case ThemeLight:
		return ThemeDark
	case ThemeDark:
		return ThemeSystem
	default:
		return ThemeLight
	}
}

// Label is the switcher's accessible name for moving to the next mode.
func (m ThemeMode) Label() string {
	return fmt.Sprintf("Switch to %s theme", m.Next())
}

// PreferenceStorage persists the theme mode between page loads.
type PreferenceStorage interface {
	Load() (string, bool)
	Save(value string) error
}

// ThemeObserver is called synchronously after every change.
type ThemeObserver func(mode ThemeMode)

// ThemeStore holds the active mode for one visitor.
type ThemeStore interface {
	Get() ThemeMode
	Set(mode ThemeMode) error
	Toggle() (ThemeMode, error)
	Resolved() ThemeMode
	Subscribe(fn ThemeObserver) (unsubscribe func())
}
