package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Settings keys.
const (
	KeyDarkMode    = "dark_mode"
	KeyClockFormat = "clock_format"
	KeyDateFormat  = "date_format"
	KeyRefreshMode = "refresh_mode"
	KeyAutoSleep   = "auto_sleep"
	KeyShowSeconds = "show_seconds"
	KeyZipCode     = "zip_code"
)

// defaultSettings is the canonical default set. Load and ResetDefaults both
// derive from it, so upgrades that add keys surface on existing installs.
func defaultSettings() map[string]any {
	return map[string]any{
		KeyDarkMode:    false,
		KeyClockFormat: "12",
		KeyDateFormat:  "long",
		KeyRefreshMode: "partial",
		KeyAutoSleep:   0,
		KeyShowSeconds: false,
		KeyZipCode:     "",
	}
}

// Settings is the key/value preferences store backed by settings.json.
// Unknown keys found on disk are preserved across saves.
type Settings struct {
	path   string
	values map[string]any
}

// OpenSettings loads the settings file from dir, merging its contents over
// the defaults. A missing or corrupt file yields pure defaults.
func OpenSettings(dir string) (*Settings, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	s := &Settings{
		path:   filepath.Join(dir, "settings.json"),
		values: defaultSettings(),
	}
	s.load()
	return s, nil
}

func (s *Settings) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("settings file unreadable, using defaults", "path", s.path, "error", err)
		}
		return
	}
	var onDisk map[string]any
	if err := json.Unmarshal(data, &onDisk); err != nil {
		slog.Warn("settings file corrupt, using defaults", "path", s.path, "error", err)
		return
	}
	for k, v := range onDisk {
		s.values[k] = v
	}
}

func (s *Settings) save() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Set stores a value and persists immediately.
func (s *Settings) Set(key string, value any) error {
	s.values[key] = value
	return s.save()
}

// ResetDefaults restores every default key to its default value and persists.
// Unknown keys are dropped; the store returns to the canonical state.
func (s *Settings) ResetDefaults() error {
	s.values = defaultSettings()
	return s.save()
}

// Bool returns the value for key as a bool, or def when absent or mistyped.
func (s *Settings) Bool(key string, def bool) bool {
	if v, ok := s.values[key].(bool); ok {
		return v
	}
	return def
}

// String returns the value for key as a string, or def.
func (s *Settings) String(key, def string) string {
	if v, ok := s.values[key].(string); ok {
		return v
	}
	return def
}

// Int returns the value for key as an int, or def. JSON numbers load as
// float64, so both representations are accepted.
func (s *Settings) Int(key string, def int) int {
	switch v := s.values[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return def
	}
}
