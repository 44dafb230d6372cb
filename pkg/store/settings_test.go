package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_Defaults(t *testing.T) {
	s, err := OpenSettings(t.TempDir())
	require.NoError(t, err)

	assert.False(t, s.Bool(KeyDarkMode, true))
	assert.Equal(t, "12", s.String(KeyClockFormat, ""))
	assert.Equal(t, "long", s.String(KeyDateFormat, ""))
	assert.Equal(t, "partial", s.String(KeyRefreshMode, ""))
	assert.Equal(t, 0, s.Int(KeyAutoSleep, -1))
	assert.False(t, s.Bool(KeyShowSeconds, true))
	assert.Equal(t, "", s.String(KeyZipCode, "x"))
}

func TestSettings_SetPersistsImmediately(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenSettings(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(KeyZipCode, "02139"))
	require.NoError(t, s.Set(KeyDarkMode, true))

	again, err := OpenSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, "02139", again.String(KeyZipCode, ""))
	assert.True(t, again.Bool(KeyDarkMode, false))
}

func TestSettings_ResetRestoresEveryDefault(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenSettings(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(KeyDarkMode, true))
	require.NoError(t, s.Set(KeyClockFormat, "24"))
	require.NoError(t, s.Set(KeyAutoSleep, 30))
	require.NoError(t, s.ResetDefaults())

	for key, want := range defaultSettings() {
		assert.Equal(t, want, s.values[key], "key %s", key)
	}

	again, err := OpenSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, "12", again.String(KeyClockFormat, ""))
	assert.Equal(t, 0, again.Int(KeyAutoSleep, -1))
}

func TestSettings_UnknownKeysPreserved(t *testing.T) {
	dir := t.TempDir()
	body := []byte(`{"dark_mode": true, "future_key": "kept"}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), body, 0o644))

	s, err := OpenSettings(dir)
	require.NoError(t, err)
	assert.True(t, s.Bool(KeyDarkMode, false))
	assert.Equal(t, "kept", s.String("future_key", ""))
	// Missing keys still fall back to defaults after a partial file load.
	assert.Equal(t, "long", s.String(KeyDateFormat, ""))

	// The unknown key survives a save.
	require.NoError(t, s.Set(KeyZipCode, "90210"))
	again, err := OpenSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, "kept", again.String("future_key", ""))
}

func TestSettings_CorruptFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte("][,"), 0o644))

	s, err := OpenSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, "12", s.String(KeyClockFormat, ""))
}

func TestSettings_IntFromJSONNumber(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte(`{"auto_sleep": 15}`), 0o644))

	s, err := OpenSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, 15, s.Int(KeyAutoSleep, -1))
}
