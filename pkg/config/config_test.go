package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	tests := []struct {
		name      string
		setup     func(t *testing.T)
		validate  func(t *testing.T, cfg *Config)
		checkFile func(t *testing.T)
	}{
		{
			name:  "NewFile_Defaults",
			setup: func(t *testing.T) {},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "auto", cfg.Display.Driver)
				assert.Equal(t, "https://wttr.in", cfg.Weather.Endpoint)
				assert.Equal(t, 10*time.Second, cfg.Weather.Timeout.Std())
				assert.Equal(t, 50*time.Millisecond, cfg.Input.Poll.Std())
			},
			checkFile: func(t *testing.T) {
				content, err := os.ReadFile(configPath)
				require.NoError(t, err)
				assert.Contains(t, string(content), "driver: auto")
				assert.Contains(t, string(content), "endpoint: https://wttr.in")
			},
		},
		{
			name: "ExistingFile_Override",
			setup: func(t *testing.T) {
				err := os.WriteFile(configPath, []byte("display:\n  driver: file\nweather:\n  timeout: 3s\n"), 0o644)
				require.NoError(t, err)
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "file", cfg.Display.Driver)
				assert.Equal(t, 3*time.Second, cfg.Weather.Timeout.Std())
				// Untouched sections keep their defaults.
				assert.Equal(t, "https://wttr.in", cfg.Weather.Endpoint)
			},
			checkFile: func(t *testing.T) {},
		},
		{
			name: "CorruptFile_Error",
			setup: func(t *testing.T) {
				err := os.WriteFile(configPath, []byte("display: [not a mapping"), 0o644)
				require.NoError(t, err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, os.RemoveAll(configPath))
			tc.setup(t)

			cfg, err := Load(configPath)
			if tc.validate == nil {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tc.validate(t, cfg)
			tc.checkFile(t)
		})
	}
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/elsewhere.yaml")
	assert.Equal(t, "/tmp/elsewhere.yaml", Path())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "x"), expandHome("~/x"))
	assert.Equal(t, "/abs/path", expandHome("/abs/path"))
	assert.True(t, strings.HasPrefix(expandHome("~/.local/share/inkdeck"), home))
}
