// Package config loads the ambient application configuration: file locations,
// the weather endpoint, timeouts and display wiring. User-facing preferences
// (dark mode, clock format, ...) live in the settings store instead and are
// edited on-device through the Settings screen.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config file path.
const EnvPath = "INKDECK_CONFIG"

// Config holds the application configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Log     LogConfig     `yaml:"log"`
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
	Weather WeatherConfig `yaml:"weather"`
}

// DataConfig holds persistent storage locations.
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// DisplayConfig holds render surface settings.
type DisplayConfig struct {
	// Driver selects the surface: "epd" for the Waveshare 2.13" V4 HAT,
	// "file" for the PNG preview surface. "auto" tries the HAT and falls
	// back to the file surface.
	Driver      string `yaml:"driver"`
	PreviewPath string `yaml:"preview_path"`
	FontPath    string `yaml:"font_path"`
}

// InputConfig holds keyboard polling settings.
type InputConfig struct {
	Poll Duration `yaml:"poll"`
}

// WeatherConfig holds forecast provider settings.
type WeatherConfig struct {
	Endpoint string   `yaml:"endpoint"`
	Timeout  Duration `yaml:"timeout"`
}

// Default returns the default configuration. Paths containing "~" are
// expanded against the current user's home directory at load time.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir: "~/.local/share/inkdeck",
		},
		Log: LogConfig{
			Path:  "~/.local/share/inkdeck/inkdeck.log",
			Level: "INFO",
		},
		Display: DisplayConfig{
			Driver:      "auto",
			PreviewPath: "/tmp/inkdeck-preview.png",
			FontPath:    "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		},
		Input: InputConfig{
			Poll: Duration(50 * time.Millisecond),
		},
		Weather: WeatherConfig{
			Endpoint: "https://wttr.in",
			Timeout:  Duration(10 * time.Second),
		},
	}
}

// Path returns the config file location: $INKDECK_CONFIG if set, otherwise
// ~/.config/inkdeck/config.yaml.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return expandHome("~/.config/inkdeck/config.yaml")
}

// Load loads the configuration from the given path. A missing file is created
// with default values; an existing file is merged over the defaults so new
// keys appear automatically on upgrades.
func Load(path string) (*Config, error) {
	cfg := Default()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		cfg.expand()
		return cfg, nil
	}

	if err := Save(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config file: %w", err)
	}
	cfg.expand()
	return cfg, nil
}

// Save writes the configuration to the path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# inkdeck configuration
# User preferences (dark mode, clock format, ZIP code, ...) are edited on the
# device itself and stored in settings.json, not here.

`)
	data = append(header, data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Config) expand() {
	c.Data.Dir = expandHome(c.Data.Dir)
	c.Log.Path = expandHome(c.Log.Path)
	c.Display.PreviewPath = expandHome(c.Display.PreviewPath)
	c.Display.FontPath = expandHome(c.Display.FontPath)
}

func expandHome(p string) string {
	if len(p) < 2 || p[0] != '~' || p[1] != '/' {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
