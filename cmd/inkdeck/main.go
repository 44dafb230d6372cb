// Command inkdeck runs the e-ink clock, notes, weather and settings UI as a
// foreground terminal process. It takes no flags; the config file location
// can be overridden with INKDECK_CONFIG (or a .env file providing it).
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/AndrewRayR/e-ink/pkg/config"
	"github.com/AndrewRayR/e-ink/pkg/display"
	"github.com/AndrewRayR/e-ink/pkg/input"
	"github.com/AndrewRayR/e-ink/pkg/logging"
	"github.com/AndrewRayR/e-ink/pkg/render"
	"github.com/AndrewRayR/e-ink/pkg/store"
	"github.com/AndrewRayR/e-ink/pkg/ui"
	"github.com/AndrewRayR/e-ink/pkg/version"
	"github.com/AndrewRayR/e-ink/pkg/weather"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "inkdeck: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load(config.Path())
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	cleanup, err := logging.Init(&cfg.Log)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer cleanup()
	slog.Info("starting", "version", version.Version, "data_dir", cfg.Data.Dir)

	notes, err := store.OpenNotes(cfg.Data.Dir)
	if err != nil {
		return fmt.Errorf("notes store: %w", err)
	}
	settings, err := store.OpenSettings(cfg.Data.Dir)
	if err != nil {
		return fmt.Errorf("settings store: %w", err)
	}

	surface, err := display.Open(cfg.Display)
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}
	defer surface.Close()

	kb, err := input.Start(os.Stdin)
	if err != nil {
		return fmt.Errorf("keyboard: %w", err)
	}
	defer kb.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := &ui.Deps{
		Surface:  surface,
		Notes:    notes,
		Settings: settings,
		Weather:  weather.New(cfg.Weather.Endpoint, cfg.Weather.Timeout.Std()),
		Fonts:    render.LoadFonts(cfg.Display.FontPath),
		Now:      time.Now,
	}
	engine := ui.NewEngine(deps, kb, cfg.Input.Poll.Std())

	if err := engine.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("engine: %w", err)
	}

	slog.Info("shutting down")
	kb.Stop()
	if err := surface.Sleep(); err != nil {
		slog.Error("display sleep on shutdown failed", "error", err)
	}
	return nil
}
