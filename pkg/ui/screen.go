// Package ui is the screen state machine: a closed set of screen variants,
// each owning its transient cursor/scroll/input state, dispatched by a single
// engine loop. Screens share nothing across transitions except the stores.
package ui

import (
	"context"
	"time"

	"github.com/AndrewRayR/e-ink/pkg/display"
	"github.com/AndrewRayR/e-ink/pkg/input"
	"github.com/AndrewRayR/e-ink/pkg/render"
	"github.com/AndrewRayR/e-ink/pkg/store"
	"github.com/AndrewRayR/e-ink/pkg/weather"
)

// ScreenID names a screen. It is the sole inter-screen contract: a screen
// returns the ID of its successor and the engine builds it fresh.
type ScreenID int

// Screen IDs. ScreenNone means "stay".
const (
	ScreenNone ScreenID = iota
	ScreenClock
	ScreenMainMenu
	ScreenNotesMenu
	ScreenCreateNote
	ScreenViewNotes
	ScreenWeather
	ScreenSettings
)

func (id ScreenID) String() string {
	switch id {
	case ScreenClock:
		return "clock"
	case ScreenMainMenu:
		return "main_menu"
	case ScreenNotesMenu:
		return "notes_menu"
	case ScreenCreateNote:
		return "create_note"
	case ScreenViewNotes:
		return "view_notes"
	case ScreenWeather:
		return "weather"
	case ScreenSettings:
		return "settings"
	}
	return "none"
}

// Action is a screen's response to a key or a tick.
type Action struct {
	Next   ScreenID // transition when != ScreenNone
	Redraw bool
	Full   bool // force a full hardware refresh for this redraw
}

var stay = Action{}

func redraw() Action {
	return Action{Redraw: true}
}

func redrawFull() Action {
	return Action{Redraw: true, Full: true}
}

func goTo(id ScreenID) Action {
	return Action{Next: id}
}

// Screen is the uniform render/handle-input contract.
type Screen interface {
	// Draw recomputes the full frame for the current state.
	Draw(f *render.Frame)
	// HandleKey consumes one key token.
	HandleKey(k input.Key) Action
	// Tick runs once per poll iteration when no key is pending, driving
	// time-based redraws (clock boundaries, timed overlays).
	Tick(now time.Time) Action
}

// Starter is implemented by screens that do blocking work after their first
// frame is on the panel (the weather fetch behind its loading message).
type Starter interface {
	Start(ctx context.Context) Action
}

// Deps are the shared dependencies handed to every screen. Constructed once
// at startup; no ambient globals.
type Deps struct {
	Surface  display.Surface
	Notes    *store.Notes
	Settings *store.Settings
	Weather  weather.Fetcher
	Fonts    *render.Fonts
	Now      func() time.Time
	Started  time.Time
}

func (d *Deps) darkMode() bool {
	return d.Settings.Bool(store.KeyDarkMode, false)
}

func (d *Deps) partialRefresh() bool {
	return d.Settings.String(store.KeyRefreshMode, "partial") == "partial"
}
