package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/AndrewRayR/e-ink/pkg/input"
	"github.com/AndrewRayR/e-ink/pkg/render"
	"github.com/AndrewRayR/e-ink/pkg/store"
)

// KeySource is the non-blocking key queue the engine polls.
type KeySource interface {
	Poll() (input.Key, bool)
}

// Engine drives the state machine: it instantiates the current screen, shows
// its frame, feeds it keys and ticks, and follows transitions until the
// context is cancelled or the user interrupts.
type Engine struct {
	deps *Deps
	keys KeySource
	poll time.Duration

	lastKey  time.Time
	sleeping bool
}

// NewEngine creates the engine. poll is the idle loop interval.
func NewEngine(deps *Deps, keys KeySource, poll time.Duration) *Engine {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Started.IsZero() {
		deps.Started = deps.Now()
	}
	return &Engine{deps: deps, keys: keys, poll: poll}
}

// Run loops screens starting at the clock until ctx is cancelled or Ctrl-C
// arrives through the key queue. The display is left awake; main owns the
// final sleep.
func (e *Engine) Run(ctx context.Context) error {
	e.lastKey = e.deps.Now()
	id := ScreenClock
	for {
		scr := e.build(id)
		slog.Debug("entering screen", "screen", id.String())

		next, ok := e.runScreen(ctx, scr)
		if !ok {
			return ctx.Err()
		}
		id = next
	}
}

func (e *Engine) build(id ScreenID) Screen {
	switch id {
	case ScreenMainMenu:
		return newMainMenu(e.deps)
	case ScreenNotesMenu:
		return newNotesMenu(e.deps)
	case ScreenCreateNote:
		return newCreateNote(e.deps)
	case ScreenViewNotes:
		return newViewNotes(e.deps)
	case ScreenWeather:
		return newWeatherScreen(e.deps)
	case ScreenSettings:
		return newSettingsScreen(e.deps)
	default:
		return newClock(e.deps)
	}
}

// runScreen returns the next screen ID, or ok=false on shutdown.
func (e *Engine) runScreen(ctx context.Context, scr Screen) (ScreenID, bool) {
	e.show(scr, true)

	if st, ok := scr.(Starter); ok {
		if next, done := e.apply(scr, st.Start(ctx)); done {
			return next, true
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ScreenNone, false
		default:
		}

		if key, ok := e.keys.Poll(); ok {
			e.lastKey = e.deps.Now()
			if e.sleeping {
				// The wake key is consumed by the wake itself.
				e.sleeping = false
				e.show(scr, true)
				continue
			}
			if key.Kind == input.KindInterrupt {
				return ScreenNone, false
			}
			if next, done := e.apply(scr, scr.HandleKey(key)); done {
				return next, true
			}
			continue
		}

		if !e.sleeping {
			if next, done := e.apply(scr, scr.Tick(e.deps.Now())); done {
				return next, true
			}
			e.maybeAutoSleep()
		}

		select {
		case <-ctx.Done():
			return ScreenNone, false
		case <-time.After(e.poll):
		}
	}
}

func (e *Engine) apply(scr Screen, act Action) (ScreenID, bool) {
	if act.Next != ScreenNone {
		return act.Next, true
	}
	if act.Redraw {
		e.show(scr, act.Full)
	}
	return ScreenNone, false
}

// show renders the screen's frame and pushes it to the surface. Display
// failures are logged and absorbed; the UI keeps running.
func (e *Engine) show(scr Screen, forceFull bool) {
	f := render.New(e.deps.darkMode())
	scr.Draw(f)
	partial := !forceFull && e.deps.partialRefresh()
	if err := e.deps.Surface.Show(f.Img, partial); err != nil {
		slog.Error("display show failed", "error", err)
	}
}

func (e *Engine) maybeAutoSleep() {
	minutes := e.deps.Settings.Int(store.KeyAutoSleep, 0)
	if minutes <= 0 {
		return
	}
	if e.deps.Now().Sub(e.lastKey) < time.Duration(minutes)*time.Minute {
		return
	}
	if err := e.deps.Surface.Sleep(); err != nil {
		slog.Error("display sleep failed", "error", err)
		return
	}
	slog.Info("auto-sleep", "idle_minutes", minutes)
	e.sleeping = true
}
