package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AndrewRayR/e-ink/pkg/input"
	"github.com/AndrewRayR/e-ink/pkg/render"
	"github.com/AndrewRayR/e-ink/pkg/store"
	"github.com/AndrewRayR/e-ink/pkg/weather"
)

type weatherPhase uint8

const (
	weatherNoZip weatherPhase = iota
	weatherLoading
	weatherReady
	weatherFailed
)

// weatherScreen performs one synchronous fetch per visit, after its loading
// frame is on the panel, and then only waits for ESC.
type weatherScreen struct {
	deps   *Deps
	phase  weatherPhase
	zip    string
	report *weather.Report
}

func newWeatherScreen(deps *Deps) *weatherScreen {
	w := &weatherScreen{deps: deps}
	w.zip = deps.Settings.String(store.KeyZipCode, "")
	if w.zip == "" {
		w.phase = weatherNoZip
	} else {
		w.phase = weatherLoading
	}
	return w
}

func (w *weatherScreen) Start(ctx context.Context) Action {
	if w.phase != weatherLoading {
		return stay
	}
	report, err := w.deps.Weather.Fetch(ctx, w.zip)
	if err != nil {
		slog.Warn("weather fetch failed", "zip", w.zip, "error", err)
		w.phase = weatherFailed
	} else {
		w.report = report
		w.phase = weatherReady
	}
	return redrawFull()
}

func (w *weatherScreen) Draw(f *render.Frame) {
	switch w.phase {
	case weatherNoZip:
		f.TextCentered(44, "No ZIP code set", w.deps.Fonts.Title)
		f.TextCentered(66, "Set one in Settings", w.deps.Fonts.Body)
		f.Text(5, 116, "ESC=Back", w.deps.Fonts.Small)
	case weatherLoading:
		f.TextCentered(60, "Fetching weather...", w.deps.Fonts.Body)
	case weatherFailed:
		f.TextCentered(44, "Weather unavailable", w.deps.Fonts.Title)
		f.TextCentered(66, "Check the network and try again", w.deps.Fonts.Small)
		f.Text(5, 116, "ESC=Back", w.deps.Fonts.Small)
	case weatherReady:
		w.drawReport(f)
	}
}

func (w *weatherScreen) drawReport(f *render.Frame) {
	r := w.report
	loc := r.Location
	if loc == "" {
		loc = w.zip
	}
	f.TextCentered(14, render.Truncate(loc, 30), w.deps.Fonts.Title)

	cur := fmt.Sprintf("%sF %s", r.Current.TempF, r.Current.Desc)
	f.Text(5, 36, render.Truncate(cur, 30), w.deps.Fonts.Body)
	f.Text(5, 52, fmt.Sprintf("Humidity %s%%  Wind %s mph", r.Current.Humidity, r.Current.WindMph), w.deps.Fonts.Small)

	f.Line(0, 58, render.Width-1, 58)

	y := 74
	for _, day := range r.Days {
		row := fmt.Sprintf("%-8s %s/%sF %s", day.Label, day.HighF, day.LowF, day.Desc)
		f.Text(5, y, render.Truncate(row, 35), w.deps.Fonts.Small)
		y += 16
	}

	f.Text(5, 116, "ESC=Back", w.deps.Fonts.Small)
}

func (w *weatherScreen) HandleKey(k input.Key) Action {
	if k.Kind == input.KindEsc {
		return goTo(ScreenMainMenu)
	}
	return stay
}

func (w *weatherScreen) Tick(time.Time) Action {
	return stay
}
