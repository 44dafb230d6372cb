package ui

import (
	"strings"
	"time"

	"github.com/AndrewRayR/e-ink/pkg/input"
	"github.com/AndrewRayR/e-ink/pkg/render"
	"github.com/AndrewRayR/e-ink/pkg/store"
)

// clockScreen shows the time in seven-segment digits with the date above.
// It re-renders only when the displayed value changes.
type clockScreen struct {
	deps *Deps
	last string
}

func newClock(deps *Deps) *clockScreen {
	return &clockScreen{deps: deps}
}

func (c *clockScreen) Draw(f *render.Frame) {
	now := c.deps.Now()
	c.last = c.displayValue(now)

	f.TextCentered(16, c.dateString(now), c.deps.Fonts.Body)

	timeStr := c.timeString(now)
	x := (render.Width - render.SevenSegWidth(timeStr)) / 2
	f.SevenSegTime(timeStr, x, 35)

	if c.twelveHour() {
		f.TextCentered(108, now.Format("PM"), c.deps.Fonts.Body)
	}
}

func (c *clockScreen) HandleKey(k input.Key) Action {
	// Any key opens the main menu.
	return goTo(ScreenMainMenu)
}

func (c *clockScreen) Tick(now time.Time) Action {
	if c.displayValue(now) == c.last {
		return stay
	}
	return redraw()
}

func (c *clockScreen) twelveHour() bool {
	return c.deps.Settings.String(store.KeyClockFormat, "12") != "24"
}

func (c *clockScreen) showSeconds() bool {
	return c.deps.Settings.Bool(store.KeyShowSeconds, false)
}

// timeString renders the clock digits; twelve-hour mode drops the leading
// zero the way a physical seven-segment clock would.
func (c *clockScreen) timeString(now time.Time) string {
	layout := "15:04"
	if c.twelveHour() {
		layout = "03:04"
	}
	if c.showSeconds() {
		layout += ":05"
	}
	s := now.Format(layout)
	if c.twelveHour() && strings.HasPrefix(s, "0") {
		s = " " + s[1:]
	}
	return s
}

func (c *clockScreen) dateString(now time.Time) string {
	switch c.deps.Settings.String(store.KeyDateFormat, "long") {
	case "short":
		return now.Format("01/02/06")
	case "iso":
		return now.Format("2006-01-02")
	default:
		return now.Format("Mon, Jan 02, 2006")
	}
}

// displayValue is the full rendered state; a change at the minute (or
// second) boundary, or a settings change, triggers the partial redraw.
func (c *clockScreen) displayValue(now time.Time) string {
	return c.timeString(now) + "|" + c.dateString(now)
}
