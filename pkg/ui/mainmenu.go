package ui

import (
	"fmt"
	"time"

	"github.com/AndrewRayR/e-ink/pkg/input"
	"github.com/AndrewRayR/e-ink/pkg/render"
)

// menuSlot is one cell of the 2x4 launcher grid. Unbound slots show a
// Coming Soon overlay instead of transitioning.
type menuSlot struct {
	name string
	next ScreenID
}

var menuSlots = [8]menuSlot{
	{name: "Clock", next: ScreenClock},
	{name: "Notes", next: ScreenNotesMenu},
	{name: "?"},
	{name: "?"},
	{name: "?"},
	{name: "?"},
	{name: "Weather", next: ScreenWeather},
	{name: "Settings", next: ScreenSettings},
}

const overlayDuration = 2 * time.Second

type mainMenuScreen struct {
	deps         *Deps
	selected     int
	overlaySlot  int // 1-based; 0 when no overlay is up
	overlayUntil time.Time
}

func newMainMenu(deps *Deps) *mainMenuScreen {
	return &mainMenuScreen{deps: deps}
}

func (m *mainMenuScreen) Draw(f *render.Frame) {
	if m.overlaySlot > 0 {
		f.TextCentered(50, fmt.Sprintf("App %d", m.overlaySlot), m.deps.Fonts.Title)
		f.TextCentered(75, "Coming Soon!", m.deps.Fonts.Body)
		return
	}

	f.TextCentered(14, "MAIN MENU", m.deps.Fonts.Title)

	cellW := render.Width / 4
	cellH := (render.Height - 20) / 2
	for i, slot := range menuSlots {
		col := i % 4
		row := i / 4
		x := col * cellW
		y := 20 + row*cellH

		if i == m.selected {
			f.Rect(x+2, y+2, x+cellW-2, y+cellH-2, 2)
		}
		f.Text(x+5, y+16, fmt.Sprintf("%d", i+1), m.deps.Fonts.Small)

		w := render.TextWidth(m.deps.Fonts.Small, slot.name)
		f.Text(x+(cellW-w)/2, y+cellH-8, slot.name, m.deps.Fonts.Small)
	}
}

func (m *mainMenuScreen) HandleKey(k input.Key) Action {
	if m.overlaySlot > 0 {
		// The overlay runs its course; keys are ignored meanwhile.
		return stay
	}

	switch {
	case k.Kind == input.KindUp || k.Rune == 'w':
		if m.selected >= 4 {
			m.selected -= 4
			return redraw()
		}
	case k.Kind == input.KindDown || k.Rune == 's':
		if m.selected < 4 {
			m.selected += 4
			return redraw()
		}
	case k.Kind == input.KindLeft || k.Rune == 'a':
		if m.selected%4 != 0 {
			m.selected--
			return redraw()
		}
	case k.Kind == input.KindRight || k.Rune == 'd':
		if m.selected%4 != 3 {
			m.selected++
			return redraw()
		}
	case k.Digit() >= 1 && k.Digit() <= 8:
		m.selected = k.Digit() - 1
		return redraw()
	case k.Kind == input.KindEnter:
		slot := menuSlots[m.selected]
		if slot.next != ScreenNone {
			return goTo(slot.next)
		}
		m.overlaySlot = m.selected + 1
		m.overlayUntil = m.deps.Now().Add(overlayDuration)
		return redraw()
	case k.Kind == input.KindEsc:
		return goTo(ScreenClock)
	}
	return stay
}

func (m *mainMenuScreen) Tick(now time.Time) Action {
	if m.overlaySlot > 0 && now.After(m.overlayUntil) {
		m.overlaySlot = 0
		return redraw()
	}
	return stay
}
