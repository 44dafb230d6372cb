package ui

import (
	"time"

	"github.com/AndrewRayR/e-ink/pkg/input"
	"github.com/AndrewRayR/e-ink/pkg/render"
)

var notesOptions = []struct {
	label string
	next  ScreenID
}{
	{label: "1. Create New Note", next: ScreenCreateNote},
	{label: "2. View Notes", next: ScreenViewNotes},
}

type notesMenuScreen struct {
	deps     *Deps
	selected int
}

func newNotesMenu(deps *Deps) *notesMenuScreen {
	return &notesMenuScreen{deps: deps}
}

func (n *notesMenuScreen) Draw(f *render.Frame) {
	f.TextCentered(18, "NOTES", n.deps.Fonts.Title)
	for i, opt := range notesOptions {
		y := 50 + i*28
		if i == n.selected {
			f.Text(10, y, ">", n.deps.Fonts.Body)
		}
		f.Text(25, y, opt.label, n.deps.Fonts.Body)
	}
	f.Text(5, 116, "ENTER=Select ESC=Back", n.deps.Fonts.Small)
}

func (n *notesMenuScreen) HandleKey(k input.Key) Action {
	switch {
	case k.Kind == input.KindUp || k.Rune == 'w':
		if n.selected > 0 {
			n.selected--
			return redraw()
		}
	case k.Kind == input.KindDown || k.Rune == 's':
		if n.selected < len(notesOptions)-1 {
			n.selected++
			return redraw()
		}
	case k.Digit() >= 1 && k.Digit() <= len(notesOptions):
		n.selected = k.Digit() - 1
		return redraw()
	case k.Kind == input.KindEnter:
		return goTo(notesOptions[n.selected].next)
	case k.Kind == input.KindEsc:
		return goTo(ScreenMainMenu)
	}
	return stay
}

func (n *notesMenuScreen) Tick(time.Time) Action {
	return stay
}
