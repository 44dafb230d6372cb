package ui

import (
	"log/slog"
	"time"

	"github.com/AndrewRayR/e-ink/pkg/input"
	"github.com/AndrewRayR/e-ink/pkg/render"
)

const (
	titleMaxLen   = 40
	contentMaxLen = 200
	savedDuration = 1500 * time.Millisecond
)

type createPhase uint8

const (
	phaseTitle createPhase = iota
	phaseContent
	phaseSaved
)

// createNoteScreen walks two sequential text prompts, saves the note and
// flashes a confirmation. ESC at either prompt aborts without saving.
type createNoteScreen struct {
	deps       *Deps
	phase      createPhase
	in         *textInput
	title      string
	savedUntil time.Time
}

func newCreateNote(deps *Deps) *createNoteScreen {
	return &createNoteScreen{
		deps: deps,
		in:   newTextInput("Note Title:", titleMaxLen),
	}
}

func (c *createNoteScreen) Draw(f *render.Frame) {
	if c.phase == phaseSaved {
		f.TextCentered(64, "Note Saved!", c.deps.Fonts.Title)
		return
	}
	c.in.draw(f, c.deps.Fonts)
}

func (c *createNoteScreen) HandleKey(k input.Key) Action {
	if c.phase == phaseSaved {
		return stay
	}

	switch c.in.handle(k) {
	case inputAborted:
		return goTo(ScreenNotesMenu)
	case inputDone:
		if c.phase == phaseTitle {
			c.title = c.in.text()
			c.phase = phaseContent
			c.in = newTextInput("Note Content:", contentMaxLen)
			return redraw()
		}
		if _, err := c.deps.Notes.Create(c.title, c.in.text()); err != nil {
			slog.Error("note save failed", "error", err)
		}
		c.phase = phaseSaved
		c.savedUntil = c.deps.Now().Add(savedDuration)
		return redraw()
	default:
		return redraw()
	}
}

func (c *createNoteScreen) Tick(now time.Time) Action {
	if c.phase == phaseSaved && now.After(c.savedUntil) {
		return goTo(ScreenNotesMenu)
	}
	return stay
}
