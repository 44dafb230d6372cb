package ui

import (
	"github.com/AndrewRayR/e-ink/pkg/input"
	"github.com/AndrewRayR/e-ink/pkg/render"
)

// inputState is the outcome of feeding one key to a text input.
type inputState uint8

const (
	inputPending inputState = iota
	inputDone               // ENTER: the buffer (possibly empty) is the value
	inputAborted            // ESC: no value; distinct from an empty submit
)

// textInput is the shared free-text prompt: printable characters up to a
// maximum length, BACKSPACE edits, ENTER submits, ESC aborts.
type textInput struct {
	prompt string
	max    int
	buf    []rune
}

func newTextInput(prompt string, max int) *textInput {
	return &textInput{prompt: prompt, max: max}
}

func (t *textInput) handle(k input.Key) inputState {
	switch k.Kind {
	case input.KindEnter:
		return inputDone
	case input.KindEsc:
		return inputAborted
	case input.KindBackspace:
		if len(t.buf) > 0 {
			t.buf = t.buf[:len(t.buf)-1]
		}
	case input.KindRune:
		if len(t.buf) < t.max {
			t.buf = append(t.buf, k.Rune)
		}
	}
	return inputPending
}

func (t *textInput) text() string {
	return string(t.buf)
}

func (t *textInput) draw(f *render.Frame, fonts *render.Fonts) {
	f.Text(5, 16, t.prompt, fonts.Body)

	// Current text plus cursor, wrapped across two fixed-width lines.
	const lineWidth = 30
	shown := t.text() + "_"
	if len(shown) > 2*lineWidth {
		shown = shown[len(shown)-2*lineWidth:]
	}
	if len(shown) > lineWidth {
		f.Text(5, 44, shown[:lineWidth], fonts.Body)
		f.Text(5, 62, shown[lineWidth:], fonts.Body)
	} else {
		f.Text(5, 44, shown, fonts.Body)
	}

	f.Text(5, 116, "ENTER=Done ESC=Cancel", fonts.Small)
}
