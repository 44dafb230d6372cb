// Package input reads raw terminal key presses on a background goroutine,
// decodes escape sequences into named tokens and queues them for the UI loop
// to poll. One producer, one consumer.
package input

import "fmt"

// Kind identifies a decoded key token.
type Kind uint8

// Key kinds.
const (
	KindRune Kind = iota
	KindEnter
	KindEsc
	KindBackspace
	KindUp
	KindDown
	KindLeft
	KindRight
	KindInterrupt // Ctrl-C under raw mode
)

// Key is one decoded key press.
type Key struct {
	Kind Kind
	Rune rune // set when Kind == KindRune
}

// Named tokens.
var (
	Enter     = Key{Kind: KindEnter}
	Esc       = Key{Kind: KindEsc}
	Backspace = Key{Kind: KindBackspace}
	Up        = Key{Kind: KindUp}
	Down      = Key{Kind: KindDown}
	Left      = Key{Kind: KindLeft}
	Right     = Key{Kind: KindRight}
	Interrupt = Key{Kind: KindInterrupt}
)

// Rune returns a printable-character token.
func Rune(r rune) Key {
	return Key{Kind: KindRune, Rune: r}
}

// Digit returns the numeric value of a '0'-'9' rune token, or -1.
func (k Key) Digit() int {
	if k.Kind != KindRune || k.Rune < '0' || k.Rune > '9' {
		return -1
	}
	return int(k.Rune - '0')
}

func (k Key) String() string {
	switch k.Kind {
	case KindRune:
		return fmt.Sprintf("%q", k.Rune)
	case KindEnter:
		return "ENTER"
	case KindEsc:
		return "ESC"
	case KindBackspace:
		return "BACKSPACE"
	case KindUp:
		return "UP"
	case KindDown:
		return "DOWN"
	case KindLeft:
		return "LEFT"
	case KindRight:
		return "RIGHT"
	case KindInterrupt:
		return "INTERRUPT"
	}
	return "UNKNOWN"
}
