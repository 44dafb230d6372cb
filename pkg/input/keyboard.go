package input

import (
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/term"
)

const (
	// queueSize bounds the key FIFO; keys beyond it are dropped.
	queueSize = 64
	// readTimeout doubles as the stop-check interval and the quiet period
	// after which a dangling escape sequence resolves to ESC.
	readTimeout = 100 * time.Millisecond
)

// Keyboard owns the background reader goroutine and the key queue.
type Keyboard struct {
	f       *os.File
	restore func()
	keys    chan Key
	done    chan struct{}
	stopped atomic.Bool
}

// Start switches f into raw mode (when it is a terminal) and begins reading.
func Start(f *os.File) (*Keyboard, error) {
	k := &Keyboard{
		f:       f,
		restore: func() {},
		keys:    make(chan Key, queueSize),
		done:    make(chan struct{}),
	}

	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return nil, err
		}
		k.restore = func() {
			if err := term.Restore(fd, old); err != nil {
				slog.Error("terminal restore failed", "error", err)
			}
		}
	}

	go k.loop()
	return k, nil
}

// Poll returns the next queued key without blocking.
func (k *Keyboard) Poll() (Key, bool) {
	select {
	case key := <-k.keys:
		return key, true
	default:
		return Key{}, false
	}
}

// Stop ends the reader and restores the terminal mode. The restore runs
// unconditionally, even if the reader cannot be joined.
func (k *Keyboard) Stop() {
	if k.stopped.Swap(true) {
		return
	}
	select {
	case <-k.done:
	case <-time.After(3 * readTimeout):
		slog.Warn("keyboard reader did not stop in time")
	}
	k.restore()
}

func (k *Keyboard) loop() {
	defer close(k.done)
	var dec decoder
	buf := make([]byte, 64)
	for {
		if k.stopped.Load() {
			return
		}
		// The deadline keeps the read from blocking forever and gives the
		// decoder a quiet-period signal for dangling escape prefixes. Not
		// all files support deadlines; a terminal does.
		_ = k.f.SetReadDeadline(time.Now().Add(readTimeout))
		n, err := k.f.Read(buf)
		if n > 0 {
			k.push(dec.feed(buf[:n]))
		}
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				k.push(dec.flush())
				continue
			}
			if !k.stopped.Load() {
				slog.Error("keyboard read failed", "error", err)
			}
			return
		}
	}
}

func (k *Keyboard) push(keys []Key) {
	for _, key := range keys {
		select {
		case k.keys <- key:
		default:
			slog.Warn("key queue full, dropping key", "key", key.String())
		}
	}
}
