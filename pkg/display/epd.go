package display

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"reflect"
	"time"
	"unsafe"

	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/devices/v3/waveshare2in13v4"
	"periph.io/x/host/v3"
)

// Ghosting accumulates under partial refresh, so a full refresh is forced
// after this many consecutive partials or after fullInterval.
const (
	maxPartials  = 6
	fullInterval = 24 * time.Hour
)

// EPD drives the Waveshare 2.13" V4 HAT over SPI.
type EPD struct {
	dev      *waveshare2in13v4.Dev
	port     spi.PortCloser
	sleeping bool
	stats    Stats
}

// OpenEPD initializes the periph host, opens the default SPI port and brings
// the panel up cleared.
func OpenEPD() (*EPD, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	port, err := spireg.Open("")
	if err != nil {
		return nil, fmt.Errorf("spi open: %w", err)
	}
	opts := waveshare2in13v4.EPD2in13v4
	dev, err := waveshare2in13v4.NewHat(port, &opts)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("e-paper hat: %w", err)
	}
	if err := dev.Init(); err != nil {
		port.Close()
		return nil, fmt.Errorf("e-paper init: %w", err)
	}
	if err := dev.Clear(color.White); err != nil {
		port.Close()
		return nil, fmt.Errorf("e-paper clear: %w", err)
	}
	return &EPD{dev: dev, port: port, stats: Stats{LastFull: time.Now()}}, nil
}

// Show rotates the landscape frame into the panel buffer and refreshes.
func (e *EPD) Show(img *image.Gray, partial bool) error {
	if e.sleeping {
		if err := e.dev.Init(); err != nil {
			return fmt.Errorf("e-paper wake: %w", err)
		}
		e.sleeping = false
		// Waking loses the panel's previous-frame memory.
		partial = false
	}

	full := !partial ||
		e.stats.PartialsSinceFull >= maxPartials ||
		time.Since(e.stats.LastFull) >= fullInterval
	if err := setMode(e.dev, !full); err != nil {
		slog.Debug("display mode switch unavailable", "error", err)
		full = true
	}

	portrait := Portrait(img)
	buf := image1bit.NewVerticalLSB(e.dev.Bounds())
	draw.Draw(buf, buf.Bounds(), portrait, image.Point{}, draw.Src)
	if err := e.dev.Draw(e.dev.Bounds(), buf, image.Point{}); err != nil {
		return fmt.Errorf("e-paper draw: %w", err)
	}

	e.stats.Draws++
	if full {
		e.stats.PartialsSinceFull = 0
		e.stats.LastFull = time.Now()
	} else {
		e.stats.Partials++
		e.stats.PartialsSinceFull++
	}
	return nil
}

// Clear blanks the panel to white.
func (e *EPD) Clear() error {
	if e.sleeping {
		if err := e.dev.Init(); err != nil {
			return fmt.Errorf("e-paper wake: %w", err)
		}
		e.sleeping = false
	}
	return e.dev.Clear(color.White)
}

// Sleep puts the panel into deep sleep.
func (e *EPD) Sleep() error {
	if e.sleeping {
		return nil
	}
	if err := e.dev.Sleep(); err != nil {
		return fmt.Errorf("e-paper sleep: %w", err)
	}
	e.sleeping = true
	return nil
}

// Close halts the panel and releases the SPI port.
func (e *EPD) Close() error {
	if err := e.dev.Halt(); err != nil {
		slog.Warn("e-paper halt failed", "error", err)
	}
	return e.port.Close()
}

// Stats returns the draw counters.
func (e *EPD) Stats() Stats {
	return e.stats
}

// setMode flips the driver between full and partial refresh. The field is
// unexported in waveshare2in13v4, so this reaches in the same way the
// refresh mode has to be toggled on this driver generation.
func setMode(dev *waveshare2in13v4.Dev, partial bool) error {
	v := reflect.ValueOf(dev).Elem().FieldByName("mode")
	if !v.IsValid() || !v.CanAddr() {
		return errors.New("display mode field unavailable")
	}
	ptr := reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
	if partial {
		ptr.Set(reflect.ValueOf(waveshare2in13v4.Partial))
	} else {
		ptr.Set(reflect.ValueOf(waveshare2in13v4.Full))
	}
	return nil
}
