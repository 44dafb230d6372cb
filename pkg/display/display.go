// Package display abstracts the render surface: the Waveshare 2.13" V4
// e-paper HAT when present, or a PNG preview file when not. Frames arrive in
// landscape 250x122; this package owns rotation, the hardware buffer format
// and the partial/full refresh policy.
package display

import (
	"image"
	"log/slog"
	"time"

	"github.com/AndrewRayR/e-ink/pkg/config"
)

// Surface is the render surface contract.
type Surface interface {
	// Show displays the landscape frame. partial requests a partial
	// refresh; the surface may force a full one to clear ghosting.
	Show(img *image.Gray, partial bool) error
	// Clear blanks the panel.
	Clear() error
	// Sleep puts the panel into deep sleep; the next Show wakes it.
	Sleep() error
	// Close releases the hardware.
	Close() error
	// Stats reports draw counters for the Display Info screen.
	Stats() Stats
}

// Stats are cumulative draw counters.
type Stats struct {
	Draws             int
	Partials          int
	PartialsSinceFull int
	LastFull          time.Time
}

// Open builds the surface selected by cfg. Driver "auto" tries the e-paper
// HAT and degrades to the file surface, so the UI keeps working on a
// workstation or a Pi with the HAT unplugged.
func Open(cfg config.DisplayConfig) (Surface, error) {
	switch cfg.Driver {
	case "file":
		return NewFile(cfg.PreviewPath), nil
	case "epd":
		return OpenEPD()
	default:
		epd, err := OpenEPD()
		if err != nil {
			slog.Warn("e-paper unavailable, falling back to preview file",
				"error", err, "path", cfg.PreviewPath)
			return NewFile(cfg.PreviewPath), nil
		}
		return epd, nil
	}
}
