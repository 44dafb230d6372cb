package display

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// File is the fallback surface: every frame is written as a PNG to a fixed
// path for inspection. Refresh-policy bookkeeping matches the e-paper
// surface so the Display Info screen shows the same counters either way.
type File struct {
	path     string
	sleeping bool
	stats    Stats
}

// NewFile creates a file surface writing to path.
func NewFile(path string) *File {
	return &File{path: path, stats: Stats{LastFull: time.Now()}}
}

// Show writes the frame to the preview path.
func (f *File) Show(img *image.Gray, partial bool) error {
	if f.sleeping {
		f.sleeping = false
		partial = false
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("preview dir: %w", err)
	}
	out, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("preview file: %w", err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("preview encode: %w", err)
	}

	full := !partial || f.stats.PartialsSinceFull >= maxPartials
	f.stats.Draws++
	if full {
		f.stats.PartialsSinceFull = 0
		f.stats.LastFull = time.Now()
	} else {
		f.stats.Partials++
		f.stats.PartialsSinceFull++
	}
	return nil
}

// Clear removes the preview file.
func (f *File) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Sleep marks the surface asleep; the next Show counts as a full refresh.
func (f *File) Sleep() error {
	f.sleeping = true
	return nil
}

// Close is a no-op for the file surface.
func (f *File) Close() error {
	return nil
}

// Stats returns the draw counters.
func (f *File) Stats() Stats {
	return f.stats
}
