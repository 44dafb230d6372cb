package render

import (
	"log/slog"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
)

// Fonts holds the three faces used across the UI.
type Fonts struct {
	Small font.Face // 7x13, footers and dense lists
	Body  font.Face // 8x16, menu rows and content
	Title font.Face // headings; truetype when a font file is available
}

// LoadFonts builds the face set. If ttfPath parses as a TrueType font the
// title face comes from it, otherwise the bundled bold bitmap face is used.
func LoadFonts(ttfPath string) *Fonts {
	f := &Fonts{
		Small: basicfont.Face7x13,
		Body:  inconsolata.Regular8x16,
		Title: inconsolata.Bold8x16,
	}
	if ttfPath == "" {
		return f
	}
	data, err := os.ReadFile(ttfPath)
	if err != nil {
		slog.Info("truetype font unavailable, using bitmap faces", "path", ttfPath, "error", err)
		return f
	}
	tt, err := truetype.Parse(data)
	if err != nil {
		slog.Warn("truetype font parse failed, using bitmap faces", "path", ttfPath, "error", err)
		return f
	}
	f.Title = truetype.NewFace(tt, &truetype.Options{Size: 16})
	return f
}
