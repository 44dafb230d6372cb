// Package render draws monochrome frames for the 250x122 landscape panel.
// Every screen recomputes a full frame per draw; the display package owns
// rotation and the hardware buffer format.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Panel dimensions in landscape orientation.
const (
	Width  = 250
	Height = 122
)

// Frame is one full-screen monochrome bitmap plus its palette. With dark mode
// off the background is 255 and ink 0; dark mode inverts the pair.
type Frame struct {
	Img *image.Gray

	fg uint8
	bg uint8
}

// New returns a frame filled with the background color for the given mode.
func New(dark bool) *Frame {
	f := &Frame{
		Img: image.NewGray(image.Rect(0, 0, Width, Height)),
		fg:  0,
		bg:  255,
	}
	if dark {
		f.fg, f.bg = 255, 0
	}
	draw.Draw(f.Img, f.Img.Bounds(), &image.Uniform{color.Gray{Y: f.bg}}, image.Point{}, draw.Src)
	return f
}

// FG returns the ink value.
func (f *Frame) FG() uint8 { return f.fg }

// BG returns the background value.
func (f *Frame) BG() uint8 { return f.bg }

// Text draws s with its baseline at (x, y).
func (f *Frame) Text(x, y int, s string, face font.Face) {
	f.text(x, y, s, face, f.fg)
}

// TextInverted draws s in the background color, for use on filled regions.
func (f *Frame) TextInverted(x, y int, s string, face font.Face) {
	f.text(x, y, s, face, f.bg)
}

func (f *Frame) text(x, y int, s string, face font.Face, ink uint8) {
	d := font.Drawer{
		Dst:  f.Img,
		Src:  image.NewUniform(color.Gray{Y: ink}),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// TextCentered draws s horizontally centered with its baseline at y.
func (f *Frame) TextCentered(y int, s string, face font.Face) {
	w := TextWidth(face, s)
	f.Text((Width-w)/2, y, s, face)
}

// TextWidth returns the advance width of s in pixels.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func (f *Frame) set(x, y int, v uint8) {
	if image.Pt(x, y).In(f.Img.Rect) {
		f.Img.SetGray(x, y, color.Gray{Y: v})
	}
}

// Line draws a line from (x0, y0) to (x1, y1).
func (f *Frame) Line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		f.set(x0, y0, f.fg)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Rect draws a rectangle outline. Thickness grows inward.
func (f *Frame) Rect(x0, y0, x1, y1, thickness int) {
	for t := 0; t < thickness; t++ {
		f.Line(x0+t, y0+t, x1-t, y0+t)
		f.Line(x0+t, y1-t, x1-t, y1-t)
		f.Line(x0+t, y0+t, x0+t, y1-t)
		f.Line(x1-t, y0+t, x1-t, y1-t)
	}
}

// FillRect fills a rectangle with the ink color.
func (f *Frame) FillRect(x0, y0, x1, y1 int) {
	f.fillRect(x0, y0, x1, y1, f.fg)
}

// ClearRect fills a rectangle with the background color.
func (f *Frame) ClearRect(x0, y0, x1, y1 int) {
	f.fillRect(x0, y0, x1, y1, f.bg)
}

func (f *Frame) fillRect(x0, y0, x1, y1 int, v uint8) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			f.set(x, y, v)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
