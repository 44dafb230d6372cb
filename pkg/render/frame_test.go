package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"
)

func TestNew_Palette(t *testing.T) {
	light := New(false)
	assert.Equal(t, uint8(0), light.FG())
	assert.Equal(t, uint8(255), light.BG())
	assert.Equal(t, uint8(255), light.Img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), light.Img.GrayAt(Width-1, Height-1).Y)

	dark := New(true)
	assert.Equal(t, uint8(255), dark.FG())
	assert.Equal(t, uint8(0), dark.BG())
	assert.Equal(t, uint8(0), dark.Img.GrayAt(10, 10).Y)
}

func TestFillRect_DrawsInk(t *testing.T) {
	f := New(false)
	f.FillRect(10, 10, 20, 20)
	assert.Equal(t, uint8(0), f.Img.GrayAt(15, 15).Y)
	assert.Equal(t, uint8(255), f.Img.GrayAt(25, 15).Y)

	d := New(true)
	d.FillRect(10, 10, 20, 20)
	assert.Equal(t, uint8(255), d.Img.GrayAt(15, 15).Y)
	assert.Equal(t, uint8(0), d.Img.GrayAt(25, 15).Y)
}

func TestLine_Endpoints(t *testing.T) {
	f := New(false)
	f.Line(0, 0, 40, 0)
	assert.Equal(t, uint8(0), f.Img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), f.Img.GrayAt(40, 0).Y)
	assert.Equal(t, uint8(0), f.Img.GrayAt(20, 0).Y)
	assert.Equal(t, uint8(255), f.Img.GrayAt(20, 1).Y)
}

func TestRect_OutlineOnly(t *testing.T) {
	f := New(false)
	f.Rect(10, 10, 30, 30, 2)
	assert.Equal(t, uint8(0), f.Img.GrayAt(10, 10).Y)
	assert.Equal(t, uint8(0), f.Img.GrayAt(11, 20).Y)
	assert.Equal(t, uint8(255), f.Img.GrayAt(20, 20).Y)
}

func TestText_OutOfBoundsSafe(t *testing.T) {
	f := New(false)
	// Must not panic when text runs off the panel.
	f.Text(Width-5, Height-1, "overflowing text", basicfont.Face7x13)
	f.TextCentered(-10, "above", basicfont.Face7x13)
}

func TestTextCentered_SymmetricMargins(t *testing.T) {
	f := New(false)
	f.TextCentered(60, "HELLO", basicfont.Face7x13)

	minX, maxX := Width, 0
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if f.Img.GrayAt(x, y).Y == 0 {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
			}
		}
	}
	assert.Less(t, minX, maxX)
	assert.InDelta(t, minX, Width-1-maxX, 7, "ink should be roughly centered")
}

func TestSevenSeg_AllDigitsDrawInk(t *testing.T) {
	for d := byte('0'); d <= '9'; d++ {
		f := New(false)
		f.SevenSegTime(string(d), 10, 10)
		ink := 0
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				if f.Img.GrayAt(x, y).Y == 0 {
					ink++
				}
			}
		}
		assert.Greater(t, ink, 0, "digit %c should draw something", d)
	}
}

func TestSevenSegWidth(t *testing.T) {
	assert.Greater(t, SevenSegWidth("12:34"), SevenSegWidth("1:23"))
	assert.Equal(t, 0, SevenSegWidth(""))
}
