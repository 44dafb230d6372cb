package display

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/AndrewRayR/e-ink/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func landscapeFrame() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 250, 122))
	for y := 0; y < 122; y++ {
		for x := 0; x < 250; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	return img
}

func TestPortrait_Geometry(t *testing.T) {
	src := landscapeFrame()
	// Mark the landscape origin and one asymmetric pixel.
	src.SetGray(0, 0, color.Gray{Y: 0})
	src.SetGray(10, 5, color.Gray{Y: 0})

	dst := Portrait(src)
	require.Equal(t, image.Rect(0, 0, 122, 250), dst.Bounds())

	// Landscape (x, y) lands at portrait (121-y, x) under the 90-degree
	// clockwise rotation.
	assert.Equal(t, uint8(0), dst.GrayAt(121, 0).Y)
	assert.Equal(t, uint8(0), dst.GrayAt(121-5, 10).Y)
	assert.Equal(t, uint8(255), dst.GrayAt(0, 0).Y)
}

func TestFileSurface_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	f := NewFile(path)

	require.NoError(t, f.Show(landscapeFrame(), false))

	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()
	img, err := png.Decode(fh)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 250, 122), img.Bounds())
}

func TestFileSurface_RefreshPolicyCounters(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "preview.png"))

	require.NoError(t, f.Show(landscapeFrame(), false))
	assert.Equal(t, 0, f.Stats().PartialsSinceFull)

	for i := 0; i < maxPartials; i++ {
		require.NoError(t, f.Show(landscapeFrame(), true))
	}
	assert.Equal(t, maxPartials, f.Stats().PartialsSinceFull)

	// The next partial is forced full, clearing the ghosting counter.
	require.NoError(t, f.Show(landscapeFrame(), true))
	assert.Equal(t, 0, f.Stats().PartialsSinceFull)
	assert.Equal(t, maxPartials+2, f.Stats().Draws)
}

func TestFileSurface_WakeForcesFull(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "preview.png"))
	require.NoError(t, f.Show(landscapeFrame(), false))
	require.NoError(t, f.Sleep())
	require.NoError(t, f.Show(landscapeFrame(), true))
	assert.Equal(t, 0, f.Stats().Partials)
}

func TestOpen_FileDriver(t *testing.T) {
	s, err := Open(config.DisplayConfig{Driver: "file", PreviewPath: filepath.Join(t.TempDir(), "p.png")})
	require.NoError(t, err)
	_, ok := s.(*File)
	assert.True(t, ok)
}
