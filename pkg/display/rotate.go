package display

import "image"

// Portrait rotates a landscape 250x122 frame into the panel's native
// portrait 122x250 orientation (90 degrees clockwise).
func Portrait(src *image.Gray) *image.Gray {
	w := src.Rect.Dx() // 250
	h := src.Rect.Dy() // 122
	dst := image.NewGray(image.Rect(0, 0, h, w))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			dst.SetGray(x, y, src.GrayAt(y, h-1-x))
		}
	}
	return dst
}
