package imaging

import (
	"image"

	"github.com/fogleman/gg"
)

// RoundCorners clips img to a rounded rectangle of the given corner radius.
// Pixels outside the rectangle become fully transparent. A radius of 0 or
// less leaves the image untouched.
func RoundCorners(img image.Image, radius float64) image.Image {
	if radius <= 0 {
		return img
	}
	bounds := img.Bounds()
	dc := gg.NewContext(bounds.Dx(), bounds.Dy())
	dc.DrawRoundedRectangle(0, 0, float64(bounds.Dx()), float64(bounds.Dy()), radius)
	dc.Clip()
	dc.DrawImage(img, 0, 0)
	return dc.Image()
}
