// Package imaging provides the raster operations shared by the asset
// generation tools: exact resizing, aspect fitting, padding and flattening.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
)

// Load reads an image from disk, decoding by content.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	return img, nil
}

// Decode reads an image from r, decoding by content.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// Resize scales img to exactly width x height, distorting if the aspect
// ratios differ.
func Resize(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// FitToSize center-crops img to the target aspect ratio, then resizes to
// exactly width x height. Content is preserved along the fitting axis and
// trimmed symmetrically along the other.
func FitToSize(img image.Image, width, height int) *image.NRGBA {
	bounds := img.Bounds()
	currentWidth, currentHeight := bounds.Dx(), bounds.Dy()
	targetRatio := float64(width) / float64(height)
	currentRatio := float64(currentWidth) / float64(currentHeight)

	switch {
	case currentRatio > targetRatio:
		cropWidth := int(float64(currentHeight) * targetRatio)
		img = imaging.CropAnchor(img, cropWidth, currentHeight, imaging.Center)
	case currentRatio < targetRatio:
		cropHeight := int(float64(currentWidth) / targetRatio)
		img = imaging.CropAnchor(img, currentWidth, cropHeight, imaging.Center)
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// PadSquare scales img down to the inner square left by the padding ratio on
// each side, then composites it centered on a transparent size x size canvas.
// A padding of 0 fills the canvas edge to edge.
func PadSquare(img image.Image, size int, padding float64) *image.NRGBA {
	inner := int(float64(size) * (1 - padding*2))
	resized := imaging.Resize(img, inner, inner, imaging.Lanczos)
	canvas := imaging.New(size, size, color.Transparent)
	offset := int(float64(size) * padding)
	return imaging.Overlay(canvas, resized, image.Pt(offset, offset), 1.0)
}

// Flatten composites img over a background color, discarding transparency.
func Flatten(img image.Image, background color.Color) *image.NRGBA {
	bounds := img.Bounds()
	canvas := imaging.New(bounds.Dx(), bounds.Dy(), background)
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}

// NewCanvas returns a width x height canvas filled with the given color.
func NewCanvas(width, height int, c color.Color) *image.NRGBA {
	return imaging.New(width, height, c)
}

// OverlayAt composites img over background with its top-left corner at (x, y),
// respecting img's alpha channel.
func OverlayAt(background image.Image, img image.Image, x, y int) *image.NRGBA {
	return imaging.Overlay(background, img, image.Pt(x, y), 1.0)
}
