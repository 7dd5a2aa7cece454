package imaging

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// EncodePNG writes img to w as PNG at maximum compression.
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
}

// SavePNG writes img to path as PNG at maximum compression.
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()
	if err := EncodePNG(file, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
