// Package appstore holds the Attain brand constants and the App Store preview
// geometry shared by the asset generation tools.
package appstore

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

const (
	// AppName is the marketing name used across generated assets.
	AppName = "Attain"

	// BrandColor is the primary brand color, a mint green.
	BrandColor = "#2db877"

	// TextColor is the color of marketing copy on previews.
	TextColor = "#FFFFFF"
)

// App Store preview dimensions for the 6.9" iPhone display.
const (
	CanvasWidth  = 1290
	CanvasHeight = 2796
)

// Brand is the visual identity stamped onto generated assets.
type Brand struct {
	AppName    string
	Background color.NRGBA
	Text       color.NRGBA
}

// DefaultBrand returns the Attain identity.
func DefaultBrand() Brand {
	return Brand{
		AppName:    AppName,
		Background: mustHexColor(BrandColor),
		Text:       mustHexColor(TextColor),
	}
}

func mustHexColor(hex string) color.NRGBA {
	c, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Layout describes where a screenshot and its marketing copy sit on a preview
// canvas. Ratios are relative to the canvas dimensions.
type Layout struct {
	ScreenshotWidthRatio     float64
	ScreenshotTopRatio       float64
	MaxScreenshotHeightRatio float64
	TitleTopRatio            float64
	SubtitleTopRatio         float64
	CornerRadius             float64
	TitleFontSize            float64
	SubtitleFontSize         float64
}

// DefaultLayout returns the layout used by the Attain store listing.
func DefaultLayout() Layout {
	return Layout{
		ScreenshotWidthRatio:     0.85,
		ScreenshotTopRatio:       0.28,
		MaxScreenshotHeightRatio: 0.65,
		TitleTopRatio:            0.08,
		SubtitleTopRatio:         0.16,
		CornerRadius:             40,
		TitleFontSize:            72,
		SubtitleFontSize:         42,
	}
}

// Placement is a computed screenshot position on the canvas.
type Placement struct {
	X, Y          int
	Width, Height int
}

// PlaceScreenshot computes where a srcW x srcH screenshot lands on a canvasW x
// canvasH canvas: scaled to the layout's width ratio preserving aspect, shrunk
// to the height cap if it would overflow, and centered horizontally.
func (l Layout) PlaceScreenshot(canvasW, canvasH, srcW, srcH int) Placement {
	width := int(float64(canvasW) * l.ScreenshotWidthRatio)
	aspect := float64(srcH) / float64(srcW)
	height := int(float64(width) * aspect)

	maxHeight := int(float64(canvasH) * l.MaxScreenshotHeightRatio)
	if height > maxHeight {
		height = maxHeight
		width = int(float64(height) / aspect)
	}

	return Placement{
		X:      (canvasW - width) / 2,
		Y:      int(float64(canvasH) * l.ScreenshotTopRatio),
		Width:  width,
		Height: height,
	}
}

// ParseHexColor parses a #RRGGBB color.
func ParseHexColor(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("expected 6 hex digits, got %q", hex)
	}
	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parsing r: %v", err)
	}
	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parsing g: %v", err)
	}
	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parsing b: %v", err)
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, nil
}
