package appstore

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceScreenshot(t *testing.T) {
	layout := DefaultLayout()

	tests := []struct {
		name       string
		srcW, srcH int
		want       Placement
	}{
		// 85% of 1290 is 1096 and the top offset is 782.
		{"square", 1000, 1000, Placement{X: 97, Y: 782, Width: 1096, Height: 1096}},
		{"landscape", 2000, 1000, Placement{X: 97, Y: 782, Width: 1096, Height: 548}},
		// A modern iPhone screenshot overflows the 65% height cap (1817) and
		// shrinks to it, staying centered.
		{"iphone portrait", 1179, 2556, Placement{X: 226, Y: 782, Width: 838, Height: 1817}},
		// Exactly at the cap: the width ratio still wins.
		{"at height cap", 1024, 1698, Placement{X: 97, Y: 782, Width: 1096, Height: 1817}},
		// One source row past the cap: height pins to the cap, width gives.
		{"just over height cap", 1024, 1699, Placement{X: 97, Y: 782, Width: 1095, Height: 1817}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layout.PlaceScreenshot(CanvasWidth, CanvasHeight, tt.srcW, tt.srcH)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPlaceScreenshotBounds(t *testing.T) {
	layout := DefaultLayout()
	maxWidth := int(float64(CanvasWidth) * layout.ScreenshotWidthRatio)
	maxHeight := int(float64(CanvasHeight) * layout.MaxScreenshotHeightRatio)

	for _, src := range []struct{ w, h int }{
		{100, 100}, {3024, 1964}, {1179, 2556}, {1290, 2796}, {500, 2000}, {4000, 500},
	} {
		got := layout.PlaceScreenshot(CanvasWidth, CanvasHeight, src.w, src.h)
		require.LessOrEqual(t, got.Width, maxWidth, "source %dx%d", src.w, src.h)
		require.LessOrEqual(t, got.Height, maxHeight, "source %dx%d", src.w, src.h)
		require.Equal(t, (CanvasWidth-got.Width)/2, got.X, "source %dx%d centered", src.w, src.h)
		require.Equal(t, 782, got.Y, "source %dx%d", src.w, src.h)
	}
}

func TestDefaultBrand(t *testing.T) {
	brand := DefaultBrand()
	require.Equal(t, "Attain", brand.AppName)
	require.Equal(t, color.NRGBA{R: 45, G: 184, B: 119, A: 255}, brand.Background)
	require.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, brand.Text)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    color.NRGBA
		wantErr bool
	}{
		{"brand color", "#2db877", color.NRGBA{R: 45, G: 184, B: 119, A: 255}, false},
		{"no hash prefix", "FFFFFF", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"black", "#000000", color.NRGBA{A: 255}, false},
		{"short form rejected", "#fff", color.NRGBA{}, true},
		{"non-hex digits", "#zzzzzz", color.NRGBA{}, true},
		{"empty", "", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.hex)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
