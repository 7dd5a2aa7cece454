package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/attainapp/assetgen/go/appstore"
	"github.com/attainapp/assetgen/go/fonts"
	"github.com/attainapp/assetgen/go/imaging"
)

// createPreview renders one framed preview from a raw screenshot.
func createPreview(ctx context.Context, input string, preview appstore.Preview, brand appstore.Brand, layout appstore.Layout) error {
	screenshot, err := imaging.Load(input)
	if err != nil {
		return fmt.Errorf("loading screenshot: %w", err)
	}
	composed := composePreview(ctx, screenshot, preview, brand, layout)
	if err := imaging.SavePNG(composed, filepath.Join(opts.OutputDir, preview.Output)); err != nil {
		return fmt.Errorf("saving preview: %w", err)
	}
	return nil
}

// composePreview centers the screenshot on a brand-colored canvas with
// rounded corners and draws the marketing copy above it. Transparent
// screenshot regions are flattened onto white first so they read as app
// chrome rather than brand background.
func composePreview(ctx context.Context, screenshot image.Image, preview appstore.Preview, brand appstore.Brand, layout appstore.Layout) *image.NRGBA {
	canvas := imaging.NewCanvas(appstore.CanvasWidth, appstore.CanvasHeight, brand.Background)

	flattened := imaging.Flatten(screenshot, color.White)
	placement := layout.PlaceScreenshot(appstore.CanvasWidth, appstore.CanvasHeight,
		flattened.Bounds().Dx(), flattened.Bounds().Dy())
	resized := imaging.Resize(flattened, placement.Width, placement.Height)
	rounded := imaging.RoundCorners(resized, layout.CornerRadius)
	canvas = imaging.OverlayAt(canvas, rounded, placement.X, placement.Y)

	titleFace := fonts.Load(ctx, layout.TitleFontSize)
	subtitleFace := fonts.Load(ctx, layout.SubtitleFontSize)
	drawTextCentered(canvas, preview.Title, titleFace, brand.Text,
		int(float64(appstore.CanvasHeight)*layout.TitleTopRatio))
	drawTextCentered(canvas, preview.Subtitle, subtitleFace, brand.Text,
		int(float64(appstore.CanvasHeight)*layout.SubtitleTopRatio))
	return canvas
}

// drawTextCentered draws s horizontally centered with its top edge at y.
func drawTextCentered(dst *image.NRGBA, s string, face font.Face, c color.Color, y int) {
	if s == "" {
		return
	}
	width := font.MeasureString(face, s).Ceil()
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P((dst.Bounds().Dx()-width)/2, y+face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(s)
}
