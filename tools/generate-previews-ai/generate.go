package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/attainapp/assetgen/go/appstore"
	"github.com/attainapp/assetgen/go/gemini"
	"github.com/attainapp/assetgen/go/imaging"
)

// generatePreview sends one screenshot through the model and writes the
// result, normalized to the exact canvas size.
func generatePreview(ctx context.Context, client *gemini.Client, model, input string, preview appstore.Preview, brand appstore.Brand) error {
	prompt, err := buildPrompt(preview, brand)
	if err != nil {
		return err
	}
	screenshot, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading screenshot: %w", err)
	}

	data, err := client.GenerateImage(ctx, model, prompt, screenshot)
	if err != nil {
		return err
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decoding generated image: %w", err)
	}
	slog.DebugContext(ctx, "normalizing generated image",
		"from", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()),
		"to", fmt.Sprintf("%dx%d", appstore.CanvasWidth, appstore.CanvasHeight),
	)

	fitted := imaging.FitToSize(img, appstore.CanvasWidth, appstore.CanvasHeight)
	if err := imaging.SavePNG(fitted, filepath.Join(opts.OutputDir, preview.Output)); err != nil {
		return fmt.Errorf("saving preview: %w", err)
	}
	return nil
}
