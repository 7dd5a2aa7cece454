package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"github.com/attainapp/assetgen/go/imaging"
)

type iconOutput struct {
	Name        string
	Size        int
	Padding     float64
	Description string
}

// The fixed icon set the app build expects, by filename.
var iconOutputs = []iconOutput{
	{Name: "icon.png", Size: 1024, Padding: 0, Description: "Main app icon (iOS & Android)"},
	{Name: "adaptive-icon.png", Size: 1024, Padding: 0.2, Description: "Android adaptive icon (with safe zone padding)"},
	{Name: "splash-icon.png", Size: 512, Padding: 0, Description: "Splash screen icon"},
	{Name: "favicon.png", Size: 48, Padding: 0, Description: "Web favicon"},
}

func generateIcon(ctx context.Context, logo image.Image, output iconOutput) error {
	slog.InfoContext(ctx, "generating",
		"description", output.Description,
		"size", output.Size,
		"padding", output.Padding,
	)
	var icon *image.NRGBA
	if output.Padding > 0 {
		icon = imaging.PadSquare(logo, output.Size, output.Padding)
	} else {
		icon = imaging.Resize(logo, output.Size, output.Size)
	}
	path := filepath.Join(opts.OutputDir, output.Name)
	if err := imaging.SavePNG(icon, path); err != nil {
		return fmt.Errorf("saving icon: %w", err)
	}
	return nil
}
