// Command generate-previews-ai renders App Store preview images with Gemini.
// Each raw screenshot is sent to an image generation model along with the
// marketing copy and a creative direction; the result is normalized to the
// exact canvas size. For deterministic composition use generate-previews.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/attainapp/assetgen/go/appstore"
	"github.com/attainapp/assetgen/go/flags"
	"github.com/attainapp/assetgen/go/gemini"
	"github.com/attainapp/assetgen/go/logging"
	"github.com/attainapp/assetgen/go/report"
)

var opts struct {
	Logging *logging.Opts `group:"Logging" namespace:"logging" env-namespace:"LOGGING"`
	Gemini  *gemini.Opts  `group:"Gemini" namespace:"gemini" env-namespace:"GEMINI"`

	ScreenshotsDir string `long:"screenshots-dir" description:"Directory holding the raw screenshots" default:"screenshots"`
	OutputDir      string `long:"output-dir" description:"Directory to write the previews into" default:"previews-ai"`
	PreviewsFile   string `long:"previews-file" description:"YAML catalog overriding the built-in preview set"`
}

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		slog.ErrorContext(ctx, "running", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := flags.Parse(&opts); err != nil {
		return err
	}
	if err := logging.Init(opts.Logging); err != nil {
		return err
	}

	previews := appstore.DefaultPreviews()
	if opts.PreviewsFile != "" {
		var err error
		previews, err = appstore.LoadPreviews(opts.PreviewsFile)
		if err != nil {
			return fmt.Errorf("loading preview catalog: %w", err)
		}
	}

	client, err := gemini.NewClient(ctx, opts.Gemini)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.ScreenshotsDir, 0755); err != nil {
		return fmt.Errorf("creating screenshots directory: %w", err)
	}
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if !appstore.AnyInputExists(opts.ScreenshotsDir, previews) {
		return fmt.Errorf("no screenshots found in %s, expected:\n%s", opts.ScreenshotsDir, appstore.ExpectedInputs(previews))
	}

	model, err := client.PickModel(ctx)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "using model", "model", model)

	brand := appstore.DefaultBrand()

	tally := report.New()
	for _, preview := range previews {
		itemCtx := logging.ContextWithFields(ctx, "preview", preview.Output)
		input := filepath.Join(opts.ScreenshotsDir, preview.Input)
		if _, err := os.Stat(input); err != nil {
			slog.WarnContext(itemCtx, "screenshot not found, skipping", "path", input)
			tally.Skip(preview.Output, "screenshot not found")
			continue
		}
		slog.InfoContext(itemCtx, "generating preview", "title", preview.Title)
		if err := generatePreview(itemCtx, client, model, input, preview, brand); err != nil {
			slog.ErrorContext(itemCtx, "generating preview", "error", err)
			tally.Failure(preview.Output, err)
			continue
		}
		path := filepath.Join(opts.OutputDir, preview.Output)
		tally.Success(preview.Output, fmt.Sprintf("%dx%d, %s", appstore.CanvasWidth, appstore.CanvasHeight, report.FileSize(path)))
	}

	fmt.Println(tally.Table())
	if err := tally.RunError(); err != nil {
		slog.WarnContext(ctx, "image generation produced nothing, consider the deterministic generate-previews tool")
		return err
	}
	if tally.Failed() > 0 || tally.Skipped() > 0 {
		slog.WarnContext(ctx, "completed with issues",
			"succeeded", tally.Succeeded(), "failed", tally.Failed(), "skipped", tally.Skipped())
		return nil
	}
	slog.InfoContext(ctx, "generated previews", "count", tally.Succeeded(), "directory", opts.OutputDir)
	return nil
}
