package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/attainapp/assetgen/go/flags"
	"github.com/attainapp/assetgen/go/imaging"
	"github.com/attainapp/assetgen/go/logging"
	"github.com/attainapp/assetgen/go/report"
)

var opts struct {
	Logging *logging.Opts `group:"Logging" namespace:"logging" env-namespace:"LOGGING"`

	OutputDir string `long:"output-dir" description:"Directory to write the icons into" default:"assets"`

	Args struct {
		Source string `positional-arg-name:"SOURCE" description:"Path to the source logo image"`
	} `positional-args:"yes" required:"yes"`
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

	source, err := expandUser(opts.Args.Source)
	if err != nil {
		return err
	}
	logo, err := imaging.Load(source)
	if err != nil {
		return fmt.Errorf("loading source logo: %w", err)
	}
	slog.InfoContext(ctx, "loaded source logo",
		"path", source,
		"dimensions", fmt.Sprintf("%dx%d", logo.Bounds().Dx(), logo.Bounds().Dy()),
		"size", report.FileSize(source),
	)

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tally := report.New()
	for _, output := range iconOutputs {
		itemCtx := logging.ContextWithFields(ctx, "icon", output.Name)
		if err := generateIcon(itemCtx, logo, output); err != nil {
			slog.ErrorContext(itemCtx, "generating icon", "error", err)
			tally.Failure(output.Name, err)
			continue
		}
		path := filepath.Join(opts.OutputDir, output.Name)
		tally.Success(output.Name, fmt.Sprintf("%dx%d, %s", output.Size, output.Size, report.FileSize(path)))
	}

	fmt.Println(tally.Table())
	if err := tally.RunError(); err != nil {
		return err
	}
	if tally.Failed() > 0 {
		slog.WarnContext(ctx, "completed with failures", "succeeded", tally.Succeeded(), "failed", tally.Failed())
		return nil
	}
	slog.InfoContext(ctx, "generated icons", "count", tally.Succeeded(), "directory", opts.OutputDir)
	return nil
}

// expandUser resolves a leading ~ so paths like ~/Downloads/logo.png work.
func expandUser(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
