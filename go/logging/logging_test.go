package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		opts    *Opts
		wantErr bool
	}{
		{"json format", &Opts{Level: "info", Format: "json"}, false},
		{"text format", &Opts{Level: "debug", Format: "text"}, false},
		{"raw format", &Opts{Level: "warn", Format: "raw"}, false},
		{"pretty format", &Opts{Level: "error", Format: "pretty"}, false},
		{"auto format", &Opts{Level: "info", Format: "auto"}, false},
		{"empty format resolves", &Opts{Level: "info"}, false},
		{"unknown format", &Opts{Level: "info", Format: "yaml"}, true},
		{"valid field", &Opts{Level: "info", Format: "json", Fields: []string{"app:assetgen"}}, false},
		{"invalid field", &Opts{Level: "info", Format: "json", Fields: []string{"app=assetgen"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)
		})
	}
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel("debug"))
	require.Equal(t, slog.LevelWarn, parseLevel("warn"))
	require.Equal(t, slog.LevelError, parseLevel("error"))
	require.Equal(t, slog.LevelInfo, parseLevel("info"))
	require.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestRawHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewRawHandler(&buf, nil))
	logger.With("tool", "generate-icons").WithGroup("output").Info("saved", "name", "icon.png")
	require.Equal(t, "saved tool=generate-icons output.name=icon.png\n", buf.String())
}

func TestRawHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewRawHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	logger.Info("dropped")
	logger.Warn("kept")
	require.Equal(t, "kept\n", buf.String())
}

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewContextHandler(NewRawHandler(&buf, nil)))

	ctx := ContextWithFields(context.Background(), "item", "preview_01_home.png")
	logger.InfoContext(ctx, "composing")
	require.Equal(t, "composing item=preview_01_home.png\n", buf.String())

	buf.Reset()
	nested := ContextWithFields(ctx, "model", "gemini-2.5-flash-image")
	logger.InfoContext(nested, "generating")
	require.Equal(t, "generating item=preview_01_home.png model=gemini-2.5-flash-image\n", buf.String())

	// The original context is unchanged by nested field sets.
	buf.Reset()
	logger.InfoContext(ctx, "composing")
	require.Equal(t, "composing item=preview_01_home.png\n", buf.String())
}
