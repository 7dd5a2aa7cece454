// Package fonts locates display faces for rendering marketing copy. System
// fonts with CJK coverage are preferred; when none is usable the package
// degrades to bundled Latin-only faces rather than failing the run.
package fonts

import (
	"context"
	"log/slog"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultCandidates lists fonts with CJK coverage, tried in order. macOS
// system fonts first, then common Linux installs.
var DefaultCandidates = []string{
	"/System/Library/Fonts/STHeiti Light.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/System/Library/Fonts/Helvetica.ttc",
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// Face is a sized display face plus where it came from. Degraded marks a
// fallback face without CJK coverage: runs continue, but non-Latin copy will
// not render.
type Face struct {
	font.Face
	Path     string
	Degraded bool
}

// Load returns a face at the given point size from the first parseable
// candidate, or DefaultCandidates when none are given. Unreadable and
// unparseable files are skipped. When no candidate is usable it falls back to
// the bundled Go Regular face and logs a warning.
func Load(ctx context.Context, size float64, candidates ...string) Face {
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}
	for _, path := range candidates {
		bytes, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		parsed, err := truetype.Parse(bytes)
		if err != nil {
			slog.DebugContext(ctx, "skipping unparseable font", "path", path, "error", err)
			continue
		}
		return Face{Face: newFace(parsed, size), Path: path}
	}

	slog.WarnContext(ctx, "no usable display font, text without Latin equivalents will not render",
		"candidates", candidates,
		"size", size,
	)
	parsed, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return Face{Face: basicfont.Face7x13, Degraded: true}
	}
	return Face{Face: newFace(parsed, size), Degraded: true}
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
