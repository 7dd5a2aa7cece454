package imaging

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

// horizontalBands returns a 300x100 image: green, red, blue thirds.
func horizontalBands() *image.NRGBA {
	canvas := NewCanvas(300, 100, red)
	canvas = OverlayAt(canvas, NewCanvas(100, 100, green), 0, 0)
	return OverlayAt(canvas, NewCanvas(100, 100, blue), 200, 0)
}

// verticalBands returns a 100x300 image: green, red, blue thirds.
func verticalBands() *image.NRGBA {
	canvas := NewCanvas(100, 300, red)
	canvas = OverlayAt(canvas, NewCanvas(100, 100, green), 0, 0)
	return OverlayAt(canvas, NewCanvas(100, 100, blue), 0, 200)
}

func TestResize(t *testing.T) {
	img := NewCanvas(50, 80, red)
	resized := Resize(img, 120, 30)
	require.Equal(t, 120, resized.Bounds().Dx())
	require.Equal(t, 30, resized.Bounds().Dy())
	require.Equal(t, red, resized.NRGBAAt(60, 15))
}

func TestFitToSizeDimensions(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
	}{
		{"already exact", 1290, 2796},
		{"wider", 1344, 2772},
		{"taller", 1024, 4096},
		{"square", 500, 500},
		{"landscape", 2796, 1290},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitToSize(NewCanvas(tt.srcW, tt.srcH, red), 1290, 2796)
			require.Equal(t, 1290, got.Bounds().Dx())
			require.Equal(t, 2796, got.Bounds().Dy())
		})
	}
}

func TestFitToSizeCropsCenter(t *testing.T) {
	t.Run("wider source keeps middle columns", func(t *testing.T) {
		got := FitToSize(horizontalBands(), 100, 100)
		require.Equal(t, red, got.NRGBAAt(0, 50))
		require.Equal(t, red, got.NRGBAAt(50, 50))
		require.Equal(t, red, got.NRGBAAt(99, 50))
	})
	t.Run("taller source keeps middle rows", func(t *testing.T) {
		got := FitToSize(verticalBands(), 100, 100)
		require.Equal(t, red, got.NRGBAAt(50, 0))
		require.Equal(t, red, got.NRGBAAt(50, 50))
		require.Equal(t, red, got.NRGBAAt(50, 99))
	})
}

func TestPadSquare(t *testing.T) {
	source := NewCanvas(50, 50, red)

	t.Run("no padding fills edge to edge", func(t *testing.T) {
		got := PadSquare(source, 100, 0)
		require.Equal(t, 100, got.Bounds().Dx())
		require.Equal(t, 100, got.Bounds().Dy())
		require.Equal(t, red, got.NRGBAAt(0, 0))
		require.Equal(t, red, got.NRGBAAt(99, 99))
	})

	t.Run("padding leaves a transparent band", func(t *testing.T) {
		got := PadSquare(source, 100, 0.2)
		require.Equal(t, 100, got.Bounds().Dx())
		require.Equal(t, 100, got.Bounds().Dy())
		// inner square is 60px starting at offset 20
		require.Equal(t, uint8(0), got.NRGBAAt(10, 10).A)
		require.Equal(t, uint8(0), got.NRGBAAt(19, 50).A)
		require.Equal(t, uint8(0), got.NRGBAAt(50, 19).A)
		require.Equal(t, uint8(0), got.NRGBAAt(99, 99).A)
		require.Equal(t, red, got.NRGBAAt(20, 20))
		require.Equal(t, red, got.NRGBAAt(50, 50))
		require.Equal(t, red, got.NRGBAAt(79, 79))
		require.Equal(t, uint8(0), got.NRGBAAt(80, 80).A)
	})
}

func TestFlatten(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	transparent := NewCanvas(10, 10, color.NRGBA{})
	got := Flatten(transparent, white)
	require.Equal(t, white, got.NRGBAAt(5, 5))

	opaque := NewCanvas(10, 10, blue)
	got = Flatten(opaque, white)
	require.Equal(t, blue, got.NRGBAAt(5, 5))

	half := NewCanvas(10, 10, color.NRGBA{B: 255, A: 128})
	got = Flatten(half, white)
	require.Equal(t, uint8(255), got.NRGBAAt(5, 5).A)
	require.Equal(t, uint8(255), got.NRGBAAt(5, 5).B)
	require.InDelta(t, 127, got.NRGBAAt(5, 5).R, 2)
}

func TestRoundCorners(t *testing.T) {
	got := RoundCorners(NewCanvas(100, 100, red), 30)

	alphaAt := func(x, y int) uint32 {
		_, _, _, a := got.At(x, y).RGBA()
		return a
	}

	require.Equal(t, 100, got.Bounds().Dx())
	require.Equal(t, 100, got.Bounds().Dy())
	// corners clipped
	require.Zero(t, alphaAt(0, 0))
	require.Zero(t, alphaAt(99, 0))
	require.Zero(t, alphaAt(0, 99))
	require.Zero(t, alphaAt(99, 99))
	require.Zero(t, alphaAt(2, 2))
	// edge midpoints and center kept
	require.Equal(t, uint32(0xffff), alphaAt(50, 50))
	require.Equal(t, uint32(0xffff), alphaAt(50, 2))
	require.Equal(t, uint32(0xffff), alphaAt(2, 50))
}

func TestRoundCornersZeroRadius(t *testing.T) {
	src := NewCanvas(10, 10, red)
	require.Equal(t, image.Image(src), RoundCorners(src, 0))
}

func TestSavePNGAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, SavePNG(NewCanvas(32, 16, green), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])

	img, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 32, img.Bounds().Dx())
	require.Equal(t, 16, img.Bounds().Dy())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.png"))
	require.Error(t, err)
}
