package icons

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPNG encodes img as a PNG file under dir and returns its path.
func writeTestPNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, png.Encode(file, img))
	return path
}

// testArtwork builds a small image carrying partial transparency, so the PNG
// encoder keeps the alpha channel across rewrites.
func testArtwork(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 7), G: uint8(y * 5), B: 0x40, A: uint8(128 + x),
			})
		}
	}
	return img
}

func TestNormalizeIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	// Start from a grayscale file so the first pass actually converts.
	gray := image.NewGray(image.Rect(0, 0, 24, 24))
	for i := range gray.Pix {
		gray.Pix[i] = uint8(i)
	}
	path := writeTestPNG(t, dir, "icon.png", gray)

	require.NoError(t, Normalize(path))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, Normalize(path))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second, "second pass must be byte-identical")
}

func TestNormalizeKeepsAlphaChannel(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "icon.png", testArtwork(16, 16))

	require.NoError(t, Normalize(path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	decoded, err := png.Decode(file)
	require.NoError(t, err)
	assert.IsType(t, &image.NRGBA{}, decoded)
	assert.Equal(t, 16, decoded.Bounds().Dx())
	assert.Equal(t, 16, decoded.Bounds().Dy())
}

func TestNormalizeMissingFile(t *testing.T) {
	err := Normalize(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
