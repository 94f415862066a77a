package icons

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetProfile loads the built-in defaults and points output at dir.
func resetProfile(t *testing.T, dir string) {
	t.Helper()

	require.NoError(t, ReadProfile(filepath.Join(dir, "no-such-profile.yaml"), true))
	SetOutputDirectory(dir)
}

func TestGenerateProducesSizedAssets(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	resetProfile(t, outDir)

	srcPath := writeTestPNG(t, srcDir, "artwork.png", testArtwork(512, 512))
	require.NoError(t, Generate(srcPath))

	// Each standalone PNG decodes to exactly the requested dimensions.
	for _, target := range defaultPNGTargets {
		img, err := imaging.Open(filepath.Join(outDir, target.Name))
		require.NoError(t, err, target.Name)
		assert.Equal(t, target.Pixels, img.Bounds().Dx(), target.Name)
		assert.Equal(t, target.Pixels, img.Bounds().Dy(), target.Name)
	}

	// The ICO carries one entry per configured size.
	icoData, err := os.ReadFile(filepath.Join(outDir, "icon.ico"))
	require.NoError(t, err)
	dir, _ := parseICO(t, icoData)
	assert.Equal(t, uint16(len(defaultICOSizes)), dir.Count)

	// The ICNS exists and the intermediate iconset directory is gone.
	icnsInfo, err := os.Stat(filepath.Join(outDir, "icon.icns"))
	require.NoError(t, err)
	assert.NotZero(t, icnsInfo.Size())
	assert.NoDirExists(t, filepath.Join(outDir, "icon.iconset"))

	// The normalized source was placed alongside the generated assets.
	assert.FileExists(t, filepath.Join(outDir, "icon.png"))
}

func TestGenerateMissingSource(t *testing.T) {
	outDir := t.TempDir()
	resetProfile(t, outDir)

	err := Generate(filepath.Join(outDir, "nope.png"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGenerateHonorsProfileSizes(t *testing.T) {
	outDir := t.TempDir()
	resetProfile(t, outDir)
	profileInfo.PNGTargets = []pngTarget{{Name: "tray.png", Pixels: 24}}
	profileInfo.ICOSizes = []int{16, 24}

	srcPath := writeTestPNG(t, outDir, "icon.png", testArtwork(256, 256))
	require.NoError(t, Generate(srcPath))

	img, err := imaging.Open(filepath.Join(outDir, "tray.png"))
	require.NoError(t, err)
	assert.Equal(t, 24, img.Bounds().Dx())

	icoData, err := os.ReadFile(filepath.Join(outDir, "icon.ico"))
	require.NoError(t, err)
	dir, _ := parseICO(t, icoData)
	assert.Equal(t, uint16(2), dir.Count)
}
