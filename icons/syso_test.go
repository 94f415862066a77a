package icons

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSysoFromICO(t *testing.T) {
	outDir := t.TempDir()
	resetProfile(t, outDir)

	// Use a real multi-size ICO as input, as the generate step would produce.
	icoPath := filepath.Join(outDir, "icon.ico")
	icoFile, err := os.Create(icoPath)
	require.NoError(t, err)
	require.NoError(t, EncodeICO(icoFile, testArtwork(256, 256), []int{16, 32, 48}))
	require.NoError(t, icoFile.Close())

	require.NoError(t, BuildSyso(icoPath))

	info, err := os.Stat(filepath.Join(outDir, sysoFileName))
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestBuildSysoMissingICO(t *testing.T) {
	err := BuildSyso(filepath.Join(t.TempDir(), "missing.ico"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
