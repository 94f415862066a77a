package icons

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "iconforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadProfileDefaults(t *testing.T) {
	require.NoError(t, ReadProfile(filepath.Join(t.TempDir(), "iconforge.yaml"), true))

	assert.Equal(t, "iconforge", GetAppName())
	assert.Equal(t, "icon.png", GetSourcePath())
	assert.Equal(t, ".", GetOutputDirectory())
	assert.Equal(t, defaultPNGTargets, GetPNGTargets())
	assert.Equal(t, defaultICOSizes, GetICOSizes())
	assert.Equal(t, defaultIconutilTimeoutSeconds, GetIconutilTimeoutSeconds())
}

func TestReadProfileMissingExplicit(t *testing.T) {
	err := ReadProfile(filepath.Join(t.TempDir(), "iconforge.yaml"), false)
	assert.Error(t, err)
}

func TestReadProfileOverrides(t *testing.T) {
	path := writeProfile(t, `
app_name: myapp
source_file: logo.png
source_directory: artwork
output_directory: assets/icons
iconutil_timeout_seconds: 10
png_sizes:
  - name: 64x64.png
    pixels: 64
ico_sizes: [16, 32]
`)
	require.NoError(t, ReadProfile(path, false))

	assert.Equal(t, "myapp", GetAppName())
	assert.Equal(t, filepath.Join("artwork", "logo.png"), GetSourcePath())
	assert.Equal(t, "assets/icons", GetOutputDirectory())
	assert.Equal(t, []pngTarget{{Name: "64x64.png", Pixels: 64}}, GetPNGTargets())
	assert.Equal(t, []int{16, 32}, GetICOSizes())
	assert.Equal(t, 10, GetIconutilTimeoutSeconds())
}

func TestReadProfileInvalidYAML(t *testing.T) {
	path := writeProfile(t, "png_sizes: [not, a, size, list")
	assert.Error(t, ReadProfile(path, false))
}

func TestValidateProfileRejectsBadValues(t *testing.T) {
	for name, content := range map[string]string{
		"oversized ico entry": "ico_sizes: [512]",
		"zero ico entry":      "ico_sizes: [0]",
		"unnamed png size":    "png_sizes:\n  - pixels: 32",
		"zero png pixels":     "png_sizes:\n  - name: a.png\n    pixels: 0",
		"negative timeout":    "iconutil_timeout_seconds: -1",
		"zero timeout":        "iconutil_timeout_seconds: 0",
	} {
		path := writeProfile(t, content)
		assert.Error(t, ReadProfile(path, false), name)
	}
}

func TestSetOutputDirectoryOverride(t *testing.T) {
	require.NoError(t, ReadProfile(filepath.Join(t.TempDir(), "iconforge.yaml"), true))
	SetOutputDirectory("build/icons")
	assert.Equal(t, "build/icons", GetOutputDirectory())
}
