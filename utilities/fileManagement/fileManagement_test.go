package fileManagement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopy(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("icon bytes"), 0644))

	require.NoError(t, Copy(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("icon bytes"), data)
}

func TestCopyMissingSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := Copy(filepath.Join(dir, "missing"), filepath.Join(dir, "dst"))
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assert.True(t, Exists(dir))
	assert.False(t, Exists(filepath.Join(dir, "nothing-here")))
}

func TestCreateIfNotExistsIsIdempotent(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, CreateIfNotExists(dir, 0755))
	require.NoError(t, CreateIfNotExists(dir, 0755))
	assert.DirExists(t, dir)
}

func TestFindProgramPathMissing(t *testing.T) {
	t.Parallel()

	_, err := FindProgramPath("definitely-not-a-real-program-42")
	assert.Error(t, err)
}
