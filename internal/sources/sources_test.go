package sources_test

import (
	"os"
	"path/filepath"
	"testing"

	"tiffview/internal/config"
	"tiffview/internal/errors"
	"tiffview/internal/sources"
	"tiffview/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	files := make(map[string]string, len(names))
	for _, n := range names {
		files[n] = "x"
	}
	testutils.CreateTestFilesWithContent(t, dir, files)
}

func TestExpand(t *testing.T) {
	patterns := config.New().Sources.Patterns

	dir := t.TempDir()
	touch(t, dir, "c.tif", "a.TIFF", "b.tiff", "notes.txt", "d.tif.zst", "e.png")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.tif"), 0755))

	single := filepath.Join(t.TempDir(), "single.dat")
	touch(t, filepath.Dir(single), "single.dat")
	missing := filepath.Join(t.TempDir(), "missing.tif")

	got, err := sources.Expand([]string{single, dir, missing}, patterns)
	require.NoError(t, err)

	assert.Equal(t, []string{
		single,
		filepath.Join(dir, "a.TIFF"),
		filepath.Join(dir, "b.tiff"),
		filepath.Join(dir, "c.tif"),
		filepath.Join(dir, "d.tif.zst"),
		missing,
	}, got)
}

func TestExpandKeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "z.tif", "a.tif")
	z, a := filepath.Join(dir, "z.tif"), filepath.Join(dir, "a.tif")

	got, err := sources.Expand([]string{z, a, z}, []string{"*.tif"})
	require.NoError(t, err)
	assert.Equal(t, []string{z, a, z}, got)
}

func TestExpandEmptyDirectory(t *testing.T) {
	got, err := sources.Expand([]string{t.TempDir()}, []string{"*.tif"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExpandSkipsUnreadableDirectory(t *testing.T) {
	out := testutils.CaptureLog(t)

	locked, open := t.TempDir(), t.TempDir()
	touch(t, locked, "hidden.tif")
	touch(t, open, "b.tif")
	single := filepath.Join(t.TempDir(), "a.tif")
	touch(t, filepath.Dir(single), "a.tif")

	e, err := sources.NewExpander([]string{"*.tif"})
	require.NoError(t, err)
	e.ReadDir = func(name string) ([]os.DirEntry, error) {
		if name == locked {
			return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
		}
		return os.ReadDir(name)
	}

	got := e.Expand([]string{single, locked, open})
	assert.Equal(t, []string{single, filepath.Join(open, "b.tif")}, got)

	assert.Equal(t, 1, testutils.CountLevel(out.String(), "ERROR"), out.String())
	assert.Contains(t, out.String(), "could not read directory")
	assert.Contains(t, out.String(), locked)
}

func TestExpandInvalidPattern(t *testing.T) {
	_, err := sources.Expand([]string{"x.tif"}, []string{"*.[tif"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestMatcher(t *testing.T) {
	m, err := sources.NewMatcher([]string{"scan_*.tif", "*.tiff"})
	require.NoError(t, err)

	assert.True(t, m.Match("scan_001.tif"))
	assert.True(t, m.Match("other.tiff"))
	assert.False(t, m.Match("other.tif"))
	assert.False(t, m.Match("scan_001.tif.bak"))
}
