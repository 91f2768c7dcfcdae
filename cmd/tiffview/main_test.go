package main

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"tiffview/internal/catalog"
	"tiffview/internal/config"
	"tiffview/internal/contrast"
	"tiffview/internal/errors"
	"tiffview/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	noConfig := filepath.Join(t.TempDir(), "none.yaml")
	code := run(append([]string{"--config", noConfig}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestNoArgumentsPrintsUsage(t *testing.T) {
	code, stdout, _ := execute(t)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "tiffview [flags] <file|dir>...")
}

func TestInvalidBackendFlag(t *testing.T) {
	path := testutils.WriteTIFF(t, t.TempDir(), "a.tif", testutils.Checker(0, 65535))

	code, _, stderr := execute(t, "--backend", "vulkan", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "display.backend")
	assert.NotContains(t, stderr, "unknown command")
}

func TestRootAcceptsFileArguments(t *testing.T) {
	dir := t.TempDir()
	a := testutils.WriteTIFF(t, dir, "a.tif", testutils.Checker(0, 65535))
	b := testutils.WriteTIFF(t, dir, "b.tif", testutils.Checker(100, 200))

	cmd := (&app{}).rootCmd()
	sub, rest, err := cmd.Find([]string{a, b})
	require.NoError(t, err)
	assert.Same(t, cmd, sub)
	assert.Equal(t, []string{a, b}, rest)
	assert.NoError(t, cmd.ValidateArgs(rest))
}

func TestFallbackBackend(t *testing.T) {
	assert.Equal(t, config.BackendGL, fallbackBackend(config.BackendGL, true))
	assert.Equal(t, config.BackendSoft, fallbackBackend(config.BackendGL, false))
	assert.Equal(t, config.BackendSoft, fallbackBackend(config.BackendSoft, true))
	assert.Equal(t, config.BackendSoft, fallbackBackend(config.BackendSoft, false))
}

func TestInvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [\n"), 0644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", path, "inspect", "x.tif"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "error parsing config file")
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteTIFF(t, dir, "a.tif", testutils.Gray16(3, 2, func(x, y int) uint16 { return uint16(100 + 160*(3*y+x)) }))
	testutils.WriteTIFF(t, dir, "b.tif", image.NewGray(image.Rect(0, 0, 2, 2)))

	code, stdout, stderr := execute(t, "inspect", dir)
	assert.Equal(t, 0, code, stderr)
	stdout = testutils.StripANSI(stdout)

	assert.Contains(t, stdout, "a.tif")
	assert.Contains(t, stdout, "3x2")
	assert.Contains(t, stdout, "100 / 900")
	assert.Contains(t, stdout, "ENCODING")
	assert.Contains(t, stdout, "none/BlackIsZero")
	assert.Contains(t, stdout, "unsupported_format")
	assert.Contains(t, stdout, "1 of 2 images loaded")

	assert.Equal(t, 1, testutils.CountLevel(stderr, "ERROR"), stderr)
	assert.Contains(t, stderr, "BitsPerSample: 8")
}

func TestInspectNothingLoads(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.tif")

	code, stdout, stderr := execute(t, "inspect", missing)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "0 of 1 images loaded")
	assert.Contains(t, stderr, "No valid TIFF images were loaded")
	assert.Contains(t, stderr, "file_not_found")
}

func TestInspectJSONLogs(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.tif")

	code, _, stderr := execute(t, "--log-json", "inspect", missing)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `"level":"error"`)
	assert.Contains(t, stderr, `"path":"`+missing+`"`)
}

func TestRenderSummary(t *testing.T) {
	out := testutils.StripANSI(renderSummary([]catalog.Result{
		{
			Path:   "scan.tif",
			Width:  640,
			Height: 480,
			Raw:    contrast.Range{Min: 12, Max: 4000},
			Bounds: contrast.Normalize(contrast.Range{Min: 12, Max: 4000}),
		},
		{Path: "broken.tif", Err: errors.NewFileError("error reading image data", "broken.tif", errors.CorruptData, nil)},
	}, nil))

	assert.NotContains(t, out, "ENCODING")
	assert.Contains(t, out, "640x480")
	assert.Contains(t, out, "12 / 4000")
	assert.Contains(t, out, "0.0002 - 0.0610")
	assert.Contains(t, out, "corrupt_data")
	assert.Contains(t, out, "1 of 2 images loaded")
}
