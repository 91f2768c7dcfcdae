package testutils

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tiffview/internal/log"

	"github.com/stretchr/testify/require"
	xtiff "golang.org/x/image/tiff"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// Gray16 builds a w×h image whose samples come from f.
func Gray16(w, h int, f func(x, y int) uint16) *image.Gray16 {
	g := image.NewGray16(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.SetGray16(x, y, color.Gray16{Y: f(x, y)})
		}
	}
	return g
}

// Checker is a small 16-bit image alternating between lo and hi.
func Checker(lo, hi uint16) *image.Gray16 {
	return Gray16(4, 4, func(x, y int) uint16 {
		if (x+y)%2 == 1 {
			return hi
		}
		return lo
	})
}

// EncodeTIFF returns m as an uncompressed TIFF file.
func EncodeTIFF(t *testing.T, m image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, xtiff.Encode(&buf, m, nil))
	return buf.Bytes()
}

// WriteTIFF encodes m into dir/name and returns the path.
func WriteTIFF(t *testing.T, dir, name string, m image.Image) string {
	t.Helper()
	return WriteFile(t, dir, name, EncodeTIFF(t, m))
}

// WriteFile writes data into dir/name and returns the path.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// CaptureLog points the package logger at a buffer for the rest of the test.
func CaptureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.Configure(log.WithOutput(&buf))
	t.Cleanup(func() { log.Configure() })
	return &buf
}

// CountLevel counts text log lines at level, e.g. "ERROR".
func CountLevel(out, level string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "] "+level+": ") {
			n++
		}
	}
	return n
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
