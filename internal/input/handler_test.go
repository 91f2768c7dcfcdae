package input_test

import (
	"bytes"
	"testing"

	"tiffview/internal/catalog"
	"tiffview/internal/contrast"
	"tiffview/internal/input"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	titles []string
	closed bool
}

func (w *fakeWindow) SetTitle(title string) { w.titles = append(w.titles, title) }
func (w *fakeWindow) Close()                { w.closed = true }

func newCatalog(t *testing.T, names ...string) *catalog.Catalog {
	t.Helper()
	entries := make([]catalog.Entry, len(names))
	for i, n := range names {
		entries[i] = catalog.Entry{Name: n, Bounds: contrast.Bounds{Min: 0.2, Max: 0.3}}
	}
	c, err := catalog.New(entries, true)
	require.NoError(t, err)
	return c
}

func TestHandleKeyNavigation(t *testing.T) {
	c := newCatalog(t, "a.tif", "b.tif", "c.tif")
	w := &fakeWindow{}
	h := input.NewHandler(input.DefaultKeyMap(), c, w, "TIFF Viewer")

	changes := 0
	h.OnChange = func() { changes++ }

	assert.Equal(t, input.ActionNext, h.HandleKey(input.Key("right")))
	assert.Equal(t, 1, c.Selected())
	assert.Equal(t, input.ActionNext, h.HandleKey(input.Key("space")))
	assert.Equal(t, input.ActionPrevious, h.HandleKey(input.Key("left")))
	assert.Equal(t, input.ActionPrevious, h.HandleKey(input.Key("p")))
	assert.Equal(t, 0, c.Selected())
	assert.Equal(t, input.ActionPrevious, h.HandleKey(input.Key("backspace")))
	assert.Equal(t, 2, c.Selected())

	assert.Equal(t, 5, changes)
	require.Len(t, w.titles, 5)
	assert.Equal(t, "TIFF Viewer: c.tif | Auto-Contrast: ON (Press 'A' to toggle)", w.titles[4])
}

func TestHandleKeyToggle(t *testing.T) {
	c := newCatalog(t, "a.tif")
	w := &fakeWindow{}
	h := input.NewHandler(input.DefaultKeyMap(), c, w, "TIFF Viewer")

	assert.Equal(t, input.ActionToggle, h.HandleKey(input.Key("a")))
	assert.False(t, c.AutoContrast())
	assert.Equal(t, contrast.Identity(), c.EffectiveBounds())
	require.Len(t, w.titles, 1)
	assert.Contains(t, w.titles[0], "Auto-Contrast: OFF")

	h.HandleKey(input.Key("a"))
	assert.True(t, c.AutoContrast())
	assert.Contains(t, w.titles[1], "Auto-Contrast: ON")
}

func TestHandleKeySingleImageLeavesTitleAlone(t *testing.T) {
	c := newCatalog(t, "only.tif")
	w := &fakeWindow{}
	h := input.NewHandler(input.DefaultKeyMap(), c, w, "TIFF Viewer")
	h.OnChange = func() { t.Fatal("nothing changed") }

	assert.Equal(t, input.ActionNext, h.HandleKey(input.Key("right")))
	assert.Equal(t, input.ActionPrevious, h.HandleKey(input.Key("left")))
	assert.Empty(t, w.titles)
}

func TestHandleKeyQuitAndUnbound(t *testing.T) {
	c := newCatalog(t, "a.tif", "b.tif")
	w := &fakeWindow{}
	h := input.NewHandler(input.DefaultKeyMap(), c, w, "TIFF Viewer")

	assert.Equal(t, input.ActionNone, h.HandleKey(input.Key("x")))
	assert.Equal(t, input.ActionNone, h.HandleKey(input.Key("up")))
	assert.False(t, w.closed)
	assert.Empty(t, w.titles)
	assert.Equal(t, 0, c.Selected())

	assert.Equal(t, input.ActionQuit, h.HandleKey(input.Key("esc")))
	assert.True(t, w.closed)
}

func TestHandleKeyHelp(t *testing.T) {
	c := newCatalog(t, "a.tif")
	h := input.NewHandler(input.DefaultKeyMap(), c, &fakeWindow{}, "TIFF Viewer")
	var out bytes.Buffer
	h.SetHelpOutput(&out)

	assert.Equal(t, input.ActionHelp, h.HandleKey(input.Key("h")))
	assert.Contains(t, out.String(), "next image")
	assert.Contains(t, out.String(), "toggle auto-contrast")
}

func TestRefreshTitle(t *testing.T) {
	c := newCatalog(t, "a.tif")
	w := &fakeWindow{}
	h := input.NewHandler(input.DefaultKeyMap(), c, w, "Lab")

	h.RefreshTitle()
	assert.Equal(t, []string{"Lab: a.tif | Auto-Contrast: ON (Press 'A' to toggle)"}, w.titles)
	assert.Equal(t, w.titles[0], h.Title())
}
