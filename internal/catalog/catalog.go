// Package catalog holds the loaded images and the viewer's selection state.
package catalog

import (
	"fmt"
	"strings"

	"tiffview/internal/contrast"
	"tiffview/internal/errors"
)

// Texture is a display-side handle for an uploaded image.
type Texture interface {
	Release()
}

// Entry is one successfully loaded image.
type Entry struct {
	Texture Texture
	Name    string
	Bounds  contrast.Bounds

	Width  int
	Height int
	Raw    contrast.Range
}

// Catalog is the ordered set of entries plus the current selection and the
// auto-contrast mode. It is not safe for concurrent use; every caller runs on
// the display thread.
type Catalog struct {
	entries      []Entry
	selected     int
	autoContrast bool
	closed       bool
}

// New returns a catalog with the first entry selected.
func New(entries []Entry, autoContrast bool) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, errors.ErrNoImagesLoaded
	}
	return &Catalog{entries: entries, autoContrast: autoContrast}, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in load order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Selected returns the index of the displayed entry.
func (c *Catalog) Selected() int {
	return c.selected
}

// Current returns the displayed entry.
func (c *Catalog) Current() Entry {
	return c.entries[c.selected]
}

// AutoContrast reports whether per-image bounds are applied.
func (c *Catalog) AutoContrast() bool {
	return c.autoContrast
}

// Next selects the following entry, wrapping to the first. It reports whether
// the selection changed.
func (c *Catalog) Next() bool {
	prev := c.selected
	c.selected = (c.selected + 1) % len(c.entries)
	return c.selected != prev
}

// Previous selects the preceding entry, wrapping to the last. It reports
// whether the selection changed.
func (c *Catalog) Previous() bool {
	prev := c.selected
	c.selected = (c.selected - 1 + len(c.entries)) % len(c.entries)
	return c.selected != prev
}

// ToggleAutoContrast flips the mode. It always changes what is displayed.
func (c *Catalog) ToggleAutoContrast() bool {
	c.autoContrast = !c.autoContrast
	return true
}

// EffectiveBounds returns the window the display should apply now.
func (c *Catalog) EffectiveBounds() contrast.Bounds {
	return contrast.Effective(c.Current().Bounds, c.autoContrast)
}

// Title formats the window title for the current state. toggleKey is shown
// upper-cased in the hint.
func (c *Catalog) Title(appName, toggleKey string) string {
	mode := "OFF"
	if c.autoContrast {
		mode = "ON"
	}
	return fmt.Sprintf("%s: %s | Auto-Contrast: %s (Press '%s' to toggle)",
		appName, c.Current().Name, mode, strings.ToUpper(toggleKey))
}

// Close releases every texture. Later calls do nothing.
func (c *Catalog) Close() {
	if c.closed {
		return
	}
	c.closed = true
	for _, e := range c.entries {
		if e.Texture != nil {
			e.Texture.Release()
		}
	}
}
