// Package render draws the selected catalog entry through a Display.
package render

import (
	"tiffview/internal/catalog"
	"tiffview/internal/contrast"
)

// Display is the per-frame surface of a backend.
type Display interface {
	SetContrast(b contrast.Bounds)
	Bind(t catalog.Texture)
	Draw()
}

// Presenter reads the catalog and issues one frame. It never mutates the
// catalog.
type Presenter struct {
	catalog *catalog.Catalog
}

// NewPresenter creates a presenter for c.
func NewPresenter(c *catalog.Catalog) *Presenter {
	return &Presenter{catalog: c}
}

// Frame pushes the effective bounds, binds the selected texture and draws.
func (p *Presenter) Frame(d Display) {
	d.SetContrast(p.catalog.EffectiveBounds())
	d.Bind(p.catalog.Current().Texture)
	d.Draw()
}

// Quad is a full-viewport rectangle as interleaved x, y, z, u, v vertices.
// Texture row 0 is placed at the top of the window.
var Quad = [20]float32{
	1, 1, 0, 1, 0, // top right
	1, -1, 0, 1, 1, // bottom right
	-1, -1, 0, 0, 1, // bottom left
	-1, 1, 0, 0, 0, // top left
}

// QuadIndices draws Quad as two triangles.
var QuadIndices = [6]uint32{
	0, 1, 3,
	1, 2, 3,
}

// Vertex layout of Quad.
const (
	QuadStride         = 5
	QuadPositionOffset = 0
	QuadTexCoordOffset = 3
)
