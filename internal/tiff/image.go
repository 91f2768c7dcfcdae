package tiff

import (
	"image"

	"github.com/nfnt/resize"
)

// Image is a decoded 16-bit single channel raster. Samples are row-major with
// no padding between rows, so len(Samples) == Width*Height.
type Image struct {
	Width   int
	Height  int
	Samples []uint16
}

// FromGray16 copies g into an Image, dropping any stride padding.
func FromGray16(g *image.Gray16) *Image {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	samples := make([]uint16, w*h)
	for y := 0; y < h; y++ {
		row := g.Pix[g.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < w; x++ {
			// Gray16 pixels are big-endian
			samples[y*w+x] = uint16(row[2*x])<<8 | uint16(row[2*x+1])
		}
	}
	return &Image{Width: w, Height: h, Samples: samples}
}

// Gray16 returns the image as an *image.Gray16.
func (m *Image) Gray16() *image.Gray16 {
	g := image.NewGray16(image.Rect(0, 0, m.Width, m.Height))
	for i, s := range m.Samples {
		g.Pix[2*i] = uint8(s >> 8)
		g.Pix[2*i+1] = uint8(s)
	}
	return g
}

// Fit returns m unchanged when both sides are within max, otherwise a copy
// scaled down to fit a max×max box with the aspect ratio preserved.
func (m *Image) Fit(max int) *Image {
	if max <= 0 || (m.Width <= max && m.Height <= max) {
		return m
	}
	scaled := resize.Thumbnail(uint(max), uint(max), m.Gray16(), resize.Lanczos3)
	if g, ok := scaled.(*image.Gray16); ok {
		return FromGray16(g)
	}
	// resize keeps Gray16 input as Gray16; anything else is converted.
	b := scaled.Bounds()
	g := image.NewGray16(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			g.Set(x, y, scaled.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return FromGray16(g)
}
