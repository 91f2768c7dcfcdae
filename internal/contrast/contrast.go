// Package contrast derives per-image display windows from raw 16-bit samples.
package contrast

// Degenerate windows narrower than minSpan are widened to widenBy.
const (
	minSpan = 1e-6
	widenBy = 0.001

	// shaderMinRange is the smallest divisor the fragment shader uses.
	shaderMinRange = 1e-5
)

// Range is the raw intensity extent of an image.
type Range struct {
	Min uint16
	Max uint16
}

// Bounds is a display window in normalized [0,1] units. Max > Min always holds
// for values returned by this package.
type Bounds struct {
	Min float32
	Max float32
}

// Scan returns the smallest and largest sample. An empty slice yields
// Range{Min: 65535, Max: 0}.
func Scan(samples []uint16) Range {
	r := Range{Min: 65535, Max: 0}
	for _, s := range samples {
		if s < r.Min {
			r.Min = s
		}
		if s > r.Max {
			r.Max = s
		}
	}
	return r
}

// Normalize maps r into [0,1]. Windows narrower than 1e-6 are widened to
// 0.001, shifted down when they would pass 1.0.
func Normalize(r Range) Bounds {
	b := Bounds{
		Min: float32(r.Min) / 65535,
		Max: float32(r.Max) / 65535,
	}
	if b.Max-b.Min < minSpan {
		b.Max = b.Min + widenBy
		if b.Max > 1 {
			b.Max = 1
			b.Min = 1 - widenBy
		}
	}
	return b
}

// Analyze scans samples and normalizes the result.
func Analyze(samples []uint16) Bounds {
	return Normalize(Scan(samples))
}

// Identity is the full-range window used when auto-contrast is off.
func Identity() Bounds {
	return Bounds{Min: 0, Max: 1}
}

// Effective returns b when auto is set, Identity otherwise.
func Effective(b Bounds, auto bool) Bounds {
	if auto {
		return b
	}
	return Identity()
}

// Map converts a sample to an 8-bit intensity the way the fragment shader
// does: (v - Min) / max(Max - Min, 1e-5), clamped to [0,1].
func Map(sample uint16, b Bounds) uint8 {
	span := b.Max - b.Min
	if span < shaderMinRange {
		span = shaderMinRange
	}
	v := (float32(sample)/65535 - b.Min) / span
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Width is Max - Min.
func (b Bounds) Width() float32 {
	return b.Max - b.Min
}
