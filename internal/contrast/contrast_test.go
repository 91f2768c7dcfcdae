package contrast_test

import (
	"math/rand"
	"testing"

	"tiffview/internal/contrast"

	"github.com/stretchr/testify/assert"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name    string
		samples []uint16
		want    contrast.Range
	}{
		{"empty", nil, contrast.Range{Min: 65535, Max: 0}},
		{"single", []uint16{42}, contrast.Range{Min: 42, Max: 42}},
		{"mixed", []uint16{300, 7, 65000, 12}, contrast.Range{Min: 7, Max: 65000}},
		{"full range", []uint16{65535, 0}, contrast.Range{Min: 0, Max: 65535}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contrast.Scan(tt.samples))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("full range maps to identity", func(t *testing.T) {
		assert.Equal(t, contrast.Bounds{Min: 0, Max: 1}, contrast.Normalize(contrast.Range{Min: 0, Max: 65535}))
	})

	t.Run("partial range", func(t *testing.T) {
		b := contrast.Normalize(contrast.Range{Min: 6553, Max: 32767})
		assert.InDelta(t, 0.1, b.Min, 1e-4)
		assert.InDelta(t, 0.5, b.Max, 1e-4)
	})

	t.Run("flat image is widened", func(t *testing.T) {
		b := contrast.Analyze([]uint16{1000, 1000, 1000, 1000})
		assert.InDelta(t, float32(1000)/65535, b.Min, 1e-7)
		assert.InDelta(t, 0.001, b.Width(), 1e-6)
		assert.Greater(t, b.Max, b.Min)
	})

	t.Run("flat black image", func(t *testing.T) {
		b := contrast.Analyze([]uint16{0, 0})
		assert.Equal(t, float32(0), b.Min)
		assert.InDelta(t, 0.001, b.Max, 1e-7)
	})

	t.Run("flat white image shifts down", func(t *testing.T) {
		b := contrast.Analyze([]uint16{65535, 65535})
		assert.Equal(t, float32(1), b.Max)
		assert.InDelta(t, 0.999, b.Min, 1e-6)
	})

	t.Run("empty samples still give a valid window", func(t *testing.T) {
		b := contrast.Analyze(nil)
		assert.Less(t, b.Min, b.Max)
		assert.LessOrEqual(t, b.Max, float32(1))
	})
}

func TestBoundsOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		n := 1 + rng.Intn(16)
		samples := make([]uint16, n)
		base := uint16(rng.Intn(65536))
		for j := range samples {
			if i%3 == 0 {
				samples[j] = base
			} else {
				samples[j] = uint16(rng.Intn(65536))
			}
		}

		b := contrast.Analyze(samples)
		assert.GreaterOrEqual(t, b.Min, float32(0), "samples %v", samples)
		assert.Less(t, b.Min, b.Max, "samples %v", samples)
		assert.LessOrEqual(t, b.Max, float32(1), "samples %v", samples)
	}
}

func TestEffective(t *testing.T) {
	b := contrast.Bounds{Min: 0.2, Max: 0.4}
	assert.Equal(t, b, contrast.Effective(b, true))
	assert.Equal(t, contrast.Identity(), contrast.Effective(b, false))
	assert.Equal(t, contrast.Bounds{Min: 0, Max: 1}, contrast.Identity())
}

func TestMap(t *testing.T) {
	id := contrast.Identity()
	assert.Equal(t, uint8(0), contrast.Map(0, id))
	assert.Equal(t, uint8(255), contrast.Map(65535, id))
	assert.Equal(t, uint8(128), contrast.Map(32768, id))

	b := contrast.Normalize(contrast.Range{Min: 1000, Max: 2000})
	assert.Equal(t, uint8(0), contrast.Map(500, b), "below the window clamps to black")
	assert.Equal(t, uint8(0), contrast.Map(1000, b))
	assert.Equal(t, uint8(255), contrast.Map(2000, b))
	assert.Equal(t, uint8(255), contrast.Map(60000, b), "above the window clamps to white")
	assert.InDelta(t, 128, int(contrast.Map(1500, b)), 1)

	// A degenerate window still produces black and white without dividing by zero
	flat := contrast.Bounds{Min: 0.5, Max: 0.5}
	assert.Equal(t, uint8(0), contrast.Map(0, flat))
	assert.Equal(t, uint8(255), contrast.Map(65535, flat))
}
