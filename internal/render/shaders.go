package render

import (
	"embed"
	"os"

	"tiffview/internal/errors"
)

//go:embed shaders/quad.vert shaders/window.frag
var builtin embed.FS

// Uniform and sampler names the fragment shader must declare.
const (
	UniformMin     = "u_minVal"
	UniformMax     = "u_maxVal"
	UniformSampler = "ourTexture"
)

// Shaders holds GLSL sources.
type Shaders struct {
	Vertex   string
	Fragment string
}

// DefaultShaders returns the built-in sources.
func DefaultShaders() Shaders {
	v, _ := builtin.ReadFile("shaders/quad.vert")
	f, _ := builtin.ReadFile("shaders/window.frag")
	return Shaders{Vertex: string(v), Fragment: string(f)}
}

// LoadShaders returns the built-in sources with either stage replaced by the
// file at the given path. Empty paths keep the built-in source.
func LoadShaders(vertexPath, fragmentPath string) (Shaders, error) {
	s := DefaultShaders()
	if vertexPath != "" {
		src, err := os.ReadFile(vertexPath)
		if err != nil {
			return Shaders{}, errors.NewConfigError("could not read vertex shader", "shaders.vertex", errors.InvalidConfig, err)
		}
		s.Vertex = string(src)
	}
	if fragmentPath != "" {
		src, err := os.ReadFile(fragmentPath)
		if err != nil {
			return Shaders{}, errors.NewConfigError("could not read fragment shader", "shaders.fragment", errors.InvalidConfig, err)
		}
		s.Fragment = string(src)
	}
	return s, nil
}
