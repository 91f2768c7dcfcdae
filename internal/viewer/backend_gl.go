//go:build !nogl
// +build !nogl

package viewer

import (
	"tiffview/internal/config"
	"tiffview/internal/render"
	"tiffview/internal/render/glview"
)

// GLAvailable reports whether the OpenGL backend is compiled in.
func GLAvailable() bool {
	return true
}

func newGLBackend(cfg *config.Config) (Backend, error) {
	shaders, err := render.LoadShaders(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		return nil, err
	}
	v, err := glview.New(cfg, shaders)
	if err != nil {
		return nil, err
	}
	return v, nil
}
