//go:build nogl
// +build nogl

package viewer

import (
	"tiffview/internal/config"
	"tiffview/internal/errors"
)

// GLAvailable reports whether the OpenGL backend is compiled in.
func GLAvailable() bool {
	return false
}

func newGLBackend(*config.Config) (Backend, error) {
	return nil, errors.NewDisplayError("OpenGL backend is disabled in this build, use --backend soft",
		"build", errors.DisplayInitFailed, nil)
}
