package viewer

import (
	"tiffview/internal/catalog"
	"tiffview/internal/config"
	"tiffview/internal/errors"
	"tiffview/internal/input"
	"tiffview/internal/render"
	"tiffview/internal/render/softview"

	"fyne.io/fyne/v2/app"
)

// Backend is a display: it receives uploads, draws frames, owns the window
// and runs the event loop.
type Backend interface {
	catalog.Uploader
	render.Display
	input.Window

	// Run blocks until the window closes.
	Run(p *render.Presenter, h *input.Handler) error
	// Shutdown releases every display resource.
	Shutdown()
}

// Factory creates the backend named in the configuration.
type Factory struct {
	config *config.Config
}

// NewFactory creates a new backend factory
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{config: cfg}
}

// Create returns a new backend instance
func (f *Factory) Create() (Backend, error) {
	switch f.config.Display.Backend {
	case config.BackendGL:
		return newGLBackend(f.config)
	case config.BackendSoft:
		return softview.New(app.NewWithID("io.github.tiffview"), f.config), nil
	}
	return nil, errors.NewConfigError("unknown display backend "+f.config.Display.Backend,
		"display.backend", errors.InvalidConfig, nil)
}
