// Package viewer wires source expansion, loading, input and a display
// backend into one run of the application.
package viewer

import (
	"tiffview/internal/catalog"
	"tiffview/internal/config"
	"tiffview/internal/errors"
	"tiffview/internal/input"
	"tiffview/internal/log"
	"tiffview/internal/render"
	"tiffview/internal/sources"
	"tiffview/internal/tiff"
)

// Viewer runs the application for one set of arguments.
type Viewer struct {
	cfg        *config.Config
	decoder    catalog.Decoder
	newBackend func() (Backend, error)

	// Report, when set, receives the per-file load results before the
	// window loop starts.
	Report func(results []catalog.Result)
}

// New creates a viewer using the backend selected in cfg.
func New(cfg *config.Config) *Viewer {
	return &Viewer{
		cfg:        cfg,
		decoder:    tiff.NewDecoder(),
		newBackend: NewFactory(cfg).Create,
	}
}

// Run expands args, opens the display, loads every file and blocks until the
// window is closed. Files that fail to load are logged and skipped; when none
// load Run returns an error for which errors.IsNoImagesLoaded is true.
func (v *Viewer) Run(args []string) error {
	paths, err := sources.Expand(args, v.cfg.Sources.Patterns)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.ErrNoImagesLoaded
	}

	backend, err := v.newBackend()
	if err != nil {
		return err
	}
	defer backend.Shutdown()

	cat, results, err := catalog.NewLoader(v.decoder, backend).Load(paths, v.cfg.Display.AutoContrast)
	if v.Report != nil {
		v.Report(results)
	}
	if err != nil {
		return err
	}
	defer cat.Close()

	h := input.NewHandler(input.NewKeyMap(v.cfg), cat, backend, v.cfg.AppName)
	h.RefreshTitle()

	log.LogWithFields(
		log.F("images", cat.Len()),
		log.F("backend", v.cfg.Display.Backend),
		log.F("auto_contrast", cat.AutoContrast()),
	).Info("Starting viewer")

	return backend.Run(render.NewPresenter(cat), h)
}
