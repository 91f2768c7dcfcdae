package main

import (
	stderrors "errors"
	"fmt"
	"io"

	"tiffview/internal/catalog"
	"tiffview/internal/config"
	"tiffview/internal/errors"
	"tiffview/internal/log"
	"tiffview/internal/viewer"

	"github.com/spf13/cobra"
)

// errUsage is returned after usage text has already been printed.
var errUsage = stderrors.New("usage")

type options struct {
	cfgFile        string
	debug          bool
	logJSON        bool
	logFile        string
	backend        string
	noAutoContrast bool
	width          int
	height         int
	vertexShader   string
	fragmentShader string
	maxTexture     int
}

// app carries what every subcommand shares once flags are parsed.
type app struct {
	opts   options
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)

	err := root.Execute()
	defer log.Default().Close()
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, errUsage):
		return 1
	case errors.IsNoImagesLoaded(err):
		log.Error("No valid TIFF images were loaded. Exiting.")
		return 1
	case a.cfg == nil:
		// Flag or config errors happen before logging is set up
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	log.LogError(err, "tiffview failed")
	return 1
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tiffview [flags] <file|dir>...",
		Short: "View 16-bit grayscale TIFF images",
		Long: `tiffview shows 16-bit single channel TIFF images in a window.

Each image is contrast-stretched to its own intensity range. Use the arrow
keys to move between images and 'a' to toggle auto-contrast. Directories are
expanded to the TIFF files they contain; files ending in .zst are
decompressed first.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.SetOut(a.stdout)
				_ = cmd.Usage()
				return errUsage
			}
			return a.view(args)
		},
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	f := cmd.PersistentFlags()
	f.StringVar(&a.opts.cfgFile, "config", "", "config file (default is $HOME/.config/tiffview/config.yaml)")
	f.BoolVar(&a.opts.debug, "debug", false, "enable debug logging")
	f.BoolVar(&a.opts.logJSON, "log-json", false, "write log lines as JSON")
	f.StringVar(&a.opts.logFile, "log-file", "", "also append log lines to this file")

	lf := cmd.Flags()
	lf.StringVar(&a.opts.backend, "backend", "", "display backend: gl or soft")
	lf.BoolVar(&a.opts.noAutoContrast, "no-auto-contrast", false, "start with auto-contrast off")
	lf.IntVar(&a.opts.width, "width", 0, "initial window width")
	lf.IntVar(&a.opts.height, "height", 0, "initial window height")
	lf.StringVar(&a.opts.vertexShader, "vertex-shader", "", "GLSL vertex shader file")
	lf.StringVar(&a.opts.fragmentShader, "fragment-shader", "", "GLSL fragment shader file")
	lf.IntVar(&a.opts.maxTexture, "max-texture-size", 0, "scale down images larger than this")

	cmd.AddCommand(a.inspectCmd())
	return cmd
}

// setup loads the configuration, applies flags on top and configures logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var (
		cfg *config.Config
		err error
	)
	if a.opts.cfgFile != "" {
		cfg, err = config.LoadConfigFile(a.opts.cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return err
	}

	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("debug") {
		cfg.Log.Debug = a.opts.debug
	}
	if changed("log-json") {
		cfg.Log.JSON = a.opts.logJSON
	}
	if changed("log-file") {
		cfg.Log.File = a.opts.logFile
	}
	if changed("backend") {
		cfg.Display.Backend = a.opts.backend
	} else {
		cfg.Display.Backend = fallbackBackend(cfg.Display.Backend, viewer.GLAvailable())
	}
	if changed("no-auto-contrast") {
		cfg.Display.AutoContrast = !a.opts.noAutoContrast
	}
	if changed("width") {
		cfg.Window.Width = a.opts.width
	}
	if changed("height") {
		cfg.Window.Height = a.opts.height
	}
	if changed("vertex-shader") {
		cfg.Shaders.Vertex = a.opts.vertexShader
	}
	if changed("fragment-shader") {
		cfg.Shaders.Fragment = a.opts.fragmentShader
	}
	if changed("max-texture-size") {
		cfg.Display.MaxTextureSize = a.opts.maxTexture
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := []log.Option{log.WithOutput(a.stderr)}
	if cfg.Log.JSON {
		opts = append(opts, log.WithJSON())
	}
	if cfg.Log.File != "" {
		opts = append(opts, log.WithFile(cfg.Log.File))
	}
	log.Configure(opts...)
	log.SetDebug(cfg.Log.Debug)
	log.Debugf("Using %s backend", cfg.Display.Backend)

	a.cfg = cfg
	return nil
}

// fallbackBackend picks the soft backend when gl is configured but not
// compiled in. An explicit --backend flag is never overridden.
func fallbackBackend(backend string, glAvailable bool) string {
	if backend == config.BackendGL && !glAvailable {
		return config.BackendSoft
	}
	return backend
}

func (a *app) view(args []string) error {
	v := viewer.New(a.cfg)
	v.Report = func(results []catalog.Result) {
		fmt.Fprintln(a.stdout, renderSummary(results, nil))
	}
	return v.Run(args)
}
