package config

import (
	"fmt"
	"os"
	"path/filepath"

	"tiffview/internal/errors"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Display backends
const (
	BackendGL   = "gl"
	BackendSoft = "soft"
)

// Texture filters
const (
	FilterLinear  = "linear"
	FilterNearest = "nearest"
)

// Config represents the viewer configuration.
type Config struct {
	AppName string `yaml:"app_name"` // Prefix of the window title
	Window  struct {
		Width  int `yaml:"width"`  // Initial window width in screen coordinates
		Height int `yaml:"height"` // Initial window height in screen coordinates
	} `yaml:"window"`
	Display struct {
		Backend        string     `yaml:"backend"`          // gl or soft
		AutoContrast   bool       `yaml:"auto_contrast"`    // Initial auto-contrast mode
		Filter         string     `yaml:"filter"`           // Texture filter: linear or nearest
		Background     [3]float32 `yaml:"background"`       // Clear color, RGB in [0,1]
		MaxTextureSize int        `yaml:"max_texture_size"` // 0 uses the driver limit
	} `yaml:"display"`
	Shaders struct {
		Vertex   string `yaml:"vertex"`   // Vertex shader file, empty for the built-in one
		Fragment string `yaml:"fragment"` // Fragment shader file, empty for the built-in one
	} `yaml:"shaders"`
	Sources struct {
		Patterns []string `yaml:"patterns"` // File name patterns used when a directory is given
	} `yaml:"sources"`
	Keys struct {
		Next               []string `yaml:"next"`
		Previous           []string `yaml:"previous"`
		ToggleAutoContrast []string `yaml:"toggle_auto_contrast"`
		Quit               []string `yaml:"quit"`
		Help               []string `yaml:"help"`
	} `yaml:"keys"`
	Log struct {
		Debug bool   `yaml:"debug"` // Enable debug lines
		JSON  bool   `yaml:"json"`  // One JSON object per line
		File  string `yaml:"file"`  // Also append log lines to this file
	} `yaml:"log"`
}

// DefaultPath returns ~/.config/tiffview/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tiffview", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, errors.NewConfigError("could not resolve home directory", "", errors.ConfigNotFound, err)
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.ConfigNotFound, err)
	}

	// Unmarshal over the defaults so unset fields keep their default value
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.AppName = "TIFF Viewer"
	cfg.Window.Width = 800
	cfg.Window.Height = 600

	cfg.Display.Backend = BackendGL
	cfg.Display.AutoContrast = true
	cfg.Display.Filter = FilterLinear
	cfg.Display.Background = [3]float32{0.1, 0.1, 0.1}
	cfg.Display.MaxTextureSize = 0

	cfg.Sources.Patterns = []string{"*.{tif,tiff,TIF,TIFF}", "*.{tif,tiff,TIF,TIFF}.zst"}

	cfg.Keys.Next = []string{"right", "n", "space"}
	cfg.Keys.Previous = []string{"left", "p", "backspace"}
	cfg.Keys.ToggleAutoContrast = []string{"a"}
	cfg.Keys.Quit = []string{"esc", "q"}
	cfg.Keys.Help = []string{"h"}

	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

func invalid(param string, format string, args ...interface{}) error {
	return errors.NewConfigError("invalid configuration", param, errors.InvalidConfig, fmt.Errorf(format, args...))
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrInvalidConfig
	}

	if c.Window.Width < 1 || c.Window.Height < 1 {
		return invalid("window", "window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	switch c.Display.Backend {
	case BackendGL, BackendSoft:
	default:
		return invalid("display.backend", "unknown backend %q", c.Display.Backend)
	}

	switch c.Display.Filter {
	case FilterLinear, FilterNearest:
	default:
		return invalid("display.filter", "unknown filter %q", c.Display.Filter)
	}

	for i, v := range c.Display.Background {
		if v < 0 || v > 1 {
			return invalid("display.background", "component %d out of range [0,1]: %v", i, v)
		}
	}

	if c.Display.MaxTextureSize < 0 {
		return invalid("display.max_texture_size", "must be >= 0, got %d", c.Display.MaxTextureSize)
	}

	if len(c.Sources.Patterns) == 0 {
		return invalid("sources.patterns", "at least one pattern is required")
	}
	for _, p := range c.Sources.Patterns {
		if _, err := glob.Compile(p); err != nil {
			return invalid("sources.patterns", "pattern %q: %v", p, err)
		}
	}

	keys := map[string][]string{
		"keys.next":                 c.Keys.Next,
		"keys.previous":             c.Keys.Previous,
		"keys.toggle_auto_contrast": c.Keys.ToggleAutoContrast,
		"keys.quit":                 c.Keys.Quit,
		"keys.help":                 c.Keys.Help,
	}
	seen := map[string]string{}
	for _, param := range []string{"keys.next", "keys.previous", "keys.toggle_auto_contrast", "keys.quit", "keys.help"} {
		// Help may be left unbound
		if len(keys[param]) == 0 && param != "keys.help" {
			return invalid(param, "at least one key is required")
		}
		for _, k := range keys[param] {
			if other, dup := seen[k]; dup {
				return invalid(param, "key %q is already bound to %s", k, other)
			}
			seen[k] = param
		}
	}

	return nil
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Display.Backend = BackendSoft
	cfg.Display.MaxTextureSize = 256
	return cfg
}
