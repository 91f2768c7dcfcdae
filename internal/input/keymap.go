package input

import (
	"strings"

	"tiffview/internal/config"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the viewer's key bindings. Key names follow the bubbles
// convention: "right", "left", "space", "backspace", "esc" and single
// lower-case characters.
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Toggle   key.Binding
	Quit     key.Binding
	Help     key.Binding
}

// NewKeyMap builds the bindings from the keys section of cfg.
func NewKeyMap(cfg *config.Config) KeyMap {
	k := cfg.Keys
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys(k.Next...),
			key.WithHelp(helpKeys(k.Next), "next image"),
		),
		Previous: key.NewBinding(
			key.WithKeys(k.Previous...),
			key.WithHelp(helpKeys(k.Previous), "previous image"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(k.ToggleAutoContrast...),
			key.WithHelp(helpKeys(k.ToggleAutoContrast), "toggle auto-contrast"),
		),
		Quit: key.NewBinding(
			key.WithKeys(k.Quit...),
			key.WithHelp(helpKeys(k.Quit), "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys(k.Help...),
			key.WithHelp(helpKeys(k.Help), "show keys"),
		),
	}
}

// DefaultKeyMap returns the bindings of the default configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.New())
}

// ToggleKey is the key named in the window title hint.
func (k KeyMap) ToggleKey() string {
	keys := k.Toggle.Keys()
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Toggle, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous},
		{k.Toggle, k.Quit, k.Help},
	}
}

// HelpText renders every binding as a single block.
func (k KeyMap) HelpText() string {
	return help.New().FullHelpView(k.FullHelp())
}

var _ help.KeyMap = KeyMap{}

func helpKeys(keys []string) string {
	return strings.Join(keys, "/")
}
