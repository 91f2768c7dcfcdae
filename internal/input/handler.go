// Package input applies key presses to the catalog.
package input

import (
	"fmt"
	"io"
	"os"

	"tiffview/internal/catalog"
	"tiffview/internal/log"

	"github.com/charmbracelet/bubbles/key"
)

// Action is what a key press did.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrevious
	ActionToggle
	ActionQuit
	ActionHelp
)

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionPrevious:
		return "previous"
	case ActionToggle:
		return "toggle"
	case ActionQuit:
		return "quit"
	case ActionHelp:
		return "help"
	}
	return "none"
}

// Key is a key name as produced by a display backend.
type Key string

func (k Key) String() string {
	return string(k)
}

// Window is the part of a display window the handler drives.
type Window interface {
	SetTitle(title string)
	Close()
}

// Handler maps key presses to catalog transitions. It refreshes the window
// title only when the displayed state changed.
type Handler struct {
	keys    KeyMap
	catalog *catalog.Catalog
	window  Window
	appName string
	out     io.Writer

	// OnChange, when set, runs after every transition that changed the
	// displayed state.
	OnChange func()
}

// NewHandler creates a handler. Help output goes to standard output.
func NewHandler(keys KeyMap, c *catalog.Catalog, w Window, appName string) *Handler {
	return &Handler{
		keys:    keys,
		catalog: c,
		window:  w,
		appName: appName,
		out:     os.Stdout,
	}
}

// SetHelpOutput redirects the key help printed on the help key.
func (h *Handler) SetHelpOutput(w io.Writer) {
	h.out = w
}

// Title is the window title for the current state.
func (h *Handler) Title() string {
	return h.catalog.Title(h.appName, h.keys.ToggleKey())
}

// RefreshTitle pushes the current title to the window.
func (h *Handler) RefreshTitle() {
	h.window.SetTitle(h.Title())
}

// HandleKey applies k and returns the action it triggered.
func (h *Handler) HandleKey(k fmt.Stringer) Action {
	var (
		action  Action
		changed bool
	)

	switch {
	case key.Matches(k, h.keys.Next):
		action, changed = ActionNext, h.catalog.Next()
	case key.Matches(k, h.keys.Previous):
		action, changed = ActionPrevious, h.catalog.Previous()
	case key.Matches(k, h.keys.Toggle):
		action, changed = ActionToggle, h.catalog.ToggleAutoContrast()
	case key.Matches(k, h.keys.Quit):
		log.Debug("Quit requested")
		h.window.Close()
		return ActionQuit
	case key.Matches(k, h.keys.Help):
		fmt.Fprintln(h.out, h.keys.HelpText())
		return ActionHelp
	default:
		return ActionNone
	}

	if changed {
		log.LogWithFields(
			log.F("action", action.String()),
			log.F("selected", h.catalog.Selected()),
			log.F("auto_contrast", h.catalog.AutoContrast()),
		).Debug("State changed")
		h.RefreshTitle()
		if h.OnChange != nil {
			h.OnChange()
		}
	}
	return action
}
