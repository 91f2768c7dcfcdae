package softview

import (
	"strings"

	"fyne.io/fyne/v2"
)

var namedKeys = map[fyne.KeyName]string{
	fyne.KeyRight:     "right",
	fyne.KeyLeft:      "left",
	fyne.KeyUp:        "up",
	fyne.KeyDown:      "down",
	fyne.KeySpace:     "space",
	fyne.KeyBackspace: "backspace",
	fyne.KeyEscape:    "esc",
	fyne.KeyReturn:    "enter",
	fyne.KeyTab:       "tab",
	fyne.KeyHome:      "home",
	fyne.KeyEnd:       "end",
	fyne.KeyPageUp:    "pgup",
	fyne.KeyPageDown:  "pgdown",
}

// keyName maps a fyne key to the name used by key bindings.
func keyName(k fyne.KeyName) string {
	if name, ok := namedKeys[k]; ok {
		return name
	}
	if len(k) == 1 {
		c := k[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return strings.ToLower(string(k))
		}
	}
	return ""
}
