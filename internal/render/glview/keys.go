package glview

import "github.com/go-gl/glfw/v3.3/glfw"

var namedKeys = map[glfw.Key]string{
	glfw.KeyRight:     "right",
	glfw.KeyLeft:      "left",
	glfw.KeyUp:        "up",
	glfw.KeyDown:      "down",
	glfw.KeySpace:     "space",
	glfw.KeyBackspace: "backspace",
	glfw.KeyEscape:    "esc",
	glfw.KeyEnter:     "enter",
	glfw.KeyTab:       "tab",
	glfw.KeyHome:      "home",
	glfw.KeyEnd:       "end",
	glfw.KeyPageUp:    "pgup",
	glfw.KeyPageDown:  "pgdown",
}

// keyName maps a physical key to the name used by key bindings. Letters map
// by key position, as in the US layout.
func keyName(k glfw.Key) string {
	if name, ok := namedKeys[k]; ok {
		return name
	}
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return string(rune('a' + int(k-glfw.KeyA)))
	case k >= glfw.Key0 && k <= glfw.Key9:
		return string(rune('0' + int(k-glfw.Key0)))
	}
	return ""
}
