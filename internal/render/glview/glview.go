// Package glview is the OpenGL 3.3 core display backend built on GLFW.
//
// Every call must come from the main OS thread; init locks it.
package glview

import (
	"runtime"

	"tiffview/internal/catalog"
	"tiffview/internal/config"
	"tiffview/internal/contrast"
	"tiffview/internal/errors"
	"tiffview/internal/input"
	"tiffview/internal/log"
	"tiffview/internal/render"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

// View owns the window, the GL context and every GL object created in it.
type View struct {
	window  *glfw.Window
	program *program
	quad    *quad

	filter     int32
	maxTexture int
	background [3]float32
	textures   []*texture
	terminated bool
}

// New opens a window with a current OpenGL 3.3 core context and prepares
// the shader program and quad geometry.
func New(cfg *config.Config, shaders render.Shaders) (*View, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.NewDisplayError("failed to initialize GLFW", "glfw", errors.DisplayInitFailed, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.AppName, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.NewDisplayError("failed to create GLFW window", "window", errors.DisplayInitFailed, err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, errors.NewDisplayError("failed to load OpenGL functions", "gl", errors.DisplayInitFailed, err)
	}
	log.Debugf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	v := &View{
		window:     window,
		filter:     gl.LINEAR,
		background: cfg.Display.Background,
	}
	if cfg.Display.Filter == config.FilterNearest {
		v.filter = gl.NEAREST
	}

	var driverMax int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &driverMax)
	v.maxTexture = int(driverMax)
	if cfg.Display.MaxTextureSize > 0 && cfg.Display.MaxTextureSize < v.maxTexture {
		v.maxTexture = cfg.Display.MaxTextureSize
	}

	v.program, err = newProgram(shaders)
	if err != nil {
		v.Shutdown()
		return nil, err
	}
	v.quad = newQuad()

	fw, fh := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fw), int32(fh))
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	return v, nil
}

// SetTitle implements input.Window.
func (v *View) SetTitle(title string) {
	v.window.SetTitle(title)
}

// Close implements input.Window. The loop exits after the current frame.
func (v *View) Close() {
	v.window.SetShouldClose(true)
}

// SetContrast implements render.Display.
func (v *View) SetContrast(b contrast.Bounds) {
	v.program.setBounds(b)
}

// Bind implements render.Display.
func (v *View) Bind(t catalog.Texture) {
	gl.ActiveTexture(gl.TEXTURE0)
	if tex, ok := t.(*texture); ok {
		gl.BindTexture(gl.TEXTURE_2D, tex.id)
	}
}

// Draw implements render.Display.
func (v *View) Draw() {
	v.quad.draw()
}

// Run polls events and draws one frame per iteration until the window is
// asked to close.
func (v *View) Run(p *render.Presenter, h *input.Handler) error {
	v.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if name := keyName(key); name != "" {
			h.HandleKey(input.Key(name))
		}
	})

	for !v.window.ShouldClose() {
		gl.ClearColor(v.background[0], v.background[1], v.background[2], 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		v.program.use()
		p.Frame(v)
		v.window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// Shutdown deletes every GL object, destroys the window and terminates GLFW.
// Textures still held by a catalog are deleted here as well.
func (v *View) Shutdown() {
	if v.terminated {
		return
	}
	v.terminated = true

	for _, t := range v.textures {
		t.Release()
	}
	v.textures = nil
	if v.quad != nil {
		v.quad.delete()
	}
	if v.program != nil {
		v.program.delete()
	}
	v.window.Destroy()
	glfw.Terminate()
}
