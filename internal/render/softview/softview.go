// Package softview is a display backend that applies the contrast window on
// the CPU and shows the result in a fyne window. It needs no OpenGL 3.3
// context, so it also runs on software renderers and remote sessions.
package softview

import (
	"image"
	"image/color"

	"tiffview/internal/catalog"
	"tiffview/internal/config"
	"tiffview/internal/contrast"
	"tiffview/internal/input"
	"tiffview/internal/log"
	"tiffview/internal/render"
	"tiffview/internal/tiff"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

type texture struct {
	img      *tiff.Image
	released bool
}

// Release drops the retained samples.
func (t *texture) Release() {
	t.released = true
	t.img = nil
}

// View owns one fyne window showing the selected image.
type View struct {
	app    fyne.App
	window fyne.Window
	image  *canvas.Image

	maxTexture int
	bounds     contrast.Bounds
	bound      *texture
	textures   []*texture
}

// New creates the window on a. The window is shown by Start.
func New(a fyne.App, cfg *config.Config) *View {
	w := a.NewWindow(cfg.AppName)
	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.SetPadded(false)
	w.SetMaster()

	img := canvas.NewImageFromImage(image.NewGray(image.Rect(0, 0, 1, 1)))
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	if cfg.Display.Filter == config.FilterNearest {
		img.ScaleMode = canvas.ImageScalePixels
	}

	bg := cfg.Display.Background
	rect := canvas.NewRectangle(color.NRGBA{
		R: uint8(bg[0] * 255),
		G: uint8(bg[1] * 255),
		B: uint8(bg[2] * 255),
		A: 255,
	})
	w.SetContent(container.NewStack(rect, img))

	return &View{
		app:        a,
		window:     w,
		image:      img,
		maxTexture: cfg.Display.MaxTextureSize,
		bounds:     contrast.Identity(),
	}
}

// Window returns the fyne window.
func (v *View) Window() fyne.Window {
	return v.window
}

// Upload implements catalog.Uploader. Samples are kept in memory, scaled down
// to the configured limit when one is set.
func (v *View) Upload(name string, img *tiff.Image) (catalog.Texture, error) {
	if v.maxTexture > 0 && (img.Width > v.maxTexture || img.Height > v.maxTexture) {
		log.LogWithFields(log.F("path", name), log.F("limit", v.maxTexture)).Debug("Scaling image down")
		img = img.Fit(v.maxTexture)
	}
	t := &texture{img: img}
	v.textures = append(v.textures, t)
	return t, nil
}

// SetContrast implements render.Display.
func (v *View) SetContrast(b contrast.Bounds) {
	v.bounds = b
}

// Bind implements render.Display.
func (v *View) Bind(t catalog.Texture) {
	if tex, ok := t.(*texture); ok {
		v.bound = tex
	}
}

// Draw implements render.Display.
func (v *View) Draw() {
	if v.bound == nil || v.bound.img == nil {
		return
	}
	v.image.Image = Frame(v.bound.img, v.bounds)
	v.image.Refresh()
}

// Frame maps samples through b into an 8-bit grayscale image.
func Frame(img *tiff.Image, b contrast.Bounds) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
	for i, s := range img.Samples {
		out.Pix[i] = contrast.Map(s, b)
	}
	return out
}

// SetTitle implements input.Window.
func (v *View) SetTitle(title string) {
	v.window.SetTitle(title)
}

// Close implements input.Window.
func (v *View) Close() {
	v.window.Close()
}

// Start draws the first frame, routes key presses to h and shows the window.
// Every later frame is drawn when h reports a change.
func (v *View) Start(p *render.Presenter, h *input.Handler) {
	h.OnChange = func() { p.Frame(v) }
	v.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if name := keyName(ev.Name); name != "" {
			h.HandleKey(input.Key(name))
		}
	})
	p.Frame(v)
	v.window.Show()
}

// Run starts the view and blocks until the window is closed.
func (v *View) Run(p *render.Presenter, h *input.Handler) error {
	v.Start(p, h)
	v.app.Run()
	return nil
}

// Shutdown releases every retained image.
func (v *View) Shutdown() {
	for _, t := range v.textures {
		t.Release()
	}
	v.textures = nil
	v.bound = nil
}
