package glview

import (
	"fmt"

	"tiffview/internal/catalog"
	"tiffview/internal/errors"
	"tiffview/internal/log"
	"tiffview/internal/tiff"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type texture struct {
	id       uint32
	released bool
}

// Release deletes the GL texture. Later calls do nothing.
func (t *texture) Release() {
	if t.released {
		return
	}
	t.released = true
	gl.DeleteTextures(1, &t.id)
}

// Upload implements catalog.Uploader. Images larger than the texture limit
// are scaled down first; samples are uploaded as single channel R16.
func (v *View) Upload(name string, img *tiff.Image) (catalog.Texture, error) {
	if img.Width > v.maxTexture || img.Height > v.maxTexture {
		log.LogWithFields(
			log.F("path", name),
			log.F("width", img.Width),
			log.F("height", img.Height),
			log.F("limit", v.maxTexture),
		).Warn("Image exceeds texture limit, scaling down")
		img = img.Fit(v.maxTexture)
	}

	t := &texture{}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, v.filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, v.filter)

	// Rows of 16-bit samples are only guaranteed 2-byte aligned
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 2)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R16, int32(img.Width), int32(img.Height), 0,
		gl.RED, gl.UNSIGNED_SHORT, gl.Ptr(&img.Samples[0]))

	if code := gl.GetError(); code != gl.NO_ERROR {
		t.Release()
		return nil, errors.NewFileError("could not upload texture", name, errors.TextureUploadFailed,
			fmt.Errorf("GL error 0x%04x", code))
	}

	v.textures = append(v.textures, t)
	return t, nil
}
