package catalog

import (
	"tiffview/internal/contrast"
	"tiffview/internal/errors"
	"tiffview/internal/log"
	"tiffview/internal/tiff"
)

// Decoder reads one file into samples.
type Decoder interface {
	Decode(path string) (*tiff.Image, error)
}

// Uploader hands decoded samples to the display and returns the handle that
// refers to them from then on.
type Uploader interface {
	Upload(name string, img *tiff.Image) (Texture, error)
}

// Result is the outcome of loading one path.
type Result struct {
	Path   string
	Width  int
	Height int
	Raw    contrast.Range
	Bounds contrast.Bounds
	Err    error
}

// OK reports whether the path was loaded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Loader builds a catalog from file paths.
type Loader struct {
	decoder  Decoder
	uploader Uploader
}

// NewLoader creates a loader.
func NewLoader(decoder Decoder, uploader Uploader) *Loader {
	return &Loader{decoder: decoder, uploader: uploader}
}

// Load decodes, analyzes and uploads every path in order. A path that fails
// is logged once and skipped. When nothing loads the error is
// errors.ErrNoImagesLoaded and the catalog is nil. Results always cover
// every path.
func (l *Loader) Load(paths []string, autoContrast bool) (*Catalog, []Result, error) {
	var entries []Entry
	results := make([]Result, 0, len(paths))

	for _, path := range paths {
		entry, err := l.loadOne(path)
		res := Result{Path: path, Err: err}
		if err != nil {
			log.LogWithError(err).Error("Skipping image")
			results = append(results, res)
			continue
		}

		res.Width, res.Height = entry.Width, entry.Height
		res.Raw, res.Bounds = entry.Raw, entry.Bounds
		results = append(results, res)
		entries = append(entries, entry)

		log.LogWithFields(
			log.F("path", path),
			log.F("width", entry.Width),
			log.F("height", entry.Height),
			log.F("min", entry.Bounds.Min),
			log.F("max", entry.Bounds.Max),
		).Debug("Loaded image")
	}

	if len(entries) == 0 {
		return nil, results, errors.ErrNoImagesLoaded
	}

	c, err := New(entries, autoContrast)
	if err != nil {
		return nil, results, err
	}
	log.Infof("Loaded %d of %d images", len(entries), len(paths))
	return c, results, nil
}

func (l *Loader) loadOne(path string) (Entry, error) {
	img, err := l.decoder.Decode(path)
	if err != nil {
		return Entry{}, err
	}

	raw := contrast.Scan(img.Samples)
	entry := Entry{
		Name:   path,
		Bounds: contrast.Normalize(raw),
		Width:  img.Width,
		Height: img.Height,
		Raw:    raw,
	}

	tex, err := l.uploader.Upload(path, img)
	if err != nil {
		if errors.KindOf(err) == errors.Unknown {
			err = errors.NewFileError("could not upload texture", path, errors.TextureUploadFailed, err)
		}
		return Entry{}, err
	}
	entry.Texture = tex
	return entry, nil
}

// NopUploader accepts every image without keeping it.
type NopUploader struct{}

// Upload implements Uploader.
func (NopUploader) Upload(string, *tiff.Image) (Texture, error) {
	return nopTexture{}, nil
}

type nopTexture struct{}

func (nopTexture) Release() {}
