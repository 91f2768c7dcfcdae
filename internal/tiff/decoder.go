// Package tiff reads 16-bit single channel TIFF files into raw sample grids.
//
// Tag fields come from github.com/google/tiff and are checked before any
// pixel data is read. Samples are decoded with golang.org/x/image/tiff.
// Inputs ending in ".zst" are decompressed in memory first.
package tiff

import (
	"bytes"
	"image"
	"os"
	"strings"

	"tiffview/internal/errors"

	"github.com/klauspost/compress/zstd"
	xtiff "golang.org/x/image/tiff"
)

// CompressedSuffix marks inputs that are zstd-compressed TIFF files.
const CompressedSuffix = ".zst"

// Decoder turns file paths into Images.
type Decoder struct{}

// NewDecoder creates a decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Header reads and parses only the tag fields of path.
func (d *Decoder) Header(path string) (Header, error) {
	data, err := d.read(path)
	if err != nil {
		return Header{}, err
	}
	h, err := ReadHeader(data)
	if err != nil {
		return Header{}, errors.NewFileError("not a readable TIFF file", path, errors.CorruptData, err)
	}
	return h, nil
}

// Decode reads path and returns its samples. Files that are not exactly one
// 16-bit sample per pixel fail with an *errors.FormatError; unreadable files and
// broken pixel data fail with an *errors.FileError. No Image is returned on
// failure.
func (d *Decoder) Decode(path string) (*Image, error) {
	data, err := d.read(path)
	if err != nil {
		return nil, err
	}

	h, err := ReadHeader(data)
	if err != nil {
		return nil, errors.NewFileError("not a readable TIFF file", path, errors.CorruptData, err)
	}
	if !h.Grayscale16() {
		return nil, errors.NewFormatError(path, h.BitsPerSample, h.SamplesPerPixel)
	}
	if h.Width <= 0 || h.Height <= 0 {
		return nil, errors.NewFileError("image has no pixels", path, errors.CorruptData, nil)
	}

	m, err := xtiff.Decode(bytes.NewReader(data))
	if err != nil {
		if _, ok := err.(xtiff.UnsupportedError); ok {
			return nil, errors.NewFileError("unsupported TIFF encoding", path, errors.UnsupportedFormat, err)
		}
		return nil, errors.NewFileError("error reading image data", path, errors.CorruptData, err)
	}

	g, ok := m.(*image.Gray16)
	if !ok {
		return nil, errors.NewFormatError(path, h.BitsPerSample, h.SamplesPerPixel)
	}

	img := FromGray16(g)
	if h.Photometric == PhotometricUnset {
		// x/image reads a missing tag as WhiteIsZero; keep the stored values.
		for i, v := range img.Samples {
			img.Samples[i] = 0xffff - v
		}
	}
	if img.Width != h.Width || img.Height != h.Height || len(img.Samples) != h.Width*h.Height {
		return nil, errors.NewFileError("decoded size does not match header", path, errors.CorruptData, nil)
	}
	return img, nil
}

func (d *Decoder) read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		kind := errors.FileReadFailed
		switch {
		case os.IsNotExist(err):
			kind = errors.FileNotFound
		case os.IsPermission(err):
			kind = errors.FileAccessDenied
		}
		return nil, errors.NewFileError("could not open TIFF file", path, kind, err)
	}

	if !strings.HasSuffix(strings.ToLower(path), CompressedSuffix) {
		return data, nil
	}

	// A single decoder goroutine keeps decompression synchronous.
	zr, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, errors.NewFileError("could not create zstd decoder", path, errors.FileReadFailed, err)
	}
	defer zr.Close()

	out, err := zr.DecodeAll(data, nil)
	if err != nil {
		return nil, errors.NewFileError("could not decompress file", path, errors.CorruptData, err)
	}
	return out, nil
}
