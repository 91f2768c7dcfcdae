package tiff

import (
	"bytes"
	"fmt"

	gtiff "github.com/google/tiff"
)

// Baseline tag IDs (TIFF 6.0, section 8).
const (
	tagImageWidth      = 256
	tagImageLength     = 257
	tagBitsPerSample   = 258
	tagCompression     = 259
	tagPhotometric     = 262
	tagSamplesPerPixel = 277
)

// PhotometricUnset marks a file without a PhotometricInterpretation tag.
const PhotometricUnset = -1

// Header holds the tag fields of the first image file directory that decide
// whether a file can be viewed.
type Header struct {
	Width           int
	Height          int
	BitsPerSample   int
	SamplesPerPixel int
	Compression     int
	Photometric     int
}

// Grayscale16 reports whether the header describes one 16-bit sample per pixel.
func (h Header) Grayscale16() bool {
	return h.BitsPerSample == 16 && h.SamplesPerPixel == 1
}

var compressionNames = map[int]string{
	1:     "none",
	2:     "CCITT",
	5:     "LZW",
	7:     "JPEG",
	8:     "Deflate",
	32773: "PackBits",
	32946: "Deflate",
}

var photometricNames = map[int]string{
	PhotometricUnset: "unset",
	0:                "WhiteIsZero",
	1:                "BlackIsZero",
	2:                "RGB",
	3:                "Palette",
}

// Encoding describes the compression and photometric interpretation, e.g.
// "LZW/BlackIsZero".
func (h Header) Encoding() string {
	c, ok := compressionNames[h.Compression]
	if !ok {
		c = fmt.Sprintf("compression(%d)", h.Compression)
	}
	p, ok := photometricNames[h.Photometric]
	if !ok {
		p = fmt.Sprintf("photometric(%d)", h.Photometric)
	}
	return c + "/" + p
}

// ReadHeader parses the first IFD of an in-memory TIFF file.
func ReadHeader(data []byte) (Header, error) {
	t, err := gtiff.Parse(bytes.NewReader(data), nil, nil)
	if err != nil {
		return Header{}, err
	}
	ifds := t.IFDs()
	if len(ifds) == 0 {
		return Header{}, fmt.Errorf("no image file directory")
	}
	ifd := ifds[0]

	// BitsPerSample, SamplesPerPixel and Compression default to 1 when absent.
	h := Header{BitsPerSample: 1, SamplesPerPixel: 1, Compression: 1, Photometric: PhotometricUnset}

	var ok bool
	if h.Width, ok = firstValue(ifd, tagImageWidth); !ok {
		return Header{}, fmt.Errorf("missing ImageWidth")
	}
	if h.Height, ok = firstValue(ifd, tagImageLength); !ok {
		return Header{}, fmt.Errorf("missing ImageLength")
	}
	if v, ok := firstValue(ifd, tagBitsPerSample); ok {
		h.BitsPerSample = v
	}
	if v, ok := firstValue(ifd, tagSamplesPerPixel); ok {
		h.SamplesPerPixel = v
	}
	if v, ok := firstValue(ifd, tagCompression); ok {
		h.Compression = v
	}
	if v, ok := firstValue(ifd, tagPhotometric); ok {
		h.Photometric = v
	}
	return h, nil
}

// firstValue decodes the first element of a BYTE, SHORT or LONG field.
func firstValue(ifd gtiff.IFD, tag uint16) (int, bool) {
	if !ifd.HasField(tag) {
		return 0, false
	}
	f := ifd.GetField(tag)
	if f == nil || f.Count() == 0 {
		return 0, false
	}

	v := f.Value()
	b := v.Bytes()
	size := int(f.Type().Size())
	if size == 0 || len(b) < size {
		return 0, false
	}

	switch size {
	case 1:
		return int(b[0]), true
	case 2:
		return int(v.Order().Uint16(b[:2])), true
	case 4:
		return int(v.Order().Uint32(b[:4])), true
	}
	return 0, false
}
