package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileError(t *testing.T) {
	fileErr := NewFileError("could not open TIFF file", "/data/a.tif", FileAccessDenied, nil)
	assert.Equal(t, "could not open TIFF file: /data/a.tif", fileErr.Error())
	assert.Equal(t, "/data/a.tif", fileErr.Path())
	assert.Equal(t, FileAccessDenied, fileErr.Kind())

	origErr := fmt.Errorf("permission denied")
	fileErr = NewFileError("could not open TIFF file", "/data/a.tif", FileAccessDenied, origErr)
	assert.Equal(t, "could not open TIFF file: /data/a.tif: permission denied", fileErr.Error())
	assert.Equal(t, origErr, errors.Unwrap(fileErr))

	notFound := NewFileError("could not open TIFF file", "/missing.tif", FileNotFound, nil)
	assert.True(t, IsFileNotFound(notFound))
	assert.False(t, IsFileNotFound(fileErr))

	corrupt := NewFileError("error reading image data", "/data/b.tif", CorruptData, origErr)
	assert.True(t, IsCorruptData(corrupt))
	assert.False(t, IsCorruptData(fileErr))

	var fe *FileError
	assert.True(t, As(corrupt, &fe))
	assert.Equal(t, "/data/b.tif", fe.Path())
}

func TestFormatError(t *testing.T) {
	formatErr := NewFormatError("/data/rgb.tif", 8, 3)
	assert.Equal(t, UnsupportedFormat, formatErr.Kind())
	assert.Equal(t, "/data/rgb.tif", formatErr.Path())
	assert.Equal(t, 8, formatErr.BitsPerSample())
	assert.Equal(t, 3, formatErr.SamplesPerPixel())
	assert.Contains(t, formatErr.Error(), "/data/rgb.tif")
	assert.Contains(t, formatErr.Error(), "BitsPerSample: 8")
	assert.Contains(t, formatErr.Error(), "SamplesPerPixel: 3")

	assert.True(t, IsUnsupportedFormat(formatErr))
	assert.True(t, IsUnsupportedFormat(fmt.Errorf("skipping: %w", formatErr)))
	assert.False(t, IsUnsupportedFormat(NewFileError("x", "y", CorruptData, nil)))
	assert.Equal(t, UnsupportedFormat, KindOf(fmt.Errorf("skipping: %w", formatErr)))
}

func TestConfigError(t *testing.T) {
	configErr := NewConfigError("invalid value", "display.backend", InvalidConfig, nil)
	assert.Equal(t, "invalid value: display.backend", configErr.Error())
	assert.Equal(t, "display.backend", configErr.Param())
	assert.Equal(t, InvalidConfig, configErr.Kind())

	origErr := fmt.Errorf("unknown backend vulkan")
	configErr = NewConfigError("invalid value", "display.backend", InvalidConfig, origErr)
	assert.Equal(t, "invalid value: display.backend: unknown backend vulkan", configErr.Error())
	assert.Equal(t, origErr, errors.Unwrap(configErr))

	assert.Equal(t, "invalid configuration", ErrInvalidConfig.Error())
	assert.True(t, IsInvalidConfig(configErr))
	assert.False(t, IsInvalidConfig(errors.New("some other error")))
}

func TestDisplayError(t *testing.T) {
	infoLog := fmt.Errorf("0:3(1): error: syntax error")
	displayErr := NewDisplayError("failed to compile shader", "fragment", ShaderCompileFailed, infoLog)
	assert.Equal(t, "failed to compile shader: fragment: 0:3(1): error: syntax error", displayErr.Error())
	assert.Equal(t, "fragment", displayErr.Stage())
	assert.True(t, IsDisplayError(displayErr))
	assert.False(t, IsDisplayError(infoLog))
	assert.Equal(t, ShaderCompileFailed, KindOf(displayErr))
}

func TestNoImagesLoaded(t *testing.T) {
	assert.True(t, IsNoImagesLoaded(ErrNoImagesLoaded))
	assert.True(t, IsNoImagesLoaded(fmt.Errorf("startup: %w", ErrNoImagesLoaded)))
	assert.False(t, IsNoImagesLoaded(errors.New("other")))
}

func TestErrorChains(t *testing.T) {
	baseErr := errors.New("unexpected EOF")
	fileErr := NewFileError("error reading image data", "/data/c.tif", CorruptData, baseErr)
	wrapped := fmt.Errorf("skipping %s: %w", "c.tif", fileErr)

	assert.Equal(t, "skipping c.tif: error reading image data: /data/c.tif: unexpected EOF", wrapped.Error())
	assert.True(t, Is(wrapped, baseErr))
	assert.True(t, IsCorruptData(wrapped))
	assert.Equal(t, CorruptData, KindOf(wrapped))

	var fe *FileError
	assert.True(t, As(wrapped, &fe))
	assert.Equal(t, "/data/c.tif", fe.Path())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "unsupported_format", UnsupportedFormat.String())
	assert.Equal(t, "no_images_loaded", NoImagesLoaded.String())
	assert.Equal(t, "kind(99)", ErrorKind(99).String())
}
