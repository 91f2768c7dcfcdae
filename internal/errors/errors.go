// Package errors provides standardized error handling for tiffview.
// It defines the error kinds used across decoding, configuration and display
// setup, plus helpers for consistent creation, wrapping and classification.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	FileAccessDenied
	FileReadFailed
	CorruptData
	UnsupportedFormat
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	// Display error kinds
	DisplayInitFailed
	ShaderCompileFailed
	ShaderLinkFailed
	TextureUploadFailed
	// Aggregate error kinds
	NoImagesLoaded
)

var kindNames = map[ErrorKind]string{
	Unknown:             "unknown",
	FileNotFound:        "file_not_found",
	FileAccessDenied:    "file_access_denied",
	FileReadFailed:      "file_read_failed",
	CorruptData:         "corrupt_data",
	UnsupportedFormat:   "unsupported_format",
	InvalidConfig:       "invalid_config",
	ConfigNotFound:      "config_not_found",
	DisplayInitFailed:   "display_init_failed",
	ShaderCompileFailed: "shader_compile_failed",
	ShaderLinkFailed:    "shader_link_failed",
	TextureUploadFailed: "texture_upload_failed",
	NoImagesLoaded:      "no_images_loaded",
}

// String returns a stable, log-friendly name for the kind.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Common error constants for frequently occurring errors
var (
	ErrNoImagesLoaded = &ApplicationError{msg: "no valid TIFF images were loaded", kind: NoImagesLoaded}
	ErrInvalidConfig  = NewConfigError("invalid configuration", "", InvalidConfig, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to reading and decoding a single input file
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// FormatError reports a TIFF whose sample layout is not 16-bit single channel.
type FormatError struct {
	FileError
	bitsPerSample   int
	samplesPerPixel int
}

// NewFormatError creates a new unsupported format error
func NewFormatError(path string, bitsPerSample, samplesPerPixel int) *FormatError {
	return &FormatError{
		FileError: FileError{
			ApplicationError: ApplicationError{
				msg:  "unsupported TIFF format, only 16-bit grayscale is supported",
				kind: UnsupportedFormat,
			},
			path: path,
		},
		bitsPerSample:   bitsPerSample,
		samplesPerPixel: samplesPerPixel,
	}
}

// Error returns the format error message
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s (BitsPerSample: %d, SamplesPerPixel: %d)",
		e.msg, e.path, e.bitsPerSample, e.samplesPerPixel)
}

// BitsPerSample returns the observed bit depth
func (e *FormatError) BitsPerSample() int {
	return e.bitsPerSample
}

// SamplesPerPixel returns the observed channel count
func (e *FormatError) SamplesPerPixel() int {
	return e.samplesPerPixel
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// DisplayError represents failures while bringing up the window, the GPU
// context or the shader program.
type DisplayError struct {
	ApplicationError
	stage string
}

// NewDisplayError creates a new display error
func NewDisplayError(msg string, stage string, kind ErrorKind, err error) *DisplayError {
	return &DisplayError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		stage: stage,
	}
}

// Error returns the display error message
func (e *DisplayError) Error() string {
	if e.stage != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.stage, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.stage)
	}
	return e.ApplicationError.Error()
}

// Stage returns the setup stage that failed
func (e *DisplayError) Stage() string {
	return e.stage
}

type kinded interface {
	Kind() ErrorKind
}

// KindOf returns the kind of the first classified error in err's chain.
func KindOf(err error) ErrorKind {
	for err != nil {
		if k, ok := err.(kinded); ok && k.Kind() != Unknown {
			return k.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// hasKind reports whether any error in err's chain carries kind.
func hasKind(err error, kind ErrorKind) bool {
	for err != nil {
		if k, ok := err.(kinded); ok && k.Kind() == kind {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	return hasKind(err, FileNotFound)
}

// IsUnsupportedFormat checks if the error rejects a TIFF layout or encoding
// that cannot be viewed
func IsUnsupportedFormat(err error) bool {
	return hasKind(err, UnsupportedFormat)
}

// IsCorruptData checks if the error is a failure while decoding image data
func IsCorruptData(err error) bool {
	return hasKind(err, CorruptData)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsDisplayError checks if the error came from display setup
func IsDisplayError(err error) bool {
	var displayErr *DisplayError
	return errors.As(err, &displayErr)
}

// IsNoImagesLoaded checks if the error reports that every input was skipped
func IsNoImagesLoaded(err error) bool {
	return hasKind(err, NoImagesLoaded)
}
