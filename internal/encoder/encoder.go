package encoder

import (
	"errors"
	"fmt"
	"image"

	"github.com/AnyUserName/imgopt/internal/policy"
)

// Encoder encodes an image to a specific format.
type Encoder interface {
	// Format returns the output format this encoder produces.
	Format() policy.Format

	// Encode converts the image to bytes at the given quality (1-100),
	// using the encoder's slowest, densest setting.
	Encode(img image.Image, quality int) ([]byte, error)

	// Available returns true if the encoder is ready to use.
	// External encoders (cwebp, avifenc) may not be installed.
	Available() bool
}

var (
	// ErrUnsupportedFormat is returned for sources that are not PNG or JPEG data.
	ErrUnsupportedFormat = errors.New("unsupported source format")
	// ErrNoEncoder is returned when no encoder is registered for a format.
	ErrNoEncoder = errors.New("no encoder available")
)

// EncodeError wraps any failure to produce one output of one source.
type EncodeError struct {
	Path   string
	Format policy.Format
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s as %s: %v", e.Path, e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
