package encoder

import (
	"fmt"
	"image"

	"github.com/AnyUserName/imgopt/internal/policy"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

// Result is one encoded output.
type Result struct {
	Data    []byte
	Size    int64
	Width   int
	Height  int
	Quality int  // quality of the accepted encode
	Retried bool // true if the size-budget retry ran
}

// attempt is the state of the size-budget retry for one encode.
type attempt int

const (
	attemptInitial attempt = iota
	attemptRetried
	attemptAccepted
)

// sourceTypes are the MIME types a source may carry. Subtypes such as
// APNG are accepted through their parent.
var sourceTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}

// Transcoder turns source files into encoded outputs using a Registry.
type Transcoder struct {
	registry *Registry
}

// NewTranscoder creates a transcoder backed by the given registry.
func NewTranscoder(r *Registry) *Transcoder {
	return &Transcoder{registry: r}
}

// Encode loads path, downsizes it to spec.MaxWidth and encodes it to
// spec.Format. All failures are returned as *EncodeError.
//
// A budgeted WebP encode that comes out larger than spec.TargetMaxBytes is
// re-encoded exactly once at spec.RetryQuality(); that result is accepted
// whatever its size.
func (t *Transcoder) Encode(path string, spec policy.EncodeSpec) (Result, error) {
	fail := func(err error) (Result, error) {
		return Result{}, &EncodeError{Path: path, Format: spec.Format, Err: err}
	}

	enc := t.registry.Get(spec.Format)
	if enc == nil {
		return fail(ErrNoEncoder)
	}

	img, err := Load(path)
	if err != nil {
		return fail(err)
	}
	img = Fit(img, spec.MaxWidth)

	var (
		data    []byte
		state   = attemptInitial
		quality = spec.Quality
		retried bool
	)
	for state != attemptAccepted {
		data, err = enc.Encode(img, quality)
		if err != nil {
			return fail(err)
		}
		if state == attemptInitial && spec.HasBudget() && len(data) > spec.TargetMaxBytes {
			state = attemptRetried
			quality = spec.RetryQuality()
			retried = true
			continue
		}
		state = attemptAccepted
	}

	b := img.Bounds()
	return Result{
		Data:    data,
		Size:    int64(len(data)),
		Width:   b.Dx(),
		Height:  b.Dy(),
		Quality: quality,
		Retried: retried,
	}, nil
}

// Load decodes a PNG or JPEG source with its EXIF orientation applied.
func Load(path string) (image.Image, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("sniff: %w", err)
	}
	if !isSourceType(mt) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mt.String())
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

func isSourceType(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if sourceTypes[m.String()] {
			return true
		}
	}
	return false
}

// Fit downsizes img to maxWidth, preserving aspect ratio. Images already
// at or below maxWidth, or a zero maxWidth, are returned unchanged.
func Fit(img image.Image, maxWidth int) image.Image {
	if maxWidth <= 0 || img.Bounds().Dx() <= maxWidth {
		return img
	}
	return imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
}
