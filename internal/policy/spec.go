package policy

// Format is an output image format.
type Format string

const (
	FormatWebP Format = "webp"
	FormatAVIF Format = "avif"
)

// Formats lists the outputs produced for every eligible source, in the
// order they are attempted.
var Formats = []Format{FormatWebP, FormatAVIF}

// HeroWebPBudget is the byte budget for hero WebP outputs.
const HeroWebPBudget = 150 * 1024

// MinRetryQuality is the quality floor for the size-budget retry.
const MinRetryQuality = 60

// RetryQualityStep is how far quality drops on the size-budget retry.
const RetryQualityStep = 15

// EncodeSpec describes one encode of one source.
type EncodeSpec struct {
	Format         Format
	Quality        int // 1-100
	MaxWidth       int // 0 = keep source width
	TargetMaxBytes int // 0 = no budget
}

type qualityKey struct {
	hero   bool
	format Format
}

var qualities = map[qualityKey]int{
	{true, FormatWebP}:  78,
	{true, FormatAVIF}:  58,
	{false, FormatWebP}: 75,
	{false, FormatAVIF}: 55,
}

// SpecFor builds the encode spec for a policy and output format.
func SpecFor(p Policy, f Format) EncodeSpec {
	s := EncodeSpec{
		Format:   f,
		Quality:  qualities[qualityKey{p.Hero, f}],
		MaxWidth: p.MaxWidth,
	}
	if p.Hero && f == FormatWebP {
		s.TargetMaxBytes = HeroWebPBudget
	}
	return s
}

// RetryQuality returns the quality used for the single over-budget retry.
func (s EncodeSpec) RetryQuality() int {
	q := s.Quality - RetryQualityStep
	if q < MinRetryQuality {
		q = MinRetryQuality
	}
	return q
}

// HasBudget reports whether the spec is subject to the size-budget retry.
func (s EncodeSpec) HasBudget() bool {
	return s.TargetMaxBytes > 0 && s.Format == FormatWebP
}
