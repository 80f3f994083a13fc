package pipeline

import (
	"os"

	"github.com/AnyUserName/imgopt/internal/policy"
)

// MinSourceBytes is the size below which a source is not worth converting.
const MinSourceBytes = 50 * 1024

// SkipReason explains why a source was not processed.
type SkipReason string

const (
	SkipNone      SkipReason = ""
	SkipTooSmall  SkipReason = "too-small"
	SkipConverted SkipReason = "converted"
)

// ShouldProcess decides whether src needs encoding. A source is skipped
// when it is under MinSourceBytes or when every output sibling already
// exists. A partial set of siblings is regenerated in full.
func ShouldProcess(src Source) (bool, SkipReason) {
	if src.Size < MinSourceBytes {
		return false, SkipTooSmall
	}
	for _, f := range policy.Formats {
		if !fileExists(src.SiblingPath(f)) {
			return true, SkipNone
		}
	}
	return false, SkipConverted
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
