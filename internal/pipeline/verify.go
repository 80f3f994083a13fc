package pipeline

import (
	"fmt"
	"os"

	"github.com/AnyUserName/imgopt/internal/policy"
	"golang.org/x/image/webp"
)

// Problem is one finding of Verify.
type Problem struct {
	RelPath string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.RelPath, p.Message)
}

// Verify checks that every source large enough to be converted has both
// output siblings, and that each WebP sibling decodes and is no wider than
// the source's role allows.
func Verify(root string) ([]Problem, error) {
	sources, err := ScanImages(root)
	if err != nil {
		return nil, err
	}

	var problems []Problem
	for _, src := range sources {
		if src.Size < MinSourceBytes {
			continue
		}
		for _, f := range policy.Formats {
			if !fileExists(src.SiblingPath(f)) {
				problems = append(problems, Problem{src.RelPath, fmt.Sprintf("missing %s output", f)})
			}
		}

		webpPath := src.SiblingPath(policy.FormatWebP)
		if !fileExists(webpPath) {
			continue
		}
		width, err := webpWidth(webpPath)
		if err != nil {
			problems = append(problems, Problem{src.RelPath, fmt.Sprintf("unreadable webp output: %v", err)})
			continue
		}
		if limit := policy.Classify(src.RelPath).MaxWidth; width > limit {
			problems = append(problems, Problem{src.RelPath, fmt.Sprintf("webp output is %dpx wide, role allows %dpx", width, limit)})
		}
	}
	return problems, nil
}

func webpWidth(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	cfg, err := webp.DecodeConfig(f)
	if err != nil {
		return 0, err
	}
	return cfg.Width, nil
}
