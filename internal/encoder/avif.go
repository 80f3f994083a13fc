package encoder

import (
	"fmt"
	"image"
	"os/exec"
	"strconv"
	"sync"

	"github.com/AnyUserName/imgopt/internal/policy"
)

// AVIFEncoder encodes images to AVIF by shelling out to avifenc.
// Install: brew install libavif / apt install libavif-bin
type AVIFEncoder struct {
	once        sync.Once
	available   bool
	avifencPath string
}

func (e *AVIFEncoder) Format() policy.Format { return policy.FormatAVIF }

func (e *AVIFEncoder) Available() bool {
	e.once.Do(func() {
		path, err := exec.LookPath("avifenc")
		if err == nil {
			e.available = true
			e.avifencPath = path
		}
	})
	return e.available
}

func (e *AVIFEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	if !e.Available() {
		return nil, fmt.Errorf("avifenc not found in PATH; install with: brew install libavif")
	}
	return runTool(img, "avif", func(src, dst string) *exec.Cmd {
		return exec.Command(e.avifencPath,
			"-q", strconv.Itoa(clampQuality(quality)), // 0-100, higher = better
			"--speed", "0", // 0=slowest/densest, 10=fastest
			"-j", "all",
			src,
			dst,
		)
	})
}
