package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

// writeOutput writes data to path, creating the parent directory if needed.
// If the file already holds identical bytes it is left untouched and
// unchanged is true.
func writeOutput(path string, data []byte) (unchanged bool, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create dir: %w", err)
	}
	if sameContent(path, data) {
		return true, nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return false, nil
}

// sameContent compares the xxHash64 of the file at path with that of data.
// Unreadable or missing files never match.
func sameContent(path string, data []byte) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.Size() != int64(len(data)) {
		return false
	}
	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return false
	}
	return h.Sum64() == xxhash.Sum64(data)
}
