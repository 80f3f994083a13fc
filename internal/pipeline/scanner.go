package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/AnyUserName/imgopt/internal/policy"
	"github.com/charlievieth/fastwalk"
)

// ErrDirectoryNotFound is returned when the image root does not exist.
var ErrDirectoryNotFound = errors.New("directory not found")

// Source represents a discovered image file.
type Source struct {
	// AbsPath is the absolute path to the file on disk.
	AbsPath string
	// RelPath is the path relative to the root, using forward slashes.
	RelPath string
	// Ext is the lowercased extension including the dot.
	Ext string
	// Size is the file size in bytes.
	Size int64
}

// SiblingPath returns the output path for format beside the source:
// the same directory and stem with the format's extension.
func (s Source) SiblingPath(f policy.Format) string {
	return strings.TrimSuffix(s.AbsPath, filepath.Ext(s.AbsPath)) + "." + string(f)
}

// imageExtensions lists recognized source extensions.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// ScanImages walks root and returns all regular PNG/JPEG files, sorted by
// relative path. A missing root yields ErrDirectoryNotFound.
func ScanImages(root string) ([]Source, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, absRoot)
		}
		return nil, fmt.Errorf("stat %s: %w", absRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, absRoot)
	}

	var (
		mu      sync.Mutex
		sources []Source
	)
	conf := &fastwalk.Config{Follow: false}

	// fastwalk invokes the callback from multiple goroutines.
	err = fastwalk.Walk(conf, absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !imageExtensions[ext] {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}

		mu.Lock()
		sources = append(sources, Source{
			AbsPath: path,
			RelPath: filepath.ToSlash(relPath),
			Ext:     ext,
			Size:    fi.Size(),
		})
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].RelPath < sources[j].RelPath
	})
	return sources, nil
}
