package report

// Summary is the result of one batch run.
type Summary struct {
	Version     int    `json:"version"`
	GeneratedAt string `json:"generated_at"`
	Root        string `json:"root"`

	FilesDiscovered  int `json:"files_discovered"`
	FilesEligible    int `json:"files_eligible"`
	SkippedSmall     int `json:"skipped_small"`     // below the size threshold
	SkippedConverted int `json:"skipped_converted"` // both siblings already present

	Files []FileEntry `json:"files"`

	TotalOriginalBytes int64 `json:"total_original_bytes"`
	TotalNewBytes      int64 `json:"total_new_bytes"` // all formats combined
	Retries            int   `json:"retries"`         // size-budget re-encodes
	Failures           int   `json:"failures"`        // failed (file, format) pairs
}

// FileEntry describes one eligible source and the outputs produced for it.
type FileEntry struct {
	RelPath       string   `json:"rel_path"`
	Role          string   `json:"role"`
	OriginalBytes int64    `json:"original_bytes"`
	Outputs       []Output `json:"outputs"`
	Errors        []string `json:"errors,omitempty"`
}

// Output is one encoded sibling of a source.
type Output struct {
	Format    string `json:"format"` // "webp", "avif"
	Size      int64  `json:"size"`   // bytes on disk
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Quality   int    `json:"quality"`
	Retried   bool   `json:"retried,omitempty"`
	Unchanged bool   `json:"unchanged,omitempty"` // identical bytes were already on disk
}

// SupportedVersion is the current schema version of the JSON summary.
const SupportedVersion = 1

// Output returns the output for format, if one was produced.
func (e FileEntry) Output(format string) (Output, bool) {
	for _, o := range e.Outputs {
		if o.Format == format {
			return o, true
		}
	}
	return Output{}, false
}

// Add appends a file entry and folds it into the running totals. The
// original size counts once per file, each output counts separately.
func (s *Summary) Add(e FileEntry) {
	s.Files = append(s.Files, e)
	s.TotalOriginalBytes += e.OriginalBytes
	for _, o := range e.Outputs {
		s.TotalNewBytes += o.Size
		if o.Retried {
			s.Retries++
		}
	}
	s.Failures += len(e.Errors)
}

// Processed returns the number of files that went through encoding.
func (s *Summary) Processed() int {
	return len(s.Files)
}

// Reduction returns the approximate single-format saving in percent:
//
//	(1 - (TotalNewBytes/2) / (TotalOriginalBytes/Processed)) * 100
//
// This compares half the combined output against the average source, not
// total bytes against total bytes. ok is false when nothing was processed.
func (s *Summary) Reduction() (pct float64, ok bool) {
	n := s.Processed()
	if n == 0 || s.TotalOriginalBytes == 0 {
		return 0, false
	}
	avgOriginal := float64(s.TotalOriginalBytes) / float64(n)
	return (1 - (float64(s.TotalNewBytes)/2)/avgOriginal) * 100, true
}
