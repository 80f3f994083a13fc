package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/AnyUserName/imgopt/internal/policy"
	"github.com/AnyUserName/imgopt/internal/report"
)

// processFile classifies a source and produces every output format for it.
// Each format is attempted even if an earlier one failed.
func (p *Pipeline) processFile(src Source) report.FileEntry {
	pol := policy.Classify(src.RelPath)
	entry := report.FileEntry{
		RelPath:       src.RelPath,
		Role:          string(pol.Role),
		OriginalBytes: src.Size,
	}

	for _, f := range policy.Formats {
		out, err := p.produce(src, pol, f)
		if err != nil {
			p.log.Error("%s: %v", src.RelPath, err)
			entry.Errors = append(entry.Errors, err.Error())
			continue
		}
		entry.Outputs = append(entry.Outputs, out)
	}
	return entry
}

// produce encodes one format of src and writes it beside the source.
func (p *Pipeline) produce(src Source, pol policy.Policy, f policy.Format) (out report.Output, err error) {
	// A decoder panic on a malformed source fails this output only.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	spec := policy.SpecFor(pol, f)
	res, err := p.transcoder.Encode(src.AbsPath, spec)
	if err != nil {
		return out, err
	}
	if res.Retried {
		p.log.Debug("%s: %s over %s budget, re-encoded at q%d (%s)",
			src.RelPath, f, report.FormatBytes(int64(spec.TargetMaxBytes)), res.Quality, report.FormatBytes(res.Size))
	}

	dst := src.SiblingPath(f)
	unchanged, err := writeOutput(dst, res.Data)
	if err != nil {
		return out, fmt.Errorf("write %s: %w", filepath.Base(dst), err)
	}

	return report.Output{
		Format:    string(f),
		Size:      res.Size,
		Width:     res.Width,
		Height:    res.Height,
		Quality:   res.Quality,
		Retried:   res.Retried,
		Unchanged: unchanged,
	}, nil
}
