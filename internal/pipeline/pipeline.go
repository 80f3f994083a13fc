package pipeline

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/AnyUserName/imgopt/internal/encoder"
	"github.com/AnyUserName/imgopt/internal/logging"
	"github.com/AnyUserName/imgopt/internal/report"
)

// Config holds all parameters for a batch run.
type Config struct {
	Root    string
	Workers int               // 0 = NumCPU
	Encoder *encoder.Registry // nil = probe cwebp/avifenc
	Logger  *logging.Logger   // nil = discard
}

// Pipeline orchestrates scan, skip, classify, encode and write.
type Pipeline struct {
	cfg        Config
	transcoder *encoder.Transcoder
	registry   *encoder.Registry
	log        *logging.Logger
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Encoder == nil {
		cfg.Encoder = encoder.NewRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	return &Pipeline{
		cfg:        cfg,
		transcoder: encoder.NewTranscoder(cfg.Encoder),
		registry:   cfg.Encoder,
		log:        cfg.Logger,
	}
}

// Run executes one batch and returns its summary. The only error it
// returns is a scan failure such as ErrDirectoryNotFound; per-file
// failures are logged and recorded in the summary.
func (p *Pipeline) Run() (*report.Summary, error) {
	// Step 1: Scan for images.
	sources, err := ScanImages(p.cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	p.log.Info("found %d images under %s", len(sources), p.cfg.Root)

	p.log.Debug("%s", p.registry.String())
	if missing := p.registry.Missing(); len(missing) > 0 {
		p.log.Warn("no encoder for %s; those outputs will fail", strings.Join(missing, ", "))
	}

	summary := report.New(p.cfg.Root)
	summary.FilesDiscovered = len(sources)

	// Step 2: Drop sources that need no work.
	var eligible []Source
	for _, src := range sources {
		ok, reason := ShouldProcess(src)
		switch reason {
		case SkipTooSmall:
			summary.SkippedSmall++
		case SkipConverted:
			summary.SkippedConverted++
		}
		if !ok {
			p.log.Debug("skip %s (%s)", src.RelPath, reason)
			continue
		}
		eligible = append(eligible, src)
	}
	summary.FilesEligible = len(eligible)
	p.log.Info("%d to convert, %d too small, %d already converted",
		len(eligible), summary.SkippedSmall, summary.SkippedConverted)

	// Step 3: Process eligible files on a bounded pool. Sources that share
	// a stem (a.jpg, a.png) write the same siblings, so each group runs on
	// one worker in scan order. Each worker owns its slots of results; the
	// summary is built after the pool drains.
	results := make([]report.FileEntry, len(eligible))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for _, group := range groupByStem(eligible) {
		wg.Add(1)
		go func(idxs []int) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			for _, idx := range idxs {
				p.log.Debug("processing: %s", eligible[idx].RelPath)
				results[idx] = p.processFile(eligible[idx])
			}
		}(group)
	}
	wg.Wait()

	// Step 4: Merge in scan order.
	for _, r := range results {
		summary.Add(r)
	}
	if summary.Failures > 0 {
		p.log.Warn("%d outputs failed across %d files", summary.Failures, len(eligible))
	}
	return summary, nil
}

// groupByStem returns indexes of sources grouped by output stem, groups in
// order of first appearance and indexes ascending within a group.
func groupByStem(sources []Source) [][]int {
	var groups [][]int
	byStem := make(map[string]int)
	for i, src := range sources {
		stem := strings.TrimSuffix(src.AbsPath, filepath.Ext(src.AbsPath))
		g, ok := byStem[stem]
		if !ok {
			g = len(groups)
			byStem[stem] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	return groups
}
