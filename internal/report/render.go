package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Placeholder stands in for an output that was not produced.
const Placeholder = "-"

var (
	colorAccent = lipgloss.Color("#88C0D0")
	colorDim    = lipgloss.Color("#7A8291")
	colorWarn   = lipgloss.Color("#EBCB8B")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle = lipgloss.NewStyle().Foreground(colorDim)
	warnStyle  = lipgloss.NewStyle().Foreground(colorWarn)
)

// Render formats the summary for the console: a header, one line per
// processed file and the aggregate block.
func Render(s *Summary) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Image optimization complete") + "\n")
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("Root:      "), s.Root)
	fmt.Fprintf(&b, "  %s %d discovered, %d eligible, %d skipped (%d small, %d converted)\n",
		labelStyle.Render("Files:     "),
		s.FilesDiscovered, s.FilesEligible,
		s.SkippedSmall+s.SkippedConverted, s.SkippedSmall, s.SkippedConverted)
	b.WriteString("\n")

	if len(s.Files) > 0 {
		width := len("file")
		for _, f := range s.Files {
			if len(f.RelPath) > width {
				width = len(f.RelPath)
			}
		}
		fmt.Fprintf(&b, "  %s\n", labelStyle.Render(fmt.Sprintf("%-*s  %10s  %10s  %10s", width, "file", "original", "webp", "avif")))
		for _, f := range s.Files {
			fmt.Fprintf(&b, "  %-*s  %10s  %10s  %10s\n",
				width, f.RelPath,
				FormatBytes(f.OriginalBytes),
				outputSize(f, "webp"),
				outputSize(f, "avif"),
			)
			for _, e := range f.Errors {
				fmt.Fprintf(&b, "    %s\n", warnStyle.Render("! "+e))
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "  %s %d\n", labelStyle.Render("Processed: "), s.Processed())
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("Original:  "), FormatBytes(s.TotalOriginalBytes))
	fmt.Fprintf(&b, "  %s %s (webp + avif)\n", labelStyle.Render("New:       "), FormatBytes(s.TotalNewBytes))
	if pct, ok := s.Reduction(); ok {
		fmt.Fprintf(&b, "  %s ~%.1f%%\n", labelStyle.Render("Reduction: "), pct)
	} else {
		fmt.Fprintf(&b, "  %s n/a\n", labelStyle.Render("Reduction: "))
	}
	if s.Retries > 0 {
		fmt.Fprintf(&b, "  %s %d (over size budget)\n", labelStyle.Render("Retries:   "), s.Retries)
	}
	if s.Failures > 0 {
		fmt.Fprintf(&b, "  %s\n", warnStyle.Render(fmt.Sprintf("Failures:   %d outputs", s.Failures)))
	}
	return b.String()
}

func outputSize(f FileEntry, format string) string {
	o, ok := f.Output(format)
	if !ok {
		return Placeholder
	}
	return FormatBytes(o.Size)
}

// FormatBytes returns a human-readable IEC size, e.g. "150 KiB".
func FormatBytes(n int64) string {
	if n < 0 {
		return "-" + humanize.IBytes(uint64(-n))
	}
	return humanize.IBytes(uint64(n))
}

// Breakdown is an aggregate over one grouping key.
type Breakdown struct {
	Key   string
	Count int
	Bytes int64
}

// ByFormat aggregates output counts and sizes per format.
func ByFormat(s *Summary) []Breakdown {
	m := map[string]*Breakdown{}
	for _, f := range s.Files {
		for _, o := range f.Outputs {
			add(m, o.Format, o.Size)
		}
	}
	return sorted(m)
}

// ByRole aggregates source counts and original sizes per role.
func ByRole(s *Summary) []Breakdown {
	m := map[string]*Breakdown{}
	for _, f := range s.Files {
		add(m, f.Role, f.OriginalBytes)
	}
	return sorted(m)
}

func add(m map[string]*Breakdown, key string, n int64) {
	b, ok := m[key]
	if !ok {
		b = &Breakdown{Key: key}
		m[key] = b
	}
	b.Count++
	b.Bytes += n
}

func sorted(m map[string]*Breakdown) []Breakdown {
	out := make([]Breakdown, 0, len(m))
	for _, b := range m {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
