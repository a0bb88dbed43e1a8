package cssprune

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// Reporter prints the human-readable usage report
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a new reporter
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintSummary outputs the three class counts
func (r *Reporter) PrintSummary(result *Result) {
	fmt.Fprintf(r.w, "Total classes: %d\n", result.Declared.Len())
	fmt.Fprintf(r.w, "Used classes: %s\n",
		RenderStyle(StyleGreen, fmt.Sprint(result.UsedCount()), r.useColors))
	fmt.Fprintf(r.w, "Unused classes: %s\n",
		RenderStyle(StyleRed, fmt.Sprint(len(result.Unused)), r.useColors))
}

// PrintUnused lists unused classes, one per line
func (r *Reporter) PrintUnused(result *Result) {
	if len(result.Unused) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Unused classes:", r.useColors))
	for _, name := range result.Unused {
		fmt.Fprintf(r.w, "- %s\n", RenderStyle(StyleRed, name, r.useColors))
	}
}

// PrintPrune describes the pruned stylesheet, if one was written
func (r *Reporter) PrintPrune(result *Result) {
	p := result.Prune
	if p == nil {
		if len(result.Unused) > 0 {
			fmt.Fprintln(r.w, "")
			fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --remove to write a pruned stylesheet", r.useColors))
		}
		return
	}

	removed := p.BytesBefore - p.BytesAfter
	if removed < 0 {
		removed = 0
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%s %s (%s, %s removed; kept %s, removed %s)\n",
		RenderStyle(StyleGreen, "Pruned stylesheet written to", r.useColors),
		RenderStyle(StyleCyan, p.Output, r.useColors),
		humanize.Bytes(uint64(p.BytesAfter)),
		humanize.Bytes(uint64(removed)),
		pluralizeCount(p.BlocksKept, "rule", "rules"),
		pluralizeCount(p.BlocksRemoved, "rule", "rules"))
}

// PrintWarnings shows run warnings
func (r *Reporter) PrintWarnings(result *Result) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings:", r.useColors))
	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
