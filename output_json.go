package cssprune

import (
	"encoding/json"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// ReportOutput represents the structured JSON/YAML export schema
type ReportOutput struct {
	Version     string        `json:"version" yaml:"version"`
	Timestamp   string        `json:"timestamp" yaml:"timestamp"`
	Summary     ReportSummary `json:"summary" yaml:"summary"`
	Stylesheets []string      `json:"stylesheets" yaml:"stylesheets"`
	Unused      []string      `json:"unused" yaml:"unused"`
	Prune       *ReportPrune  `json:"prune,omitempty" yaml:"prune,omitempty"`
	Warnings    []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ReportSummary contains the class counts
type ReportSummary struct {
	TotalClasses  int `json:"total_classes" yaml:"total_classes"`
	UsedClasses   int `json:"used_classes" yaml:"used_classes"`
	UnusedClasses int `json:"unused_classes" yaml:"unused_classes"`
	MarkupFiles   int `json:"markup_files" yaml:"markup_files"`
	MarkupClasses int `json:"markup_classes" yaml:"markup_classes"`
}

// ReportPrune describes the pruned stylesheet
type ReportPrune struct {
	Output        string `json:"output" yaml:"output"`
	BytesBefore   int    `json:"bytes_before" yaml:"bytes_before"`
	BytesAfter    int    `json:"bytes_after" yaml:"bytes_after"`
	BlocksKept    int    `json:"blocks_kept" yaml:"blocks_kept"`
	BlocksRemoved int    `json:"blocks_removed" yaml:"blocks_removed"`
}

// WriteJSON writes the result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	output := buildReportOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// WriteYAML writes the result as YAML
func WriteYAML(w io.Writer, result *Result) error {
	output := buildReportOutput(result)
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(output); err != nil {
		return err
	}
	return encoder.Close()
}

// buildReportOutput converts Result to ReportOutput
func buildReportOutput(result *Result) ReportOutput {
	// Empty lists, not null
	unused := result.Unused
	if unused == nil {
		unused = []string{}
	}
	stylesheets := result.Stylesheets
	if stylesheets == nil {
		stylesheets = []string{}
	}

	output := ReportOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: ReportSummary{
			TotalClasses:  result.Declared.Len(),
			UsedClasses:   result.UsedCount(),
			UnusedClasses: len(result.Unused),
			MarkupFiles:   result.MarkupStats.FilesScanned,
			MarkupClasses: result.Used.Len(),
		},
		Stylesheets: stylesheets,
		Unused:      unused,
		Warnings:    result.Warnings,
	}

	if p := result.Prune; p != nil {
		output.Prune = &ReportPrune{
			Output:        p.Output,
			BytesBefore:   p.BytesBefore,
			BytesAfter:    p.BytesAfter,
			BlocksKept:    p.BlocksKept,
			BlocksRemoved: p.BlocksRemoved,
		}
	}

	return output
}
