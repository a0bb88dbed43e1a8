package cssprune

import (
	"fmt"
	"io"
	"strings"
)

// DetermineOutputFormat selects the report format from the --format flag
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch strings.ToLower(strings.TrimSpace(formatFlag)) {
	case "json":
		return OutputJSON
	case "yaml", "yml":
		return OutputYAML
	default:
		// Empty or unknown: human-readable text
		return OutputText
	}
}

// WriteOutput writes the run result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, useColors bool) error {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}

	case OutputYAML:
		if err := WriteYAML(w, result); err != nil {
			return fmt.Errorf("writing YAML: %w", err)
		}

	default:
		reporter := NewReporter(w, useColors)
		reporter.PrintSummary(result)
		reporter.PrintUnused(result)
		reporter.PrintPrune(result)
		reporter.PrintWarnings(result)
	}

	return nil
}
