package cssprune

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/yacobolo/cssprune/internal/classset"
	"github.com/yacobolo/cssprune/internal/sass"
)

// DefaultOut is the pruned stylesheet path used when Config.Out is empty.
const DefaultOut = "pruned.css"

// DefaultMarkupExtensions are scanned when Config.MarkupExtensions is empty.
var DefaultMarkupExtensions = []string{".html", ".jsx", ".tsx"}

var (
	// ErrNoStylesheets is returned when no stylesheet argument resolves to a file.
	ErrNoStylesheets = errors.New("no stylesheet files matched")
	// ErrPreprocessorMissing is returned when a SCSS/Sass file is loaded and
	// the sass compiler is not installed.
	ErrPreprocessorMissing = sass.ErrNotInstalled
)

// Config holds run configuration
type Config struct {
	MarkupDir        string   // "src"
	Stylesheets      []string // files, directories or globs: ["styles/**/*.css"]
	MarkupExtensions []string // [".html", ".jsx", ".tsx"]
	RespectGitignore bool     // Skip markup files ignored by <MarkupDir>/.gitignore
	Remove           bool     // Write the pruned stylesheet to Out
	Out              string   // "pruned.css"
	Verbose          bool   // Debug logging to stderr when Logger is nil
	SassBinary       string // "sass"

	// Logger receives diagnostics. Nil discards them unless Verbose is set.
	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.Out == "" {
		c.Out = DefaultOut
	}
	if len(c.MarkupExtensions) == 0 {
		c.MarkupExtensions = DefaultMarkupExtensions
	}
	if c.SassBinary == "" {
		c.SassBinary = sass.DefaultBinary
	}
	if c.Logger == nil {
		if c.Verbose {
			c.Logger = NewLogger(os.Stderr, true)
		} else {
			c.Logger = discardLogger()
		}
	}
	return c
}

// NewLogger returns a text logger on w at debug level when verbose, warn
// level otherwise.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Result contains run results
type Result struct {
	MarkupStats ScanStats
	Stylesheets []string // Resolved stylesheet files, in load order

	Used     *classset.Set // Classes applied in markup
	Declared *classset.Set // Classes declared by stylesheet selectors
	Unused   []string      // Declared minus used, in stylesheet order

	// Prune is set only when Config.Remove was requested.
	Prune *PruneResult

	Warnings []string
}

// UsedCount returns declared classes that are used by markup.
func (r *Result) UsedCount() int {
	return r.Declared.Len() - len(r.Unused)
}

// PruneResult describes a pruning pass
type PruneResult struct {
	Output      string // Path the pruned stylesheet was written to
	Text        string // Pruned stylesheet text
	BytesBefore int
	BytesAfter  int
	PruneStats
}

// OutputFormat represents the report format
type OutputFormat string

const (
	// OutputText is the human-readable report
	OutputText OutputFormat = "text"
	// OutputJSON exports the report as JSON
	OutputJSON OutputFormat = "json"
	// OutputYAML exports the report as YAML
	OutputYAML OutputFormat = "yaml"
)
