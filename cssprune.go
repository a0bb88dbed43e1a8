// Package cssprune finds CSS classes that no markup uses and strips them.
//
// A run has four steps:
//
//  1. Scan a markup directory (.html, .jsx, .tsx by default) for static
//     class="..." and className="..." values: the used classes.
//  2. Load the stylesheets, compiling .scss/.sass through the sass binary,
//     and collect every ".name" selector token: the declared classes.
//  3. Report declared minus used.
//  4. Optionally rewrite the stylesheet without rule blocks that reference
//     no used class.
//
// Both scans are lexical. Classes composed at runtime are invisible to the
// markup scan, and the stylesheet scan does not understand nesting, so the
// pruned output is a starting point to review rather than a drop-in file.
//
//	result, err := cssprune.Run(ctx, cssprune.Config{
//		MarkupDir:   "src",
//		Stylesheets: []string{"styles/**/*.css"},
//		Remove:      true,
//	})
package cssprune

import (
	"context"
	"fmt"
	"os"

	"github.com/yacobolo/cssprune/internal/sass"
)

// Run is the main entry point
func Run(ctx context.Context, config Config) (*Result, error) {
	config = config.withDefaults()
	logger := config.Logger
	result := &Result{}

	// 1. Resolve stylesheets first so a bad pattern fails before the walk
	files, err := ResolveStylesheets(config.Stylesheets)
	if err != nil {
		return nil, err
	}
	result.Stylesheets = files
	logger.Debug("resolved stylesheets", "count", len(files))

	// 2. Scan markup
	scanner := NewMarkupScanner(config.MarkupExtensions, config.RespectGitignore, logger)
	used, stats, err := scanner.ScanDir(config.MarkupDir)
	if err != nil {
		return nil, err
	}
	result.Used = used
	result.MarkupStats = stats
	logger.Debug("scanned markup",
		"dir", config.MarkupDir,
		"files", stats.FilesScanned,
		"skipped", stats.FilesSkipped,
		"classes", used.Len())

	// 3. Load stylesheet text
	loader := NewStylesheetLoader(sass.NewCompiler(config.SassBinary), logger)
	text, err := loader.Load(ctx, files)
	if err != nil {
		return nil, err
	}

	// 4. Compare
	result.Declared = DeclaredClasses(text)
	result.Unused = result.Declared.Difference(used)
	logger.Debug("compared classes",
		"declared", result.Declared.Len(),
		"unused", len(result.Unused))

	if !config.Remove {
		return result, nil
	}

	// 5. Prune and write
	pruned, pruneStats := Prune(text, used)
	result.Prune = &PruneResult{
		Output:      config.Out,
		Text:        pruned,
		BytesBefore: len(text),
		BytesAfter:  len(pruned),
		PruneStats:  pruneStats,
	}

	if err := CheckBalance(pruned); err != nil {
		warning := fmt.Sprintf("pruned output: %v (a brace inside a comment or string may have split a rule)", err)
		logger.Warn(warning, "output", config.Out)
		result.Warnings = append(result.Warnings, warning)
	}

	if err := os.WriteFile(config.Out, []byte(pruned), 0o644); err != nil {
		return nil, fmt.Errorf("write pruned stylesheet: %w", err)
	}
	logger.Debug("wrote pruned stylesheet",
		"output", config.Out,
		"kept", pruneStats.BlocksKept,
		"removed", pruneStats.BlocksRemoved)

	return result, nil
}
