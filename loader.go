package cssprune

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/yacobolo/cssprune/internal/sass"
)

// StylesheetLoader reads stylesheet files, compiling SCSS/Sass sources to CSS.
type StylesheetLoader struct {
	compiler *sass.Compiler
	logger   *slog.Logger
}

// NewStylesheetLoader creates a loader. The compiler is only consulted for
// .scss and .sass files.
func NewStylesheetLoader(compiler *sass.Compiler, logger *slog.Logger) *StylesheetLoader {
	if logger == nil {
		logger = discardLogger()
	}
	return &StylesheetLoader{compiler: compiler, logger: logger}
}

// Load returns the text of every file, in order, joined by newlines.
func (l *StylesheetLoader) Load(ctx context.Context, paths []string) (string, error) {
	parts := make([]string, 0, len(paths))

	for _, path := range paths {
		text, err := l.loadFile(ctx, path)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}

	return strings.Join(parts, "\n"), nil
}

func (l *StylesheetLoader) loadFile(ctx context.Context, path string) (string, error) {
	if sass.IsSource(path) {
		l.logger.Debug("compiling stylesheet", "file", path, "compiler", l.compiler.Binary())
		text, err := l.compiler.Compile(ctx, path)
		if err != nil {
			return "", fmt.Errorf("load stylesheet: %w", err)
		}
		return text, nil
	}

	l.logger.Debug("reading stylesheet", "file", path)
	// #nosec G304 - path comes from resolved command line arguments
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load stylesheet: %w", err)
	}
	return string(content), nil
}
