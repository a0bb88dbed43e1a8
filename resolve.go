package cssprune

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// isStylesheet reports whether path has a stylesheet extension.
func isStylesheet(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css", ".scss", ".sass":
		return true
	}
	return false
}

// ResolveStylesheets expands stylesheet arguments into files.
//
// Each argument may be a file (used as is), a directory (walked for .css,
// .scss and .sass files, skipping Sass partials named _*.scss) or a
// doublestar glob such as "styles/**/*.css". A plain path that cannot be
// stat'ed is an error. Results keep argument order and are de-duplicated.
// ErrNoStylesheets is returned when nothing matches.
func ResolveStylesheets(args []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && !info.IsDir():
			add(arg)

		case err == nil && info.IsDir():
			dirFiles, err := stylesheetsInDir(arg)
			if err != nil {
				return nil, err
			}
			for _, f := range dirFiles {
				add(f)
			}

		case !hasGlobMeta(arg):
			return nil, fmt.Errorf("stylesheet: %w", err)

		default:
			matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("glob pattern %q: %w", arg, err)
			}
			for _, m := range matches {
				add(m)
			}
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoStylesheets, strings.Join(args, ", "))
	}

	return files, nil
}

// hasGlobMeta reports whether arg uses doublestar pattern syntax.
func hasGlobMeta(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

// stylesheetsInDir walks dir for stylesheet files in lexical order
func stylesheetsInDir(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !isStylesheet(path) {
			return nil
		}
		if strings.HasPrefix(d.Name(), "_") && strings.ToLower(filepath.Ext(path)) != ".css" {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk stylesheet directory %s: %w", dir, err)
	}
	return files, nil
}
