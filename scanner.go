package cssprune

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/yacobolo/cssprune/internal/classset"
)

// ScanStats tracks markup scanning statistics
type ScanStats struct {
	FilesDiscovered int // Files matching the markup extensions
	FilesScanned    int // Files actually read
	FilesSkipped    int // Files skipped by .gitignore
}

// skippedDirs are never descended into.
var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// MarkupScanner collects class names statically applied in markup files.
//
// Recognized forms:
//
//	class="a b"   class='a b'   class=`a b`
//	className="a b"   className={"a b"}   className={`a ${b}`}
//
// Classes built from conditionals, concatenation, helper calls such as
// clsx(...) or variables are not seen. Template tokens that are not plain
// identifiers (${b}, btn-${size}) are dropped.
type MarkupScanner struct {
	pattern          string
	respectGitignore bool
	logger           *slog.Logger
	attr             *regexp.Regexp
}

// NewMarkupScanner creates a scanner for files with the given extensions.
func NewMarkupScanner(extensions []string, respectGitignore bool, logger *slog.Logger) *MarkupScanner {
	if logger == nil {
		logger = discardLogger()
	}
	return &MarkupScanner{
		pattern:          extensionPattern(extensions),
		respectGitignore: respectGitignore,
		logger:           logger,
		attr: regexp.MustCompile(
			"(?:class|className)\\s*=\\s*\\{?\\s*(?:\"([^\"]*)\"|'([^']*)'|`([^`]*)`)",
		),
	}
}

// extensionPattern builds a doublestar pattern such as **/*.{html,jsx}.
func extensionPattern(extensions []string) string {
	exts := make([]string, 0, len(extensions))
	for _, e := range extensions {
		e = strings.TrimPrefix(strings.TrimSpace(e), ".")
		if e != "" {
			exts = append(exts, e)
		}
	}
	switch len(exts) {
	case 0:
		return ""
	case 1:
		return "**/*." + exts[0]
	default:
		return "**/*.{" + strings.Join(exts, ",") + "}"
	}
}

// ScanDir walks root and returns the set of used classes.
func (s *MarkupScanner) ScanDir(root string) (*classset.Set, ScanStats, error) {
	stats := ScanStats{}

	info, err := os.Stat(root)
	if err != nil {
		return nil, stats, fmt.Errorf("markup directory: %w", err)
	}
	if !info.IsDir() {
		return nil, stats, fmt.Errorf("markup directory: %s is not a directory", root)
	}

	gi := s.loadGitIgnore(root)
	used := classset.NewBuilder()

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path != root && skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if s.pattern == "" {
			return nil
		}
		if ok, _ := doublestar.Match(s.pattern, rel); !ok {
			return nil
		}
		stats.FilesDiscovered++

		if gi != nil && gi.MatchesPath(rel) {
			stats.FilesSkipped++
			s.logger.Debug("skipping ignored markup file", "file", path)
			return nil
		}

		// #nosec G304 - path comes from walking the configured markup directory
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		stats.FilesScanned++

		before := used.Len()
		s.ExtractClasses(string(content), used)
		s.logger.Debug("scanned markup file", "file", path, "new_classes", used.Len()-before)
		return nil
	})
	if err != nil {
		return nil, stats, fmt.Errorf("scan markup: %w", err)
	}

	return used.Build(), stats, nil
}

// loadGitIgnore compiles <root>/.gitignore. A missing file is not an error.
func (s *MarkupScanner) loadGitIgnore(root string) *ignore.GitIgnore {
	if !s.respectGitignore {
		return nil
	}
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("ignoring unreadable .gitignore", "dir", root, "error", err)
		}
		return nil
	}
	return gi
}

// ExtractClasses adds every class token found in content to b.
func (s *MarkupScanner) ExtractClasses(content string, b *classset.Builder) {
	for _, m := range s.attr.FindAllStringSubmatchIndex(content, -1) {
		if m[0] > 0 && !isAttrBoundary(content[m[0]-1]) {
			continue
		}

		// Exactly one of the three quote groups participates in a match.
		var value string
		for g := 2; g < len(m); g += 2 {
			if m[g] >= 0 {
				value = content[m[g]:m[g+1]]
			}
		}
		for _, token := range strings.Fields(value) {
			if classset.IsIdent(token) {
				b.Add(token)
			}
		}
	}
}

// isAttrBoundary reports whether b may precede a class attribute name. Word
// characters, ':', '.' and '-' mean the name is part of something longer
// (subclass=, :class=, v-bind:class=, data-class=).
func isAttrBoundary(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return false
	case b == '_', b == ':', b == '.', b == '-':
		return false
	}
	return true
}

// ExtractClassSet is ExtractClasses for a single document.
func (s *MarkupScanner) ExtractClassSet(content string) *classset.Set {
	b := classset.NewBuilder()
	s.ExtractClasses(content, b)
	return b.Build()
}
