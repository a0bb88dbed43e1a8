package cssprune

import (
	"regexp"

	"github.com/yacobolo/cssprune/internal/classset"
)

var (
	// Block comments, stripped before any class scan
	commentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)

	// A dot followed by a class identifier
	classSelectorPattern = regexp.MustCompile(`\.([A-Za-z_-][A-Za-z0-9_-]*)`)
)

// StripComments removes /* ... */ comments from css.
func StripComments(css string) string {
	return commentPattern.ReplaceAllString(css, "")
}

// DeclaredClasses returns every class selector token in css.
//
// This is a lexical scan, not a parse: ".png" inside url(a.png) or a dotted
// token in a string is reported the same as a real selector.
func DeclaredClasses(css string) *classset.Set {
	b := classset.NewBuilder()
	addSelectorClasses(StripComments(css), b)
	return b.Build()
}

func addSelectorClasses(text string, b *classset.Builder) {
	for _, m := range classSelectorPattern.FindAllStringSubmatch(text, -1) {
		b.Add(m[1])
	}
}

// selectorClasses lists the class tokens of a single selector list.
func selectorClasses(selector string) []string {
	matches := classSelectorPattern.FindAllStringSubmatch(StripComments(selector), -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
