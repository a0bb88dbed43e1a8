package cssprune

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/yacobolo/cssprune/internal/classset"
)

// A flat rule block: selector text with no braces, then a brace-free body.
// Nested blocks are not matched as a whole; the innermost rule matches and
// the enclosing at-rule prelude and closing brace are left as plain text.
var blockPattern = regexp.MustCompile(`[^{}]*\{[^{}]*\}`)

// PruneStats counts rule blocks seen by Prune
type PruneStats struct {
	BlocksKept    int
	BlocksRemoved int
}

// Prune removes every rule block whose selector list has no class in used.
//
// Kept blocks are copied byte for byte, and text outside any block is left
// untouched. A removed block takes its leading whitespace and comments with
// it. The policy is whole-block: ".a, div { }" stays when "a" is used, and
// a block without any class selector ("div { }") is always removed.
func Prune(text string, used *classset.Set) (string, PruneStats) {
	var stats PruneStats
	var out strings.Builder
	out.Grow(len(text))

	last := 0
	for _, loc := range blockPattern.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		out.WriteString(text[last:start])
		last = end

		block := text[start:end]
		selector := block[:strings.IndexByte(block, '{')]
		if blockIsUsed(selector, used) {
			out.WriteString(block)
			stats.BlocksKept++
		} else {
			stats.BlocksRemoved++
		}
	}
	out.WriteString(text[last:])

	return out.String(), stats
}

func blockIsUsed(selector string, used *classset.Set) bool {
	for _, class := range selectorClasses(selector) {
		if used.Has(class) {
			return true
		}
	}
	return false
}

// ErrUnbalanced is returned by CheckBalance for mismatched braces.
var ErrUnbalanced = errors.New("unbalanced braces")

// CheckBalance lexes text as CSS and verifies that braces pair up. Braces in
// strings and comments are ignored here but not by the flat block scan, so a
// "}" inside a comment can end a block early and leave the real "}" orphaned
// after pruning.
func CheckBalance(text string) error {
	lexer := css.NewLexer(parse.NewInputString(text))
	depth := 0

	for {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && err != io.EOF {
				return fmt.Errorf("lex css: %w", err)
			}
			if depth != 0 {
				return fmt.Errorf("%w: %d unclosed", ErrUnbalanced, depth)
			}
			return nil
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: unexpected }", ErrUnbalanced)
			}
		}
	}
}
