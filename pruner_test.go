package cssprune

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/cssprune/internal/classset"
)

func TestPrune(t *testing.T) {
	tests := []struct {
		name        string
		css         string
		used        []string
		want        string
		wantKept    int
		wantRemoved int
	}{
		{
			name:        "removes unused block",
			css:         ".a{color:red}.x{color:blue}",
			used:        []string{"a"},
			want:        ".a{color:red}",
			wantKept:    1,
			wantRemoved: 1,
		},
		{
			name:        "keeps formatting of retained blocks",
			css:         ".a {\n  color: red;\n}\n\n.x {\n  color: blue;\n}\n",
			used:        []string{"a"},
			want:        ".a {\n  color: red;\n}\n",
			wantKept:    1,
			wantRemoved: 1,
		},
		{
			name:        "element-only selector is always removed",
			css:         "div{margin:0}.a{color:red}",
			used:        []string{"a", "div"},
			want:        ".a{color:red}",
			wantKept:    1,
			wantRemoved: 1,
		},
		{
			name:        "whole-block policy keeps mixed selector lists",
			css:         ".a, div, .x { color: red }",
			used:        []string{"a"},
			want:        ".a, div, .x { color: red }",
			wantKept:    1,
			wantRemoved: 0,
		},
		{
			name:        "class inside selector comment does not count",
			css:         "/* .a */ .x{color:red}",
			used:        []string{"a"},
			want:        "",
			wantKept:    0,
			wantRemoved: 1,
		},
		{
			name:        "removed block takes its leading comment",
			css:         ".a{}\n/* buttons */\n.btn{}",
			used:        []string{"a"},
			want:        ".a{}",
			wantKept:    1,
			wantRemoved: 1,
		},
		{
			name:        "trailing text is preserved",
			css:         ".x{}\n/* end */\n",
			used:        nil,
			want:        "\n/* end */\n",
			wantKept:    0,
			wantRemoved: 1,
		},
		{
			name:        "nested at-rule keeps prelude and closing brace",
			css:         "@media (min-width: 1px) { .a{x:y} .b{x:y} }",
			used:        []string{"a"},
			want:        "@media (min-width: 1px) { .a{x:y} }",
			wantKept:    1,
			wantRemoved: 1,
		},
		{
			name:        "empty stylesheet",
			css:         "",
			used:        []string{"a"},
			want:        "",
			wantKept:    0,
			wantRemoved: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stats := Prune(tt.css, classset.Of(tt.used...))
			require.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantKept, stats.BlocksKept)
			assert.Equal(t, tt.wantRemoved, stats.BlocksRemoved)
		})
	}
}

func TestPruneKeepsExactlyMatchingBlocks(t *testing.T) {
	blocks := []string{
		".keep-1 { color: red; }",
		"\n.drop-1 { color: blue; }",
		"\n\n.keep-2:hover, .drop-2 { margin: 0 }",
		"\nspan { padding: 0 }",
		"\n.keep-3 .drop-3 {}",
		"\n.drop-4{}",
	}
	keep := map[int]bool{0: true, 2: true, 4: true}

	css := strings.Join(blocks, "")
	var want strings.Builder
	for i, b := range blocks {
		if keep[i] {
			want.WriteString(b)
		}
	}

	got, stats := Prune(css, classset.Of("keep-1", "keep-2", "keep-3"))
	require.Equal(t, want.String(), got)
	assert.Equal(t, 3, stats.BlocksKept)
	assert.Equal(t, 3, stats.BlocksRemoved)
}

func TestPruneWithAllDeclaredIsNoop(t *testing.T) {
	css := `/* header */
.btn { padding: 4px; }
.btn--primary:hover, .btn--ghost { color: var(--accent); }
.card .card__body { margin: 0 auto; }
`
	got, stats := Prune(css, DeclaredClasses(css))
	require.Equal(t, css, got)
	assert.Equal(t, 0, stats.BlocksRemoved)
}

func TestCheckBalance(t *testing.T) {
	require.NoError(t, CheckBalance(".a{x:y} @media print { .b{x:y} }"))
	require.NoError(t, CheckBalance(""))
	require.NoError(t, CheckBalance(`.a { content: "}" } /* { */`))

	err := CheckBalance("@media print { .a{x:y}")
	require.ErrorIs(t, err, ErrUnbalanced)

	err = CheckBalance(".a{x:y} }")
	require.ErrorIs(t, err, ErrUnbalanced)
}

func TestPruneCommentBraceSplitsBlock(t *testing.T) {
	css := ".x { /* } */ color: red } .a{}"
	require.NoError(t, CheckBalance(css))

	got, _ := Prune(css, classset.Of("a"))
	assert.Equal(t, " */ color: red } .a{}", got)
	require.ErrorIs(t, CheckBalance(got), ErrUnbalanced)
}
