package classset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsIdent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "simple", in: "btn", want: true},
		{name: "bem modifier", in: "btn--primary", want: true},
		{name: "bem element", in: "card__header", want: true},
		{name: "leading underscore", in: "_internal", want: true},
		{name: "leading hyphen", in: "-webkit-thing", want: true},
		{name: "leading digit", in: "2col", want: false},
		{name: "template expression", in: "${size}", want: false},
		{name: "partial template", in: "btn-${size}", want: false},
		{name: "colon variant", in: "hover:bg-red", want: false},
		{name: "empty", in: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsIdent(tt.in), "IsIdent(%q)", tt.in)
		})
	}
}

func TestBuilderKeepsFirstSeenOrder(t *testing.T) {
	b := NewBuilder()
	for _, n := range []string{"b", "a", "b", "", "c", "a"} {
		b.Add(n)
	}
	s := b.Build()

	assert.Equal(t, []string{"b", "a", "c"}, s.Names())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has(""))
}

func TestNamesReturnsCopy(t *testing.T) {
	s := Of("a", "b")
	names := s.Names()
	names[0] = "z"

	assert.Equal(t, []string{"a", "b"}, s.Names())
}

func TestDifference(t *testing.T) {
	declared := Of("a", "x", "b", "y")
	used := Of("b", "a", "unrelated")

	assert.Equal(t, []string{"x", "y"}, declared.Difference(used))
	assert.Empty(t, declared.Difference(declared))
	assert.Equal(t, []string{"a", "x", "b", "y"}, declared.Difference(Of()))
}

func TestNilSet(t *testing.T) {
	var s *Set
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has("a"))
	assert.Nil(t, s.Names())
	assert.Equal(t, []string{"a"}, Of("a").Difference(s))
}
