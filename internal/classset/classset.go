// Package classset holds the ordered class-name sets shared by the markup
// and stylesheet extractors.
package classset

import "regexp"

// identPattern is the class-name grammar: letters, digits, hyphen and
// underscore, never starting with a digit.
var identPattern = regexp.MustCompile(`^[A-Za-z_-][A-Za-z0-9_-]*$`)

// IsIdent reports whether s is a valid class name.
func IsIdent(s string) bool {
	return identPattern.MatchString(s)
}

// Set is a set of class names that remembers first-seen order.
// It is built once by a Builder and never mutated afterwards.
type Set struct {
	names []string
	index map[string]struct{}
}

// Builder accumulates names for a Set.
type Builder struct {
	set *Set
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{set: &Set{index: make(map[string]struct{})}}
}

// Add inserts name unless it is already present. Empty names are ignored.
func (b *Builder) Add(name string) {
	if name == "" {
		return
	}
	if _, ok := b.set.index[name]; ok {
		return
	}
	b.set.index[name] = struct{}{}
	b.set.names = append(b.set.names, name)
}

// Len returns the number of names added so far.
func (b *Builder) Len() int {
	return len(b.set.names)
}

// Build returns the finished set. The builder must not be used afterwards.
func (b *Builder) Build() *Set {
	s := b.set
	b.set = nil
	return s
}

// Of builds a set from the given names, mostly for tests.
func Of(names ...string) *Set {
	b := NewBuilder()
	for _, n := range names {
		b.Add(n)
	}
	return b.Build()
}

// Len returns the number of names.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Has reports whether name is in the set.
func (s *Set) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[name]
	return ok
}

// Names returns a copy of the names in first-seen order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Difference returns the names of s that are not in other, in s's order.
func (s *Set) Difference(other *Set) []string {
	var out []string
	if s == nil {
		return out
	}
	for _, n := range s.names {
		if !other.Has(n) {
			out = append(out, n)
		}
	}
	return out
}
