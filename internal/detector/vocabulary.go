package detector

import (
	"fmt"
	"maps"
	"slices"
	"unicode"
	"unicode/utf8"
)

// DefaultNames are method names treated as evidence of a Result value.
var DefaultNames = []string{"mapErr", "map", "andThen", "orElse", "match", "unwrapOr"}

// Vocabulary is an immutable set of method names. The zero value matches nothing.
type Vocabulary struct {
	names map[string]struct{}
}

// NewVocabulary builds a vocabulary out of identifier names.
func NewVocabulary(names ...string) (Vocabulary, error) {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		if !isIdent(name) {
			return Vocabulary{}, fmt.Errorf("invalid vocabulary name %q", name)
		}
		set[name] = struct{}{}
	}

	return Vocabulary{names: set}, nil
}

// DefaultVocabulary returns the vocabulary built out of DefaultNames.
func DefaultVocabulary() Vocabulary {
	v, err := NewVocabulary(DefaultNames...)
	if err != nil {
		panic(fmt.Errorf("default vocabulary: %w", err))
	}

	return v
}

// WithExported returns a vocabulary holding v names and their forms with
// the first letter upper-cased, i.e. andThen and AndThen.
func (v Vocabulary) WithExported() Vocabulary {
	set := maps.Clone(v.names)
	if set == nil {
		return Vocabulary{}
	}

	for name := range v.names {
		r, size := utf8.DecodeRuneInString(name)
		set[string(unicode.ToUpper(r))+name[size:]] = struct{}{}
	}

	return Vocabulary{names: set}
}

// Contains checks if name is in the vocabulary.
func (v Vocabulary) Contains(name string) bool {
	_, ok := v.names[name]
	return ok
}

// Len returns the number of names.
func (v Vocabulary) Len() int {
	return len(v.names)
}

// Names returns the sorted list of names.
func (v Vocabulary) Names() []string {
	return slices.Sorted(maps.Keys(v.names))
}

// MatchText checks if text contains any vocabulary name as a whole word.
// Words are maximal runs of letters, digits and underscores.
func (v Vocabulary) MatchText(text string) bool {
	if len(v.names) == 0 {
		return false
	}

	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}

		if start >= 0 {
			if v.Contains(text[start:i]) {
				return true
			}
			start = -1
		}
	}

	return start >= 0 && v.Contains(text[start:])
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if !isWordRune(r) {
			return false
		}
	}
	return true
}
