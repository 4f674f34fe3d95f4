package config

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Reference identifies a declared type, e.g. a Result type of some package.
type Reference struct {
	// Package is the import path of the package declaring the type.
	Package string

	// Type is the package-local type name.
	Type string
}

func (r Reference) String() string {
	v, err := r.MarshalText()
	if err != nil {
		return fmt.Sprintf("invalid-reference(%q.%s)", r.Package, r.Type)
	}

	return string(v)
}

var _ encoding.TextUnmarshaler = (*Reference)(nil)

// UnmarshalText parses references in the "pkg/path".Type form.
func (r *Reference) UnmarshalText(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "" {
		return errors.New("empty reference")
	}

	if !strings.HasPrefix(s, `"`) {
		return fmt.Errorf("reference must start with quoted package: %q", s)
	}
	end := strings.Index(s[1:], `"`)
	if end < 0 {
		return fmt.Errorf("unterminated quoted package in reference: %q", s)
	}
	end++ // include the first quote

	pkg := s[1:end]
	if pkg == "" {
		return fmt.Errorf("package cannot be empty in reference: %q", s)
	}

	rest, ok := strings.CutPrefix(s[end+1:], ".")
	if !ok || rest == "" {
		return fmt.Errorf("reference must contain a type name: %q", s)
	}
	if !isIdent(rest) {
		return fmt.Errorf("invalid type name %q in reference %q", rest, s)
	}

	r.Package = pkg
	r.Type = rest
	return nil
}

func (r Reference) MarshalText() ([]byte, error) {
	if r.Package == "" {
		return nil, fmt.Errorf("cannot marshal Reference: empty Package")
	}
	if r.Type == "" {
		return nil, fmt.Errorf("cannot marshal Reference: empty Type")
	}

	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(r.Package)
	b.WriteByte('"')
	b.WriteByte('.')
	b.WriteString(r.Type)

	return []byte(b.String()), nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
