package detector

import (
	"encoding"
	"fmt"
)

// Scope selects the part of a call the vocabulary is matched against.
type Scope int

const (
	ScopeInvalid Scope = iota

	// ScopeExpression matches the whole rendered call expression, nested
	// calls and arguments included.
	ScopeExpression

	// ScopeCallee matches the outermost callee name only. Nodes unable to
	// name their callee fall back to ScopeExpression.
	ScopeCallee
)

var scopeValueMap = map[Scope]string{
	ScopeExpression: "expression",
	ScopeCallee:     "callee",
}

func (s Scope) String() string {
	v, ok := scopeValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}

var (
	_ encoding.TextUnmarshaler = (*Scope)(nil)
	_ encoding.TextMarshaler   = Scope(0)
)

// UnmarshalText for setting values with configs, CLI, etc.
func (s *Scope) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range scopeValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown match scope %q", text)
}

func (s Scope) MarshalText() ([]byte, error) {
	v, ok := scopeValueMap[s]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Scope(%d)", s)
	}

	return []byte(v), nil
}
