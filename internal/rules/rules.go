// Package rules defines the canonical rule codes (MUR-series) enforced by mustuse.
//
// Rule numbering scheme:
//
//	001–099  Result consumption discipline
package rules

import (
	"encoding"
	"fmt"
)

// Rule represents a mustuse rule code (MUR-series).
type Rule int

const (
	ruleInvalid Rule = iota

	MUR001MustUseResult
)

// MessageID keys a message template of a rule.
type MessageID string

// MessageMustUse is the only message of MUR001.
const MessageMustUse MessageID = "mustUse"

// RuleType is the kind of issue a rule reports, as hosting linters classify them.
type RuleType string

const (
	RuleTypeInvalid RuleType = ""
	RuleTypeProblem RuleType = "problem"
)

// All returns every known rule in code order.
func All() []Rule {
	return []Rule{MUR001MustUseResult}
}

// Lookup finds a rule by its stable identifier.
func Lookup(id string) (Rule, bool) {
	for _, r := range All() {
		if r.ID() == id {
			return r, true
		}
	}

	return ruleInvalid, false
}

// ID returns the stable identifier of the rule used by rule registries.
func (r Rule) ID() string {
	switch r {
	case MUR001MustUseResult:
		return "must-use-result"
	default:
		return ""
	}
}

// String returns the canonical code and identifier of the rule.
// Example: "MUR001: must-use-result"
func (r Rule) String() string {
	switch r {
	case MUR001MustUseResult:
		return "MUR001: " + r.ID()
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case MUR001MustUseResult:
		return "Ensure Result values are handled instead of being discarded."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// Type returns the rule category.
func (r Rule) Type() RuleType {
	switch r {
	case MUR001MustUseResult:
		return RuleTypeProblem
	default:
		return RuleTypeInvalid
	}
}

// DefaultSeverity returns the severity reported unless overridden by the host.
func (r Rule) DefaultSeverity() Severity {
	switch r {
	case MUR001MustUseResult:
		return SeverityError
	default:
		return SeverityInvalid
	}
}

// Messages returns a copy of the message templates of the rule.
func (r Rule) Messages() map[MessageID]string {
	switch r {
	case MUR001MustUseResult:
		return map[MessageID]string{
			MessageMustUse: "Result must be handled with match, unwrapOr, or _unsafeUnwrap.",
		}
	default:
		return nil
	}
}

// Message returns the message text for the given id, falling back to the rule description.
func (r Rule) Message(id MessageID) string {
	if msg, ok := r.Messages()[id]; ok {
		return msg
	}

	return r.Description()
}

// MustUseResult returns the rule reporting discarded Result values.
func MustUseResult() Rule { return MUR001MustUseResult }

// Severity is the default diagnostic level of a rule.
type Severity int

const (
	SeverityInvalid Severity = iota
	SeverityError
	SeverityWarning
	SeverityOff
)

var severityValueMap = map[Severity]string{
	SeverityError:   "error",
	SeverityWarning: "warning",
	SeverityOff:     "off",
}

func (s Severity) String() string {
	v, ok := severityValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}

var _ encoding.TextUnmarshaler = (*Severity)(nil)

// UnmarshalText for setting values with configs, CLI, etc.
func (s *Severity) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range severityValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown severity %q", text)
}
