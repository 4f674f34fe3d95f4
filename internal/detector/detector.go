package detector

import (
	"github.com/sirkon/mustuse/internal/rules"
	"github.com/sirkon/mustuse/internal/syntax"
)

// ReportFunc is the host reporting capability.
type ReportFunc func(node syntax.Node, id rules.MessageID)

// TypeResolver resolves whether a call produces a Result from static types.
// The known result is false when the host has no type for the node.
type TypeResolver interface {
	ResultType(node syntax.Node) (isResult bool, known bool)
}

// Option tunes a Detector.
type Option func(d *Detector)

// WithVocabulary sets the method names treated as Result evidence.
func WithVocabulary(v Vocabulary) Option {
	return func(d *Detector) {
		d.vocab = v
	}
}

// WithScope sets the part of a call matched against the vocabulary.
func WithScope(s Scope) Option {
	return func(d *Detector) {
		d.scope = s
	}
}

// WithTypeResolver makes the detector consult static types before falling
// back to the vocabulary.
func WithTypeResolver(r TypeResolver) Option {
	return func(d *Detector) {
		d.resolver = r
	}
}

// Detector reports discarded Result-producing calls. It keeps no state
// between Inspect calls.
type Detector struct {
	vocab    Vocabulary
	scope    Scope
	resolver TypeResolver
	report   ReportFunc
}

// New creates a Detector with the default vocabulary and expression scope
// unless overridden by options.
func New(report ReportFunc, opts ...Option) *Detector {
	d := &Detector{
		vocab:  DefaultVocabulary(),
		scope:  ScopeExpression,
		report: report,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Inspect is called once per call expression node. It reports
// rules.MessageMustUse on the node when it produces a Result whose value is
// discarded.
func (d *Detector) Inspect(node syntax.Node) {
	if d.report == nil || node == nil {
		return
	}

	if d.IsResultCall(node) && d.IsDiscarded(node) {
		d.report(node, rules.MessageMustUse)
	}
}

// IsResultCall checks if the call node produces a Result value.
func (d *Detector) IsResultCall(node syntax.Node) bool {
	if node == nil {
		return false
	}

	if d.resolver != nil {
		if isResult, known := d.resolver.ResultType(node); known {
			return isResult
		}
	}

	if d.scope == ScopeCallee {
		if cn, ok := node.(syntax.CalleeNamer); ok {
			if name, ok := cn.CalleeName(); ok {
				return d.vocab.Contains(name)
			}
		}
	}

	text, ok := node.Text()
	if !ok {
		return false
	}

	return d.vocab.MatchText(text)
}

// IsDiscarded checks if the node value is left unused: the first parent
// that is not a pass-through wrapper is missing or is a statement evaluated
// for side effects only.
func (d *Detector) IsDiscarded(node syntax.Node) bool {
	if node == nil {
		return false
	}

	for p := node.Parent(); ; p = p.Parent() {
		if p == nil {
			return true
		}

		switch classifyParent(p.Kind()) {
		case usePassThrough:
			continue
		case useDiscard:
			return true
		default:
			return false
		}
	}
}

type valueUse int

const (
	useConsume valueUse = iota
	useDiscard
	usePassThrough
)

// classifyParent tells what a parent of the given kind does with the value of its child.
func classifyParent(k syntax.Kind) valueUse {
	switch k {
	case syntax.KindProgram,
		syntax.KindExpressionStatement,
		syntax.KindDeferStatement:
		return useDiscard

	case syntax.KindParenthesized,
		syntax.KindAwait,
		syntax.KindChain,
		syntax.KindNonNull:
		return usePassThrough

	case syntax.KindVariableDeclarator,
		syntax.KindAssignment,
		syntax.KindReturnStatement,
		syntax.KindIfStatement,
		syntax.KindLoop,
		syntax.KindSwitch,
		syntax.KindThrow,
		syntax.KindSend,
		syntax.KindCallExpression,
		syntax.KindMemberExpression,
		syntax.KindIndex,
		syntax.KindBinary,
		syntax.KindUnary,
		syntax.KindConditional,
		syntax.KindArrowFunction,
		syntax.KindArrayLiteral,
		syntax.KindCompositeLiteral,
		syntax.KindProperty,
		syntax.KindSpread,
		syntax.KindTemplate,
		syntax.KindYield,
		syntax.KindSequence,
		syntax.KindTypeAssertion,
		syntax.KindIdentifier,
		syntax.KindLiteral,
		syntax.KindOther:
		return useConsume

	default:
		// Unknown kinds count as consumers: missing a report beats a false one.
		return useConsume
	}
}
