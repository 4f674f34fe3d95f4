package syntax

import "fmt"

// Kind classifies syntax nodes. The set is closed: hosts map their own node
// types onto it and anything without a better match becomes KindOther.
type Kind int

const (
	KindInvalid Kind = iota

	// KindProgram is the root of a file.
	KindProgram

	// Statements.
	KindExpressionStatement
	KindDeferStatement // defer and go statements
	KindVariableDeclarator
	KindAssignment
	KindReturnStatement
	KindIfStatement
	KindLoop
	KindSwitch
	KindThrow
	KindSend

	// Wrappers that hand their operand's value over to their own parent.
	KindParenthesized
	KindAwait
	KindChain
	KindNonNull

	// Expressions.
	KindCallExpression
	KindMemberExpression
	KindIndex
	KindBinary
	KindUnary
	KindConditional
	KindArrowFunction
	KindArrayLiteral
	KindCompositeLiteral
	KindProperty
	KindSpread
	KindTemplate
	KindYield
	KindSequence
	KindTypeAssertion
	KindIdentifier
	KindLiteral

	KindOther
)

var kindNames = map[Kind]string{
	KindProgram:             "Program",
	KindExpressionStatement: "ExpressionStatement",
	KindDeferStatement:      "DeferStatement",
	KindVariableDeclarator:  "VariableDeclarator",
	KindAssignment:          "Assignment",
	KindReturnStatement:     "ReturnStatement",
	KindIfStatement:         "IfStatement",
	KindLoop:                "Loop",
	KindSwitch:              "Switch",
	KindThrow:               "Throw",
	KindSend:                "Send",
	KindParenthesized:       "Parenthesized",
	KindAwait:               "Await",
	KindChain:               "Chain",
	KindNonNull:             "NonNull",
	KindCallExpression:      "CallExpression",
	KindMemberExpression:    "MemberExpression",
	KindIndex:               "Index",
	KindBinary:              "Binary",
	KindUnary:               "Unary",
	KindConditional:         "Conditional",
	KindArrowFunction:       "ArrowFunction",
	KindArrayLiteral:        "ArrayLiteral",
	KindCompositeLiteral:    "CompositeLiteral",
	KindProperty:            "Property",
	KindSpread:              "Spread",
	KindTemplate:            "Template",
	KindYield:               "Yield",
	KindSequence:            "Sequence",
	KindTypeAssertion:       "TypeAssertion",
	KindIdentifier:          "Identifier",
	KindLiteral:             "Literal",
	KindOther:               "Other",
}

func (k Kind) String() string {
	v, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}
