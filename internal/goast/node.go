// Package goast exposes go/ast nodes to the detector.
package goast

import (
	"go/ast"

	"github.com/sirkon/mustuse/internal/syntax"
)

// Node is a syntax.Node view over the last element of an inspector stack.
// The view shares the stack, so it is only valid while the traversal
// callback that produced the stack runs.
type Node struct {
	src   *Source
	stack []ast.Node
}

var (
	_ syntax.Node        = (*Node)(nil)
	_ syntax.CalleeNamer = (*Node)(nil)
)

// At returns a view of the last node of the stack, where every element is
// the parent of the next one. It returns nil for an empty stack.
func At(src *Source, stack []ast.Node) *Node {
	if len(stack) == 0 {
		return nil
	}

	return &Node{src: src, stack: stack}
}

// AST returns the underlying node.
func (n *Node) AST() ast.Node {
	return n.stack[len(n.stack)-1]
}

func (n *Node) Kind() syntax.Kind {
	return KindOf(n.AST())
}

func (n *Node) Text() (string, bool) {
	return n.src.Text(n.AST())
}

func (n *Node) Parent() syntax.Node {
	if len(n.stack) < 2 {
		return nil
	}

	return &Node{src: n.src, stack: n.stack[:len(n.stack)-1]}
}

// CalleeName returns the name of the called function or method.
func (n *Node) CalleeName() (string, bool) {
	call, ok := n.AST().(*ast.CallExpr)
	if !ok {
		return "", false
	}

	fun := call.Fun
	for {
		switch v := fun.(type) {
		case *ast.ParenExpr:
			fun = v.X
		case *ast.IndexExpr:
			fun = v.X
		case *ast.IndexListExpr:
			fun = v.X
		case *ast.Ident:
			return v.Name, true
		case *ast.SelectorExpr:
			return v.Sel.Name, true
		default:
			return "", false
		}
	}
}

// KindOf maps Go syntax nodes onto the detector node kinds.
func KindOf(n ast.Node) syntax.Kind {
	switch n.(type) {
	case nil:
		return syntax.KindInvalid
	case *ast.File:
		return syntax.KindProgram
	case *ast.ExprStmt:
		return syntax.KindExpressionStatement
	case *ast.DeferStmt, *ast.GoStmt:
		return syntax.KindDeferStatement
	case *ast.ParenExpr:
		return syntax.KindParenthesized
	case *ast.ValueSpec:
		return syntax.KindVariableDeclarator
	case *ast.AssignStmt:
		return syntax.KindAssignment
	case *ast.ReturnStmt:
		return syntax.KindReturnStatement
	case *ast.IfStmt:
		return syntax.KindIfStatement
	case *ast.ForStmt, *ast.RangeStmt:
		return syntax.KindLoop
	case *ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.CaseClause, *ast.SelectStmt, *ast.CommClause:
		return syntax.KindSwitch
	case *ast.SendStmt:
		return syntax.KindSend
	case *ast.CallExpr:
		return syntax.KindCallExpression
	case *ast.SelectorExpr:
		return syntax.KindMemberExpression
	case *ast.IndexExpr, *ast.IndexListExpr, *ast.SliceExpr:
		return syntax.KindIndex
	case *ast.BinaryExpr:
		return syntax.KindBinary
	case *ast.UnaryExpr, *ast.StarExpr:
		return syntax.KindUnary
	case *ast.CompositeLit:
		return syntax.KindCompositeLiteral
	case *ast.KeyValueExpr:
		return syntax.KindProperty
	case *ast.TypeAssertExpr:
		return syntax.KindTypeAssertion
	case *ast.FuncLit:
		return syntax.KindArrowFunction
	case *ast.Ident:
		return syntax.KindIdentifier
	case *ast.BasicLit:
		return syntax.KindLiteral
	default:
		return syntax.KindOther
	}
}
