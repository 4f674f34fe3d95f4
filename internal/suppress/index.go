// Package suppress locates source ranges where reports are silenced by an
// ignore directive comment, e.g.
//
//	//mustuse:ignore the result is checked by the caller
//	r.AndThen(step)
//
// A directive following code silences the statement or declaration it
// trails, a directive on its own line silences the one on the line below.
package suppress

import (
	"go/ast"
	"go/token"
	"strings"

	"github.com/sirkon/rbtree"
)

// Index holds suppressed ranges of a single file.
type Index struct {
	tree *rbtree.Tree[*span]
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{tree: rbtree.New[*span]()}
}

// Add registers a suppressed [start,end] range. A range containing already
// registered ones must be added before them.
func (x *Index) Add(start, end token.Pos) {
	attachInto(x.tree, &span{start: start, end: end})
}

// Innermost returns the most specific suppressed range covering pos.
func (x *Index) Innermost(pos token.Pos) (start, end token.Pos, ok bool) {
	res := x.tree.Search(&span{start: pos, end: pos})
	if res == nil {
		return token.NoPos, token.NoPos, false
	}

	s := descendSearch(res, pos)
	return s.start, s.end, true
}

// Covers checks if pos lies in any suppressed range.
func (x *Index) Covers(pos token.Pos) bool {
	_, _, ok := x.Innermost(pos)
	return ok
}

// Collect builds the index of a file for the given directive. A trailing
// directive applies to the innermost statement or declaration ending on its
// line before it, a directive on its own line applies to the line below.
func Collect(fset *token.FileSet, file *ast.File, directive string) *Index {
	x := NewIndex()

	directives := directivePositions(file, directive)
	if len(directives) == 0 {
		return x
	}

	// Declarations go first and statements in pre-order, so outer ranges
	// always precede the ones they contain.
	var candidates []ast.Node
	for _, decl := range file.Decls {
		candidates = append(candidates, decl)
	}
	firstEnds := map[int]token.Pos{}
	ast.Inspect(file, func(n ast.Node) bool {
		switch n.(type) {
		case nil, *ast.File, *ast.CommentGroup, *ast.Comment:
			return true
		case *ast.BlockStmt:
		case ast.Stmt:
			candidates = append(candidates, n)
		}

		line := fset.Position(n.End()).Line
		if end, ok := firstEnds[line]; !ok || n.End() < end {
			firstEnds[line] = n.End()
		}
		return true
	})

	starts := make(map[int]bool, len(candidates))
	for _, n := range candidates {
		starts[fset.Position(n.Pos()).Line] = true
	}

	picked := map[ast.Node]bool{}
	nextLines := map[int]bool{}
	for _, pos := range directives {
		line := fset.Position(pos).Line
		if end, ok := firstEnds[line]; ok && end <= pos {
			if n := trailed(fset, candidates, pos); n != nil {
				picked[n] = true
				continue
			}
		}

		if starts[line] {
			nextLines[line] = true
		} else {
			nextLines[line+1] = true
		}
	}

	for _, n := range candidates {
		if picked[n] || nextLines[fset.Position(n.Pos()).Line] {
			x.Add(n.Pos(), n.End())
		}
	}

	return x
}

// trailed returns the innermost candidate ending on the line of pos before
// it. Candidates starting on the line are used when none ends there, as with
// a directive after an opening brace.
func trailed(fset *token.FileSet, candidates []ast.Node, pos token.Pos) ast.Node {
	line := fset.Position(pos).Line

	var res ast.Node
	for _, n := range candidates {
		if n.End() > pos || fset.Position(n.End()).Line != line {
			continue
		}
		if res == nil || n.End() > res.End() || (n.End() == res.End() && n.Pos() >= res.Pos()) {
			res = n
		}
	}
	if res != nil {
		return res
	}

	for _, n := range candidates {
		if n.Pos() > pos || fset.Position(n.Pos()).Line != line {
			continue
		}
		if res == nil || n.Pos() >= res.Pos() {
			res = n
		}
	}

	return res
}

func directivePositions(file *ast.File, directive string) []token.Pos {
	var res []token.Pos
	for _, group := range file.Comments {
		for _, c := range group.List {
			text, ok := strings.CutPrefix(c.Text, "//")
			if !ok {
				continue
			}

			rest, ok := strings.CutPrefix(text, directive)
			if !ok || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
				continue
			}

			res = append(res, c.Slash)
		}
	}

	return res
}
