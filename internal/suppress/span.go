package suppress

import (
	"go/token"

	"github.com/sirkon/rbtree"
)

// span stores a suppressed [start,end] range and, if needed, a nested
// RB-tree for suppressed ranges fully contained in it.
type span struct {
	start token.Pos
	end   token.Pos

	children *rbtree.Tree[*span]
}

// Cmp defines ordering for the RB-tree as "disjoint by position":
// -1 when n ends before other starts, 1 when n starts after other ends and
// 0 on any overlap.
//
// Spans come from syntax nodes, so two overlapping spans are always in a
// containment relationship.
func (n *span) Cmp(other *span) int {
	if n.end < other.start {
		return -1
	}
	if n.start > other.end {
		return 1
	}
	return 0
}

func contains(a, b *span) bool {
	return a.start <= b.start && a.end >= b.end
}

// attachInto inserts s into t:
//   - with no overlapping span s becomes a sibling;
//   - if s contains the overlapping r, r is overwritten in place by s and
//     the old r is re-attached as a child of s;
//   - if r contains s, s goes into r children.
func attachInto(t *rbtree.Tree[*span], s *span) {
	r := t.InsertReturn(s)
	if r == s {
		return
	}

	if contains(s, r) {
		old := *r
		*r = *s
		if r.children == nil {
			r.children = rbtree.New[*span]()
		}
		attachInto(r.children, &old)
		return
	}

	if contains(r, s) {
		if r.children == nil {
			r.children = rbtree.New[*span]()
		}
		attachInto(r.children, s)
		return
	}

	panic("attachInto: partial-overlap spans are not supported")
}

func descendSearch(n *span, pos token.Pos) *span {
	if n.children == nil {
		return n
	}

	child := n.children.Search(&span{start: pos, end: pos})
	if child == nil {
		return n
	}

	return descendSearch(child, pos)
}
