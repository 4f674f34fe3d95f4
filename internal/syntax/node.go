package syntax

// Node is a read-only view of a host syntax tree node.
type Node interface {
	// Kind returns the node classification.
	Kind() Kind

	// Text renders the exact source text of the node. It reports false
	// when the host cannot derive it.
	Text() (string, bool)

	// Parent returns the immediate syntactic parent or nil at the root.
	Parent() Node
}

// CalleeNamer is implemented by call nodes able to name their outermost
// callee, i.e. "unwrapOr" for a.b.andThen(x).unwrapOr(y).
type CalleeNamer interface {
	CalleeName() (string, bool)
}

// Basic is an in-memory Node implementation.
type Basic struct {
	kind     Kind
	text     string
	hasText  bool
	callee   string
	parent   *Basic
	children []*Basic
}

// NewNode creates a detached node with the given kind and source text.
func NewNode(kind Kind, text string) *Basic {
	return &Basic{
		kind:    kind,
		text:    text,
		hasText: true,
	}
}

// NewOpaque creates a node whose source text is not available.
func NewOpaque(kind Kind) *Basic {
	return &Basic{kind: kind}
}

// Append attaches children to n in source order and returns n.
func (n *Basic) Append(children ...*Basic) *Basic {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}

	return n
}

// WithCallee sets the outermost callee name of a call node and returns n.
func (n *Basic) WithCallee(name string) *Basic {
	n.callee = name
	return n
}

func (n *Basic) Kind() Kind {
	return n.kind
}

func (n *Basic) Text() (string, bool) {
	return n.text, n.hasText
}

func (n *Basic) Parent() Node {
	if n.parent == nil {
		return nil
	}

	return n.parent
}

func (n *Basic) CalleeName() (string, bool) {
	return n.callee, n.callee != ""
}

// Children returns the node children in source order.
func (n *Basic) Children() []*Basic {
	return n.children
}

// Walk visits root and its descendants depth-first, left to right. The
// visit function returns false to skip the children of a node.
func Walk(root *Basic, visit func(n *Basic) bool) {
	if root == nil {
		return
	}
	if !visit(root) {
		return
	}

	for _, c := range root.children {
		Walk(c, visit)
	}
}

// Calls returns all call expressions under root in traversal order.
func Calls(root *Basic) []*Basic {
	var res []*Basic
	Walk(root, func(n *Basic) bool {
		if n.kind == KindCallExpression {
			res = append(res, n)
		}
		return true
	})

	return res
}
