package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirkon/mustuse/internal/rules"
	"github.com/sirkon/mustuse/internal/syntax"
)

type reported struct {
	node syntax.Node
	id   rules.MessageID
}

func collect() (*[]reported, ReportFunc) {
	var res []reported
	return &res, func(node syntax.Node, id rules.MessageID) {
		res = append(res, reported{node: node, id: id})
	}
}

// knownTypes resolves every node listed and leaves the rest to the vocabulary.
type knownTypes map[syntax.Node]bool

func (k knownTypes) ResultType(node syntax.Node) (bool, bool) {
	v, ok := k[node]
	return v, ok
}

func node(kind syntax.Kind, text string, children ...*syntax.Basic) *syntax.Basic {
	return syntax.NewNode(kind, text).Append(children...)
}

func call(text, callee string, children ...*syntax.Basic) *syntax.Basic {
	return node(syntax.KindCallExpression, text, children...).WithCallee(callee)
}

func program(stmts ...*syntax.Basic) *syntax.Basic {
	return node(syntax.KindProgram, "", stmts...)
}

func exprStmt(text string, x *syntax.Basic) *syntax.Basic {
	return node(syntax.KindExpressionStatement, text, x)
}

type fixture struct {
	name string
	// target is the call under inspection, its ancestors are already attached.
	target *syntax.Basic
	// isResult is what a type-aware host would know about the target.
	isResult      bool
	wantHeuristic bool
	wantTyped     bool
}

func fixtures() []fixture {
	var res []fixture
	add := func(name string, target *syntax.Basic, isResult, heuristic, typed bool) {
		res = append(res, fixture{
			name:          name,
			target:        target,
			isResult:      isResult,
			wantHeuristic: heuristic,
			wantTyped:     typed,
		})
	}

	// result.andThen(f);
	c := call("result.andThen(f)", "andThen")
	program(exprStmt("result.andThen(f);", c))
	add("discarded andThen statement", c, true, true, true)

	// const x = result.unwrapOr(0);
	c = call("result.unwrapOr(0)", "unwrapOr")
	program(node(syntax.KindVariableDeclarator, "x = result.unwrapOr(0)", c))
	add("assigned unwrapOr", c, false, false, false)

	// doSomething();
	c = call("doSomething()", "doSomething")
	program(exprStmt("doSomething();", c))
	add("non-vocabulary call", c, false, false, false)

	// result.match(onOk, onErr) without any parent.
	c = call("result.match(onOk, onErr)", "match")
	add("root call", c, true, true, true)

	// if (result.mapErr(log)) {}
	c = call("result.mapErr(log)", "mapErr")
	program(node(syntax.KindIfStatement, "if (result.mapErr(log)) {}", c))
	add("if condition", c, true, false, false)

	// return result.map(f);
	c = call("result.map(f)", "map")
	program(node(syntax.KindReturnStatement, "return result.map(f);", c))
	add("returned", c, true, false, false)

	// x = result.orElse(g);
	c = call("result.orElse(g)", "orElse")
	program(exprStmt("x = result.orElse(g);", node(syntax.KindAssignment, "x = result.orElse(g)", c)))
	add("assignment", c, true, false, false)

	// ok && result.andThen(f);
	c = call("result.andThen(f)", "andThen")
	program(exprStmt("ok && result.andThen(f);", node(syntax.KindBinary, "ok && result.andThen(f)", c)))
	add("operand", c, true, false, false)

	// use(result.andThen(f));
	c = call("result.andThen(f)", "andThen")
	program(exprStmt("use(result.andThen(f));", call("use(result.andThen(f))", "use", c)))
	add("argument", c, true, false, false)

	// console.log(result.map(f));
	inner := call("result.map(f)", "map")
	outer := call("console.log(result.map(f))", "log", inner)
	program(exprStmt("console.log(result.map(f));", outer))
	add("nested argument of standalone call", inner, true, false, false)
	add("standalone call around nested vocabulary call", outer, false, true, false)

	// result.andThen(f).unwrapOr(0);
	inner = call("result.andThen(f)", "andThen")
	outer = call("result.andThen(f).unwrapOr(0)", "unwrapOr",
		node(syntax.KindMemberExpression, "result.andThen(f).unwrapOr", inner),
	)
	program(exprStmt("result.andThen(f).unwrapOr(0);", outer))
	add("chain receiver", inner, true, false, false)
	add("chain head", outer, false, true, false)

	// (result.andThen(f));
	c = call("result.andThen(f)", "andThen")
	program(exprStmt("(result.andThen(f));", node(syntax.KindParenthesized, "(result.andThen(f))", c)))
	add("parenthesized", c, true, true, true)

	// await result.andThen(f);
	c = call("result.andThen(f)", "andThen")
	program(exprStmt("await result.andThen(f);", node(syntax.KindAwait, "await result.andThen(f)", c)))
	add("awaited", c, true, true, true)

	// const y = (await result.andThen(f));
	c = call("result.andThen(f)", "andThen")
	program(node(syntax.KindVariableDeclarator, "y = (await result.andThen(f))",
		node(syntax.KindParenthesized, "(await result.andThen(f))",
			node(syntax.KindAwait, "await result.andThen(f)", c),
		),
	))
	add("awaited and assigned", c, true, false, false)

	// defer r.AndThen(f)
	c = call("r.andThen(f)", "andThen")
	program(node(syntax.KindDeferStatement, "defer r.andThen(f)", c))
	add("deferred", c, true, true, true)

	// () => result.map(f)
	c = call("result.map(f)", "map")
	program(exprStmt("() => result.map(f);", node(syntax.KindArrowFunction, "() => result.map(f)", c)))
	add("arrow body", c, true, false, false)

	// foo(andThen);
	c = call("foo(andThen)", "foo")
	program(exprStmt("foo(andThen);", c))
	add("vocabulary word in argument", c, false, true, false)

	// result.mapper(f);
	c = call("result.mapper(f)", "mapper")
	program(exprStmt("result.mapper(f);", c))
	add("word boundary", c, false, false, false)

	// result._unsafeUnwrap();
	c = call("result._unsafeUnwrap()", "_unsafeUnwrap")
	program(exprStmt("result._unsafeUnwrap();", c))
	add("unsafe unwrap", c, false, false, false)

	// something.then(r => r).chain();  typed host knows it is a Result
	c = call("something.then(r => r).chain()", "chain")
	program(exprStmt("something.then(r => r).chain();", c))
	add("result without vocabulary", c, true, false, true)

	// weird(result.map(f)) under an unknown kind
	c = call("result.map(f)", "map")
	program(exprStmt("", node(syntax.Kind(1000), "weird(result.map(f))", c)))
	add("unknown parent kind", c, true, false, false)

	return res
}

func TestDetectorHeuristic(t *testing.T) {
	for _, tt := range fixtures() {
		t.Run(tt.name, func(t *testing.T) {
			got, report := collect()
			New(report).Inspect(tt.target)

			if !tt.wantHeuristic {
				assert.Empty(t, *got)
				return
			}

			require.Len(t, *got, 1)
			assert.Same(t, tt.target, (*got)[0].node)
			assert.Equal(t, rules.MessageMustUse, (*got)[0].id)
		})
	}
}

func TestDetectorTyped(t *testing.T) {
	types := knownTypes{}
	all := fixtures()
	for _, tt := range all {
		types[tt.target] = tt.isResult
	}

	for _, tt := range all {
		t.Run(tt.name, func(t *testing.T) {
			got, report := collect()
			New(report, WithTypeResolver(types)).Inspect(tt.target)

			if !tt.wantTyped {
				assert.Empty(t, *got)
				return
			}

			require.Len(t, *got, 1)
			assert.Same(t, tt.target, (*got)[0].node)
		})
	}
}

func TestDetectorTypedFallsBackToVocabulary(t *testing.T) {
	c := call("result.andThen(f)", "andThen")
	program(exprStmt("result.andThen(f);", c))

	got, report := collect()
	New(report, WithTypeResolver(knownTypes{})).Inspect(c)

	assert.Len(t, *got, 1)
}

func TestDetectorCalleeScope(t *testing.T) {
	inner := call("result.map(f)", "map")
	outer := call("console.log(result.map(f))", "log", inner)
	program(exprStmt("console.log(result.map(f));", outer))

	got, report := collect()
	d := New(report, WithScope(ScopeCallee))
	for _, c := range syntax.Calls(outer) {
		d.Inspect(c)
	}
	assert.Empty(t, *got)

	// Nodes without a callee name are matched by their text.
	anon := syntax.NewNode(syntax.KindCallExpression, "result.andThen(f)")
	program(exprStmt("result.andThen(f);", anon))
	d.Inspect(anon)
	assert.Len(t, *got, 1)
}

func TestDetectorCustomVocabulary(t *testing.T) {
	vocab, err := NewVocabulary("flatMap")
	require.NoError(t, err)

	flat := call("opt.flatMap(f)", "flatMap")
	plain := call("opt.andThen(f)", "andThen")
	program(exprStmt("opt.flatMap(f);", flat), exprStmt("opt.andThen(f);", plain))

	got, report := collect()
	d := New(report, WithVocabulary(vocab))
	d.Inspect(flat)
	d.Inspect(plain)

	require.Len(t, *got, 1)
	assert.Same(t, flat, (*got)[0].node)
}

func TestDetectorMissingText(t *testing.T) {
	c := syntax.NewOpaque(syntax.KindCallExpression)
	program(exprStmt("result.andThen(f);", c))

	got, report := collect()
	New(report).Inspect(c)
	assert.Empty(t, *got)
}

func TestDetectorNilInputs(t *testing.T) {
	got, report := collect()
	New(report).Inspect(nil)
	assert.Empty(t, *got)

	c := call("result.andThen(f)", "andThen")
	assert.NotPanics(t, func() { New(nil).Inspect(c) })
}

func TestDetectorIdempotent(t *testing.T) {
	c := call("result.andThen(f)", "andThen")
	program(exprStmt("result.andThen(f);", c))

	got, report := collect()
	d := New(report)
	d.Inspect(c)
	d.Inspect(c)

	require.Len(t, *got, 2)
	assert.Equal(t, (*got)[0], (*got)[1])
}

func TestDetectorTraversal(t *testing.T) {
	// result.andThen(f); const x = result.unwrapOr(0); doSomething(); use(r.map(g));
	root := program(
		exprStmt("result.andThen(f);", call("result.andThen(f)", "andThen")),
		node(syntax.KindVariableDeclarator, "x = result.unwrapOr(0)", call("result.unwrapOr(0)", "unwrapOr")),
		exprStmt("doSomething();", call("doSomething()", "doSomething")),
		exprStmt("use(r.map(g));", call("use(r.map(g))", "use", call("r.map(g)", "map"))),
	)

	got, report := collect()
	d := New(report)
	for _, c := range syntax.Calls(root) {
		d.Inspect(c)
	}

	var texts []string
	for _, r := range *got {
		text, _ := r.node.Text()
		texts = append(texts, text)
	}
	assert.Equal(t, []string{"result.andThen(f)", "use(r.map(g))"}, texts)
}
