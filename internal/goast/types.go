package goast

import (
	"go/ast"
	"go/types"

	"github.com/sirkon/mustuse/internal/config"
	"github.com/sirkon/mustuse/internal/syntax"
)

// TypeResolver tells Result calls apart by their static types.
type TypeResolver struct {
	info *types.Info
	refs map[config.Reference]struct{}
}

// NewTypeResolver creates a resolver recognizing the given Result types.
func NewTypeResolver(info *types.Info, refs []config.Reference) *TypeResolver {
	set := make(map[config.Reference]struct{}, len(refs))
	for _, ref := range refs {
		set[ref] = struct{}{}
	}

	return &TypeResolver{
		info: info,
		refs: set,
	}
}

// ResultType reports whether the call produces one of the Result types. The
// answer is unknown for foreign nodes, when no Result types are configured
// or when the type checker has no type for the call.
func (r *TypeResolver) ResultType(node syntax.Node) (isResult bool, known bool) {
	if r.info == nil || len(r.refs) == 0 {
		return false, false
	}

	n, ok := node.(*Node)
	if !ok {
		return false, false
	}

	expr, ok := n.AST().(ast.Expr)
	if !ok {
		return false, false
	}

	typ := r.info.TypeOf(expr)
	if typ == nil {
		return false, false
	}

	return r.isResult(typ), true
}

func (r *TypeResolver) isResult(t types.Type) bool {
	switch v := types.Unalias(t).(type) {
	case *types.Tuple:
		for i := 0; i < v.Len(); i++ {
			if r.isResult(v.At(i).Type()) {
				return true
			}
		}
		return false

	case *types.Pointer:
		return r.isResult(v.Elem())

	case *types.Named:
		obj := v.Origin().Obj()
		if obj.Pkg() == nil {
			return false
		}

		_, ok := r.refs[config.Reference{
			Package: obj.Pkg().Path(),
			Type:    obj.Name(),
		}]
		return ok

	default:
		return false
	}
}
