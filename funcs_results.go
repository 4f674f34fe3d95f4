package mustuse

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/sirkon/mustuse/internal/config"
)

func newKnownResultTypes(custom []config.Reference, withPredefined bool) []config.Reference {
	predefined := map[config.Reference]struct{}{
		{Package: "github.com/samber/mo", Type: "Result"}:      {},
		{Package: "github.com/IBM/fp-go/either", Type: "Either"}: {},
	}

	known := make(map[config.Reference]struct{}, len(custom)+len(predefined))
	for _, ref := range custom {
		known[ref] = struct{}{}
	}
	if withPredefined {
		maps.Insert(known, maps.All(predefined))
	}

	return slices.SortedFunc(maps.Keys(known), func(a, b config.Reference) int {
		return cmp.Or(
			strings.Compare(a.Package, b.Package),
			strings.Compare(a.Type, b.Type),
		)
	})
}
