// Package detector implements the must-use-result detection engine.
//
// For every call expression a host forwards to [Detector.Inspect] the
// detector answers two questions:
//
//   - Does the call produce a Result? A configured [TypeResolver] answers
//     first. Without one, or when it has no type for the node, the rendered
//     call text is searched for a whole-word [Vocabulary] name (mapErr, map,
//     andThen, orElse, match, unwrapOr by default).
//   - Is the value discarded? Parentheses and similar wrappers are skipped;
//     the call is discarded when nothing is left above it or the first real
//     parent is an expression statement, a defer/go statement or the
//     program root.
//
// Matching the whole text is a heuristic: foo(andThen) and
// log(result.map(f)) are both treated as Result-producing. [ScopeCallee]
// narrows matching to the outermost callee name.
package detector
