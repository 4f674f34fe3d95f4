// Package syntax defines the narrow view of a host syntax tree the
// must-use-result detector works with.
//
// A host (the go/analysis adapter in internal/goast, or any other parser
// integration) exposes its nodes through [Node]: a kind from the closed
// [Kind] set, the exact source text of the node and its immediate parent.
// The detector never mutates nodes and never keeps them past a single
// Inspect call.
//
// The package also carries [Basic], a small in-memory tree for hosts that
// build their own nodes and for tests, together with [Walk], a pre-order
// traversal in source order.
package syntax
