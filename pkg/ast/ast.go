// Package ast defines Forge's abstract syntax tree: closed Type/Expr/
// Stmt/Decl sum types, a uniform Node facade over all of them, fluent
// value-receiver builders, structural equality that ignores source
// position, and the JSON/CBOR serialization contract.
package ast

import "github.com/sophie-lund/forge/pkg/source"

// Node is the facade every AST struct implements: position, children,
// and the JSON type tag used by the serialization contract.
type Node interface {
	// SourceRange returns the node's source span, or nil if it was
	// synthesized (e.g. a Missing placeholder with no range).
	SourceRange() *source.Range

	// Children returns the node's immediate child nodes in a stable,
	// deterministic order. Absent optional children are omitted, never
	// represented as a nil entry.
	Children() []Node

	// TypeTag returns the JSON "type" discriminator for this node.
	TypeTag() string

	// Equal reports structural equality with other, ignoring
	// SourceRange on both sides.
	Equal(other Node) bool
}

func rangePtr(r source.Range, has bool) *source.Range {
	if !has {
		return nil
	}
	cp := r
	return &cp
}

func nodeEqual(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

func childrenFrom(nodes ...Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
