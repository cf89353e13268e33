package tsquery

import (
	"iter"

	"github.com/lexiscope/lexiscope/semantic/event"
)

// Node is the abstract syntax node the extractor operates on. It is kept
// deliberately flat: rather than modeling separate "binding node" and
// "declaration node" Go types the way biome's Rust code does with
// AnyJsIdentifierBinding/AnyJsBindingDeclaration, every predicate the
// extractor needs is a method on the one interface. A tree-sitter-backed
// node answers them by inspecting its own shape; predicates that don't
// apply to a given node's kind simply return their zero value.
type Node interface {
	// Kind returns the syntax kind used for dispatch in enter/leave.
	Kind() Kind

	// Range returns the node's own text range.
	Range() event.TextRange

	// NameToken returns the identifier token for a binding node. ok is
	// false when the token is unavailable (malformed tree), in which case
	// the extractor silently skips the binding per §7.
	NameToken() (event.Token, bool)

	// ValueToken returns the identifier token for a reference/usage node.
	// ok is false when unavailable, in which case the extractor silently
	// skips the usage per §7.
	ValueToken() (event.Token, bool)

	// Declaration returns the node describing the declaration that owns
	// this binding (e.g. the variable_declarator, the import clause, the
	// class declaration). ok is false for identifiers inside a bogus node,
	// which still produce a best-effort Value declaration per §7.
	Declaration() (Node, bool)

	// DeclarationKind classifies a declaration node returned by
	// Declaration. Called on the declaration node, not the binding node.
	DeclarationKind() DeclarationKind

	// IsExported reports whether the declaration carries an export
	// modifier. Called on a declaration node.
	IsExported() bool

	// IsVarDeclarator reports whether a JsVariableDeclarator-equivalent
	// node declares with `var` (as opposed to `let`/`const`).
	IsVarDeclarator() bool

	// HasTypeToken reports whether an import clause / ts-import-equals
	// declaration carries an explicit `type` modifier.
	HasTypeToken() bool

	// ImportsOnlyTypes reports whether a named import specifier imports
	// only a type.
	ImportsOnlyTypes() bool

	// ExportsOnlyTypes reports whether a named export specifier exports
	// only a type. Called on the specifier ancestor of a reference node.
	ExportsOnlyTypes() bool

	// Parent returns the immediate parent node, if any.
	Parent() (Node, bool)

	// GrandParentKind returns the kind of this node's grandparent.
	GrandParentKind() (Kind, bool)

	// AncestorKindSkipping walks ancestors starting `skip` levels up,
	// returning the kind of the first ancestor for which stopAt returns
	// true. Used to classify a reference identifier as Value or Type by
	// skipping over TsQualifiedName wrapper nodes.
	AncestorKindSkipping(skip int, stopAt func(Kind) bool) (Kind, bool)

	// InConditionalTrueType reports whether this TS type node is the true
	// branch of a conditional type.
	InConditionalTrueType() bool

	// IsTSFunctionType reports whether this TS type node is a function
	// type (which introduces its own parameter scope).
	IsTSFunctionType() bool

	// Children returns this node's children in source order, for callers
	// that drive their own pre-order walk (see Preorder).
	Children() []Node
}

// WalkEvent is one step of a pre-order tree walk: a node is entered once,
// before its children, and left once, after its children.
type WalkEvent struct {
	Enter bool
	Node  Node
}

// Preorder yields Enter/Leave events for root and its descendants in
// depth-first pre-order, exactly the shape extractor.Extractor expects
// its caller to push. The walk is lazy: each WalkEvent is produced only
// as the consumer pulls it, so a caller that stops early (or interleaves
// the walk with other work) never pays for unvisited subtrees.
func Preorder(root Node) iter.Seq[WalkEvent] {
	return func(yield func(WalkEvent) bool) {
		var visit func(n Node) bool
		visit = func(n Node) bool {
			if !yield(WalkEvent{Enter: true, Node: n}) {
				return false
			}
			for _, c := range n.Children() {
				if !visit(c) {
					return false
				}
			}
			return yield(WalkEvent{Enter: false, Node: n})
		}
		visit(root)
	}
}
