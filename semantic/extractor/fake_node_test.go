package extractor_test

import (
	"github.com/lexiscope/lexiscope/semantic/event"
	"github.com/lexiscope/lexiscope/semantic/tsquery"
)

// fakeNode is a dependency-free tsquery.Node used to drive the extractor
// with hand-built trees, independent of go-tree-sitter. It lets each test
// script the syntax-layer predicates directly rather than relying on a
// real grammar, the way the extractor's own unit tests are scoped: this
// package exercises the state machine, not the tree-sitter adapter (that
// lives in semantic/tsquery, which has no tests of its own; real parses
// reach it only through semantic/batch's FromSource tests).
type fakeNode struct {
	kind     tsquery.Kind
	rng      event.TextRange
	name     *event.Token
	value    *event.Token
	decl     *fakeNode
	declKind tsquery.DeclarationKind

	exported         bool
	isVarDeclarator  bool
	hasTypeToken     bool
	importsOnlyTypes bool
	exportsOnlyTypes bool

	parent *fakeNode

	ancestorKind  tsquery.Kind
	ancestorFound bool

	inConditionalTrue bool
	isTSFunctionType  bool

	children []*fakeNode
}

func node(kind tsquery.Kind, start, end uint32) *fakeNode {
	return &fakeNode{kind: kind, rng: event.TextRange{Start: start, End: end}}
}

func (n *fakeNode) withName(text string, start, end uint32) *fakeNode {
	n.name = &event.Token{Text: text, Range: event.TextRange{Start: start, End: end}}
	return n
}

func (n *fakeNode) withValue(text string, start, end uint32) *fakeNode {
	n.value = &event.Token{Text: text, Range: event.TextRange{Start: start, End: end}}
	return n
}

func (n *fakeNode) withDecl(d *fakeNode, kind tsquery.DeclarationKind) *fakeNode {
	n.decl = d
	d.declKind = kind
	return n
}

func (n *fakeNode) withAncestor(kind tsquery.Kind) *fakeNode {
	n.ancestorKind = kind
	n.ancestorFound = true
	return n
}

func (n *fakeNode) addChildren(children ...*fakeNode) *fakeNode {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

func (n *fakeNode) Kind() tsquery.Kind         { return n.kind }
func (n *fakeNode) Range() event.TextRange     { return n.rng }
func (n *fakeNode) NameToken() (event.Token, bool) {
	if n.name == nil {
		return event.Token{}, false
	}
	return *n.name, true
}
func (n *fakeNode) ValueToken() (event.Token, bool) {
	if n.value == nil {
		return event.Token{}, false
	}
	return *n.value, true
}
func (n *fakeNode) Declaration() (tsquery.Node, bool) {
	if n.decl == nil {
		return nil, false
	}
	return n.decl, true
}
func (n *fakeNode) DeclarationKind() tsquery.DeclarationKind { return n.declKind }
func (n *fakeNode) IsExported() bool                         { return n.exported }
func (n *fakeNode) IsVarDeclarator() bool                    { return n.isVarDeclarator }
func (n *fakeNode) HasTypeToken() bool                       { return n.hasTypeToken }
func (n *fakeNode) ImportsOnlyTypes() bool                   { return n.importsOnlyTypes }
func (n *fakeNode) ExportsOnlyTypes() bool                   { return n.exportsOnlyTypes }

func (n *fakeNode) Parent() (tsquery.Node, bool) {
	if n.parent == nil {
		return nil, false
	}
	return n.parent, true
}

func (n *fakeNode) GrandParentKind() (tsquery.Kind, bool) {
	if n.parent == nil || n.parent.parent == nil {
		return tsquery.KindOther, false
	}
	return n.parent.parent.kind, true
}

func (n *fakeNode) AncestorKindSkipping(skip int, stopAt func(tsquery.Kind) bool) (tsquery.Kind, bool) {
	return n.ancestorKind, n.ancestorFound
}

func (n *fakeNode) InConditionalTrueType() bool { return n.inConditionalTrue }
func (n *fakeNode) IsTSFunctionType() bool      { return n.isTSFunctionType }

func (n *fakeNode) Children() []tsquery.Node {
	out := make([]tsquery.Node, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	return out
}
