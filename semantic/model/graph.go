// Package model builds a queryable scope graph and symbol table from the
// extractor's event stream, the way analyzer/package.go folds a walk's
// node-handler callbacks into a linage.PackageModel: the event stream is
// the single source of truth, this package is its materialized shape.
package model

import "github.com/lexiscope/lexiscope/semantic/event"

// Scope is one node of the reconstructed scope tree.
type Scope struct {
	ID        int             `json:"id" yaml:"id"`
	ParentID  *int            `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	Range     event.TextRange `json:"range" yaml:"range"`
	IsClosure bool            `json:"isClosure" yaml:"isClosure"`
}

// Symbol is one declared binding. A single Symbol can stand for both the
// Value and Type namespace of the same name (a TS class, for instance):
// the extractor's events never expose which namespace bound a given
// reference, only the declaration site and scope, so the graph does not
// attempt to reconstruct that split either.
type Symbol struct {
	Name           string          `json:"name" yaml:"name"`
	DeclaredAt     event.TextRange `json:"declaredAt" yaml:"declaredAt"`
	ScopeID        int             `json:"scopeId" yaml:"scopeId"`
	HoistedScopeID *int            `json:"hoistedScopeId,omitempty" yaml:"hoistedScopeId,omitempty"`
	Exported       bool            `json:"exported" yaml:"exported"`
}

// ReferenceKind classifies how a Reference relates to its symbol.
type ReferenceKind string

const (
	Read         ReferenceKind = "read"
	Write        ReferenceKind = "write"
	HoistedRead  ReferenceKind = "hoisted_read"
	HoistedWrite ReferenceKind = "hoisted_write"
)

// Reference is a resolved use of a symbol.
type Reference struct {
	Kind       ReferenceKind   `json:"kind" yaml:"kind"`
	Range      event.TextRange `json:"range" yaml:"range"`
	DeclaredAt event.TextRange `json:"declaredAt" yaml:"declaredAt"`
	ScopeID    int             `json:"scopeId" yaml:"scopeId"`
}

// Unresolved is a reference that never bound to any symbol.
type Unresolved struct {
	IsRead bool            `json:"isRead" yaml:"isRead"`
	Range  event.TextRange `json:"range" yaml:"range"`
}

// Graph is the full materialized result of walking one syntax tree through
// the extractor: every scope, every declaration, every resolved and
// unresolved reference. It carries no behavior of its own beyond what
// Build and the report package need.
type Graph struct {
	Path       string        `json:"path,omitempty" yaml:"path,omitempty"`
	Checksum   uint64        `json:"checksum,omitempty" yaml:"checksum,omitempty"`
	Scopes     []*Scope      `json:"scopes" yaml:"scopes"`
	Symbols    []*Symbol     `json:"symbols" yaml:"symbols"`
	References []*Reference  `json:"references" yaml:"references"`
	Unresolved []*Unresolved `json:"unresolved,omitempty" yaml:"unresolved,omitempty"`
}

// NewGraph returns an empty graph, the way linage.NewPackageModel seeds an
// empty PackageModel for a builder to fill in.
func NewGraph(path string) *Graph {
	return &Graph{Path: path}
}
