// Package event defines the events emitted by the semantic extractor.
package event

import "fmt"

// TextRange is a half-open byte range in the original source, matching
// tree-sitter's own byte-range representation.
type TextRange struct {
	Start uint32
	End   uint32
}

// String renders the range as "[start,end)" for debugging and test failure
// messages.
func (r TextRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Token is a name occurrence: the identifier text plus its own range
// (distinct from the range of the node that owns it).
type Token struct {
	Text  string
	Range TextRange
}

// Event is the tagged union emitted by the extractor. Concrete variants are
// ScopeStarted, ScopeEnded, DeclarationFound, Read, HoistedRead, Write,
// HoistedWrite, UnresolvedReference and Exported.
type Event interface {
	// Range is the event's primary source range: for DeclarationFound this
	// is the name token's range, for every other variant it is the range
	// field carried on the struct.
	Range() TextRange
	isEvent()
}

// ScopeStarted is emitted when the extractor opens a new scope.
type ScopeStarted struct {
	Range_         TextRange
	ScopeID        int
	ParentScopeID  *int
	IsClosure      bool
}

func (e ScopeStarted) Range() TextRange { return e.Range_ }
func (ScopeStarted) isEvent()           {}

// ScopeEnded is emitted when a previously opened scope closes.
type ScopeEnded struct {
	Range_  TextRange
	ScopeID int
}

func (e ScopeEnded) Range() TextRange { return e.Range_ }
func (ScopeEnded) isEvent()           {}

// DeclarationFound is emitted when a new symbol declaration is found.
type DeclarationFound struct {
	NameToken       Token
	ScopeID         int
	HoistedScopeID  *int
}

func (e DeclarationFound) Range() TextRange { return e.NameToken.Range }
func (DeclarationFound) isEvent()           {}

// Read is emitted when a symbol is read and its declaration precedes the
// reference textually.
type Read struct {
	Range_     TextRange
	DeclaredAt TextRange
	ScopeID    int
}

func (e Read) Range() TextRange { return e.Range_ }
func (Read) isEvent()           {}

// HoistedRead is emitted when a symbol is read but its declaration is
// hoisted from a position textually after the reference.
type HoistedRead struct {
	Range_     TextRange
	DeclaredAt TextRange
	ScopeID    int
}

func (e HoistedRead) Range() TextRange { return e.Range_ }
func (HoistedRead) isEvent()           {}

// Write is emitted when a symbol is assigned and its declaration precedes
// the assignment textually.
type Write struct {
	Range_     TextRange
	DeclaredAt TextRange
	ScopeID    int
}

func (e Write) Range() TextRange { return e.Range_ }
func (Write) isEvent()           {}

// HoistedWrite is emitted when a symbol is assigned but its declaration is
// hoisted from a position textually after the assignment.
type HoistedWrite struct {
	Range_     TextRange
	DeclaredAt TextRange
	ScopeID    int
}

func (e HoistedWrite) Range() TextRange { return e.Range_ }
func (HoistedWrite) isEvent()           {}

// UnresolvedReference is emitted for a reference that does not bind even at
// the outermost scope.
type UnresolvedReference struct {
	IsRead bool
	Range_ TextRange
}

func (e UnresolvedReference) Range() TextRange { return e.Range_ }
func (UnresolvedReference) isEvent()           {}

// Exported is emitted when a binding is exported. Range points at the
// exported binding's declaration range, or at the range of the reference
// clause that triggered a re-export.
type Exported struct {
	Range_ TextRange
}

func (e Exported) Range() TextRange { return e.Range_ }
func (Exported) isEvent()           {}
