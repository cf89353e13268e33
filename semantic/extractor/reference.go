package extractor

import "github.com/lexiscope/lexiscope/semantic/event"

// referenceKind discriminates the four ways a pending reference can be
// resolved once its binding is known.
type referenceKind uint8

const (
	refRead referenceKind = iota
	refWrite
	refExport
	refExportType
)

// reference is a use of a name awaiting resolution against a binding. It is
// accumulated on the scope that observed it and resolved (or promoted, or
// reported unresolved) when that scope closes.
type reference struct {
	kind  referenceKind
	rng   event.TextRange
}

func (r reference) isWrite() bool  { return r.kind == refWrite }
func (r reference) isExport() bool { return r.kind == refExport || r.kind == refExportType }
