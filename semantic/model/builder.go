package model

import "github.com/lexiscope/lexiscope/semantic/event"

// Build folds an extractor event stream into a Graph, the same role
// analyzer.AnalyzeSourceCode plays folding node-walk callbacks into a
// linage.PackageModel. Unlike that walk, here the input is already a flat,
// ordered event log, so the fold is a single linear pass with no tree
// traversal of its own.
//
// A DeclarationFound's own range is kept pending until a matching Exported
// arrives (Exported always precedes the read/write it accompanies, per the
// extractor's emission order), so Symbol.Exported can be set without a
// second pass.
func Build(path string, events []event.Event) *Graph {
	g := NewGraph(path)

	symbolByRange := make(map[event.TextRange]*Symbol)

	for _, ev := range events {
		switch e := ev.(type) {
		case event.ScopeStarted:
			g.Scopes = append(g.Scopes, &Scope{
				ID:        e.ScopeID,
				ParentID:  e.ParentScopeID,
				Range:     e.Range_,
				IsClosure: e.IsClosure,
			})

		case event.DeclarationFound:
			sym := &Symbol{
				Name:           e.NameToken.Text,
				DeclaredAt:     e.NameToken.Range,
				ScopeID:        e.ScopeID,
				HoistedScopeID: e.HoistedScopeID,
			}
			g.Symbols = append(g.Symbols, sym)
			symbolByRange[e.NameToken.Range] = sym

		case event.Exported:
			if sym, ok := symbolByRange[e.Range_]; ok {
				sym.Exported = true
			}

		case event.Read:
			g.References = append(g.References, &Reference{
				Kind: Read, Range: e.Range_, DeclaredAt: e.DeclaredAt, ScopeID: e.ScopeID,
			})
		case event.Write:
			g.References = append(g.References, &Reference{
				Kind: Write, Range: e.Range_, DeclaredAt: e.DeclaredAt, ScopeID: e.ScopeID,
			})
		case event.HoistedRead:
			g.References = append(g.References, &Reference{
				Kind: HoistedRead, Range: e.Range_, DeclaredAt: e.DeclaredAt, ScopeID: e.ScopeID,
			})
		case event.HoistedWrite:
			g.References = append(g.References, &Reference{
				Kind: HoistedWrite, Range: e.Range_, DeclaredAt: e.DeclaredAt, ScopeID: e.ScopeID,
			})

		case event.UnresolvedReference:
			g.Unresolved = append(g.Unresolved, &Unresolved{IsRead: e.IsRead, Range: e.Range_})

		case event.ScopeEnded:
			// No graph-shape bookkeeping needed; the Scope was recorded at
			// ScopeStarted and scope_id pairing is the extractor's own
			// invariant, not the builder's concern.
		}
	}

	return g
}
