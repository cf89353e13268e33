package model

// Merge concatenates multiple per-file Graphs into a single project-level
// Graph, the same shape as linage.Merge folding per-package PackageModels
// into one global model. Scope and symbol ids are only unique within a
// single file's event stream, so Merge does not attempt to deduplicate or
// renumber them across files; callers that need a global id qualify it
// with the owning Graph's Path themselves.
func Merge(graphs ...*Graph) *Graph {
	merged := NewGraph("")
	for _, g := range graphs {
		if g == nil {
			continue
		}
		merged.Scopes = append(merged.Scopes, g.Scopes...)
		merged.Symbols = append(merged.Symbols, g.Symbols...)
		merged.References = append(merged.References, g.References...)
		merged.Unresolved = append(merged.Unresolved, g.Unresolved...)
	}
	return merged
}
