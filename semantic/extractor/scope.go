package extractor

import "github.com/lexiscope/lexiscope/semantic/event"

// hoisting is the policy a scope applies to declarations opened within it:
// either they belong to this scope, or they are pushed out to the nearest
// enclosing scope that doesn't hoist.
type hoisting uint8

const (
	noHoist hoisting = iota
	hoistToParent
)

// shadowEntry records a binding this scope's insert hid from an enclosing
// scope, so the outer range can be reinstated when the scope closes.
type shadowEntry struct {
	name bindingName
	rng  event.TextRange
}

// scope holds everything local to one open lexical region: which bindings
// it introduced, which references are still waiting to be matched, which
// outer bindings it temporarily shadowed, and its hoisting policy.
//
// Rather than a map-per-scope symbol table, scope only tracks what it
// changed; the single flat binding map lives on the extractor itself
// (bindings field) and this is the undo log (see extractor.go's popScope).
type scope struct {
	scopeID    int
	bindings   []bindingName
	references map[bindingName][]reference
	// refOrder preserves first-insertion order of reference keys so that
	// scope close iterates them deterministically: Go map iteration order
	// is randomized, but §8 invariant 6 requires reproducible event order.
	refOrder []bindingName
	shadowed []shadowEntry
	hoisting hoisting
}

func newScope(id int, h hoisting) *scope {
	return &scope{
		scopeID:    id,
		references: make(map[bindingName][]reference),
		hoisting:   h,
	}
}

func (s *scope) addBinding(name bindingName) {
	s.bindings = append(s.bindings, name)
}

func (s *scope) addShadow(name bindingName, rng event.TextRange) {
	s.shadowed = append(s.shadowed, shadowEntry{name: name, rng: rng})
}

func (s *scope) addReference(name bindingName, ref reference) {
	if _, ok := s.references[name]; !ok {
		s.refOrder = append(s.refOrder, name)
	}
	s.references[name] = append(s.references[name], ref)
}

// promoteReferences appends refs (preserving their relative order) to this
// scope's pending references for name, used when a reference fails to
// resolve in a child scope and is pushed one level out.
func (s *scope) promoteReferences(name bindingName, refs []reference) {
	if _, ok := s.references[name]; !ok {
		s.refOrder = append(s.refOrder, name)
	}
	s.references[name] = append(s.references[name], refs...)
}
