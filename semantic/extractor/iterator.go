package extractor

import (
	"iter"

	"github.com/lexiscope/lexiscope/semantic/event"
	"github.com/lexiscope/lexiscope/semantic/tsquery"
)

// SemanticEvents drives an Extractor lazily over the pre-order walk of
// root: each WalkEvent is pulled one at a time from tsquery.Preorder,
// fed into Enter/Leave, and whatever that step produced is drained from
// Pop before the next WalkEvent is pulled. Nothing is materialized ahead
// of the consumer — a range-over-func caller that breaks early leaves
// the rest of the tree unwalked and the rest of the extraction undone.
func SemanticEvents(root tsquery.Node) iter.Seq[event.Event] {
	return func(yield func(event.Event) bool) {
		e := New()
		for step := range tsquery.Preorder(root) {
			if step.Enter {
				e.Enter(step.Node)
			} else {
				e.Leave(step.Node)
			}
			for ev, ok := e.Pop(); ok; ev, ok = e.Pop() {
				if !yield(ev) {
					return
				}
			}
		}
	}
}
