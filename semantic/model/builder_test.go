package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexiscope/lexiscope/semantic/event"
	"github.com/lexiscope/lexiscope/semantic/model"
)

func TestBuildGraph(t *testing.T) {
	declRange := event.TextRange{Start: 6, End: 7}
	readRange := event.TextRange{Start: 20, End: 21}

	events := []event.Event{
		event.ScopeStarted{Range_: event.TextRange{Start: 0, End: 30}, ScopeID: 0, IsClosure: false},
		event.DeclarationFound{NameToken: event.Token{Text: "C", Range: declRange}, ScopeID: 0},
		event.Exported{Range_: declRange},
		event.Read{Range_: readRange, DeclaredAt: declRange, ScopeID: 0},
		event.ScopeEnded{Range_: event.TextRange{Start: 0, End: 30}, ScopeID: 0},
	}

	g := model.Build("widget.ts", events)

	require.Len(t, g.Scopes, 1)
	assert.Equal(t, 0, g.Scopes[0].ID)

	require.Len(t, g.Symbols, 1)
	assert.Equal(t, "C", g.Symbols[0].Name)
	assert.True(t, g.Symbols[0].Exported, "a matching Exported event must mark the symbol exported")

	require.Len(t, g.References, 1)
	assert.Equal(t, model.Read, g.References[0].Kind)
	assert.Equal(t, declRange, g.References[0].DeclaredAt)

	assert.Empty(t, g.Unresolved)
	assert.Equal(t, "widget.ts", g.Path)
}

func TestBuildGraphUnresolved(t *testing.T) {
	events := []event.Event{
		event.ScopeStarted{Range_: event.TextRange{Start: 0, End: 10}, ScopeID: 0},
		event.UnresolvedReference{IsRead: true, Range_: event.TextRange{Start: 2, End: 9}},
		event.ScopeEnded{Range_: event.TextRange{Start: 0, End: 10}, ScopeID: 0},
	}

	g := model.Build("", events)
	require.Len(t, g.Unresolved, 1)
	assert.True(t, g.Unresolved[0].IsRead)
	assert.Empty(t, g.Symbols)
}

func TestMerge(t *testing.T) {
	a := model.Build("a.ts", []event.Event{
		event.ScopeStarted{ScopeID: 0},
		event.DeclarationFound{NameToken: event.Token{Text: "a"}, ScopeID: 0},
		event.ScopeEnded{ScopeID: 0},
	})
	b := model.Build("b.ts", []event.Event{
		event.ScopeStarted{ScopeID: 0},
		event.DeclarationFound{NameToken: event.Token{Text: "b"}, ScopeID: 0},
		event.ScopeEnded{ScopeID: 0},
	})

	merged := model.Merge(a, b)
	require.Len(t, merged.Symbols, 2)
	assert.Equal(t, "a", merged.Symbols[0].Name)
	assert.Equal(t, "b", merged.Symbols[1].Name)
	assert.Equal(t, "", merged.Path)
}
