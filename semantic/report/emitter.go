// Package report serializes a semantic model.Graph for external consumers,
// grounded the same way inspector/graph.Emitter serializes a graph.File:
// one small interface, one implementation per wire format.
package report

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lexiscope/lexiscope/semantic/model"
)

// Emitter renders a Graph to bytes in some wire format.
type Emitter interface {
	Emit(g *model.Graph) ([]byte, error)
}

// YAMLEmitter renders a Graph as YAML, mirroring the yaml struct tags
// already carried by linage.Scope/Identity/DataPoint.
type YAMLEmitter struct{}

func (YAMLEmitter) Emit(g *model.Graph) ([]byte, error) {
	out, err := yaml.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal graph to yaml: %w", err)
	}
	return out, nil
}

// JSONEmitter renders a Graph as indented JSON.
type JSONEmitter struct{}

func (JSONEmitter) Emit(g *model.Graph) ([]byte, error) {
	out, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal graph to json: %w", err)
	}
	return out, nil
}

// ForFormat picks an Emitter by name ("yaml" or "json"), defaulting to
// YAML, the way inspector.Factory.GetInspector dispatches on extension.
func ForFormat(format string) (Emitter, error) {
	switch format {
	case "", "yaml", "yml":
		return YAMLEmitter{}, nil
	case "json":
		return JSONEmitter{}, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}
