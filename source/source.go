// Package source decodes schema and data documents into the in-memory tree
// shape the engine consumes (map[string]any, []any, scalars). The core
// engine never sees bytes; these helpers exist so schemas can be authored
// as YAML or JSON documents.
package source

import (
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	mapskema "github.com/reoring/mapskema"
)

// DecodeJSON decodes a JSON document into the engine's tree shape. Numbers
// decode as json.Number so large integers survive the round trip.
func DecodeJSON(b []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeYAML decodes a YAML document into the engine's tree shape.
func DecodeYAML(b []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// SchemaFromYAML decodes a YAML schema document and builds the Node tree.
// Schema-definition problems are returned as mapskema.Issues.
func SchemaFromYAML(b []byte) (*mapskema.Node, error) {
	v, err := DecodeYAML(b)
	if err != nil {
		return nil, err
	}
	return schemaFromValue(v)
}

// SchemaFromJSON decodes a JSON schema document and builds the Node tree.
func SchemaFromJSON(b []byte) (*mapskema.Node, error) {
	v, err := DecodeJSON(b)
	if err != nil {
		return nil, err
	}
	return schemaFromValue(v)
}

func schemaFromValue(v any) (*mapskema.Node, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("source: schema document must be a mapping, got %T", v)
	}
	n, iss := mapskema.NodeFromMap(m)
	if len(iss) > 0 {
		return nil, iss
	}
	return n, nil
}
