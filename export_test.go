package mapskema_test

import (
	"reflect"
	"testing"

	mapskema "github.com/reoring/mapskema"
)

func TestExportJSONSchema_ObjectProjection(t *testing.T) {
	schema := &mapskema.Node{Members: map[string]*mapskema.Node{
		"name":   {Value: "[a-z]+", Description: "service name"},
		"note":   {Optional: true},
		"env_.+": {Regex: true, Optional: true},
	}}
	js := mapskema.ExportJSONSchema(schema)
	if js.Type != "object" {
		t.Fatalf("expected object, got %q", js.Type)
	}
	if !reflect.DeepEqual(js.Required, []string{"name"}) {
		t.Fatalf("expected required [name], got %v", js.Required)
	}
	if js.AdditionalProperties != false {
		t.Fatalf("closed mapping must export additionalProperties=false")
	}
	name := js.Properties["name"]
	if name == nil || name.Type != "string" || name.Pattern != "^(?:[a-z]+)$" || name.Description != "service name" {
		t.Fatalf("unexpected projection for name: %+v", name)
	}
	if js.PatternProperties["env_.+"] == nil {
		t.Fatalf("regex member must project to patternProperties")
	}
	if _, ok := js.Properties["env_.+"]; ok {
		t.Fatalf("regex member must not appear in properties")
	}
}

func TestExportJSONSchema_ArrayProjection(t *testing.T) {
	schema := &mapskema.Node{Array: true, Value: "[a-z]+"}
	js := mapskema.ExportJSONSchema(schema)
	if js.Type != "array" || js.Items == nil {
		t.Fatalf("expected array with items, got %+v", js)
	}
	if js.Items.Type != "string" || js.Items.Pattern == "" {
		t.Fatalf("expected item pattern, got %+v", js.Items)
	}
}

func TestExportJSONSchema_UnconstrainedLeaf(t *testing.T) {
	js := mapskema.ExportJSONSchema(&mapskema.Node{})
	if js.Type != "" || js.Pattern != "" {
		t.Fatalf("unconstrained leaf must export an open schema, got %+v", js)
	}
}
