package mapskema_test

import (
	"reflect"
	"testing"

	mapskema "github.com/reoring/mapskema"
)

func TestNodeFromMap_FullSchema(t *testing.T) {
	doc := map[string]any{
		"description": "service config",
		"members": map[string]any{
			"name": map[string]any{
				"value":     "[a-z]+",
				"error_msg": "lowercase only",
			},
			"tags": map[string]any{
				"optional": true,
				"array":    true,
			},
			"env_.+": map[string]any{
				"regex":    true,
				"optional": true,
			},
			"anything": nil,
		},
	}
	n, iss := mapskema.NodeFromMap(doc)
	if len(iss) != 0 {
		t.Fatalf("expected clean build, got %v", iss)
	}
	if n.Description != "service config" {
		t.Fatalf("description lost: %+v", n)
	}
	name := n.Member("name")
	if name == nil || name.Value != "[a-z]+" || name.ErrorMsg != "lowercase only" {
		t.Fatalf("member name mis-built: %+v", name)
	}
	if tags := n.Member("tags"); tags == nil || !tags.Optional || !tags.Array {
		t.Fatalf("member tags mis-built: %+v", tags)
	}
	if env := n.Member("env_.+"); env == nil || !env.Regex {
		t.Fatalf("regex member mis-built: %+v", env)
	}
	if anything := n.Member("anything"); anything == nil || !anything.IsLeaf() {
		t.Fatalf("empty member body must build an unconstrained leaf: %+v", anything)
	}
}

func TestNodeFromMap_UnknownSchemaKey(t *testing.T) {
	doc := map[string]any{
		"members": map[string]any{
			"x": map[string]any{"pattern": "[a-z]+"},
		},
	}
	_, iss := mapskema.NodeFromMap(doc)
	if len(iss) != 1 || iss[0].Code != mapskema.CodeUnknownSchemaKey {
		t.Fatalf("expected unknown_schema_key, got %v", iss)
	}
	if iss[0].Path != "/members/x/pattern" {
		t.Fatalf("expected path into the schema document, got %q", iss[0].Path)
	}
}

func TestNodeFromMap_MistypedProperty(t *testing.T) {
	doc := map[string]any{"optional": "yes"}
	_, iss := mapskema.NodeFromMap(doc)
	if len(iss) != 1 || iss[0].Code != mapskema.CodeInvalidType || iss[0].Path != "/optional" {
		t.Fatalf("expected invalid_type at /optional, got %v", iss)
	}
}

func TestNode_MemberNamesSorted(t *testing.T) {
	n := &mapskema.Node{Members: map[string]*mapskema.Node{
		"zeta": {}, "alpha": {}, "mid": {},
	}}
	got := n.MemberNames()
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected sorted names %v, got %v", want, got)
	}
}

func TestNode_CloneIsDeep(t *testing.T) {
	orig := &mapskema.Node{Members: map[string]*mapskema.Node{
		"a": {Value: "[a-z]+", Members: map[string]*mapskema.Node{"b": {}}},
	}}
	cp := orig.Clone()
	cp.Members["a"].Value = `\d+`
	cp.Members["a"].Members["c"] = &mapskema.Node{}
	if orig.Members["a"].Value != "[a-z]+" {
		t.Fatalf("clone shares scalar state with original")
	}
	if orig.Members["a"].Members["c"] != nil {
		t.Fatalf("clone shares member maps with original")
	}
}
