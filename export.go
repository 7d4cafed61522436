package mapskema

import (
	"sort"

	js "github.com/reoring/mapskema/jsonschema"
)

// ExportJSONSchema projects the schema tree into a JSON Schema
// representation: members map to properties plus a required list, regex
// members to patternProperties, the array flag to an items schema, and a
// value pattern to an anchored string pattern. Validators and transformers
// have no JSON Schema equivalent and are omitted.
func ExportJSONSchema(n *Node) *js.Schema {
	if n == nil {
		return &js.Schema{}
	}
	if n.Array {
		el := *n
		el.Array = false
		return &js.Schema{Type: "array", Description: n.Description, Items: ExportJSONSchema(&el)}
	}
	if len(n.Members) > 0 {
		props := make(map[string]*js.Schema)
		var patterns map[string]*js.Schema
		var req []string
		for _, k := range n.MemberNames() {
			child := n.Members[k]
			if child == nil {
				continue
			}
			if child.Regex {
				if patterns == nil {
					patterns = make(map[string]*js.Schema)
				}
				patterns[k] = ExportJSONSchema(child)
				continue
			}
			props[k] = ExportJSONSchema(child)
			if !child.Optional {
				req = append(req, k)
			}
		}
		sort.Strings(req)
		return &js.Schema{
			Type:                 "object",
			Description:          n.Description,
			Properties:           props,
			PatternProperties:    patterns,
			Required:             req,
			AdditionalProperties: false,
		}
	}
	out := &js.Schema{Description: n.Description}
	if n.Value != "" {
		out.Type = "string"
		out.Pattern = "^(?:" + n.Value + ")$"
	}
	return out
}
