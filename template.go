package mapskema

// Template produces a skeleton data instance for a schema: mappings carry
// every literal member (regex members contribute no concrete key), arrays
// carry a single element skeleton, and leaves become empty strings. The
// result conforms structurally to the schema but is not expected to pass
// Validate, since patterns and validators usually reject zero values.
func Template(n *Node) any {
	if n == nil {
		return nil
	}
	if n.Array {
		el := *n
		el.Array = false
		return []any{Template(&el)}
	}
	if len(n.Members) > 0 {
		out := make(map[string]any, len(n.Members))
		for _, k := range n.literalMemberNames() {
			out[k] = Template(n.Members[k])
		}
		return out
	}
	return ""
}
