// Package docgen renders deterministic Markdown documentation from a schema
// tree. Output order follows sorted member names so generated documents are
// stable across runs and suitable for committing next to the schema.
package docgen

import (
	"fmt"
	"strings"

	mapskema "github.com/reoring/mapskema"
)

// Markdown renders one list entry per schema node, path-qualified, with the
// node's kind, requiredness, value pattern, and description.
func Markdown(title string, root *mapskema.Node) string {
	b := &strings.Builder{}
	if title != "" {
		fmt.Fprintf(b, "# %s\n\n", title)
	}
	if root != nil {
		writeNode(b, root, "/")
	}
	return b.String()
}

func writeNode(b *strings.Builder, n *mapskema.Node, path string) {
	fmt.Fprintf(b, "- `%s` — %s\n", path, describe(n))
	for _, k := range n.MemberNames() {
		child := n.Member(k)
		if child == nil {
			continue
		}
		writeNode(b, child, join(path, k))
	}
}

func describe(n *mapskema.Node) string {
	var parts []string
	if n.Regex {
		parts = append(parts, "keys matching pattern")
	}
	switch {
	case n.Array:
		parts = append(parts, "sequence")
	case !n.IsLeaf():
		parts = append(parts, "mapping")
	default:
		parts = append(parts, "scalar")
	}
	if n.Optional {
		parts = append(parts, "optional")
	} else {
		parts = append(parts, "required")
	}
	s := strings.Join(parts, ", ")
	if n.Value != "" {
		s += fmt.Sprintf(", must match `%s`", n.Value)
	}
	if n.Description != "" {
		s += ". " + n.Description
	}
	return s
}

func join(base, seg string) string {
	if base == "/" {
		return "/" + seg
	}
	return base + "/" + seg
}
