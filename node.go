package mapskema

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/reoring/mapskema/i18n"
)

// Node is one declaration in the schema tree: the constraints for a single
// position in the data tree. A node with Members describes a mapping; a node
// without Members is a leaf and constrains a scalar. The zero Node accepts
// any scalar.
//
// A Node tree is owned by the caller. After ValidateSchema has accepted it,
// the tree is treated as read-only by Validate and is safe to share across
// concurrent validations of distinct data instances.
type Node struct {
	// Description documents the member; it never affects validation.
	Description string
	// ErrorMsg replaces the default message on issues emitted for this node.
	ErrorMsg string
	// Optional marks a member as not required. For regex members it controls
	// whether the pattern must match at least one data key.
	Optional bool
	// Array requires the data value to be a sequence; every element is
	// validated against this node's Members and leaf rules.
	Array bool
	// Regex reinterprets this node's key in the parent's Members as a
	// pattern matched against data keys instead of a literal key.
	Regex bool
	// Value is a pattern the scalar data value must fully match.
	Value string
	// Members declares the child nodes of a mapping, keyed by member name
	// (or by pattern when the child is Regex-flagged).
	Members map[string]*Node
	// Validator, when set, is consulted after Value.
	Validator Validator
	// Transformer, when set, rewrites the data value in place before Value
	// and Validator run.
	Transformer Transformer

	// Compiled patterns, cached by ValidateSchema. Validate falls back to
	// compiling locally (without caching) when a schema was not pre-checked,
	// so the data pass never writes to the tree.
	valueRE *regexp.Regexp
	keyRE   *regexp.Regexp
}

// IsLeaf reports whether the node declares no members.
func (n *Node) IsLeaf() bool { return len(n.Members) == 0 }

// MemberNames returns all declared member names in sorted order.
func (n *Node) MemberNames() []string {
	names := make([]string, 0, len(n.Members))
	for k := range n.Members {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Member returns the child node declared under name, or nil.
func (n *Node) Member(name string) *Node { return n.Members[name] }

// literalMemberNames returns the names of non-regex members in sorted order.
func (n *Node) literalMemberNames() []string {
	names := make([]string, 0, len(n.Members))
	for k, c := range n.Members {
		if c != nil && c.Regex {
			continue
		}
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// regexMemberNames returns the pattern keys of regex members in sorted order.
func (n *Node) regexMemberNames() []string {
	var names []string
	for k, c := range n.Members {
		if c != nil && c.Regex {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of the node tree. Validator and Transformer are
// shared by reference; compiled pattern caches carry over.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	cp := *n
	if n.Members != nil {
		cp.Members = make(map[string]*Node, len(n.Members))
		for k, c := range n.Members {
			cp.Members[k] = c.Clone()
		}
	}
	return &cp
}

// Schema mapping keys recognized by NodeFromMap.
const (
	keyDescription = "description"
	keyErrorMsg    = "error_msg"
	keyOptional    = "optional"
	keyArray       = "array"
	keyRegex       = "regex"
	keyValue       = "value"
	keyMembers     = "members"
)

// NodeFromMap builds a Node tree from a schema expressed as a nested
// mapping, the shape produced by decoding a YAML or JSON schema document.
// Unrecognized keys and mistyped values are reported as issues; Validator
// and Transformer cannot be expressed in data and are attached to the
// returned tree by the caller.
func NodeFromMap(m map[string]any) (*Node, Issues) {
	n, iss := nodeFromMap(m, "/")
	return n, iss
}

func nodeFromMap(m map[string]any, path string) (*Node, Issues) {
	n := &Node{}
	var iss Issues
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := m[k]
		kp := joinPath(path, k)
		switch k {
		case keyDescription:
			n.Description, iss = stringProp(v, kp, iss)
		case keyErrorMsg:
			n.ErrorMsg, iss = stringProp(v, kp, iss)
		case keyValue:
			n.Value, iss = stringProp(v, kp, iss)
		case keyOptional:
			n.Optional, iss = boolProp(v, kp, iss)
		case keyArray:
			n.Array, iss = boolProp(v, kp, iss)
		case keyRegex:
			n.Regex, iss = boolProp(v, kp, iss)
		case keyMembers:
			mm, ok := v.(map[string]any)
			if !ok {
				iss = AppendIssues(iss, Issue{Path: kp, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected mapping"})
				continue
			}
			n.Members = make(map[string]*Node, len(mm))
			mkeys := make([]string, 0, len(mm))
			for mk := range mm {
				mkeys = append(mkeys, mk)
			}
			sort.Strings(mkeys)
			for _, mk := range mkeys {
				mp := joinPath(kp, mk)
				switch mv := mm[mk].(type) {
				case nil:
					// empty member body declares an unconstrained scalar
					n.Members[mk] = &Node{}
				case map[string]any:
					child, ci := nodeFromMap(mv, mp)
					n.Members[mk] = child
					iss = AppendIssues(iss, ci...)
				default:
					iss = AppendIssues(iss, Issue{Path: mp, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected mapping or empty"})
				}
			}
		default:
			iss = AppendIssues(iss, Issue{Path: kp, Code: CodeUnknownSchemaKey, Message: i18n.T(CodeUnknownSchemaKey, map[string]string{"key": k}), Hint: k})
		}
	}
	return n, iss
}

func stringProp(v any, path string, iss Issues) (string, Issues) {
	s, ok := v.(string)
	if !ok {
		return "", AppendIssues(iss, Issue{Path: path, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: fmt.Sprintf("expected string, got %T", v)})
	}
	return s, iss
}

func boolProp(v any, path string, iss Issues) (bool, Issues) {
	b, ok := v.(bool)
	if !ok {
		return false, AppendIssues(iss, Issue{Path: path, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: fmt.Sprintf("expected bool, got %T", v)})
	}
	return b, iss
}

// joinPath extends a JSON-Pointer-style path with one segment.
func joinPath(base, seg string) string {
	if base == "" || base == "/" {
		return "/" + seg
	}
	return base + "/" + seg
}
