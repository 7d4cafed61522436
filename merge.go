package mapskema

import (
	"context"
	"strings"

	"github.com/reoring/mapskema/i18n"
)

// Merge combines incoming into base at the root. See MergeAt.
func Merge(base, incoming *Node) Issues { return MergeAt(base, incoming, "/") }

// MergeAt merges the incoming tree into base at the given sub-path
// ("/" for the root, "/servers/http" to merge below an existing member).
// The merge is all-or-nothing: base is rewritten only when no issue was
// found, so a conflicting merge leaves it untouched.
//
// Conflict policy:
//   - a transformer on both sides is an unconditional conflict;
//   - validators on both sides combine as a logical AND that runs base
//     first, then incoming, and reports every failure message;
//   - value, description and error_msg conflict when both sides set
//     different non-empty text; a single side wins otherwise;
//   - optional, array and regex take the OR of both sides (false is the
//     documented default and is indistinguishable from unset);
//   - members present on both sides recurse, others are unioned.
//
// The merged result must itself pass ValidateSchema; its issues are part of
// the merge result.
func MergeAt(base, incoming *Node, path string) Issues {
	if base == nil || incoming == nil {
		return Issues{{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "nil schema"}}
	}
	merged := base.Clone()
	target, tpath := locate(merged, path)
	if target == nil {
		return Issues{{Path: normalizePath(path), Code: CodeMergePath, Message: i18n.T(CodeMergePath, nil), Hint: path}}
	}
	iss := mergeNode(target, incoming, tpath)
	iss = AppendIssues(iss, ValidateSchema(merged)...)
	if len(iss) > 0 {
		return iss
	}
	*base = *merged
	return nil
}

// locate descends literal members of root along path and returns the target
// node together with its normalized path, or nil when a segment is missing.
func locate(root *Node, path string) (*Node, string) {
	cur := root
	cp := "/"
	for _, seg := range splitPath(path) {
		child := cur.Members[seg]
		if child == nil {
			return nil, ""
		}
		cur = child
		cp = joinPath(cp, seg)
	}
	return cur, cp
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func normalizePath(path string) string {
	segs := splitPath(path)
	if len(segs) == 0 {
		return "/"
	}
	return "/" + strings.Join(segs, "/")
}

func mergeNode(dst, src *Node, path string) Issues {
	var iss Issues

	if dst.Transformer != nil && src.Transformer != nil {
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeTransformerConflict, Message: i18n.T(CodeTransformerConflict, nil)})
	} else if dst.Transformer == nil {
		dst.Transformer = src.Transformer
	}

	switch {
	case dst.Validator != nil && src.Validator != nil:
		dst.Validator = andValidator{a: dst.Validator, b: src.Validator}
	case dst.Validator == nil:
		dst.Validator = src.Validator
	}

	dst.Value, iss = mergeText(dst.Value, src.Value, "value", path, iss)
	dst.Description, iss = mergeText(dst.Description, src.Description, "description", path, iss)
	dst.ErrorMsg, iss = mergeText(dst.ErrorMsg, src.ErrorMsg, "error_msg", path, iss)
	dst.Optional = dst.Optional || src.Optional
	dst.Array = dst.Array || src.Array
	dst.Regex = dst.Regex || src.Regex
	if dst.Value != "" {
		dst.valueRE = nil // recompiled by the post-merge schema check
	}

	for _, k := range src.MemberNames() {
		sc := src.Members[k]
		if sc == nil {
			continue
		}
		if dc, ok := dst.Members[k]; ok && dc != nil {
			iss = AppendIssues(iss, mergeNode(dc, sc, joinPath(path, k))...)
			continue
		}
		if dst.Members == nil {
			dst.Members = make(map[string]*Node, len(src.Members))
		}
		dst.Members[k] = sc.Clone()
	}
	return iss
}

func mergeText(dst, src, prop, path string, iss Issues) (string, Issues) {
	switch {
	case src == "":
		return dst, iss
	case dst == "":
		return src, iss
	case dst != src:
		return dst, AppendIssues(iss, Issue{Path: path, Code: CodePropertyConflict, Message: i18n.T(CodePropertyConflict, map[string]string{"property": prop}), Hint: prop})
	}
	return dst, iss
}

// andValidator is the merged form of two validators: both run and every
// failure is reported, matching the engine's no-fail-fast policy.
type andValidator struct{ a, b Validator }

func (v andValidator) Check(ctx context.Context, value any, parent any) error {
	var iss Issues
	for _, c := range [...]Validator{v.a, v.b} {
		if err := c.Check(ctx, value, parent); err != nil {
			if ci, ok := AsIssues(err); ok {
				iss = AppendIssues(iss, ci...)
			} else {
				iss = AppendIssues(iss, Issue{Path: "/", Code: CodeValidator, Message: err.Error(), Cause: err})
			}
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}
