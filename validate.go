package mapskema

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/reoring/mapskema/i18n"
)

// Validate recursively matches data against the schema tree and returns every
// issue found in a single pass; there is no fail-fast. Transformers rewrite
// the data in place through its enclosing container, so maps and slices
// reflect the transformed values after the call. A bare scalar root has no
// enclosing container; its transformed value feeds the checks but cannot be
// observed by the caller.
//
// The schema must have passed ValidateSchema; results against a schema that
// failed its self-check are unspecified.
func Validate(ctx context.Context, schema *Node, data any) Issues {
	if schema == nil {
		return Issues{{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "nil schema"}}
	}
	return validateNode(ctx, schema, data, "/", nil, nil)
}

// validateNode dispatches one (schema node, data position) frame. store
// writes a transformed value back into the enclosing container and is nil at
// the root.
func validateNode(ctx context.Context, n *Node, v any, path string, parent any, store func(any)) Issues {
	switch {
	case n.Array:
		return validateArray(ctx, n, v, path)
	case len(n.Members) > 0:
		return validateMapping(ctx, n, v, path)
	default:
		return validateLeaf(ctx, n, v, path, parent, store)
	}
}

func validateArray(ctx context.Context, n *Node, v any, path string) Issues {
	arr, ok := v.([]any)
	if !ok {
		return Issues{{Path: path, Code: CodeInvalidType, Message: nodeMessage(n, CodeInvalidType), Hint: "expected sequence"}}
	}
	var iss Issues
	for i, el := range arr {
		idx := i
		ep := joinPath(path, strconv.Itoa(i))
		iss = AppendIssues(iss, validateElement(ctx, n, el, ep, arr, func(nv any) { arr[idx] = nv })...)
	}
	return iss
}

// validateElement applies the node's leaf rules and, when declared, its
// members to a single sequence element.
func validateElement(ctx context.Context, n *Node, v any, path string, parent any, store func(any)) Issues {
	var iss Issues
	cur := v
	transformFailed := false
	if n.Transformer != nil {
		nv, err := runTransformer(ctx, n.Transformer, cur, parent)
		if err != nil {
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeTransform, Message: err.Error(), Cause: err})
			transformFailed = true
		} else {
			if store != nil {
				store(nv)
			}
			cur = nv
		}
	}
	if len(n.Members) > 0 {
		iss = AppendIssues(iss, validateMapping(ctx, n, cur, path)...)
	}
	if transformFailed {
		return iss
	}
	if len(n.Members) == 0 && n.Value != "" {
		iss = AppendIssues(iss, checkValue(n, cur, path)...)
	}
	if n.Validator != nil {
		iss = AppendIssues(iss, checkValidator(ctx, n, cur, parent, path)...)
	}
	return iss
}

func validateMapping(ctx context.Context, n *Node, v any, path string) Issues {
	m, ok := v.(map[string]any)
	if !ok {
		return Issues{{Path: path, Code: CodeInvalidType, Message: nodeMessage(n, CodeInvalidType), Hint: "expected mapping"}}
	}
	var iss Issues

	literalClaimed := make(map[string]bool)
	for _, k := range n.literalMemberNames() {
		child := n.Members[k]
		if child == nil {
			continue // reported by ValidateSchema
		}
		cp := joinPath(path, k)
		if val, exists := m[k]; exists {
			literalClaimed[k] = true
			key := k
			iss = AppendIssues(iss, validateNode(ctx, child, val, cp, m, func(nv any) { m[key] = nv })...)
			continue
		}
		if !child.Optional {
			iss = AppendIssues(iss, Issue{Path: cp, Code: CodeRequired, Message: nodeMessage(child, CodeRequired)})
		}
	}

	dataKeys := make([]string, 0, len(m))
	for k := range m {
		dataKeys = append(dataKeys, k)
	}
	sort.Strings(dataKeys)

	regexClaimed := make(map[string]bool)
	for _, pk := range n.regexMemberNames() {
		child := n.Members[pk]
		re := child.keyRE
		if re == nil {
			var err error
			re, err = regexp.Compile(pk)
			if err != nil {
				iss = AppendIssues(iss, Issue{Path: joinPath(path, pk), Code: CodeInvalidPattern, Message: i18n.T(CodeInvalidPattern, nil), Hint: pk, Cause: err})
				continue
			}
		}
		matched := 0
		for _, dk := range dataKeys {
			if literalClaimed[dk] {
				continue
			}
			if !re.MatchString(dk) {
				continue
			}
			matched++
			regexClaimed[dk] = true
			key := dk
			iss = AppendIssues(iss, validateNode(ctx, child, m[dk], joinPath(path, dk), m, func(nv any) { m[key] = nv })...)
		}
		if matched == 0 && !child.Optional {
			iss = AppendIssues(iss, Issue{Path: joinPath(path, pk), Code: CodePatternUnmatched, Message: nodeMessage(child, CodePatternUnmatched), Hint: pk})
		}
	}

	for _, dk := range dataKeys {
		if literalClaimed[dk] || regexClaimed[dk] {
			continue
		}
		iss = AppendIssues(iss, Issue{Path: joinPath(path, dk), Code: CodeUnknownKey, Message: i18n.T(CodeUnknownKey, nil)})
	}
	return iss
}

func validateLeaf(ctx context.Context, n *Node, v any, path string, parent any, store func(any)) Issues {
	var iss Issues
	cur := v
	if n.Transformer != nil {
		nv, err := runTransformer(ctx, n.Transformer, cur, parent)
		if err != nil {
			// transformer failure aborts the remaining checks for this value only
			return Issues{{Path: path, Code: CodeTransform, Message: err.Error(), Cause: err}}
		}
		if store != nil {
			store(nv)
		}
		cur = nv
	}
	if n.Value != "" {
		iss = AppendIssues(iss, checkValue(n, cur, path)...)
	}
	if n.Validator != nil {
		iss = AppendIssues(iss, checkValidator(ctx, n, cur, parent, path)...)
	}
	return iss
}

func checkValue(n *Node, v any, path string) Issues {
	switch v.(type) {
	case map[string]any, []any:
		return Issues{{Path: path, Code: CodeInvalidType, Message: nodeMessage(n, CodeInvalidType), Hint: "expected scalar"}}
	}
	re := n.valueRE
	if re == nil {
		var err error
		re, err = compileValuePattern(n.Value)
		if err != nil {
			return Issues{{Path: path, Code: CodeInvalidPattern, Message: i18n.T(CodeInvalidPattern, nil), Hint: n.Value, Cause: err}}
		}
	}
	if !re.MatchString(scalarString(v)) {
		return Issues{{Path: path, Code: CodePattern, Message: nodeMessage(n, CodePattern), Hint: n.Value}}
	}
	return nil
}

func checkValidator(ctx context.Context, n *Node, v any, parent any, path string) Issues {
	err := runCheck(ctx, n.Validator, v, parent)
	if err == nil {
		return nil
	}
	if child, ok := AsIssues(err); ok {
		return rebase(path, child)
	}
	return Issues{{Path: path, Code: CodeValidator, Message: err.Error(), Cause: err}}
}

// nodeMessage prefers the node's declared error_msg over the default text.
func nodeMessage(n *Node, code string) string {
	if n != nil && n.ErrorMsg != "" {
		return n.ErrorMsg
	}
	return i18n.T(code, nil)
}

// scalarString renders a scalar for pattern matching. Numbers and bools use
// their canonical Go formatting, so a pattern like `\d+` matches int, int64
// and json.Number inputs alike.
func scalarString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// runTransformer invokes a transformer, converting a panic into an error so
// a misbehaving callback is a data error for its node, not a crash of the
// whole pass.
func runTransformer(ctx context.Context, t Transformer, v, parent any) (nv any, err error) {
	defer func() {
		if r := recover(); r != nil {
			nv, err = nil, fmt.Errorf("transformer panic: %v", r)
		}
	}()
	return t(ctx, v, parent)
}

// runCheck invokes a validator with the same panic containment.
func runCheck(ctx context.Context, val Validator, v, parent any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("validator panic: %v", r)
		}
	}()
	return val.Check(ctx, v, parent)
}
