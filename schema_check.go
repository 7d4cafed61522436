package mapskema

import (
	"regexp"

	"github.com/reoring/mapskema/i18n"
)

// ValidateSchema walks the whole schema tree and checks it is internally
// well-formed: every Value pattern and every regex-member key must compile,
// and member declarations must be present nodes. Compiled patterns are
// cached on the tree so the data pass never compiles (or writes) anything.
//
// Callers must not validate data against a schema that failed this check.
func ValidateSchema(n *Node) Issues {
	if n == nil {
		return Issues{{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "nil schema"}}
	}
	return checkNode(n, "/")
}

func checkNode(n *Node, path string) Issues {
	var iss Issues
	if n.Value != "" {
		re, err := compileValuePattern(n.Value)
		if err != nil {
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeInvalidPattern, Message: i18n.T(CodeInvalidPattern, nil), Hint: n.Value, Cause: err})
		} else {
			n.valueRE = re
		}
	}
	for _, k := range n.MemberNames() {
		child := n.Members[k]
		cp := joinPath(path, k)
		if child == nil {
			iss = AppendIssues(iss, Issue{Path: cp, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "nil schema member"})
			continue
		}
		if child.Regex {
			re, err := regexp.Compile(k)
			if err != nil {
				iss = AppendIssues(iss, Issue{Path: cp, Code: CodeInvalidPattern, Message: i18n.T(CodeInvalidPattern, nil), Hint: k, Cause: err})
			} else {
				child.keyRE = re
			}
		}
		iss = AppendIssues(iss, checkNode(child, cp)...)
	}
	return iss
}

// compileValuePattern anchors the pattern so the scalar must match fully.
func compileValuePattern(p string) (*regexp.Regexp, error) {
	return regexp.Compile("^(?:" + p + ")$")
}
