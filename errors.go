package mapskema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Data validation
	CodeInvalidType      = "invalid_type"      // expected a mapping/sequence, got something else
	CodeRequired         = "required"          // required member missing from the data
	CodeUnknownKey       = "unknown_key"       // data key matched by no literal or regex member
	CodePattern          = "pattern"           // scalar value does not fully match the declared pattern
	CodePatternUnmatched = "pattern_unmatched" // required regex member matched zero data keys
	CodeValidator        = "validator"         // validator callback reported a failure
	CodeTransform        = "transform"         // transformer callback reported a failure

	// Schema definition / merge
	CodeUnknownSchemaKey    = "unknown_schema_key"   // unrecognized key in a schema mapping
	CodeInvalidPattern      = "invalid_pattern"      // value or regex-member pattern does not compile
	CodeTransformerConflict = "transformer_conflict" // both merge sides declare a transformer
	CodePropertyConflict    = "property_conflict"    // both merge sides declare different scalar properties
	CodeMergePath           = "merge_path"           // merge sub-path does not exist in the base tree
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer into the data or schema tree (for example: /servers/2/port).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, the offending pattern, etc.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of validation errors that implements error.
// It is append-only while a pass runs and read-only once returned.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_key at /servers/0
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Render produces the full human-readable report, one path-qualified line
// per issue in insertion order.
func (iss Issues) Render() string {
	b := &strings.Builder{}
	for i, it := range iss {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(b, "%s: %s", it.Path, it.Message)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// rebase prefixes every issue path with base so child issues surface under
// the enclosing member ("/color" + "/0" -> "/color/0").
func rebase(base string, child Issues) Issues {
	var out Issues
	for _, it := range child {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		out = AppendIssues(out, Issue{Path: p, Code: it.Code, Message: it.Message, Hint: it.Hint, Cause: it.Cause})
	}
	return out
}
