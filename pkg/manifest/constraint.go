package manifest

import (
	"regexp"
	"strings"
)

// operatorRE matches constraint operator characters. They are stripped
// anywhere in the clause, not only as a leading operator; a version string
// carrying one of these characters mid-token would be silently corrupted.
// That matches the shipped behavior and stays until product intent says
// otherwise.
var operatorRE = regexp.MustCompile(`[\^~>=<]`)

// Resolve extracts a single comparable version string from a raw declared
// constraint.
//
// For a string constraint it discards any bracketed extras suffix, keeps
// only the first comma-separated clause, strips the operator characters
// ^ ~ > = <, and trims whitespace. For a table constraint it resolves the
// "version" entry recursively. Any other shape, or an empty remainder,
// resolves to absent (ok=false).
//
// Resolve is total: it never panics and never returns an error.
func Resolve(raw any) (string, bool) {
	switch c := raw.(type) {
	case string:
		clause := c
		if i := strings.Index(clause, "["); i >= 0 {
			clause = clause[:i]
		}
		if i := strings.Index(clause, ","); i >= 0 {
			clause = clause[:i]
		}
		v := strings.TrimSpace(operatorRE.ReplaceAllString(clause, ""))
		return v, v != ""
	case map[string]any:
		version, ok := c["version"]
		if !ok {
			return "", false
		}
		return Resolve(version)
	default:
		return "", false
	}
}
