package tagparse

import (
	"regexp"
	"strings"
)

var typedRe = regexp.MustCompile(`^\(([^)]*)\)\s*(.*)$`)

// SplitParam dissects a @param value of the form "(type) name description".
// The parenthesized type is optional; when absent typ is empty and the
// caller decides the untyped placeholder. ok is false when no name is left
// after splitting.
func SplitParam(value string) (typ, name, desc string, ok bool) {
	rest := strings.TrimSpace(value)
	if m := typedRe.FindStringSubmatch(rest); m != nil {
		typ = strings.TrimSpace(m[1])
		rest = m[2]
	}

	fields := strings.SplitN(strings.TrimSpace(rest), " ", 2)
	if len(fields) == 0 || fields[0] == "" {
		return "", "", "", false
	}
	name = fields[0]
	if len(fields) == 2 {
		desc = strings.TrimSpace(fields[1])
	}
	return typ, name, desc, true
}

// SplitReturn dissects a @return value of the form "(type) description".
func SplitReturn(value string) (typ, desc string) {
	rest := strings.TrimSpace(value)
	if m := typedRe.FindStringSubmatch(rest); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return "", rest
}

// TruthyFlag interprets boolean-ish tag values (@cancellable, @static,
// @readonly). A bare tag counts as true.
func TruthyFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
