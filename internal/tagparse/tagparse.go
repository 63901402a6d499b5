// Package tagparse turns the raw body of a documentation block into an
// ordered tag sequence plus the free-text description that precedes the
// first tag. It knows nothing about entity kinds; interpretation of the
// tags is the entity builder's job.
package tagparse

import (
	"regexp"
	"strings"
)

// TagEntry is one @tag occurrence. Value may span multiple lines.
// Index is the occurrence number of this tag name within the block,
// starting at 0, so repeated tags (@param, @notes) stay ordered.
type TagEntry struct {
	Name  string
	Value string
	Index int
}

// ParsedBlock is the result of parsing one documentation block body.
type ParsedBlock struct {
	Kind        string
	Description string
	Tags        []TagEntry
}

// First returns the first entry with the given tag name.
func (p *ParsedBlock) First(names ...string) (TagEntry, bool) {
	for _, e := range p.Tags {
		for _, n := range names {
			if e.Name == n {
				return e, true
			}
		}
	}
	return TagEntry{}, false
}

// All returns every entry matching any of the given tag names, in block order.
func (p *ParsedBlock) All(names ...string) []TagEntry {
	var out []TagEntry
	for _, e := range p.Tags {
		for _, n := range names {
			if e.Name == n {
				out = append(out, e)
			}
		}
	}
	return out
}

var (
	gutterRe = regexp.MustCompile(`^\s*\*\s?`)
	tagRe    = regexp.MustCompile(`^\s*@(\w+)\s*(.*)$`)
)

// knownTags is the recognized tag vocabulary. Tags outside it are preserved
// as opaque entries and ignored downstream. Matching is case-sensitive.
var knownTags = map[string]struct{}{
	"name": {}, "side": {}, "category": {}, "version": {}, "deprecated": {},
	"param": {}, "return": {}, "returns": {}, "note": {}, "notes": {},
	"extends": {}, "declaration": {}, "example": {}, "cancellable": {},
	"static": {}, "readonly": {}, "read_only": {},
}

// Known reports whether the tag name is part of the recognized vocabulary.
func Known(tag string) bool {
	_, ok := knownTags[tag]
	return ok
}

// Parse splits a block body into description and tag entries.
//
// Line classification is a two-state machine: a line matching the tag
// marker starts a new entry, everything else is a continuation of the
// current entry (or of the description when no tag has been seen yet).
// Interior blank lines of a multi-line value are preserved; @example and
// @declaration depend on that.
func Parse(kind, body string) *ParsedBlock {
	lines := cleanLines(body)

	pb := &ParsedBlock{Kind: kind}
	counts := make(map[string]int)

	var desc []string
	cur := -1 // index into pb.Tags of the entry being accumulated

	for _, line := range lines {
		if m := tagRe.FindStringSubmatch(line); m != nil {
			name := m[1]
			pb.Tags = append(pb.Tags, TagEntry{
				Name:  name,
				Value: strings.TrimSpace(m[2]),
				Index: counts[name],
			})
			counts[name]++
			cur = len(pb.Tags) - 1
			continue
		}

		if cur < 0 {
			desc = append(desc, line)
			continue
		}
		pb.Tags[cur].Value += "\n" + line
	}

	for i := range pb.Tags {
		pb.Tags[i].Value = trimValue(pb.Tags[i].Value)
	}
	pb.Description = strings.TrimSpace(strings.Join(desc, "\n"))
	return pb
}

// cleanLines strips the comment gutter ("* " prefixes) and trailing
// whitespace per line, then drops leading and trailing blank lines.
// Leading indentation after the gutter is kept so code in @example and
// @declaration values survives.
func cleanLines(body string) []string {
	raw := strings.Split(body, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSuffix(l, "\r")
		l = gutterRe.ReplaceAllString(l, "")
		lines = append(lines, strings.TrimRight(l, " \t"))
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// trimValue drops blank lines at the edges of a multi-line value while
// keeping interior blanks verbatim.
func trimValue(v string) string {
	return strings.Trim(v, "\n")
}
