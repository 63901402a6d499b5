// Package scanner locates luagmp documentation blocks in C/C++ source
// text and walks project trees for candidate files.
package scanner

import (
	"iter"
	"regexp"
	"strings"

	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/diag"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/entity"
)

// DocBlock is the raw text of one documentation block together with its
// validated kind token and source position. It lives only long enough to
// be handed to the tag parser.
type DocBlock struct {
	Kind string
	Body string
	File string
	Line int
}

// closeMarker ends a block. Blocks do not nest.
const closeMarker = "*/"

// openRe matches the opening marker with its kind token. The legacy
// "luadoc" prefix is still accepted; the kind token itself is validated
// case-sensitively against the supported set.
var openRe = regexp.MustCompile(`/\*\s*(?:luagmp|luadoc)\s*\(([^)\n]*)\)`)

// Blocks returns a lazy, restartable sequence of documentation blocks in
// source order. Malformed blocks (unknown kind token, missing closing
// marker) are reported through warn and skipped; scanning always resumes
// so one bad block never hides the rest of the file.
func Blocks(file, text string, warn *diag.Collector) iter.Seq[DocBlock] {
	return func(yield func(DocBlock) bool) {
		offset := 0
		for {
			loc := openRe.FindStringSubmatchIndex(text[offset:])
			if loc == nil {
				return
			}

			openStart := offset + loc[0]
			bodyStart := offset + loc[1]
			token := strings.TrimSpace(text[offset+loc[2] : offset+loc[3]])
			line := 1 + strings.Count(text[:openStart], "\n")

			end := strings.Index(text[bodyStart:], closeMarker)
			if end < 0 {
				if warn != nil {
					warn.Warnf(file, line, "unterminated documentation block (%q)", token)
				}
				// Resume right after the unterminated opening marker.
				offset = bodyStart
				continue
			}

			bodyEnd := bodyStart + end
			offset = bodyEnd + len(closeMarker)

			if _, ok := entity.ParseKind(token); !ok {
				if warn != nil {
					warn.Warnf(file, line, "unknown block kind %q, skipping", token)
				}
				continue
			}

			if !yield(DocBlock{Kind: token, Body: text[bodyStart:bodyEnd], File: file, Line: line}) {
				return
			}
		}
	}
}
