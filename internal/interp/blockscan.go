package interp

import (
	"strings"

	"github.com/corvusling/latin/internal/langtoken"
)

// scanResult is a match produced by scanForward: which terminator was
// found, and at what line index.
type scanResult struct {
	Terminator string // "FINIS" or "ALITER"
	Line       int
}

// scanForward implements spec 4.4's block-scanner subroutine: starting
// just after a block-opening line, it counts nested opens (SI, DUM, FAC,
// CAPE) and closes (FINIS), never re-tokenizing — only prefix/equality
// checks on comment-stripped, trimmed lines (spec 9). stopAtAliter makes
// it additionally recognize an ALITER at depth 1 relative to its own
// origin as a stop point, which SI's false branch needs and every other
// caller leaves false; this is also how an ALITER belonging to an inner SI
// nested inside a DUM body is ignored by the outer SI's scan, since it sits
// at depth 2 or deeper (spec 9's resolved open question).
func scanForward(lines []string, from int, stopAtAliter bool) (scanResult, bool) {
	depth := 1
	for i := from; i < len(lines); i++ {
		stripped := stripStatement(lines[i])
		if stripped == "" {
			continue
		}
		switch {
		case stripped == "FINIS":
			depth--
			if depth == 0 {
				return scanResult{Terminator: "FINIS", Line: i}, true
			}
		case stopAtAliter && depth == 1 && stripped == "ALITER":
			return scanResult{Terminator: "ALITER", Line: i}, true
		case isBlockOpenerLine(stripped):
			depth++
		}
	}
	return scanResult{}, false
}

// stripStatement strips a trailing comment and surrounding whitespace from
// a raw source line, the same preprocessing the tokenizer applies, but
// without tokenizing (spec 9).
func stripStatement(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// firstWord returns the leading whitespace-delimited word of a
// pre-stripped statement line.
func firstWord(stripped string) string {
	if i := strings.IndexByte(stripped, ' '); i >= 0 {
		return stripped[:i]
	}
	return stripped
}

func isBlockOpenerLine(stripped string) bool {
	return langtoken.IsBlockOpener(firstWord(stripped))
}
