// Package lexer implements the Language's morphology-aware tokenizer
// (spec 4.3): it turns one source line into a sequence of langtoken.Token
// values, using the set of currently declared variables and the
// declension table as context for recognizing declined identifier forms.
//
// The scanner is a left-to-right maximal-munch walk over line text.
package lexer

import (
	"fmt"
	"strings"

	"github.com/corvusling/latin/internal/declension"
	"github.com/corvusling/latin/internal/langtoken"
	"github.com/corvusling/latin/internal/roman"
)

// Declared is the context the tokenizer needs about live variables: their
// nominative names, in declaration order (used for scan-order tie-breaks),
// and the shared declension table to look up oblique forms.
type Declared struct {
	Names []string
	Table *declension.Table
}

// Tokenize converts a single source line into a token sequence. Comments
// (from the first ';' to end of line) are stripped first; a blank or
// comment-only line yields a nil, nil result rather than an error.
func Tokenize(line string, ctx Declared) ([]langtoken.Token, error) {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	var toks []langtoken.Token
	pos := 0
	for pos < len(line) {
		for pos < len(line) && isSpace(line[pos]) {
			pos++
		}
		if pos >= len(line) {
			break
		}
		rest := line[pos:]

		if rest[0] == '"' {
			tok, n, err := scanString(rest)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			pos += n
			continue
		}

		if kw, ok := matchKeyword(rest); ok {
			toks = append(toks, langtoken.NewKeyword(kw))
			pos += len(kw)
			switch kw {
			case "SIT", "IACE", "CAPE", "VOCA":
				// These keywords are immediately followed by exactly one
				// bare identifier that may not yet be a declared variable
				// (SIT's new nominative) or is never a variable at all
				// (IACE/CAPE's exception name and VOCA's function name
				// live in their own namespaces) — rule 4's declared-identifier scan would
				// reject it, so fall back to the same
				// existing-nominative-or-greedy-uppercase rule SIT uses.
				for pos < len(line) && isSpace(line[pos]) {
					pos++
				}
				tok, n := scanSITTarget(line[pos:], ctx.Table)
				toks = append(toks, tok)
				pos += n
			case "FAC":
				// FAC introduces a function name followed by zero or more
				// parameter names, none of which need already be declared
				// (spec 4.4); scan each the same way, stopping at the
				// next keyword or end of line.
				for {
					for pos < len(line) && isSpace(line[pos]) {
						pos++
					}
					if pos >= len(line) {
						break
					}
					if _, ok := matchKeyword(line[pos:]); ok {
						break
					}
					tok, n := scanSITTarget(line[pos:], ctx.Table)
					if n == 0 {
						break
					}
					toks = append(toks, tok)
					pos += n
				}
			}
			continue
		}

		if strings.HasPrefix(rest, langtoken.Nihil) {
			toks = append(toks, langtoken.NewNumber(0))
			pos += len(langtoken.Nihil)
			continue
		}

		if tok, n, ok := matchDeclaredIdentifier(rest, ctx); ok {
			toks = append(toks, tok)
			pos += n
			continue
		}

		if n := romanRunLength(rest); n > 0 {
			if val, ok := roman.Parse(rest[:n]); ok {
				toks = append(toks, langtoken.NewNumber(val))
				pos += n
				continue
			}
		}

		return nil, fmt.Errorf("ERRATUM: '%s' non intellegitur", rest)
	}
	return toks, nil
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

// scanString implements rule 1: a "..." literal. n is the number of bytes
// consumed from the start of rest, including both quotes.
func scanString(rest string) (langtoken.Token, int, error) {
	end := strings.IndexByte(rest[1:], '"')
	if end < 0 {
		return langtoken.Token{}, 0, fmt.Errorf("ERRATUM: comprehensio non clausa in '%s'", rest)
	}
	content := rest[1 : 1+end]
	return langtoken.NewString(content), 2 + end, nil
}

// matchKeyword implements rule 2's longest-match over the fixed keyword
// vocabulary.
func matchKeyword(rest string) (string, bool) {
	for _, kw := range langtoken.KeywordsLongestFirst() {
		if strings.HasPrefix(rest, kw) {
			return kw, true
		}
	}
	return "", false
}

// scanSITTarget implements the SIT-adjacent special-casing from rule 2:
// first try any existing declension-table nominative as a prefix (longest
// match, scanned in table registration order), falling back to a greedy
// run of uppercase letters as a brand new nominative.
func scanSITTarget(rest string, table *declension.Table) (langtoken.Token, int) {
	best := ""
	if table != nil {
		for _, nom := range table.Nominatives() {
			if strings.HasPrefix(rest, nom) && len(nom) > len(best) {
				best = nom
			}
		}
	}
	if best != "" {
		return langtoken.NewVariable(best), len(best)
	}
	n := 0
	for n < len(rest) && isUpper(rest[n]) {
		n++
	}
	return langtoken.NewVariable(rest[:n]), n
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

// candidate is one declared-variable form considered during rule 4's
// longest-match scan.
type candidate struct {
	nom  string
	form string
	kind langtoken.Kind
}

// matchDeclaredIdentifier implements rule 4, including the
// keyword-adjacency heuristic.
func matchDeclaredIdentifier(rest string, ctx Declared) (langtoken.Token, int, bool) {
	var best candidate
	bestLen := 0

	for _, nom := range ctx.Names {
		forms := []candidate{{nom, nom, langtoken.Variable}}
		if ctx.Table != nil {
			if f, ok := ctx.Table.GetOblique(nom, declension.Genitive); ok {
				forms = append(forms, candidate{nom, f, langtoken.Genitive})
			}
			for _, c := range []declension.Case{declension.Accusative, declension.Dative, declension.Ablative, declension.Vocative} {
				if f, ok := ctx.Table.GetOblique(nom, c); ok {
					forms = append(forms, candidate{nom, f, langtoken.Variable})
				}
			}
		}
		for _, c := range forms {
			if strings.HasPrefix(rest, c.form) && len(c.form) > bestLen {
				best = c
				bestLen = len(c.form)
			}
		}
	}

	if bestLen == 0 {
		return langtoken.Token{}, 0, false
	}

	bestLen = applyKeywordAdjacency(rest, best, bestLen)
	if bestLen == len(best.nom) {
		return langtoken.NewVariable(best.nom), bestLen, true
	}
	if best.kind == langtoken.Genitive {
		return langtoken.NewGenitive(best.nom), bestLen, true
	}
	return langtoken.NewVariable(best.nom), bestLen, true
}

// applyKeywordAdjacency implements spec 4.3 rule 4's disambiguation: when
// the selected match is a declined form strictly longer than the bare
// nominative, and shortening to the nominative would place a keyword right
// after it (while the longer match does not), prefer the shorter,
// nominative-length match.
func applyKeywordAdjacency(rest string, best candidate, matchLen int) int {
	nomLen := len(best.nom)
	if matchLen <= nomLen {
		return matchLen
	}
	if _, ok := matchKeyword(rest[matchLen:]); ok {
		return matchLen
	}
	if _, ok := matchKeyword(rest[nomLen:]); ok {
		return nomLen
	}
	return matchLen
}

// romanRunLength returns the length of the maximal leading run of bytes in
// {M,D,C,L,X,V,I}, implementing rule 5's scan (parsing is delegated to the
// roman package).
func romanRunLength(rest string) int {
	n := 0
	for n < len(rest) && roman.IsNumeralByte(rest[n]) {
		n++
	}
	return n
}
