package langtoken

import "sort"

// Keywords is the fixed vocabulary of the Language, as laid out in the
// spec's Glossary. The tokenizer matches keywords by longest prefix, so
// Keywords is kept pre-sorted longest-first by KeywordsLongestFirst.
var Keywords = []string{
	"SIT", "EST", "SI", "ALITER", "FINIS", "DUM", "FAC", "REDDO",
	"IACE", "CAPE", "SCRIBE", "AVDI", "NOTA", "LEGO", "VOCA",
	"AEQUAT", "MAIVS", "MINOR",
	"ADDE", "DEME", "MVLTIPLICA", "DVCE",
	"IVNGE", "INCIPITCVM", "FINITVRCVM", "CONTINET", "INDICEDE",
}

// Nihil is the reserved literal-zero spelling. It is matched as its own
// tokenizer rule (spec 4.3 rule 3), distinct from the Keyword rule (rule
// 2): if it were folded into Keywords, rule 2 would consume it and rule 3
// would never run.
const Nihil = "NIHIL"

// keywordsLongestFirst is Keywords sorted by descending length, computed
// once at package init so the tokenizer's longest-match scan is a simple
// linear walk.
var keywordsLongestFirst = func() []string {
	out := make([]string, len(Keywords))
	copy(out, Keywords)
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}()

// KeywordsLongestFirst returns the keyword vocabulary ordered from longest
// to shortest, for longest-match scanning.
func KeywordsLongestFirst() []string { return keywordsLongestFirst }

// blockOpeners are the keywords that open a nested block the block scanner
// must track (spec 4.4's "Block-scanner subroutine").
var blockOpeners = map[string]bool{
	"SI": true, "DUM": true, "FAC": true, "CAPE": true,
}

// IsBlockOpener reports whether keyword begins a line that opens a nested
// block.
func IsBlockOpener(keyword string) bool { return blockOpeners[keyword] }
