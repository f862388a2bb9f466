// Package declension implements the Language's noun-declension table: the
// mapping from a nominative identifier to its oblique case forms, used by
// both the tokenizer (to recognize a declined form as a reference to a
// declared variable) and the auto-registration logic triggered by SIT.
package declension

import "strings"

// Case identifies one of the five oblique cases the Language recognizes.
// Nominative itself is never stored as a Case; it is the table's key.
type Case int

const (
	Genitive Case = iota
	Accusative
	Dative
	Ablative
	Vocative
	numCases
)

// Entry holds the five oblique forms generated or registered for one
// nominative noun.
type Entry struct {
	Genitive   string
	Accusative string
	Dative     string
	Ablative   string
	Vocative   string
}

func (e Entry) form(c Case) string {
	switch c {
	case Genitive:
		return e.Genitive
	case Accusative:
		return e.Accusative
	case Dative:
		return e.Dative
	case Ablative:
		return e.Ablative
	case Vocative:
		return e.Vocative
	default:
		return ""
	}
}

// Table maps nominative noun forms to their declension Entry. Registration
// order is retained (alongside the lookup map) because the tokenizer's
// SIT-time nominative scan (spec 4.3 rule 2) must be deterministic.
type Table struct {
	entries map[string]Entry
	order   []string
}

// New returns a Table seeded with the built-in declension stock spanning
// the five classical declensions, so that example programs can use common
// nouns without triggering auto-registration.
func New() *Table {
	t := &Table{entries: make(map[string]Entry, len(seedOrder))}
	for _, nom := range seedOrder {
		t.entries[nom] = seed[nom]
		t.order = append(t.order, nom)
	}
	return t
}

// Has reports whether nom is already a registered nominative.
func (t *Table) Has(nom string) bool {
	_, ok := t.entries[nom]
	return ok
}

// Register adds or overwrites the entry for a nominative form.
func (t *Table) Register(nom string, e Entry) {
	if t.entries == nil {
		t.entries = make(map[string]Entry)
	}
	if _, exists := t.entries[nom]; !exists {
		t.order = append(t.order, nom)
	}
	t.entries[nom] = e
}

// GetOblique returns the requested case form for a nominative noun, or
// ("", false) if the noun is not registered.
func (t *Table) GetOblique(nom string, c Case) (string, bool) {
	e, ok := t.entries[nom]
	if !ok {
		return "", false
	}
	form := e.form(c)
	if form == "" {
		return "", false
	}
	return form, true
}

// NominativeOf scans the table for the nominative noun whose entry contains
// form, or returns form itself if it already names a nominative directly.
// This mirrors spec 4.2's reverse-lookup contract exactly: a linear scan,
// not an inverted index, since the table is small and rebuilt rarely.
func (t *Table) NominativeOf(form string) (string, bool) {
	if t.Has(form) {
		return form, true
	}
	for nom, e := range t.entries {
		if e.Genitive == form || e.Accusative == form || e.Dative == form ||
			e.Ablative == form || e.Vocative == form {
			return nom, true
		}
	}
	return "", false
}

// Forms returns all case forms registered for nom, in a stable order
// (genitive, accusative, dative, ablative, vocative), skipping empty ones.
// Callers use this for longest-prefix matching during tokenization.
func (t *Table) Forms(nom string) []string {
	e, ok := t.entries[nom]
	if !ok {
		return nil
	}
	var out []string
	for _, f := range []string{e.Genitive, e.Accusative, e.Dative, e.Ablative, e.Vocative} {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Nominatives returns every nominative registered in the table, in
// registration order.
func (t *Table) Nominatives() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// AutoRegister generates and installs a declension entry for a newly
// declared nominative noun, using the ending-based heuristic from spec 4.2.
// It is a no-op (but still returns the entry) if nom is already registered.
func (t *Table) AutoRegister(nom string) Entry {
	if e, ok := t.entries[nom]; ok {
		return e
	}
	e := generate(nom)
	t.Register(nom, e)
	return e
}

// generate derives the five oblique forms for nom from its ending, per the
// ordered rule table in spec 4.2. The fallback rule is tried last.
func generate(nom string) Entry {
	switch {
	case strings.HasSuffix(nom, "US") && len(nom) > 2:
		stem := nom[:len(nom)-2]
		return Entry{
			Genitive:   stem + "I",
			Accusative: stem + "UM",
			Dative:     stem + "O",
			Ablative:   stem + "O",
			Vocative:   stem + "E",
		}
	case strings.HasSuffix(nom, "OR"):
		return Entry{
			Genitive:   nom + "IS",
			Accusative: nom + "EM",
			Dative:     nom + "I",
			Ablative:   nom + "E",
			Vocative:   nom,
		}
	case strings.HasSuffix(nom, "IO"):
		return Entry{
			Genitive:   nom + "NIS",
			Accusative: nom + "NEM",
			Dative:     nom + "NI",
			Ablative:   nom + "NE",
			Vocative:   nom,
		}
	case strings.HasSuffix(nom, "VM") && len(nom) > 2:
		stem := nom[:len(nom)-2]
		return Entry{
			Genitive:   stem + "I",
			Accusative: nom,
			Dative:     stem + "O",
			Ablative:   stem + "O",
			Vocative:   nom,
		}
	case strings.HasSuffix(nom, "UM") && len(nom) > 2:
		stem := nom[:len(nom)-2]
		return Entry{
			Genitive:   stem + "I",
			Accusative: nom,
			Dative:     stem + "O",
			Ablative:   stem + "O",
			Vocative:   nom,
		}
	case strings.HasSuffix(nom, "A") && len(nom) > 1:
		stem := nom[:len(nom)-1]
		return Entry{
			Genitive:   stem + "AE",
			Accusative: stem + "AM",
			Dative:     stem + "AE",
			Ablative:   stem + "A",
			Vocative:   stem + "A",
		}
	default:
		return Entry{
			Genitive:   nom + "I",
			Accusative: nom + "M",
			Dative:     nom + "O",
			Ablative:   nom + "O",
			Vocative:   nom + "E",
		}
	}
}
