// Package roman converts between integers and Roman-numeral strings.
//
// The codec is intentionally lenient: it does not enforce classical Roman
// spelling rules (subtractive pairs, repetition limits). A string like
// "IIII" parses to 4 even though no Roman scribe would have written it that
// way. format always emits the canonical greedy form, so round-tripping a
// non-canonical string changes its spelling but not its value.
package roman

// Nihil is the literal the Language uses to spell zero (and any
// non-positive integer) as a Roman numeral.
const Nihil = "NIHIL"

var values = map[byte]int{
	'M': 1000,
	'D': 500,
	'C': 100,
	'L': 50,
	'X': 10,
	'V': 5,
	'I': 1,
}

// numerals lists (value, glyph) pairs from largest to smallest, including
// the four subtractive forms, for greedy emission in Format.
var numerals = []struct {
	value int
	glyph string
}{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// Parse reads a Roman numeral right-to-left, subtracting any glyph whose
// value is less than the running maximum seen so far and adding otherwise.
// It returns ok=false if s contains a byte outside MDCLXVI, or if the total
// is not strictly positive.
func Parse(s string) (n int, ok bool) {
	if s == "" {
		return 0, false
	}
	max := 0
	total := 0
	for i := len(s) - 1; i >= 0; i-- {
		v, known := values[s[i]]
		if !known {
			return 0, false
		}
		if v < max {
			total -= v
		} else {
			total += v
			max = v
		}
	}
	if total <= 0 {
		return 0, false
	}
	return total, true
}

// Format renders n as a Roman numeral, or Nihil if n <= 0.
func Format(n int) string {
	if n <= 0 {
		return Nihil
	}
	var sb []byte
	for _, r := range numerals {
		for n >= r.value {
			sb = append(sb, r.glyph...)
			n -= r.value
		}
	}
	return string(sb)
}

// IsNumeralByte reports whether b can appear in a Roman numeral run, used by
// the lexer's maximal-munch scan.
func IsNumeralByte(b byte) bool {
	_, ok := values[b]
	return ok
}
