package declension

// seedOrder lists the built-in nominative stock in a fixed, deterministic
// order, covering the five classical declensions so that example programs
// can use common nouns without first triggering auto-registration. The
// order matters: the tokenizer's SIT-time "existing nominative" scan (spec
// 4.3 rule 2) walks the table in registration order.
var seedOrder = []string{
	"NUMERUS", "PRIMUS", "SECUNDUS", "TERTIUS", "AMICUS", "SERVUS", "DOMINUS",
	"PUELLA", "SUMMA", "TABULA", "FEMINA",
	"BELLUM", "VERBUM", "FOLIUM",
	"ERROR", "LECTOR",
	"RATIO", "REGIO",
}

var seed = func() map[string]Entry {
	m := make(map[string]Entry, len(seedOrder))
	for _, nom := range seedOrder {
		m[nom] = generate(nom)
	}
	return m
}()
