package declension_test

import (
	"testing"

	"github.com/corvusling/latin/internal/declension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinRoundTrip(t *testing.T) {
	tbl := declension.New()
	for _, nom := range tbl.Nominatives() {
		for _, c := range []declension.Case{
			declension.Genitive, declension.Accusative, declension.Dative,
			declension.Ablative, declension.Vocative,
		} {
			form, ok := tbl.GetOblique(nom, c)
			if !ok {
				continue
			}
			got, found := tbl.NominativeOf(form)
			require.True(t, found, "NominativeOf(%q)", form)
			assert.Equal(t, nom, got)
		}
	}
}

func TestNominativeOfIdentity(t *testing.T) {
	tbl := declension.New()
	got, ok := tbl.NominativeOf("NUMERUS")
	require.True(t, ok)
	assert.Equal(t, "NUMERUS", got)
}

func TestAutoRegisterFallback(t *testing.T) {
	tbl := declension.New()
	e := tbl.AutoRegister("RESULTAT")
	// RESULTAT does not end in any recognized suffix, so the fallback rule
	// applies: N+I, N+M, N+O, N+O, N+E.
	assert.Equal(t, "RESULTATI", e.Genitive)
	assert.Equal(t, "RESULTATM", e.Accusative)
	assert.Equal(t, "RESULTATO", e.Dative)
	assert.Equal(t, "RESULTATO", e.Ablative)
	assert.Equal(t, "RESULTATE", e.Vocative)
}

func TestAutoRegisterUSSuffix(t *testing.T) {
	tbl := declension.New()
	e := tbl.AutoRegister("HORTUS")
	assert.Equal(t, "HORTI", e.Genitive)
	assert.Equal(t, "HORTUM", e.Accusative)
	assert.Equal(t, "HORTO", e.Dative)
	assert.Equal(t, "HORTO", e.Ablative)
	assert.Equal(t, "HORTE", e.Vocative)
}

func TestAutoRegisterORSuffix(t *testing.T) {
	tbl := declension.New()
	e := tbl.AutoRegister("LECTOR")
	assert.Equal(t, "LECTORIS", e.Genitive)
	assert.Equal(t, "LECTOREM", e.Accusative)
	assert.Equal(t, "LECTORI", e.Dative)
	assert.Equal(t, "LECTORE", e.Ablative)
	assert.Equal(t, "LECTOR", e.Vocative)
}

func TestAutoRegisterIOSuffix(t *testing.T) {
	tbl := declension.New()
	e := tbl.AutoRegister("LEGIO")
	assert.Equal(t, "LEGIONIS", e.Genitive)
	assert.Equal(t, "LEGIONEM", e.Accusative)
	assert.Equal(t, "LEGIONI", e.Dative)
	assert.Equal(t, "LEGIONE", e.Ablative)
	assert.Equal(t, "LEGIO", e.Vocative)
}

func TestAutoRegisterFirstDeclensionFeminine(t *testing.T) {
	tbl := declension.New()
	e := tbl.AutoRegister("ROSA")
	assert.Equal(t, "ROSAE", e.Genitive)
	assert.Equal(t, "ROSAM", e.Accusative)
	assert.Equal(t, "ROSAE", e.Dative)
	assert.Equal(t, "ROSA", e.Ablative)
	assert.Equal(t, "ROSA", e.Vocative)
}

func TestAutoRegisterNeuterUM(t *testing.T) {
	tbl := declension.New()
	e := tbl.AutoRegister("TEMPLUM")
	assert.Equal(t, "TEMPLI", e.Genitive)
	assert.Equal(t, "TEMPLUM", e.Accusative)
	assert.Equal(t, "TEMPLO", e.Dative)
	assert.Equal(t, "TEMPLO", e.Ablative)
	assert.Equal(t, "TEMPLUM", e.Vocative)
}

func TestAutoRegisterIsIdempotent(t *testing.T) {
	tbl := declension.New()
	first := tbl.AutoRegister("CUSTOS")
	tbl.Register("CUSTOS", declension.Entry{Genitive: "OVERRIDDEN"})
	second := tbl.AutoRegister("CUSTOS")
	assert.Equal(t, "OVERRIDDEN", second.Genitive)
	_ = first
}

func TestFormsOrderedAndSkipsEmpty(t *testing.T) {
	tbl := declension.New()
	forms := tbl.Forms("NUMERUS")
	require.Len(t, forms, 5)
	assert.Equal(t, "NUMERI", forms[0])
	assert.Equal(t, "NUMERUM", forms[1])
}
