package lexer_test

import (
	"testing"

	"github.com/corvusling/latin/internal/declension"
	"github.com/corvusling/latin/internal/langtoken"
	"github.com/corvusling/latin/internal/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctxFor(table *declension.Table, names ...string) lexer.Declared {
	return lexer.Declared{Names: names, Table: table}
}

func TestTokenizeEmptyAndComments(t *testing.T) {
	toks, err := lexer.Tokenize("", ctxFor(declension.New()))
	require.NoError(t, err)
	assert.Nil(t, toks)

	toks, err = lexer.Tokenize("   ; just a comment", ctxFor(declension.New()))
	require.NoError(t, err)
	assert.Nil(t, toks)

	toks, err = lexer.Tokenize("SCRIBE NUMERUM ; trailing note", ctxFor(declension.New(), "NUMERUS"))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, langtoken.NewKeyword("SCRIBE"), toks[0])
}

func TestTokenizeSITNewNominative(t *testing.T) {
	toks, err := lexer.Tokenize("SIT FOO", ctxFor(declension.New()))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, langtoken.NewKeyword("SIT"), toks[0])
	assert.Equal(t, langtoken.NewVariable("FOO"), toks[1])
}

func TestTokenizeSITExistingNominative(t *testing.T) {
	toks, err := lexer.Tokenize("SIT NUMERUS", ctxFor(declension.New()))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, langtoken.NewVariable("NUMERUS"), toks[1])
}

func TestTokenizeStringLiteral(t *testing.T) {
	toks, err := lexer.Tokenize(`SCRIBE "MARCUS"`, ctxFor(declension.New()))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, langtoken.NewString("MARCUS"), toks[1])
}

func TestTokenizeUnclosedStringIsError(t *testing.T) {
	_, err := lexer.Tokenize(`SCRIBE "MARCUS`, ctxFor(declension.New()))
	require.Error(t, err)
}

func TestTokenizeRomanNumeral(t *testing.T) {
	toks, err := lexer.Tokenize("SIT X ; unused", ctxFor(declension.New()))
	require.NoError(t, err)
	_ = toks

	toks, err = lexer.Tokenize("NUMERUS EST XIV", ctxFor(declension.New(), "NUMERUS"))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, langtoken.NewNumber(14), toks[2])
}

func TestTokenizeNihil(t *testing.T) {
	toks, err := lexer.Tokenize("NUMERUS EST NIHIL", ctxFor(declension.New(), "NUMERUS"))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, langtoken.NewNumber(0), toks[2])
}

func TestTokenizeUnknownCharacterIsError(t *testing.T) {
	_, err := lexer.Tokenize("SCRIBE @", ctxFor(declension.New()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non intellegitur")
}

func TestTokenizeAccusativeEmitsVariable(t *testing.T) {
	toks, err := lexer.Tokenize("SCRIBE NUMERUM", ctxFor(declension.New(), "NUMERUS"))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, langtoken.NewVariable("NUMERUS"), toks[1])
}

func TestTokenizeGenitiveEmitsGenitive(t *testing.T) {
	toks, err := lexer.Tokenize("SCRIBE NOMEN SERVI", ctxFor(declension.New(), "NOMEN", "SERVUS"))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, langtoken.NewVariable("NOMEN"), toks[1])
	assert.Equal(t, langtoken.NewGenitive("SERVUS"), toks[2])
}

// TestKeywordAdjacencyUSDeclension exercises spec 8's literal example:
// NUMERUSEST must tokenize as Variable(NUMERUS) + Keyword(EST).
func TestKeywordAdjacencyUSDeclension(t *testing.T) {
	toks, err := lexer.Tokenize("NUMERUSEST", ctxFor(declension.New(), "NUMERUS"))
	require.NoError(t, err)
	require.Equal(t, []langtoken.Token{
		langtoken.NewVariable("NUMERUS"),
		langtoken.NewKeyword("EST"),
	}, toks)
}

// TestKeywordAdjacencyORDeclension exercises the case the heuristic exists
// for: LECTOR's ablative form LECTORE is a longer prefix match of
// "LECTOREST" than the bare nominative, but accepting it would swallow part
// of the following EST keyword. The shorter, nominative-length match must
// be preferred so the line still reads as Variable(LECTOR) + Keyword(EST).
func TestKeywordAdjacencyORDeclension(t *testing.T) {
	toks, err := lexer.Tokenize("LECTOREST", ctxFor(declension.New(), "LECTOR"))
	require.NoError(t, err)
	require.Equal(t, []langtoken.Token{
		langtoken.NewVariable("LECTOR"),
		langtoken.NewKeyword("EST"),
	}, toks)
}

// TestTokenizeFacWithParams exercises spec 8's FAC DUPLEX NUMERUS example:
// neither DUPLEX (the function name) nor NUMERUS (its parameter) is a
// declared variable yet, so both must fall back to the SIT-style scan.
func TestTokenizeFacWithParams(t *testing.T) {
	toks, err := lexer.Tokenize("FAC DUPLEX NUMERUS", ctxFor(declension.New()))
	require.NoError(t, err)
	require.Equal(t, []langtoken.Token{
		langtoken.NewKeyword("FAC"),
		langtoken.NewVariable("DUPLEX"),
		langtoken.NewVariable("NUMERUS"),
	}, toks)
}

func TestTokenizeFacWithNoParams(t *testing.T) {
	toks, err := lexer.Tokenize("FAC VACUA", ctxFor(declension.New()))
	require.NoError(t, err)
	require.Equal(t, []langtoken.Token{
		langtoken.NewKeyword("FAC"),
		langtoken.NewVariable("VACUA"),
	}, toks)
}

func TestTokenizeIaceExceptionName(t *testing.T) {
	toks, err := lexer.Tokenize("IACE ERROR", ctxFor(declension.New()))
	require.NoError(t, err)
	require.Equal(t, []langtoken.Token{
		langtoken.NewKeyword("IACE"),
		langtoken.NewVariable("ERROR"),
	}, toks)
}

func TestTokenizeCapeExceptionName(t *testing.T) {
	toks, err := lexer.Tokenize("CAPE ERROR", ctxFor(declension.New()))
	require.NoError(t, err)
	require.Equal(t, []langtoken.Token{
		langtoken.NewKeyword("CAPE"),
		langtoken.NewVariable("ERROR"),
	}, toks)
}

// TestTokenizeFacStopsAtNextKeyword guards against the operand scanner
// swallowing a body statement that happens to start on the same line.
func TestTokenizeFacStopsAtNextKeyword(t *testing.T) {
	toks, err := lexer.Tokenize("FAC SALUTA REDDO NIHIL", ctxFor(declension.New()))
	require.NoError(t, err)
	require.Equal(t, []langtoken.Token{
		langtoken.NewKeyword("FAC"),
		langtoken.NewVariable("SALUTA"),
		langtoken.NewKeyword("REDDO"),
		langtoken.NewNumber(0),
	}, toks)
}
