// Package langtoken defines the token types produced by the tokenizer
// (spec 4.3) and consumed by the execution engine's statement dispatch.
package langtoken

import "fmt"

// Kind discriminates the five token shapes the Language's tokenizer
// produces.
type Kind int

const (
	// Keyword is a fixed-vocabulary control or operator word (SIT, EST,
	// SI, ADDE, ...).
	Keyword Kind = iota
	// Variable is a reference to a declared name in any non-genitive
	// case (nominative, accusative, dative, ablative, vocative), or a
	// bare name scanned right after SIT (a new nominative), FAC (the
	// function and parameter names), IACE/CAPE (an exception name), or
	// VOCA (a function name).
	Variable
	// Genitive is a reference to a declared name that appeared in
	// genitive case, signaling record-field access.
	Genitive
	// Number is an integer literal, already decoded from its Roman
	// spelling (or NIHIL).
	Number
	// String is a quoted string literal, with the surrounding quotes
	// stripped.
	String
)

func (k Kind) String() string {
	switch k {
	case Keyword:
		return "Keyword"
	case Variable:
		return "Variable"
	case Genitive:
		return "Genitive"
	case Number:
		return "Number"
	case String:
		return "String"
	default:
		return "Unknown"
	}
}

// Token is a tagged variant over the five token kinds. Exactly one of
// Name, Int, or Text is meaningful, selected by Kind.
type Token struct {
	Kind Kind
	Name string // Keyword text, or a nominative for Variable/Genitive
	Int  int    // payload for Number
	Text string // payload for String
}

func (t Token) String() string {
	switch t.Kind {
	case Keyword:
		return fmt.Sprintf("Keyword(%s)", t.Name)
	case Variable:
		return fmt.Sprintf("Variable(%s)", t.Name)
	case Genitive:
		return fmt.Sprintf("Genitive(%s)", t.Name)
	case Number:
		return fmt.Sprintf("Number(%d)", t.Int)
	case String:
		return fmt.Sprintf("String(%q)", t.Text)
	default:
		return "Token(?)"
	}
}

func NewKeyword(name string) Token       { return Token{Kind: Keyword, Name: name} }
func NewVariable(nom string) Token       { return Token{Kind: Variable, Name: nom} }
func NewGenitive(nom string) Token       { return Token{Kind: Genitive, Name: nom} }
func NewNumber(n int) Token              { return Token{Kind: Number, Int: n} }
func NewString(text string) Token        { return Token{Kind: String, Text: text} }

// IsKeyword reports whether t is the Keyword token named name.
func (t Token) IsKeyword(name string) bool {
	return t.Kind == Keyword && t.Name == name
}
