package interp

import (
	"strings"

	"github.com/corvusling/latin/internal/langtoken"
	"github.com/corvusling/latin/internal/roman"
	"github.com/corvusling/latin/internal/runtime"
	"github.com/corvusling/latin/internal/value"
)

// errDivideByZero is a sentinel so the statement handlers that evaluate a
// right-hand side can tell "division by zero" (from DVCE) apart from other
// evaluation errors and route it through the
// ERROR exception stack instead of straight to a fatal error (spec 4.4).
type errDivideByZero struct{}

func (errDivideByZero) Error() string { return "division by zero" }

// readValue evaluates the value at tokens[i], returning how many tokens it
// consumed. A Variable token immediately followed by a Genitive token is a
// record-field read ("NOMEN SERVII", field NOMEN of record SERVII); every
// other shape is a single-token literal or variable reference — the same
// rule applies uniformly to assignment RHS, operator operands, and VOCA
// arguments (spec 4.4, "same rules as other read sites").
func readValue(toks []langtoken.Token, i int, st *runtime.State) (value.Value, int, error) {
	if i >= len(toks) {
		return nil, 0, newSyntaxError("enuntiatum nimis breve est")
	}
	tok := toks[i]

	if tok.Kind == langtoken.Variable && i+1 < len(toks) && toks[i+1].Kind == langtoken.Genitive {
		field := tok.Name
		objName := toks[i+1].Name
		obj, err := lookupRecord(objName, st)
		if err != nil {
			return nil, 0, err
		}
		v, ok := obj.Get(field)
		if !ok {
			return nil, 0, newFieldError(field, objName)
		}
		return v, 2, nil
	}

	switch tok.Kind {
	case langtoken.Number:
		return value.Integer{N: tok.Int}, 1, nil
	case langtoken.String:
		return value.String{S: tok.Text}, 1, nil
	case langtoken.Variable:
		v, ok := st.Env.Get(tok.Name)
		if !ok {
			return nil, 0, newUndeclaredError(tok.Name)
		}
		return v, 1, nil
	case langtoken.Genitive:
		// A bare genitive with no preceding field-name variable is not a
		// legal read site on its own.
		return nil, 0, newSyntaxError("genetivus sine nomine campi")
	default:
		return nil, 0, newSyntaxError("valor exspectatus")
	}
}

func lookupRecord(nom string, st *runtime.State) (value.Record, error) {
	v, ok := st.Env.Get(nom)
	if !ok {
		return value.Record{}, newUndeclaredError(nom)
	}
	rec, ok := v.(value.Record)
	if !ok {
		return value.Record{}, newNotRecordError(nom, v.Kind())
	}
	return rec, nil
}

func asInteger(v value.Value) (int, bool) {
	i, ok := v.(value.Integer)
	return i.N, ok
}

func asString(v value.Value, promote bool) (string, bool) {
	switch x := v.(type) {
	case value.String:
		return x.S, true
	case value.Integer:
		if promote {
			return roman.Format(x.N), true
		}
	}
	return "", false
}

func concat(a, b value.Value) (value.Value, error) {
	as, aok := asString(a, true)
	bs, bok := asString(b, true)
	if !aok || !bok {
		return nil, newTypeError("IVNGE postulat catenas vel numeros")
	}
	return value.String{S: as + bs}, nil
}

func stringOp(a, b value.Value, op func(s, sub string) bool) (value.Value, error) {
	as, aok := asString(a, false)
	bs, bok := asString(b, false)
	if !aok || !bok {
		return nil, newTypeError("functio catenas postulat")
	}
	if op(as, bs) {
		return value.Integer{N: 1}, nil
	}
	return value.Integer{N: 0}, nil
}

func indexOf(a, b value.Value) (value.Value, error) {
	as, aok := asString(a, false)
	bs, bok := asString(b, false)
	if !aok || !bok {
		return nil, newTypeError("INDICEDE catenas postulat")
	}
	// Open-question decision (spec 9): "not found" and "found at index 0"
	// both surface as NIHIL/0, preserved as specified.
	idx := strings.Index(as, bs)
	if idx < 0 {
		idx = 0
	}
	return value.Integer{N: idx}, nil
}

func arith(a, b value.Value, op func(x, y int) (int, error)) (value.Value, error) {
	ai, aok := asInteger(a)
	bi, bok := asInteger(b)
	if !aok || !bok {
		return nil, newTypeError("operatio arithmetica numeros postulat")
	}
	n, err := op(ai, bi)
	if err != nil {
		return nil, err
	}
	return value.Integer{N: n}, nil
}

func addOp(x, y int) (int, error) { return x + y, nil }
func subOp(x, y int) (int, error) { return x - y, nil }
func mulOp(x, y int) (int, error) { return x * y, nil }
func divOp(x, y int) (int, error) {
	if y == 0 {
		return 0, errDivideByZero{}
	}
	return floorDiv(x, y), nil
}

// floorDiv implements integer floor division (spec 4.4's "integer ...
// floor-division"), which differs from Go's truncating / for
// mixed-sign operands.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// compare implements SI/DUM's comparison semantics (spec 4.4): AEQUAT
// compares Integer-Integer or String-String equality; MAIVS/MINOR require
// both operands Integer.
func compare(op string, a, b value.Value) (bool, error) {
	switch op {
	case "AEQUAT":
		if ai, aok := a.(value.Integer); aok {
			bi, bok := b.(value.Integer)
			if !bok {
				return false, newTypeError("AEQUAT postulat typos consentientes")
			}
			return ai.N == bi.N, nil
		}
		if as, aok := a.(value.String); aok {
			bs, bok := b.(value.String)
			if !bok {
				return false, newTypeError("AEQUAT postulat typos consentientes")
			}
			return as.S == bs.S, nil
		}
		return false, newTypeError("AEQUAT typum ignotum habet")
	case "MAIVS":
		ai, aok := asInteger(a)
		bi, bok := asInteger(b)
		if !aok || !bok {
			return false, newTypeError("MAIVS numeros postulat")
		}
		return ai > bi, nil
	case "MINOR":
		ai, aok := asInteger(a)
		bi, bok := asInteger(b)
		if !aok || !bok {
			return false, newTypeError("MINOR numeros postulat")
		}
		return ai < bi, nil
	default:
		return false, newSyntaxError("operator comparationis ignotus")
	}
}
