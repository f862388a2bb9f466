package interp

import (
	"strings"

	"github.com/corvusling/latin/internal/langtoken"
	"github.com/corvusling/latin/internal/runtime"
	"github.com/corvusling/latin/internal/value"
)

// evalRHS evaluates the assignment/REDDO right-hand side starting at
// toks[start] (spec 4.4): either one of the named binary operators
// (IVNGE, INCIPITCVM, FINITVRCVM, CONTINET, INDICEDE, ADDE, DEME,
// MVLTIPLICA, DVCE) applied to two read-sites, or a single value/field
// read when no operator keyword leads. VOCA is deliberately not handled
// here — it affects control flow (it pushes a call frame and jumps) and
// is dispatched by the caller before evalRHS ever runs.
func evalRHS(toks []langtoken.Token, start int, st *runtime.State) (value.Value, error) {
	if start >= len(toks) {
		return nil, newSyntaxError("latus dextrum enuntiationis deest")
	}

	if toks[start].Kind == langtoken.Keyword {
		switch toks[start].Name {
		case "IVNGE":
			a, b, err := readTwoOperands(toks, start+1, st)
			if err != nil {
				return nil, err
			}
			return concat(a, b)
		case "INCIPITCVM":
			a, b, err := readTwoOperands(toks, start+1, st)
			if err != nil {
				return nil, err
			}
			return stringOp(a, b, strings.HasPrefix)
		case "FINITVRCVM":
			a, b, err := readTwoOperands(toks, start+1, st)
			if err != nil {
				return nil, err
			}
			return stringOp(a, b, strings.HasSuffix)
		case "CONTINET":
			a, b, err := readTwoOperands(toks, start+1, st)
			if err != nil {
				return nil, err
			}
			return stringOp(a, b, strings.Contains)
		case "INDICEDE":
			a, b, err := readTwoOperands(toks, start+1, st)
			if err != nil {
				return nil, err
			}
			return indexOf(a, b)
		case "ADDE":
			a, b, err := readTwoOperands(toks, start+1, st)
			if err != nil {
				return nil, err
			}
			return arith(a, b, addOp)
		case "DEME":
			a, b, err := readTwoOperands(toks, start+1, st)
			if err != nil {
				return nil, err
			}
			return arith(a, b, subOp)
		case "MVLTIPLICA":
			a, b, err := readTwoOperands(toks, start+1, st)
			if err != nil {
				return nil, err
			}
			return arith(a, b, mulOp)
		case "DVCE":
			a, b, err := readTwoOperands(toks, start+1, st)
			if err != nil {
				return nil, err
			}
			return arith(a, b, divOp)
		}
	}

	v, _, err := readValue(toks, start, st)
	return v, err
}

func readTwoOperands(toks []langtoken.Token, i int, st *runtime.State) (value.Value, value.Value, error) {
	a, n, err := readValue(toks, i, st)
	if err != nil {
		return nil, nil, err
	}
	b, _, err := readValue(toks, i+n, st)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
