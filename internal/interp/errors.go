package interp

import (
	"fmt"

	"github.com/corvusling/latin/internal/diagio"
)

// langError is a location-less, bilingual error produced by statement
// dispatch and value evaluation. The engine attaches the current line
// number and wraps it into a *diagio.Error once it escapes RunLines
// (spec 7).
type langError struct {
	Code    string
	Latin   string
	English string
}

func (e *langError) Error() string { return e.Latin }

func newSyntaxError(latin string) *langError {
	return &langError{Code: diagio.CodeSyntax, Latin: latin, English: "syntax error: " + latin}
}

func newUndeclaredError(name string) *langError {
	return &langError{
		Code:    diagio.CodeUndeclared,
		Latin:   fmt.Sprintf("%s non declaratum est", name),
		English: fmt.Sprintf("%s was never declared", name),
	}
}

func newTypeError(latin string) *langError {
	return &langError{Code: diagio.CodeType, Latin: latin, English: "type error: " + latin}
}

func newNotRecordError(nom, kind string) *langError {
	return &langError{
		Code:    diagio.CodeType,
		Latin:   fmt.Sprintf("%s tabula non est (%s est)", nom, kind),
		English: fmt.Sprintf("%s is not a record (it is %s)", nom, kind),
	}
}

func newFieldError(field, obj string) *langError {
	return &langError{
		Code:    diagio.CodeNoRecordField,
		Latin:   fmt.Sprintf("%s campum %s non habet", obj, field),
		English: fmt.Sprintf("%s has no field %s", obj, field),
	}
}

func newArityError(fn string, want, got int) *langError {
	return &langError{
		Code:    diagio.CodeArity,
		Latin:   fmt.Sprintf("%s postulat %d argumenta, %d data sunt", fn, want, got),
		English: fmt.Sprintf("%s expects %d arguments, got %d", fn, want, got),
	}
}

func newNoFunctionError(fn string) *langError {
	return &langError{
		Code:    diagio.CodeNoFunction,
		Latin:   fmt.Sprintf("functio %s non definita est", fn),
		English: fmt.Sprintf("function %s is not defined", fn),
	}
}

func newNoReturnTargetError() *langError {
	return &langError{
		Code:    diagio.CodeNoReturn,
		Latin:   "REDDO extra functionem",
		English: "REDDO outside a function",
	}
}

func newDivideByZeroError() *langError {
	return &langError{
		Code:    diagio.CodeDivideByZero,
		Latin:   "Divisio per nihil",
		English: "Division by zero",
	}
}

func newUncaughtThrowError(name, msg string) *langError {
	latin := fmt.Sprintf("IACE %s non captum est", name)
	english := fmt.Sprintf("uncaught exception %s", name)
	if msg != "" {
		latin += ": " + msg
		english += ": " + msg
	}
	return &langError{Code: diagio.CodeUncaughtThrow, Latin: latin, English: english}
}

func newUnterminatedBlockError(opener string) *langError {
	return &langError{
		Code:    diagio.CodeSyntax,
		Latin:   fmt.Sprintf("%s sine FINIS pari relinquitur", opener),
		English: fmt.Sprintf("%s has no matching FINIS", opener),
	}
}
