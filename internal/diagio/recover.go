package diagio

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// panicError represents a recovered goroutine panic turned into an
// ordinary error, carrying its stack trace for %+v formatting.
type panicError struct {
	name  string
	val   interface{}
	stack []byte
}

func (pe panicError) Error() string { return fmt.Sprint(pe) }

func (pe panicError) Format(f fmt.State, c rune) {
	if pe.name == "" {
		fmt.Fprintf(f, "paniced: %v", pe.val)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", pe.name, pe.val)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

// IsPanic reports whether err wraps a recovered goroutine panic.
func IsPanic(err error) bool {
	var pe panicError
	return errors.As(err, &pe)
}

// Recover runs f and turns any panic into an ordinary error tagged with
// name, so the engine's internal bugs surface as a loggable error instead
// of a raw Go panic trace (spec 7's "an internal bug surfaces as a tagged,
// logged error"). f runs in the caller's goroutine: the interpreter never
// needs concurrent cancellation (spec 5), so there is no reason to pay a
// goroutine's worth of indirection here.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError{name: name, val: r, stack: debug.Stack()}
		}
	}()
	return f()
}
