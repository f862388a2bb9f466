// Package runtime holds the Language's mutable execution state: the
// variable environment, function table, and the call/exception/loop
// control-flow stacks (spec 3): a name-keyed store with explicit
// snapshot/restore for call frames, and LIFO push/pop stacks for in-flight
// calls, handlers, and loops.
package runtime

import "github.com/corvusling/latin/internal/value"

// Environment is the Language's single, flat variable scope: there is no
// lexical nesting, only the snapshot/restore a function call performs
// around it (spec 3's Call-stack frame).
type Environment struct {
	values   map[string]value.Value
	declared map[string]bool
	order    []string // declaration order, for the tokenizer's scan-order tie-break
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{
		values:   make(map[string]value.Value),
		declared: make(map[string]bool),
	}
}

// Declare registers nom as a live variable, initialized to Integer 0
// (spec 3). Redeclaring an already-declared name resets it to zero and
// does not duplicate its position in DeclaredNames order.
func (e *Environment) Declare(nom string) {
	if !e.declared[nom] {
		e.declared[nom] = true
		e.order = append(e.order, nom)
	}
	e.values[nom] = value.Zero
}

// IsDeclared reports whether nom has been declared.
func (e *Environment) IsDeclared(nom string) bool { return e.declared[nom] }

// Get returns the current value of a declared variable.
func (e *Environment) Get(nom string) (value.Value, bool) {
	v, ok := e.values[nom]
	return v, ok
}

// Set overwrites the value of an already-declared variable. It is a
// programming error to call Set on an undeclared name; callers must check
// IsDeclared first (the engine raises a semantic error instead of calling
// Set blindly).
func (e *Environment) Set(nom string, v value.Value) {
	e.values[nom] = value.CopyOnAssign(v)
}

// DeclaredNames returns every declared nominative, in declaration order.
// The tokenizer uses this order for its scan-order tie-break (spec 4.3
// rule 4).
func (e *Environment) DeclaredNames() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Snapshot returns a deep copy of the environment, used by the call stack
// to preserve the caller's state across a function invocation (spec 3's
// Call-stack frame, spec 4.4's call mechanics step 3).
func (e *Environment) Snapshot() *Environment {
	cp := &Environment{
		values:   make(map[string]value.Value, len(e.values)),
		declared: make(map[string]bool, len(e.declared)),
		order:    append([]string(nil), e.order...),
	}
	for k, v := range e.values {
		cp.values[k] = value.CopyOnAssign(v)
	}
	for k, v := range e.declared {
		cp.declared[k] = v
	}
	return cp
}

// Restore replaces e's contents with snap's, implementing REDDO's
// "restore its variable-environment snapshot" step (spec 4.4).
func (e *Environment) Restore(snap *Environment) {
	e.values = snap.values
	e.declared = snap.declared
	e.order = snap.order
}
