package interp

import (
	"strings"

	"github.com/corvusling/latin/internal/langtoken"
	"github.com/corvusling/latin/internal/roman"
	"github.com/corvusling/latin/internal/runtime"
	"github.com/corvusling/latin/internal/value"
)

// handleSit implements SIT V (spec 4.4): declares V as Integer 0 and, if
// missing, generates a declension entry for it (spec 4.2).
func (e *Engine) handleSit(toks []langtoken.Token) (int, bool, error) {
	if len(toks) < 2 || toks[1].Kind != langtoken.Variable {
		return 0, false, newSyntaxError("Syntax incorrecta post SIT")
	}
	nom := toks[1].Name
	e.st.Env.Declare(nom)
	if !e.decl.Has(nom) {
		e.decl.AutoRegister(nom)
	}
	return e.ip + 1, false, nil
}

// handlePrint is shared by SCRIBE/AVDI/NOTA: all three read one value (a
// literal, variable, or "Fname Obj" field read) and differ only in where
// it is written.
func (e *Engine) handlePrint(toks []langtoken.Token, write func(string)) (int, bool, error) {
	v, _, err := readValue(toks, 1, e.st)
	if err != nil {
		return 0, false, err
	}
	write(v.String())
	return e.ip + 1, false, nil
}

// handleLego implements LEGO V (spec 4.4): reads one line of standard
// input, storing an Integer if it parses wholesale as a Roman numeral,
// otherwise a String (one surrounding pair of quotes is stripped).
func (e *Engine) handleLego(toks []langtoken.Token) (int, bool, error) {
	if len(toks) < 2 || toks[1].Kind != langtoken.Variable {
		return 0, false, newSyntaxError("Syntax incorrecta post LEGO")
	}
	nom := toks[1].Name
	if !e.st.Env.IsDeclared(nom) {
		return 0, false, newUndeclaredError(nom)
	}
	e.flushAll() // surface any pending SCRIBE output before blocking on input
	line, _ := e.stdin.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if n, ok := roman.Parse(line); ok {
		e.st.Env.Set(nom, value.Integer{N: n})
		return e.ip + 1, false, nil
	}
	s := line
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	e.st.Env.Set(nom, value.String{S: s})
	return e.ip + 1, false, nil
}

// parseComparison reads "a OP b" starting at toks[i] (SI/DUM's condition
// grammar, spec 4.4).
func parseComparison(toks []langtoken.Token, i int, st *runtime.State) (bool, error) {
	a, n, err := readValue(toks, i, st)
	if err != nil {
		return false, err
	}
	i += n
	if i >= len(toks) || toks[i].Kind != langtoken.Keyword {
		return false, newSyntaxError("operator comparationis deest")
	}
	op := toks[i].Name
	b, _, err := readValue(toks, i+1, st)
	if err != nil {
		return false, err
	}
	return compare(op, a, b)
}

// handleSi implements SI a OP b (spec 4.4).
func (e *Engine) handleSi(toks []langtoken.Token) (int, bool, error) {
	result, err := parseComparison(toks, 1, e.st)
	if err != nil {
		return 0, false, err
	}
	scan, ok := scanForward(e.lines, e.ip+1, true)
	if !ok {
		return 0, false, newUnterminatedBlockError("SI")
	}
	if result {
		e.st.Depth++
		return e.ip + 1, false, nil
	}
	e.st.Depth++
	if scan.Terminator == "ALITER" {
		return scan.Line + 1, false, nil
	}
	return scan.Line, false, nil
}

// handleAliter implements ALITER reached by falling through a taken SI
// branch (spec 4.4): its own body must be skipped.
func (e *Engine) handleAliter() (int, bool, error) {
	scan, ok := scanForward(e.lines, e.ip+1, false)
	if !ok {
		return 0, false, newUnterminatedBlockError("ALITER")
	}
	return scan.Line, false, nil
}

// handleDum implements DUM a OP b (spec 4.4).
func (e *Engine) handleDum(toks []langtoken.Token) (int, bool, error) {
	result, err := parseComparison(toks, 1, e.st)
	if err != nil {
		return 0, false, err
	}
	scan, ok := scanForward(e.lines, e.ip+1, false)
	if !ok {
		return 0, false, newUnterminatedBlockError("DUM")
	}
	if result {
		loopDepth := e.st.Depth
		e.st.Depth++
		e.st.Loops.Push(runtime.LoopFrame{HeaderLine: e.ip, Depth: loopDepth})
		return e.ip + 1, false, nil
	}
	return scan.Line + 1, false, nil
}

// handleFac implements FAC F p1 p2 ... (spec 4.4): records the function
// entry and jumps past its (unexecuted) body.
func (e *Engine) handleFac(toks []langtoken.Token) (int, bool, error) {
	if len(toks) < 2 {
		return 0, false, newSyntaxError("Syntax incorrecta post FAC")
	}
	name := toks[1].Name
	params := make([]string, 0, len(toks)-2)
	for _, t := range toks[2:] {
		params = append(params, t.Name)
		e.st.Env.Declare(t.Name)
		if !e.decl.Has(t.Name) {
			e.decl.AutoRegister(t.Name)
		}
	}
	scan, ok := scanForward(e.lines, e.ip+1, false)
	if !ok {
		return 0, false, newUnterminatedBlockError("FAC")
	}
	e.st.Functions.Define(name, runtime.Function{Params: params, Start: e.ip + 1, End: scan.Line})
	return scan.Line + 1, false, nil
}

// handleVocaCall implements the function-call mechanics of spec 4.4: it is
// invoked by assignment dispatch when the RHS begins with VOCA, since a
// call affects control flow rather than producing a value inline.
func (e *Engine) handleVocaCall(toks []langtoken.Token, nameIdx int, dest string, hasDest bool) (int, bool, error) {
	if nameIdx >= len(toks) {
		return 0, false, newSyntaxError("Syntax incorrecta post VOCA")
	}
	name := toks[nameIdx].Name
	fn, ok := e.st.Functions.Lookup(name)
	if !ok {
		return 0, false, newNoFunctionError(name)
	}
	var args []value.Value
	i := nameIdx + 1
	for i < len(toks) {
		v, n, err := readValue(toks, i, e.st)
		if err != nil {
			return 0, false, err
		}
		args = append(args, v)
		i += n
	}
	if len(args) != len(fn.Params) {
		return 0, false, newArityError(name, len(fn.Params), len(args))
	}
	snap := e.st.Env.Snapshot()
	for idx, p := range fn.Params {
		e.st.Env.Set(p, args[idx])
	}
	e.st.Calls.Push(runtime.CallFrame{
		CallerIP: e.ip,
		Snapshot: snap,
		Dest:     dest,
		HasDest:  hasDest,
		FuncEnd:  fn.End,
	})
	e.st.Depth++
	return fn.Start, false, nil
}

// doReturn pops the active call frame, restores its environment snapshot,
// and writes v into its destination variable if any (spec 4.4's REDDO
// mechanics, also used by FINIS's implicit fall-off-end return).
func (e *Engine) doReturn(v value.Value) (int, bool, error) {
	frame, ok := e.st.Calls.Pop()
	if !ok {
		return 0, false, newNoReturnTargetError()
	}
	e.st.Env.Restore(frame.Snapshot)
	if frame.HasDest {
		e.st.Env.Set(frame.Dest, v)
	}
	return frame.CallerIP + 1, false, nil
}

// handleReddo implements REDDO x (spec 4.4).
func (e *Engine) handleReddo(toks []langtoken.Token) (int, bool, error) {
	if len(toks) < 2 {
		return 0, false, newSyntaxError("Syntax incorrecta post REDDO")
	}
	v, err := evalRHS(toks, 1, e.st)
	if err != nil {
		if _, isDiv := err.(errDivideByZero); isDiv {
			return e.raise("ERROR", "")
		}
		return 0, false, err
	}
	e.st.Depth--
	return e.doReturn(v)
}

// raise implements the handler search shared by IACE and a division by
// zero that occurs with an ERROR handler active (spec 4.4): find the
// most-recently installed frame named name and jump into its body,
// recording the current exception payload for it to consume.
func (e *Engine) raise(name, msg string) (int, bool, error) {
	frame, ok := e.st.Exceptions.Find(name)
	if !ok {
		if name == "ERROR" {
			return 0, false, newDivideByZeroError()
		}
		return 0, false, newUncaughtThrowError(name, msg)
	}
	e.st.Exception = &runtime.CurrentException{Name: name, Message: msg}
	return frame.BodyStart, false, nil
}

// handleIace implements IACE E ["msg"] (spec 4.4).
func (e *Engine) handleIace(toks []langtoken.Token) (int, bool, error) {
	if len(toks) < 2 {
		return 0, false, newSyntaxError("Syntax incorrecta post IACE")
	}
	msg := ""
	if len(toks) > 2 && toks[2].Kind == langtoken.String {
		msg = toks[2].Text
	}
	return e.raise(toks[1].Name, msg)
}

// handleCape implements CAPE E (spec 4.4), using the "pending flag on the
// handler frame itself" representation spec 9 suggests in place of a
// separate skip-pop flag threaded through the engine.
func (e *Engine) handleCape(toks []langtoken.Token) (int, bool, error) {
	if len(toks) < 2 {
		return 0, false, newSyntaxError("Syntax incorrecta post CAPE")
	}
	name := toks[1].Name

	scan, ok := scanForward(e.lines, e.ip+1, false)
	if !ok {
		return 0, false, newUnterminatedBlockError("CAPE")
	}

	if e.st.Exception != nil && e.st.Exception.Name == name {
		// An exception of this type is already propagating when CAPE
		// itself is reached by ordinary sequential flow (e.g. a CAPE
		// re-executed on a later loop iteration): fall through into the
		// handler body instead of skipping it.
		e.st.Exception = nil
		e.st.Exceptions.Push(runtime.ExceptionFrame{Name: name, BodyStart: e.ip + 1, End: scan.Line, Pending: false})
		e.st.Depth++
		return e.ip + 1, false, nil
	}

	// Definition-time pass: skip the body. Jumping to the FINIS line
	// itself (not past it) lets that FINIS run exactly once now,
	// consuming the one-shot Pending flag; depth is raised by two here and
	// that FINIS lowers it by one, so it stays one above its pre-CAPE
	// value. The real entry into the body happens later, when
	// IACE (or a division by zero) finds this frame and jumps straight to
	// BodyStart.
	e.st.Exceptions.Push(runtime.ExceptionFrame{Name: name, BodyStart: e.ip + 1, End: scan.Line, Pending: true})
	e.st.Depth += 2
	return scan.Line, false, nil
}

// handleFinis implements FINIS (spec 4.4): it closes whichever kind of
// block is topmost — a skipped exception-handler definition, a caught
// exception's handler body, an implicit function return, a loop body, or
// a plain conditional/else block — in that priority order, since a given
// FINIS line can only ever play one of these roles.
func (e *Engine) handleFinis() (int, bool, error) {
	e.st.Depth--

	if top := e.st.Exceptions.Top(); top != nil && top.Pending {
		top.Pending = false
		return e.ip + 1, false, nil
	}

	if top := e.st.Exceptions.Top(); top != nil && top.End == e.ip &&
		e.st.Exception != nil && e.st.Exception.Name == top.Name {
		e.st.Exceptions.Pop()
		e.st.Exception = nil
		return len(e.lines), true, nil
	}

	if frame, ok := e.st.Calls.Top(); ok && frame.FuncEnd == e.ip {
		return e.doReturn(value.Zero)
	}

	if top, ok := e.st.Loops.Top(); ok && top.Depth == e.st.Depth {
		e.st.Loops.Pop()
		return top.HeaderLine, false, nil
	}

	return e.ip + 1, false, nil
}

// handleAssignment implements both assignment shapes from spec 4.4: plain
// "V EST rhs" and genitive field assignment "Fname EST Obj rhs".
func (e *Engine) handleAssignment(toks []langtoken.Token) (int, bool, error) {
	if len(toks) >= 3 && toks[0].Kind == langtoken.Variable && toks[1].Kind == langtoken.Genitive && toks[2].IsKeyword("EST") {
		return e.handleFieldAssignment(toks)
	}
	if len(toks) >= 2 && toks[0].Kind == langtoken.Variable && toks[1].IsKeyword("EST") {
		return e.handlePlainAssignment(toks)
	}
	return 0, false, newSyntaxError("Syntax incorrecta")
}

func (e *Engine) handlePlainAssignment(toks []langtoken.Token) (int, bool, error) {
	dest := toks[0].Name
	if !e.st.Env.IsDeclared(dest) {
		return 0, false, newUndeclaredError(dest)
	}
	if len(toks) > 2 && toks[2].IsKeyword("VOCA") {
		return e.handleVocaCall(toks, 3, dest, true)
	}
	v, err := evalRHS(toks, 2, e.st)
	if err != nil {
		if _, isDiv := err.(errDivideByZero); isDiv {
			return e.raise("ERROR", "")
		}
		return 0, false, err
	}
	e.st.Env.Set(dest, v)
	return e.ip + 1, false, nil
}

func (e *Engine) handleFieldAssignment(toks []langtoken.Token) (int, bool, error) {
	field := toks[0].Name
	objName := toks[1].Name
	objVal, ok := e.st.Env.Get(objName)
	if !ok {
		return 0, false, newUndeclaredError(objName)
	}
	rec, isRecord := objVal.(value.Record)
	if !isRecord {
		// "auto-creating the record on first assignment" (spec 4.4): any
		// non-record value in the slot (the Integer 0 SIT initializes it
		// to) is silently replaced.
		rec = value.Record{}
	}
	v, err := evalRHS(toks, 3, e.st)
	if err != nil {
		if _, isDiv := err.(errDivideByZero); isDiv {
			return e.raise("ERROR", "")
		}
		return 0, false, err
	}
	rec = rec.With(field, value.CopyOnAssign(v))
	e.st.Env.Set(objName, rec)
	return e.ip + 1, false, nil
}
