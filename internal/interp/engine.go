// Package interp implements the Language's execution engine (spec 4.4):
// the instruction-pointer loop over a line array, its statement
// dispatcher, and the forward block-scanner: a dispatch-and-jump control
// loop over statement handlers, constructed through a functional-options
// pattern (see Option, below).
package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/corvusling/latin/internal/declension"
	"github.com/corvusling/latin/internal/diagio"
	"github.com/corvusling/latin/internal/flushio"
	"github.com/corvusling/latin/internal/langtoken"
	"github.com/corvusling/latin/internal/lexer"
	"github.com/corvusling/latin/internal/runtime"
	"github.com/google/uuid"
)

// Engine holds everything needed to run Language source against a set of
// byte streams: the runtime state (spec 3), the shared declension table,
// and the configured I/O (spec 6). stdout/stderr are wrapped in
// flushio.WriteFlusher, a buffered-output-with-guaranteed-flush writer:
// real files and pipes get a bufio.Writer so SCRIBE output isn't written
// one syscall per line, while an in-memory *bytes.Buffer (as tests use)
// passes through unbuffered.
type Engine struct {
	stdout flushio.WriteFlusher
	stderr flushio.WriteFlusher
	stdin  *bufio.Reader
	logger *diagio.Logger

	english    bool
	sourceName string
	tracer     func(ip int, line string)

	st   *runtime.State
	decl *declension.Table

	lines []string
	ip    int
}

// Option configures an Engine at construction time (spec's Configuration
// section: functional options, no files or environment variables).
type Option func(*Engine)

// WithStdout overrides SCRIBE's destination.
func WithStdout(w io.Writer) Option {
	return func(e *Engine) { e.stdout = flushio.NewWriteFlusher(w) }
}

// WithStderr overrides AVDI/NOTA and fatal-error destination.
func WithStderr(w io.Writer) Option {
	return func(e *Engine) { e.stderr = flushio.NewWriteFlusher(w) }
}

// WithStdin overrides LEGO's source.
func WithStdin(r io.Reader) Option { return func(e *Engine) { e.stdin = bufio.NewReader(r) } }

// WithEnglish selects English diagnostic messages (spec 6's
// --english / ANGLICE toggle).
func WithEnglish(english bool) Option { return func(e *Engine) { e.english = english } }

// WithSourceName sets the name reported in diagnostics (a file path, or
// "<repl>" for interactive input).
func WithSourceName(name string) Option { return func(e *Engine) { e.sourceName = name } }

// WithTracer installs a callback invoked before each line executes, used
// by debugging tools and tests; nil (the default) disables tracing.
func WithTracer(tracer func(ip int, line string)) Option {
	return func(e *Engine) { e.tracer = tracer }
}

// New constructs an Engine with fresh runtime state and a seeded
// declension table, applying opts over the defaults (stdout/stderr/stdin
// wired to the process streams, Latin messages, source name "<program>").
func New(opts ...Option) *Engine {
	e := &Engine{
		stdout:     flushio.NewWriteFlusher(os.Stdout),
		stderr:     flushio.NewWriteFlusher(os.Stderr),
		stdin:      bufio.NewReader(os.Stdin),
		sourceName: "<program>",
		st:         runtime.NewState(),
		decl:       declension.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = diagio.NewLogger(e.stderr, uuid.New())
	}
	return e
}

// English reports whether the engine is configured for English messages.
func (e *Engine) English() bool { return e.english }

// SetEnglish toggles the message language at runtime (ANGLICE/LATINE,
// spec 6).
func (e *Engine) SetEnglish(english bool) { e.english = english }

// Run splits source into lines and executes it from the top (spec 4.4).
// It resets control-flow stacks and the instruction pointer but keeps
// prior variable/function state, so a REPL can call Run repeatedly on an
// Engine it keeps around across lines (spec 6).
func (e *Engine) Run(source string) error {
	return e.RunLines(strings.Split(source, "\n"))
}

// RunLines executes a line array directly, bypassing the newline split
// Run performs. Used both for whole-program execution and, one line at a
// time, by the REPL. Both output streams are flushed before returning,
// so buffered SCRIBE/AVDI/NOTA output is never lost on exit. The whole
// loop runs under diagio.Recover so that a bug in the engine itself
// surfaces as a tagged, logged error rather than a raw Go panic trace
// (spec 7).
func (e *Engine) RunLines(lines []string) error {
	defer e.flushAll()
	e.lines = lines
	e.ip = 0
	e.st.Calls = runtime.NewCallStack()
	e.st.Exceptions = runtime.NewExceptionStack()
	e.st.Loops = runtime.NewLoopStack()
	e.st.Depth = 0
	e.st.Exception = nil
	err := diagio.Recover("engine", func() error {
		for e.ip < len(e.lines) {
			if e.tracer != nil {
				e.tracer(e.ip, e.lines[e.ip])
			}
			next, halt, err := e.step()
			if err != nil {
				return err
			}
			if halt {
				return nil
			}
			e.ip = next
		}
		return nil
	})
	if err == nil {
		return nil
	}
	return e.toFatal(err)
}

// step tokenizes and dispatches the single line at e.ip (spec 4.4's
// per-line loop body).
func (e *Engine) step() (int, bool, error) {
	raw := e.lines[e.ip]
	ctx := lexer.Declared{Names: e.st.Env.DeclaredNames(), Table: e.decl}
	toks, err := lexer.Tokenize(raw, ctx)
	if err != nil {
		return 0, false, err
	}
	if len(toks) == 0 {
		return e.ip + 1, false, nil
	}
	return e.dispatch(toks)
}

// dispatch routes a tokenized line to its statement handler, keyed on the
// first token (spec 4.4).
func (e *Engine) dispatch(toks []langtoken.Token) (int, bool, error) {
	first := toks[0]
	if first.Kind == langtoken.Keyword {
		switch first.Name {
		case "SIT":
			return e.handleSit(toks)
		case "SCRIBE":
			return e.handlePrint(toks, e.writeStdout)
		case "AVDI":
			return e.handlePrint(toks, e.writeDebug)
		case "NOTA":
			return e.handlePrint(toks, e.writeLog)
		case "LEGO":
			return e.handleLego(toks)
		case "SI":
			return e.handleSi(toks)
		case "ALITER":
			return e.handleAliter()
		case "DUM":
			return e.handleDum(toks)
		case "FAC":
			return e.handleFac(toks)
		case "REDDO":
			return e.handleReddo(toks)
		case "IACE":
			return e.handleIace(toks)
		case "CAPE":
			return e.handleCape(toks)
		case "FINIS":
			return e.handleFinis()
		default:
			return 0, false, newSyntaxError("enuntiatum ignotum: " + first.Name)
		}
	}
	if first.Kind == langtoken.Variable {
		return e.handleAssignment(toks)
	}
	return 0, false, newSyntaxError("enuntiatum a signo ignoto incipit")
}

func (e *Engine) writeStdout(s string) { fmt.Fprintln(e.stdout, s) }
func (e *Engine) writeDebug(s string)  { e.logger.Debugf("%s", s) }
func (e *Engine) writeLog(s string)    { e.logger.Logf("%s", s) }

// flushAll flushes stdout and stderr, swallowing any flush error since a
// failed flush on process exit has nowhere useful to go.
func (e *Engine) flushAll() {
	_ = e.stdout.Flush()
	_ = e.stderr.Flush()
}

// toFatal converts an interp-internal *langError into the ambient
// *diagio.Error carrying the current line (spec 7). Errors that already
// arrived as *diagio.Error (none currently do, but future callers might
// pass one through directly) are returned unchanged. A recovered panic
// (diagio.IsPanic) surfaces under diagio.CodeInternal rather than one of
// the language's own error codes.
func (e *Engine) toFatal(err error) error {
	if de, ok := err.(*diagio.Error); ok {
		return de
	}
	le, ok := err.(*langError)
	if !ok {
		return diagio.NewError(e.currentLocation(), diagio.CodeInternal, err.Error(), err.Error())
	}
	return diagio.NewError(e.currentLocation(), le.Code, le.Latin, le.English)
}

func (e *Engine) currentLocation() diagio.Location {
	return diagio.Location{Name: e.sourceName, Line: e.ip + 1}
}
