// Package repl implements the Language's interactive mode (spec 6): a
// line-at-a-time read-eval-print loop over an Engine, recognizing VALE/EXIT
// as the quit words and ANGLICE/LATINE as the message-language toggle.
//
// It feeds stdin line by line into the same Engine the rest of the program
// runs against, detecting an interactive terminal with go-isatty so piped
// input runs quietly.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/corvusling/latin/internal/diagio"
	"github.com/corvusling/latin/internal/interp"
	"github.com/mattn/go-isatty"
)

// Prompt is printed before reading a line, only when In is a real terminal.
const Prompt = "> "

// REPL drives an Engine one line at a time from In, reporting fatal errors
// to Out without ever exiting the loop on its own account.
type REPL struct {
	Engine *interp.Engine
	In     io.Reader
	Out    io.Writer

	interactive bool
}

// New builds a REPL around an already-configured Engine (its stdout/stderr
// should already be wired; In/Out here are this loop's own prompt/echo
// stream, typically the same terminal).
func New(engine *interp.Engine, in io.Reader, out io.Writer) *REPL {
	r := &REPL{Engine: engine, In: in, Out: out}
	if f, ok := in.(interface{ Fd() uintptr }); ok {
		r.interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return r
}

// Run reads lines from In until EOF or a VALE/EXIT line, executing each one
// against the Engine's persistent state. A line-level fatal error is printed
// to Out and the loop continues; the function itself only returns on EOF or
// a quit word, never because a program line failed.
//
// Multi-line block constructs (SI/DUM/FAC/CAPE ... FINIS) are not supported
// across separate REPL lines: each line is run as its own one-line program,
// so a block opener typed alone will report an unterminated-block error
// immediately rather than waiting for its FINIS on a later line.
func (r *REPL) Run() error {
	scanner := bufio.NewScanner(r.In)
	for {
		if r.interactive {
			fmt.Fprint(r.Out, Prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		word := strings.ToUpper(line)
		switch word {
		case "":
			continue
		case "VALE", "EXIT":
			return nil
		case "ANGLICE":
			r.Engine.SetEnglish(true)
			continue
		case "LATINE":
			r.Engine.SetEnglish(false)
			continue
		}
		if err := r.Engine.RunLines([]string{line}); err != nil {
			if de, ok := err.(*diagio.Error); ok {
				fmt.Fprintln(r.Out, de.Format(r.Engine.English()))
			} else {
				fmt.Fprintln(r.Out, err.Error())
			}
		}
	}
}
