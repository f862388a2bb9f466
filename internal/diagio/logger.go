package diagio

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
)

// Logger is a small mutex-guarded leveled writer over a single stderr
// stream. Every line is tagged with a short run id so diagnostics from
// concurrent or repeated interpreter runs (tests, REPL sessions) can be
// told apart in aggregated logs.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	runID string
}

// NewLogger returns a Logger writing to stderr, tagged with a fresh short
// run id derived from runID's first 8 hex characters.
func NewLogger(stderr io.Writer, runID uuid.UUID) *Logger {
	return &Logger{out: stderr, runID: runID.String()[:8]}
}

// Debugf implements AVDI: "[DEBUG] " prefixed stderr output (spec 4.4).
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.printf("[DEBUG] ", format, args...)
}

// Logf implements NOTA: "[LOG] " prefixed stderr output (spec 4.4).
func (l *Logger) Logf(format string, args ...interface{}) {
	l.printf("[LOG] ", format, args...)
}

func (l *Logger) printf(prefix, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	fmt.Fprintf(l.out, "%s%s (run=%s)\n", prefix, msg, l.runID)
}
