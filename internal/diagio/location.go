// Package diagio implements the Language's error-reporting needs (spec 7):
// a single fatal-error type carrying parallel Latin/English messages, a
// run-tagged leveled logger for AVDI/NOTA diagnostics, and a panic/recover
// discipline that turns an internal bug into a loggable error.
package diagio

import "fmt"

// Location names a line within a named source (a file path, or "<repl>"
// for interactive input), mirroring fileinput.Location.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
