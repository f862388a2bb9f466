package repl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/corvusling/latin/internal/interp"
	"github.com/corvusling/latin/internal/repl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplExecutesLinesAndQuitsOnVale(t *testing.T) {
	var stdout bytes.Buffer
	engine := interp.New(interp.WithStdout(&stdout), interp.WithSourceName("<repl>"))

	input := strings.NewReader(strings.Join([]string{
		"SIT NUMERUS",
		"NUMERUS EST V",
		"SCRIBE NUMERUM",
		"VALE",
		"SCRIBE NUMERUM", // must never run: VALE already quit
	}, "\n") + "\n")

	var session bytes.Buffer
	r := repl.New(engine, input, &session)
	require.NoError(t, r.Run())
	assert.Equal(t, "V\n", stdout.String())
}

func TestReplExitAlsoQuits(t *testing.T) {
	var stdout bytes.Buffer
	engine := interp.New(interp.WithStdout(&stdout), interp.WithSourceName("<repl>"))

	input := strings.NewReader("EXIT\n")
	var session bytes.Buffer
	r := repl.New(engine, input, &session)
	require.NoError(t, r.Run())
	assert.Equal(t, "", stdout.String())
}

func TestReplReportsFatalErrorsAndContinues(t *testing.T) {
	var stdout bytes.Buffer
	engine := interp.New(interp.WithStdout(&stdout), interp.WithSourceName("<repl>"))

	input := strings.NewReader(strings.Join([]string{
		"SCRIBE NUMERUM", // NUMERUS was never declared: fatal
		"SIT NUMERUS",
		"SCRIBE NUMERUM",
		"VALE",
	}, "\n") + "\n")

	var session bytes.Buffer
	r := repl.New(engine, input, &session)
	require.NoError(t, r.Run())
	assert.Contains(t, session.String(), "ERRATUM")
	assert.Equal(t, "NIHIL\n", stdout.String())
}

func TestReplToggleEnglish(t *testing.T) {
	var stdout bytes.Buffer
	engine := interp.New(interp.WithStdout(&stdout), interp.WithSourceName("<repl>"))
	require.False(t, engine.English())

	input := strings.NewReader("ANGLICE\nVALE\n")
	var session bytes.Buffer
	r := repl.New(engine, input, &session)
	require.NoError(t, r.Run())
	assert.True(t, engine.English())
}
