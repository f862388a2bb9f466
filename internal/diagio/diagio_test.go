package diagio_test

import (
	"bytes"
	"testing"

	"github.com/corvusling/latin/internal/diagio"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestErrorFormatLatinAndEnglish(t *testing.T) {
	err := diagio.NewError(diagio.Location{Name: "prog.lat", Line: 5}, diagio.CodeDivideByZero,
		"Divisio per nihil", "Division by zero")

	assert.Equal(t, "Error on line 5: ERRATUM: Divisio per nihil", err.Format(false))
	assert.Equal(t, "Error on line 5: ERRATUM: Division by zero", err.Format(true))
	assert.Equal(t, "Error on line 5: ERRATUM: Divisio per nihil", err.Error())
}

func TestLoggerPrefixesLevels(t *testing.T) {
	var buf bytes.Buffer
	log := diagio.NewLogger(&buf, uuid.New())

	log.Debugf("x = %d", 5)
	assert.Contains(t, buf.String(), "[DEBUG] x = 5")

	buf.Reset()
	log.Logf("starting up")
	assert.Contains(t, buf.String(), "[LOG] starting up")
}

func TestRecoverTurnsPanicIntoError(t *testing.T) {
	err := diagio.Recover("engine", func() error {
		panic("boom")
	})
	assert.Error(t, err)
	assert.True(t, diagio.IsPanic(err))
}

func TestRecoverPassesThroughNormalError(t *testing.T) {
	err := diagio.Recover("engine", func() error {
		return assert.AnError
	})
	assert.Equal(t, assert.AnError, err)
	assert.False(t, diagio.IsPanic(err))
}
