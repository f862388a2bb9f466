package value_test

import (
	"testing"

	"github.com/corvusling/latin/internal/value"
	"github.com/stretchr/testify/assert"
)

func TestIntegerStringIsRoman(t *testing.T) {
	assert.Equal(t, "V", value.Integer{N: 5}.String())
	assert.Equal(t, "NIHIL", value.Integer{N: 0}.String())
}

func TestStringValueRoundTrips(t *testing.T) {
	s := value.String{S: "MARCUS"}
	assert.Equal(t, "MARCUS", s.String())
	assert.Equal(t, "STRING", s.Kind())
}

func TestRecordWithAndGet(t *testing.T) {
	var r value.Record
	r = r.With("NOMEN", value.String{S: "MARCUS"})
	got, ok := r.Get("NOMEN")
	assert.True(t, ok)
	assert.Equal(t, value.String{S: "MARCUS"}, got)

	_, ok = r.Get("AETAS")
	assert.False(t, ok)
}

func TestRecordCloneIsIndependent(t *testing.T) {
	var r value.Record
	r = r.With("NOMEN", value.String{S: "MARCUS"})
	clone := r.Clone()
	clone = clone.With("NOMEN", value.String{S: "IULIA"})

	got, _ := r.Get("NOMEN")
	assert.Equal(t, value.String{S: "MARCUS"}, got, "original must be unaffected by mutation through the clone")
}

func TestCopyOnAssignDeepCopiesRecords(t *testing.T) {
	var r value.Record
	r = r.With("NOMEN", value.String{S: "MARCUS"})
	var v value.Value = r
	copied := value.CopyOnAssign(v).(value.Record)
	copied = copied.With("NOMEN", value.String{S: "IULIA"})

	original, _ := r.Get("NOMEN")
	assert.Equal(t, value.String{S: "MARCUS"}, original)

	assert.Equal(t, value.Integer{N: 3}, value.CopyOnAssign(value.Integer{N: 3}))
}
