package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDv7(t *testing.T) {
	gen := NewUUIDv7()

	a, b := gen.NewID(), gen.NewID()

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, a, b)
}

func TestSequence(t *testing.T) {
	seq := NewSequence("emp")

	assert.Equal(t, "emp-1", seq.NewID())
	assert.Equal(t, "emp-2", seq.NewID())
}
