package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend(t *testing.T) {
	assert.Nil(t, Append())
	assert.Nil(t, Append(nil, nil))
	assert.Equal(t, ErrState, Append(nil, ErrState, nil))

	err := Append(ErrInput, Append(ErrState, ErrEmpty))
	u, ok := err.(unpacker)
	require.True(t, ok)
	assert.Len(t, u.Unpack(), 3, "nested groups are flattened")
	assert.Equal(t, ErrInput.code, abciCode(err))
}
