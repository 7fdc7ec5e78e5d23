package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors(t *testing.T) {
	err := Append(
		Field("Amount", ErrAmount, "must be positive"),
		Field("Depositor", ErrEmpty, ""),
		nil,
		Field("Amount", ErrOverflow, "too big"),
	)

	amount := FieldErrors(err, "Amount")
	require.Len(t, amount, 2)
	assert.True(t, ErrAmount.Is(amount[0]))
	assert.True(t, ErrOverflow.Is(amount[1]))

	dep := FieldErrors(err, "Depositor")
	require.Len(t, dep, 1)
	assert.True(t, ErrEmpty.Is(dep[0]))
	assert.Equal(t, `field "Depositor": value is empty`, dep[0].Error())

	assert.Empty(t, FieldErrors(err, "Counterparty"))
	assert.Empty(t, FieldErrors(nil, "Amount"))
}

func TestFieldNil(t *testing.T) {
	assert.Nil(t, Field("Amount", nil, "ignored"))
	assert.Nil(t, AppendField(nil, "Amount", nil))
}

func TestFieldFormatting(t *testing.T) {
	err := Field("Kind", ErrInput, "ticker %q", "X")
	assert.Equal(t, `field "Kind": ticker "X": invalid input`, err.Error())
	assert.True(t, ErrInput.Is(err))
}
