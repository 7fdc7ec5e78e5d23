package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"plain registered error": {
			err:      ErrState,
			wantLog:  "invalid state",
			wantCode: ErrState.code,
		},
		"wrapped registered error": {
			err:      Wrap(Wrap(ErrUnauthorized, "foo"), "bar"),
			wantLog:  "bar: foo: unauthorized",
			wantCode: ErrUnauthorized.code,
		},
		"nil is empty message": {
			err:      nil,
			wantLog:  "",
			wantCode: 0,
		},
		"nil registered error is not an error": {
			err:      (*Error)(nil),
			wantLog:  "",
			wantCode: 0,
		},
		"stdlib is generic message": {
			err:      io.EOF,
			wantLog:  "internal error",
			wantCode: 1,
		},
		"stdlib returns error message in debug mode": {
			err:      io.EOF,
			debug:    true,
			wantLog:  "EOF",
			wantCode: 1,
		},
		"wrapped stdlib is only a generic message": {
			err:      Wrap(io.EOF, "cannot read file"),
			wantLog:  "internal error",
			wantCode: 1,
		},
		"custom error": {
			err:      customErr{},
			wantLog:  "custom",
			wantCode: 999,
		},
		"multi error takes the first code": {
			err:      Append(ErrInput, ErrState),
			wantCode: ErrInput.code,
			wantLog:  "2 errors occurred:\n\t* invalid input\n\t* invalid state\n",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantLog, log)
		})
	}
}

func TestABCIInfoPanicIsRedacted(t *testing.T) {
	err := Wrap(ErrPanic, "secret node detail")

	code, log := ABCIInfo(err, false)
	assert.Equal(t, internalABCICode, code)
	assert.Equal(t, internalABCILog, log)

	code, log = ABCIInfo(err, true)
	assert.Equal(t, ErrPanic.code, code)
	assert.Contains(t, log, "secret node detail")
}

func TestRedact(t *testing.T) {
	serr := fmt.Errorf("stdlib error")

	assert.Equal(t, internalABCILog, Redact(serr, false).Error())
	assert.Equal(t, serr, Redact(serr, true))
	assert.Equal(t, internalABCILog, Redact(Wrap(ErrPanic, "oops"), false).Error())

	state := Wrap(ErrState, "closed")
	assert.Equal(t, state, Redact(state, false))
}

type customErr struct{}

func (customErr) ABCICode() uint32 { return 999 }

func (customErr) Error() string { return "custom" }

func TestABCIInfoValidationGroup(t *testing.T) {
	err := AppendField(nil, "EscrowID", Wrap(ErrInput, "not 8 bytes"))
	err = AppendField(err, "HoldingAccount", ErrEmpty)

	code, log := ABCIInfo(err, false)
	assert.Equal(t, ErrInput.code, code)
	assert.Contains(t, log, `field "EscrowID": not 8 bytes: invalid input`)
	assert.Contains(t, log, `field "HoldingAccount": value is empty`)
	assert.Nil(t, Redact(nil, false))
}
