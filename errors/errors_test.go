package errors

import (
	stdlib "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCause(t *testing.T) {
	std := stdlib.New("this is a stdlib error")

	cases := map[string]struct {
		err  error
		root error
	}{
		"Errors are self-causing": {
			err:  ErrNotFound,
			root: ErrNotFound,
		},
		"Wrap reveals root cause": {
			err:  Wrap(ErrNotFound, "foo"),
			root: ErrNotFound,
		},
		"Cause works for stderr as root": {
			err:  Wrap(std, "Some helpful text"),
			root: std,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.root, errors.Cause(tc.err))
		})
	}
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrNotFound,
			b:      ErrNotFound,
			wantIs: true,
		},
		"two different coded errors": {
			a:      ErrNotFound,
			b:      ErrModel,
			wantIs: false,
		},
		"successful comparison to a wrapped error": {
			a:      ErrNotFound,
			b:      Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"unsuccessful comparison to a wrapped error": {
			a:      ErrState,
			b:      Wrap(ErrNotFound, "gone"),
			wantIs: false,
		},
		"doubly wrapped error": {
			a:      ErrInput,
			b:      Wrap(Wrapf(ErrInput, "inner %d", 1), "outer"),
			wantIs: true,
		},
		"not equal to stdlib error": {
			a:      ErrNotFound,
			b:      fmt.Errorf("stdlib error"),
			wantIs: false,
		},
		"nil is nil": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
		"nil is any error nil": {
			a:      nil,
			b:      (*wrappedError)(nil),
			wantIs: true,
		},
		"nil is not not-nil": {
			a:      nil,
			b:      ErrState,
			wantIs: false,
		},
		"multi error contains the kind": {
			a:      ErrState,
			b:      Append(ErrInput, Wrap(ErrState, "closed")),
			wantIs: true,
		},
		"multi error does not contain the kind": {
			a:      ErrUnauthorized,
			b:      Append(ErrInput, ErrState),
			wantIs: false,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantIs, tc.a.Is(tc.b))
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "foo"))
	assert.Nil(t, Wrapf(nil, "foo %d", 1))
}

func TestWrapMessage(t *testing.T) {
	err := Wrapf(ErrInsufficientAmount, "want %d", 42)
	assert.Equal(t, "want 42: insufficient amount", err.Error())

	// %v carries a single compressed frame, %+v the whole trace.
	short := fmt.Sprintf("%v", err)
	assert.True(t, strings.HasPrefix(short, "want 42: insufficient amount ["), short)
	full := fmt.Sprintf("%+v", err)
	assert.Contains(t, full, "TestWrapMessage")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register(ErrState.ABCICode(), "another state")
	})
}

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err)
		panic("boom")
	}
	err := fn()
	require.Error(t, err)
	assert.True(t, ErrPanic.Is(err))
	assert.Contains(t, err.Error(), "boom")
}

func TestWithType(t *testing.T) {
	err := WithType(ErrType, 42)
	assert.True(t, ErrType.Is(err))
	assert.Equal(t, "int: invalid type", err.Error())
}
