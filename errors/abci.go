package errors

import (
	"errors"
	"fmt"
)

// Codes reported to tendermint. Zero is success. Errors without a
// registered code and recovered panics share the internal code.
const (
	SuccessABCICode = 0

	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo maps err to the code and log of an ABCI response. Outside
// of debug mode only errors carrying a registered code keep their
// message, anything else is logged as "internal error".
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}
	code, public := classify(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case public:
		return code, err.Error()
	default:
		return internalABCICode, internalABCILog
	}
}

// Redact hides every error that ABCIInfo would not publish. Debug
// mode returns err untouched.
func Redact(err error, debug bool) error {
	if debug {
		return err
	}
	if _, public := classify(err); !public {
		return errors.New(internalABCILog)
	}
	return err
}

// classify returns the code of err and whether its message may leave
// the node.
func classify(err error) (uint32, bool) {
	if isNilErr(err) {
		return SuccessABCICode, true
	}
	code := abciCode(err)
	return code, code != internalABCICode && code != ErrPanic.code
}

type coder interface {
	ABCICode() uint32
}

// abciCode follows the Cause chain down to the first error that
// knows its code.
func abciCode(err error) uint32 {
	for err != nil {
		switch e := err.(type) {
		case coder:
			return e.ABCICode()
		case causer:
			err = e.Cause()
		default:
			return internalABCICode
		}
	}
	return internalABCICode
}
