package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If none or only nil errors are provided, nil is returned.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		// Flatten the result so that appending multi errors does not
		// produce nested groups.
		if u, ok := e.(unpacker); ok {
			res = append(res, u.Unpack()...)
		} else {
			res = append(res, e)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

type unpacker interface {
	Unpack() []error
}

// multiErr represents a group of errors. ABCI code and the cause are taken
// from the first error, consistent with a fail-fast approach.
type multiErr []error

func (m multiErr) Error() string {
	points := make([]string, len(m))
	for i, e := range m {
		points[i] = fmt.Sprintf("* %s", e)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s\n", len(m), strings.Join(points, "\n\t"))
}

// Unpack returns all errors that this group contains.
func (m multiErr) Unpack() []error {
	return []error(m)
}

// ABCICode returns the code of the first error.
func (m multiErr) ABCICode() uint32 {
	return abciCode(m[0])
}
