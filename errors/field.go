package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field attaches a field name and an optional description to err. It
// returns nil for a nil err, so validation code can wrap every check.
//
// Field names follow the Go struct, with dots for nesting, such as
// "DepositorAssetA" or "Metadata.Schema".
func Field(name string, err error, desc string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) != 0 {
		desc = fmt.Sprintf(desc, args...)
	}
	return &fieldError{name: name, desc: desc, cause: err}
}

// AppendField adds err, tagged with the field name, to a group of
// validation errors. A nil err leaves the group as is.
func AppendField(group error, name string, err error) error {
	return Append(group, Field(name, err, ""))
}

type fieldError struct {
	name  string
	desc  string
	cause error
}

func (e *fieldError) Error() string {
	if e.desc != "" {
		return fmt.Sprintf("field %q: %s: %s", e.name, e.desc, e.cause)
	}
	return fmt.Sprintf("field %q: %s", e.name, e.cause)
}

func (e *fieldError) Cause() error {
	return e.cause
}

// FieldErrors collects the errors reported for the named field,
// searching groups and wrapped errors.
func FieldErrors(err error, name string) []error {
	var found []error
	for !isNilErr(err) {
		switch e := err.(type) {
		case *fieldError:
			if e.name == name {
				return append(found, e)
			}
			err = e.cause
		case unpacker:
			for _, member := range e.Unpack() {
				found = append(found, FieldErrors(member, name)...)
			}
			return found
		case causer:
			err = e.Cause()
		default:
			return found
		}
	}
	return found
}
