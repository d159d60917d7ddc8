package training

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidActivity = errors.New("invalid activity")
	ErrArity           = errors.New("wrong number of fields")
	ErrDivision        = errors.New("division by zero")
	ErrNonFinite       = errors.New("value is not a finite number")
)

// InvalidActivityError is returned by Read for a code it does not know.
type InvalidActivityError struct {
	Code    string
	Allowed []string
}

func (e *InvalidActivityError) Error() string {
	return fmt.Sprintf("invalid activity %q, expected one of %s", e.Code, strings.Join(e.Allowed, ", "))
}

func (e *InvalidActivityError) Is(target error) bool {
	return target == ErrInvalidActivity
}

type ArityError struct {
	Code string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects %d fields, got %d", e.Code, e.Want, e.Got)
}

func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}

// DivisionError names the field that was zero.
type DivisionError struct {
	Kind  Kind
	Field string
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("%s: %s must be nonzero", e.Kind, e.Field)
}

func (e *DivisionError) Is(target error) bool {
	return target == ErrDivision
}
