package resolver

import (
	"errors"
	"fmt"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Error reports why a resolution call was aborted. Kind is
// [ErrInvalidArgument], naming.ErrInvalidRealization,
// naming.ErrUnknownDialect or probe.ErrAccess.
type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return "trim aborted: " + e.Kind.Error()
	}
	return fmt.Sprintf("trim aborted: %v", e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func invalidArgf(format string, args ...any) error {
	return &Error{
		Kind: ErrInvalidArgument,
		Err:  fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...)),
	}
}
