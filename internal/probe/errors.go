package probe

import (
	"errors"
	"fmt"
)

var (
	ErrAccess            = errors.New("dataset access failed")
	ErrNoCreationDate    = errors.New("creation_date attribute missing")
	ErrBadCreationDate   = errors.New("unrecognised creation_date")
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// AccessError wraps any failure to obtain a creation date for Path. It
// matches both [ErrAccess] and the underlying cause under errors.Is.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrAccess.Error(), e.Path, e.Err)
}

func (e *AccessError) Unwrap() []error { return []error{ErrAccess, e.Err} }
