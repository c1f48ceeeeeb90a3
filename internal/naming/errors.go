package naming

import (
	"errors"
	"fmt"
	"path/filepath"
)

var (
	ErrUnknownDialect     = errors.New("unknown filename dialect")
	ErrInvalidRealization = errors.New("invalid realization")
)

// ParseError reports a filename that could not be turned into a
// [FileRecord]. Kind is one of the sentinel errors above.
type ParseError struct {
	Path    string
	Dialect Dialect
	Kind    error
	Detail  string
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("%s: %s", filepath.Base(e.Path), e.Kind.Error())
	if e.Dialect != DialectUnknown {
		msg += " (" + e.Dialect.String() + ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Kind }
