package script

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by *Error.
var (
	ErrSyntax         = errors.New("syntax error")
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgument       = errors.New("bad argument")
	ErrUnbalanced     = errors.New("unbalanced brackets")
	ErrLimit          = errors.New("limit exceeded")
)

// Error reports a problem at a position in the source.
type Error struct {
	Line int
	Col  int
	Err  error  // One of the sentinel errors
	Msg  string // Detail, may be empty
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("script: line %d col %d: %v", e.Line, e.Col, e.Err)
	}
	return fmt.Sprintf("script: line %d col %d: %v: %s", e.Line, e.Col, e.Err, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errorAt(tok token, err error, format string, args ...any) *Error {
	return &Error{Line: tok.line, Col: tok.col, Err: err, Msg: fmt.Sprintf(format, args...)}
}
