package sema

import (
	"errors"
	"fmt"
)

// One sentinel per rule family. Every error returned by the passes wraps
// exactly one of these.
var (
	ErrDuplicateProcedure  = errors.New("duplicate procedure")
	ErrDuplicateVariable   = errors.New("duplicate variable")
	ErrUndeclaredVariable  = errors.New("undeclared variable")
	ErrUndeclaredProcedure = errors.New("undeclared procedure")
	ErrTypeMismatch        = errors.New("type mismatch")
	ErrSignatureMismatch   = errors.New("signature mismatch")
	ErrUnknownSymbol       = errors.New("unknown symbol")
)

// Error is the single diagnostic produced by a failed analysis.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return "error: " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
