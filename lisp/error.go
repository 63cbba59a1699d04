package lisp

import (
	"errors"
	"fmt"

	"github.com/Graphics-Interpreter/GI/parser/token"
)

// ErrorKind classifies an Error
type ErrorKind uint

// Possible ErrorKind values
const (
	UnknownError ErrorKind = iota
	SyntaxError
	UnboundIdentifier
	TypeError
	ArityError
	NotCallable
	ResourceNotFound
)

var errorKindStrings = []string{
	UnknownError:      "unknown-error",
	SyntaxError:       "syntax-error",
	UnboundIdentifier: "unbound-identifier",
	TypeError:         "type-error",
	ArityError:        "arity-error",
	NotCallable:       "not-callable",
	ResourceNotFound:  "resource-not-found",
}

func (k ErrorKind) String() string {
	if int(k) >= len(errorKindStrings) {
		return errorKindStrings[UnknownError]
	}
	return errorKindStrings[k]
}

// Error is raised by the lexer, parser, and evaluator at the point a problem
// is detected.  It unwinds through Eval and Apply to the host unchanged.
type Error struct {
	Kind   ErrorKind
	Source *token.Location
	Msg    string
	Err    error      // underlying cause, if any
	Stack  *CallStack // procedure calls active when the error was raised
}

// Errorf returns an Error of the given kind with a formatted message.
func Errorf(kind ErrorKind, format string, v ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, v...),
	}
}

// WrapError returns an Error of the given kind caused by err.
func WrapError(kind ErrorKind, err error, format string, v ...interface{}) *Error {
	lerr := Errorf(kind, format, v...)
	lerr.Err = err
	return lerr
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Source != nil && e.Kind == SyntaxError {
		return e.Source.String() + ": " + msg
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// At sets the source location of e if it does not have one and returns e.
func (e *Error) At(loc *token.Location) *Error {
	if e.Source == nil {
		e.Source = loc
	}
	return e
}

// KindOf returns the ErrorKind of the first Error found in err's chain, or
// UnknownError if there is none.
func KindOf(err error) ErrorKind {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Kind
	}
	return UnknownError
}
