// Package merr is the interpreter's single error channel: every
// failure — arity, type, lookup, syntax, arithmetic, runtime, or a
// user throw — is carried as an *Error wrapping a payload Value, the
// same uniform shape try* catches regardless of category.
//
// The shape is stripped of source-position/caret rendering (that
// tracking is out of scope here) and carries a Category enum instead
// of a purely positional error kind.
package merr

import (
	"fmt"

	"github.com/cwbudde/go-mal/internal/printer"
	"github.com/cwbudde/go-mal/internal/values"
)

// Category classifies why evaluation failed.
type Category int

const (
	CategoryArity Category = iota
	CategoryType
	CategoryLookup
	CategorySyntax
	CategoryArithmetic
	CategoryRuntime
	CategoryUser
)

// Error is the one error type the evaluator and builtins raise.
// Payload is usually a String value but throw may attach any Value.
type Error struct {
	Category Category
	Payload  values.Value
}

// New builds an Error carrying a plain string message as payload.
func New(cat Category, format string, args ...interface{}) *Error {
	return &Error{Category: cat, Payload: values.NewString(fmt.Sprintf(format, args...))}
}

// Throw wraps an arbitrary value as a user error's payload, the
// payload a (throw ...) call in the language raised.
func Throw(payload values.Value) *Error {
	return &Error{Category: CategoryUser, Payload: payload}
}

// Error implements the error interface by printing the payload in raw
// mode, the same rendering `str` would use.
func (e *Error) Error() string {
	return printer.Str(e.Payload)
}

// Format renders the error the way the REPL driver prints it at the
// top level: "Mal Error: <msg>".
func (e *Error) Format() string {
	return "Mal Error: " + printer.Str(e.Payload)
}

// As is a convenience for tests and builtins that need to recover the
// underlying *Error from a generic error value.
func As(err error) (*Error, bool) {
	me, ok := err.(*Error)
	return me, ok
}
