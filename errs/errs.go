// Package errs defines the error taxonomy shared by every compiler stage.
package errs

import "fmt"

// Kind identifies the category of a compile-time error.
type Kind string

const (
	IoError                   Kind = "IoError"
	InvalidStyle              Kind = "InvalidStyle"
	TokenizerError            Kind = "TokenizerError"
	UnexpectedEof             Kind = "UnexpectedEof"
	ExpectedValue             Kind = "ExpectedValue"
	ExpectedOperator          Kind = "ExpectedOperator"
	InvalidOperator           Kind = "InvalidOperator"
	IncompatibleUnits         Kind = "IncompatibleUnits"
	InvalidSquareUnits        Kind = "InvalidSquareUnits"
	InvalidColor              Kind = "InvalidColor"
	ExpectedMixin             Kind = "ExpectedMixin"
	ExpectedMixinArgument     Kind = "ExpectedMixinArgument"
	UnexpectedTopLevelElement Kind = "UnexpectedTopLevelElement"
)

// Error is the concrete error type returned by every stage of the compiler.
type Error struct {
	Kind    Kind
	Message string
	Offset  int // byte offset in source, -1 when not applicable
	cause   error
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New builds an Error with no byte offset.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Offset: -1}
}

// At builds an Error tied to a byte offset in the source.
func At(kind Kind, offset int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Offset: offset}
}

// Wrap builds an Error carrying a lower-level cause for errors.Unwrap/errors.As chains.
func Wrap(kind Kind, offset int, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Offset: offset, cause: cause}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
