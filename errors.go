package schemer

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

// ErrorKind categorizes the errors every pass of a compilation may report.
type ErrorKind int

// Error kinds. Every fallible operation reports exactly one of these.
const (
	NoError                ErrorKind = iota
	SyntaxError                      // non-symbol or duplicate parameter, illegal top-level form
	InvalidNumericConstant           // malformed number literal
	UnknownExpressionType            // an atom or form the IR has no notion of
	NotAPair                         // a pair was assumed, something else found
	UnsupportedForm                  // recognized, but deliberately not implemented
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "no error"
	case SyntaxError:
		return "syntax error"
	case InvalidNumericConstant:
		return "invalid numeric constant"
	case UnknownExpressionType:
		return "unknown expression type"
	case NotAPair:
		return "not a pair"
	case UnsupportedForm:
		return "unsupported form"
	}
	return fmt.Sprintf("error kind %d", int(k))
}

// Error is the error type for all compilation errors. Culprit, if not nil,
// is the offending piece of input (usually an object or an expression).
type Error struct {
	Kind    ErrorKind
	Msg     string
	Culprit fmt.Stringer
}

// Sentinels to be used with errors.Is(…). They match any *Error of the same kind.
var (
	ErrSyntax                 = &Error{Kind: SyntaxError}
	ErrInvalidNumericConstant = &Error{Kind: InvalidNumericConstant}
	ErrUnknownExpressionType  = &Error{Kind: UnknownExpressionType}
	ErrNotAPair               = &Error{Kind: NotAPair}
	ErrUnsupportedForm        = &Error{Kind: UnsupportedForm}
)

// Errorf creates a new error of a given kind.
func Errorf(kind ErrorKind, culprit fmt.Stringer, format string, args ...interface{}) error {
	return &Error{
		Kind:    kind,
		Msg:     fmt.Sprintf(format, args...),
		Culprit: culprit,
	}
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Msg
}

// Is reports whether target is an *Error of the same kind. This makes the
// sentinel values usable with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the error kind of err, if err is (or wraps) an *Error.
// Returns NoError otherwise.
func KindOf(err error) ErrorKind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return NoError
}
