package parser

import (
	"errors"
	"fmt"
)

// ErrDanglingOperator is wrapped by errors for an operator at the very
// start or end of an expression.
var ErrDanglingOperator = errors.New("dangling operator")

// ParseError describes an expression that could not be parsed.
type ParseError struct {
	Expr    string // expression text at the failing level
	Message string // Human-readable error message
	Err     error  // Underlying cause (optional)
}

// Error returns the message followed by the offending expression.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s in %q: %v", e.Message, e.Expr, e.Err)
	}
	return fmt.Sprintf("%s in %q", e.Message, e.Expr)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// errorf creates a ParseError for expr with formatted message.
func errorf(expr string, format string, args ...any) *ParseError {
	return &ParseError{
		Expr:    expr,
		Message: fmt.Sprintf(format, args...),
	}
}

// wrapError creates a ParseError for expr caused by err.
func wrapError(expr string, msg string, err error) *ParseError {
	return &ParseError{Expr: expr, Message: msg, Err: err}
}
