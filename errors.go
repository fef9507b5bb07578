package mwscript

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a compile error.
type ErrorKind int

const (
	// Reference errors: an unresolvable variable, function or foreign
	// reference, a malformed literal or a bad parameter.
	Reference ErrorKind = iota
	// Structural errors: missing begin or end, unmatched blocks, block
	// bodies that are too long and dangling operators.
	Structural
)

func (k ErrorKind) String() string {
	switch k {
	case Reference:
		return "reference"
	case Structural:
		return "structural"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// CompileError represents a script that could not be compiled.
type CompileError struct {
	Line    int       // 1-based source line, 0 if unknown
	Kind    ErrorKind // Error class
	Message string    // Error description
}

func (e *CompileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("compile error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("compile error: %s", e.Message)
}

// IsStructural reports whether err is a structural CompileError.
func IsStructural(err error) bool {
	var ce *CompileError
	return errors.As(err, &ce) && ce.Kind == Structural
}

// VerifyError reports a stored script whose recompilation differs from
// the stored result.
type VerifyError struct {
	ID      string // Script ID
	Offset  int    // First differing bytecode offset, -1 if the bytecode matches
	Message string // Error description
}

func (e *VerifyError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("verify %s: offset %d: %s", e.ID, e.Offset, e.Message)
	}
	return fmt.Sprintf("verify %s: %s", e.ID, e.Message)
}
