// Package parser builds expression trees for set statements and encodes
// the conditions of if, elseif and while.
//
// Expressions are split at operator positions found by a quote and bracket
// aware scan instead of being tokenized. At each level the first top-level
// operator is the split candidate; if the next operator after it binds no
// tighter, the split moves there. This groups equal precedence left to
// right and keeps products together ahead of a following sum.
package parser

import (
	"errors"
	"fmt"

	"github.com/kolkov/mwscript/internal/ast"
	"github.com/kolkov/mwscript/internal/builtins"
	"github.com/kolkov/mwscript/internal/lexer"
	"github.com/kolkov/mwscript/internal/semantic"
	"github.com/kolkov/mwscript/internal/token"
	"github.com/kolkov/mwscript/internal/types"
)

// ParseExpr parses an arithmetic expression. Operands are float literals,
// locals, globals, Object.variable references and command calls.
func ParseExpr(text string, u *semantic.Unit) (ast.Expr, error) {
	expr := lexer.Unwrap(text)
	pos := lexer.NextOperatorPos(expr, 0)
	if pos < 0 {
		return parseOperand(expr, u)
	}

	// a leading minus may still be part of a number
	if expr[0] == '-' {
		if v, ok := types.ParseFloat(expr); ok {
			return &ast.FloatLit{Raw: expr, Value: v}, nil
		}
	}

	if next := lexer.NextOperatorPos(expr, pos+1); next >= 0 {
		if token.LowerOrEqual(token.Arithmetic(expr[next]), token.Arithmetic(expr[pos])) {
			pos = next
		}
	}
	switch pos {
	case 0:
		return nil, wrapError(expr, "operator at beginning of expression", ErrDanglingOperator)
	case len(expr) - 1:
		return nil, wrapError(expr, "operator at end of expression", ErrDanglingOperator)
	}

	left, err := ParseExpr(expr[:pos], u)
	if err != nil {
		return nil, err
	}
	right, err := ParseExpr(expr[pos+1:], u)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Op: token.Arithmetic(expr[pos]), Left: left, Right: right}, nil
}

// parseOperand classifies an expression without top-level operators.
// Literals win over locals, locals over globals, globals over foreign
// references, and anything else must be a command call.
func parseOperand(expr string, u *semantic.Unit) (ast.Expr, error) {
	if v, ok := types.ParseFloat(expr); ok {
		return &ast.FloatLit{Raw: expr, Value: v}, nil
	}
	if ref := u.Resolve(expr); ref.IsLocal() {
		return &ast.LocalVar{Name: expr, Ref: ref}, nil
	}
	if id, ok := u.Global(expr); ok {
		return &ast.GlobalVar{Name: id}, nil
	}
	if dot := lexer.DotPosition(expr); dot >= 0 {
		object := lexer.StripQuotes(expr[:dot])
		ref := u.Foreign(object, expr[dot+1:])
		if !ref.IsLocal() {
			return nil, errorf(expr, "couldn't find foreign reference")
		}
		return &ast.ForeignRef{Source: expr, Object: object, Ref: ref}, nil
	}

	code, err := builtins.Encode(expr, u, true)
	if errors.Is(err, builtins.ErrNoMatch) {
		return nil, errorf(expr, "couldn't match expression with any function or variable")
	}
	if err != nil {
		return nil, wrapError(expr, "bad function call", err)
	}
	return &ast.Call{Source: expr, Code: code}, nil
}

// EncodeCondition encodes a comparison: left operand tree, a space, the
// relational operator, then the right operand tree. A condition without
// relational operator is accepted with a warning and encoded as its tree
// followed by a zero byte.
func EncodeCondition(text string, u *semantic.Unit) ([]byte, error) {
	pos, op := lexer.ComparePos(text)
	if pos < 0 {
		e, err := ParseExpr(text, u)
		if err != nil {
			return nil, err
		}
		u.Warnf("no comparison operator in condition %q", text)
		return append(ast.Bytes(e), 0), nil
	}

	left, err := ParseExpr(text[:pos], u)
	if err != nil {
		return nil, fmt.Errorf("left side of comparison: %w", err)
	}
	right, err := ParseExpr(text[pos+op.Width():], u)
	if err != nil {
		return nil, fmt.Errorf("right side of comparison: %w", err)
	}
	out := ast.Bytes(left)
	out = append(out, ' ')
	out = append(out, op.Bytes()...)
	return ast.AppendBytes(out, right), nil
}
