// Package ast defines the expression tree built for set statements and
// conditions.
//
// Node hierarchy:
//
//	Expr (interface)
//	├── FloatLit             - numeric literal, kept as written
//	├── LocalVar             - local of the script being compiled
//	├── GlobalVar            - global variable, canonical spelling
//	├── ForeignRef           - Object.variable in another object's script
//	├── Call                 - built-in function call, already encoded
//	└── BinaryExpr           - + - * / with two owned operands
//
// Every leaf carries its encoded payload. A binary node's payload is its
// operator byte. The tree serializes in postfix order with each payload
// preceded by a single space, the push convention of the game interpreter.
package ast

import (
	"github.com/kolkov/mwscript/internal/bytecode"
	"github.com/kolkov/mwscript/internal/token"
	"github.com/kolkov/mwscript/internal/types"
)

// Expr is implemented by all expression nodes.
type Expr interface {
	exprNode()
	// Payload returns the node's own encoded bytes, without children.
	Payload() []byte
	// Content returns the node's text as shown in stack order listings.
	Content() string
}

// FloatLit is a numeric literal. Its payload is the literal text itself.
type FloatLit struct {
	Raw   string
	Value float32
}

// LocalVar is a reference to a local of the script being compiled.
type LocalVar struct {
	Name string
	Ref  types.VarRef
}

// GlobalVar is a reference to a global variable.
type GlobalVar struct {
	Name string // canonical spelling
}

// ForeignRef is a local variable of the script attached to another object.
type ForeignRef struct {
	Source string // as written, e.g. "fargoth.state"
	Object string // quotes stripped, spelling kept
	Ref    types.VarRef
}

// Call is a function call. Code is the encoded call without marker.
type Call struct {
	Source string
	Code   []byte
}

// BinaryExpr is an arithmetic operation. It exclusively owns its operands.
type BinaryExpr struct {
	Op    token.Token
	Left  Expr
	Right Expr
}

func (*FloatLit) exprNode()   {}
func (*LocalVar) exprNode()   {}
func (*GlobalVar) exprNode()  {}
func (*ForeignRef) exprNode() {}
func (*Call) exprNode()       {}
func (*BinaryExpr) exprNode() {}

func (e *FloatLit) Payload() []byte { return []byte(e.Raw) }

func (e *LocalVar) Payload() []byte {
	var b bytecode.Buffer
	b.Ref(e.Ref)
	return b.Bytes()
}

func (e *GlobalVar) Payload() []byte {
	var b bytecode.Buffer
	b.Byte('G')
	b.LenString(e.Name)
	return b.Bytes()
}

func (e *ForeignRef) Payload() []byte {
	var b bytecode.Buffer
	b.Byte('r')
	b.LenString(e.Object)
	b.Ref(e.Ref)
	return b.Bytes()
}

func (e *Call) Payload() []byte {
	return append([]byte{'X'}, e.Code...)
}

func (e *BinaryExpr) Payload() []byte { return e.Op.Bytes() }

func (e *FloatLit) Content() string   { return e.Raw }
func (e *LocalVar) Content() string   { return e.Name }
func (e *GlobalVar) Content() string  { return e.Name }
func (e *ForeignRef) Content() string { return e.Source }
func (e *Call) Content() string       { return e.Source }
func (e *BinaryExpr) Content() string { return e.Op.String() }
