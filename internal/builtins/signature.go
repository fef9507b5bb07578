package builtins

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/kolkov/mwscript/internal/bytecode"
)

// encoder writes one command into c.buf.
type encoder interface {
	encode(c *call) error
}

// encoderFunc adapts a function to the encoder interface.
type encoderFunc func(c *call) error

func (f encoderFunc) encode(c *call) error { return f(c) }

// operand writes parameter i.
type operand func(c *call, i int) error

// Operand letters used in signatures:
//
//	S    string with a one-byte length
//	S16  string with a 16-bit length
//	h    short
//	b    short written as one byte
//	l    long
//	f    float
//	A    axis letter
//	F|L  float literal or local variable
//	G    animation group name, written as a short
//	E    magic effect setting name, written as one byte
//	n    length of the parameter only
//
// Two hex digits stand for a literal byte and consume no parameter.
var operands = map[string]operand{
	"S":   (*call).str,
	"S16": (*call).str16,
	"h":   (*call).short,
	"b":   (*call).shortByte,
	"l":   (*call).long,
	"f":   (*call).float,
	"A":   (*call).axis,
	"F|L": (*call).floatOrLocal,
	"G":   (*call).group,
	"E":   (*call).effect,
	"n":   (*call).lenByte,
}

type step struct {
	op      operand
	literal byte
}

// signature is an opcode followed by a fixed operand layout.
type signature struct {
	code   bytecode.Opcode
	marker []byte // written after the opcode inside comparisons only
	steps  []step
}

// sig builds a signature from a layout such as "S h FF FF".
// It panics on an unknown operand letter.
func sig(code bytecode.Opcode, layout string) *signature {
	s := &signature{code: code}
	for _, f := range strings.Fields(layout) {
		if op, ok := operands[f]; ok {
			s.steps = append(s.steps, step{op: op})
			continue
		}
		b, err := hex.DecodeString(f)
		if err != nil || len(b) != 1 {
			panic(fmt.Sprintf("builtins: bad operand %q in layout %q", f, layout))
		}
		s.steps = append(s.steps, step{literal: b[0]})
	}
	return s
}

// marked is sig with marker bytes emitted inside comparisons.
func marked(code bytecode.Opcode, layout string, marker ...byte) *signature {
	s := sig(code, layout)
	s.marker = marker
	return s
}

func (s *signature) encode(c *call) error {
	c.buf.Code(s.code)
	if c.compare {
		c.buf.Raw(s.marker...)
	}
	i := 1
	for _, st := range s.steps {
		if st.op == nil {
			c.buf.Byte(st.literal)
			continue
		}
		if err := st.op(c, i); err != nil {
			return err
		}
		i++
	}
	return nil
}
