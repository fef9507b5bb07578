package compiler

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/kolkov/mwscript/internal/bytecode"
)

// Result is a compiled script.
type Result struct {
	// ID is the script name from its begin line.
	ID string

	// Local variable counts per kind.
	NumShorts int
	NumLongs  int
	NumFloats int

	// LocalVars lists local names: shorts, then longs, then floats.
	LocalVars []string

	// Data is the compiled bytecode.
	Data []byte

	// Text is the source, kept verbatim.
	Text string

	// Stmts maps source lines to the bytes they produced, in order.
	// Lines that emit nothing, such as declarations, are absent.
	Stmts []Statement
}

// Statement is the bytecode range produced by one source line.
type Statement struct {
	Line   int
	Source string
	Offset int
	Size   int
}

// Code returns the opcode a statement starts with. Statements shorter
// than two bytes, which do not occur in valid output, report zero.
func (r *Result) Code(s Statement) bytecode.Opcode {
	if s.Size < 2 || s.Offset+2 > len(r.Data) {
		return 0
	}
	return bytecode.Opcode(binary.LittleEndian.Uint16(r.Data[s.Offset:]))
}

// Disassemble returns a human-readable listing of the bytecode, one
// statement per line.
func (r *Result) Disassemble() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "=== Script %s ===\n", r.ID)
	fmt.Fprintf(&sb, "  shorts=%d longs=%d floats=%d bytes=%d\n", r.NumShorts, r.NumLongs, r.NumFloats, len(r.Data))
	if len(r.LocalVars) > 0 {
		sb.WriteString("\n=== Locals ===\n")
		for i, name := range r.LocalVars {
			fmt.Fprintf(&sb, "  [%d] %s\n", i, name)
		}
	}

	sb.WriteString("\n=== Code ===\n")
	for _, s := range r.Stmts {
		fmt.Fprintf(&sb, "  %04d  line %-4d %-20s % X\n",
			s.Offset, s.Line, r.Code(s), r.Data[s.Offset:s.Offset+s.Size])
	}
	return sb.String()
}
