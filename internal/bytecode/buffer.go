package bytecode

import (
	"encoding/binary"
	"math"

	"github.com/kolkov/mwscript/internal/types"
)

// Buffer is a growable little-endian byte sequence. The zero value is ready to use.
type Buffer struct {
	data []byte
}

// Bytes returns the accumulated bytes. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.data) }

// Reset empties the buffer, keeping its capacity.
func (b *Buffer) Reset() { b.data = b.data[:0] }

// Byte appends a single byte.
func (b *Buffer) Byte(c byte) {
	b.data = append(b.data, c)
}

// Raw appends bytes unchanged.
func (b *Buffer) Raw(p ...byte) {
	b.data = append(b.data, p...)
}

// Code appends an opcode.
func (b *Buffer) Code(op Opcode) {
	b.data = binary.LittleEndian.AppendUint16(b.data, uint16(op))
}

// Short appends a 16-bit signed integer.
func (b *Buffer) Short(v int16) {
	b.data = binary.LittleEndian.AppendUint16(b.data, uint16(v))
}

// Uint16 appends a 16-bit unsigned integer.
func (b *Buffer) Uint16(v uint16) {
	b.data = binary.LittleEndian.AppendUint16(b.data, v)
}

// Long appends a 32-bit signed integer.
func (b *Buffer) Long(v int32) {
	b.data = binary.LittleEndian.AppendUint32(b.data, uint32(v))
}

// Float appends the IEEE-754 bits of a 32-bit float.
func (b *Buffer) Float(v float32) {
	b.data = binary.LittleEndian.AppendUint32(b.data, math.Float32bits(v))
}

// Text appends the raw bytes of s without terminator or length.
func (b *Buffer) Text(s string) {
	b.data = append(b.data, s...)
}

// LenString appends a one-byte length followed by s.
// Lengths above 255 wrap, as the game format has no wider field here.
func (b *Buffer) LenString(s string) {
	b.data = append(b.data, byte(len(s)))
	b.data = append(b.data, s...)
}

// LenString16 appends a 16-bit length followed by s.
func (b *Buffer) LenString16(s string) {
	b.Uint16(uint16(len(s)))
	b.data = append(b.data, s...)
}

// ZString appends a one-byte length counting the terminator, s, and a NUL.
func (b *Buffer) ZString(s string) {
	b.data = append(b.data, byte(len(s)+1))
	b.data = append(b.data, s...)
	b.data = append(b.data, 0)
}

// Ref appends a local variable reference: type tag and 16-bit index.
func (b *Buffer) Ref(ref types.VarRef) {
	b.data = append(b.data, ref.Kind.Tag())
	b.Uint16(ref.Index)
}

// RefWithFillers appends a local reference used in place of a literal
// operand: type tag, low byte of the index and two zero bytes.
func (b *Buffer) RefWithFillers(ref types.VarRef) {
	b.data = append(b.data, ref.Kind.Tag(), byte(ref.Index), 0, 0)
}

// SetTarget appends the target of a set statement naming a local:
// type tag, low byte of the index and one zero byte.
func (b *Buffer) SetTarget(ref types.VarRef) {
	b.data = append(b.data, ref.Kind.Tag(), byte(ref.Index), 0)
}
