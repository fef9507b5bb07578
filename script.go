package mwscript

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"slices"

	"golang.org/x/crypto/blake2b"

	"github.com/kolkov/mwscript/internal/compiler"
)

const (
	// HeaderSize is the size of the script header record.
	HeaderSize = 52

	// MaxIDLength is the number of ID bytes the header can hold.
	MaxIDLength = 32
)

// Script is a compiled script: its header data, local variable names,
// bytecode and source text.
type Script struct {
	ID        string
	NumShorts int
	NumLongs  int
	NumFloats int

	// LocalVars lists local names: shorts, then longs, then floats.
	LocalVars []string

	// Data is the compiled bytecode.
	Data []byte

	// Text is the source exactly as compiled.
	Text string

	res *compiler.Result // nil for scripts not produced by Compile
}

func newScript(res *compiler.Result) *Script {
	return &Script{
		ID:        res.ID,
		NumShorts: res.NumShorts,
		NumLongs:  res.NumLongs,
		NumFloats: res.NumFloats,
		LocalVars: res.LocalVars,
		Data:      res.Data,
		Text:      res.Text,
		res:       res,
	}
}

// LocalVarSize is the size of the stored local name list: each name
// followed by a NUL.
func (s *Script) LocalVarSize() int {
	n := 0
	for _, name := range s.LocalVars {
		n += len(name) + 1
	}
	return n
}

// Header returns the header record: the NUL-padded ID (truncated to
// MaxIDLength bytes), then little-endian uint32 local counts, bytecode
// size and local name list size.
func (s *Script) Header() []byte {
	h := make([]byte, HeaderSize)
	copy(h[:MaxIDLength], s.ID)
	binary.LittleEndian.PutUint32(h[32:], uint32(s.NumShorts))
	binary.LittleEndian.PutUint32(h[36:], uint32(s.NumLongs))
	binary.LittleEndian.PutUint32(h[40:], uint32(s.NumFloats))
	binary.LittleEndian.PutUint32(h[44:], uint32(len(s.Data)))
	binary.LittleEndian.PutUint32(h[48:], uint32(s.LocalVarSize()))
	return h
}

// HeaderInfo is a decoded header record.
type HeaderInfo struct {
	ID           string
	NumShorts    int
	NumLongs     int
	NumFloats    int
	DataSize     int
	LocalVarSize int
}

// ParseHeader decodes a header record.
func ParseHeader(h []byte) (HeaderInfo, error) {
	if len(h) != HeaderSize {
		return HeaderInfo{}, fmt.Errorf("mwscript: header is %d bytes, want %d", len(h), HeaderSize)
	}
	id := h[:MaxIDLength]
	if i := bytes.IndexByte(id, 0); i >= 0 {
		id = id[:i]
	}
	field := func(off int) int { return int(binary.LittleEndian.Uint32(h[off:])) }
	return HeaderInfo{
		ID:           string(id),
		NumShorts:    field(32),
		NumLongs:     field(36),
		NumFloats:    field(40),
		DataSize:     field(44),
		LocalVarSize: field(48),
	}, nil
}

// Equal reports whether two scripts have the same ID, counts, local
// names, bytecode and text.
func (s *Script) Equal(other *Script) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.ID == other.ID &&
		s.NumShorts == other.NumShorts &&
		s.NumLongs == other.NumLongs &&
		s.NumFloats == other.NumFloats &&
		slices.Equal(s.LocalVars, other.LocalVars) &&
		bytes.Equal(s.Data, other.Data) &&
		s.Text == other.Text
}

// Digest returns the BLAKE2b-256 digest of the header and bytecode.
func (s *Script) Digest() [32]byte {
	return blake2b.Sum256(append(s.Header(), s.Data...))
}

// Dump returns a hex dump of the bytecode.
func (s *Script) Dump() string {
	return hex.Dump(s.Data)
}

// Disassemble returns a listing of the bytecode by source line. Scripts
// not produced by Compile are listed as a plain hex dump.
func (s *Script) Disassemble() string {
	if s.res == nil {
		return s.Dump()
	}
	return s.res.Disassemble()
}
