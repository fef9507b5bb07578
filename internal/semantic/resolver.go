package semantic

import (
	"github.com/kolkov/mwscript/internal/token"
	"github.com/kolkov/mwscript/internal/types"
)

// Warner receives non-fatal diagnostics.
type Warner func(pos token.Position, msg string)

// Globals is the global variable table.
type Globals interface {
	// HasGlobal reports whether a global named name exists (case-insensitive).
	HasGlobal(name string) bool
	// GlobalID returns the exact-case name of an existing global.
	GlobalID(name string) string
}

// Objects gives access to game objects and their scripts.
type Objects interface {
	// ForeignVariable resolves varName among the locals of the script
	// attached to objectID. It returns types.Global if the object, its
	// script or the variable cannot be found.
	ForeignVariable(objectID, varName string) types.VarRef
	// CanonicalID returns the exact-case ID of an object, or objectID
	// unchanged if it is not registered.
	CanonicalID(objectID string) string
}

// ScriptLocals describes the declared locals of a stored script.
type ScriptLocals struct {
	ID        string
	NumShorts int
	NumLongs  int
	NumFloats int
	// Names lists shorts, then longs, then floats.
	Names []string
}

// Lookup resolves name among the script's locals. Indexes are relative to
// the first slot of the variable's kind. A script whose counts disagree
// with its name list resolves nothing.
func (s ScriptLocals) Lookup(name string) types.VarRef {
	if s.NumShorts+s.NumLongs+s.NumFloats != len(s.Names) {
		return types.Global
	}
	i := indexFold(s.Names, name)
	switch {
	case i < 0:
		return types.Global
	case i >= s.NumShorts+s.NumLongs:
		return types.VarRef{Kind: types.KindFloat, Index: uint16(i - s.NumShorts - s.NumLongs + 1)}
	case i >= s.NumShorts:
		return types.VarRef{Kind: types.KindLong, Index: uint16(i - s.NumShorts + 1)}
	default:
		return types.VarRef{Kind: types.KindShort, Index: uint16(i + 1)}
	}
}

type noGlobals struct{}

func (noGlobals) HasGlobal(string) bool      { return false }
func (noGlobals) GlobalID(name string) string { return name }

type noObjects struct{}

func (noObjects) ForeignVariable(string, string) types.VarRef { return types.Global }
func (noObjects) CanonicalID(id string) string                 { return id }
