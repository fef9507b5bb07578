// Package semantic resolves names used by a script.
//
// A compilation unit owns the script's local variables. Names that are not
// local are looked up in read-only collaborator tables:
//   - Globals: save-game wide variables, addressed by canonical name
//   - Objects: game objects, their canonical IDs and attached scripts
//
// Nothing here is shared between compilations; the tables are only read.
package semantic

import (
	"fmt"

	"github.com/kolkov/mwscript/internal/lexer"
	"github.com/kolkov/mwscript/internal/token"
	"github.com/kolkov/mwscript/internal/types"
)

// Unit is the state of one script being compiled: its typed local
// variables in declaration order and the tables used to resolve other names.
type Unit struct {
	Shorts []string
	Longs  []string
	Floats []string

	// Pos is the line currently being compiled, attached to warnings.
	Pos token.Position

	globals Globals
	objects Objects
	warn    Warner
}

// NewUnit creates an empty unit. Nil tables behave as empty and a nil
// warner discards warnings.
func NewUnit(globals Globals, objects Objects, warn Warner) *Unit {
	if globals == nil {
		globals = noGlobals{}
	}
	if objects == nil {
		objects = noObjects{}
	}
	return &Unit{globals: globals, objects: objects, warn: warn}
}

// Declare appends a local variable of the given kind.
func (u *Unit) Declare(kind types.Kind, name string) {
	switch kind {
	case types.KindShort:
		u.Shorts = append(u.Shorts, name)
	case types.KindLong:
		u.Longs = append(u.Longs, name)
	case types.KindFloat:
		u.Floats = append(u.Floats, name)
	default:
		panic(fmt.Sprintf("semantic: cannot declare local of kind %v", kind))
	}
}

// Locals returns all local names: shorts, then longs, then floats.
func (u *Unit) Locals() []string {
	out := make([]string, 0, len(u.Shorts)+len(u.Longs)+len(u.Floats))
	out = append(out, u.Shorts...)
	out = append(out, u.Longs...)
	return append(out, u.Floats...)
}

// Resolve maps name to a local slot. Matching is case-insensitive and
// searches shorts, longs and floats in that order; the first match wins.
// A name that is not local resolves to types.Global.
func (u *Unit) Resolve(name string) types.VarRef {
	if i := indexFold(u.Shorts, name); i >= 0 {
		return types.VarRef{Kind: types.KindShort, Index: uint16(i + 1)}
	}
	if i := indexFold(u.Longs, name); i >= 0 {
		return types.VarRef{Kind: types.KindLong, Index: uint16(i + 1)}
	}
	if i := indexFold(u.Floats, name); i >= 0 {
		return types.VarRef{Kind: types.KindFloat, Index: uint16(i + 1)}
	}
	return types.Global
}

// Global returns the canonical spelling of a global variable.
func (u *Unit) Global(name string) (string, bool) {
	if !u.globals.HasGlobal(name) {
		return "", false
	}
	return u.globals.GlobalID(name), true
}

// Foreign resolves a local variable of the script attached to objectID.
func (u *Unit) Foreign(objectID, varName string) types.VarRef {
	return u.objects.ForeignVariable(objectID, varName)
}

// CanonicalID returns the registered spelling of an object ID, or id
// itself if the object is unknown.
func (u *Unit) CanonicalID(id string) string {
	return u.objects.CanonicalID(id)
}

// Warnf reports a non-fatal diagnostic for the current line.
func (u *Unit) Warnf(format string, args ...any) {
	if u.warn != nil {
		u.warn(u.Pos, fmt.Sprintf(format, args...))
	}
}

func indexFold(names []string, name string) int {
	for i, n := range names {
		if lexer.EqualFold(n, name) {
			return i
		}
	}
	return -1
}
