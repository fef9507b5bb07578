// Package types defines variable references and literal parsing for the script compiler.
package types

import "math"

// Kind represents the declared type of a script variable.
type Kind uint8

const (
	KindGlobal Kind = iota // Not a local variable (resolved elsewhere)
	KindShort              // 16-bit integer local
	KindLong               // 32-bit integer local
	KindFloat              // 32-bit float local
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindGlobal:
		return "global"
	case KindShort:
		return "short"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Tag returns the bytecode type tag of a local kind ('s', 'l' or 'f'),
// or 0 for KindGlobal.
func (k Kind) Tag() byte {
	switch k {
	case KindShort:
		return 's'
	case KindLong:
		return 'l'
	case KindFloat:
		return 'f'
	default:
		return 0
	}
}

// VarRef is a typed reference to a variable slot.
// Index is 1-based within its kind; a global reference always has index 0.
type VarRef struct {
	Kind  Kind
	Index uint16
}

// Global is the "not local" reference.
var Global = VarRef{Kind: KindGlobal}

// IsLocal returns true if the reference names a local slot.
func (r VarRef) IsLocal() bool {
	return r.Kind != KindGlobal
}

// ParseShort parses a decimal int16 with an optional leading minus.
// Any other character, a lone minus or an overflow rejects the whole string.
func ParseShort(s string) (int16, bool) {
	v, ok := parseInt(s, math.MaxInt16)
	return int16(v), ok
}

// ParseLong parses a decimal int32 with an optional leading minus.
func ParseLong(s string) (int32, bool) {
	v, ok := parseInt(s, math.MaxInt32)
	return int32(v), ok
}

func parseInt(s string, limit int64) (int64, bool) {
	if s == "" {
		return 0, false
	}
	i := 0
	negative := false
	if s[0] == '-' {
		if len(s) == 1 {
			return 0, false
		}
		i = 1
		negative = true
	}
	var value int64
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		if value > limit/10 {
			return 0, false
		}
		value *= 10
		d := int64(c - '0')
		if value > limit-d {
			return 0, false
		}
		value += d
	}
	if negative {
		value = -value
	}
	return value, true
}

// ParseFloat parses a float32 literal: optional leading minus, decimal
// digits and at most one dot. Arithmetic is done in float32 the way the
// legacy toolset does it, so results are bit-identical. A lone "." is 0.
func ParseFloat(s string) (float32, bool) {
	if s == "" {
		return 0, false
	}
	i := 0
	negative := false
	if s[0] == '-' {
		if len(s) == 1 {
			return 0, false
		}
		i = 1
		negative = true
	}
	const tenthLimit = math.MaxFloat32 / 10
	var value float32
	fraction := len(s)
	for ; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			if value > tenthLimit {
				return 0, false
			}
			value *= 10
			d := float32(c - '0')
			if value > math.MaxFloat32-d {
				return 0, false
			}
			value += d
			continue
		}
		if c == '.' {
			fraction = i + 1
			break
		}
		return 0, false
	}

	var second float32
	for j := len(s) - 1; j >= fraction; j-- {
		c := s[j]
		if c < '0' || c > '9' {
			return 0, false
		}
		second += float32(c - '0')
		second /= 10
	}
	value += second
	if negative {
		value = -value
	}
	return value, true
}
