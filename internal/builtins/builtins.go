// Package builtins encodes calls of the game's script commands.
//
// A call line is exploded into parameters; the first names the command.
// Commands are looked up by name in a table chosen by the number of
// parameters that follow the name, so the same command may be encoded
// differently depending on how many arguments it was given. Inside a
// comparison a few commands emit extra marker bytes after their opcode.
package builtins

import (
	"errors"
	"fmt"

	"github.com/kolkov/mwscript/internal/bytecode"
	"github.com/kolkov/mwscript/internal/lexer"
	"github.com/kolkov/mwscript/internal/semantic"
	"github.com/kolkov/mwscript/internal/types"
)

// MaxParams is the largest number of parameters any fixed-arity command takes.
const MaxParams = 12

// ErrNoMatch is returned by Encode when no command accepts the line.
// It is not a compile failure by itself: callers try other readings first.
var ErrNoMatch = errors.New("no matching function")

// ParamError reports a parameter a command could not accept.
type ParamError struct {
	Command string // command as written
	Index   int    // 1-based parameter position
	Value   string
	Want    string // description of what was expected
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: parameter %d %q is not %s", e.Command, e.Index, e.Value, e.Want)
}

// Encode encodes a command call. inCompare is set when the call is an
// operand of a condition or expression.
func Encode(line string, u *semantic.Unit, inCompare bool) ([]byte, error) {
	if lexer.Trim(line) == "" {
		return nil, ErrNoMatch
	}
	params, balanced := lexer.ExplodeParams(line)
	if !balanced {
		u.Warnf("unbalanced quotes in %q", line)
	}
	if len(params) == 0 {
		return nil, ErrNoMatch
	}

	c := &call{params: params, unit: u, compare: inCompare}
	name := lexer.Lower(params[0])
	if len(params) > 2 && name == "messagebox" {
		if err := c.messageBox(); err != nil {
			return nil, err
		}
		return c.buf.Bytes(), nil
	}

	n := len(params) - 1
	if n > MaxParams {
		u.Warnf("no functions defined for %d parameters", n)
		return nil, ErrNoMatch
	}
	enc, ok := buckets[n][name]
	if !ok {
		return nil, ErrNoMatch
	}
	if err := enc.encode(c); err != nil {
		return nil, err
	}
	return c.buf.Bytes(), nil
}

// call is the state of one command being encoded.
type call struct {
	params  []string // params[0] is the command name
	unit    *semantic.Unit
	compare bool
	buf     bytecode.Buffer
}

func (c *call) paramError(i int, want string) error {
	return &ParamError{Command: c.params[0], Index: i, Value: c.params[i], Want: want}
}

func (c *call) str(i int) error {
	c.buf.LenString(c.params[i])
	return nil
}

func (c *call) str16(i int) error {
	c.buf.LenString16(c.params[i])
	return nil
}

func (c *call) short(i int) error {
	v, ok := types.ParseShort(c.params[i])
	if !ok {
		return c.paramError(i, "a short value")
	}
	c.buf.Short(v)
	return nil
}

// shortByte writes a short parameter as its low byte.
func (c *call) shortByte(i int) error {
	v, ok := types.ParseShort(c.params[i])
	if !ok {
		return c.paramError(i, "a short value")
	}
	c.buf.Byte(byte(v))
	return nil
}

func (c *call) long(i int) error {
	v, ok := types.ParseLong(c.params[i])
	if !ok {
		return c.paramError(i, "a long value")
	}
	c.buf.Long(v)
	return nil
}

func (c *call) float(i int) error {
	v, ok := types.ParseFloat(c.params[i])
	if !ok {
		return c.paramError(i, "a floating point value")
	}
	c.buf.Float(v)
	return nil
}

// axis writes the upper-cased first letter of the parameter. Letters other
// than X, Y and Z are accepted with a warning.
func (c *call) axis(i int) error {
	p := c.params[i]
	if p == "" {
		return c.paramError(i, "an axis")
	}
	a := p[0]
	if a >= 'a' && a <= 'z' {
		a -= 'a' - 'A'
	}
	if a != 'X' && a != 'Y' && a != 'Z' {
		c.unit.Warnf("invalid axis %q for %s", p, c.params[0])
	}
	c.buf.Byte(a)
	return nil
}

// floatOrLocal writes a float literal, or a local variable reference
// padded to the same width.
func (c *call) floatOrLocal(i int) error {
	if v, ok := types.ParseFloat(c.params[i]); ok {
		c.buf.Float(v)
		return nil
	}
	ref := c.unit.Resolve(c.params[i])
	if !ref.IsLocal() {
		return c.paramError(i, "a float value or local variable")
	}
	c.buf.RefWithFillers(ref)
	return nil
}

func (c *call) group(i int) error {
	g, ok := animGroups[lexer.Lower(c.params[i])]
	if !ok {
		return c.paramError(i, "an animation group")
	}
	c.buf.Short(g)
	return nil
}

func (c *call) effect(i int) error {
	idx := EffectIndex(c.params[i])
	if idx < 0 {
		return c.paramError(i, "a magic effect setting name")
	}
	c.buf.Byte(byte(idx))
	return nil
}

// lenByte writes only the length of the parameter.
func (c *call) lenByte(i int) error {
	c.buf.Byte(byte(len(c.params[i])))
	return nil
}

// EffectIndex returns the index of a magic effect given its setting name,
// or -1.
func EffectIndex(name string) int {
	for i, n := range effectNames {
		if lexer.EqualFold(n, name) {
			return i
		}
	}
	return -1
}

// AnimationGroup returns the index of a named animation group.
func AnimationGroup(name string) (int16, bool) {
	g, ok := animGroups[lexer.Lower(name)]
	return g, ok
}
