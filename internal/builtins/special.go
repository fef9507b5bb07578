package builtins

import (
	"fmt"

	"github.com/kolkov/mwscript/internal/bytecode"
	"github.com/kolkov/mwscript/internal/types"
)

// maxMessageBoxParams limits the message text plus arguments and buttons.
const maxMessageBoxParams = 256

// messageBox encodes a message with format arguments and buttons. Leading
// parameters naming a local or global variable are arguments; everything
// from the first other parameter on is a button label.
func (c *call) messageBox() error {
	if len(c.params)-1 > maxMessageBoxParams {
		return fmt.Errorf("%s: more than %d parameters", c.params[0], maxMessageBoxParams)
	}
	c.buf.Code(bytecode.MessageBox)
	c.buf.LenString16(c.params[1])

	type arg struct {
		ref    types.VarRef
		global string
	}
	var args []arg
	for _, p := range c.params[2:] {
		if ref := c.unit.Resolve(p); ref.IsLocal() {
			args = append(args, arg{ref: ref})
			continue
		}
		if id, ok := c.unit.Global(p); ok {
			args = append(args, arg{ref: types.Global, global: id})
			continue
		}
		break
	}

	c.buf.Byte(byte(len(args)))
	for _, a := range args {
		if a.ref.IsLocal() {
			c.buf.Ref(a.ref)
			continue
		}
		c.buf.Byte('G')
		c.buf.ZString(a.global)
	}

	buttons := c.params[2+len(args):]
	c.buf.Byte(byte(len(buttons)))
	for _, b := range buttons {
		c.buf.ZString(b)
	}
	return nil
}

// aiWanderIdles holds the trailing byte of AIWander keyed by parameter count.
var aiWanderIdles = map[int]byte{6: 1, 7: 3, 8: 3, 9: 1, 10: 1, 11: 2, 12: 2}

// aiWander encodes AIWander with idle chances. The first idle chance is
// checked but not written.
func aiWander(c *call) error {
	n := len(c.params) - 1
	var floats [3]float32
	for i := range floats {
		v, ok := types.ParseFloat(c.params[i+1])
		if !ok {
			return c.paramError(i+1, "a floating point value")
		}
		floats[i] = v
	}
	idles := make([]int16, 0, n-3)
	for i := 4; i <= n; i++ {
		v, ok := types.ParseShort(c.params[i])
		if !ok {
			return c.paramError(i, "a short value")
		}
		idles = append(idles, v)
	}

	c.buf.Code(bytecode.AIWander)
	for _, v := range floats {
		c.buf.Float(v)
	}
	c.buf.Short(int16(n - 4))
	for _, v := range idles[1:] {
		c.buf.Short(v)
	}
	c.buf.Byte(aiWanderIdles[n])
	return nil
}

// removeEffects takes a magic effect index; indexes without an effect
// are accepted with a warning.
func removeEffects(c *call) error {
	v, ok := types.ParseShort(c.params[1])
	if !ok {
		return c.paramError(1, "a short value")
	}
	if v < 0 || int(v) >= len(effectNames) {
		c.unit.Warnf("RemoveEffects index %d is outside [0;%d]", v, len(effectNames)-1)
	}
	c.buf.Code(bytecode.RemoveEffects)
	c.buf.Short(v)
	return nil
}

func setDelete(c *call) error {
	v, ok := types.ParseShort(c.params[1])
	if !ok || (v != 0 && v != 1) {
		return c.paramError(1, "0 or 1")
	}
	c.buf.Code(bytecode.SetDelete)
	c.buf.Short(v)
	return nil
}
