// Package compiler assembles script source into bytecode.
//
// Compilation is line oriented. Each line is classified by its leading
// keyword and encoded on its own; block statements carry the number of
// lines in their body, found by matching the closing line ahead of time.
package compiler

import (
	"errors"
	"fmt"

	"github.com/kolkov/mwscript/internal/ast"
	"github.com/kolkov/mwscript/internal/builtins"
	"github.com/kolkov/mwscript/internal/bytecode"
	"github.com/kolkov/mwscript/internal/lexer"
	"github.com/kolkov/mwscript/internal/parser"
	"github.com/kolkov/mwscript/internal/semantic"
	"github.com/kolkov/mwscript/internal/token"
	"github.com/kolkov/mwscript/internal/types"
)

// MaxBlockLines is the largest body a block statement can skip.
const MaxBlockLines = 255

// ErrorKind classifies compile errors.
type ErrorKind int

const (
	// Reference errors name something that cannot be resolved or encoded.
	Reference ErrorKind = iota
	// Structural errors break the begin/end or block layout of a script.
	Structural
)

func (k ErrorKind) String() string {
	if k == Structural {
		return "structural"
	}
	return "reference"
}

// CompileError represents a compilation error.
type CompileError struct {
	Pos     token.Position
	Kind    ErrorKind
	Message string
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

// Options holds the collaborators of a compilation. Nil tables behave as
// empty and a nil Warn discards warnings.
type Options struct {
	Filename string
	Globals  semantic.Globals
	Objects  semantic.Objects
	Warn     semantic.Warner
}

type compiler struct {
	lines []lexer.Line
	kinds []token.Token
	unit  *semantic.Unit
	buf   bytecode.Buffer
	pos   token.Position
	id    string
	stmts []Statement
}

// Compile translates the script source into bytecode. On failure no
// result is returned.
func Compile(source string, opts Options) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*CompileError); ok {
				res, err = nil, ce
			} else {
				panic(r) // Re-panic for non-compile errors
			}
		}
	}()

	c := &compiler{
		lines: lexer.Split(opts.Filename, source),
		unit:  semantic.NewUnit(opts.Globals, opts.Objects, opts.Warn),
	}
	c.kinds = make([]token.Token, len(c.lines))
	for i, line := range c.lines {
		c.kinds[i] = lexer.Classify(line.Text)
	}
	c.compile()

	return &Result{
		ID:        c.id,
		NumShorts: len(c.unit.Shorts),
		NumLongs:  len(c.unit.Longs),
		NumFloats: len(c.unit.Floats),
		LocalVars: c.unit.Locals(),
		Data:      c.buf.Bytes(),
		Text:      source,
		Stmts:     c.stmts,
	}, nil
}

func (c *compiler) errorf(kind ErrorKind, format string, args ...any) {
	panic(&CompileError{Pos: c.pos, Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// exprError converts an expression error, keeping dangling operators
// structural.
func (c *compiler) exprError(what string, err error) {
	kind := Reference
	if errors.Is(err, parser.ErrDanglingOperator) {
		kind = Structural
	}
	c.errorf(kind, "%s: %v", what, err)
}

func (c *compiler) compile() {
	if len(c.lines) == 0 {
		c.errorf(Structural, "empty script")
	}
	first := c.lines[0]
	c.pos = first.Pos
	if !lexer.IsBegin(first.Text) {
		c.errorf(Structural, "script must start with begin, got %q", first.Text)
	}
	c.id = lexer.TrimLeft(first.Text[lexer.KeywordLen(token.BEGIN):])
	if c.id == "" {
		c.errorf(Structural, "begin without script name")
	}

	for i := 1; i < len(c.lines); i++ {
		line := c.lines[i]
		c.pos = line.Pos
		c.unit.Pos = line.Pos
		offset := c.buf.Len()

		if c.statement(i) {
			if i != len(c.lines)-1 {
				c.pos = c.lines[i+1].Pos
				c.errorf(Structural, "code after end: %q", c.lines[i+1].Text)
			}
			c.record(line, offset)
			return
		}
		c.record(line, offset)
	}
	c.errorf(Structural, "script %s has no end", c.id)
}

// record remembers the bytes emitted for a line.
func (c *compiler) record(line lexer.Line, offset int) {
	if c.buf.Len() == offset {
		return
	}
	c.stmts = append(c.stmts, Statement{
		Line:   line.Pos.Line,
		Source: line.Text,
		Offset: offset,
		Size:   c.buf.Len() - offset,
	})
}

// statement encodes line i and reports whether it ended the script.
func (c *compiler) statement(i int) (end bool) {
	text := c.lines[i].Text
	switch tok := c.kinds[i]; tok {
	case token.SHORT, token.LONG, token.FLOAT:
		c.declare(tok, text)
	case token.SET:
		c.set(text)
	case token.CHOICE:
		c.buf.Code(bytecode.Choice)
		c.buf.LenString16(lexer.TrimLeft(text[lexer.KeywordLen(tok):]))
	case token.RETURN:
		c.buf.Code(bytecode.Return)
	case token.IF:
		c.conditional(i, bytecode.If, matchIfBranch(c.kinds, i))
	case token.ELSEIF:
		c.conditional(i, bytecode.ElseIf, matchIfBranch(c.kinds, i))
	case token.WHILE:
		c.conditional(i, bytecode.While, matchEndWhile(c.kinds, i))
	case token.ELSE:
		c.buf.Code(bytecode.Else)
		c.buf.Byte(c.blockLength(i, matchElseBranch(c.kinds, i)))
	case token.ENDIF:
		c.buf.Code(bytecode.EndIf)
	case token.ENDWHILE:
		c.buf.Code(bytecode.EndWhile)
	case token.END:
		c.buf.Code(bytecode.End)
		return true
	case token.QUALIFIED:
		c.qualifiedCall(text)
	default:
		c.call(text, text)
	}
	return false
}

func (c *compiler) declare(tok token.Token, text string) {
	name := lexer.Trim(text[lexer.KeywordLen(tok):])
	if name == "" {
		c.errorf(Reference, "%s declaration without name", tok)
	}
	kind := types.KindShort
	switch tok {
	case token.LONG:
		kind = types.KindLong
	case token.FLOAT:
		kind = types.KindFloat
	}
	c.unit.Declare(kind, name)
}

// blockLength returns the body size of the block opened at start and
// closed at end.
func (c *compiler) blockLength(start, end int) byte {
	if end == start {
		c.errorf(Structural, "no matching end of %s block", c.kinds[start])
	}
	n := end - start - 1
	if n > MaxBlockLines {
		c.errorf(Structural, "%s block has %d lines, at most %d are allowed", c.kinds[start], n, MaxBlockLines)
	}
	return byte(n)
}

// conditional encodes if, elseif and while. A condition starting with
// "Object->" before its comparison is compiled as a qualifier.
func (c *compiler) conditional(i int, code bytecode.Opcode, end int) {
	tok := c.kinds[i]
	count := c.blockLength(i, end)

	cond := lexer.Unwrap(c.lines[i].Text[lexer.KeywordLen(tok):])
	comp, _ := lexer.ComparePos(cond)
	if q := lexer.QualifierStart(cond); q >= 0 && comp >= 0 && q+2 < comp {
		if object := cond[:q]; lexer.IsSingleToken(object) {
			c.qualifier(lexer.StripQuotes(lexer.Unwrap(object)))
			cond = cond[q+2:]
		}
	}

	data, err := parser.EncodeCondition(cond, c.unit)
	if err != nil {
		c.exprError("bad condition", err)
	}
	if len(data) > 255 {
		c.errorf(Reference, "condition of %s is %d bytes long, at most 255 are allowed", tok, len(data))
	}
	c.buf.Code(code)
	c.buf.Byte(count)
	c.buf.Byte(byte(len(data)))
	c.buf.Raw(data...)
}

func (c *compiler) qualifier(object string) {
	c.buf.Code(bytecode.Qualifier)
	c.buf.LenString(c.unit.CanonicalID(object))
}

// set encodes "set <target> to <expression>". An expression that cannot
// be parsed is stored as text with a warning.
func (c *compiler) set(text string) {
	work := lexer.TrimLeft(text[lexer.KeywordLen(token.SET):])
	to := lexer.PosOfTo(work)
	if to < 0 {
		c.errorf(Reference, "set without \"to\": %q", text)
	}

	expr := lexer.Unwrap(work[to+4:])
	if q := lexer.QualifierStart(expr); q >= 0 {
		object := lexer.StripQuotes(lexer.Trim(expr[:q]))
		if object == "" {
			c.errorf(Reference, "missing object name before -> in %q", text)
		}
		c.qualifier(object)
		expr = expr[q+2:]
	}

	c.buf.Code(bytecode.Set)
	c.target(lexer.Trim(work[:to]))

	expr = lexer.TrimLeft(expr)
	if expr == "" {
		c.errorf(Reference, "set without value: %q", text)
	}
	tree, err := parser.ParseExpr(expr, c.unit)
	if err != nil {
		c.unit.Warnf("storing %q as text: %v", expr, err)
		c.buf.Byte(byte(len(expr) + 1))
		c.buf.Byte(' ')
		c.buf.Text(expr)
		return
	}
	data := ast.Bytes(tree)
	if len(data) > 255 {
		c.errorf(Reference, "expression is %d bytes long, at most 255 are allowed", len(data))
	}
	c.buf.Byte(byte(len(data)))
	c.buf.Raw(data...)
}

// target encodes the variable a set statement assigns.
func (c *compiler) target(name string) {
	if ref := c.unit.Resolve(name); ref.IsLocal() {
		c.buf.SetTarget(ref)
		return
	}
	if id, ok := c.unit.Global(name); ok {
		c.buf.Byte('G')
		c.buf.LenString(id)
		return
	}
	if dot := lexer.DotPosition(name); dot >= 0 {
		object := lexer.StripQuotes(name[:dot])
		ref := c.unit.Foreign(object, name[dot+1:])
		if !ref.IsLocal() {
			c.errorf(Reference, "couldn't find foreign variable %q", name)
		}
		c.buf.Byte('r')
		c.buf.LenString(c.unit.CanonicalID(object))
		c.buf.Ref(ref)
		return
	}
	c.errorf(Reference, "unknown variable %q", name)
}

func (c *compiler) qualifiedCall(text string) {
	q := lexer.QualifierStart(text)
	object := lexer.StripQuotes(lexer.Trim(text[:q]))
	if object == "" || q+2 >= len(text) {
		c.errorf(Reference, "incomplete qualified call %q", text)
	}
	c.qualifier(object)
	c.call(text[q+2:], text)
}

// call encodes a command call; line is the whole source line for messages.
func (c *compiler) call(text, line string) {
	data, err := builtins.Encode(text, c.unit, false)
	switch {
	case errors.Is(err, builtins.ErrNoMatch):
		c.errorf(Reference, "unrecognized line %q", line)
	case err != nil:
		c.errorf(Reference, "%v", err)
	}
	c.buf.Raw(data...)
}
