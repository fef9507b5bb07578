package compiler

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/kolkov/mwscript/internal/bytecode"
	"github.com/kolkov/mwscript/internal/lexer"
	"github.com/kolkov/mwscript/internal/token"
	"github.com/kolkov/mwscript/internal/types"
)

type testGlobals map[string]string

func (g testGlobals) HasGlobal(name string) bool {
	_, ok := g[lexer.Lower(name)]
	return ok
}

func (g testGlobals) GlobalID(name string) string { return g[lexer.Lower(name)] }

// testObjects maps lower-case IDs to canonical IDs, and "id.var" keys to
// foreign variable references.
type testObjects struct {
	ids  map[string]string
	vars map[string]types.VarRef
}

func (o testObjects) ForeignVariable(objectID, varName string) types.VarRef {
	if ref, ok := o.vars[lexer.Lower(objectID+"."+varName)]; ok {
		return ref
	}
	return types.Global
}

func (o testObjects) CanonicalID(id string) string {
	if c, ok := o.ids[lexer.Lower(id)]; ok {
		return c
	}
	return id
}

func testOptions(warnings *[]string) Options {
	return Options{
		Filename: "test.mws",
		Globals:  testGlobals{"dayspassed": "DaysPassed"},
		Objects: testObjects{
			ids:  map[string]string{"fargoth": "Fargoth", "player": "player"},
			vars: map[string]types.VarRef{"fargoth.state": {Kind: types.KindShort, Index: 2}},
		},
		Warn: func(pos token.Position, msg string) {
			if warnings != nil {
				*warnings = append(*warnings, fmt.Sprintf("%s: %s", pos, msg))
			}
		},
	}
}

// cat concatenates opcodes, byte slices, strings and single bytes.
func cat(parts ...any) []byte {
	var out []byte
	for _, p := range parts {
		switch v := p.(type) {
		case bytecode.Opcode:
			out = binary.LittleEndian.AppendUint16(out, uint16(v))
		case []byte:
			out = append(out, v...)
		case string:
			out = append(out, v...)
		case int:
			out = append(out, byte(v))
		case rune:
			out = append(out, byte(v))
		case int16:
			out = binary.LittleEndian.AppendUint16(out, uint16(v))
		default:
			panic("cat: unsupported part")
		}
	}
	return out
}

func script(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []byte
	}{
		{
			"set local literal",
			"begin Test\nshort Counter\nset Counter to 5\nend",
			cat(bytecode.Set, 's', 1, 0, 2, " 5", bytecode.End),
		},
		{
			"set float expression",
			script("begin T", "float timer", "set timer to timer + 1.5", "end"),
			cat(bytecode.Set, 'f', 1, 0, 10, " f", 1, 0, " 1.5 +", bytecode.End),
		},
		{
			"set global",
			script("begin T", "set dayspassed to 3", "end"),
			cat(bytecode.Set, 'G', 10, "DaysPassed", 2, " 3", bytecode.End),
		},
		{
			"set foreign",
			script("begin T", "set fargoth.state to 1", "end"),
			cat(bytecode.Set, 'r', 7, "Fargoth", 's', 2, 0, 2, " 1", bytecode.End),
		},
		{
			"set quoted foreign",
			script("begin T", `set "fargoth".state to 1`, "end"),
			cat(bytecode.Set, 'r', 7, "Fargoth", 's', 2, 0, 2, " 1", bytecode.End),
		},
		{
			"set qualified value",
			script("begin T", "short x", "set x to player->GetPos z", "end"),
			cat(bytecode.Qualifier, 6, "player", bytecode.Set, 's', 1, 0,
				5, " X", bytecode.GetPos, 'Z', bytecode.End),
		},
		{
			"set text fallback",
			script("begin T", "short x", "set x to Bogus", "end"),
			cat(bytecode.Set, 's', 1, 0, 6, " Bogus", bytecode.End),
		},
		{
			"declarations emit nothing",
			script("begin T", "short a", "long b", "float c", "end"),
			cat(bytecode.End),
		},
		{
			"choice",
			script("begin T", `Choice "Yes" 1 "No" 2`, "end"),
			cat(bytecode.Choice, int16(14), `"Yes" 1 "No" 2`, bytecode.End),
		},
		{
			"return",
			script("begin T", "return", "end"),
			cat(bytecode.Return, bytecode.End),
		},
		{
			"message box",
			script("begin T", `MessageBox "Hello"`, "end"),
			cat(bytecode.MessageBox, int16(5), "Hello", 0, 0, bytecode.End),
		},
		{
			"qualified call",
			script("begin T", "player->AddItem gold_001 5", "end"),
			cat(bytecode.Qualifier, 6, "player", bytecode.AddItem, 8, "gold_001", int16(5), bytecode.End),
		},
		{
			"quoted qualified call",
			script("begin T", `"fargoth"->Disable`, "end"),
			cat(bytecode.Qualifier, 7, "Fargoth", bytecode.Disable, bytecode.End),
		},
		{
			"empty if",
			"begin T\nif ( 1 == 1 )\nendif\nend",
			cat(bytecode.If, 0, 7, " 1 == 1", bytecode.EndIf, bytecode.End),
		},
		{
			"if elseif else",
			script("begin T",
				"short x",
				"if ( x == 1 )",
				"set x to 2",
				"elseif ( x == 2 )",
				"set x to 3",
				"else",
				"set x to 4",
				"endif",
				"end"),
			cat(
				bytecode.If, 1, 9, " s", 1, 0, " == 1",
				bytecode.Set, 's', 1, 0, 2, " 2",
				bytecode.ElseIf, 1, 9, " s", 1, 0, " == 2",
				bytecode.Set, 's', 1, 0, 2, " 3",
				bytecode.Else, 1,
				bytecode.Set, 's', 1, 0, 2, " 4",
				bytecode.EndIf,
				bytecode.End),
		},
		{
			"else on one line",
			script("begin T", "if ( 1 == 1 )", "else return", "endif", "end"),
			cat(bytecode.If, 0, 7, " 1 == 1", bytecode.Else, 1, bytecode.Return, bytecode.EndIf, bytecode.End),
		},
		{
			"nested if counts whole block",
			script("begin T",
				"if ( 1 == 1 )",
				"if ( 2 == 2 )",
				"return",
				"endif",
				"endif",
				"end"),
			cat(
				bytecode.If, 3, 7, " 1 == 1",
				bytecode.If, 1, 7, " 2 == 2",
				bytecode.Return,
				bytecode.EndIf,
				bytecode.EndIf,
				bytecode.End),
		},
		{
			"while",
			script("begin T", "short x", "while ( x < 10 )", "set x to x + 1", "endwhile", "end"),
			cat(
				bytecode.While, 1, 9, " s", 1, 0, " < 10",
				bytecode.Set, 's', 1, 0, 8, " s", 1, 0, " 1 +",
				bytecode.EndWhile,
				bytecode.End),
		},
		{
			"qualified condition",
			script("begin T", "if ( player->GetItemCount gold_001 > 0 )", "endif", "end"),
			cat(
				bytecode.Qualifier, 6, "player",
				bytecode.If, 0, 19, " X", bytecode.GetItemCount, 0x20, 0x6F, 8, "gold_001", " > 0",
				bytecode.EndIf,
				bytecode.End),
		},
		{
			"quoted qualified condition",
			script("begin T", `if ( "fargoth"->GetItemCount gold_001 > 0 )`, "endif", "end"),
			cat(
				bytecode.Qualifier, 7, "Fargoth",
				bytecode.If, 0, 19, " X", bytecode.GetItemCount, 0x20, 0x6F, 8, "gold_001", " > 0",
				bytecode.EndIf,
				bytecode.End),
		},
		{
			"condition without comparison",
			script("begin T", "short x", "if ( x )", "endif", "end"),
			cat(bytecode.If, 0, 5, " s", 1, 0, 0, bytecode.EndIf, bytecode.End),
		},
		{
			"comments and blank lines",
			script("; header", "", "begin T ; name", "   ", "return ; early", "end"),
			cat(bytecode.Return, bytecode.End),
		},
		{
			"end with trailing text",
			script("begin T", "end T"),
			cat(bytecode.End),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compile(tt.src, testOptions(nil))
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			if !bytes.Equal(res.Data, tt.want) {
				t.Errorf("Data =\n% X\nwant\n% X", res.Data, tt.want)
			}
			if res.Text != tt.src {
				t.Errorf("Text = %q, want source verbatim", res.Text)
			}
		})
	}
}

// A GetDistance call only carries its marker bytes inside a comparison.
func TestCompileCompareMarker(t *testing.T) {
	src := script("begin T",
		"if ( GetDistance player < 100 )",
		"endif",
		"GetDistance player",
		"end")
	res, err := Compile(src, testOptions(nil))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	want := cat(
		bytecode.If, 0, 19, " X", bytecode.GetDistance, 0x20, 0x72, 6, "player", " < 100",
		bytecode.EndIf,
		bytecode.GetDistance, 6, "player",
		bytecode.End)
	if !bytes.Equal(res.Data, want) {
		t.Errorf("Data =\n% X\nwant\n% X", res.Data, want)
	}
}

func TestCompileResult(t *testing.T) {
	src := script("begin Guard",
		"short a",
		"float f",
		"long l",
		"short b",
		"set a to 1",
		"end")
	res, err := Compile(src, testOptions(nil))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if res.ID != "Guard" {
		t.Errorf("ID = %q, want Guard", res.ID)
	}
	if res.NumShorts != 2 || res.NumLongs != 1 || res.NumFloats != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", res.NumShorts, res.NumLongs, res.NumFloats)
	}
	wantLocals := []string{"a", "b", "l", "f"}
	if strings.Join(res.LocalVars, ",") != strings.Join(wantLocals, ",") {
		t.Errorf("LocalVars = %v, want %v", res.LocalVars, wantLocals)
	}
	if n := res.NumShorts + res.NumLongs + res.NumFloats; n != len(res.LocalVars) {
		t.Errorf("counts sum to %d, have %d names", n, len(res.LocalVars))
	}

	// statements tile the data
	offset := 0
	for _, s := range res.Stmts {
		if s.Offset != offset {
			t.Errorf("statement at line %d starts at %d, want %d", s.Line, s.Offset, offset)
		}
		offset += s.Size
	}
	if offset != len(res.Data) {
		t.Errorf("statements cover %d bytes, data has %d", offset, len(res.Data))
	}
	if len(res.Stmts) != 2 || res.Stmts[0].Line != 6 || res.Code(res.Stmts[0]) != bytecode.Set {
		t.Errorf("Stmts = %+v", res.Stmts)
	}
}

func TestCompileDeterministic(t *testing.T) {
	src := script("begin T",
		"short x",
		"if ( player->GetItemCount gold_001 > 10 )",
		"set x to x * 2 + 1",
		"endif",
		"end")
	first, err := Compile(src, testOptions(nil))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	second, err := Compile(src, testOptions(nil))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if !bytes.Equal(first.Data, second.Data) {
		t.Errorf("two compilations differ:\n% X\n% X", first.Data, second.Data)
	}
}

func TestCompileErrors(t *testing.T) {
	long := strings.Repeat("a", 250)
	tests := []struct {
		name string
		src  string
		kind ErrorKind
		line int
		msg  string
	}{
		{"empty source", "", Structural, 0, "empty script"},
		{"only comments", "; nothing\n\n", Structural, 0, "empty script"},
		{"missing begin", "short X\nend", Structural, 1, "must start with begin"},
		{"begin without name", "begin\nend", Structural, 1, "must start with begin"},
		{"missing end", "begin T\nreturn", Structural, 0, "has no end"},
		{"code after end", "begin T\nend\nreturn", Structural, 3, "code after end"},
		{"unclosed if", "begin T\nif ( 1 == 1 )\nend", Structural, 2, "no matching end"},
		{"unclosed while", "begin T\nwhile ( 1 == 1 )\nend", Structural, 2, "no matching end"},
		{"unclosed else", "begin T\nelse\nend", Structural, 2, "no matching end"},
		{"dangling operator", "begin T\nif ( 1 == 1 + )\nendif\nend", Structural, 2, "operator at end"},
		{"unrecognized line", "begin T\nNotARealFunction\nend", Reference, 2, "unrecognized line"},
		{"bad parameter", "begin T\nAddItem gold_001 lots\nend", Reference, 2, "is not a short value"},
		{"set without to", "begin T\nshort x\nset x 5\nend", Reference, 3, `without "to"`},
		{"set unknown target", "begin T\nset y to 5\nend", Reference, 2, "unknown variable"},
		{"set unknown foreign", "begin T\nset fargoth.mood to 5\nend", Reference, 2, "couldn't find foreign variable"},
		{"set empty qualifier", "begin T\nshort x\nset x to ->GetPos z\nend", Reference, 3, "missing object name"},
		{"empty declaration", "begin T\nshort \t\nend", Reference, 0, ""},
		{"incomplete qualified call", "begin T\nplayer->\nend", Reference, 2, "incomplete qualified call"},
		{"unknown condition operand", "begin T\nif ( bogus == 1 )\nendif\nend", Reference, 2, "couldn't match"},
		{"long condition", script("begin T", "if ( "+long+" == 1 )", "endif", "end"), Reference, 2, "at most 255"},
		{"long expression", script("begin T", "short x", "set x to "+long+" + 1", "end"), Reference, 3, "at most 255"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(nil)
			opts.Globals = testGlobals{lexer.Lower(long): long}
			res, err := Compile(tt.src, opts)
			if err == nil {
				t.Fatalf("Compile() = %+v, want error", res)
			}
			if res != nil {
				t.Errorf("Compile() returned a result with error %v", err)
			}
			var ce *CompileError
			if !errors.As(err, &ce) {
				t.Fatalf("error %T is not *CompileError", err)
			}
			if ce.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v (%v)", ce.Kind, tt.kind, err)
			}
			if tt.line != 0 && ce.Pos.Line != tt.line {
				t.Errorf("line = %d, want %d (%v)", ce.Pos.Line, tt.line, err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not contain %q", err, tt.msg)
			}
		})
	}
}

func TestCompileBlockLimit(t *testing.T) {
	build := func(n int) string {
		lines := []string{"begin T", "if ( 1 == 1 )"}
		for range n {
			lines = append(lines, "return")
		}
		return script(append(lines, "endif", "end")...)
	}

	res, err := Compile(build(MaxBlockLines), testOptions(nil))
	if err != nil {
		t.Fatalf("%d lines: %v", MaxBlockLines, err)
	}
	if got := res.Data[2]; got != MaxBlockLines {
		t.Errorf("count byte = %d, want %d", got, MaxBlockLines)
	}

	_, err = Compile(build(MaxBlockLines+1), testOptions(nil))
	var ce *CompileError
	if !errors.As(err, &ce) || ce.Kind != Structural {
		t.Errorf("%d lines: error = %v, want structural", MaxBlockLines+1, err)
	}
}

func TestCompileWarnings(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"no comparison", script("begin T", "short x", "if ( x )", "endif", "end"), "test.mws:3: no comparison operator"},
		{"text fallback", script("begin T", "short x", "set x to Bogus", "end"), "test.mws:3: storing \"Bogus\" as text"},
		{"bad axis", script("begin T", "GetPos w", "end"), "test.mws:2: invalid axis"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warnings []string
			if _, err := Compile(tt.src, testOptions(&warnings)); err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			if len(warnings) != 1 || !strings.HasPrefix(warnings[0], tt.want) {
				t.Errorf("warnings = %q, want one starting with %q", warnings, tt.want)
			}
		})
	}
}

func TestDisassemble(t *testing.T) {
	res, err := Compile("begin Test\nshort Counter\nset Counter to 5\nend", Options{})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	out := res.Disassemble()
	for _, want := range []string{
		"=== Script Test ===",
		"shorts=1 longs=0 floats=0",
		"[0] Counter",
		"0000  line 3    Set",
		"05 01 73 01 00 02 20 35",
		"line 4    End",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Disassemble() missing %q:\n%s", want, out)
		}
	}
}

func TestErrorKindString(t *testing.T) {
	if Structural.String() != "structural" || Reference.String() != "reference" {
		t.Errorf("got %s and %s", Structural, Reference)
	}
}
