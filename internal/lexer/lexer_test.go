package lexer

import (
	"reflect"
	"testing"

	"github.com/kolkov/mwscript/internal/token"
)

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"empty", "", nil},
		{"blank lines", "\n\n  \t\n", nil},
		{"crlf", "begin A\r\nend\r\n", []string{"begin A", "end"}},
		{"comment", "set x to 1 ; note\n; whole line\nend", []string{"set x to 1", "end"}},
		{"quoted semicolon", `MessageBox "a;b"`, []string{`MessageBox "a;b"`}},
		{"trim", "  \tshort x\t ", []string{"short x"}},
		{"else split", "else set x to 1", []string{"else", "set x to 1"}},
		{"else tab split", "else\t  return", []string{"else", "return"}},
		{"else chain", "else else return", []string{"else", "else", "return"}},
		{"else case sensitive", "ELSE return", []string{"ELSE return"}},
		{"elseif untouched", "elseif x == 1", []string{"elseif x == 1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := texts(Split("", tt.source))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestSplitPositions(t *testing.T) {
	lines := Split("test.mws", "begin A\n\n; comment\nelse return\nend")
	want := []int{1, 4, 4, 5}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i, l := range lines {
		if l.Pos.Line != want[i] {
			t.Errorf("line %d (%q): Pos.Line = %d, want %d", i, l.Text, l.Pos.Line, want[i])
		}
		if l.Pos.Filename != "test.mws" {
			t.Errorf("line %d: Filename = %q", i, l.Pos.Filename)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want token.Token
	}{
		{"short x", token.SHORT},
		{"SHORT\tx", token.SHORT},
		{"shortcut", token.CALL},
		{"long y", token.LONG},
		{"Float z", token.FLOAT},
		{"set x to 1", token.SET},
		{"set\tx to 1", token.CALL},
		{"choice \"Yes\" 1", token.CHOICE},
		{"Choice,\"Yes\" 1", token.CHOICE},
		{"return", token.RETURN},
		{"Return", token.RETURN},
		{"return 1", token.CALL},
		{"if ( x == 1 )", token.IF},
		{"if(x == 1)", token.CALL},
		{"elseif x", token.ELSEIF},
		{"else", token.ELSE},
		{"endif", token.ENDIF},
		{"EndIf", token.ENDIF},
		{"while ( x < 3 )", token.WHILE},
		{"endwhile", token.ENDWHILE},
		{"end", token.END},
		{"End Test", token.END},
		{"end\tTest", token.END},
		{"ending", token.CALL},
		{"player->AddItem gold_001 10", token.QUALIFIED},
		{`"a->b" Foo`, token.CALL},
		{"Activate", token.CALL},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := Classify(tt.line); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestIsBegin(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"begin Test", true},
		{"BEGIN\tTest", true},
		{"begin", false},
		{"beginTest", false},
		{"short x", false},
	}
	for _, tt := range tests {
		if got := IsBegin(tt.line); got != tt.want {
			t.Errorf("IsBegin(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestKeywordLen(t *testing.T) {
	tests := []struct {
		tok  token.Token
		line string
	}{
		{token.SHORT, "short "},
		{token.LONG, "long "},
		{token.FLOAT, "float "},
		{token.SET, "set "},
		{token.IF, "if "},
		{token.ELSEIF, "elseif "},
		{token.WHILE, "while "},
		{token.CHOICE, "choice "},
		{token.BEGIN, "begin "},
	}
	for _, tt := range tests {
		if got := KeywordLen(tt.tok); got != len(tt.line) {
			t.Errorf("KeywordLen(%v) = %d, want %d", tt.tok, got, len(tt.line))
		}
	}
	if got := KeywordLen(token.END); got != 0 {
		t.Errorf("KeywordLen(END) = %d, want 0", got)
	}
}
