package lexer

import (
	"strings"
	"testing"
)

// FuzzScanners checks that no scanner panics and that every reported
// position points at the byte it claims to.
func FuzzScanners(f *testing.F) {
	seeds := []string{
		"begin Test",
		"set x to 5",
		`MessageBox "Hello; world" "OK"`,
		"if ( player->GetDistance Bob < 100 )",
		"set Bob.state to ( x + 2 ) * -3",
		"x >",
		`"unterminated`,
		"->",
		"((((",
		"a->b-c/d*e+f",
		"",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		if p := CommentStart(s); p >= 0 && s[p] != ';' {
			t.Fatalf("CommentStart(%q) = %d", s, p)
		}
		if p := QualifierStart(s); p >= 0 && !strings.HasPrefix(s[p:], "->") {
			t.Fatalf("QualifierStart(%q) = %d", s, p)
		}
		if p := DotPosition(s); p >= 0 && s[p] != '.' {
			t.Fatalf("DotPosition(%q) = %d", s, p)
		}
		if p := PosOfTo(s); p >= 0 && !isBlank(s[p]) {
			t.Fatalf("PosOfTo(%q) = %d", s, p)
		}
		if p, tok := ComparePos(s); p >= 0 && !strings.HasPrefix(s[p:], tok.String()) {
			t.Fatalf("ComparePos(%q) = %d %v", s, p, tok)
		}
		for off := 0; off <= len(s); off++ {
			if p := NextOperatorPos(s, off); p >= 0 && !strings.ContainsRune("+-*/", rune(s[p])) {
				t.Fatalf("NextOperatorPos(%q, %d) = %d", s, off, p)
			}
		}
		params, _ := ExplodeParams(s)
		for _, p := range params {
			if p == "" && !strings.Contains(s, `""`) {
				t.Fatalf("ExplodeParams(%q) produced empty piece", s)
			}
		}
		IsSingleToken(s)
		Unwrap(s)
		for _, l := range Split("", s) {
			if l.Text == "" || l.Text != Trim(l.Text) {
				t.Fatalf("Split(%q) produced untrimmed line %q", s, l.Text)
			}
			Classify(l.Text)
		}
	})
}
