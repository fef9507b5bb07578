// Package lexer splits script source into lines and classifies statements.
//
// Scripts are line oriented: every statement occupies exactly one line, and
// its kind is determined by a case-insensitive keyword prefix. The scanners
// in this package are quote aware: a double quote toggles a string span
// inside which operators, comments and separators are not recognized.
package lexer

import (
	"strings"

	"github.com/coregx/coregex"

	"github.com/kolkov/mwscript/internal/token"
)

// Line is a single trimmed, comment-free line of script source.
type Line struct {
	Text string
	Pos  token.Position
}

// Split breaks source into lines. Comments and a trailing carriage return
// are removed, both ends are trimmed of spaces and tabs, and empty lines are
// dropped. A line starting with "else " or "else\t" is split into "else"
// followed by its remainder on a line of its own.
func Split(filename, source string) []Line {
	var lines []Line
	raw := strings.Split(source, "\n")
	for i, text := range raw {
		if c := CommentStart(text); c >= 0 {
			text = text[:c]
		}
		text = strings.TrimSuffix(text, "\r")
		text = Trim(text)
		if text == "" {
			continue
		}
		lines = append(lines, Line{
			Text: text,
			Pos:  token.Position{Filename: filename, Line: i + 1},
		})
	}

	for i := 0; i < len(lines); i++ {
		text := lines[i].Text
		if len(text) < 5 || (text[:5] != "else " && text[:5] != "else\t") {
			continue
		}
		rest := Line{Text: TrimLeft(text[5:]), Pos: lines[i].Pos}
		lines[i].Text = "else"
		lines = append(lines, Line{})
		copy(lines[i+2:], lines[i+1:])
		lines[i+1] = rest
	}
	return lines
}

func mustCompile(expr string) *coregex.Regexp {
	re, err := coregex.Compile(expr)
	if err != nil {
		panic("lexer: bad pattern " + expr + ": " + err.Error())
	}
	return re
}

type pattern struct {
	tok token.Token
	re  *coregex.Regexp
}

// Statement patterns in recognition order, matched against the ASCII
// lower-cased line. The first match wins.
var patterns = []pattern{
	{token.SHORT, mustCompile(`^short[ \t]`)},
	{token.LONG, mustCompile(`^long[ \t]`)},
	{token.FLOAT, mustCompile(`^float[ \t]`)},
	{token.SET, mustCompile(`^set `)},
	{token.CHOICE, mustCompile(`^choice[ ,]`)},
	{token.RETURN, mustCompile(`^return$`)},
	{token.IF, mustCompile(`^if `)},
	{token.ELSEIF, mustCompile(`^elseif `)},
	{token.ELSE, mustCompile(`^else$`)},
	{token.ENDIF, mustCompile(`^endif$`)},
	{token.WHILE, mustCompile(`^while `)},
	{token.ENDWHILE, mustCompile(`^endwhile$`)},
	{token.END, mustCompile(`^end(?:[ \t]|$)`)},
}

var beginPattern = mustCompile(`^begin[ \t]`)

// KeywordLen is the number of bytes a statement keyword occupies including
// the separator that follows it, i.e. the offset of the statement's operand.
func KeywordLen(tok token.Token) int {
	switch tok {
	case token.BEGIN, token.SHORT, token.FLOAT, token.WHILE:
		return 6
	case token.LONG:
		return 5
	case token.SET:
		return 4
	case token.IF:
		return 3
	case token.ELSEIF, token.CHOICE:
		return 7
	}
	return 0
}

// IsBegin reports whether text is a begin clause.
func IsBegin(text string) bool {
	return beginPattern.MatchString(Lower(text))
}

// Classify returns the statement kind of a line. Lines that match no
// keyword are token.QUALIFIED if they contain an unquoted "->", and
// token.CALL otherwise.
func Classify(text string) token.Token {
	lower := Lower(text)
	for _, p := range patterns {
		if p.re.MatchString(lower) {
			return p.tok
		}
	}
	if QualifierStart(text) >= 0 {
		return token.QUALIFIED
	}
	return token.CALL
}
