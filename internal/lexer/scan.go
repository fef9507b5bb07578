package lexer

import "github.com/kolkov/mwscript/internal/token"

// All scanners return -1 when nothing is found.

// CommentStart returns the position of the first unquoted ';'.
func CommentStart(line string) int {
	outside := true
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '"':
			outside = !outside
		case outside && line[i] == ';':
			return i
		}
	}
	return -1
}

// QualifierStart returns the position of the first unquoted "->".
func QualifierStart(line string) int {
	outside := true
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '"':
			outside = !outside
		case outside && line[i] == '-' && i+1 < len(line) && line[i+1] == '>':
			return i
		}
	}
	return -1
}

// DotPosition returns the position of the first unquoted '.'.
func DotPosition(line string) int {
	outside := true
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '"':
			outside = !outside
		case outside && line[i] == '.':
			return i
		}
	}
	return -1
}

// PosOfTo returns the position of the blank that starts the first unquoted
// " to " of a set statement. Both blanks may be spaces or tabs and "to" is
// case-insensitive. At least one more byte must follow.
func PosOfTo(line string) int {
	outside := true
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '"' {
			outside = !outside
			continue
		}
		if !outside || !isBlank(c) || i+3 >= len(line) {
			continue
		}
		if (line[i+1] == 't' || line[i+1] == 'T') &&
			(line[i+2] == 'o' || line[i+2] == 'O') &&
			isBlank(line[i+3]) {
			return i
		}
	}
	return -1
}

// ComparePos returns the position and kind of the first unquoted
// relational operator. '=' and '!' count only when doubled as "==" and "!=".
// A '>' preceded by '-' belongs to a qualifier and is skipped.
func ComparePos(line string) (int, token.Token) {
	outside := true
	n := len(line)
	for i := 0; i < n; i++ {
		c := line[i]
		if c == '"' {
			outside = !outside
			continue
		}
		if !outside {
			continue
		}
		next := byte(0)
		if i+1 < n {
			next = line[i+1]
		}
		switch c {
		case '<':
			if next == '=' {
				return i, token.LTE
			}
			return i, token.LESS
		case '=':
			if next == '=' {
				return i, token.EQUALS
			}
		case '>':
			if next == '=' {
				return i, token.GTE
			}
			if i == 0 || line[i-1] != '-' {
				return i, token.GREATER
			}
		case '!':
			if next == '=' {
				return i, token.NOT_EQUALS
			}
		}
	}
	return -1, token.ILLEGAL
}

// NextOperatorPos returns the position of the first arithmetic operator at
// or after offset that is outside quotes and outside brackets opened after
// offset. Quote state is tracked from the start of expr. A '-' directly
// followed by '>' is part of a qualifier, not an operator.
func NextOperatorPos(expr string, offset int) int {
	outside := true
	for i := 0; i < offset && i < len(expr); i++ {
		if expr[i] == '"' {
			outside = !outside
		}
	}
	depth := 0
	for i := offset; i < len(expr); i++ {
		c := expr[i]
		switch {
		case c == '"':
			outside = !outside
		case !outside:
		case c == '(':
			depth++
		case c == ')':
			depth--
		case depth != 0:
		case c == '+', c == '*', c == '/':
			return i
		case c == '-':
			if i+1 < len(expr) && expr[i+1] == '>' {
				continue
			}
			return i
		}
	}
	return -1
}

// ExplodeParams splits a call into its name and parameters. Unquoted
// spaces, commas and tabs separate pieces; empty pieces are skipped and one
// pair of enclosing quotes is removed from each. balanced is false if a
// quote was left open.
func ExplodeParams(source string) (params []string, balanced bool) {
	inside := false
	start := 0
	for i := 0; i < len(source); i++ {
		c := source[i]
		if c == '"' {
			inside = !inside
			continue
		}
		if inside || (c != ' ' && c != ',' && c != '\t') {
			continue
		}
		if i > start {
			params = append(params, StripQuotes(source[start:i]))
		}
		start = i + 1
	}
	if start < len(source) {
		params = append(params, StripQuotes(source[start:]))
	}
	return params, !inside
}

// IsSingleToken reports whether text is one atomic operand: no unquoted
// dot, no arithmetic operator and fewer than two parameters.
func IsSingleToken(text string) bool {
	if DotPosition(text) >= 0 || NextOperatorPos(text, 0) >= 0 {
		return false
	}
	params, _ := ExplodeParams(text)
	return len(params) < 2
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
