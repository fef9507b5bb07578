package lexer

// Text in compiled scripts is a single-byte encoding, so case folding and
// trimming work on ASCII bytes only and leave every other byte untouched.

// Lower returns s with ASCII upper-case letters mapped to lower case.
func Lower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if c := b[j]; c >= 'A' && c <= 'Z' {
					b[j] = c + 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// TrimLeft removes leading spaces and tabs.
func TrimLeft(s string) string {
	i := 0
	for i < len(s) && isBlank(s[i]) {
		i++
	}
	return s[i:]
}

// TrimRight removes trailing spaces and tabs.
func TrimRight(s string) string {
	i := len(s)
	for i > 0 && isBlank(s[i-1]) {
		i--
	}
	return s[:i]
}

// Trim removes leading and trailing spaces and tabs.
func Trim(s string) string {
	return TrimRight(TrimLeft(s))
}

// StripQuotes removes one pair of double quotes enclosing s.
func StripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// RemoveEnclosingBrackets strips one pair of parentheses if the opening
// bracket at the start is closed by the bracket at the very end. Quotes are
// not considered. ok reports whether anything was removed.
func RemoveEnclosingBrackets(s string) (string, bool) {
	n := len(s)
	if n < 2 || s[0] != '(' || s[n-1] != ')' {
		return s, false
	}
	depth := 0
	for i := 0; i < n; i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				if i == n-1 {
					return s[1 : n-1], true
				}
				return s, false
			}
		}
	}
	return s, false
}

// Unwrap trims s, removes enclosing brackets and trims again.
func Unwrap(s string) string {
	s = Trim(s)
	if inner, ok := RemoveEnclosingBrackets(s); ok {
		s = Trim(inner)
	}
	return s
}
