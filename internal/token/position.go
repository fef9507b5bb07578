package token

import "strconv"

// Position names a source line of a script. Columns are not tracked:
// every statement occupies exactly one line.
type Position struct {
	Filename string // optional
	Line     int    // 1-based, counted over the raw source
}

// String renders "file:line", or just the line without a file name.
func (p Position) String() string {
	line := strconv.Itoa(p.Line)
	if p.Filename == "" {
		return line
	}
	return p.Filename + ":" + line
}

// IsValid reports whether p refers to a line.
func (p Position) IsValid() bool { return p.Line > 0 }

// NoPos is the zero Position.
var NoPos = Position{}
