// Package token defines statement keywords and operators of the script language.
package token

// Token represents a statement kind or an operator.
type Token uint8

const (
	// Special tokens
	ILLEGAL Token = iota // <illegal>

	// Operators
	operatorStart
	ADD        // +
	SUB        // -
	MUL        // *
	DIV        // /
	EQUALS     // ==
	NOT_EQUALS // !=
	LESS       // <
	LTE        // <=
	GREATER    // >
	GTE        // >=
	operatorEnd

	// Statement keywords
	keywordStart
	BEGIN    // begin
	SHORT    // short
	LONG     // long
	FLOAT    // float
	SET      // set
	CHOICE   // choice
	RETURN   // return
	IF       // if
	ELSEIF   // elseif
	ELSE     // else
	ENDIF    // endif
	WHILE    // while
	ENDWHILE // endwhile
	END      // end
	keywordEnd

	// Call statements
	QUALIFIED // <qualified call>
	CALL      // <call>
)

var names = [...]string{
	ILLEGAL:    "<illegal>",
	ADD:        "+",
	SUB:        "-",
	MUL:        "*",
	DIV:        "/",
	EQUALS:     "==",
	NOT_EQUALS: "!=",
	LESS:       "<",
	LTE:        "<=",
	GREATER:    ">",
	GTE:        ">=",
	BEGIN:      "begin",
	SHORT:      "short",
	LONG:       "long",
	FLOAT:      "float",
	SET:        "set",
	CHOICE:     "choice",
	RETURN:     "return",
	IF:         "if",
	ELSEIF:     "elseif",
	ELSE:       "else",
	ENDIF:      "endif",
	WHILE:      "while",
	ENDWHILE:   "endwhile",
	END:        "end",
	QUALIFIED:  "<qualified call>",
	CALL:       "<call>",
}

func (t Token) String() string {
	if int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "<unknown>"
}

// IsOperator returns true if the token is an arithmetic or relational operator.
func (t Token) IsOperator() bool {
	return t > operatorStart && t < operatorEnd
}

// IsKeyword returns true if the token is a statement keyword.
func (t Token) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// IsDeclaration returns true for short, long and float.
func (t Token) IsDeclaration() bool {
	return t == SHORT || t == LONG || t == FLOAT
}

// IsRelational returns true for the comparison operators.
func (t Token) IsRelational() bool {
	return t >= EQUALS && t <= GTE
}

// IsAdditive returns true for + and -.
func (t Token) IsAdditive() bool {
	return t == ADD || t == SUB
}

// IsMultiplicative returns true for * and /.
func (t Token) IsMultiplicative() bool {
	return t == MUL || t == DIV
}

// Width returns the number of source bytes the operator occupies.
func (t Token) Width() int {
	if t.IsOperator() {
		return len(names[t])
	}
	return 0
}

// Bytes returns the operator spelling as written into bytecode.
func (t Token) Bytes() []byte {
	if !t.IsOperator() {
		return nil
	}
	return []byte(names[t])
}

// Arithmetic maps an operator byte to its token, or ILLEGAL.
func Arithmetic(c byte) Token {
	switch c {
	case '+':
		return ADD
	case '-':
		return SUB
	case '*':
		return MUL
	case '/':
		return DIV
	}
	return ILLEGAL
}

// LowerOrEqual reports whether op1, found after op2 in an expression,
// binds no tighter than op2. The parser then splits at op1 instead.
// Both arguments must be arithmetic operators.
func LowerOrEqual(op1, op2 Token) bool {
	if op1 == op2 {
		return true
	}
	if op1.IsAdditive() {
		return true
	}
	// op1 is multiplicative here
	return op2.IsMultiplicative()
}
