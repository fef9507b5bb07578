package compiler

import "github.com/kolkov/mwscript/internal/token"

// Block matchers walk the statement kinds of a script from the opening line
// at start. Nested blocks of the same family are skipped as a whole. When no
// closing line is found they return start.

// matchEndIf returns the endif closing the if at start.
func matchEndIf(kinds []token.Token, start int) int {
	for i := start + 1; i < len(kinds); i++ {
		switch kinds[i] {
		case token.ENDIF:
			return i
		case token.IF:
			end := matchEndIf(kinds, i)
			if end == i {
				return start
			}
			i = end
		}
	}
	return start
}

// matchIfBranch returns the elseif, else or endif ending the if or elseif
// branch at start.
func matchIfBranch(kinds []token.Token, start int) int {
	for i := start + 1; i < len(kinds); i++ {
		switch kinds[i] {
		case token.ELSEIF, token.ELSE, token.ENDIF:
			return i
		case token.IF:
			end := matchEndIf(kinds, i)
			if end == i {
				return start
			}
			i = end
		}
	}
	return start
}

// matchElseBranch returns the endif ending the else branch at start.
// An else branch ends exactly where its if does.
func matchElseBranch(kinds []token.Token, start int) int {
	return matchEndIf(kinds, start)
}

// matchEndWhile returns the endwhile closing the while at start.
func matchEndWhile(kinds []token.Token, start int) int {
	for i := start + 1; i < len(kinds); i++ {
		switch kinds[i] {
		case token.ENDWHILE:
			return i
		case token.WHILE:
			end := matchEndWhile(kinds, i)
			if end == i {
				return start
			}
			i = end
		}
	}
	return start
}
