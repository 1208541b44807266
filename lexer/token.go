package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Literals.
	TokNumber

	// Operators.
	TokPlus     // '+'.
	TokMinus    // '-'.
	TokMultiply // '*'.
	TokDivide   // '/'.

	// Delimiters.
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	if s, ok := tokenTypeStrings[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber: "NUMBER",

	TokPlus:     "PLUS",
	TokMinus:    "MINUS",
	TokMultiply: "MULTIPLY",
	TokDivide:   "DIVIDE",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

// Symbol returns the source text of operator and delimiter types, or the
// empty string for the others.
func (tt TokenType) Symbol() string {
	return singles[tt]
}

// singles holds the source text of every single-rune token.
var singles = map[TokenType]string{
	TokPlus:       "+",
	TokMinus:      "-",
	TokMultiply:   "*",
	TokDivide:     "/",
	TokParenLeft:  "(",
	TokParenRight: ")",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// IsArithmetic reports whether tt is one of the four binary operators.
func (tt TokenType) IsArithmetic() bool {
	return tt.IsOneOf(TokPlus, TokMinus, TokMultiply, TokDivide)
}

// Token represents a lexical token of an arithmetic expression.
type Token struct {
	Type  TokenType
	Value string

	// Number is the parsed value of a TokNumber, zero otherwise.
	Number float64

	pos int
}

// Pos returns the 1-based column of the first byte of the token.
func (t Token) Pos() int {
	return t.pos + 1
}

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d]: %.16q", t.Type, t.Pos(), t.Value)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.Pos(), t.Value)
}
