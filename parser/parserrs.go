package parser

import (
	"fmt"

	"go.creack.net/gocalc/lexer"
)

// Reasons reported by ParseError.
const (
	ReasonUnexpectedToken = "unexpected token"
	ReasonMissingParen    = "missing closing parenthesis"
	ReasonTrailingToken   = "unexpected trailing token"
)

// ParseError indicates a token where the grammar does not allow one.
type ParseError struct {
	Reason string
	// Token is the token the parser was looking at.
	Token lexer.Token
}

func (err *ParseError) Error() string {
	found := fmt.Sprintf("%q", err.Token.Value)
	if err.Token.Type == lexer.TokEOF {
		found = "end of input"
	}
	return fmt.Sprintf("parse error at column %d: %s: found %s", err.Pos(), err.Reason, found)
}

func (err *ParseError) Pos() int {
	return err.Token.Pos()
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*ParseError)(nil)
	_ InputError = (*lexer.LexError)(nil)
)
