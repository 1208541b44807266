// Package lexer provides a lexical analyzer for arithmetic expressions.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	digits      = "0123456789"
	numberChars = digits + "."
)

// eof is returned by next once the input is exhausted.
const eof rune = -1

// Lexer produces tokens on demand from a single expression.
// It is not safe for concurrent use.
type Lexer struct {
	input string

	curToken Token

	// err is sticky: once set, every NextToken call reports it.
	err error

	pos   int // Current position in input.
	start int // Position of the start of the current token.
	width int // Width of the last rune read by next.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken scans and returns the next token. Once the input is exhausted
// it keeps returning a TokEOF token. After a failure the returned error is
// a *LexError and the lexer must not be used further; repeated calls
// return the same error.
func (l *Lexer) NextToken() (Token, error) {
	if l.err != nil {
		return l.curToken, l.err
	}
	l.curToken = Token{Type: TokEOF, pos: l.pos}
	state := lexText
	for state != nil {
		state = state(l)
	}
	return l.curToken, l.err
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = n
	l.pos += n
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *Lexer) backup() {
	l.pos -= l.width
	l.width = 0
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) acceptRunFunc(valid func(rune) bool) bool {
	accepted := false
	for r := l.next(); r != eof && valid(r); r = l.next() {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

func (l *Lexer) fail(err *LexError) stateFn {
	l.curToken = Token{
		Type:  TokError,
		Value: err.Text,
		pos:   l.start,
	}
	l.err = err
	return nil
}

// LexError indicates input that does not start a valid token.
type LexError struct {
	// Kind is "unknown token" or "invalid number".
	Kind string
	// Text is the offending input.
	Text string
	// Col is the 1-based byte column where Text starts.
	Col int
	// Err is the underlying conversion error for invalid numbers.
	Err error
}

func (err *LexError) Error() string {
	return fmt.Sprintf("lex error at column %d: %s %q", err.Col, err.Kind, err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Unwrap() error {
	return err.Err
}
