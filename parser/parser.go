// Package parser builds expression trees from a token stream.
//
// The grammar, from loosest to tightest binding:
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := NUMBER | '(' expr ')'
//
// Operators of equal precedence associate to the left. The whole input must
// be consumed: tokens left after a complete expression are an error.
package parser

import (
	"errors"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/evaluator"
	"go.creack.net/gocalc/lexer"
)

// ErrParserUsed is returned when Parse is called more than once.
var ErrParserUsed = errors.New("parser already used")

// Parser is a single-use recursive-descent parser with one token of
// lookahead.
type Parser struct {
	lex *lexer.Lexer

	curToken lexer.Token

	used bool
}

// New creates a parser reading from lex. It fetches the first token right
// away, so a lex error at the start of the input is returned here.
func New(lex *lexer.Lexer) (*Parser, error) {
	p := &Parser{lex: lex}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse parses the whole input and returns the root of the tree. On error
// no tree is returned and both the parser and its lexer must be discarded.
func (p *Parser) Parse() (ast.Expr, error) {
	if p.used {
		return nil, ErrParserUsed
	}
	p.used = true

	root, err := parseExpr(p)
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != lexer.TokEOF {
		return nil, p.errorf(ReasonTrailingToken)
	}
	return root, nil
}

// Parse is a shortcut for New followed by Parse.
func Parse(lex *lexer.Lexer) (ast.Expr, error) {
	p, err := New(lex)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// Run lexes, parses and evaluates input in a fresh pipeline. The error, if
// any, is a *lexer.LexError, a *ParseError or an *evaluator.EvalError.
func Run(input string) (float64, error) {
	root, err := Parse(lexer.New(input))
	if err != nil {
		return 0, err
	}
	return evaluator.Evaluate(root)
}

// nextToken replaces the current token with the next one from the lexer.
func (p *Parser) nextToken() error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.curToken = tok
	return nil
}

func (p *Parser) errorf(reason string) error {
	return &ParseError{Reason: reason, Token: p.curToken}
}
