package parser

import (
	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

type ruleFn func(*Parser) (ast.Expr, error)

// parseBinary parses `operand (op operand)*` for any op in ops, folding each
// new operand into the left-hand side.
func parseBinary(p *Parser, operand ruleFn, ops ...lexer.TokenType) (ast.Expr, error) {
	left, err := operand(p)
	if err != nil {
		return nil, err
	}

	for p.curToken.Type.IsOneOf(ops...) {
		operator := p.curToken.Type
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		right, err := operand(p)
		if err != nil {
			return nil, err
		}
		if left, err = ast.NewBinaryExpr(left, operator, right); err != nil {
			return nil, err
		}
	}

	return left, nil
}

func parseExpr(p *Parser) (ast.Expr, error) {
	return parseBinary(p, parseTerm, lexer.TokPlus, lexer.TokMinus)
}

func parseTerm(p *Parser) (ast.Expr, error) {
	return parseBinary(p, parseFactor, lexer.TokMultiply, lexer.TokDivide)
}

func parseFactor(p *Parser) (ast.Expr, error) {
	switch p.curToken.Type {
	case lexer.TokNumber:
		number := p.curToken.Number
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		return ast.NumberExpr{
			Value: number,
		}, nil
	case lexer.TokParenLeft:
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		inner, err := parseExpr(p)
		if err != nil {
			return nil, err
		}
		if p.curToken.Type != lexer.TokParenRight {
			return nil, p.errorf(ReasonMissingParen)
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, p.errorf(ReasonUnexpectedToken)
	}
}
