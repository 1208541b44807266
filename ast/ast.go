// Package ast defines the syntax tree of an arithmetic expression.
package ast

import (
	"fmt"
	"strconv"

	"go.creack.net/gocalc/lexer"
)

// Expr is a node of the tree. The set of implementations is closed:
// NumberExpr and BinaryExpr.
type Expr interface {
	Dump() string
	expr()
}

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Value float64
}

func (NumberExpr) expr() {}

func (n NumberExpr) Dump() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// BinaryExpr applies an arithmetic operator to two operands.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.TokenType // One of TokPlus, TokMinus, TokMultiply or TokDivide.
	Right    Expr
}

func (BinaryExpr) expr() {}

// NewBinaryExpr creates a BinaryExpr. Both operands must be set and op must
// be an arithmetic operator.
func NewBinaryExpr(left Expr, op lexer.TokenType, right Expr) (BinaryExpr, error) {
	if left == nil || right == nil {
		return BinaryExpr{}, fmt.Errorf("missing operand for %s", op)
	}
	if !op.IsArithmetic() {
		return BinaryExpr{}, fmt.Errorf("%s is not an arithmetic operator", op)
	}
	return BinaryExpr{Left: left, Operator: op, Right: right}, nil
}

// Dump returns the fully parenthesized infix form of the expression.
func (b BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", dump(b.Left), b.Operator.Symbol(), dump(b.Right))
}

func dump(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.Dump()
}
