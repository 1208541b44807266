// Package evaluator reduces an expression tree to its numeric value.
package evaluator

import (
	"fmt"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

// EvalError reports a tree the evaluator cannot reduce. Trees built by the
// parser never produce one.
type EvalError struct {
	// Reason is "unknown node", "unknown operator" or "missing operand".
	Reason string
	// Node is the offending node.
	Node ast.Expr
}

func (err *EvalError) Error() string {
	if err.Reason == "unknown node" {
		return fmt.Sprintf("eval error: unknown node %T", err.Node)
	}
	return fmt.Sprintf("eval error: %s in %s", err.Reason, err.Node.Dump())
}

func evaluateBinary(b ast.BinaryExpr) (float64, error) {
	if b.Left == nil || b.Right == nil {
		return 0, &EvalError{Reason: "missing operand", Node: b}
	}
	// Left before right.
	left, err := Evaluate(b.Left)
	if err != nil {
		return 0, err
	}
	right, err := Evaluate(b.Right)
	if err != nil {
		return 0, err
	}

	switch b.Operator {
	case lexer.TokPlus:
		return left + right, nil
	case lexer.TokMinus:
		return left - right, nil
	case lexer.TokMultiply:
		return left * right, nil
	case lexer.TokDivide:
		// IEEE semantics: x/0 is ±Inf, 0/0 is NaN.
		return left / right, nil
	default:
		return 0, &EvalError{Reason: "unknown operator", Node: b}
	}
}

// Evaluate computes the value of the tree rooted at node. It has no side
// effects, so evaluating the same tree again yields the same result.
func Evaluate(node ast.Expr) (float64, error) {
	switch n := node.(type) {
	case ast.NumberExpr:
		return n.Value, nil
	case ast.BinaryExpr:
		return evaluateBinary(n)
	default:
		return 0, &EvalError{Reason: "unknown node", Node: n}
	}
}
