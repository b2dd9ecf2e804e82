// Package eval computes an expression's value by walking its tree
// directly, with no intermediate representation.
package eval

import (
	"fmt"

	"github.com/agenthands/calcvm/pkg/compiler/ast"
	"github.com/agenthands/calcvm/pkg/compiler/lexer"
	"github.com/agenthands/calcvm/pkg/core/num"
)

// Evaluate recursively reduces node to a value. The left operand of a
// binary node is fully evaluated before the right one is started. It is
// pure: the tree is read-only and no state survives the call.
func Evaluate(node ast.Node) (float64, error) {
	switch n := node.(type) {
	case *ast.Number:
		return n.Value, nil

	case *ast.Unary:
		v, err := Evaluate(n.Child)
		if err != nil {
			return 0, err
		}
		if n.Op == lexer.KindMinus {
			return -v, nil
		}
		// Unary plus is an identity.
		return v, nil

	case *ast.Binary:
		lhs, err := Evaluate(n.Left)
		if err != nil {
			return 0, err
		}
		rhs, err := Evaluate(n.Right)
		if err != nil {
			return 0, err
		}

		switch n.Op {
		case lexer.KindPlus:
			return lhs + rhs, nil
		case lexer.KindMinus:
			return lhs - rhs, nil
		case lexer.KindStar:
			return lhs * rhs, nil
		case lexer.KindSlash:
			return num.Div(lhs, rhs)
		case lexer.KindPercent:
			return num.Mod(lhs, rhs)
		case lexer.KindCaret:
			return num.Pow(lhs, rhs), nil
		}
		return 0, fmt.Errorf("eval: unknown binary operator %s", n.Op)
	}

	return 0, fmt.Errorf("eval: unknown node %T", node)
}
