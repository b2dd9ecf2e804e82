// Package calc wires the full pipeline together: source text is
// tokenized and parsed once, then the tree is executed twice, by the
// tree-walking evaluator and by the compile-and-run VM path. The two
// results must agree; the comparison is a correctness oracle, not an
// optimization.
package calc

import (
	"errors"
	"fmt"
	"math"

	"github.com/agenthands/calcvm/pkg/compiler/ast"
	"github.com/agenthands/calcvm/pkg/compiler/emitter"
	"github.com/agenthands/calcvm/pkg/compiler/lexer"
	"github.com/agenthands/calcvm/pkg/compiler/parser"
	"github.com/agenthands/calcvm/pkg/core/num"
	"github.com/agenthands/calcvm/pkg/eval"
	"github.com/agenthands/calcvm/pkg/vm"
)

var (
	// ErrEmptyExpression reports input that contains no expression at
	// all. It is a non-fatal condition, distinct from a syntax error.
	ErrEmptyExpression = errors.New("calc: empty expression")
	// ErrResultMismatch reports disagreement between the evaluator and
	// the VM on the same tree. It indicates a bug in one of the paths.
	ErrResultMismatch = errors.New("calc: evaluator and vm disagree")
)

// Result carries the outcome of one pipeline run.
type Result struct {
	Value float64
	Tree  ast.Node
}

// Eval runs source through the whole pipeline and returns the agreed
// value together with the parsed tree. Any failure in any stage is
// returned as an error; nothing is retried.
func Eval(source string) (Result, error) {
	tokens, err := lexer.Tokenize([]byte(source))
	if err != nil {
		return Result{}, err
	}

	root, err := parser.Parse(tokens)
	if err != nil {
		return Result{}, err
	}
	if root == nil {
		return Result{}, ErrEmptyExpression
	}

	walked, err := eval.Evaluate(root)
	if err != nil {
		return Result{}, err
	}

	chunk, err := emitter.Emit(root)
	if err != nil {
		return Result{}, err
	}

	m := &vm.Machine{}
	ran, err := m.Run(chunk)
	if err != nil {
		return Result{}, err
	}

	if !sameValue(walked, ran) {
		return Result{}, fmt.Errorf("%w: evaluator=%s vm=%s",
			ErrResultMismatch, num.Format(walked), num.Format(ran))
	}

	return Result{Value: ran, Tree: root}, nil
}

// sameValue treats two NaNs as agreement: the oracle checks that both
// paths produced the same behavior, and NaN never compares equal to
// itself.
func sameValue(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}
