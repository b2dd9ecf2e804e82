package eval_test

import (
	"errors"
	"math"
	"testing"

	"github.com/agenthands/calcvm/pkg/compiler/ast"
	"github.com/agenthands/calcvm/pkg/compiler/lexer"
	"github.com/agenthands/calcvm/pkg/compiler/parser"
	"github.com/agenthands/calcvm/pkg/core/num"
	"github.com/agenthands/calcvm/pkg/eval"
)

func mustParse(t *testing.T, src string) ast.Node {
	t.Helper()
	tokens, err := lexer.Tokenize([]byte(src))
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", src, err)
	}
	root, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return root
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"2^3^2", 512},
		{"-2^2", 4},
		{"-(2)^2", 4},
		{"23 + 57 * 8 - 42 / 7 % 19 ^ 4", 473},
		{"14 ^ 4 + 100 * 37 - 50 / 25 % 2 + (-47)", 42069},
		{"+ 7", 7},          // unary plus is a no-op
		{"-7 % 3", -1},      // remainder sign follows the dividend
		{"7 % -3", 1},
		{"10 / 4", 2.5},
		{"2 ^ -1", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := eval.Evaluate(mustParse(t, tt.src))
			if err != nil {
				t.Fatalf("Evaluate(%q) failed: %v", tt.src, err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, src := range []string{"5 / 0", "5 % 0", "1 + 5 / (3 - 3)"} {
		t.Run(src, func(t *testing.T) {
			_, err := eval.Evaluate(mustParse(t, src))
			if !errors.Is(err, num.ErrDivisionByZero) {
				t.Errorf("Evaluate(%q) error = %v, want division by zero", src, err)
			}
		})
	}
}

// Exponentiation follows IEEE rules: invalid combinations produce NaN
// or Inf values, never an error.
func TestPowerEdgeValues(t *testing.T) {
	got, err := eval.Evaluate(mustParse(t, "(0 - 1) ^ 0.5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("expected NaN, got %v", got)
	}

	got, err = eval.Evaluate(mustParse(t, "0 ^ -1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("expected +Inf, got %v", got)
	}
}
