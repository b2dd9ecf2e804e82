// Package emitter lowers an expression tree into VM bytecode with a
// post-order traversal: operands first, then the operator's opcode.
package emitter

import (
	"errors"
	"fmt"

	"github.com/agenthands/calcvm/pkg/compiler/ast"
	"github.com/agenthands/calcvm/pkg/compiler/lexer"
	"github.com/agenthands/calcvm/pkg/vm"
)

// ErrTooManyConstants reports a literal count beyond the 24-bit
// instruction argument space.
var ErrTooManyConstants = errors.New("emitter: constant pool exceeds index space")

// Emit compiles root into a fresh chunk and seals it with OP_HALT.
func Emit(root ast.Node) (*vm.Chunk, error) {
	chunk := &vm.Chunk{}
	if err := Compile(root, chunk); err != nil {
		return nil, err
	}
	chunk.Write(vm.OP_HALT, 0)
	return chunk, nil
}

// Compile appends the instructions and constants for node to chunk.
// It never emits OP_HALT; sealing the chunk is the caller's job.
func Compile(node ast.Node, chunk *vm.Chunk) error {
	switch n := node.(type) {
	case *ast.Number:
		idx := chunk.AddConstant(n.Value)
		if idx > vm.MaxConstIndex {
			return fmt.Errorf("%w (%d constants)", ErrTooManyConstants, idx+1)
		}
		chunk.Write(vm.OP_CONSTANT, uint32(idx))
		return nil

	case *ast.Unary:
		if err := Compile(n.Child, chunk); err != nil {
			return err
		}
		if n.Op == lexer.KindMinus {
			chunk.Write(vm.OP_NEGATE, 0)
		}
		// Unary plus compiles to nothing.
		return nil

	case *ast.Binary:
		if err := Compile(n.Left, chunk); err != nil {
			return err
		}
		if err := Compile(n.Right, chunk); err != nil {
			return err
		}
		op, err := binaryOpcode(n.Op)
		if err != nil {
			return err
		}
		chunk.Write(op, 0)
		return nil
	}

	return fmt.Errorf("emitter: unknown node %T", node)
}

func binaryOpcode(k lexer.Kind) (uint8, error) {
	switch k {
	case lexer.KindPlus:
		return vm.OP_ADD, nil
	case lexer.KindMinus:
		return vm.OP_SUBTRACT, nil
	case lexer.KindStar:
		return vm.OP_MULTIPLY, nil
	case lexer.KindSlash:
		return vm.OP_DIVIDE, nil
	case lexer.KindPercent:
		return vm.OP_MODULO, nil
	case lexer.KindCaret:
		return vm.OP_POWER, nil
	}
	return 0, fmt.Errorf("emitter: no opcode for %s", k)
}
