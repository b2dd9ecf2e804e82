package emitter_test

import (
	"testing"

	"github.com/agenthands/calcvm/pkg/compiler/ast"
	"github.com/agenthands/calcvm/pkg/compiler/emitter"
	"github.com/agenthands/calcvm/pkg/compiler/lexer"
	"github.com/agenthands/calcvm/pkg/compiler/parser"
	"github.com/agenthands/calcvm/pkg/vm"
)

func compile(t *testing.T, src string) *vm.Chunk {
	t.Helper()
	tokens, err := lexer.Tokenize([]byte(src))
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", src, err)
	}
	root, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	chunk, err := emitter.Emit(root)
	if err != nil {
		t.Fatalf("Emit(%q) failed: %v", src, err)
	}
	return chunk
}

func assertOps(t *testing.T, chunk *vm.Chunk, want []uint8) {
	t.Helper()
	if len(chunk.Instructions) != len(want) {
		t.Fatalf("expected %d instructions, got %d", len(want), len(chunk.Instructions))
	}
	for i, exp := range want {
		if op, _ := vm.Decode(chunk.Instructions[i]); op != exp {
			t.Errorf("instr %d: expected op 0x%02x, got 0x%02x", i, exp, op)
		}
	}
}

func TestEmitBinary(t *testing.T) {
	chunk := compile(t, "1 + 2")

	assertOps(t, chunk, []uint8{vm.OP_CONSTANT, vm.OP_CONSTANT, vm.OP_ADD, vm.OP_HALT})

	if len(chunk.Constants) != 2 || chunk.Constants[0] != 1 || chunk.Constants[1] != 2 {
		t.Errorf("constant pool = %v, want [1 2]", chunk.Constants)
	}
	for i := 0; i < 2; i++ {
		if _, arg := vm.Decode(chunk.Instructions[i]); arg != uint32(i) {
			t.Errorf("instr %d: expected const index %d, got %d", i, i, arg)
		}
	}
}

func TestEmitPostOrder(t *testing.T) {
	// 2 + 3 * 4 lowers operands before operators, innermost first.
	chunk := compile(t, "2 + 3 * 4")
	assertOps(t, chunk, []uint8{
		vm.OP_CONSTANT, // 2
		vm.OP_CONSTANT, // 3
		vm.OP_CONSTANT, // 4
		vm.OP_MULTIPLY,
		vm.OP_ADD,
		vm.OP_HALT,
	})
}

func TestEmitUnary(t *testing.T) {
	chunk := compile(t, "- (7)")
	assertOps(t, chunk, []uint8{vm.OP_CONSTANT, vm.OP_NEGATE, vm.OP_HALT})

	// Unary plus compiles to nothing.
	chunk = compile(t, "+ (7)")
	assertOps(t, chunk, []uint8{vm.OP_CONSTANT, vm.OP_HALT})
}

func TestEmitAllOperators(t *testing.T) {
	tests := []struct {
		src string
		op  uint8
	}{
		{"1 - 2", vm.OP_SUBTRACT},
		{"1 / 2", vm.OP_DIVIDE},
		{"1 % 2", vm.OP_MODULO},
		{"1 ^ 2", vm.OP_POWER},
	}
	for _, tt := range tests {
		chunk := compile(t, tt.src)
		assertOps(t, chunk, []uint8{vm.OP_CONSTANT, vm.OP_CONSTANT, tt.op, vm.OP_HALT})
	}
}

func TestConstantsNotDeduplicated(t *testing.T) {
	chunk := compile(t, "2 + 2")
	if len(chunk.Constants) != 2 {
		t.Fatalf("expected 2 pool entries, got %d", len(chunk.Constants))
	}
}

func TestCompileLeavesHaltToCaller(t *testing.T) {
	chunk := &vm.Chunk{}
	if err := emitter.Compile(&ast.Number{Value: 5}, chunk); err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	for i, instr := range chunk.Instructions {
		if op, _ := vm.Decode(instr); op == vm.OP_HALT {
			t.Errorf("Compile emitted HALT at instr %d", i)
		}
	}
}
