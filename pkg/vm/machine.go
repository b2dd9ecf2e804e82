package vm

import (
	"errors"
	"fmt"

	"github.com/agenthands/calcvm/pkg/core/num"
)

var (
	ErrStackOverflow  = errors.New("vm: stack overflow")
	ErrStackUnderflow = errors.New("vm: stack underflow")
	ErrUnknownOpcode  = errors.New("vm: unknown opcode")
)

// StackDepth bounds the operand stack.
const StackDepth = 255

// Machine executes one Chunk against a fixed-capacity operand stack.
// It uses a fixed-size array to ensure a predictable memory footprint;
// the stack is scratch space with no lifetime beyond one Run.
type Machine struct {
	Stack [StackDepth]float64
	SP    int // Stack Pointer
	IP    int // Instruction Pointer
}

// Reset clears the machine state for reuse.
func (m *Machine) Reset() {
	m.SP = 0
	m.IP = 0
	for i := range m.Stack {
		m.Stack[i] = 0
	}
}

// Push adds a value to the stack. Panics with ErrStackOverflow at
// capacity; Run converts the panic to an error at its boundary.
func (m *Machine) Push(v float64) {
	if m.SP >= StackDepth {
		panic(ErrStackOverflow)
	}
	m.Stack[m.SP] = v
	m.SP++
}

// Pop removes and returns the top value. Panics with ErrStackUnderflow
// on an empty stack; Run converts the panic to an error at its boundary.
func (m *Machine) Pop() float64 {
	if m.SP <= 0 {
		panic(ErrStackUnderflow)
	}
	m.SP--
	return m.Stack[m.SP]
}

// Run executes chunk from instruction 0 with an empty stack until
// OP_HALT, which pops and returns the result. Execution is strictly
// linear: the instruction pointer advances by one after every non-HALT
// instruction and there are no jumps.
func (m *Machine) Run(chunk *Chunk) (result float64, err error) {
	// Safety net: convert internal stack panics to errors.
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && (errors.Is(e, ErrStackOverflow) || errors.Is(e, ErrStackUnderflow)) {
				err = e
				return
			}
			panic(r)
		}
	}()

	m.IP = 0
	m.SP = 0

	for {
		op, arg := Decode(chunk.Instructions[m.IP])

		switch op {
		case OP_HALT:
			// Returns the top value; the rest of the stack is not checked.
			return m.Pop(), nil

		case OP_CONSTANT:
			m.Push(chunk.Constants[arg])

		case OP_NEGATE:
			m.Push(-m.Pop())

		case OP_ADD:
			b, a := m.Pop(), m.Pop()
			m.Push(a + b)

		case OP_SUBTRACT:
			b, a := m.Pop(), m.Pop()
			m.Push(a - b)

		case OP_MULTIPLY:
			b, a := m.Pop(), m.Pop()
			m.Push(a * b)

		case OP_DIVIDE:
			b, a := m.Pop(), m.Pop()
			v, derr := num.Div(a, b)
			if derr != nil {
				return 0, derr
			}
			m.Push(v)

		case OP_MODULO:
			b, a := m.Pop(), m.Pop()
			v, derr := num.Mod(a, b)
			if derr != nil {
				return 0, derr
			}
			m.Push(v)

		case OP_POWER:
			b, a := m.Pop(), m.Pop()
			m.Push(num.Pow(a, b))

		default:
			return 0, fmt.Errorf("%w 0x%02x at ip %d", ErrUnknownOpcode, op, m.IP)
		}

		m.IP++
	}
}
