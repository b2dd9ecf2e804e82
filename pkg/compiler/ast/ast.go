package ast

import "github.com/agenthands/calcvm/pkg/compiler/lexer"

// Node represents any node in the expression tree. Span returns the
// inclusive byte offsets covering the node's leftmost to rightmost
// descendant in the source. Trees are immutable after construction and
// each node exclusively owns its children.
type Node interface {
	Span() (start, end uint32)
	exprNode()
}

// Number is a literal leaf.
type Number struct {
	Value      float64
	Start, End uint32
}

// Unary applies a prefix operator to exactly one operand.
// Op is KindPlus or KindMinus.
type Unary struct {
	Op         lexer.Kind
	Child      Node
	Start, End uint32
}

// Binary combines two operands with an infix operator.
type Binary struct {
	Op          lexer.Kind
	Left, Right Node
	Start, End  uint32
}

func (n *Number) Span() (uint32, uint32) { return n.Start, n.End }
func (n *Number) exprNode()              {}

func (u *Unary) Span() (uint32, uint32) { return u.Start, u.End }
func (u *Unary) exprNode()              {}

func (b *Binary) Span() (uint32, uint32) { return b.Start, b.End }
func (b *Binary) exprNode()              {}
