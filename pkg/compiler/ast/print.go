package ast

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/agenthands/calcvm/pkg/compiler/lexer"
)

// OpSymbol returns the printable name of an operator. '^' prints as
// "expt" and '%' as "mod" so dumps read as Lisp forms.
func OpSymbol(k lexer.Kind) string {
	switch k {
	case lexer.KindPlus:
		return "+"
	case lexer.KindMinus:
		return "-"
	case lexer.KindStar:
		return "*"
	case lexer.KindSlash:
		return "/"
	case lexer.KindPercent:
		return "mod"
	case lexer.KindCaret:
		return "expt"
	}
	return "?"
}

// SExpr renders the tree in s-expression form: "(op child...)" for
// operator nodes, a bare literal for leaves.
func SExpr(node Node) string {
	var b strings.Builder
	writeSExpr(&b, node)
	return b.String()
}

func writeSExpr(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *Number:
		b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case *Unary:
		b.WriteByte('(')
		b.WriteString(OpSymbol(n.Op))
		b.WriteByte(' ')
		writeSExpr(b, n.Child)
		b.WriteByte(')')
	case *Binary:
		b.WriteByte('(')
		b.WriteString(OpSymbol(n.Op))
		b.WriteByte(' ')
		writeSExpr(b, n.Left)
		b.WriteByte(' ')
		writeSExpr(b, n.Right)
		b.WriteByte(')')
	}
}

// JSONNode is the wire shape of one tree node. Type is "number",
// "unary" or "binary"; only the fields relevant to that type are set.
type JSONNode struct {
	Type  string    `json:"type"`
	Value *float64  `json:"value,omitempty"`
	Op    string    `json:"op,omitempty"`
	Start uint32    `json:"start"`
	End   uint32    `json:"end"`
	Child *JSONNode `json:"child,omitempty"`
	Left  *JSONNode `json:"left,omitempty"`
	Right *JSONNode `json:"right,omitempty"`
}

// JSON renders the tree as one nested JSON object per node.
func JSON(node Node) ([]byte, error) {
	return json.Marshal(toJSONNode(node))
}

func toJSONNode(node Node) *JSONNode {
	if node == nil {
		return nil
	}
	switch n := node.(type) {
	case *Number:
		v := n.Value
		return &JSONNode{Type: "number", Value: &v, Start: n.Start, End: n.End}
	case *Unary:
		return &JSONNode{
			Type:  "unary",
			Op:    OpSymbol(n.Op),
			Start: n.Start,
			End:   n.End,
			Child: toJSONNode(n.Child),
		}
	case *Binary:
		return &JSONNode{
			Type:  "binary",
			Op:    OpSymbol(n.Op),
			Start: n.Start,
			End:   n.End,
			Left:  toJSONNode(n.Left),
			Right: toJSONNode(n.Right),
		}
	}
	return nil
}
