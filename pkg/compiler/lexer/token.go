package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindNumber
	KindPlus    // +
	KindMinus   // -
	KindStar    // *
	KindSlash   // /
	KindPercent // %
	KindCaret   // ^
	KindLParen  // (
	KindRParen  // )
)

// Token represents a lexical unit pointing back to the source.
// Start and End are inclusive byte offsets, kept for diagnostics only.
type Token struct {
	Kind  Kind
	Start uint32
	End   uint32
	Value float64 // literal value, set only for KindNumber
}

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "end of input"
	case KindNumber:
		return "number"
	case KindPlus:
		return "'+'"
	case KindMinus:
		return "'-'"
	case KindStar:
		return "'*'"
	case KindSlash:
		return "'/'"
	case KindPercent:
		return "'%'"
	case KindCaret:
		return "'^'"
	case KindLParen:
		return "'('"
	case KindRParen:
		return "')'"
	}
	return "invalid token"
}
