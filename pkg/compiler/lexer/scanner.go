package lexer

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidNumber reports a digit run that does not form a valid
	// floating-point literal or whose magnitude is out of range.
	ErrInvalidNumber = errors.New("lexer: invalid number")
	// ErrUnknownChar reports a character outside the expression grammar.
	ErrUnknownChar = errors.New("lexer: unknown character")
)

// Scanner performs lexical analysis on expression source.
type Scanner struct {
	source []byte
	cursor int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{source: source}
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source []byte) {
	s.source = source
	s.cursor = 0
}

// Tokenize scans source to completion and returns the full token sequence,
// terminated by exactly one EOF sentinel. It never returns an empty slice.
func Tokenize(source []byte) ([]Token, error) {
	s := NewScanner(source)
	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			return tokens, nil
		}
	}
}

// Next returns the next token from the source.
func (s *Scanner) Next() (Token, error) {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF, Start: uint32(s.cursor), End: uint32(s.cursor)}, nil
	}

	start := s.cursor
	ch := s.source[s.cursor]

	// A digit, or a '-' glued to a digit, starts a numeric literal.
	if isDigit(ch) || (ch == '-' && isDigit(s.peek())) {
		return s.scanNumber()
	}

	var kind Kind
	switch ch {
	case '+':
		kind = KindPlus
	case '-':
		kind = KindMinus
	case '*':
		kind = KindStar
	case '/':
		kind = KindSlash
	case '%':
		kind = KindPercent
	case '^':
		kind = KindCaret
	case '(':
		kind = KindLParen
	case ')':
		kind = KindRParen
	default:
		return Token{}, fmt.Errorf("%w %q at offset %d", ErrUnknownChar, ch, start)
	}

	s.cursor++
	return Token{Kind: kind, Start: uint32(start), End: uint32(start)}, nil
}

// scanNumber consumes the maximal run forming one floating-point literal.
// A '+' or '-' continues the run only directly after an exponent marker;
// anywhere else it terminates the literal so that an adjacent operator is
// never absorbed into the number.
func (s *Scanner) scanNumber() (Token, error) {
	start := s.cursor
	if s.source[s.cursor] == '-' {
		s.cursor++ // sign of the literal itself
	}
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if isDigit(ch) || ch == '.' || ch == 'e' || ch == 'E' {
			s.cursor++
			continue
		}
		if (ch == '+' || ch == '-') && isExponentMarker(s.source[s.cursor-1]) {
			s.cursor++
			continue
		}
		break
	}

	run := string(s.source[start:s.cursor])
	val, err := strconv.ParseFloat(run, 64)
	if err != nil {
		return Token{}, fmt.Errorf("%w %q at offset %d", ErrInvalidNumber, run, start)
	}

	return Token{
		Kind:  KindNumber,
		Start: uint32(start),
		End:   uint32(s.cursor - 1),
		Value: val,
	}, nil
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		switch s.source[s.cursor] {
		case ' ', '\t', '\r', '\n':
			s.cursor++
		default:
			return
		}
	}
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isExponentMarker(ch byte) bool {
	return ch == 'e' || ch == 'E'
}
