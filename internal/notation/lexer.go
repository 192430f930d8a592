// Package notation parses compact dice notation such as "3x4d6*5+1s2" into
// an evaluatable dice.Spec plus a repeat count.
//
// The grammar surface is:
//
//	[<repeat> x] <count> d <sides> [{* | /}<factor>] [{+ | -}<modifier>] [s<drop>]
//
// where every numeric field is a non-negative decimal integer and whitespace
// is permitted anywhere between tokens.
package notation

import "unicode"

// Lexer turns a notation string into a stream of tokens, one Next call at a
// time. Reaching the end of input yields Eof indefinitely.
type Lexer struct {
	source []rune
	pos    int
}

// NewLexer creates a lexer over the given notation string.
func NewLexer(source string) *Lexer {
	return &Lexer{source: []rune(source)}
}

// Next consumes and returns the next token. Unknown characters produce an
// InvalidTokenError naming the offending character.
func (l *Lexer) Next() (Token, error) {
	for l.pos < len(l.source) && unicode.IsSpace(l.source[l.pos]) {
		l.pos++
	}

	if l.pos >= len(l.source) {
		return Token{Kind: Eof}, nil
	}

	c := l.source[l.pos]
	l.pos++

	switch c {
	case '*':
		return Token{Kind: Mul}, nil
	case '/':
		return Token{Kind: Div}, nil
	case '+':
		return Token{Kind: Add}, nil
	case '-':
		return Token{Kind: Sub}, nil
	case 'x':
		return Token{Kind: Times}, nil
	case 'd':
		return Token{Kind: DiceMarker}, nil
	case 's':
		return Token{Kind: DropMarker}, nil
	}

	if isDigit(c) {
		// Greedily consume the longest digit run.
		n := int64(c - '0')
		for l.pos < len(l.source) && isDigit(l.source[l.pos]) {
			n = n*10 + int64(l.source[l.pos]-'0')
			l.pos++
		}
		return Token{Kind: Number, Value: n}, nil
	}

	return Token{}, &InvalidTokenError{Char: c}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
