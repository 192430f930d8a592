package notation

import (
	"errors"
	"testing"
)

func next(t *testing.T, l *Lexer) Token {
	t.Helper()
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("unexpected lexer error: %v", err)
	}
	return tok
}

func TestLexerNumbers(t *testing.T) {
	l := NewLexer("2")
	if tok := next(t, l); tok.Kind != Number || tok.Value != 2 {
		t.Errorf("expected Number(2), got %s", tok)
	}
	if tok := next(t, l); tok.Kind != Eof {
		t.Errorf("expected Eof, got %s", tok)
	}

	l = NewLexer("400")
	if tok := next(t, l); tok.Kind != Number || tok.Value != 400 {
		t.Errorf("expected Number(400), got %s", tok)
	}
}

func TestLexerOperators(t *testing.T) {
	cases := map[string]TokenKind{
		"x": Times,
		"d": DiceMarker,
		"s": DropMarker,
		"*": Mul,
		"/": Div,
		"+": Add,
		"-": Sub,
	}

	for input, want := range cases {
		l := NewLexer(input)
		if tok := next(t, l); tok.Kind != want {
			t.Errorf("lexing %q: expected kind %v, got %s", input, want, tok)
		}
	}
}

func TestLexerFullNotation(t *testing.T) {
	l := NewLexer("3x4d6*5+1s2")

	want := []Token{
		{Kind: Number, Value: 3},
		{Kind: Times},
		{Kind: Number, Value: 4},
		{Kind: DiceMarker},
		{Kind: Number, Value: 6},
		{Kind: Mul},
		{Kind: Number, Value: 5},
		{Kind: Add},
		{Kind: Number, Value: 1},
		{Kind: DropMarker},
		{Kind: Number, Value: 2},
		{Kind: Eof},
	}

	for i, expected := range want {
		tok := next(t, l)
		if tok != expected {
			t.Fatalf("token %d: expected %s, got %s", i, expected, tok)
		}
	}
}

func TestLexerSkipsWhitespace(t *testing.T) {
	l := NewLexer(" ")
	if tok := next(t, l); tok.Kind != Eof {
		t.Errorf("expected Eof for blank input, got %s", tok)
	}

	l = NewLexer("    400 ")
	if tok := next(t, l); tok.Kind != Number || tok.Value != 400 {
		t.Errorf("expected Number(400), got %s", tok)
	}
	if tok := next(t, l); tok.Kind != Eof {
		t.Errorf("expected Eof, got %s", tok)
	}
}

func TestLexerEofIsRepeatable(t *testing.T) {
	l := NewLexer("")
	for i := 0; i < 3; i++ {
		if tok := next(t, l); tok.Kind != Eof {
			t.Fatalf("Eof read %d: got %s", i, tok)
		}
	}
}

func TestLexerInvalidToken(t *testing.T) {
	l := NewLexer("3d6%2")

	next(t, l) // 3
	next(t, l) // d
	next(t, l) // 6

	_, err := l.Next()
	var invalid *InvalidTokenError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTokenError, got %v", err)
	}
	if invalid.Char != '%' {
		t.Errorf("expected offending char '%%', got %q", invalid.Char)
	}
}
