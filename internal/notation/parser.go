package notation

import (
	"github.com/alidiusk/DiCast/internal/dice"
)

// Parser builds a dice.Spec from a token stream using single-token lookahead
// recursive descent. There is no backtracking; the first mismatch aborts the
// parse.
type Parser struct {
	lexer   *Lexer
	current Token
}

// NewParser creates a parser over the notation string. The first token is
// fetched eagerly, so an input that starts with garbage fails here.
func NewParser(source string) (*Parser, error) {
	lexer := NewLexer(source)
	current, err := lexer.Next()
	if err != nil {
		return nil, err
	}
	return &Parser{lexer: lexer, current: current}, nil
}

// Parse parses a notation string and returns the repeat count alongside the
// spec to evaluate. The repeat count defaults to 1 when the "N x" prefix is
// omitted.
func Parse(source string) (int64, dice.Spec, error) {
	parser, err := NewParser(source)
	if err != nil {
		return 0, dice.Spec{}, err
	}
	return parser.Parse()
}

// Parse consumes the whole roll production:
//
//	roll := count_or_repeat 'd' Number multiplier? modifier? drop?
func (p *Parser) Parse() (int64, dice.Spec, error) {
	times := int64(1)

	count, err := p.number()
	if err != nil {
		return 0, dice.Spec{}, err
	}

	if p.current.Is(Times) {
		// The first number was the repeat count; a die count must follow.
		if err := p.advance(); err != nil {
			return 0, dice.Spec{}, err
		}
		times = count
		count, err = p.number()
		if err != nil {
			return 0, dice.Spec{}, err
		}
	}

	if err := p.expect(DiceMarker); err != nil {
		return 0, dice.Spec{}, err
	}

	sides, err := p.number()
	if err != nil {
		return 0, dice.Spec{}, err
	}

	multiplier, err := p.multiplier()
	if err != nil {
		return 0, dice.Spec{}, err
	}

	modifier, err := p.modifier()
	if err != nil {
		return 0, dice.Spec{}, err
	}

	drop, err := p.drop()
	if err != nil {
		return 0, dice.Spec{}, err
	}

	// Anything left over is not part of the grammar.
	if err := p.expect(Eof); err != nil {
		return 0, dice.Spec{}, err
	}

	spec := dice.New(count, dice.Closed{Lo: 1, Hi: sides}, multiplier, modifier, drop)
	return times, spec, nil
}

// advance replaces the lookahead token with the next one from the lexer.
func (p *Parser) advance() error {
	current, err := p.lexer.Next()
	if err != nil {
		return err
	}
	p.current = current
	return nil
}

// number consumes the current token as a Number or fails.
func (p *Parser) number() (int64, error) {
	if !p.current.Is(Number) {
		return 0, &UnexpectedTokenError{Expected: "Number(n)", Found: p.current.String()}
	}
	n := p.current.Value
	if err := p.advance(); err != nil {
		return 0, err
	}
	return n, nil
}

// multiplier consumes an optional (Mul | Div) Number clause. A Div clause
// yields 1/n under truncating integer division, so "/2" is a multiplier of
// zero; "/0" is rejected rather than trapping.
func (p *Parser) multiplier() (int64, error) {
	switch p.current.Kind {
	case Mul:
		if err := p.advance(); err != nil {
			return 0, err
		}
		return p.number()
	case Div:
		if err := p.advance(); err != nil {
			return 0, err
		}
		divisor, err := p.number()
		if err != nil {
			return 0, err
		}
		if divisor == 0 {
			return 0, ErrDivisionByZero
		}
		return 1 / divisor, nil
	default:
		return 1, nil
	}
}

// modifier consumes an optional (Add | Sub) Number clause. The sign lives on
// the operator, not the digits.
func (p *Parser) modifier() (int64, error) {
	switch p.current.Kind {
	case Add:
		if err := p.advance(); err != nil {
			return 0, err
		}
		return p.number()
	case Sub:
		if err := p.advance(); err != nil {
			return 0, err
		}
		n, err := p.number()
		if err != nil {
			return 0, err
		}
		return -n, nil
	default:
		return 0, nil
	}
}

// drop consumes an optional DropMarker Number clause.
func (p *Parser) drop() (int64, error) {
	if !p.current.Is(DropMarker) {
		return 0, nil
	}
	if err := p.advance(); err != nil {
		return 0, err
	}
	return p.number()
}

// expect consumes the current token if it has the given kind, failing with
// an UnexpectedTokenError otherwise.
func (p *Parser) expect(kind TokenKind) error {
	if !p.current.Is(kind) {
		return &UnexpectedTokenError{
			Expected: Token{Kind: kind}.String(),
			Found:    p.current.String(),
		}
	}
	return p.advance()
}
