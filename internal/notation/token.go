package notation

import "fmt"

// TokenKind enumerates every token the notation grammar knows about.
type TokenKind int

const (
	// Number is a run of decimal digits.
	Number TokenKind = iota
	// Times is the repeat operator 'x'.
	Times
	// DiceMarker is the 'd' separating dice count from sides.
	DiceMarker
	// DropMarker is the 's' introducing a lowest-dice drop.
	DropMarker
	// Mul is '*'.
	Mul
	// Div is '/'.
	Div
	// Add is '+'.
	Add
	// Sub is '-'.
	Sub
	// Eof marks the end of the input. It may be read repeatedly.
	Eof
)

// Token is a single lexed unit of dice notation. Value is only
// meaningful when Kind is Number.
type Token struct {
	Kind  TokenKind
	Value int64
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("Number(%d)", t.Value)
	case Times:
		return "Times"
	case DiceMarker:
		return "Dice"
	case DropMarker:
		return "Drop"
	case Mul:
		return "Mul"
	case Div:
		return "Div"
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	case Eof:
		return "Eof"
	default:
		return "Unknown"
	}
}

// Is reports whether the token has the given kind, ignoring any number value.
func (t Token) Is(kind TokenKind) bool {
	return t.Kind == kind
}
