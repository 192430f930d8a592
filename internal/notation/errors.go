package notation

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when a notation contains a "/0" multiplier
// clause. It travels through the same error channel as token errors so a
// malformed divisor can never crash the caller.
var ErrDivisionByZero = errors.New("division by zero in multiplier")

// InvalidTokenError reports a character the lexer does not recognize.
type InvalidTokenError struct {
	Char rune
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("encountered invalid token: `%c`", e.Char)
}

// UnexpectedTokenError reports a grammar mismatch: the parser expected one
// token and found another. Both sides are rendered token descriptions.
type UnexpectedTokenError struct {
	Expected string
	Found    string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected `%s`, got `%s`", e.Expected, e.Found)
}
