package notation

import (
	"errors"
	"testing"

	"github.com/alidiusk/DiCast/internal/dice"
)

func TestParseFullNotation(t *testing.T) {
	times, spec, err := Parse("3x4d6*5+1s2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if times != 3 {
		t.Errorf("expected repeat count 3, got %d", times)
	}
	if spec.Count != 4 {
		t.Errorf("expected count 4, got %d", spec.Count)
	}
	if spec.Range != (dice.Closed{Lo: 1, Hi: 6}) {
		t.Errorf("expected range 1..6, got %v", spec.Range)
	}
	if spec.Multiplier != 5 {
		t.Errorf("expected multiplier 5, got %d", spec.Multiplier)
	}
	if spec.Modifier != 1 {
		t.Errorf("expected modifier 1, got %d", spec.Modifier)
	}
	if spec.Drop != 2 {
		t.Errorf("expected drop 2, got %d", spec.Drop)
	}
}

func TestParseDefaults(t *testing.T) {
	times, spec, err := Parse("2d20+2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if times != 1 {
		t.Errorf("repeat count should default to 1, got %d", times)
	}
	if spec.Count != 2 {
		t.Errorf("expected count 2, got %d", spec.Count)
	}
	if spec.Range != (dice.Closed{Lo: 1, Hi: 20}) {
		t.Errorf("expected range 1..20, got %v", spec.Range)
	}
	if spec.Multiplier != 1 {
		t.Errorf("multiplier should default to 1, got %d", spec.Multiplier)
	}
	if spec.Modifier != 2 {
		t.Errorf("expected modifier 2, got %d", spec.Modifier)
	}
	if spec.Drop != 0 {
		t.Errorf("drop should default to 0, got %d", spec.Drop)
	}
}

func TestParseIsPure(t *testing.T) {
	firstTimes, firstSpec, err := Parse("6x 4d6 s1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	secondTimes, secondSpec, err := Parse("6x 4d6 s1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if firstTimes != secondTimes || firstSpec != secondSpec {
		t.Errorf("identical input produced different results: (%d, %+v) vs (%d, %+v)",
			firstTimes, firstSpec, secondTimes, secondSpec)
	}
}

func TestParseWhitespaceBetweenTokens(t *testing.T) {
	times, spec, err := Parse("3x 3d20 *2 +1 s2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if times != 3 || spec.Count != 3 || spec.Multiplier != 2 || spec.Modifier != 1 || spec.Drop != 2 {
		t.Errorf("unexpected parse: times=%d spec=%+v", times, spec)
	}
}

func TestParseNegativeModifier(t *testing.T) {
	_, spec, err := Parse("1d20-4")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if spec.Modifier != -4 {
		t.Errorf("expected modifier -4, got %d", spec.Modifier)
	}
}

func TestParseTruncatingDivision(t *testing.T) {
	// 1/2 truncates to 0, so the kept sum is wiped out.
	_, spec, err := Parse("2d6/2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if spec.Multiplier != 0 {
		t.Errorf("expected multiplier 0 from /2, got %d", spec.Multiplier)
	}

	_, spec, err = Parse("2d6/1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if spec.Multiplier != 1 {
		t.Errorf("expected multiplier 1 from /1, got %d", spec.Multiplier)
	}
}

func TestParseDivisionByZero(t *testing.T) {
	_, _, err := Parse("2d6/0")
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestParseDropClamped(t *testing.T) {
	_, spec, err := Parse("2d6s5")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if spec.Drop != 2 {
		t.Errorf("drop should clamp to count 2, got %d", spec.Drop)
	}
}

func TestParseMissingCount(t *testing.T) {
	_, _, err := Parse("d6")

	var unexpected *UnexpectedTokenError
	if !errors.As(err, &unexpected) {
		t.Fatalf("expected UnexpectedTokenError, got %v", err)
	}
	if unexpected.Expected != "Number(n)" {
		t.Errorf("expected error to want Number(n), got %q", unexpected.Expected)
	}
	if unexpected.Found != "Dice" {
		t.Errorf("expected error to report Dice, got %q", unexpected.Found)
	}
}

func TestParseMissingDiceMarker(t *testing.T) {
	_, _, err := Parse("3 6")

	var unexpected *UnexpectedTokenError
	if !errors.As(err, &unexpected) {
		t.Fatalf("expected UnexpectedTokenError, got %v", err)
	}
	if unexpected.Expected != "Dice" {
		t.Errorf("expected error to want Dice, got %q", unexpected.Expected)
	}
}

func TestParseRepeatRequiresCount(t *testing.T) {
	_, _, err := Parse("3xd6")

	var unexpected *UnexpectedTokenError
	if !errors.As(err, &unexpected) {
		t.Fatalf("expected UnexpectedTokenError, got %v", err)
	}
}

func TestParseModifierOrderIsFixed(t *testing.T) {
	// multiplier is parsed before modifier, so "+1*2" cannot reorder.
	_, _, err := Parse("2d6+1*2")
	if err == nil {
		t.Fatal("expected error for multiplier after modifier")
	}
}

func TestParseInvalidToken(t *testing.T) {
	_, _, err := Parse("3d6%2")

	var invalid *InvalidTokenError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTokenError, got %v", err)
	}
	if invalid.Char != '%' {
		t.Errorf("expected offending char '%%', got %q", invalid.Char)
	}
}

func TestParserEagerFirstToken(t *testing.T) {
	_, err := NewParser("%")

	var invalid *InvalidTokenError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTokenError from constructor, got %v", err)
	}
}
