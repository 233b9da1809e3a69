package lemon_test

import (
	"errors"
	"testing"

	"github.com/PlayerR9/lemon/internal/arith"
	"github.com/PlayerR9/lemon/lemonerr"
)

func TestArithParsePrecedence(t *testing.T) {
	got, err := arith.Parse("1 + 2 * 3 - 4")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if want := 3; got != want {
		t.Errorf("got %d, want %d", got, want)
	}
}

func TestArithParseEmptyInputIsUnexpectedEndOfInput(t *testing.T) {
	_, err := arith.Parse("")

	var target *lemonerr.ErrUnexpectedEndOfInput
	if !errors.As(err, &target) {
		t.Fatalf("got %v, want *lemonerr.ErrUnexpectedEndOfInput", err)
	}

	if target.StackDepth != 0 {
		t.Errorf("got stack depth %d, want 0", target.StackDepth)
	}
}

func TestArithParseTrailingOperatorIsUnexpectedEndOfInput(t *testing.T) {
	_, err := arith.Parse("1 +")

	var target *lemonerr.ErrUnexpectedEndOfInput
	if !errors.As(err, &target) {
		t.Fatalf("got %v, want *lemonerr.ErrUnexpectedEndOfInput", err)
	}

	if target.StackDepth != 2 {
		t.Errorf("got stack depth %d, want 2", target.StackDepth)
	}
}

func TestArithParseUnknownCharacter(t *testing.T) {
	_, err := arith.Parse("1 @ 2")

	var target *lemonerr.ErrNoMatchingRule
	if !errors.As(err, &target) {
		t.Fatalf("got %v, want *lemonerr.ErrNoMatchingRule", err)
	}

	if target.At.Offset != 2 {
		t.Errorf("got offset %d, want 2", target.At.Offset)
	}
}

func TestArithParseLenientRecoversFromUnknownCharacter(t *testing.T) {
	var reports int

	got, err := arith.ParseLenient("1 + 2 @", func(e *lemonerr.ErrNoMatchingRule) {
		reports++

		if e.At.Offset != 6 {
			t.Errorf("got offset %d, want 6", e.At.Offset)
		}
	})
	if err != nil {
		t.Fatalf("ParseLenient returned error: %v", err)
	}

	if reports != 1 {
		t.Errorf("got %d reports, want 1", reports)
	}

	if want := 3; got != want {
		t.Errorf("got %d, want %d", got, want)
	}
}

func TestArithParseDivision(t *testing.T) {
	got, err := arith.Parse("10 / 2 + 1")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if want := 6; got != want {
		t.Errorf("got %d, want %d", got, want)
	}
}
