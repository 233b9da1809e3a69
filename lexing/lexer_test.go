package lexing

import (
	"errors"
	"testing"

	"github.com/PlayerR9/lemon/lemonerr"
)

type token struct {
	kind string
	text string
}

func numberLexer() *Lexer[token] {
	return New(
		Regex(`[ \t\n]+`, func(string) (token, bool) {
			return token{}, false
		}),
		Regex(`[0-9]+`, func(matched string) (token, bool) {
			return token{kind: "NUM", text: matched}, true
		}),
		Literal("+", token{kind: "PLUS", text: "+"}),
		Literal("-", token{kind: "MINUS", text: "-"}),
	)
}

func TestTokenizeOrderedRules(t *testing.T) {
	lx := numberLexer()

	var got []token

	err := lx.Tokenize("12 + 34-5", func(v token, _ Position) error {
		got = append(got, v)
		return nil
	})
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}

	want := []token{
		{kind: "NUM", text: "12"},
		{kind: "PLUS", text: "+"},
		{kind: "NUM", text: "34"},
		{kind: "MINUS", text: "-"},
		{kind: "NUM", text: "5"},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(got), len(want), got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTokenizePositionTracksLines(t *testing.T) {
	lx := numberLexer()

	var positions []Position

	err := lx.Tokenize("1\n22\n333", func(_ token, pos Position) error {
		positions = append(positions, pos)
		return nil
	})
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}

	wantLines := []int{1, 2, 3}

	if len(positions) != len(wantLines) {
		t.Fatalf("got %d positions, want %d", len(positions), len(wantLines))
	}

	for i, line := range wantLines {
		if positions[i].Line != line {
			t.Errorf("token %d: got line %d, want %d", i, positions[i].Line, line)
		}
	}
}

func TestTokenizeNoMatchingRule(t *testing.T) {
	lx := numberLexer()

	err := lx.Tokenize("1 @ 2", func(token, Position) error {
		return nil
	})

	var target *lemonerr.ErrNoMatchingRule
	if !errors.As(err, &target) {
		t.Fatalf("got %v, want *lemonerr.ErrNoMatchingRule", err)
	}

	if target.At.Offset != 2 {
		t.Errorf("got offset %d, want 2", target.At.Offset)
	}
}

func TestTokenizeWithRecoverySkipsAndContinues(t *testing.T) {
	lx := numberLexer()

	var skipped int
	var got []token

	err := lx.TokenizeWithRecovery("1 @ 2", func(v token, _ Position) error {
		got = append(got, v)
		return nil
	}, func(*lemonerr.ErrNoMatchingRule) error {
		skipped++
		return nil
	})
	if err != nil {
		t.Fatalf("TokenizeWithRecovery returned error: %v", err)
	}

	if skipped != 1 {
		t.Errorf("got %d skips, want 1", skipped)
	}

	if len(got) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(got), got)
	}
}

func TestLiteralPanicsOnEmptyString(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected Literal(\"\", ...) to panic")
		}
	}()

	Literal("", token{})
}

func TestRegexSkipRuleProducesNoToken(t *testing.T) {
	lx := New(
		Regex(`[ \t]+`, func(string) (string, bool) {
			return "", false
		}),
		Regex(`[a-z]+`, func(matched string) (string, bool) {
			return matched, true
		}),
	)

	var got []string

	err := lx.Tokenize("a   b c", func(v string, _ Position) error {
		got = append(got, v)
		return nil
	})
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}

	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("got %v", got)
	}
}

func TestTokenizeOnTokenErrorAborts(t *testing.T) {
	lx := numberLexer()

	stop := errors.New("stop at second token")
	count := 0

	err := lx.Tokenize("1 2 3", func(token, Position) error {
		count++
		if count == 2 {
			return stop
		}
		return nil
	})

	if !errors.Is(err, stop) {
		t.Fatalf("got %v, want %v", err, stop)
	}

	if count != 2 {
		t.Errorf("got %d tokens processed, want 2", count)
	}
}

func TestLexerStringListsRulesInOrder(t *testing.T) {
	lx := numberLexer()

	want := "[ \\t\\n]+, [0-9]+, +, -"
	if got := lx.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPositionString(t *testing.T) {
	pos := Position{Offset: 5, LineStart: 2, Line: 3}

	want := "line 3, column 4"
	if got := pos.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
