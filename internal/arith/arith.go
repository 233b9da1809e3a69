// Package arith wires a small, hand-built arithmetic grammar (`+ - * /`
// over integer literals, with the usual precedence) to the lemon runtime.
// It exists purely as the fixture the root package's integration tests and
// cmd/lemondemo exercise — not a generator: every table in tables.go is
// literal Go data laid out by hand from the grammar's LALR(1) automaton,
// exactly the "tables are generator output, supplied as data" contract the
// runtime expects.
package arith

import (
	"github.com/PlayerR9/lemon"
	"github.com/PlayerR9/lemon/lemonerr"
	"github.com/PlayerR9/lemon/lexing"
)

// Parse lexes and parses input as an arithmetic expression, returning the
// integer it evaluates to. It is the fixture spec.md §8's scenario list
// exercises end to end: Lexer.Tokenize feeding Parser.Consume per token,
// then EndParsing.
func Parse(input string, opts ...lemon.Option[int]) (int, error) {
	p := NewParser(opts...)
	lx := NewLexer()

	err := lx.Tokenize(input, func(t tok, _ lexing.Position) error {
		return p.Consume(t.value, t.code)
	})
	if err != nil {
		return 0, err
	}

	if err := p.EndParsing(); err != nil {
		return 0, err
	}

	return p.Result(), nil
}

// ParseLenient is Parse with lexer error recovery enabled (spec.md §4.A
// "tokenize(input, onToken, onError)"): onNoMatch is called once per
// unmatched position and scanning resumes one byte later, exactly
// spec.md §8 scenario 4's "with onError → error reported once at offset
// 2, parsing continues."
func ParseLenient(input string, onNoMatch func(*lemonerr.ErrNoMatchingRule), opts ...lemon.Option[int]) (int, error) {
	p := NewParser(opts...)
	lx := NewLexer()

	err := lx.TokenizeWithRecovery(input, func(t tok, _ lexing.Position) error {
		return p.Consume(t.value, t.code)
	}, func(e *lemonerr.ErrNoMatchingRule) error {
		if onNoMatch != nil {
			onNoMatch(e)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := p.EndParsing(); err != nil {
		return 0, err
	}

	return p.Result(), nil
}
