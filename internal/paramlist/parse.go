package paramlist

import (
	"github.com/PlayerR9/lemon"
	"github.com/PlayerR9/lemon/lexing"
)

// Parse lexes and parses input as a parenthesized, comma-separated name
// list, returning the resolved []string. Pass lemon.WithCapturer(List, ...)
// among opts to recover malformed entries as placeholders instead of
// aborting (spec.md §8 scenario 5); the fixture's exported Placeholder
// builds the capturer spec.md's "parameter list is [param("a"), null]"
// example calls for.
func Parse(input string, opts ...lemon.Option[any]) ([]string, error) {
	p := NewParser(opts...)
	lx := NewLexer()

	err := lx.Tokenize(input, func(t tok, _ lexing.Position) error {
		return p.Consume(t.value, t.code)
	})
	if err != nil {
		return nil, err
	}

	if err := p.EndParsing(); err != nil {
		return nil, err
	}

	result, _ := p.Result().([]string)

	return result, nil
}

// Placeholder is a lemon.CapturerFunc that resumes a malformed list entry
// as the literal string "<invalid>", matching spec.md §8 scenario 5's
// "null" placeholder in spirit (a sentinel value distinguishable from any
// real NAME, since a bare identifier can never lex to this text).
var Placeholder = lemon.CapturerFunc[any](func(details lemon.ErrorDetails[any]) (any, bool) {
	list, ok := details.Resolved[0].([]string)
	if !ok {
		return nil, false
	}

	return append(list, "<invalid>"), true
})
