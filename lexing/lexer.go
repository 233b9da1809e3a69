package lexing

import (
	"strings"

	"github.com/PlayerR9/lemon/lemonerr"

	gcers "github.com/PlayerR9/go-commons/errors"
)

// Position is an alias of lemonerr.Position so that callers working only
// with lexing need not import lemonerr directly.
type Position = lemonerr.Position

// Lexer holds an ordered list of Rules and turns input text into a stream
// of tokens by repeatedly trying them, first match wins (spec.md §4.A,
// invariant I5). The generalization of the teacher's Lexer[S] (lexing/
// lexer.go in the retrieval pack), with the CharStream/Levenshtein-matcher
// machinery replaced by the ordered-Rule list spec.md calls for.
type Lexer[T any] struct {
	rules []Rule[T]
}

// New returns a Lexer trying rules in order, first match wins. At least one
// rule is required.
func New[T any](rules ...Rule[T]) *Lexer[T] {
	if len(rules) == 0 {
		panic(gcers.NewErrInvalidParameter("rules", gcers.NewErrEmpty(rules)))
	}

	return &Lexer[T]{rules: rules}
}

// String implements fmt.Stringer, listing the rules in try order — useful
// when diagnosing why an input matches (or fails to match) the way it does.
func (l *Lexer[T]) String() string {
	names := make([]string, len(l.rules))
	for i, r := range l.rules {
		names[i] = r.String()
	}

	return strings.Join(names, ", ")
}

// OnToken is invoked once per emitted token, in input order. Returning a
// non-nil error stops Tokenize immediately, the error surfacing unwrapped
// from Tokenize.
type OnToken[T any] func(value T, pos Position) error

// OnError is invoked when no rule matches at the current cursor. Returning
// nil lets Tokenize skip one byte and keep going (the teacher's error-
// recovery approach for its own lexer, ErrLexing.Suggestion plus continued
// scanning); returning a non-nil error stops Tokenize, which then returns
// that error.
type OnError func(err *lemonerr.ErrNoMatchingRule) error

// Tokenize scans input start to end, calling onToken for every token a rule
// produces. The first no-matching-rule failure aborts the scan and is
// returned as *lemonerr.ErrNoMatchingRule (spec.md §7, "NoMatchingRuleAt").
// To recover from such failures instead, use TokenizeWithRecovery.
func (l *Lexer[T]) Tokenize(input string, onToken OnToken[T]) error {
	return l.tokenize(input, onToken, nil)
}

// TokenizeWithRecovery is Tokenize with an onError hook consulted on every
// no-matching-rule failure, letting the caller decide whether scanning
// continues (spec.md §4.A, "a configurable onError callback").
func (l *Lexer[T]) TokenizeWithRecovery(input string, onToken OnToken[T], onError OnError) error {
	return l.tokenize(input, onToken, onError)
}

func (l *Lexer[T]) tokenize(input string, onToken OnToken[T], onError OnError) error {
	pos := Position{Offset: 0, LineStart: 0, Line: 1}

	for pos.Offset < len(input) {
		remaining := input[pos.Offset:]

		matched, value, ok, found := l.matchOne(remaining)

		if !found {
			err := lemonerr.NewErrNoMatchingRule(pos, remaining)

			if onError == nil {
				return err
			}

			if recoverErr := onError(err); recoverErr != nil {
				return recoverErr
			}

			pos = advance(pos, input[pos.Offset:pos.Offset+1])

			continue
		}

		if ok {
			if err := onToken(value, pos); err != nil {
				return err
			}
		}

		pos = advance(pos, matched)
	}

	return nil
}

// matchOne tries every rule against remaining, in order, and reports the
// first one that matches at least one byte (spec.md invariant I5).
func (l *Lexer[T]) matchOne(remaining string) (matched string, value T, ok bool, found bool) {
	for _, r := range l.rules {
		m, v, emit := r.match(remaining)
		if m == "" {
			continue
		}

		return m, v, emit, true
	}

	var zero T
	return "", zero, false, false
}

// advance moves pos past consumed, updating Line/LineStart on every newline
// byte crossed (spec.md §4.A "Position").
func advance(pos Position, consumed string) Position {
	for i := 0; i < len(consumed); i++ {
		pos.Offset++

		if consumed[i] == '\n' {
			pos.Line++
			pos.LineStart = pos.Offset
		}
	}

	return pos
}
