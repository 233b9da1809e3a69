// Package lexing turns raw input text into a stream of tokens by trying an
// ordered list of rules at the current cursor and keeping the first one that
// matches, per spec.md §4.A.
package lexing

import (
	"regexp"

	gcers "github.com/PlayerR9/go-commons/errors"
)

// Rule is one entry of a Lexer's ordered rule list. Construct one with
// Literal or Regex; there is no exported struct literal form because every
// Rule must know how to both test and consume a prefix of the remaining
// input.
type Rule[T any] struct {
	// describe is used only for diagnostics (Rule.String, Lexer.String).
	describe string

	match func(remaining string) (matched string, value T, ok bool)
}

// String implements fmt.Stringer, returning the literal or pattern the rule
// was built from.
func (r Rule[T]) String() string {
	return r.describe
}

// Literal returns a Rule that matches s verbatim as a fixed prefix, carrying
// data as the token's value. This is the generalization of the teacher's
// Matcher.AddToMatch fixed-word rules (lexing/matcher.go in the retrieval
// pack), minus the Levenshtein fuzzy-match layer, which spec.md's Non-goals
// exclude.
func Literal[T any](s string, data T) Rule[T] {
	if s == "" {
		panic(gcers.NewErrInvalidParameter("s", gcers.NewErrEmpty(s)))
	}

	return Rule[T]{
		describe: s,
		match: func(remaining string) (string, T, bool) {
			if len(remaining) < len(s) || remaining[:len(s)] != s {
				var zero T
				return "", zero, false
			}

			return s, data, true
		},
	}
}

// Regex returns a Rule that matches pattern anchored at the cursor. f turns
// the matched text into a token value; returning ok=false consumes the match
// but produces no token, the generalized form of the teacher's whitespace
// and comment skipping (grammar.Lexer's LexOneFunc implementations in the
// retrieval pack routinely return a nil token for exactly this reason).
//
// pattern is compiled once, up front, and is always evaluated against the
// remaining suffix of the input with its match forced to start at offset 0 —
// Regex never searches ahead for a match further down the input.
func Regex[T any](pattern string, f func(matched string) (T, bool)) Rule[T] {
	re := regexp.MustCompile(`\A(?:` + pattern + `)`)

	return Rule[T]{
		describe: pattern,
		match: func(remaining string) (string, T, bool) {
			loc := re.FindStringIndex(remaining)

			var zero T

			if loc == nil || loc[0] != 0 || loc[1] == 0 {
				return "", zero, false
			}

			matched := remaining[:loc[1]]

			value, ok := f(matched)
			if !ok {
				return matched, zero, false
			}

			return matched, value, true
		},
	}
}
