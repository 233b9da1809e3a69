package paramlist

import (
	"github.com/PlayerR9/lemon"
	"github.com/PlayerR9/lemon/lexing"
)

type tok struct {
	value any
	code  lemon.TokenCode
}

// NewLexer returns a lexing.Lexer for this grammar: parentheses, commas,
// bare identifiers as NAME, and digit runs as BOGUS — standing in for any
// malformed entry, since this grammar has no production for a number.
func NewLexer() *lexing.Lexer[tok] {
	return lexing.New(
		lexing.Regex(`[ \t\r\n]+`, func(string) (tok, bool) {
			return tok{}, false
		}),
		lexing.Regex(`[A-Za-z_][A-Za-z0-9_]*`, func(matched string) (tok, bool) {
			return tok{value: matched, code: NAME}, true
		}),
		lexing.Regex(`[0-9]+`, func(matched string) (tok, bool) {
			return tok{value: matched, code: BOGUS}, true
		}),
		lexing.Literal("(", tok{code: LPAREN}),
		lexing.Literal(")", tok{code: RPAREN}),
		lexing.Literal(",", tok{code: COMMA}),
	)
}
