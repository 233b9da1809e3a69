package arith

import (
	"strconv"

	"github.com/PlayerR9/lemon"
	"github.com/PlayerR9/lemon/lexing"
)

// tok pairs a token's semantic value with its TokenCode, the idiomatic
// TokenData shape spec.md §6 calls out ("(Token, TokenCode)").
type tok struct {
	value int
	code  lemon.TokenCode
}

// NewLexer returns a lexing.Lexer for this grammar: integers, the four
// binary operators, and whitespace skipping. Operator rules carry value 0
// since Reduce never reads a RHS token's own value for +, -, *, /.
func NewLexer() *lexing.Lexer[tok] {
	return lexing.New(
		lexing.Regex(`[ \t\r\n]+`, func(string) (tok, bool) {
			return tok{}, false
		}),
		lexing.Regex(`[0-9]+`, func(matched string) (tok, bool) {
			n, err := strconv.Atoi(matched)
			if err != nil {
				return tok{}, false
			}

			return tok{value: n, code: NUM}, true
		}),
		lexing.Literal("+", tok{code: PLUS}),
		lexing.Literal("-", tok{code: MINUS}),
		lexing.Literal("*", tok{code: STAR}),
		lexing.Literal("/", tok{code: SLASH}),
	)
}
