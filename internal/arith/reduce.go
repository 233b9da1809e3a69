package arith

import "github.com/PlayerR9/lemon"

// Reduce is the Reducer the fixture's grammar requires of every lemon.Parser
// (spec.md's Design Notes: "expose a callback performReduce(ruleNumber) ->
// SymbolValue"). Values are plain ints — the semantic value of NUM and every
// nonterminal in this grammar is the integer it denotes, so rhs is read
// directly with no SymbolValue tagging of its own.
func Reduce(rule int, rhs []int) int {
	switch rule {
	case ruleEPlusT:
		return rhs[0] + rhs[2]
	case ruleEMinusT:
		return rhs[0] - rhs[2]
	case ruleEIsT:
		return rhs[0]
	case ruleTStarF:
		return rhs[0] * rhs[2]
	case ruleTSlashF:
		return rhs[0] / rhs[2]
	case ruleTIsF:
		return rhs[0]
	case ruleFIsNum:
		return rhs[0]
	default:
		panic("arith: unknown rule")
	}
}

// NewParser returns a lemon.Parser wired to this grammar's hand-built tables
// and Reduce, ready to Consume NUM/PLUS/MINUS/STAR/SLASH tokens.
func NewParser(opts ...lemon.Option[int]) *lemon.Parser[int] {
	return lemon.NewParser(buildTables(), Reduce, opts...)
}
