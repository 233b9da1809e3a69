package paramlist

import "github.com/PlayerR9/lemon"

// Reduce is this grammar's Reducer. Semantic values are untyped (any): a
// NAME token and a P both carry a string; an L carries a []string; S's
// value is simply its L child's []string, handed back as Parse's result.
func Reduce(rule int, rhs []any) any {
	switch rule {
	case ruleSIsParenL:
		return rhs[1]
	case ruleLIsP:
		return []string{rhs[0].(string)}
	case ruleLIsLCommaP:
		list := rhs[0].([]string)
		return append(list, rhs[2].(string))
	case rulePIsName:
		return rhs[0]
	default:
		panic("paramlist: unknown rule")
	}
}

// NewParser returns a lemon.Parser wired to this grammar's tables and
// Reduce.
func NewParser(opts ...lemon.Option[any]) *lemon.Parser[any] {
	return lemon.NewParser(buildTables(), Reduce, opts...)
}

// List is the symbol code for the L nonterminal — the nearest enclosing
// nonterminal already on the stack when a later entry in the list fails to
// parse. Register an ErrorCapturer on it with lemon.WithCapturer to recover
// a malformed entry as a placeholder instead of aborting (spec.md §4.F).
const List = symL
