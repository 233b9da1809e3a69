package lemon

import (
	"fmt"

	gcers "github.com/PlayerR9/go-commons/errors"
	dbg "github.com/PlayerR9/go-debug/assert"
	"github.com/PlayerR9/lemon/lemonerr"
	"github.com/PlayerR9/lemon/trace"
)

// Reducer runs a rule's grammar-specified semantic action: given the rule
// number and the Nrhs popped values (oldest first), it returns the
// semantic value to attach to the rule's left-hand side. spec.md's Design
// Notes call this out explicitly ("the reference source carries `TODO:
// Perform reduce actions`... an implementation must... expose a callback
// performReduce(ruleNumber) -> SymbolValue and require the generator to
// supply it"); here that callback is a required constructor argument
// rather than a generated switch, and its return value is pushed directly
// — eliminating the reference implementation's yyArbitrarySymbol
// placeholder (spec.md Design Notes).
type Reducer[T any] func(rule int, rhs []T) T

// Parser executes a table-driven LALR(1) automaton (spec.md §2, component
// D/E). A Parser instance owns mutable state — its stack, error hooks and
// tracing flag — and is not safe for concurrent use; separate instances
// are independent and the Tables they share are read-only (spec.md §5).
type Parser[T any] struct {
	tables *Tables[T]
	reduce Reducer[T]
	stack  *stack[T]

	maxStackSize    int
	onSyntaxError   func(token T, code TokenCode)
	onStackOverflow func()
	tracer          trace.Tracer
	capturers       map[SymCode]ErrorCapturer[T]

	dead   bool
	result T
}

// NewParser creates a Parser bound to tables and reduce. It panics (via
// dbg.AssertErr, matching the teacher's treatment of generator-table
// defects throughout grammar/rule_set.go and parsing/parser.go) if tables
// fails Validate — a malformed table is a bug in the external generator,
// never a recoverable runtime condition (spec.md §7, "TableMalformed").
func NewParser[T any](tables *Tables[T], reduce Reducer[T], opts ...Option[T]) *Parser[T] {
	if tables == nil {
		panic(gcers.NewErrNilParameter("tables"))
	}
	if reduce == nil {
		panic(gcers.NewErrNilParameter("reduce"))
	}

	tables.mustValidate()

	p := &Parser[T]{
		tables: tables,
		reduce: reduce,
	}

	for _, opt := range opts {
		opt(p)
	}

	p.stack = newStack[T](p.maxStackSize)

	return p
}

// Dead reports whether the parser has been shut down by a stack overflow
// or an accept. A dead parser's Consume/EndParsing calls are no-ops
// (spec.md §4.B, §4.E "Accept... Subsequent consumes are rejected.").
func (p *Parser[T]) Dead() bool {
	return p.dead
}

// Result returns the semantic value accept last captured — the start
// symbol's value, typically assigned by the grammar's own start-rule
// reduce (spec.md §4.E "Accept: ... final parse result is determined by
// grammar-supplied semantic actions, typically assigned to a result slot
// during the start-rule reduce"). Its zero value is meaningless before
// Dead() reports true via an actual accept (as opposed to a stack
// overflow, which also sets Dead but never touches Result).
func (p *Parser[T]) Result() T {
	return p.result
}

// SetTracingEnabled toggles tracing without affecting semantic behavior
// (spec.md §6).
func (p *Parser[T]) SetTracingEnabled(enabled bool, t trace.Tracer) {
	if enabled {
		p.tracer = t
	} else {
		p.tracer = nil
	}
}

func (p *Parser[T]) trace(e trace.Event) {
	if p.tracer != nil {
		p.tracer.Emit(e)
	}
}

func (p *Parser[T]) tokenName(s SymCode) string {
	if int(s) < len(p.tables.TokenName) {
		return p.tables.TokenName[s]
	}

	return fmt.Sprintf("symbol(%d)", s)
}

func (p *Parser[T]) ruleName(r int) string {
	if r >= 0 && r < len(p.tables.RuleName) {
		return p.tables.RuleName[r]
	}

	return fmt.Sprintf("rule(%d)", r)
}

// findShiftAction implements spec.md §4.D "yyFindShiftAction": given the
// current top-of-stack state and a lookahead symbol, return the ActCode to
// perform. la is a terminal while searching for a shift and a nonterminal
// while resolving a reduce's goto — findReduceAction handles the latter.
func (p *Parser[T]) findShiftAction(state int32, la SymCode) ActCode {
	t := p.tables

	if ActCode(state) >= t.MinReduce {
		// state itself encodes a pending reduce.
		return ActCode(state)
	}

	if t.ShiftOffset[state] == t.ShiftUseDefault {
		return t.Default[state]
	}

	for {
		i := t.ShiftOffset[state] + int32(la)

		if i >= 0 && int(i) < len(t.Lookahead) && t.Lookahead[i] == la {
			return t.Action[i]
		}

		fb := SymCode(InvalidSymbolCode)
		if int(la) < len(t.Fallback) {
			fb = t.Fallback[la]
		}

		if fb != InvalidSymbolCode && fb != 0 {
			p.trace(trace.Event{Kind: trace.Fallback, State: state, Symbol: p.tokenName(la)})

			la = fb

			continue
		}

		if t.Wildcard != nil && la > 0 {
			j := t.ShiftOffset[state] + int32(*t.Wildcard)

			if j >= 0 && int(j) < len(t.Lookahead) && t.Lookahead[j] == *t.Wildcard {
				p.trace(trace.Event{Kind: trace.Wildcard, State: state, Symbol: p.tokenName(la)})

				return t.Action[j]
			}
		}

		return t.Default[state]
	}
}

// findReduceAction implements spec.md §4.D "yyFindReduceAction": the goto
// lookup after a reduce always hits by construction, which the assertion
// below verifies in debug builds (spec.md invariant 5, Design Notes
// "retain debug-mode asserts").
func (p *Parser[T]) findReduceAction(state int32, lhs SymCode) ActCode {
	t := p.tables

	i := t.ReduceOffset[state] + int32(lhs)

	ok := i >= 0 && int(i) < len(t.Lookahead) && t.Lookahead[i] == lhs
	dbg.Assert(ok, "reduceOffset[state]+lhs must hit a goto entry for lhs")

	return t.Action[i]
}

// Consume is the parser's sole steady-state entry point (spec.md §4.E).
// token is the semantic value already converted through the grammar's
// tokenToSymbol hook by the caller (the concrete Token type is out of
// scope here); code is its TokenCode.
func (p *Parser[T]) Consume(token T, code TokenCode) error {
	return p.consume(token, code, false)
}

func (p *Parser[T]) consume(token T, code TokenCode, endOfInput bool) error {
	if p.dead {
		return nil
	}

	la := SymCode(code)

	for {
		state := p.stack.top().state

		a := p.findShiftAction(state, la)

		switch {
		case a <= p.tables.MaxShift:
			if err := p.shift(int32(a), la, token); err != nil {
				return err
			}

			return nil

		case a >= p.tables.MinShiftReduce && a <= p.tables.MaxShiftReduce:
			if err := p.shift(int32(a), la, token); err != nil {
				return err
			}

			rule := int(a - p.tables.MinShiftReduce)

			if err := p.reduceRule(rule); err != nil {
				return err
			}

			// The token was consumed by the shift above; reduce's own
			// push is guaranteed a plain shift state (never routes to
			// shift-reduce or error), so there is nothing left to loop
			// on for this token.
			return nil

		case a >= p.tables.MinReduce && a <= p.tables.MaxReduce:
			rule := int(a - p.tables.MinReduce)

			if err := p.reduceRule(rule); err != nil {
				return err
			}

			if p.dead {
				return nil
			}

			// la was never consumed by this branch (no shift happened):
			// loop back to step 2 with the same lookahead. If the new
			// top is itself an encoded pending reduce, findShiftAction's
			// own state>=MinReduce check will surface it again without
			// consulting la at all; otherwise this performs the real
			// dispatch la was always waiting for.
			continue

		case a == p.tables.ErrorAction:
			return p.handleError(token, code, endOfInput)

		case a == p.tables.AcceptAction:
			p.trace(trace.Event{Kind: trace.Accept})
			p.accept(p.stack.top().value)

			return nil

		default:
			return lemonerr.NewErrTableMalformed(fmt.Sprintf("no valid action for state %d, symbol %d", state, la))
		}
	}
}

// shift performs spec.md §4.E "Shift(newState, symbolCode, token)".
func (p *Parser[T]) shift(newState int32, symbol SymCode, value T) error {
	if p.stack.wouldOverflow() {
		return p.overflow()
	}

	if ActCode(newState) > p.tables.MaxShift {
		newState = newState + int32(p.tables.MinReduce-p.tables.MinShiftReduce)
	}

	p.trace(trace.Event{Kind: trace.Shift, State: newState, Symbol: p.tokenName(symbol)})

	p.stack.push(frame[T]{state: newState, symbol: symbol, value: value})

	return nil
}

// reduceRule performs spec.md §4.E "Reduce(ruleNumber)".
func (p *Parser[T]) reduceRule(rule int) error {
	info := p.tables.RuleInfo[rule]

	dbg.AssertThat("stack depth", p.stack.Len()).GreaterThan(info.Nrhs).Panic()

	prevState := p.stack.frames[len(p.stack.frames)-1-info.Nrhs].state

	rhs := make([]T, info.Nrhs)
	for i := info.Nrhs - 1; i >= 0; i-- {
		rhs[i] = p.stack.pop().value
	}

	value := p.reduce(rule, rhs)

	a := p.findReduceAction(prevState, info.Lhs)

	p.trace(trace.Event{Kind: trace.Reduce, Rule: p.ruleName(rule)})

	if a == p.tables.AcceptAction {
		p.trace(trace.Event{Kind: trace.Accept})
		p.accept(value)

		return nil
	}

	p.stack.push(frame[T]{state: int32(a), symbol: info.Lhs, value: value})

	return nil
}

// accept implements spec.md §4.E "Accept": the stack is cleared and the
// parser is retired. value is the start symbol's semantic value, captured
// as Result() before the stack that held it is emptied.
func (p *Parser[T]) accept(value T) {
	p.result = value
	p.stack.clear()
	p.dead = true
}

// overflow implements spec.md §4.F stack-overflow handling.
func (p *Parser[T]) overflow() error {
	p.trace(trace.Event{Kind: trace.StackOverflow})

	p.stack.clear()
	p.dead = true

	if p.onStackOverflow != nil {
		p.onStackOverflow()
	}

	return lemonerr.NewErrStackOverflow(p.maxStackSize)
}

// handleError implements spec.md §4.F: first try the nearest enclosing
// error-capturing nonterminal, then fall back to OnSyntaxError. endOfInput
// is true when this error was raised while EndParsing fed the synthetic
// end-of-input symbol (spec.md §4.E "End of input"), in which case an
// uncaptured error reports as ErrUnexpectedEndOfInput rather than
// ErrUnexpectedToken (spec.md §7, §8 scenario 3) and there is no real next
// token to hand a capturer.
func (p *Parser[T]) handleError(token T, code TokenCode, endOfInput bool) error {
	if len(p.capturers) > 0 {
		for i := len(p.stack.frames) - 1; i >= 1; i-- {
			symbol := p.stack.frames[i].symbol

			capturer, ok := p.capturers[symbol]
			if !ok {
				continue
			}

			details := ErrorDetails[T]{
				Nonterminal: symbol,
				// The capturing nonterminal's own value, accumulated up
				// to this point, counts as the first resolved sub-symbol:
				// it is about to be discarded by the unwind below unless
				// the capturer folds it into its replacement value.
				Resolved: []T{p.stack.frames[i].value},
			}

			if !endOfInput {
				details.Next = &token
			}

			for j := i + 1; j < len(p.stack.frames); j++ {
				f := p.stack.frames[j]

				if int(f.symbol) < p.tables.NumTerminals {
					details.Unclaimed = append(details.Unclaimed, f.value)
				} else {
					details.Resolved = append(details.Resolved, f.value)
				}
			}

			value, captured := capturer.Capture(details)
			if !captured {
				continue
			}

			prevState := p.stack.frames[i-1].state

			p.stack.frames = p.stack.frames[:i]

			a := p.findReduceAction(prevState, symbol)

			if a == p.tables.AcceptAction {
				p.trace(trace.Event{Kind: trace.Accept})
				p.accept(value)

				return nil
			}

			p.stack.push(frame[T]{state: int32(a), symbol: symbol, value: value})

			return nil
		}
	}

	if p.onSyntaxError != nil {
		p.onSyntaxError(token, code)
	}

	if endOfInput {
		return lemonerr.NewErrUnexpectedEndOfInput(p.StackDepth())
	}

	var expected []string
	for i, name := range p.tables.TokenName {
		if name == "" {
			continue
		}

		if p.findShiftAction(p.stack.top().state, SymCode(i)) != p.tables.ErrorAction {
			expected = append(expected, name)
		}
	}

	return lemonerr.NewErrUnexpectedToken(stringerOf(token), uint16(code), expected...)
}

// stringerOf adapts an arbitrary semantic value to fmt.Stringer for error
// messages, falling back to fmt.Sprint when T does not implement it.
func stringerOf[T any](v T) fmt.Stringer {
	if s, ok := any(v).(fmt.Stringer); ok {
		return s
	}

	return plainStringer{v}
}

type plainStringer struct{ v any }

func (p plainStringer) String() string { return fmt.Sprint(p.v) }

// EndParsing signals end of input: the distinguished end symbol (code 0)
// is fed through the dispatch loop until accept or error (spec.md §4.E "End
// of input"). An error action that is not resolved by capture reports as
// *lemonerr.ErrUnexpectedEndOfInput with the number of non-sentinel frames
// still on the stack (spec.md §7, §8 scenario 3), not as
// *lemonerr.ErrUnexpectedToken — there is no real token to name.
func (p *Parser[T]) EndParsing() error {
	if p.dead {
		return nil
	}

	var zero T

	if err := p.consume(zero, 0, true); err != nil {
		return err
	}

	if p.dead {
		return nil
	}

	return lemonerr.NewErrUnexpectedEndOfInput(p.StackDepth())
}

// StackDepth returns the number of non-sentinel frames currently on the
// stack, useful for inspecting a parser that stopped on error (spec.md §8
// scenario 3).
func (p *Parser[T]) StackDepth() int {
	if p.stack.Len() == 0 {
		return 0
	}

	return p.stack.Len() - 1
}
