package lemon

import "github.com/PlayerR9/lemon/trace"

// Option configures a Parser at construction time, following the
// functional-options idiom the teacher already uses for its lexer
// (lexing.WithLexFunc) and its error printer (errors.WithDelta, ...).
type Option[T any] func(p *Parser[T])

// WithMaxStackSize bounds the parse stack to n frames, sentinel included.
// n <= 0 means unbounded (the default). Exceeding the bound triggers
// stack-overflow handling (spec.md §4.B).
func WithMaxStackSize[T any](n int) Option[T] {
	return func(p *Parser[T]) {
		p.maxStackSize = n
	}
}

// WithOnSyntaxError registers the hook invoked when a syntax error is not
// captured by any ErrorCapturer (spec.md §4.F).
func WithOnSyntaxError[T any](f func(token T, code TokenCode)) Option[T] {
	return func(p *Parser[T]) {
		p.onSyntaxError = f
	}
}

// WithOnStackOverflow registers the hook invoked exactly once when the
// stack overflows (spec.md §4.B, §7).
func WithOnStackOverflow[T any](f func()) Option[T] {
	return func(p *Parser[T]) {
		p.onStackOverflow = f
	}
}

// WithTracer enables tracing through t (spec.md §6). Passing a nil Tracer
// disables tracing again.
func WithTracer[T any](t trace.Tracer) Option[T] {
	return func(p *Parser[T]) {
		p.tracer = t
	}
}

// WithCapturer declares nonterminal as error-capturing via c (spec.md §4.F,
// §9 "Error-capture protocol").
func WithCapturer[T any](nonterminal SymCode, c ErrorCapturer[T]) Option[T] {
	return func(p *Parser[T]) {
		if p.capturers == nil {
			p.capturers = make(map[SymCode]ErrorCapturer[T])
		}

		p.capturers[nonterminal] = c
	}
}
