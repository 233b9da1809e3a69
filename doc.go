// Package lemon is the runtime core of a LALR(1) parser framework derived
// from the Lemon parser generator.
//
// It executes a table-driven LALR(1) automaton: the tables themselves
// (action/lookahead/goto, rule metadata, fallback and wildcard terminals)
// are produced by an external grammar generator, out of scope here. Package
// lemon only consumes those tables to drive shift, reduce, shift-reduce and
// accept over a parse stack, leaving semantic actions to a grammar-supplied
// Reducer.
//
// Package lemon/lexing provides the companion rule-based lexer that turns
// an input string into the token stream consumed by Parser.Consume.
package lemon
