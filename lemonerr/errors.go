// Package lemonerr holds the error and position types shared by the
// top-level lemon package and lemon/lexing, following spec.md §7's error
// kind table.
package lemonerr

import (
	"fmt"
	"strconv"
	"strings"

	gcstr "github.com/PlayerR9/go-commons/strings"
)

// Position is the observable cursor of either the lexer or the parser at
// the moment an error was raised: the byte offset in the input, the byte
// offset at which the current line began, and a 1-based line number
// (spec.md §4.A "Position").
type Position struct {
	Offset    int
	LineStart int
	Line      int
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Offset-p.LineStart+1)
}

// ErrNoMatchingRule is raised by the lexer when, at some position, no
// configured rule matches (spec.md §7, "NoMatchingRuleAt").
type ErrNoMatchingRule struct {
	// At is the position at which no rule matched.
	At Position

	// Remaining is the input from At onward, for diagnostics. Error shows
	// at most its first 24 bytes.
	Remaining string
}

// Error implements the error interface.
func (e *ErrNoMatchingRule) Error() string {
	remaining := e.Remaining
	if len(remaining) > 24 {
		remaining = remaining[:24] + "..."
	}

	return fmt.Sprintf("no lexing rule matches at %s: %q", e.At, remaining)
}

// NewErrNoMatchingRule creates a new ErrNoMatchingRule. Never returns nil.
func NewErrNoMatchingRule(at Position, remaining string) *ErrNoMatchingRule {
	return &ErrNoMatchingRule{At: at, Remaining: remaining}
}

// ErrUnexpectedToken is raised when the action dispatcher returns the
// error action for the current lookahead token (spec.md §7,
// "UnexpectedToken").
type ErrUnexpectedToken[T fmt.Stringer] struct {
	// Token is the semantic value carried by the offending token.
	Token T

	// Code is the token's symbol code.
	Code uint16

	// Expected, when known, lists the token names the parser would have
	// accepted instead.
	Expected []string
}

// Error implements the error interface.
func (e *ErrUnexpectedToken[T]) Error() string {
	var builder strings.Builder

	builder.WriteString("unexpected token ")
	builder.WriteString(strconv.Quote(e.Token.String()))

	if len(e.Expected) > 0 {
		elems := append([]string(nil), e.Expected...)
		gcstr.QuoteStrings(elems)

		builder.WriteString(": expected ")
		builder.WriteString(gcstr.EitherOrString(elems))
	}

	return builder.String()
}

// NewErrUnexpectedToken creates a new ErrUnexpectedToken. Never returns nil.
func NewErrUnexpectedToken[T fmt.Stringer](token T, code uint16, expected ...string) *ErrUnexpectedToken[T] {
	return &ErrUnexpectedToken[T]{
		Token:    token,
		Code:     code,
		Expected: expected,
	}
}

// ErrUnexpectedEndOfInput is raised by EndParsing when feeding the
// end-of-input symbol does not lead to accept (spec.md §7,
// "UnexpectedEndOfInput"). It is never recoverable.
type ErrUnexpectedEndOfInput struct {
	// StackDepth is the number of non-sentinel frames left on the stack.
	StackDepth int
}

// Error implements the error interface.
func (e *ErrUnexpectedEndOfInput) Error() string {
	return fmt.Sprintf("unexpected end of input (%d frame(s) on the stack)", e.StackDepth)
}

// NewErrUnexpectedEndOfInput creates a new ErrUnexpectedEndOfInput. Never
// returns nil.
func NewErrUnexpectedEndOfInput(stackDepth int) *ErrUnexpectedEndOfInput {
	return &ErrUnexpectedEndOfInput{StackDepth: stackDepth}
}

// ErrStackOverflow is raised when a shift would push the parse stack past
// its configured maximum size (spec.md §7, "StackOverflow"). Once raised,
// the parser that produced it is dead: it never recovers.
type ErrStackOverflow struct {
	// MaxSize is the configured limit that was hit.
	MaxSize int
}

// Error implements the error interface.
func (e *ErrStackOverflow) Error() string {
	return fmt.Sprintf("parse stack overflow (max size %d)", e.MaxSize)
}

// NewErrStackOverflow creates a new ErrStackOverflow. Never returns nil.
func NewErrStackOverflow(maxSize int) *ErrStackOverflow {
	return &ErrStackOverflow{MaxSize: maxSize}
}

// ErrTableMalformed signals a structural defect in the generator-produced
// tables themselves: an action from findShiftAction (such as NoAction)
// that lies in none of the shift, shift-reduce, reduce, error or accept
// ranges (spec.md §7, "TableMalformed"). Fallback cycles and reduce goto
// misses are not reported with this type: they fail debug assertions
// (in NewParser's table validation and in the goto lookup) instead. This is
// always a bug in the table generator, never a recoverable runtime
// condition — callers that see this should treat the parser as unusable.
type ErrTableMalformed struct {
	Reason string
}

// Error implements the error interface.
func (e *ErrTableMalformed) Error() string {
	return fmt.Sprintf("malformed parser tables: %s", e.Reason)
}

// NewErrTableMalformed creates a new ErrTableMalformed. Never returns nil.
func NewErrTableMalformed(reason string) *ErrTableMalformed {
	return &ErrTableMalformed{Reason: reason}
}
