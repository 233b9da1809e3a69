package lemon

import (
	"fmt"

	dbg "github.com/PlayerR9/go-debug/assert"
)

// Tables is the immutable, generator-produced description of a LALR(1)
// automaton: the compressed action table plus the control constants that
// partition the ActCode space (spec.md §3, "Action code").
//
// A Tables value never changes after construction. It may be shared, by
// reference, across any number of Parser instances and goroutines — it
// owns no mutable state.
type Tables[T any] struct {
	// Action and Lookahead are the parallel compressed action-table arrays:
	// for a hit at index i, Lookahead[i] is the queried symbol and
	// Action[i] is the resulting action.
	Action    []ActCode
	Lookahead []SymCode

	// ShiftOffset and ReduceOffset are, per state, the base offset into
	// Action/Lookahead for that state's shift/reduce row. A ShiftOffset
	// equal to ShiftUseDefault means "no row; use Default[state]".
	ShiftOffset  []int32
	ReduceOffset []int32

	// Default is the fallback action per state, used when no row lookup
	// hits.
	Default []ActCode

	// RuleInfo carries, per rule, the left-hand side symbol and the number
	// of right-hand side symbols to pop on reduce.
	RuleInfo []RuleInfo

	// Fallback maps a terminal to the terminal to retry as, or
	// InvalidSymbolCode ("no fallback"). No fallback chain may contain a
	// cycle: if Fallback[t] = u and u != InvalidSymbolCode, Fallback[u]
	// must be InvalidSymbolCode (spec.md invariant 4).
	Fallback []SymCode

	// Wildcard is the distinguished terminal that matches anywhere a
	// literal terminal does not, if the grammar declares one.
	Wildcard *SymCode

	// TokenName and RuleName are string tables for tracing.
	TokenName []string
	RuleName  []string

	// MaxShift, MinShiftReduce, MaxShiftReduce, MinReduce and MaxReduce
	// partition the ActCode space (spec.md §3):
	//
	//	[0, MaxShift]                         shift to state = action
	//	[MinShiftReduce, MaxShiftReduce]      shift then reduce rule (action - MinShiftReduce)
	//	[MinReduce, MaxReduce]                reduce rule (action - MinReduce)
	MaxShift       ActCode
	MinShiftReduce ActCode
	MaxShiftReduce ActCode
	MinReduce      ActCode
	MaxReduce      ActCode

	// ErrorAction, AcceptAction and NoAction are the three distinguished
	// scalar actions.
	ErrorAction  ActCode
	AcceptAction ActCode
	NoAction     ActCode

	// ShiftUseDefault is the sentinel ShiftOffset meaning "no shift row for
	// this state; consult Default directly". ReduceUseDefault is not
	// consulted: the goto lookup after a reduce always reads
	// ReduceOffset[state] and asserts that it hits.
	ShiftUseDefault  int32
	ReduceUseDefault int32

	// NumberOfStates and NumberOfRules are the sizes of the automaton.
	NumberOfStates int
	NumberOfRules  int

	// NumTerminals is the boundary between terminal and non-terminal
	// SymCode values: terminals occupy [0, NumTerminals), non-terminals
	// occupy [NumTerminals, numSymbols) (spec.md §3, "Symbol code").
	NumTerminals int
}

// Validate checks the structural invariants a generator is required to
// uphold that can be verified statically (spec.md §3 "Invariants" 4 and 5):
// Action and Lookahead have the same length, the per-state and per-rule
// arrays have NumberOfStates and NumberOfRules entries, and no fallback
// chain is longer than one hop. It does not (cannot) verify semantic
// correctness of the automaton — only shape.
func (t *Tables[T]) Validate() error {
	if t == nil {
		return fmt.Errorf("tables must not be nil")
	}

	if len(t.Action) != len(t.Lookahead) {
		return fmt.Errorf("action and lookahead tables have different lengths: %d != %d", len(t.Action), len(t.Lookahead))
	}

	if len(t.ShiftOffset) != t.NumberOfStates {
		return fmt.Errorf("shiftOffset has %d entries, want %d (NumberOfStates)", len(t.ShiftOffset), t.NumberOfStates)
	}

	if len(t.ReduceOffset) != t.NumberOfStates {
		return fmt.Errorf("reduceOffset has %d entries, want %d (NumberOfStates)", len(t.ReduceOffset), t.NumberOfStates)
	}

	if len(t.Default) != t.NumberOfStates {
		return fmt.Errorf("default has %d entries, want %d (NumberOfStates)", len(t.Default), t.NumberOfStates)
	}

	if len(t.RuleInfo) != t.NumberOfRules {
		return fmt.Errorf("ruleInfo has %d entries, want %d (NumberOfRules)", len(t.RuleInfo), t.NumberOfRules)
	}

	for terminal, fb := range t.Fallback {
		if fb == InvalidSymbolCode {
			continue
		}

		next := t.Fallback[fb]
		if next != InvalidSymbolCode {
			return fmt.Errorf("fallback cycle: terminal %d -> %d -> %d", terminal, fb, next)
		}
	}

	return nil
}

// mustValidate is called once by NewParser; a malformed Tables value is a
// bug in the (external) generator, never a recoverable runtime condition.
func (t *Tables[T]) mustValidate() {
	err := t.Validate()
	dbg.AssertErr(err, "tables.Validate()")
}
