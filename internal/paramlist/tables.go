// Package paramlist is a second hand-built fixture, alongside
// internal/arith, exercising the part of the runtime arith's grammar never
// touches: error-capture (spec.md §4.F, §8 scenario 5). Its grammar is a
// parenthesized, comma-separated name list —
//
//	S -> '(' L ')'
//	L -> P | L ',' P
//	P -> NAME
//
// — deliberately small, but shaped the same way the spec's function-header
// example is: a left-recursive list nonterminal (L) that can already hold
// one or more resolved entries by the time a later entry fails to parse,
// so the failing entry's position can be replaced with a placeholder while
// the entries already reduced survive (spec.md §9 "Error-capture
// protocol").
package paramlist

import "github.com/PlayerR9/lemon"

// Token codes.
const (
	EOF lemon.TokenCode = iota
	LPAREN
	RPAREN
	COMMA
	NAME
	// BOGUS is any terminal with no production in this grammar — it stands
	// in for the spec's "Bogus" malformed type name, forcing an error
	// wherever a NAME is expected.
	BOGUS

	NumTerminals = int(BOGUS) + 1
)

const (
	symS = lemon.SymCode(NumTerminals) + iota
	symL
	symP
)

const (
	ruleSIsParenL = iota
	ruleLIsP
	ruleLIsLCommaP
	rulePIsName
)

const (
	numStates = 8
	numRules  = 4
	numSyms   = int(symP) + 1

	actMaxShift       lemon.ActCode = numStates - 1
	actMinShiftReduce lemon.ActCode = numStates
	actMaxShiftReduce lemon.ActCode = numStates - 1 // unused by this grammar
	actMinReduce      lemon.ActCode = numStates
	actMaxReduce      lemon.ActCode = actMinReduce + numRules - 1
	actError          lemon.ActCode = actMaxReduce + 1
	actAccept         lemon.ActCode = actError + 1
	actNoAction       lemon.ActCode = actAccept + 1
)

type stateRow struct {
	shift [numSyms]lemon.ActCode
	goTo  [numSyms]lemon.ActCode
	dflt  lemon.ActCode
}

// rows mirrors, state by state, the item sets for:
//
//	I0: . S                    (shift '(' -> I1)
//	I1: '(' . L ')', '(' . P   (shift NAME -> I2; goto P -> I3; goto L -> I4)
//	I2: NAME .                 (reduce P -> NAME)
//	I3: P .                    (reduce L -> P)
//	I4: '(' L . ')', L . ',' P (shift ')' -> I5; shift ',' -> I6)
//	I5: '(' L ')' .            (reduce S -> '(' L ')', goes to accept)
//	I6: L ',' . P              (shift NAME -> I2; goto P -> I7)
//	I7: L ',' P .              (reduce L -> L ',' P)
var rows = [numStates]stateRow{
	0: {shift: row{LPAREN: 1}, dflt: actError},
	1: {shift: row{NAME: 2}, goTo: row{symP: 3, symL: 4}, dflt: actError},
	2: {dflt: actMinReduce + rulePIsName},
	3: {dflt: actMinReduce + ruleLIsP},
	4: {shift: row{RPAREN: 5, COMMA: 6}, dflt: actError},
	5: {dflt: actMinReduce + ruleSIsParenL},
	6: {shift: row{NAME: 2}, goTo: row{symP: 7}, dflt: actError},
	7: {dflt: actMinReduce + ruleLIsLCommaP},
}

type row = [numSyms]lemon.ActCode

var ruleInfo = [numRules]lemon.RuleInfo{
	ruleSIsParenL:  {Lhs: symS, Nrhs: 3},
	ruleLIsP:       {Lhs: symL, Nrhs: 1},
	ruleLIsLCommaP: {Lhs: symL, Nrhs: 3},
	rulePIsName:    {Lhs: symP, Nrhs: 1},
}

var tokenNames = [numSyms]string{
	EOF: "EOF", LPAREN: "'('", RPAREN: "')'", COMMA: "','", NAME: "NAME", BOGUS: "BOGUS",
	symS: "S", symL: "L", symP: "P",
}

var ruleNames = [numRules]string{
	ruleSIsParenL:  "S -> '(' L ')'",
	ruleLIsP:       "L -> P",
	ruleLIsLCommaP: "L -> L ',' P",
	rulePIsName:    "P -> NAME",
}

// Goto-from-state-0-on-S is handled specially: accept fires the moment
// reduceRule resolves the start symbol's goto, per spec.md §4.E "if a ==
// acceptAction -> Accept." Encoding it as a distinguished goTo entry (as
// opposed to arith's shift-to-accept on EOF) demonstrates the other path
// spec.md allows to Accept.
func init() {
	rows[0].goTo[symS] = actAccept
}

// buildTables flattens rows the same way internal/arith/tables.go does.
func buildTables() *lemon.Tables[any] {
	shiftSection := numStates * numSyms
	total := 2 * shiftSection

	action := make([]lemon.ActCode, total)
	lookahead := make([]lemon.SymCode, total)

	for i := range lookahead {
		lookahead[i] = lemon.InvalidSymbolCode
		action[i] = actNoAction
	}

	shiftOffset := make([]int32, numStates)
	reduceOffset := make([]int32, numStates)
	dflt := make([]lemon.ActCode, numStates)

	fallback := make([]lemon.SymCode, NumTerminals)
	for i := range fallback {
		fallback[i] = lemon.InvalidSymbolCode
	}

	for s, r := range rows {
		shiftBase := s * numSyms
		gotoBase := shiftSection + s*numSyms

		shiftOffset[s] = int32(shiftBase)
		reduceOffset[s] = int32(gotoBase)
		dflt[s] = r.dflt

		for sym := 0; sym < numSyms; sym++ {
			if a := r.shift[sym]; a != 0 {
				lookahead[shiftBase+sym] = lemon.SymCode(sym)
				action[shiftBase+sym] = a
			}

			if a := r.goTo[sym]; a != 0 {
				lookahead[gotoBase+sym] = lemon.SymCode(sym)
				action[gotoBase+sym] = a
			}
		}
	}

	return &lemon.Tables[any]{
		Action:           action,
		Lookahead:        lookahead,
		ShiftOffset:      shiftOffset,
		ReduceOffset:     reduceOffset,
		Default:          dflt,
		RuleInfo:         ruleInfo[:],
		Fallback:         fallback,
		TokenName:        tokenNames[:],
		RuleName:         ruleNames[:],
		MaxShift:         actMaxShift,
		MinShiftReduce:   actMinShiftReduce,
		MaxShiftReduce:   actMaxShiftReduce,
		MinReduce:        actMinReduce,
		MaxReduce:        actMaxReduce,
		ErrorAction:      actError,
		AcceptAction:     actAccept,
		NoAction:         actNoAction,
		ShiftUseDefault:  -1,
		ReduceUseDefault: -1,
		NumberOfStates:   numStates,
		NumberOfRules:    numRules,
		NumTerminals:     NumTerminals,
	}
}
