// Package arith wires a small, hand-built arithmetic grammar (`+ - * /`
// over integer literals, with the usual precedence) to the lemon runtime.
// It exists purely as the fixture the root package's integration tests and
// the lemondemo command exercise — not a generator: every table here is
// literal Go data laid out by hand from the grammar's LALR(1) automaton,
// exactly the "tables are generator output, supplied as data" contract the
// runtime expects.
package arith

import "github.com/PlayerR9/lemon"

// Token codes. Symbol codes after NumTerminals are non-terminals.
const (
	EOF lemon.TokenCode = iota
	NUM
	PLUS
	MINUS
	STAR
	SLASH

	NumTerminals = int(SLASH) + 1
)

const (
	symE = lemon.SymCode(NumTerminals) + iota
	symT
	symF
)

// Rule numbers, matching RuleInfo's index and the reduce dispatch in
// reduce.go.
const (
	ruleEPlusT = iota
	ruleEMinusT
	ruleEIsT
	ruleTStarF
	ruleTSlashF
	ruleTIsF
	ruleFIsNum
)

const (
	numStates = 13
	numRules  = 7
	numSyms   = int(symF) + 1

	actMaxShift       lemon.ActCode = numStates - 1
	actMinShiftReduce lemon.ActCode = numStates
	actMaxShiftReduce lemon.ActCode = numStates - 1 // empty range: unused by this grammar
	actMinReduce      lemon.ActCode = numStates
	actMaxReduce      lemon.ActCode = actMinReduce + numRules - 1
	actError          lemon.ActCode = actMaxReduce + 1
	actAccept         lemon.ActCode = actError + 1
	actNoAction       lemon.ActCode = actAccept + 1
)

// stateRow describes one automaton state's shift row and goto row, both
// indexed by symbol code within a dense, per-state window of width
// numSyms — wasteful compared to a real generator's row-displacement
// compression, but trivial to hand-verify against the LALR(1) item sets
// it was derived from, which is all a fixture needs.
type stateRow struct {
	shift [numSyms]lemon.ActCode // 0 == no entry (NoAction sentinel below)
	goTo  [numSyms]lemon.ActCode
	dflt  lemon.ActCode
}

// rows mirrors, state by state, the canonical LR(0) item sets for:
//
//	E -> E '+' T | E '-' T | T
//	T -> T '*' F | T '/' F | F
//	F -> NUM
//
// States 0-12 correspond to item sets I0-I12 as derived from the grammar's
// closure/goto construction.
var rows = [numStates]stateRow{
	0: {shift: shiftRow{NUM: 4}, goTo: gotoRow{symE: 1, symT: 2, symF: 3}, dflt: actError},
	1: {shift: shiftRow{EOF: actAccept, PLUS: 5, MINUS: 6}, dflt: actError},
	2: {shift: shiftRow{STAR: 7, SLASH: 8}, dflt: actMinReduce + ruleEIsT},
	3: {dflt: actMinReduce + ruleTIsF},
	4: {dflt: actMinReduce + ruleFIsNum},
	5: {shift: shiftRow{NUM: 4}, goTo: gotoRow{symT: 9, symF: 3}, dflt: actError},
	6: {shift: shiftRow{NUM: 4}, goTo: gotoRow{symT: 10, symF: 3}, dflt: actError},
	7: {shift: shiftRow{NUM: 4}, goTo: gotoRow{symF: 11}, dflt: actError},
	8: {shift: shiftRow{NUM: 4}, goTo: gotoRow{symF: 12}, dflt: actError},
	9: {shift: shiftRow{STAR: 7, SLASH: 8}, dflt: actMinReduce + ruleEPlusT},
	10: {shift: shiftRow{STAR: 7, SLASH: 8}, dflt: actMinReduce + ruleEMinusT},
	11: {dflt: actMinReduce + ruleTStarF},
	12: {dflt: actMinReduce + ruleTSlashF},
}

// shiftRow and gotoRow are sparse-by-construction helpers: zero means "no
// entry", so every real action in rows above is listed with an explicit key.
type shiftRow = [numSyms]lemon.ActCode
type gotoRow = [numSyms]lemon.ActCode

var ruleInfo = [numRules]lemon.RuleInfo{
	ruleEPlusT:  {Lhs: symE, Nrhs: 3},
	ruleEMinusT: {Lhs: symE, Nrhs: 3},
	ruleEIsT:    {Lhs: symE, Nrhs: 1},
	ruleTStarF:  {Lhs: symT, Nrhs: 3},
	ruleTSlashF: {Lhs: symT, Nrhs: 3},
	ruleTIsF:    {Lhs: symT, Nrhs: 1},
	ruleFIsNum:  {Lhs: symF, Nrhs: 1},
}

var tokenNames = [numSyms]string{
	EOF: "EOF", NUM: "NUM", PLUS: "'+'", MINUS: "'-'", STAR: "'*'", SLASH: "'/'",
	symE: "E", symT: "T", symF: "F",
}

var ruleNames = [numRules]string{
	ruleEPlusT:  "E -> E '+' T",
	ruleEMinusT: "E -> E '-' T",
	ruleEIsT:    "E -> T",
	ruleTStarF:  "T -> T '*' F",
	ruleTSlashF: "T -> T '/' F",
	ruleTIsF:    "T -> F",
	ruleFIsNum:  "F -> NUM",
}

// buildTables flattens rows into the shared, offset-addressed parallel
// arrays lemon.Tables expects. Every state gets its own numSyms-wide
// window in both the shift and goto sections so that no two states' rows
// can ever collide at a shared array index, regardless of which symbol is
// queried against it.
func buildTables() *lemon.Tables[int] {
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

	for s, row := range rows {
		shiftBase := s * numSyms
		gotoBase := shiftSection + s*numSyms

		shiftOffset[s] = int32(shiftBase)
		reduceOffset[s] = int32(gotoBase)
		dflt[s] = row.dflt

		for sym := 0; sym < numSyms; sym++ {
			if a := row.shift[sym]; a != 0 {
				lookahead[shiftBase+sym] = lemon.SymCode(sym)
				action[shiftBase+sym] = a
			}

			if a := row.goTo[sym]; a != 0 {
				lookahead[gotoBase+sym] = lemon.SymCode(sym)
				action[gotoBase+sym] = a
			}
		}
	}

	return &lemon.Tables[int]{
		Action:           action,
		Lookahead:        lookahead,
		ShiftOffset:      shiftOffset,
		ReduceOffset:     reduceOffset,
		Default:          dflt,
		RuleInfo:         ruleInfo[:],
		Fallback:         fallback,
		Wildcard:         nil,
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
