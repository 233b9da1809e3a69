package lemon

import "testing"

func minimalTables() *Tables[int] {
	return &Tables[int]{
		Action:           []ActCode{1, 2},
		Lookahead:        []SymCode{0, 1},
		ShiftOffset:      []int32{0},
		ReduceOffset:     []int32{0},
		Default:          []ActCode{0},
		RuleInfo:         []RuleInfo{{Lhs: 2, Nrhs: 1}},
		Fallback:         []SymCode{InvalidSymbolCode},
		TokenName:        []string{"A"},
		RuleName:         []string{"S -> A"},
		NumberOfStates:   1,
		NumberOfRules:    1,
		ShiftUseDefault:  -1,
		ReduceUseDefault: -1,
	}
}

func TestTablesValidateAcceptsMinimalTables(t *testing.T) {
	tb := minimalTables()

	if err := tb.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestTablesValidateRejectsMismatchedActionLookaheadLengths(t *testing.T) {
	tb := minimalTables()
	tb.Action = append(tb.Action, 3)

	if err := tb.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for mismatched Action/Lookahead lengths")
	}
}

func TestTablesValidateRejectsWrongShiftOffsetLength(t *testing.T) {
	tb := minimalTables()
	tb.ShiftOffset = nil

	if err := tb.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for wrong ShiftOffset length")
	}
}

func TestTablesValidateRejectsFallbackCycle(t *testing.T) {
	tb := minimalTables()
	tb.Fallback = []SymCode{1, 0}

	if err := tb.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for a fallback cycle")
	}
}

func TestTablesValidateAcceptsOneHopFallback(t *testing.T) {
	tb := minimalTables()
	tb.Fallback = []SymCode{1, InvalidSymbolCode}

	if err := tb.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil for a one-hop fallback", err)
	}
}

func TestTablesValidateRejectsNilTables(t *testing.T) {
	var tb *Tables[int]

	if err := tb.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for a nil *Tables")
	}
}
