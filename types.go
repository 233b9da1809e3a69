package lemon

// SymCode is an unsigned integer sized to hold the grammar's symbol count.
//
// Terminals occupy codes [0, numTerminals); non-terminals occupy
// [numTerminals, numSymbols). InvalidSymbolCode marks "no symbol" and is
// used as a sentinel in lookahead arrays and in the sentinel stack frame.
type SymCode uint16

// InvalidSymbolCode marks the absence of a symbol.
const InvalidSymbolCode SymCode = ^SymCode(0)

// TokenCode is the closed enumeration of terminal symbols a lexer emits.
// Its underlying value equals the SymCode of that terminal.
type TokenCode = SymCode

// ActCode is an unsigned integer large enough to encode every compressed
// action a Tables value can describe.
type ActCode uint32

// RuleInfo holds the metadata the engine needs to perform a reduce: the
// left-hand side symbol and the number of right-hand side symbols (frames)
// the rule pops.
type RuleInfo struct {
	// Lhs is the left-hand side non-terminal of the rule.
	Lhs SymCode

	// Nrhs is the number of right-hand side symbols of the rule.
	Nrhs int
}
