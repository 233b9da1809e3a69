/*
Lemondemo evaluates arithmetic expressions using the lemon runtime's
arithmetic fixture (internal/arith), with tracing optionally switched on.

It is not the grammar generator/CLI spec.md places out of scope (§1,
"the CLI that wires lexer to parser" as an external collaborator) — the
tables it drives are hand-built Go data, not generator output. It exists
to give the runtime a realistic end-to-end caller: tokenize an input line,
feed every token to Parser.Consume, call EndParsing, print the result.

Usage:

	lemondemo [-trace] "1 + 2 * 3"
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/PlayerR9/lemon"
	"github.com/PlayerR9/lemon/internal/arith"
	"github.com/PlayerR9/lemon/lemonerr"
	"github.com/PlayerR9/lemon/trace"
)

func main() {
	traceFlag := flag.Bool("trace", false, "print shift/reduce/fallback/wildcard/accept events as they happen")
	flag.Parse()

	expr := strings.Join(flag.Args(), " ")
	if expr == "" {
		fmt.Fprintln(os.Stderr, "usage: lemondemo [-trace] EXPRESSION")
		os.Exit(2)
	}

	var opts []lemon.Option[int]
	if *traceFlag {
		opts = append(opts, lemon.WithTracer[int](trace.NewWriter(os.Stdout)))
	}

	result, err := arith.Parse(expr, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lemondemo: %s\n", err)

		var noMatch *lemonerr.ErrNoMatchingRule
		if errors.As(err, &noMatch) {
			fmt.Fprintln(os.Stderr, lemonerr.Excerpt(expr, noMatch.At))
		}

		os.Exit(1)
	}

	fmt.Println(result)
}
