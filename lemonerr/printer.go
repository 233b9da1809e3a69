package lemonerr

import (
	"strings"

	gcby "github.com/PlayerR9/go-commons/bytes"
)

// Excerpt renders a one-line, caret-annotated view of the source line
// containing pos, the way the teacher's errors/printer.go's
// PrintSyntaxError boxes the faulty line around a lexing error: the line
// itself, then a second line of spaces and a caret under the offending
// byte. Unlike the teacher's version this carries no PrintOption knobs
// (no multi-line context, no tab-width arrow) — spec.md's Position is a
// single (offset, lineStart, line) triple with no end-of-line boundary of
// its own, so Excerpt locates the end of line by forward-searching data
// for the next newline past pos.Offset with gcby.ForwardSearch, falling
// back to the end of data when pos is on the last line.
func Excerpt(data string, pos Position) string {
	if data == "" || pos.LineStart > len(data) {
		return ""
	}

	end := gcby.ForwardSearch([]byte(data), pos.Offset, gcby.Newline)
	if end == -1 {
		end = len(data)
	}

	line := data[pos.LineStart:end]

	col := pos.Offset - pos.LineStart

	var b strings.Builder

	b.WriteString(line)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", col))
	b.WriteByte('^')

	return b.String()
}
