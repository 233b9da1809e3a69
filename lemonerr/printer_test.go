package lemonerr

import "testing"

func TestExcerptPointsAtTheOffendingByte(t *testing.T) {
	data := "1 + 2\n3 @ 4\n5 + 6"

	pos := Position{Offset: 8, LineStart: 6, Line: 2}

	want := "3 @ 4\n  ^"
	if got := Excerpt(data, pos); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExcerptOnLastLineWithoutTrailingNewline(t *testing.T) {
	data := "1 + 2\n3 @ 4"

	pos := Position{Offset: 8, LineStart: 6, Line: 2}

	want := "3 @ 4\n  ^"
	if got := Excerpt(data, pos); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExcerptEmptyDataReturnsEmptyString(t *testing.T) {
	if got := Excerpt("", Position{}); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}
