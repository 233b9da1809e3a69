package lemon_test

import (
	"reflect"
	"testing"

	"github.com/PlayerR9/lemon"
	"github.com/PlayerR9/lemon/internal/paramlist"
)

func TestParamListWithoutCapturerAbortsOnMalformedEntry(t *testing.T) {
	_, err := paramlist.Parse("(a, 9)")
	if err == nil {
		t.Fatal("Parse(\"(a, 9)\") = nil error, want a syntax error (no capturer registered)")
	}
}

func TestParamListCapturerReplacesMalformedEntry(t *testing.T) {
	got, err := paramlist.Parse("(a, 9)", lemon.WithCapturer(paramlist.List, paramlist.Placeholder))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := []string{"a", "<invalid>"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParamListCapturerLeavesEarlierAndLaterEntriesIntact(t *testing.T) {
	got, err := paramlist.Parse("(a, b, 9, c)", lemon.WithCapturer(paramlist.List, paramlist.Placeholder))

	// The malformed entry (9) swallows only the token that triggered the
	// error; parsing resumes cleanly at the following comma, so the entry
	// after it ("c") still parses as usual.
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := []string{"a", "b", "<invalid>", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParamListSimpleList(t *testing.T) {
	got, err := paramlist.Parse("(alpha, beta, gamma)")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
