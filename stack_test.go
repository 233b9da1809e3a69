package lemon

import "testing"

func TestStackStartsWithSentinelFrame(t *testing.T) {
	s := newStack[int](0)

	if got := s.Len(); got != 1 {
		t.Fatalf("got Len() = %d, want 1", got)
	}

	top := s.top()
	if top.state != 0 || top.symbol != InvalidSymbolCode {
		t.Errorf("got sentinel %+v, want state 0, symbol InvalidSymbolCode", top)
	}
}

func TestStackPushPopRoundTrips(t *testing.T) {
	s := newStack[int](0)

	s.push(frame[int]{state: 4, symbol: 1, value: 42})

	if got := s.Len(); got != 2 {
		t.Fatalf("got Len() = %d, want 2", got)
	}

	popped := s.pop()
	if popped.state != 4 || popped.value != 42 {
		t.Errorf("got %+v, want state 4, value 42", popped)
	}

	if got := s.Len(); got != 1 {
		t.Errorf("got Len() = %d after pop, want 1 (sentinel remains)", got)
	}
}

func TestStackWouldOverflowRespectsMaxSize(t *testing.T) {
	s := newStack[int](2)

	if s.wouldOverflow() {
		t.Fatalf("wouldOverflow() true at Len()=1, maxSize=2")
	}

	s.push(frame[int]{state: 1})

	if !s.wouldOverflow() {
		t.Errorf("wouldOverflow() false at Len()=2, maxSize=2, want true")
	}
}

func TestStackUnboundedNeverOverflows(t *testing.T) {
	s := newStack[int](0)

	for i := 0; i < 1000; i++ {
		if s.wouldOverflow() {
			t.Fatalf("wouldOverflow() true with maxSize=0 (unbounded) at Len()=%d", s.Len())
		}

		s.push(frame[int]{state: int32(i)})
	}
}

func TestStackClearEmptiesEverythingIncludingSentinel(t *testing.T) {
	s := newStack[int](0)
	s.push(frame[int]{state: 1})
	s.push(frame[int]{state: 2})

	s.clear()

	if got := s.Len(); got != 0 {
		t.Errorf("got Len() = %d after clear, want 0", got)
	}
}
