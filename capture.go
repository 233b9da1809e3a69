package lemon

// ErrorDetails is the information handed to an ErrorCapturer when the
// dispatcher returns the error action and a frame on the stack holds a
// nonterminal that declared itself error-capturing (spec.md §4.F, §9
// "Error-capture protocol").
type ErrorDetails[T any] struct {
	// Nonterminal is the symbol that is attempting to absorb the error.
	Nonterminal SymCode

	// Resolved holds the semantic values of the nonterminal frames from
	// Nonterminal's own frame up to the top of the stack, oldest first. Its
	// first element is always Nonterminal's own value as accumulated so far.
	// These frames are discarded if the capture succeeds, so that value is
	// lost unless the capturer folds it into its replacement.
	Resolved []T

	// Unclaimed holds the terminal frames above Nonterminal's frame (tokens
	// that were shifted but never reduced), in the order they were shifted.
	Unclaimed []T

	// Next is the lookahead token that triggered the error, if any token
	// was available.
	Next *T
}

// ErrorCapturer lets a grammar declare that a given nonterminal can absorb
// a syntax error as a placeholder value instead of aborting the parse.
// spec.md models this as a single-method interface returning a tagged
// {CaptureAs(value) | Propagate}; here that tag is the boolean return.
type ErrorCapturer[T any] interface {
	// Capture is invoked with the details of the error. It returns the
	// placeholder value to push as the nonterminal's semantic value and
	// true, or a zero value and false to decline. A declined error is
	// offered to the next error-capturing frame further down the stack, and
	// goes to OnSyntaxError only when no capturer accepts it.
	Capture(details ErrorDetails[T]) (value T, captured bool)
}

// CapturerFunc adapts a plain function to ErrorCapturer.
type CapturerFunc[T any] func(details ErrorDetails[T]) (T, bool)

// Capture implements ErrorCapturer.
func (f CapturerFunc[T]) Capture(details ErrorDetails[T]) (T, bool) {
	return f(details)
}
