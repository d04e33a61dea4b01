package numtext

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by this package wraps exactly one
// of them and can be matched with errors.Is.
var (
	// ErrMalformedInput reports empty input, a numeric string with non-digit
	// characters, or a phrase whose structure cannot be read.
	ErrMalformedInput = errors.New("numtext: malformed input")

	// ErrUnknownWord reports a token that is not a number word, a
	// denomination label, or "and".
	ErrUnknownWord = errors.New("numtext: unknown word")

	// ErrUnsupportedMagnitude reports a value of 10^18 or more.
	ErrUnsupportedMagnitude = errors.New("numtext: unsupported magnitude")
)

// UnknownWordError describes a token the parser could not interpret.
type UnknownWordError struct {
	Word       string // The offending token
	Index      int    // Position of the token in the tokenized phrase
	Suggestion string // Closest known word, or "" when nothing is close
}

func (e *UnknownWordError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("numtext: unknown word %q at token %d (did you mean %q?)", e.Word, e.Index, e.Suggestion)
	}
	return fmt.Sprintf("numtext: unknown word %q at token %d", e.Word, e.Index)
}

func (e *UnknownWordError) Unwrap() error { return ErrUnknownWord }

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrMalformedInput}, args...)...)
}

func tooLarge(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUnsupportedMagnitude}, args...)...)
}
