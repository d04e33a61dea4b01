// Package numtext converts between numbers and English text representations.
//
// The package provides conversion in both directions:
//
//   - Render turns a decimal digit string into English words.
//   - Parse turns English number text back into an integer.
//   - Convert inspects its input and does whichever of the two applies.
//
// Rendering follows a fixed grouping style: "and" joins a hundred to its
// remainder ("one hundred and five"), a comma precedes a remainder of one
// hundred or more after a larger denomination ("one thousand , two hundred
// and thirty-four"), and a trailing space is kept after "hundred" and
// after the leading denomination label ("one thousand ").
//
// Parse accepts hyphens, commas, the connector "and", and embedded digit
// literals ("20 thousand"). Words must be lowercase.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Values are limited to 0 through 10^18 - 1 (quadrillions).
//   - Negative and fractional numbers are not supported.
//   - Parse reads greedily with at most two tokens of lookahead; unusual
//     orderings such as "thousand one hundred" are rejected or misread.
package numtext

import (
	"fmt"
	"strconv"
	"strings"
)

// Form identifies which representation Convert produced.
type Form int

const (
	// FormText means the input was numeric and Result.Text holds its words.
	FormText Form = iota

	// FormNumber means the input was a phrase and Result.Value holds its value.
	FormNumber
)

// String returns the name of the form.
func (f Form) String() string {
	switch f {
	case FormText:
		return "text"
	case FormNumber:
		return "number"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// Result is the outcome of Convert.
type Result struct {
	Form  Form
	Text  string // Set when Form is FormText
	Value int64  // Set when Form is FormNumber
}

// String returns the converted representation.
func (r Result) String() string {
	if r.Form == FormNumber {
		return strconv.FormatInt(r.Value, 10)
	}
	return r.Text
}

// Render returns the English text for a non-negative decimal digit string.
// Leading zeros are ignored. "0" returns "zero".
//
// Returns ErrMalformedInput for empty or non-digit input and
// ErrUnsupportedMagnitude for values of 10^18 or more.
func Render(digits string) (string, error) {
	s, err := canonicalDigits(digits)
	if err != nil {
		return "", err
	}
	return render(s)
}

// RenderInt returns the English text for n.
// Negative n returns ErrMalformedInput.
func RenderInt(n int64) (string, error) {
	if n < 0 {
		return "", malformed("negative number %d", n)
	}
	return Render(strconv.FormatInt(n, 10))
}

// Tokenize splits an English number phrase into words. Hyphens and commas
// separate words; digit literals are replaced by their rendered words.
func Tokenize(phrase string) ([]string, error) {
	return tokenize(phrase)
}

// Parse converts English cardinal number text to an integer.
// Accepts "and" both inside hundreds ("one hundred and two thousand") and
// between groups ("one thousand and five").
//
// Returns an *UnknownWordError (matching ErrUnknownWord) for words outside
// the vocabulary, ErrMalformedInput for empty or structurally invalid
// phrases, and ErrUnsupportedMagnitude when the value reaches 10^18.
func Parse(phrase string) (int64, error) {
	return parse(phrase)
}

// Convert renders input if it is a decimal digit string and parses it
// otherwise. Surrounding whitespace is ignored.
func Convert(input string) (Result, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Result{}, malformed("empty input")
	}

	if allDigits(s) {
		text, err := Render(s)
		if err != nil {
			return Result{}, err
		}
		return Result{Form: FormText, Text: text}, nil
	}

	if (s[0] == '-' || s[0] == '+') && allDigits(s[1:]) {
		return Result{}, malformed("signed number %q, only unsigned integers are supported", s)
	}

	v, err := parse(s)
	if err != nil {
		return Result{}, err
	}
	return Result{Form: FormNumber, Value: v}, nil
}
