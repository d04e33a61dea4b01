// Number-to-text rendering for English cardinal numbers.
package numtext

import (
	"strconv"
	"strings"
)

const growRender = 96 // estimated bytes for an 18-digit rendering

// canonicalDigits validates s as an unsigned decimal literal and strips its
// leading zeros. "0" and "000" both become "0".
func canonicalDigits(s string) (string, error) {
	if s == "" {
		return "", malformed("empty number")
	}
	if !allDigits(s) {
		return "", malformed("%q is not a decimal number", s)
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0", nil
	}
	if len(s) > maxDigits {
		return "", tooLarge("%d digits, at most %d are supported", len(s), maxDigits)
	}
	return s, nil
}

// render converts a string of at most maxDigits ASCII digits to English.
// Callers pass digits produced by canonicalDigits or by render itself.
func render(digits string) (string, error) {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return "", malformed("%q is not a decimal number", digits)
	}
	if w, ok := wordsByValue[n]; ok {
		return w, nil
	}

	switch {
	case len(digits) < groupSize:
		// Two digits, not an exact ten: "twenty-one".
		tens := wordsByValue[int64(digits[0]-'0')*10]
		ones := wordsByValue[int64(digits[1]-'0')]
		return tens + "-" + ones, nil
	case len(digits) == groupSize:
		return renderHundreds(digits, n)
	default:
		return renderGroups(digits)
	}
}

// renderHundreds converts a three-digit string whose value is n.
// A leading zero drops the "hundred" part entirely.
func renderHundreds(digits string, n int64) (string, error) {
	lead := digits[0]
	rem := n - int64(lead-'0')*100

	var b strings.Builder
	if lead != '0' {
		b.WriteString(wordsByValue[int64(lead-'0')])
		b.WriteString(" " + wordHundred + " ")
	}

	if rem != 0 {
		if lead != '0' {
			b.WriteString(wordAnd + " ")
		}
		text, err := render(strconv.FormatInt(rem, 10))
		if err != nil {
			return "", err
		}
		b.WriteString(text)
	}

	return b.String(), nil
}

// renderGroups converts a number of four or more digits. The string is
// left-padded to a multiple of three; the leading group carries the label
// for that width and the remainder is rendered recursively.
func renderGroups(digits string) (string, error) {
	width := len(digits)
	if r := width % groupSize; r != 0 {
		width += groupSize - r
		digits = strings.Repeat("0", width-len(digits)) + digits
	}

	label, ok := labelsByWidth[width]
	if !ok {
		return "", tooLarge("no denomination for a %d-digit number", width)
	}

	head, err := render(digits[:groupSize])
	if err != nil {
		return "", err
	}

	rem, err := strconv.ParseInt(digits[groupSize:], 10, 64)
	if err != nil {
		return "", malformed("%q is not a decimal number", digits)
	}

	var b strings.Builder
	b.Grow(growRender)
	b.WriteString(head)
	b.WriteByte(' ')
	b.WriteString(label)
	b.WriteByte(' ')

	switch {
	case rem >= 100:
		b.WriteString(", ")
	case rem != 0:
		b.WriteString(wordAnd + " ")
	default:
		return b.String(), nil
	}

	tail, err := render(strconv.FormatInt(rem, 10))
	if err != nil {
		return "", err
	}
	b.WriteString(tail)

	return b.String(), nil
}

// allDigits reports whether s consists entirely of ASCII digit characters.
// An empty string returns false.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
