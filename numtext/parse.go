// Text-to-number parsing for English cardinal text.
package numtext

import "strings"

// parse converts English cardinal number text to int64.
func parse(phrase string) (int64, error) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return 0, malformed("empty phrase")
	}

	// A lone fundamental word needs no scanning.
	if v, ok := valuesByWord[phrase]; ok {
		return v, nil
	}

	parts, err := tokenize(phrase)
	if err != nil {
		return 0, err
	}
	if err := checkWords(parts); err != nil {
		return 0, err
	}

	s := scanner{parts: parts}
	return s.run()
}

// checkWords rejects any token that is not a number word, a denomination
// label, or "and", and a phrase made only of connectors.
func checkWords(parts []string) error {
	numeric := false
	for i, tok := range parts {
		if _, ok := valuesByWord[tok]; ok {
			numeric = true
			continue
		}
		if isLabel(tok) || tok == wordAnd {
			continue
		}
		return &UnknownWordError{Word: tok, Index: i, Suggestion: suggest(tok)}
	}
	if !numeric {
		return malformed("no number words in %q", strings.Join(parts, " "))
	}
	return nil
}

// scanner walks a token sequence left to right, summing one subunit per
// step. A subunit is a count optionally scaled by the labels that follow
// it, e.g. "six", "twenty one thousand", "one hundred and two thousand".
type scanner struct {
	parts []string
	pos   int
	total int64
}

func (s *scanner) run() (int64, error) {
	for s.pos < len(s.parts) {
		if s.parts[s.pos] == wordAnd {
			s.pos++
			continue
		}

		temp, err := s.subunit()
		if err != nil {
			return 0, err
		}

		// An "and" left over here separates subunits.
		if s.peek(1) == wordAnd {
			s.pos++
		}

		if s.total, err = add(s.total, temp); err != nil {
			return 0, err
		}
		s.pos++
	}
	return s.total, nil
}

// subunit reads the subunit starting at s.pos and leaves s.pos on its last
// consumed token.
func (s *scanner) subunit() (int64, error) {
	v, err := s.count(s.pos)
	if err != nil {
		return 0, err
	}

	label := s.peek(1)
	if !isLabel(label) {
		// "twenty one thousand": two words sharing one label.
		if w, ok := valuesByWord[label]; ok && isLabel(s.peek(2)) {
			s.pos += 2
			return mul(v+w, powersOf10[powers[s.peek(0)]])
		}
		return v, nil
	}

	temp, err := mul(v, powersOf10[powers[label]])
	if err != nil {
		return 0, err
	}

	after := s.peek(2)
	switch {
	case label == wordHundred && after == wordAnd:
		return s.hundredAnd(temp)
	case isLabel(after):
		s.pos += 2
		return mul(temp, powersOf10[powers[after]])
	default:
		s.pos++
		return temp, nil
	}
}

// hundredAnd continues "X hundred and ..." from the word after "and",
// adding words until a label or the end. A label found there scales the
// whole group: "one hundred and two thousand" is 102 thousand.
func (s *scanner) hundredAnd(temp int64) (int64, error) {
	var err error
	s.pos += 3
	for s.pos < len(s.parts) && !isLabel(s.parts[s.pos]) {
		if tok := s.parts[s.pos]; tok != wordAnd {
			if temp, err = add(temp, valuesByWord[tok]); err != nil {
				return 0, err
			}
		}
		s.pos++
	}
	if s.pos < len(s.parts) {
		return mul(temp, powersOf10[powers[s.parts[s.pos]]])
	}
	return temp, nil
}

// count returns the value of the number word at i.
func (s *scanner) count(i int) (int64, error) {
	tok := s.parts[i]
	if v, ok := valuesByWord[tok]; ok {
		return v, nil
	}
	return 0, malformed("%q at token %d has no count before it", tok, i)
}

// peek returns the token n places after s.pos, or "" past the end.
func (s *scanner) peek(n int) string {
	if i := s.pos + n; i < len(s.parts) {
		return s.parts[i]
	}
	return ""
}

// add returns a+b for non-negative operands, failing at maxValue.
func add(a, b int64) (int64, error) {
	if a > maxValue-1-b {
		return 0, tooLarge("sum exceeds %d", maxValue-1)
	}
	return a + b, nil
}

// mul returns a*b for non-negative operands, failing at maxValue.
func mul(a, b int64) (int64, error) {
	if b != 0 && a > (maxValue-1)/b {
		return 0, tooLarge("product exceeds %d", maxValue-1)
	}
	return a * b, nil
}
