package numtext

import "strings"

// separators turns hyphens and commas into word breaks.
var separators = strings.NewReplacer("-", " ", ",", " ")

// tokenize splits a phrase into words. Digit literals embedded in the phrase
// are rendered and their words spliced in place, so "20 thousand" yields
// ["twenty", "thousand"].
func tokenize(phrase string) ([]string, error) {
	fields := strings.Fields(separators.Replace(phrase))
	parts := make([]string, 0, len(fields))

	for _, f := range fields {
		if !allDigits(f) {
			parts = append(parts, f)
			continue
		}

		digits, err := canonicalDigits(f)
		if err != nil {
			return nil, err
		}
		text, err := render(digits)
		if err != nil {
			return nil, err
		}
		sub, err := tokenize(text)
		if err != nil {
			return nil, err
		}
		parts = append(parts, sub...)
	}

	return parts, nil
}
