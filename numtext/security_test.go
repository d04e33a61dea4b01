package numtext

import (
	"strings"
	"sync"
	"testing"
)

// TestConcurrentSafety verifies all functions are safe for concurrent use.
func TestConcurrentSafety(t *testing.T) {
	var wg sync.WaitGroup

	const goroutines = 100

	for range goroutines {
		wg.Go(func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("panic in concurrent call: %v", r)
				}
			}()

			Render("123456789")
			RenderInt(0)
			Parse("one hundred and two thousand three hundred and four")
			Parse("one hundred and banana")
			Tokenize("20 thousand")
			Convert("42")
			Convert("forty-two")
		})
	}

	wg.Wait()
}

// TestRenderLargeNumbers verifies Render handles edge-case large inputs.
func TestRenderLargeNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"max valid", strings.Repeat("9", 18)},
		{"just over max", "1" + strings.Repeat("0", 18)},
		{"very long", strings.Repeat("9", 1000)},
		{"long zeros", strings.Repeat("0", 1000) + "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Render(%d digits) panicked: %v", len(tt.input), r)
				}
			}()
			_, _ = Render(tt.input)
		})
	}
}

// TestParseMalformed verifies Parse handles malformed input gracefully.
func TestParseMalformed(t *testing.T) {
	malformed := []string{
		"",
		" ",
		"\t\n",
		"\xff\xfe",
		string([]byte{0x00}),
		"-",
		",,,",
		strings.Repeat("one ", 1000),
		strings.Repeat("nine hundred quadrillion ", 100),
		"hundred and",
		"one hundred and",
		"one hundred and and",
		"and thousand",
		"thousand thousand",
		"twenty one",
		"one, two, three",
	}

	for _, input := range malformed {
		t.Run("", func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Parse(%q) panicked: %v", input, r)
				}
			}()
			_, _ = Parse(input)
		})
	}
}
