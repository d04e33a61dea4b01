package numtext

import (
	"strconv"
	"testing"
)

// FuzzRender verifies that Render never panics for any string input.
func FuzzRender(f *testing.F) {
	f.Add("")
	f.Add("0")
	f.Add("21")
	f.Add("100")
	f.Add("1234")
	f.Add("999999999999999999")
	f.Add("1000000000000000000")
	f.Add("-5")
	f.Add("\xff\xfe")

	f.Fuzz(func(t *testing.T, s string) {
		// Must not panic.
		_, _ = Render(s)
	})
}

// FuzzParse verifies that Parse and Convert never panic for any string input.
func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("zero")
	f.Add("twenty-one")
	f.Add("one hundred and two thousand three hundred and four")
	f.Add("and and")
	f.Add("thousand")
	f.Add("one quadrillion quadrillion")
	f.Add("20 thousand")
	f.Add("hello world")
	f.Add("\xff\xfe")
	f.Add(string([]byte{0x00}))

	f.Fuzz(func(t *testing.T, s string) {
		// Must not panic.
		_, _ = Parse(s)
		_, _ = Convert(s)
	})
}

// FuzzRoundTrip verifies that Parse(RenderInt(n)) == n for all valid n.
func FuzzRoundTrip(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(42))
	f.Add(int64(123))
	f.Add(int64(1000))
	f.Add(int64(100001))
	f.Add(int64(2300095))
	f.Add(int64(999_999_999_999_999_999))

	f.Fuzz(func(t *testing.T, n int64) {
		if n < 0 || n >= maxValue {
			return // out of range, skip
		}
		text, err := RenderInt(n)
		if err != nil {
			t.Fatalf("RenderInt(%d) error: %v", n, err)
		}
		got, err := Parse(text)
		if err != nil {
			t.Errorf("Parse(RenderInt(%d)) = %q, error: %v", n, text, err)
		}
		if got != n {
			t.Errorf("Parse(RenderInt(%d)) = %d, want %d (text: %q)", n, got, n, text)
		}
		if r, err := Convert(strconv.FormatInt(n, 10)); err != nil || r.Text != text {
			t.Errorf("Convert(%d) = %q, %v; want %q", n, r.Text, err, text)
		}
	})
}
