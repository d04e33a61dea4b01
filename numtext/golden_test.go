package numtext

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

type goldenCase struct {
	Name  string `json:"name"`
	Input string `json:"input"`
	Text  string `json:"text"`
}

const goldenPath = "../data/golden/numtext.json"

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("golden file not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			got, err := Render(tc.Input)
			if err != nil {
				t.Fatalf("Render(%q) error: %v", tc.Input, err)
			}
			if got != tc.Text {
				t.Errorf("Render(%q) = %q, want %q", tc.Input, got, tc.Text)
			}

			want, err := strconv.ParseInt(tc.Input, 10, 64)
			if err != nil {
				t.Fatalf("golden input %q: %v", tc.Input, err)
			}
			parsed, err := Parse(tc.Text)
			if err != nil {
				t.Errorf("Parse(%q) error: %v", tc.Text, err)
			} else if parsed != want {
				t.Errorf("Parse(Render(%q)) = %d", tc.Input, parsed)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		tc := &cases[i]
		text, err := Render(tc.Input)
		if err != nil {
			t.Fatalf("Render(%q): %v", tc.Input, err)
		}
		tc.Text = text
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(goldenPath, out, 0644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Log("golden file updated, review with: git diff data/golden/numtext.json")
}
