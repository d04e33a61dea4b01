// Word tables for English number-to-text conversion.
package numtext

const (
	maxDigits = 18 // digits in the largest supported number, 10^18 - 1
	groupSize = 3  // digits per denomination group

	wordAnd     = "and"
	wordHundred = "hundred"
)

// maxValue is the smallest unsupported value, 10^18.
const maxValue int64 = 1_000_000_000_000_000_000

type fundamental struct {
	value int64
	word  string
}

// fundamentals lists every number whose English word is not composed from
// other words. Order is ascending by value.
var fundamentals = []fundamental{
	{0, "zero"},
	{1, "one"},
	{2, "two"},
	{3, "three"},
	{4, "four"},
	{5, "five"},
	{6, "six"},
	{7, "seven"},
	{8, "eight"},
	{9, "nine"},
	{10, "ten"},
	{11, "eleven"},
	{12, "twelve"},
	{13, "thirteen"},
	{14, "fourteen"},
	{15, "fifteen"},
	{16, "sixteen"},
	{17, "seventeen"},
	{18, "eighteen"},
	{19, "nineteen"},
	{20, "twenty"},
	{30, "thirty"},
	{40, "forty"},
	{50, "fifty"},
	{60, "sixty"},
	{70, "seventy"},
	{80, "eighty"},
	{90, "ninety"},
}

// aliases are spellings accepted by the parser but never rendered.
var aliases = map[string]int64{
	"fourty": 40,
}

type denomination struct {
	label string
	power int
}

// denominations lists the labels that scale a preceding digit group,
// smallest first.
var denominations = []denomination{
	{wordHundred, 2},
	{"thousand", 3},
	{"million", 6},
	{"billion", 9},
	{"trillion", 12},
	{"quadrillion", 15},
}

var (
	wordsByValue = make(map[int64]string, len(fundamentals))
	valuesByWord = make(map[string]int64, len(fundamentals)+len(aliases))
	powers       = make(map[string]int, len(denominations))

	// labelsByWidth maps a padded digit count to the label carried by its
	// leading three-digit group: 6 -> thousand, 9 -> million, and so on.
	labelsByWidth = make(map[int]string, len(denominations)-1)

	// powersOf10 maps exponent (0–18) to the corresponding int64 value.
	powersOf10 [maxDigits + 1]int64
)

func init() {
	for _, f := range fundamentals {
		wordsByValue[f.value] = f.word
		valuesByWord[f.word] = f.value
	}
	for word, v := range aliases {
		valuesByWord[word] = v
	}
	for _, d := range denominations {
		powers[d.label] = d.power
		if d.power%groupSize == 0 {
			labelsByWidth[d.power+groupSize] = d.label
		}
	}

	p := int64(1)
	for i := range powersOf10 {
		powersOf10[i] = p
		p *= 10
	}
}

// WordFor returns the English word for n if n is a fundamental number
// (0–20 or a multiple of ten up to ninety).
func WordFor(n int64) (string, bool) {
	w, ok := wordsByValue[n]
	return w, ok
}

// ValueFor returns the value of a fundamental number word. Matching is exact
// and case-sensitive; all words are lowercase.
func ValueFor(word string) (int64, bool) {
	v, ok := valuesByWord[word]
	return v, ok
}

// Power returns the power of ten applied by a denomination label such as
// "hundred" (2) or "million" (6).
func Power(label string) (int, bool) {
	p, ok := powers[label]
	return p, ok
}

func isLabel(tok string) bool {
	_, ok := powers[tok]
	return ok
}
