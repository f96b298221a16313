package progression

import "strings"

// Validate compares free-text progression input against the expected
// 4-step rendering. Per-step comparison is case-insensitive and treats
// the diminished symbol families (raised circle, "dim", bare "d") and the
// half-diminished families ("ø", "m7b5") as equivalent. Total over any
// input; every failure is false.
func Validate(userText string, expected *Progression) bool {
	if expected == nil {
		return false
	}
	got := strings.Fields(userText)
	want := strings.Fields(expected.ExpectedAnswer)
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if canonicalStep(got[i]) != canonicalStep(want[i]) {
			return false
		}
	}
	return true
}

var stepReplacer = strings.NewReplacer(
	"(", "", ")", "",
	"♭", "b",
	"♯", "#",
)

// canonicalStep maps every accepted spelling of a step symbol to one
// comparison key instead of expanding each side into its cross-product of
// variants: lowercase, diminished family folded to "o", half-diminished
// family folded to "h".
func canonicalStep(s string) string {
	s = stepReplacer.Replace(strings.TrimSpace(s))
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "m7b5", "ø7")
	s = strings.ReplaceAll(s, "ø", "h")
	s = strings.ReplaceAll(s, "°", "o")
	s = strings.ReplaceAll(s, "º", "o")
	s = strings.ReplaceAll(s, "dim", "o")

	// A bare d right after a numeral letter is the third diminished
	// spelling ("viid" for "vii°").
	b := []byte(s)
	for i := 1; i < len(b); i++ {
		if b[i] != 'd' {
			continue
		}
		prev := b[i-1]
		atEnd := i+1 == len(b)
		nextDigit := !atEnd && b[i+1] >= '0' && b[i+1] <= '9'
		if (prev == 'i' || prev == 'v' || prev == 'x') && (atEnd || nextDigit) {
			b[i] = 'o'
		}
	}
	return string(b)
}
