package quality

import "strings"

// glyphReplacer folds unicode chord glyphs into their ASCII spellings
// before any case folding happens.
var glyphReplacer = strings.NewReplacer(
	"♯", "#",
	"♭", "b",
	"Δ", "maj",
	"∆", "maj",
	"ø7", "m7b5",
	"Ø7", "m7b5",
	"ø", "m7b5",
	"Ø", "m7b5",
	"°", "dim",
	"º", "dim",
	"o7", "dim7", // common ASCII stand-in for °7
)

// synonyms are applied after lowercasing, longest form first so that
// e.g. "diminished" never leaves a stray "min" behind.
var synonyms = []struct{ from, to string }{
	{"half-diminished", "m7b5"},
	{"halfdiminished", "m7b5"},
	{"half-dim", "m7b5"},
	{"diminished", "dim"},
	{"augmented", "aug"},
	{"dominant", ""},
	{"dom", ""},
	{"major", "maj"},
	{"minor", "min"},
	{"min", "m"},
	{"add2", "add9"},
}

// Normalize maps a chord-symbol spelling to its canonical comparison key:
// glyphs folded, an uppercase M before a digit (or at the end) read as
// "maj", everything lowercased, whitespace and parentheses removed, and
// the synonym table applied. The same pass runs over stored aliases and
// over user input, so matching reduces to set membership.
func Normalize(s string) string {
	s = glyphReplacer.Replace(s)
	s = foldMajorM(s)
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '\t', '(', ')':
		default:
			b.WriteRune(r)
		}
	}
	s = b.String()
	for _, syn := range synonyms {
		s = strings.ReplaceAll(s, syn.from, syn.to)
	}
	return s
}

// foldMajorM rewrites a bare uppercase M as "maj" when it is followed by a
// digit, a slash or the end of the string ("CM7" -> "Cmaj7"). It must run
// before lowercasing or the major/minor distinction is lost.
func foldMajorM(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == 'M' {
			next := byte('/')
			if i+1 < len(s) {
				next = s[i+1]
			}
			if next == '/' || (next >= '0' && next <= '9') {
				b.WriteString("maj")
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}
