package quality

// Quality describes a chord type: its catalog symbol, the semitone
// intervals that spell it (intervals[0] is always the root), and the set
// of text spellings accepted for it. Immutable after init.
type Quality struct {
	Symbol    string
	Intervals []int
	aliases   map[string]struct{}
}

// Tones returns the number of chord tones the quality defines.
func (q *Quality) Tones() int {
	return len(q.Intervals)
}

// AliasMatches reports whether candidate text names this quality. The
// comparison is case-, space- and parenthesis-insensitive and runs through
// the shared normalization pass.
func (q *Quality) AliasMatches(text string) bool {
	_, ok := q.aliases[Normalize(text)]
	return ok
}

// catalog entries: symbol, intervals, extra accepted spellings beyond the
// symbol itself. Interval sets follow the usual stacked-third spellings.
var defs = []struct {
	symbol    string
	intervals []int
	aliases   []string
}{
	// Triads
	{"maj", []int{0, 4, 7}, []string{"", "major", "M"}},
	{"m", []int{0, 3, 7}, []string{"min", "minor", "-", "mi"}},
	{"dim", []int{0, 3, 6}, []string{"°", "diminished"}},
	{"aug", []int{0, 4, 8}, []string{"+", "augmented"}},
	{"sus2", []int{0, 2, 7}, nil},
	{"sus4", []int{0, 5, 7}, []string{"sus"}},

	// Sixths
	{"6", []int{0, 4, 7, 9}, []string{"maj6", "M6"}},
	{"m6", []int{0, 3, 7, 9}, []string{"min6"}},

	// Sevenths
	{"maj7", []int{0, 4, 7, 11}, []string{"M7", "ma7", "Δ7", "major7"}},
	{"m7", []int{0, 3, 7, 10}, []string{"min7", "minor7", "-7", "mi7"}},
	{"7", []int{0, 4, 7, 10}, []string{"dom7", "dominant7"}},
	{"m7b5", []int{0, 3, 6, 10}, []string{"ø", "ø7", "min7b5", "m7-5", "half-diminished"}},
	{"dim7", []int{0, 3, 6, 9}, []string{"°7", "diminished7"}},
	{"mMaj7", []int{0, 3, 7, 11}, []string{"mM7", "minmaj7", "m(maj7)", "-maj7"}},

	// Ninths
	{"maj9", []int{0, 4, 7, 11, 14}, []string{"M9", "major9"}},
	{"m9", []int{0, 3, 7, 10, 14}, []string{"min9", "-9"}},
	{"9", []int{0, 4, 7, 10, 14}, []string{"dom9"}},
	{"7b9", []int{0, 4, 7, 10, 13}, []string{"7-9"}},
	{"7#9", []int{0, 4, 7, 10, 15}, []string{"7+9"}},
	{"add9", []int{0, 4, 7, 14}, []string{"add2"}},

	// Elevenths
	{"11", []int{0, 4, 7, 10, 14, 17}, []string{"dom11"}},
	{"m11", []int{0, 3, 7, 10, 14, 17}, []string{"min11"}},
	{"maj11", []int{0, 4, 7, 11, 14, 17}, []string{"M11"}},

	// Thirteenths
	{"13", []int{0, 4, 7, 10, 14, 17, 21}, []string{"dom13"}},
	{"m13", []int{0, 3, 7, 10, 14, 17, 21}, []string{"min13"}},
	{"maj13", []int{0, 4, 7, 11, 14, 17, 21}, []string{"M13"}},
}

var (
	bySymbol = make(map[string]*Quality, len(defs))
	ordered  = make([]*Quality, 0, len(defs))
)

func init() {
	for _, d := range defs {
		q := &Quality{
			Symbol:    d.symbol,
			Intervals: d.intervals,
			aliases:   make(map[string]struct{}, len(d.aliases)+1),
		}
		q.aliases[Normalize(d.symbol)] = struct{}{}
		for _, a := range d.aliases {
			q.aliases[Normalize(a)] = struct{}{}
		}
		bySymbol[d.symbol] = q
		ordered = append(ordered, q)
	}
}

// Lookup returns the quality registered under a catalog symbol. Absent
// symbols return false, never a panic; validation treats that as "not this
// quality" and keeps searching.
func Lookup(symbol string) (*Quality, bool) {
	q, ok := bySymbol[symbol]
	return q, ok
}

// Symbols returns every catalog symbol in definition order.
func Symbols() []string {
	out := make([]string, len(ordered))
	for i, q := range ordered {
		out[i] = q.Symbol
	}
	return out
}

// Aliases returns the normalized alias set, for tests and introspection.
func (q *Quality) Aliases() []string {
	out := make([]string, 0, len(q.aliases))
	for a := range q.aliases {
		out = append(out, a)
	}
	return out
}
