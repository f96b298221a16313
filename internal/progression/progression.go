package progression

import (
	"strings"

	"github.com/lkorr/music-theory-website-sub004/internal/pitch"
	"github.com/lkorr/music-theory-website-sub004/internal/quality"
)

// Key is a tonic pitch class plus mode.
type Key struct {
	TonicClass int
	Minor      bool
}

// ParseKey reads keys like "C", "Am", "F#m", "Bb minor". Unknown spellings
// return false.
func ParseKey(s string) (Key, bool) {
	s = strings.TrimSpace(s)
	minor := false
	lower := strings.ToLower(s)
	for _, suffix := range []string{" minor", "minor", " min", "min", "m"} {
		if strings.HasSuffix(lower, suffix) && len(lower) > len(suffix) {
			s = s[:len(s)-len(suffix)]
			minor = true
			break
		}
	}
	if !minor {
		for _, suffix := range []string{" major", "major", " maj", "maj"} {
			if strings.HasSuffix(lower, suffix) && len(lower) > len(suffix) {
				s = s[:len(s)-len(suffix)]
				break
			}
		}
	}
	pc, ok := pitch.ParseClass(strings.TrimSpace(s))
	if !ok {
		return Key{}, false
	}
	return Key{TonicClass: pc, Minor: minor}, true
}

// Step is one chord slot: either a diatonic scale degree or a borrowed
// chord pinned to an explicit offset from the tonic. Each step carries its
// own inversion and the voicing generated for it.
type Step struct {
	Degree     int    // 1..7 when diatonic
	Borrowed   bool
	Symbol     string // literal numeral for borrowed steps
	RootOffset int    // semitones above tonic, borrowed steps only
	QualitySym string // catalog symbol, borrowed steps only
	Inversion  int
	Pitches    []int
}

// Progression is a generated 4-chord problem. Same lifecycle as a
// generated chord: built fresh, immutable, owned by the caller.
type Progression struct {
	Key            Key
	Steps          []Step
	ExpectedAnswer string
}

// Scale degrees per mode, semitones above the tonic.
var (
	majorScale = [7]int{0, 2, 4, 5, 7, 9, 11}
	minorScale = [7]int{0, 2, 3, 5, 7, 8, 10}
)

// Roman-numeral families per mode. Minor-key degrees 3, 6 and 7 take the
// flat-relative-to-major spelling (bIII, bVI, bVII), the way chord charts
// name them.
var (
	majorNumerals = [7]string{"I", "ii", "iii", "IV", "V", "vi", "vii°"}
	minorNumerals = [7]string{"i", "ii°", "bIII", "iv", "v", "bVI", "bVII"}
)

// borrowed chords injectable per mode: literal symbol, semitone offset
// from tonic, catalog quality.
type borrowedChord struct {
	Symbol     string
	RootOffset int
	QualitySym string
}

var minorBorrowed = []borrowedChord{
	{"bII", 1, "maj"},   // Neapolitan
	{"V", 7, "maj"},     // harmonic-minor dominant
	{"vii°7", 11, "dim7"},
	{"III+", 3, "aug"},
}

var majorBorrowed = []borrowedChord{
	{"bII", 1, "maj"},
	{"bIII", 3, "maj"},
	{"bVI", 8, "maj"},
	{"bVII", 10, "maj"},
	{"iv", 5, "m"},
	{"viiø7", 11, "m7b5"},
}

// scaleOf returns the 7-note scale for the key's mode.
func (k Key) scaleOf() [7]int {
	if k.Minor {
		return minorScale
	}
	return majorScale
}

// numeralsOf returns the Roman-numeral table for the key's mode.
func (k Key) numeralsOf() [7]string {
	if k.Minor {
		return minorNumerals
	}
	return majorNumerals
}

// degreeIntervals builds the stacked-third triad for a scale degree as
// semitone intervals from its own root.
func degreeIntervals(scale [7]int, degree int) []int {
	root := scale[degree-1]
	third := pitch.Class(scale[(degree+1)%7] - root)
	fifth := pitch.Class(scale[(degree+3)%7] - root)
	return []int{0, third, fifth}
}

// intervalsFor resolves a step to the interval set its voicing uses.
func (s *Step) intervalsFor(key Key) []int {
	if s.Borrowed {
		q, ok := quality.Lookup(s.QualitySym)
		if !ok {
			return []int{0, 4, 7}
		}
		return q.Intervals
	}
	return degreeIntervals(key.scaleOf(), s.Degree)
}

// rootClassFor resolves a step's root pitch class within the key.
func (s *Step) rootClassFor(key Key) int {
	if s.Borrowed {
		return pitch.Class(key.TonicClass + s.RootOffset)
	}
	return pitch.Class(key.TonicClass + key.scaleOf()[s.Degree-1])
}
