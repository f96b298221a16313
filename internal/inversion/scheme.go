package inversion

import (
	"strconv"

	apperrors "github.com/lkorr/music-theory-website-sub004/internal/errors"
)

// Scheme maps an inversion index to the ordering of chord-tone indices
// with the bass first. The permutation is always the cyclic rotation of
// 0..n-1 starting at Index.
type Scheme struct {
	Index       int
	Permutation []int
}

// For builds the scheme for a chord with the given tone count. Index 0 is
// root position and always valid; an index at or beyond the tone count is
// a caller error.
func For(tones, index int) (Scheme, error) {
	if index < 0 || index >= tones {
		return Scheme{}, apperrors.ErrInvalidInversion
	}
	perm := make([]int, tones)
	for i := range perm {
		perm[i] = (index + i) % tones
	}
	return Scheme{Index: index, Permutation: perm}, nil
}

// Reorder rotates a quality's interval list so the inversion's bass tone
// comes first. The result preserves the original offsets; octave lifting
// is the voicing step's job.
func Reorder(intervals []int, index int) ([]int, error) {
	s, err := For(len(intervals), index)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(intervals))
	for i, tone := range s.Permutation {
		out[i] = intervals[tone]
	}
	return out, nil
}

// figuredSuffixes holds the figured-bass suffix per inversion index, keyed
// by tone count. Only triads and seventh chords use figured bass; taller
// chords are labeled with slash notation instead.
var figuredSuffixes = map[int]map[int]string{
	3: {1: "6", 2: "64"},
	4: {1: "65", 2: "43", 3: "42"},
}

// figuredIndexes is the reverse lookup, with the common "2" shorthand for
// third-inversion sevenths folded in.
var figuredIndexes = map[int]map[string]int{
	3: {"6": 1, "64": 2},
	4: {"65": 1, "43": 2, "42": 3, "2": 3},
}

// phraseIndexes resolves descriptive inversion spellings. Keys are stored
// the way the normalizer leaves user text: lowercased, no spaces.
var phraseIndexes = map[string]int{
	"1st": 1, "first": 1, "1stinversion": 1, "firstinversion": 1,
	"2nd": 2, "second": 2, "2ndinversion": 2, "secondinversion": 2,
	"3rd": 3, "third": 3, "3rdinversion": 3, "thirdinversion": 3,
	"4th": 4, "fourth": 4, "4thinversion": 4, "fourthinversion": 4,
	"5th": 5, "fifth": 5, "5thinversion": 5, "fifthinversion": 5,
	"6th": 6, "sixth": 6, "6thinversion": 6, "sixthinversion": 6,
}

// FiguredSuffix returns the figured-bass suffix for an inversion, if the
// chord's tone count uses figured-bass labeling at all.
func FiguredSuffix(tones, index int) (string, bool) {
	suffix, ok := figuredSuffixes[tones][index]
	return suffix, ok
}

// FiguredIndex resolves a figured-bass token to an inversion index for a
// chord of the given tone count.
func FiguredIndex(tones int, token string) (int, bool) {
	idx, ok := figuredIndexes[tones][token]
	return idx, ok
}

// PhraseIndex resolves a descriptive inversion phrase ("first inversion",
// "2nd", ...) that has already been through normalization.
func PhraseIndex(token string) (int, bool) {
	idx, ok := phraseIndexes[token]
	return idx, ok
}

// Phrases exposes the descriptive-phrase table for suffix scanning.
// Callers must treat it as read-only.
func Phrases() map[string]int {
	return phraseIndexes
}

// OrdinalIndex resolves a bare integer token ("1", "2", ...) naming the
// inversion's tone index directly.
func OrdinalIndex(tones int, token string) (int, bool) {
	n, err := strconv.Atoi(token)
	if err != nil || n < 1 || n >= tones {
		return 0, false
	}
	return n, true
}
