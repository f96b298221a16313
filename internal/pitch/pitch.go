package pitch

import (
	"strconv"
	"strings"
)

// A pitch is an absolute semitone index: pitch 0 is the C of the reference
// octave, so a pitch in octave o with pitch class c sits at o*12 + c.
// Comparisons and arithmetic are plain integer ops; only Class wraps.

const ClassesPerOctave = 12

// classNames lists every accepted letter-name per pitch class, canonical
// spelling first. Black keys carry their one non-trivial enharmonic pair.
var classNames = [ClassesPerOctave][]string{
	{"C"},
	{"C#", "Db"},
	{"D"},
	{"D#", "Eb"},
	{"E"},
	{"F"},
	{"F#", "Gb"},
	{"G"},
	{"G#", "Ab"},
	{"A"},
	{"A#", "Bb"},
	{"B"},
}

// letterOffsets maps natural letters to semitone offsets from C
var letterOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Class reduces a pitch to its pitch class (0-11), safe for negatives.
func Class(p int) int {
	return ((p % ClassesPerOctave) + ClassesPerOctave) % ClassesPerOctave
}

// Octave returns the octave a pitch sits in.
func Octave(p int) int {
	if p < 0 {
		return (p - ClassesPerOctave + 1) / ClassesPerOctave
	}
	return p / ClassesPerOctave
}

// ClassNames returns every accepted letter-name for a pitch class,
// canonical spelling first. Never empty.
func ClassNames(pc int) []string {
	return classNames[Class(pc)]
}

// ClassName returns the canonical letter-name for a pitch class.
func ClassName(pc int) string {
	return classNames[Class(pc)][0]
}

// Name renders a pitch as letter-name plus octave, e.g. "C#4".
func Name(p int) string {
	return ClassName(Class(p)) + strconv.Itoa(Octave(p))
}

// ParseClass parses a letter-name (letter plus optional accidental) into a
// pitch class. Case-insensitive; accepts ASCII and unicode accidentals.
// Unknown names return false rather than an error.
func ParseClass(name string) (int, bool) {
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "♯", "#") // ♯
	s = strings.ReplaceAll(s, "♭", "b") // ♭
	if s == "" {
		return 0, false
	}
	letter := s[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	offset, ok := letterOffsets[letter]
	if !ok {
		return 0, false
	}
	switch rest := s[1:]; rest {
	case "":
		return offset, true
	case "#":
		return Class(offset + 1), true
	case "b", "B":
		return Class(offset - 1), true
	default:
		return 0, false
	}
}

// Enharmonic reports whether two letter-names denote the same pitch class.
// Symmetric; unknown names compare false.
func Enharmonic(a, b string) bool {
	pa, ok := ParseClass(a)
	if !ok {
		return false
	}
	pb, ok := ParseClass(b)
	if !ok {
		return false
	}
	return pa == pb
}
