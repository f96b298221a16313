package answer

import (
	"strings"

	"github.com/lkorr/music-theory-website-sub004/internal/chord"
	"github.com/lkorr/music-theory-website-sub004/internal/inversion"
	"github.com/lkorr/music-theory-website-sub004/internal/level"
	"github.com/lkorr/music-theory-website-sub004/internal/pitch"
	"github.com/lkorr/music-theory-website-sub004/internal/quality"
)

// Validate decides whether free-text user input names the generated chord.
// It is a total function over any input string: every failure mode is a
// plain false, never an error, because wrong answers are the expected
// common case.
func Validate(userText string, expected *chord.Generated, cfg *level.Config) bool {
	if expected == nil || cfg == nil {
		return false
	}

	user := quality.Normalize(userText)
	want := quality.Normalize(expected.ExpectedAnswer)
	if user == "" {
		return false
	}
	if user == want {
		return true
	}

	rootToken, rem, ok := splitRoot(user)
	if !ok {
		return false
	}
	userClass, ok := pitch.ParseClass(rootToken)
	if !ok || userClass != expected.RootClass {
		return false
	}

	q := expected.Quality
	if !cfg.RequireInversionLabeling {
		// Inversion markers carry no weight here; accept the quality with
		// or without one.
		if q.AliasMatches(rem) {
			return true
		}
		found := false
		eachMarkerSplit(rem, func(qpart, token string) bool {
			if q.AliasMatches(qpart) && tokenResolves(token, q.Tones()) {
				found = true
				return false
			}
			return true
		})
		return found
	}

	if expected.Inversion == 0 {
		// Root position must be answered without an inversion token.
		return q.AliasMatches(rem)
	}

	bass := expected.BassClass()
	found := false
	eachMarkerSplit(rem, func(qpart, token string) bool {
		if q.AliasMatches(qpart) && tokenMatches(token, q.Tones(), expected.Inversion, bass) {
			found = true
			return false
		}
		return true
	})
	return found
}

// splitRoot peels a leading letter plus optional accidental off a
// normalized answer. The accidental is taken greedily; "bb..." reads as
// B-flat.
func splitRoot(s string) (root, rest string, ok bool) {
	if s == "" || s[0] < 'a' || s[0] > 'g' {
		return "", "", false
	}
	n := 1
	if len(s) > 1 && (s[1] == '#' || s[1] == 'b') {
		n = 2
	}
	return s[:n], s[n:], true
}

// eachMarkerSplit enumerates every way to read a normalized remainder as
// quality text followed by an inversion token: a slash suffix, a trailing
// digit group (tried at every length, so a "6" chord keeps its 6 when the
// quality needs it), or a descriptive phrase. The visit callback returns
// false to stop early.
func eachMarkerSplit(rem string, visit func(qpart, token string) bool) {
	if i := strings.LastIndex(rem, "/"); i >= 0 {
		if !visit(rem[:i], rem[i+1:]) {
			return
		}
	}

	run := 0
	for run < len(rem) && isDigit(rem[len(rem)-1-run]) {
		run++
	}
	for k := 1; k <= run; k++ {
		if !visit(rem[:len(rem)-k], rem[len(rem)-k:]) {
			return
		}
	}

	for phrase := range inversion.Phrases() {
		if strings.HasSuffix(rem, phrase) {
			if !visit(strings.TrimSuffix(rem, phrase), phrase) {
				return
			}
		}
	}
}

// tokenMatches reports whether an inversion token names the expected
// inversion, through any accepted family: enharmonic bass letter, figured
// bass, bare tone index, or descriptive phrase.
func tokenMatches(token string, tones, wantIndex, bassClass int) bool {
	if pc, ok := pitch.ParseClass(token); ok {
		return pc == bassClass
	}
	if idx, ok := inversion.FiguredIndex(tones, token); ok {
		return idx == wantIndex
	}
	if idx, ok := inversion.OrdinalIndex(tones, token); ok {
		return idx == wantIndex
	}
	if idx, ok := inversion.PhraseIndex(token); ok {
		return idx == wantIndex
	}
	return false
}

// tokenResolves reports whether a token is recognizable as any inversion
// marker at all, used when labeling is off and markers are ignored.
func tokenResolves(token string, tones int) bool {
	if _, ok := pitch.ParseClass(token); ok {
		return true
	}
	if _, ok := inversion.FiguredIndex(tones, token); ok {
		return true
	}
	if _, ok := inversion.OrdinalIndex(tones, token); ok {
		return true
	}
	_, ok := inversion.PhraseIndex(token)
	return ok
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
