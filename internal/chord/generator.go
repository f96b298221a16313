package chord

import (
	"fmt"
	"math/rand"

	apperrors "github.com/lkorr/music-theory-website-sub004/internal/errors"
	"github.com/lkorr/music-theory-website-sub004/internal/inversion"
	"github.com/lkorr/music-theory-website-sub004/internal/level"
	"github.com/lkorr/music-theory-website-sub004/internal/pitch"
	"github.com/lkorr/music-theory-website-sub004/internal/quality"
)

// maxAttempts bounds the duplicate-avoidance retry loop. On exhaustion the
// last draw is accepted; full exhaustion only happens with a size-1
// candidate set, where a repeat is unavoidable anyway.
const maxAttempts = 20

// Generator produces chord problems for a level. The only state is the
// random source, so a seeded generator replays a deterministic sequence.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate draws a chord uniformly from the level's candidate sets,
// voices it inside the octave range and synthesizes the expected answer.
// prev is the previous problem, threaded by the caller purely for
// duplicate avoidance; nil means no history.
func (g *Generator) Generate(cfg *level.Config, prev *Generated) (*Generated, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var last *Generated
	for attempt := 0; attempt < maxAttempts; attempt++ {
		root := cfg.Roots[g.rng.Intn(len(cfg.Roots))]
		sym := cfg.Qualities[g.rng.Intn(len(cfg.Qualities))]
		q, ok := quality.Lookup(sym)
		if !ok {
			// Validate catches this; kept for direct callers.
			return nil, apperrors.NewConfigError("qualities", fmt.Sprintf("unknown symbol %q", sym), apperrors.ErrUnknownQuality)
		}

		valid := validInversions(cfg.Inversions, q.Tones())
		if len(valid) == 0 {
			return nil, apperrors.NewConfigError("inversions",
				fmt.Sprintf("no configured inversion fits %q (%d tones)", sym, q.Tones()),
				apperrors.ErrInvalidInversion)
		}
		inv := valid[g.rng.Intn(len(valid))]

		gen, err := build(root, q, inv, cfg)
		if err != nil {
			return nil, err
		}
		last = gen

		if gen.Same(prev) {
			continue
		}
		return gen, nil
	}
	return last, nil
}

// validInversions filters the configured indices down to those a quality
// with the given tone count can actually take.
func validInversions(configured []int, tones int) []int {
	var out []int
	for _, idx := range configured {
		if idx >= 0 && idx < tones {
			out = append(out, idx)
		}
	}
	return out
}

// build voices one specific chord and renders its expected answer.
func build(root int, q *quality.Quality, inv int, cfg *level.Config) (*Generated, error) {
	pitches, err := Voice(root, q.Intervals, inv, cfg.OctaveRange[0], cfg.OctaveRange[1])
	if err != nil {
		return nil, err
	}
	gen := &Generated{
		RootClass: root,
		Quality:   q,
		Inversion: inv,
		Pitches:   pitches,
	}
	gen.ExpectedAnswer = renderAnswer(gen, cfg.RequireInversionLabeling)
	return gen, nil
}

// Voice builds the ascending close voicing for a chord and re-fits it into
// the octave window. The bass-to-top order follows the inversion: each
// tone is lifted by octaves until strictly above its predecessor, then the
// whole chord shifts by octaves if either bound is exceeded. A window too
// narrow to hold the chord at all is a configuration error; chords are
// never truncated to fit.
func Voice(rootClass int, intervals []int, inv, minOctave, maxOctave int) ([]int, error) {
	offsets, err := inversion.Reorder(intervals, inv)
	if err != nil {
		return nil, err
	}

	base := minOctave*pitch.ClassesPerOctave + pitch.Class(rootClass)
	pitches := make([]int, len(offsets))
	for i, off := range offsets {
		p := base + off
		if i > 0 {
			for p <= pitches[i-1] {
				p += pitch.ClassesPerOctave
			}
		}
		pitches[i] = p
	}

	floor := minOctave * pitch.ClassesPerOctave
	ceiling := (maxOctave+1)*pitch.ClassesPerOctave - 1

	if top := pitches[len(pitches)-1]; top > ceiling {
		shift := ((top - ceiling + 11) / 12) * 12
		for i := range pitches {
			pitches[i] -= shift
		}
		if pitches[0] < floor {
			lift := ((floor - pitches[0] + 11) / 12) * 12
			for i := range pitches {
				pitches[i] += lift
			}
		}
	}

	if pitches[0] < floor || pitches[len(pitches)-1] > ceiling {
		return nil, apperrors.NewConfigError("octave_range",
			fmt.Sprintf("window [%d,%d] cannot hold a %d-tone chord", minOctave, maxOctave, len(intervals)),
			apperrors.ErrRangeTooNarrow)
	}
	return pitches, nil
}

// renderAnswer composes the expected answer text: canonical root letter
// plus quality symbol, with an inversion marker when labeling is on and
// the chord is not in root position. Triads and sevenths take a
// figured-bass suffix; taller chords take slash notation with the bass
// letter.
func renderAnswer(g *Generated, labelInversions bool) string {
	s := pitch.ClassName(g.RootClass) + g.Quality.Symbol
	if !labelInversions || g.Inversion == 0 {
		return s
	}
	if suffix, ok := inversion.FiguredSuffix(g.Quality.Tones(), g.Inversion); ok {
		return s + suffix
	}
	return s + "/" + pitch.ClassName(g.BassClass())
}
