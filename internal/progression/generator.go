package progression

import (
	"math/rand"
	"strings"

	"github.com/lkorr/music-theory-website-sub004/internal/chord"
	"github.com/lkorr/music-theory-website-sub004/internal/inversion"
)

const (
	stepCount = 4

	// Progressions voice every chord inside a fixed two-octave window.
	minOctave = 4
	maxOctave = 5

	// Bounded retry for duplicate avoidance, mirroring the chord
	// generator's fairness-over-determinism tradeoff.
	maxAttempts = 20
)

// one-in-four steps swap the diatonic degree for a borrowed chord.
const borrowedOdds = 4

// inversionDraws weights root position heavily; a figured-bass label on
// every step would drown the degree-identification exercise.
var inversionDraws = []int{0, 0, 0, 1, 2}

// Generator produces 4-chord progression problems for a key.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a progression generator with the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate builds a fresh 4-step progression in the key. prev is threaded
// by the caller for duplicate avoidance only; a progression whose rendered
// answer repeats prev's is redrawn up to the attempt bound.
func (g *Generator) Generate(key Key, prev *Progression) (*Progression, error) {
	var last *Progression
	for attempt := 0; attempt < maxAttempts; attempt++ {
		p, err := g.build(key)
		if err != nil {
			return nil, err
		}
		last = p
		if prev != nil && prev.ExpectedAnswer == p.ExpectedAnswer {
			continue
		}
		return p, nil
	}
	return last, nil
}

func (g *Generator) build(key Key) (*Progression, error) {
	borrowPool := majorBorrowed
	if key.Minor {
		borrowPool = minorBorrowed
	}

	steps := make([]Step, stepCount)
	symbols := make([]string, stepCount)
	for i := range steps {
		var s Step
		if g.rng.Intn(borrowedOdds) == 0 {
			b := borrowPool[g.rng.Intn(len(borrowPool))]
			s = Step{Borrowed: true, Symbol: b.Symbol, RootOffset: b.RootOffset, QualitySym: b.QualitySym}
		} else {
			s = Step{Degree: 1 + g.rng.Intn(7)}
		}

		intervals := s.intervalsFor(key)
		inv := inversionDraws[g.rng.Intn(len(inversionDraws))]
		if inv >= len(intervals) {
			inv = 0
		}
		s.Inversion = inv

		pitches, err := chord.Voice(s.rootClassFor(key), intervals, inv, minOctave, maxOctave)
		if err != nil {
			return nil, err
		}
		s.Pitches = pitches

		steps[i] = s
		symbols[i] = renderStep(key, &s)
	}

	return &Progression{
		Key:            key,
		Steps:          steps,
		ExpectedAnswer: strings.Join(symbols, " "),
	}, nil
}

// renderStep renders one step's Roman-numeral symbol, with a figured-bass
// suffix for non-root inversions.
func renderStep(key Key, s *Step) string {
	var sym string
	if s.Borrowed {
		sym = s.Symbol
	} else {
		sym = key.numeralsOf()[s.Degree-1]
	}
	if s.Inversion != 0 {
		if suffix, ok := inversion.FiguredSuffix(len(s.intervalsFor(key)), s.Inversion); ok {
			sym += suffix
		}
	}
	return sym
}

// Symbol renders the expected text for one step of a progression.
func (p *Progression) Symbol(i int) string {
	return renderStep(p.Key, &p.Steps[i])
}
