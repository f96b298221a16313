package chord

import (
	"github.com/lkorr/music-theory-website-sub004/internal/pitch"
	"github.com/lkorr/music-theory-website-sub004/internal/quality"
)

// Generated is one concrete chord problem: a voicing plus the answer the
// engine expects for it. Immutable once returned; the caller owns it for
// the lifetime of one problem and discards it afterwards.
type Generated struct {
	RootClass      int
	Quality        *quality.Quality
	Inversion      int
	Pitches        []int // strictly ascending
	ExpectedAnswer string
}

// BassClass returns the pitch class of the lowest sounding tone.
func (g *Generated) BassClass() int {
	return pitch.Class(g.Pitches[0])
}

// Same reports whether two problems ask for the identical chord, which
// the generator uses for duplicate avoidance between successive draws.
func (g *Generated) Same(other *Generated) bool {
	if g == nil || other == nil {
		return false
	}
	return g.RootClass == other.RootClass &&
		g.Quality.Symbol == other.Quality.Symbol &&
		g.Inversion == other.Inversion
}
