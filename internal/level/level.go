package level

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/lkorr/music-theory-website-sub004/internal/errors"
	"github.com/lkorr/music-theory-website-sub004/internal/quality"
)

// Config describes one practice level: which chords may be asked and how
// answers must be labeled. The engine never mutates a Config; it is a
// read-only value per generation call.
type Config struct {
	Name                     string   `yaml:"name"`
	Roots                    []int    `yaml:"roots"`
	Qualities                []string `yaml:"qualities"`
	Inversions               []int    `yaml:"inversions"`
	OctaveRange              [2]int   `yaml:"octave_range,flow"`
	RequireInversionLabeling bool     `yaml:"require_inversion_labeling"`
}

// Validate checks the configuration preconditions the generator relies on.
// Violations are level authoring mistakes, not user errors, so they
// surface as ConfigError.
func (c *Config) Validate() error {
	if len(c.Roots) == 0 {
		return apperrors.NewConfigError("roots", "at least one root pitch class required", nil)
	}
	for _, r := range c.Roots {
		if r < 0 || r > 11 {
			return apperrors.NewConfigError("roots", fmt.Sprintf("pitch class %d out of range 0-11", r), nil)
		}
	}
	if len(c.Qualities) == 0 {
		return apperrors.NewConfigError("qualities", "at least one quality required", nil)
	}
	for _, sym := range c.Qualities {
		if _, ok := quality.Lookup(sym); !ok {
			return apperrors.NewConfigError("qualities", fmt.Sprintf("unknown symbol %q", sym), apperrors.ErrUnknownQuality)
		}
	}
	if len(c.Inversions) == 0 {
		return apperrors.NewConfigError("inversions", "at least one inversion index required", nil)
	}
	for _, idx := range c.Inversions {
		if idx < 0 {
			return apperrors.NewConfigError("inversions", fmt.Sprintf("negative index %d", idx), apperrors.ErrInvalidInversion)
		}
	}
	if c.OctaveRange[0] < 0 || c.OctaveRange[1] < c.OctaveRange[0] {
		return apperrors.NewConfigError("octave_range",
			fmt.Sprintf("invalid range [%d,%d]", c.OctaveRange[0], c.OctaveRange[1]), nil)
	}
	return nil
}

var allRoots = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

// builtins in progression-of-difficulty order.
var builtins = []*Config{
	{
		Name:        "triads",
		Roots:       allRoots,
		Qualities:   []string{"maj", "m", "dim", "aug"},
		Inversions:  []int{0},
		OctaveRange: [2]int{4, 5},
	},
	{
		Name:                     "triads-inversions",
		Roots:                    allRoots,
		Qualities:                []string{"maj", "m", "dim", "aug", "sus2", "sus4"},
		Inversions:               []int{0, 1, 2},
		OctaveRange:              [2]int{4, 5},
		RequireInversionLabeling: true,
	},
	{
		Name:        "sevenths",
		Roots:       allRoots,
		Qualities:   []string{"maj7", "m7", "7", "m7b5", "dim7"},
		Inversions:  []int{0},
		OctaveRange: [2]int{4, 5},
	},
	{
		Name:                     "sevenths-inversions",
		Roots:                    allRoots,
		Qualities:                []string{"maj7", "m7", "7", "m7b5", "dim7", "mMaj7", "6", "m6"},
		Inversions:               []int{0, 1, 2, 3},
		OctaveRange:              [2]int{4, 5},
		RequireInversionLabeling: true,
	},
	{
		Name:                     "extended",
		Roots:                    allRoots,
		Qualities:                []string{"maj9", "m9", "9", "7b9", "7#9", "add9", "11", "m11", "13", "m13"},
		Inversions:               []int{0, 1},
		OctaveRange:              [2]int{3, 5},
		RequireInversionLabeling: true,
	},
	{
		Name:                     "everything",
		Roots:                    allRoots,
		Qualities:                quality.Symbols(),
		Inversions:               []int{0, 1, 2, 3},
		OctaveRange:              [2]int{3, 5},
		RequireInversionLabeling: true,
	},
}

// Get returns a built-in level by name.
func Get(name string) (*Config, error) {
	for _, c := range builtins {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownLevel, name)
}

// Names lists the built-in levels in difficulty order.
func Names() []string {
	out := make([]string, len(builtins))
	for i, c := range builtins {
		out[i] = c.Name
	}
	return out
}

// LoadFile reads extra level definitions from a YAML file. Every loaded
// level is validated before any is returned.
func LoadFile(path string) ([]*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read levels file: %w", err)
	}
	var configs []*Config
	if err := yaml.Unmarshal(data, &configs); err != nil {
		return nil, fmt.Errorf("parse levels file: %w", err)
	}
	for _, c := range configs {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("level %q: %w", c.Name, err)
		}
	}
	return configs, nil
}
