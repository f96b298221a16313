package answer

import (
	"testing"

	"github.com/lkorr/music-theory-website-sub004/internal/chord"
	"github.com/lkorr/music-theory-website-sub004/internal/inversion"
	"github.com/lkorr/music-theory-website-sub004/internal/level"
	"github.com/lkorr/music-theory-website-sub004/internal/pitch"
	"github.com/lkorr/music-theory-website-sub004/internal/quality"
)

// mustGenerate builds the single chord a one-candidate level can produce.
func mustGenerate(t *testing.T, root int, sym string, inv int, labeled bool) (*chord.Generated, *level.Config) {
	t.Helper()
	cfg := &level.Config{
		Name:                     "test",
		Roots:                    []int{root},
		Qualities:                []string{sym},
		Inversions:               []int{inv},
		OctaveRange:              [2]int{3, 5},
		RequireInversionLabeling: labeled,
	}
	gen, err := chord.NewGenerator(1).Generate(cfg, nil)
	if err != nil {
		t.Fatalf("Generate(%s inv %d): %v", sym, inv, err)
	}
	return gen, cfg
}

func TestValidateRootPosition(t *testing.T) {
	expected, cfg := mustGenerate(t, 0, "maj7", 0, false)

	accept := []string{"Cmaj7", "CM7", "CΔ7", "C major 7", "cM7", "C Maj7", "C(maj7)"}
	for _, in := range accept {
		if !Validate(in, expected, cfg) {
			t.Errorf("Validate(%q) = false, want true", in)
		}
	}

	reject := []string{"Cm7", "Dmaj7", "C", "Cmaj", "C7", "", "   "}
	for _, in := range reject {
		if Validate(in, expected, cfg) {
			t.Errorf("Validate(%q) = true, want false", in)
		}
	}
}

func TestValidateEnharmonicRoot(t *testing.T) {
	expected, cfg := mustGenerate(t, 1, "m", 0, false)

	for _, in := range []string{"C#m", "Dbm", "db minor", "C♯m"} {
		if !Validate(in, expected, cfg) {
			t.Errorf("Validate(%q) = false, want true", in)
		}
	}
	if Validate("Dm", expected, cfg) {
		t.Error("Validate(Dm) = true, want false")
	}
}

func TestValidateLabeledTriadInversion(t *testing.T) {
	expected, cfg := mustGenerate(t, 0, "maj", 1, true)
	if expected.ExpectedAnswer != "Cmaj6" {
		t.Fatalf("ExpectedAnswer = %q, want Cmaj6", expected.ExpectedAnswer)
	}

	accept := []string{
		"Cmaj6", "C6", "C/E", "Cmaj/E", "C/Fb",
		"C 1st inversion", "C major first inversion", "C first",
		"C1", // bass is tone index 1
	}
	for _, in := range accept {
		if !Validate(in, expected, cfg) {
			t.Errorf("Validate(%q) = false, want true", in)
		}
	}

	reject := []string{"C64", "C/G", "C/C", "Cmaj", "C", "Cm6", "C second inversion"}
	for _, in := range reject {
		if Validate(in, expected, cfg) {
			t.Errorf("Validate(%q) = true, want false", in)
		}
	}
}

func TestValidateLabeledSeventhInversion(t *testing.T) {
	expected, cfg := mustGenerate(t, 0, "m7", 3, true)
	if expected.ExpectedAnswer != "Cm742" {
		t.Fatalf("ExpectedAnswer = %q, want Cm742", expected.ExpectedAnswer)
	}

	accept := []string{
		"Cm742", "Cm72", "Cm73",
		"Cm7/Bb", "Cm7/A#", "Cmin7/Bb", "C-7/A#",
		"Cm7 third inversion", "Cm7 3rd",
	}
	for _, in := range accept {
		if !Validate(in, expected, cfg) {
			t.Errorf("Validate(%q) = false, want true", in)
		}
	}

	reject := []string{"Cm765", "Cm743", "Cm7", "Cm7/G", "C742", "Cmaj742"}
	for _, in := range reject {
		if Validate(in, expected, cfg) {
			t.Errorf("Validate(%q) = true, want false", in)
		}
	}
}

func TestValidateSlashForTallChords(t *testing.T) {
	expected, cfg := mustGenerate(t, 2, "maj9", 1, true)
	if expected.ExpectedAnswer != "Dmaj9/F#" {
		t.Fatalf("ExpectedAnswer = %q, want Dmaj9/F#", expected.ExpectedAnswer)
	}

	for _, in := range []string{"Dmaj9/F#", "DM9/Gb", "D maj9 / gb", "Dmaj9/1", "Dmaj9 1st inversion"} {
		if !Validate(in, expected, cfg) {
			t.Errorf("Validate(%q) = false, want true", in)
		}
	}
	for _, in := range []string{"Dmaj9", "Dmaj9/A", "Dm9/F#"} {
		if Validate(in, expected, cfg) {
			t.Errorf("Validate(%q) = true, want false", in)
		}
	}

	t.Run("UnlabeledDropsTheMarker", func(t *testing.T) {
		expected, cfg := mustGenerate(t, 2, "maj9", 1, false)
		for _, in := range []string{"Dmaj9", "DM9", "Dmaj9/F#"} {
			if !Validate(in, expected, cfg) {
				t.Errorf("Validate(%q) = false, want true", in)
			}
		}
	})
}

func TestValidateGlyphSpellings(t *testing.T) {
	expected, cfg := mustGenerate(t, 0, "m7b5", 0, false)
	for _, in := range []string{"cm7♭5", "Cm7b5", "Cø", "Cø7", "C half-diminished"} {
		if !Validate(in, expected, cfg) {
			t.Errorf("Validate(%q) = false, want true", in)
		}
	}
	if Validate("Cm7", expected, cfg) {
		t.Error("Validate(Cm7) = true, want false")
	}
}

func TestValidateUnlabeledIgnoresMarkers(t *testing.T) {
	expected, cfg := mustGenerate(t, 0, "maj", 1, false)

	// With labeling off, any recognizable marker is simply ignored, even
	// one naming a different inversion.
	accept := []string{"C", "Cmaj", "C major", "C/E", "C6", "C64", "C/G", "C second inversion"}
	for _, in := range accept {
		if !Validate(in, expected, cfg) {
			t.Errorf("Validate(%q) = false, want true", in)
		}
	}

	reject := []string{"Cm", "C/q", "Cmaj99", "D/E"}
	for _, in := range reject {
		if Validate(in, expected, cfg) {
			t.Errorf("Validate(%q) = true, want false", in)
		}
	}
}

func TestValidateSixChordKeepsItsSix(t *testing.T) {
	t.Run("RootPosition", func(t *testing.T) {
		expected, cfg := mustGenerate(t, 0, "6", 0, true)
		for _, in := range []string{"C6", "Cmaj6", "CM6"} {
			if !Validate(in, expected, cfg) {
				t.Errorf("Validate(%q) = false, want true", in)
			}
		}
		for _, in := range []string{"C", "C64", "C65"} {
			if Validate(in, expected, cfg) {
				t.Errorf("Validate(%q) = true, want false", in)
			}
		}
	})

	t.Run("FirstInversion", func(t *testing.T) {
		expected, cfg := mustGenerate(t, 0, "6", 1, true)
		if expected.ExpectedAnswer != "C665" {
			t.Fatalf("ExpectedAnswer = %q, want C665", expected.ExpectedAnswer)
		}
		for _, in := range []string{"C665", "C6/E", "C61", "C6 first inversion"} {
			if !Validate(in, expected, cfg) {
				t.Errorf("Validate(%q) = false, want true", in)
			}
		}
		for _, in := range []string{"C6", "C665x", "C6/G"} {
			if Validate(in, expected, cfg) {
				t.Errorf("Validate(%q) = true, want false", in)
			}
		}
	})
}

// TestValidateRoundTrip feeds the engine's own rendering, and every alias
// spelling, back through validation for each quality and inversion.
func TestValidateRoundTrip(t *testing.T) {
	for _, sym := range quality.Symbols() {
		q, _ := quality.Lookup(sym)
		for inv := 0; inv < q.Tones(); inv++ {
			expected, cfg := mustGenerate(t, 0, sym, inv, true)

			if !Validate(expected.ExpectedAnswer, expected, cfg) {
				t.Errorf("%s inv %d: own rendering %q rejected", sym, inv, expected.ExpectedAnswer)
			}

			marker := ""
			if inv > 0 {
				if suffix, ok := inversion.FiguredSuffix(q.Tones(), inv); ok {
					marker = suffix
				} else {
					marker = "/" + pitch.ClassName(expected.BassClass())
				}
			}
			for _, alias := range q.Aliases() {
				in := "C" + alias + marker
				if !Validate(in, expected, cfg) {
					t.Errorf("%s inv %d: alias spelling %q rejected", sym, inv, in)
				}
			}
		}
	}
}

func TestValidateTotalOverJunk(t *testing.T) {
	expected, cfg := mustGenerate(t, 0, "maj", 0, false)

	junk := []string{"", " ", "7", "#", "/", "xyz", "Hmaj", "C##", "maj7", "//", "C/"}
	for _, in := range junk {
		if Validate(in, expected, cfg) {
			t.Errorf("Validate(%q) = true, want false", in)
		}
	}

	if Validate("Cmaj", nil, cfg) {
		t.Error("nil expected chord must validate false")
	}
	if Validate("Cmaj", expected, nil) {
		t.Error("nil config must validate false")
	}
}
