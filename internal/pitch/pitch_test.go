package pitch

import "testing"

func TestClassNames(t *testing.T) {
	for pc := 0; pc < ClassesPerOctave; pc++ {
		names := ClassNames(pc)
		if len(names) == 0 {
			t.Errorf("pitch class %d has no names", pc)
		}
		for _, name := range names {
			got, ok := ParseClass(name)
			if !ok {
				t.Errorf("canonical name %q does not parse", name)
			}
			if got != pc {
				t.Errorf("ParseClass(%q) = %d, want %d", name, got, pc)
			}
		}
	}

	t.Run("NegativeWraps", func(t *testing.T) {
		if ClassName(-1) != "B" {
			t.Errorf("ClassName(-1) = %q, want B", ClassName(-1))
		}
	})
}

func TestParseClass(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"C", 0, true},
		{"c", 0, true},
		{"C#", 1, true},
		{"db", 1, true},
		{"Bb", 10, true},
		{"f♯", 6, true},
		{"g♭", 6, true},
		{"Cb", 11, true},
		{"E#", 5, true},
		{"H", 0, false},
		{"", 0, false},
		{"C##", 0, false},
		{"7", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseClass(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseClass(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("ParseClass(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestEnharmonic(t *testing.T) {
	pairs := []struct {
		a, b string
		want bool
	}{
		{"C#", "Db", true},
		{"c#", "DB", true},
		{"F#", "Gb", true},
		{"E", "E", true},
		{"C", "D", false},
		{"C#", "D#", false},
		{"X", "C", false},
		{"C", "", false},
	}
	for _, tc := range pairs {
		if got := Enharmonic(tc.a, tc.b); got != tc.want {
			t.Errorf("Enharmonic(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}

	t.Run("Symmetry", func(t *testing.T) {
		for pcA := 0; pcA < ClassesPerOctave; pcA++ {
			for _, a := range ClassNames(pcA) {
				for pcB := 0; pcB < ClassesPerOctave; pcB++ {
					for _, b := range ClassNames(pcB) {
						if Enharmonic(a, b) != Enharmonic(b, a) {
							t.Errorf("Enharmonic(%q, %q) asymmetric", a, b)
						}
					}
				}
			}
		}
	})
}

func TestName(t *testing.T) {
	cases := []struct {
		pitch int
		want  string
	}{
		{60, "C5"},
		{61, "C#5"},
		{47, "B3"},
		{0, "C0"},
	}
	for _, tc := range cases {
		if got := Name(tc.pitch); got != tc.want {
			t.Errorf("Name(%d) = %q, want %q", tc.pitch, got, tc.want)
		}
	}
}
