package katanatsl

import "gitlab.com/gomidi/midi/v2"

// HarmonistUser is the user harmony scale: a shift for each input pitch
// class, starting at E as the hardware lists them.
type HarmonistUser struct {
	E      Pitch `json:"e"`
	F      Pitch `json:"f"`
	FSharp Pitch `json:"f_sharp"`
	G      Pitch `json:"g"`
	AFlat  Pitch `json:"a_flat"`
	A      Pitch `json:"a"`
	BFlat  Pitch `json:"b_flat"`
	B      Pitch `json:"b"`
	C      Pitch `json:"c"`
	DFlat  Pitch `json:"d_flat"`
	D      Pitch `json:"d"`
	EFlat  Pitch `json:"e_flat"`
}

var userScaleNames = [12]string{"e", "f", "f_sharp", "g", "a_flat", "a", "b_flat", "b", "c", "d_flat", "d", "e_flat"}

func readHarmonistUser(f *fieldReader) HarmonistUser {
	var p [12]Pitch
	for i, n := range userScaleNames {
		p[i] = f.pitch(i, n)
	}
	return HarmonistUser{
		E: p[0], F: p[1], FSharp: p[2], G: p[3], AFlat: p[4], A: p[5],
		BFlat: p[6], B: p[7], C: p[8], DFlat: p[9], D: p[10], EFlat: p[11],
	}
}

func (u HarmonistUser) shifts() [12]Pitch {
	return [12]Pitch{u.E, u.F, u.FSharp, u.G, u.AFlat, u.A, u.BFlat, u.B, u.C, u.DFlat, u.D, u.EFlat}
}

// HarmonyTarget is one degree of a user scale and the note it is moved to.
type HarmonyTarget struct {
	Degree string `json:"degree"`
	Shift  Pitch  `json:"shift"`
	Target string `json:"target"`
}

// Targets resolves the scale against middle octave E..Eb and names each
// shifted note. Octave information is dropped from the names.
func (u HarmonistUser) Targets() []HarmonyTarget {
	e4 := midi.E(4)
	out := make([]HarmonyTarget, 0, 12)
	for i, s := range u.shifts() {
		degree := midi.Note(e4 + uint8(i))
		target := midi.Note(int(degree) + int(s))
		out = append(out, HarmonyTarget{
			Degree: degree.Name(),
			Shift:  s,
			Target: target.Name(),
		})
	}
	return out
}

// Tonic returns the key's major tonic in octave 4.
func (k Key) Tonic() midi.Note {
	return midi.Note(midi.C(4) + uint8(k)%12)
}
