package katanatsl

// Patch_1 is 50 tokens on the first firmware and 91 once solo and contour
// selection were added. The extra fields sit past the first 50.
const (
	patch1Size   = 50
	patch1SizeV2 = 91
)

type Reverb struct {
	On          bool        `json:"on"`
	Type        ReverbType  `json:"type"`
	Time        float64     `json:"time"`      // seconds, 0.1..10
	PreDelay    int         `json:"pre_delay"` // ms
	LowCut      LowCutFreq  `json:"low_cut"`
	HighCut     HighCutFreq `json:"high_cut"`
	Density     int         `json:"density"`
	EffectLevel Percent     `json:"effect_level"`
	DirectMix   Percent     `json:"direct_mix"`
	Color       Percent     `json:"color"`
}

type PedalWah struct {
	Type      PedalWahType `json:"type"`
	PedalPos  Percent      `json:"pedal_pos"`
	PedalMin  Percent      `json:"pedal_min"`
	PedalMax  Percent      `json:"pedal_max"`
	Level     Percent      `json:"level"`
	DirectMix Percent      `json:"direct_mix"`
}

// PedalBend is shared by the pedal FX block and the Fx slot tail.
type PedalBend struct {
	PedalPos  Percent `json:"pedal_pos"`
	Pitch     Pitch   `json:"pitch"`
	Level     Percent `json:"level"`
	DirectMix Percent `json:"direct_mix"`
}

type Wah95E struct {
	PedalPos  Percent `json:"pedal_pos"`
	PedalMin  Percent `json:"pedal_min"`
	PedalMax  Percent `json:"pedal_max"`
	Level     Percent `json:"level"`
	DirectMix Percent `json:"direct_mix"`
}

type PedalFx struct {
	Type   PedalFxType `json:"type"`
	Wah    PedalWah    `json:"wah"`
	Bend   PedalBend   `json:"bend"`
	Wah95E Wah95E      `json:"wah95e"`
}

type NoiseSuppressor struct {
	On        bool    `json:"on"`
	Threshold Percent `json:"threshold"`
	Release   Percent `json:"release"`
}

// Patch1V2 holds the fields only the 91-token revision carries.
type Patch1V2 struct {
	SoloOn    bool          `json:"solo_on"`
	SoloLevel Percent       `json:"solo_level"`
	Contour   ContourChoice `json:"contour"`
}

// Patch1 is the decoded Patch_1 section. V2 is nil for 50-token sections.
type Patch1 struct {
	Reverb          Reverb          `json:"reverb"`
	PedalFx         PedalFx         `json:"pedal_fx"`
	NoiseSuppressor NoiseSuppressor `json:"noise_suppressor"`
	MasterKey       Key             `json:"master_key"`
	V2              *Patch1V2       `json:"v2,omitempty"`
	Gaps            []Gap           `json:"gaps,omitempty"`
}

func DecodePatch1(s Section) (*Patch1, error) {
	f, err := newFieldReader(s, patch1Size, patch1SizeV2)
	if err != nil {
		return nil, err
	}
	p := &Patch1{
		Reverb: Reverb{
			On:          f.flag(0, "reverb_on"),
			Type:        enumAt(f, 1, "reverb_type", reverbTypes),
			Time:        float64(f.ranged(2, "reverb_time", 1, 1, 100)) / 10,
			PreDelay:    f.varint(3, 5, "reverb_pre_delay", 500),
			LowCut:      enumAt(f, 5, "reverb_low_cut", lowCutFreqs),
			HighCut:     enumAt(f, 6, "reverb_high_cut", highCutFreqs),
			Density:     f.ranged(7, "reverb_density", 0, 0, 10),
			EffectLevel: f.percent(8, "reverb_effect_level"),
			DirectMix:   f.percent(9, "reverb_direct_mix"),
			Color:       f.percent(11, "reverb_color"),
		},
		PedalFx: PedalFx{
			Type: enumAt(f, 17, "pedal_fx_type", pedalFxTypes),
			Wah: PedalWah{
				Type:      enumAt(f, 18, "pedal_fx_wah_type", pedalWahTypes),
				PedalPos:  f.percent(19, "pedal_fx_wah_pos"),
				PedalMin:  f.percent(20, "pedal_fx_wah_min"),
				PedalMax:  f.percent(21, "pedal_fx_wah_max"),
				Level:     f.percent(22, "pedal_fx_wah_level"),
				DirectMix: f.percent(23, "pedal_fx_wah_direct_mix"),
			},
			Bend: PedalBend{
				Pitch:     f.pitch(24, "pedal_fx_bend_pitch"),
				PedalPos:  f.percent(25, "pedal_fx_bend_pos"),
				Level:     f.percent(26, "pedal_fx_bend_level"),
				DirectMix: f.percent(27, "pedal_fx_bend_direct_mix"),
			},
			Wah95E: Wah95E{
				PedalPos:  f.percent(28, "pedal_fx_wah95_pos"),
				PedalMin:  f.percent(29, "pedal_fx_wah95_min"),
				PedalMax:  f.percent(30, "pedal_fx_wah95_max"),
				Level:     f.percent(31, "pedal_fx_wah95_level"),
				DirectMix: f.percent(32, "pedal_fx_wah95_direct_mix"),
			},
		},
		NoiseSuppressor: NoiseSuppressor{
			On:        f.flag(38, "noise_suppressor_on"),
			Threshold: f.percent(39, "noise_suppressor_threshold"),
			Release:   f.percent(40, "noise_suppressor_release"),
		},
		MasterKey: enumAt(f, 49, "master_key", keys),
	}
	if f.len() == patch1SizeV2 {
		p.V2 = &Patch1V2{
			SoloOn:    f.flag(84, "solo_on"),
			SoloLevel: f.percent(85, "solo_level"),
		}
		x, okx := f.raw(86, "contour")
		y, oky := f.raw(87, "contour")
		if okx && oky {
			c, err := ContourFromPair(x, y)
			if err != nil {
				f.fail(err)
			}
			p.V2.Contour = c
		}
	}
	if err := f.done(); err != nil {
		return nil, err
	}
	p.Gaps = f.gaps()
	return p, nil
}

// ContourFromPair maps the two contour selector bytes of Patch_1 to the
// selected contour.
func ContourFromPair(x, y uint8) (ContourChoice, error) {
	switch {
	case x == 0 && y == 0:
		return ContourOff, nil
	case x == 1 && y == 0:
		return Contour1, nil
	case x == 1 && y == 1:
		return Contour2, nil
	case x == 1 && y == 2:
		return Contour3, nil
	}
	return 0, &InvalidContourPairError{X: int(x), Y: int(y)}
}
