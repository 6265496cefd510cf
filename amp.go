package katanatsl

const ampSize = 72

// Booster is the boost/overdrive block at the head of Patch_0.
type Booster struct {
	On        bool      `json:"on"`
	Type      BoostType `json:"type"`
	Drive     Percent   `json:"drive"`
	Bottom    int       `json:"bottom"` // -50..50
	Tone      int       `json:"tone"`   // -50..50
	SoloOn    bool      `json:"solo_on"`
	SoloLevel Percent   `json:"solo_level"`
	Level     Percent   `json:"level"`
	DirectMix Percent   `json:"direct_mix"`
}

// Amp is the preamp model and its tone stack.
type Amp struct {
	Type     AmpType `json:"type"`
	Gain     Percent `json:"gain"`
	Bass     Percent `json:"bass"`
	Middle   Percent `json:"middle"`
	Treble   Percent `json:"treble"`
	Presence Percent `json:"presence"`
	Volume   Percent `json:"volume"`
}

// BoostAmp is the decoded Patch_0 section.
type BoostAmp struct {
	Boost Booster    `json:"boost"`
	Amp   Amp        `json:"amp"`
	EQ    *Equalizer `json:"eq"`
	Gaps  []Gap      `json:"gaps,omitempty"`
}

func DecodeBoostAmp(s Section) (*BoostAmp, error) {
	f, err := newFieldReader(s, ampSize)
	if err != nil {
		return nil, err
	}
	ba := &BoostAmp{
		Boost: Booster{
			On:        f.flag(0, "boost_on"),
			Type:      enumAt(f, 1, "boost_type", boostTypes),
			Drive:     f.percent(2, "boost_drive"),
			Bottom:    f.centered(3, "boost_bottom"),
			Tone:      f.centered(4, "boost_tone"),
			SoloOn:    f.flag(5, "boost_solo_on"),
			SoloLevel: f.percent(6, "boost_solo_level"),
			Level:     f.percent(7, "boost_level"),
			DirectMix: f.percent(8, "boost_direct_mix"),
		},
		Amp: Amp{
			Type:     enumAt(f, 17, "amp_type", ampTypes),
			Gain:     f.percent(18, "amp_gain"),
			Bass:     f.percent(20, "amp_bass"),
			Middle:   f.percent(21, "amp_middle"),
			Treble:   f.percent(22, "amp_treble"),
			Presence: f.percent(23, "amp_presence"),
			Volume:   f.percent(24, "amp_volume"),
		},
		EQ: readEqualizer(f.sub("eq", 48, ampSize)),
	}
	if err := f.done(); err != nil {
		return nil, err
	}
	ba.Gaps = f.gaps()
	return ba, nil
}
