package katanatsl

const eqSize = 24

// Equalizer is the 24-token EQ block. It is embedded in Patch_0 and also
// stands alone as Eq(2).
type Equalizer struct {
	On          bool        `json:"on"`
	Type        EqType      `json:"type"`
	LowCut      LowCutFreq  `json:"low_cut"`
	LowGain     Gain20dB    `json:"low_gain"`
	LowMidFreq  MidFreq     `json:"low_mid_freq"`
	LowMidQ     Q           `json:"low_mid_q"`
	LowMidGain  Gain20dB    `json:"low_mid_gain"`
	HighMidFreq MidFreq     `json:"high_mid_freq"`
	HighMidQ    Q           `json:"high_mid_q"`
	HighMidGain Gain20dB    `json:"high_mid_gain"`
	HighGain    Gain20dB    `json:"high_gain"`
	HighCut     HighCutFreq `json:"high_cut"`
	Level       Gain20dB    `json:"level"`
	Bars        GraphicBars `json:"bars"` // graphic mode, 12 dB scale
}

// GraphicBars holds the ten graphic EQ bands plus their level.
type GraphicBars struct {
	Hz31    Gain12dB `json:"31"`
	Hz62    Gain12dB `json:"62"`
	Hz125   Gain12dB `json:"125"`
	Hz250   Gain12dB `json:"250"`
	Hz500   Gain12dB `json:"500"`
	Hz1000  Gain12dB `json:"1000"`
	Hz2000  Gain12dB `json:"2000"`
	Hz4000  Gain12dB `json:"4000"`
	Hz8000  Gain12dB `json:"8000"`
	Hz16000 Gain12dB `json:"16000"`
	Level   Gain12dB `json:"level"`
}

// DecodeEqualizer decodes a standalone EQ section.
func DecodeEqualizer(s Section) (*Equalizer, error) {
	f, err := newFieldReader(s, eqSize)
	if err != nil {
		return nil, err
	}
	eq := readEqualizer(f)
	if err := f.done(); err != nil {
		return nil, err
	}
	return eq, nil
}

func readEqualizer(f *fieldReader) *Equalizer {
	return &Equalizer{
		On:          f.flag(0, "on"),
		Type:        enumAt(f, 1, "type", eqTypes),
		LowCut:      enumAt(f, 2, "low_cut", lowCutFreqs),
		LowGain:     f.gain20(3, "low_gain"),
		LowMidFreq:  enumAt(f, 4, "low_mid_freq", midFreqs),
		LowMidQ:     f.q(5, "low_mid_q"),
		LowMidGain:  f.gain20(6, "low_mid_gain"),
		HighMidFreq: enumAt(f, 7, "high_mid_freq", midFreqs),
		HighMidQ:    f.q(8, "high_mid_q"),
		HighMidGain: f.gain20(9, "high_mid_gain"),
		HighGain:    f.gain20(10, "high_gain"),
		HighCut:     enumAt(f, 11, "high_cut", highCutFreqs),
		Level:       f.gain20(12, "level"),
		Bars:        readBars(f, 13),
	}
}

var barNames = [...]string{"31", "62", "125", "250", "500", "1000", "2000", "4000", "8000", "16000", "level"}

func readBars(f *fieldReader, lo int) GraphicBars {
	var v [len(barNames)]Gain12dB
	for i, n := range barNames {
		v[i] = f.gain12(lo+i, "bar_"+n)
	}
	return GraphicBars{
		Hz31: v[0], Hz62: v[1], Hz125: v[2], Hz250: v[3], Hz500: v[4], Hz1000: v[5],
		Hz2000: v[6], Hz4000: v[7], Hz8000: v[8], Hz16000: v[9], Level: v[10],
	}
}

const soloEqSize = 10

// SoloEQ is the Patch_Mk2V2 block, present only on firmware 2 hardware.
type SoloEQ struct {
	Position EqPosition  `json:"position"`
	On       bool        `json:"on"`
	LowCut   LowCutFreq  `json:"low_cut"`
	LowGain  Gain12dB    `json:"low_gain"`
	MidFreq  MidFreq     `json:"mid_freq"`
	MidQ     Q           `json:"mid_q"`
	MidGain  Gain12dB    `json:"mid_gain"`
	HighGain Gain12dB    `json:"high_gain"`
	HighCut  HighCutFreq `json:"high_cut"`
	Level    Gain12dB    `json:"level"`
}

func DecodeSoloEQ(s Section) (*SoloEQ, error) {
	f, err := newFieldReader(s, soloEqSize)
	if err != nil {
		return nil, err
	}
	eq := &SoloEQ{
		Position: enumAt(f, 0, "position", eqPositions),
		On:       f.flag(1, "on"),
		LowCut:   enumAt(f, 2, "low_cut", lowCutFreqs),
		LowGain:  f.gain12(3, "low_gain"),
		MidFreq:  enumAt(f, 4, "mid_freq", midFreqs),
		MidQ:     f.q(5, "mid_q"),
		MidGain:  f.gain12(6, "mid_gain"),
		HighGain: f.gain12(7, "high_gain"),
		HighCut:  enumAt(f, 8, "high_cut", highCutFreqs),
		Level:    f.gain12(9, "level"),
	}
	if err := f.done(); err != nil {
		return nil, err
	}
	return eq, nil
}
