package katanatsl

// An Fx slot is 221 tokens; later firmware appends the pedal bend block as
// four more tokens without moving anything else.
const (
	fxSize          = 221
	fxSizePedalBend = 225
)

// Fx is a decoded Fx(1) or Fx(2) slot.
type Fx struct {
	On            bool          `json:"on"`
	Type          ModFxType     `json:"type"`
	TouchWah      TouchWah      `json:"t_wah"`
	AutoWah       AutoWah       `json:"auto_wah"`
	PedalWah      PedalWah      `json:"pedal_wah"`
	Compressor    Compressor    `json:"compressor"`
	Limiter       Limiter       `json:"limiter"`
	GraphicEQ     GraphicEQ     `json:"graphic_eq"`
	ParametricEQ  ParametricEQ  `json:"parametric_eq"`
	GuitarSim     GuitarSim     `json:"guitar_sim"`
	SlowGear      SlowGear      `json:"slow_gear"`
	WaveSynth     WaveSynth     `json:"wave_synth"`
	Octave        Octave        `json:"octave"`
	PitchShifter  PitchShifter  `json:"pitch_shifter"`
	Harmonist     Harmonist     `json:"harmonist"`
	AcProcessor   AcProcessor   `json:"ac_processor"`
	Phaser        Phaser        `json:"phaser"`
	Flanger       Flanger       `json:"flanger"`
	Tremolo       Tremolo       `json:"tremolo"`
	Rotary        Modulation    `json:"rotary"`
	UniV          Modulation    `json:"uni_v"`
	Slicer        Slicer        `json:"slicer"`
	Vibrato       Modulation    `json:"vibrato"`
	RingMod       RingMod       `json:"ring_mod"`
	Humanizer     Humanizer     `json:"humanizer"`
	Chorus        Chorus        `json:"chorus"`
	AcGuitarSim   AcGuitarSim   `json:"ac_guitar_sim"`
	Phaser90E     Phaser90E     `json:"phaser_90e"`
	Flanger117E   Flanger117E   `json:"flanger_117e"`
	Wah95E        Wah95E        `json:"wah_95e"`
	DelayChorus30 DelayChorus30 `json:"dc30"`
	HeavyOctave   HeavyOctave   `json:"heavy_octave"`
	PedalBend     *PedalBend    `json:"pedal_bend,omitempty"` // 225-token slots only
	Gaps          []Gap         `json:"gaps,omitempty"`
}

// fxBlock maps a token range of the slot to the block stored there.
type fxBlock struct {
	name   string
	typ    ModFxType
	lo, hi int
	read   func(f *fieldReader, fx *Fx)
	get    func(fx *Fx) any
}

// Offsets 146 and 151..152 hold nothing known and end up in Gaps.
var fxBlocks = []fxBlock{
	{"t_wah", FxTouchWah, 2, 9,
		func(f *fieldReader, fx *Fx) { fx.TouchWah = readTouchWah(f) },
		func(fx *Fx) any { return fx.TouchWah }},
	{"auto_wah", FxAutoWah, 9, 16,
		func(f *fieldReader, fx *Fx) { fx.AutoWah = readAutoWah(f) },
		func(fx *Fx) any { return fx.AutoWah }},
	{"pedal_wah", FxPedalWah, 16, 22,
		func(f *fieldReader, fx *Fx) { fx.PedalWah = readPedalWah(f) },
		func(fx *Fx) any { return fx.PedalWah }},
	{"compressor", FxCompressor, 22, 27,
		func(f *fieldReader, fx *Fx) { fx.Compressor = readCompressor(f) },
		func(fx *Fx) any { return fx.Compressor }},
	{"limiter", FxLimiter, 27, 33,
		func(f *fieldReader, fx *Fx) { fx.Limiter = readLimiter(f) },
		func(fx *Fx) any { return fx.Limiter }},
	{"graphic_eq", FxGraphicEQ, 33, 44,
		func(f *fieldReader, fx *Fx) { fx.GraphicEQ = readGraphicEQ(f) },
		func(fx *Fx) any { return fx.GraphicEQ }},
	{"parametric_eq", FxParametricEQ, 44, 55,
		func(f *fieldReader, fx *Fx) { fx.ParametricEQ = readParametricEQ(f) },
		func(fx *Fx) any { return fx.ParametricEQ }},
	{"guitar_sim", FxGuitarSim, 55, 60,
		func(f *fieldReader, fx *Fx) { fx.GuitarSim = readGuitarSim(f) },
		func(fx *Fx) any { return fx.GuitarSim }},
	{"slow_gear", FxSlowGear, 60, 63,
		func(f *fieldReader, fx *Fx) { fx.SlowGear = readSlowGear(f) },
		func(fx *Fx) any { return fx.SlowGear }},
	{"wave_synth", FxWaveSynth, 63, 71,
		func(f *fieldReader, fx *Fx) { fx.WaveSynth = readWaveSynth(f) },
		func(fx *Fx) any { return fx.WaveSynth }},
	{"octave", FxOctave, 71, 74,
		func(f *fieldReader, fx *Fx) { fx.Octave = readOctave(f) },
		func(fx *Fx) any { return fx.Octave }},
	{"pitch_shifter", FxPitchShifter, 74, 89,
		func(f *fieldReader, fx *Fx) { fx.PitchShifter = readPitchShifter(f) },
		func(fx *Fx) any { return fx.PitchShifter }},
	{"harmonist", FxHarmonist, 89, 124,
		func(f *fieldReader, fx *Fx) { fx.Harmonist = readHarmonist(f) },
		func(fx *Fx) any { return fx.Harmonist }},
	{"ac_processor", FxAcProcessor, 124, 131,
		func(f *fieldReader, fx *Fx) { fx.AcProcessor = readAcProcessor(f) },
		func(fx *Fx) any { return fx.AcProcessor }},
	{"phaser", FxPhaser, 131, 139,
		func(f *fieldReader, fx *Fx) { fx.Phaser = readPhaser(f) },
		func(fx *Fx) any { return fx.Phaser }},
	{"flanger", FxFlanger, 139, 146,
		func(f *fieldReader, fx *Fx) { fx.Flanger = readFlanger(f) },
		func(fx *Fx) any { return fx.Flanger }},
	{"tremolo", FxTremolo, 147, 151,
		func(f *fieldReader, fx *Fx) { fx.Tremolo = readTremolo(f) },
		func(fx *Fx) any { return fx.Tremolo }},
	{"rotary", FxRotary, 153, 158,
		func(f *fieldReader, fx *Fx) { fx.Rotary = readRotary(f) },
		func(fx *Fx) any { return fx.Rotary }},
	{"uni_v", FxUniV, 158, 161,
		func(f *fieldReader, fx *Fx) { fx.UniV = readUniV(f) },
		func(fx *Fx) any { return fx.UniV }},
	{"slicer", FxSlicer, 161, 166,
		func(f *fieldReader, fx *Fx) { fx.Slicer = readSlicer(f) },
		func(fx *Fx) any { return fx.Slicer }},
	{"vibrato", FxVibrato, 166, 171,
		func(f *fieldReader, fx *Fx) { fx.Vibrato = readVibrato(f) },
		func(fx *Fx) any { return fx.Vibrato }},
	{"ring_mod", FxRingMod, 171, 175,
		func(f *fieldReader, fx *Fx) { fx.RingMod = readRingMod(f) },
		func(fx *Fx) any { return fx.RingMod }},
	{"humanizer", FxHumanizer, 175, 183,
		func(f *fieldReader, fx *Fx) { fx.Humanizer = readHumanizer(f) },
		func(fx *Fx) any { return fx.Humanizer }},
	{"chorus", FxChorus, 183, 193,
		func(f *fieldReader, fx *Fx) { fx.Chorus = readChorus(f) },
		func(fx *Fx) any { return fx.Chorus }},
	{"ac_guitar_sim", FxAcGuitarSim, 193, 198,
		func(f *fieldReader, fx *Fx) { fx.AcGuitarSim = readAcGuitarSim(f) },
		func(fx *Fx) any { return fx.AcGuitarSim }},
	{"phaser_90e", FxPhaser90E, 198, 200,
		func(f *fieldReader, fx *Fx) { fx.Phaser90E = readPhaser90E(f) },
		func(fx *Fx) any { return fx.Phaser90E }},
	{"flanger_117e", FxFlanger117E, 200, 204,
		func(f *fieldReader, fx *Fx) { fx.Flanger117E = readFlanger117E(f) },
		func(fx *Fx) any { return fx.Flanger117E }},
	{"wah_95e", FxWah95E, 204, 209,
		func(f *fieldReader, fx *Fx) { fx.Wah95E = readWah95E(f) },
		func(fx *Fx) any { return fx.Wah95E }},
	{"dc30", FxDelayChorus30, 209, 218,
		func(f *fieldReader, fx *Fx) { fx.DelayChorus30 = readDelayChorus30(f) },
		func(fx *Fx) any { return fx.DelayChorus30 }},
	{"heavy_octave", FxHeavyOctave, 218, 221,
		func(f *fieldReader, fx *Fx) { fx.HeavyOctave = readHeavyOctave(f) },
		func(fx *Fx) any { return fx.HeavyOctave }},
}

func DecodeFx(s Section) (*Fx, error) {
	f, err := newFieldReader(s, fxSize, fxSizePedalBend)
	if err != nil {
		return nil, err
	}
	fx := &Fx{
		On:   f.flag(0, "on"),
		Type: enumAt(f, 1, "type", modFxTypes),
	}
	for _, b := range fxBlocks {
		b.read(f.sub(b.name, b.lo, b.hi), fx)
	}
	if f.len() == fxSizePedalBend {
		pb := readPedalBend(f.sub("pedal_bend", fxSize, fxSizePedalBend))
		fx.PedalBend = &pb
	}
	if err := f.done(); err != nil {
		return nil, err
	}
	fx.Gaps = f.gaps()
	return fx, nil
}

// Active returns the block name and parameters of the selected type. A
// pedal bend selection on a slot without the pedal bend tail reports no
// block.
func (fx *Fx) Active() (string, any, bool) {
	if fx.Type == FxPedalBend {
		if fx.PedalBend == nil {
			return "pedal_bend", nil, false
		}
		return "pedal_bend", *fx.PedalBend, true
	}
	for _, b := range fxBlocks {
		if b.typ == fx.Type {
			return b.name, b.get(fx), true
		}
	}
	return "", nil, false
}
