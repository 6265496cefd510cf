package katanatsl

// KnobTarget is the parameter a front-panel knob is assigned to. Its
// meaning depends on the block the knob controls.
type KnobTarget uint8

func knobDomain(name string, targets ...string) *enumDomain[KnobTarget] {
	entries := make([]entry[KnobTarget], len(targets))
	for i, t := range targets {
		entries[i] = entry[KnobTarget]{code: KnobTarget(i), name: t}
	}
	return newDomain(name, entries)
}

var (
	knobBooster = knobDomain("KnobBooster",
		"Preset", "Drive", "Tone", "Bottom", "EffectLevel", "SoloSwitch", "SoloLevel", "DirectMix")
	knobDelay = knobDomain("KnobDelay",
		"Preset", "DelayTime", "Feedback", "HighCut", "EffectLevel", "DirectMix", "ModRate", "ModDepth")
	knobReverb = knobDomain("KnobReverb",
		"Preset", "ReverbTime", "PreDelay", "EffectLevel", "DirectMix", "LowCut", "HighCut", "Density", "SpringSens")
)

// Heavy octave skips codes 1..7.
var knobHeavyOctave = newDomain("KnobHeavyOctave", []entry[KnobTarget]{
	{0, "Preset", ""},
	{8, "Oct1Level", ""},
	{9, "Oct2Level", ""},
	{10, "DirectMix", ""},
})

var fxKnobs = map[ModFxType]*enumDomain[KnobTarget]{
	FxTouchWah: knobDomain("KnobTouchWah",
		"Preset", "Sens", "Freq", "Peak", "EffectLevel", "DirectMix"),
	FxAutoWah: knobDomain("KnobAutoWah",
		"Preset", "Rate", "Depth", "Freq", "Peak", "EffectLevel", "DirectMix"),
	FxPedalWah: knobDomain("KnobPedalWah",
		"Preset", "PedalPos", "PedalMin", "PedalMax", "EffectLevel", "DirectMix"),
	FxCompressor: knobDomain("KnobCompressor",
		"Preset", "Sustain", "Attack", "Tone", "Level"),
	FxLimiter: knobDomain("KnobLimiter",
		"Preset", "Threshold", "Ratio", "Attack", "Release", "Level"),
	FxGraphicEQ: knobDomain("KnobGraphicEq",
		"Preset", "Hz31", "Hz62", "Hz125", "Hz250", "Hz500", "Hz1000", "Hz2000", "Hz4000", "Hz8000", "Hz16000", "Level"),
	FxParametricEQ: knobDomain("KnobParametricEq",
		"Preset", "LowGain", "LowMidGain", "HighMidGain", "HighGain", "Level",
		"LowMidFreq", "LowMidQ", "HighMidFreq", "HighMidQ", "LowCut", "HighCut"),
	FxGuitarSim: knobDomain("KnobGuitarSim",
		"Preset", "Low", "High", "Body", "Level"),
	FxSlowGear: knobDomain("KnobSlowGear",
		"Preset", "Sens", "RiseTime", "Level"),
	FxWaveSynth: knobDomain("KnobWaveSynth",
		"Preset", "Cutoff", "Reso", "Level", "FilterSens", "FilterDecay", "FilterDepth", "DirectMix"),
	FxOctave: knobDomain("KnobOctave",
		"Preset", "EffectLevel", "DirectMix"),
	FxPitchShifter: knobDomain("KnobPitchShifter",
		"Preset", "Ps1Pitch", "Ps1Level", "Ps2Pitch", "Ps2Level", "DirectMix",
		"Ps1Fine", "Ps1PreDelay", "Ps1Feedback", "Ps2Fine", "Ps2PreDelay"),
	FxHarmonist: knobDomain("KnobHarmonist",
		"Preset", "Hr1Harmony", "Hr2Harmony", "MasterKey", "DirectMix",
		"Hr1PreDelay", "Hr1Feedback", "Hr1Level", "Hr2PreDelay", "Hr2Level"),
	FxAcProcessor: knobDomain("KnobAcProcessor",
		"Preset", "Bass", "Middle", "Treble", "Presence", "Level", "MidFreq"),
	FxPhaser: knobDomain("KnobPhaser",
		"Preset", "Rate", "Depth", "Reso", "Manual", "EffectLevel", "StepRate", "DirectMix"),
	FxFlanger: knobDomain("KnobFlanger",
		"Preset", "Rate", "Depth", "Reso", "Manual", "EffectLevel", "LowCut", "DirectMix"),
	FxTremolo: knobDomain("KnobTremolo",
		"Preset", "WaveShape", "Rate", "Depth", "Level"),
	FxRotary: knobDomain("KnobRotary",
		"Preset", "Rate", "Depth", "Level"),
	FxUniV: knobDomain("KnobUniV",
		"Preset", "Rate", "Depth", "Level"),
	FxSlicer: knobDomain("KnobSlicer",
		"Preset", "Rate", "TriggerSens", "EffectLevel", "DirectMix"),
	FxVibrato: knobDomain("KnobVibrato",
		"Preset", "Rate", "Depth", "Level"),
	FxRingMod: knobDomain("KnobRingMod",
		"Preset", "Frequency", "EffectLevel", "DirectMix"),
	FxHumanizer: knobDomain("KnobHumanizer",
		"Preset", "Rate", "Depth", "Level", "Sens", "Manual"),
	FxChorus: knobDomain("KnobChorus",
		"Preset", "LowRate", "LowDepth", "LowPreDelay", "LowLevel", "DirectMix",
		"HighRate", "HighDepth", "HighPreDelay", "HighLevel", "Crossover"),
	FxAcGuitarSim: knobDomain("KnobAcGuitarSim",
		"Preset", "Low", "High", "Body", "Level"),
	FxPhaser90E: knobDomain("KnobPhaser90E",
		"Preset", "Speed"),
	FxFlanger117E: knobDomain("KnobFlanger117E",
		"Preset", "Manual", "Width", "Speed", "Regen"),
	FxWah95E: knobDomain("KnobWah95E",
		"Preset", "PedalPos", "PedalMin", "PedalMax", "EffectLevel", "DirectMix"),
	FxDelayChorus30: knobDomain("KnobDC30",
		"Preset", "ChorusIntensity", "EchoRepeatRate", "EchoIntensity", "EchoVolume", "InputVolume", "Tone"),
	FxHeavyOctave: knobHeavyOctave,
	FxPedalBend: knobDomain("KnobPedalBend",
		"Preset", "PedalPos", "Pitch", "EffectLevel", "DirectMix"),
}

// KnobDomainFor returns the knob-assign domain of an Fx type.
func KnobDomainFor(fx ModFxType) (Domain, bool) {
	d, ok := fxKnobs[fx]
	if !ok {
		return nil, false
	}
	return d, true
}

// KnobTargetName resolves a knob-assign code for an Fx type.
func KnobTargetName(fx ModFxType, code uint8) (string, error) {
	d, ok := fxKnobs[fx]
	if !ok {
		return "", &UnknownEnumCodeError{Domain: modFxTypes.Name(), Code: uint8(fx)}
	}
	v, err := d.Lookup(code)
	if err != nil {
		return "", err
	}
	return v.Name, nil
}

// BoosterKnobName, DelayKnobName and ReverbKnobName resolve the knob
// assignments of the fixed blocks.
func BoosterKnobName(code uint8) (string, error) { return knobName(knobBooster, code) }
func DelayKnobName(code uint8) (string, error) { return knobName(knobDelay, code) }
func ReverbKnobName(code uint8) (string, error) { return knobName(knobReverb, code) }

func knobName(d *enumDomain[KnobTarget], code uint8) (string, error) {
	v, err := d.Lookup(code)
	if err != nil {
		return "", err
	}
	return v.Name, nil
}
