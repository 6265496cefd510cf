package katanatsl

// Enum domains of the KATANA MkII parameter set. Codes are sparse; a code
// missing from a table is rejected at decode time.

type AmpType uint8

const (
	AmpNaturalClean AmpType = 0x00
	AmpAcoustic     AmpType = 0x01
	AmpComboCrunch  AmpType = 0x02
	AmpStackCrunch  AmpType = 0x03
	AmpHiGainStack  AmpType = 0x04
	AmpPowerDrive   AmpType = 0x05
	AmpExtremeLead  AmpType = 0x06
	AmpCoreMetal    AmpType = 0x07
	AmpClean        AmpType = 0x08
	AmpCleanTwin    AmpType = 0x09
	AmpProCrunch    AmpType = 0x0A
	AmpCrunch       AmpType = 0x0B
	AmpDeluxeCrunch AmpType = 0x0C
	AmpVODrive      AmpType = 0x0D
	AmpVOLead       AmpType = 0x0E
	AmpMatchDrive   AmpType = 0x0F
	AmpBGLead       AmpType = 0x10
	AmpBGDrive      AmpType = 0x11
	AmpMS1959I      AmpType = 0x12
	AmpMS1959III    AmpType = 0x13
	AmpRFireVintage AmpType = 0x14
	AmpRFireModern  AmpType = 0x15
	AmpTAmpLead     AmpType = 0x16
	AmpBrown        AmpType = 0x17
	AmpLead         AmpType = 0x18
	AmpCustom       AmpType = 0x19
	AmpAcousticVar  AmpType = 0x1C
	AmpCleanVar     AmpType = 0x1D
	AmpCrunchVar    AmpType = 0x1E
	AmpLeadVar      AmpType = 0x1F
	AmpBrownVar     AmpType = 0x20
)

var ampTypes = newDomain("AmpType", []entry[AmpType]{
	{AmpNaturalClean, "NaturalClean", ""},
	{AmpAcoustic, "Acoustic", ""},
	{AmpComboCrunch, "ComboCrunch", ""},
	{AmpStackCrunch, "StackCrunch", ""},
	{AmpHiGainStack, "HiGainStack", ""},
	{AmpPowerDrive, "PowerDrive", ""},
	{AmpExtremeLead, "ExtremeLead", ""},
	{AmpCoreMetal, "CoreMetal", ""},
	{AmpClean, "Clean", ""},
	{AmpCleanTwin, "CleanTwin", ""},
	{AmpProCrunch, "ProCrunch", ""},
	{AmpCrunch, "Crunch", ""},
	{AmpDeluxeCrunch, "DeluxeCrunch", ""},
	{AmpVODrive, "VODrive", ""},
	{AmpVOLead, "VOLead", ""},
	{AmpMatchDrive, "MatchDrive", ""},
	{AmpBGLead, "BGLead", ""},
	{AmpBGDrive, "BGDrive", ""},
	{AmpMS1959I, "MS1959I", ""},
	{AmpMS1959III, "MS1959I_II", ""},
	{AmpRFireVintage, "RFireVintage", ""},
	{AmpRFireModern, "RFireModern", ""},
	{AmpTAmpLead, "TAmpLead", ""},
	{AmpBrown, "Brown", ""},
	{AmpLead, "Lead", ""},
	{AmpCustom, "Custom", ""},
	{AmpAcousticVar, "AcousticVar", ""},
	{AmpCleanVar, "CleanVar", ""},
	{AmpCrunchVar, "CrunchVar", ""},
	{AmpLeadVar, "LeadVar", ""},
	{AmpBrownVar, "BrownVar", ""},
})

func (v AmpType) String() string { return ampTypes.nameOf(v) }
func (v AmpType) MarshalText() ([]byte, error) { return ampTypes.text(v) }

type BoostType uint8

const (
	BoostMidBoost     BoostType = 0x00
	BoostCleanBoost   BoostType = 0x01
	BoostTrebleBoost  BoostType = 0x02
	BoostCrunchOD     BoostType = 0x03
	BoostNaturalOD    BoostType = 0x04
	BoostWarmOD       BoostType = 0x05
	BoostFatDS        BoostType = 0x06
	BoostMetalDS      BoostType = 0x08
	BoostOCTFuzz      BoostType = 0x09
	BoostBluesDrive   BoostType = 0x0A
	BoostOverdrive    BoostType = 0x0B
	BoostTubescreamer BoostType = 0x0C
	BoostTurboOD      BoostType = 0x0D
	BoostDistortion   BoostType = 0x0E
	BoostRat          BoostType = 0x0F
	BoostGuVDS        BoostType = 0x10
	BoostDSTPlus      BoostType = 0x11
	BoostMetalZone    BoostType = 0x12
	BoostSixtiesFuzz  BoostType = 0x13
	BoostMuffFuzz     BoostType = 0x14
	BoostHM2          BoostType = 0x15
	BoostMetalCore    BoostType = 0x16
	BoostCentaOD      BoostType = 0x17
)

var boostTypes = newDomain("BoostType", []entry[BoostType]{
	{BoostMidBoost, "MidBoost", ""},
	{BoostCleanBoost, "CleanBoost", ""},
	{BoostTrebleBoost, "TrebleBoost", ""},
	{BoostCrunchOD, "CrunchOD", ""},
	{BoostNaturalOD, "NaturalOD", ""},
	{BoostWarmOD, "WarmOD", ""},
	{BoostFatDS, "FatDS", ""},
	{BoostMetalDS, "MetalDS", ""},
	{BoostOCTFuzz, "OCTFuzz", ""},
	{BoostBluesDrive, "BluesDrive", ""},
	{BoostOverdrive, "Overdrive", ""},
	{BoostTubescreamer, "Tubescreamer", ""},
	{BoostTurboOD, "TurboOD", ""},
	{BoostDistortion, "Distortion", ""},
	{BoostRat, "Rat", ""},
	{BoostGuVDS, "GuVDS", ""},
	{BoostDSTPlus, "DSTPlus", ""},
	{BoostMetalZone, "MetalZone", ""},
	{BoostSixtiesFuzz, "SixtiesFuzz", ""},
	{BoostMuffFuzz, "MuffFuzz", ""},
	{BoostHM2, "HM2", ""},
	{BoostMetalCore, "MetalCore", ""},
	{BoostCentaOD, "CentaOD", ""},
})

func (v BoostType) String() string { return boostTypes.nameOf(v) }
func (v BoostType) MarshalText() ([]byte, error) { return boostTypes.text(v) }

type ModFxType uint8

const (
	FxTouchWah      ModFxType = 0x00
	FxAutoWah       ModFxType = 0x01
	FxPedalWah      ModFxType = 0x02
	FxCompressor    ModFxType = 0x03
	FxLimiter       ModFxType = 0x04
	FxGraphicEQ     ModFxType = 0x06
	FxParametricEQ  ModFxType = 0x07
	FxGuitarSim     ModFxType = 0x09
	FxSlowGear      ModFxType = 0x0A
	FxWaveSynth     ModFxType = 0x0C
	FxOctave        ModFxType = 0x0E
	FxPitchShifter  ModFxType = 0x0F
	FxHarmonist     ModFxType = 0x10
	FxAcProcessor   ModFxType = 0x12
	FxPhaser        ModFxType = 0x13
	FxFlanger       ModFxType = 0x14
	FxTremolo       ModFxType = 0x15
	FxRotary        ModFxType = 0x16
	FxUniV          ModFxType = 0x17
	FxSlicer        ModFxType = 0x19
	FxVibrato       ModFxType = 0x1A
	FxRingMod       ModFxType = 0x1B
	FxHumanizer     ModFxType = 0x1C
	FxChorus        ModFxType = 0x1D
	FxAcGuitarSim   ModFxType = 0x1F
	FxPhaser90E     ModFxType = 0x23
	FxFlanger117E   ModFxType = 0x24
	FxWah95E        ModFxType = 0x25
	FxDelayChorus30 ModFxType = 0x26
	FxHeavyOctave   ModFxType = 0x27
	FxPedalBend     ModFxType = 0x28
)

var modFxTypes = newDomain("ModFxType", []entry[ModFxType]{
	{FxTouchWah, "TWah", ""},
	{FxAutoWah, "AutoWah", ""},
	{FxPedalWah, "PedalWah", ""},
	{FxCompressor, "Compressor", ""},
	{FxLimiter, "Limiter", ""},
	{FxGraphicEQ, "GraphicEq", ""},
	{FxParametricEQ, "ParametricEq", ""},
	{FxGuitarSim, "GuitarSim", ""},
	{FxSlowGear, "SlowGear", ""},
	{FxWaveSynth, "WaveSynth", ""},
	{FxOctave, "Octave", ""},
	{FxPitchShifter, "PitchShifter", ""},
	{FxHarmonist, "Harmonist", ""},
	{FxAcProcessor, "AcProcessor", ""},
	{FxPhaser, "Phaser", ""},
	{FxFlanger, "Flanger", ""},
	{FxTremolo, "Tremolo", ""},
	{FxRotary, "Rotary", ""},
	{FxUniV, "UniV", ""},
	{FxSlicer, "Slicer", ""},
	{FxVibrato, "Vibrato", ""},
	{FxRingMod, "RingMod", ""},
	{FxHumanizer, "Humanizer", ""},
	{FxChorus, "Chorus", ""},
	{FxAcGuitarSim, "AcGuitarSim", ""},
	{FxPhaser90E, "Phaser90E", ""},
	{FxFlanger117E, "Flanger117E", ""},
	{FxWah95E, "Wah95E", ""},
	{FxDelayChorus30, "DelayChorus30", ""},
	{FxHeavyOctave, "HeavyOctave", ""},
	{FxPedalBend, "PedalBend", ""},
})

func (v ModFxType) String() string { return modFxTypes.nameOf(v) }
func (v ModFxType) MarshalText() ([]byte, error) { return modFxTypes.text(v) }

// ParseModFxType finds an Fx type by name, e.g. "Chorus" or "heavyoctave".
func ParseModFxType(name string) (ModFxType, bool) { return modFxTypes.parse(name) }

type DelayType uint8

const (
	DelayDigital  DelayType = 0x00
	DelayPan      DelayType = 0x01
	DelayStereo   DelayType = 0x02
	DelayReverse  DelayType = 0x06
	DelayAnalog   DelayType = 0x07
	DelayTapeEcho DelayType = 0x08
	DelayModulate DelayType = 0x09
	DelaySDE3000  DelayType = 0x0A
)

var delayTypes = newDomain("DelayType", []entry[DelayType]{
	{DelayDigital, "Digital", ""},
	{DelayPan, "Pan", ""},
	{DelayStereo, "Stereo", ""},
	{DelayReverse, "Reverse", ""},
	{DelayAnalog, "Analog", ""},
	{DelayTapeEcho, "TapeEcho", ""},
	{DelayModulate, "Modulate", ""},
	{DelaySDE3000, "SDE3000", ""},
})

func (v DelayType) String() string { return delayTypes.nameOf(v) }
func (v DelayType) MarshalText() ([]byte, error) { return delayTypes.text(v) }

type ReverbType uint8

const (
	ReverbRoom     ReverbType = 0x01
	ReverbHall     ReverbType = 0x03
	ReverbPlate    ReverbType = 0x04
	ReverbSpring   ReverbType = 0x05
	ReverbModulate ReverbType = 0x06
)

var reverbTypes = newDomain("ReverbType", []entry[ReverbType]{
	{ReverbRoom, "Room", ""},
	{ReverbHall, "Hall", ""},
	{ReverbPlate, "Plate", ""},
	{ReverbSpring, "Spring", ""},
	{ReverbModulate, "Modulate", ""},
})

func (v ReverbType) String() string { return reverbTypes.nameOf(v) }
func (v ReverbType) MarshalText() ([]byte, error) { return reverbTypes.text(v) }

type ReverbMode uint8

const (
	ModeDelay       ReverbMode = 0x00
	ModeDelayReverb ReverbMode = 0x01
	ModeReverb      ReverbMode = 0x02
)

var reverbModes = newDomain("ReverbMode", []entry[ReverbMode]{
	{ModeDelay, "Delay", ""},
	{ModeDelayReverb, "DelayReverb", ""},
	{ModeReverb, "Reverb", ""},
})

func (v ReverbMode) String() string { return reverbModes.nameOf(v) }
func (v ReverbMode) MarshalText() ([]byte, error) { return reverbModes.text(v) }

type CabResonance uint8

var cabResonances = newDomain("CabResonance", []entry[CabResonance]{
	{0, "Vintage", ""},
	{1, "Modern", ""},
	{2, "Deep", ""},
})

func (v CabResonance) String() string { return cabResonances.nameOf(v) }
func (v CabResonance) MarshalText() ([]byte, error) { return cabResonances.text(v) }

type EqType uint8

const (
	EqParametric EqType = 0
	EqGraphic10  EqType = 1
)

var eqTypes = newDomain("EqType", []entry[EqType]{
	{EqParametric, "Parametric", ""},
	{EqGraphic10, "Graphic10", ""},
})

func (v EqType) String() string { return eqTypes.nameOf(v) }
func (v EqType) MarshalText() ([]byte, error) { return eqTypes.text(v) }

type EqPosition uint8

var eqPositions = newDomain("EqPosition", []entry[EqPosition]{
	{0, "AmpIn", ""},
	{1, "AmpOut", ""},
})

func (v EqPosition) String() string { return eqPositions.nameOf(v) }
func (v EqPosition) MarshalText() ([]byte, error) { return eqPositions.text(v) }

type LowCutFreq uint8

var lowCutFreqs = newDomain("LowCutFreq", []entry[LowCutFreq]{
	{0, "Flat", "FLAT"},
	{1, "Hz20", "20.0 Hz"},
	{2, "Hz25", "25.0 Hz"},
	{3, "Hz31_5", "31.5 Hz"},
	{4, "Hz40", "40.0 Hz"},
	{5, "Hz50", "50.0 Hz"},
	{6, "Hz63", "63.0 Hz"},
	{7, "Hz80", "80.0 Hz"},
	{8, "Hz100", "100 Hz"},
	{9, "Hz125", "125 Hz"},
	{10, "Hz160", "160 Hz"},
	{11, "Hz200", "200 Hz"},
	{12, "Hz250", "250 Hz"},
	{13, "Hz315", "315 Hz"},
	{14, "Hz400", "400 Hz"},
	{15, "Hz500", "500 Hz"},
	{16, "Hz630", "630 Hz"},
	{17, "Hz800", "800 Hz"},
})

func (v LowCutFreq) String() string { return lowCutFreqs.nameOf(v) }
func (v LowCutFreq) Label() string { return lowCutFreqs.labelOf(v) }
func (v LowCutFreq) MarshalText() ([]byte, error) { return lowCutFreqs.text(v) }

type MidFreq uint8

var midFreqs = newDomain("MidFreq", []entry[MidFreq]{
	{0, "Hz20", "20.0 Hz"},
	{1, "Hz25", "25.0 Hz"},
	{2, "Hz31_5", "31.5 Hz"},
	{3, "Hz40", "40.0 Hz"},
	{4, "Hz50", "50.0 Hz"},
	{5, "Hz63", "63.0 Hz"},
	{6, "Hz80", "80.0 Hz"},
	{7, "Hz100", "100 Hz"},
	{8, "Hz125", "125 Hz"},
	{9, "Hz160", "160 Hz"},
	{10, "Hz200", "200 Hz"},
	{11, "Hz250", "250 Hz"},
	{12, "Hz315", "315 Hz"},
	{13, "Hz400", "400 Hz"},
	{14, "Hz500", "500 Hz"},
	{15, "Hz630", "630 Hz"},
	{16, "Hz800", "800 Hz"},
	{17, "Hz1000", "1.00 kHz"},
	{18, "Hz1250", "1.25 kHz"},
	{19, "Hz1600", "1.60 kHz"},
	{20, "Hz2000", "2.00 kHz"},
	{21, "Hz2500", "2.50 kHz"},
	{22, "Hz3150", "3.15 kHz"},
	{23, "Hz4000", "4.00 kHz"},
	{24, "Hz5000", "5.00 kHz"},
	{25, "Hz6300", "6.30 kHz"},
	{26, "Hz8000", "8.00 kHz"},
	{27, "Hz10000", "10.0 kHz"},
})

func (v MidFreq) String() string { return midFreqs.nameOf(v) }
func (v MidFreq) Label() string { return midFreqs.labelOf(v) }
func (v MidFreq) MarshalText() ([]byte, error) { return midFreqs.text(v) }

type HighCutFreq uint8

var highCutFreqs = newDomain("HighCutFreq", []entry[HighCutFreq]{
	{0, "Hz630", "630 Hz"},
	{1, "Hz800", "800 Hz"},
	{2, "Hz1000", "1.00 kHz"},
	{3, "Hz1250", "1.25 kHz"},
	{4, "Hz1600", "1.60 kHz"},
	{5, "Hz2000", "2.00 kHz"},
	{6, "Hz2500", "2.50 kHz"},
	{7, "Hz3150", "3.15 kHz"},
	{8, "Hz4000", "4.00 kHz"},
	{9, "Hz5000", "5.00 kHz"},
	{10, "Hz6300", "6.30 kHz"},
	{11, "Hz8000", "8.00 kHz"},
	{12, "Hz10000", "10.0 kHz"},
	{13, "Hz12500", "12.5 kHz"},
	{14, "Flat", "FLAT"},
})

func (v HighCutFreq) String() string { return highCutFreqs.nameOf(v) }
func (v HighCutFreq) Label() string { return highCutFreqs.labelOf(v) }
func (v HighCutFreq) MarshalText() ([]byte, error) { return highCutFreqs.text(v) }

type CrossoverFreq uint8

var crossoverFreqs = newDomain("CrossoverFreq", []entry[CrossoverFreq]{
	{0, "Hz100", "100 Hz"},
	{1, "Hz125", "125 Hz"},
	{2, "Hz160", "160 Hz"},
	{3, "Hz200", "200 Hz"},
	{4, "Hz250", "250 Hz"},
	{5, "Hz315", "315 Hz"},
	{6, "Hz400", "400 Hz"},
	{7, "Hz500", "500 Hz"},
	{8, "Hz630", "630 Hz"},
	{9, "Hz800", "800 Hz"},
	{10, "Hz1000", "1.00 kHz"},
	{11, "Hz1250", "1.25 kHz"},
	{12, "Hz1600", "1.60 kHz"},
	{13, "Hz2000", "2.00 kHz"},
	{14, "Hz2500", "2.50 kHz"},
	{15, "Hz3150", "3.15 kHz"},
	{16, "Hz4000", "4.00 kHz"},
})

func (v CrossoverFreq) String() string { return crossoverFreqs.nameOf(v) }
func (v CrossoverFreq) Label() string { return crossoverFreqs.labelOf(v) }
func (v CrossoverFreq) MarshalText() ([]byte, error) { return crossoverFreqs.text(v) }

type Light uint8

const (
	LightGreen  Light = 0
	LightRed    Light = 1
	LightYellow Light = 2
)

var lights = newDomain("Light", []entry[Light]{
	{LightGreen, "Green", ""},
	{LightRed, "Red", ""},
	{LightYellow, "Yellow", ""},
})

func (v Light) String() string { return lights.nameOf(v) }
func (v Light) MarshalText() ([]byte, error) { return lights.text(v) }

// Key is the master key; the label carries the major tonic and its
// relative minor.
type Key uint8

var keys = newDomain("Key", []entry[Key]{
	{0, "C", "C (Am)"},
	{1, "Db", "Db (Bbm)"},
	{2, "D", "D (Bm)"},
	{3, "Eb", "Eb (Cm)"},
	{4, "E", "E (C#m)"},
	{5, "F", "F (Dm)"},
	{6, "Fs", "F# (D#m)"},
	{7, "G", "G (Em)"},
	{8, "Ab", "Ab (Fm)"},
	{9, "A", "A (F#m)"},
	{10, "Bb", "Bb (Gm)"},
	{11, "B", "B (G#m)"},
})

func (v Key) String() string { return keys.nameOf(v) }
func (v Key) Label() string { return keys.labelOf(v) }
func (v Key) MarshalText() ([]byte, error) { return keys.text(v) }

type Harmony uint8

const HarmonyUser Harmony = 29

var harmonies = newDomain("Harmony", []entry[Harmony]{
	{0, "HMin2Oct", "-2oct"},
	{1, "HMin14th", "-14th"},
	{2, "HMin13th", "-13th"},
	{3, "HMin12th", "-12th"},
	{4, "HMin11th", "-11th"},
	{5, "HMin10th", "-10th"},
	{6, "HMin9th", "-9th"},
	{7, "HMin1Oct", "-1oct"},
	{8, "HMin7th", "-7th"},
	{9, "HMin6th", "-6th"},
	{10, "HMin5th", "-5th"},
	{11, "HMin4th", "-4th"},
	{12, "HMin3rd", "-3rd"},
	{13, "HMin2nd", "-2nd"},
	{14, "HUnison", "Unison"},
	{15, "HPlus2nd", "+2nd"},
	{16, "HPlus3rd", "+3rd"},
	{17, "HPlus4th", "+4th"},
	{18, "HPlus5th", "+5th"},
	{19, "HPlus6th", "+6th"},
	{20, "HPlus7th", "+7th"},
	{21, "HPlus1Oct", "+1oct"},
	{22, "HPlus9th", "+9th"},
	{23, "HPlus10th", "+10th"},
	{24, "HPlus11th", "+11th"},
	{25, "HPlus12th", "+12th"},
	{26, "HPlus13th", "+13th"},
	{27, "HPlus14th", "+14th"},
	{28, "HPlus2Oct", "+2oct"},
	{HarmonyUser, "HUser", "User"},
})

func (v Harmony) String() string { return harmonies.nameOf(v) }
func (v Harmony) Label() string { return harmonies.labelOf(v) }
func (v Harmony) MarshalText() ([]byte, error) { return harmonies.text(v) }

// Ratio is a limiter compression ratio.
type Ratio uint8

var ratios = newDomain("Ratio", []entry[Ratio]{
	{0, "R1", "1:1"},
	{1, "R1_2", "1.2:1"},
	{2, "R1_4", "1.4:1"},
	{3, "R1_6", "1.6:1"},
	{4, "R1_8", "1.8:1"},
	{5, "R2", "2:1"},
	{6, "R2_3", "2.3:1"},
	{7, "R2_6", "2.6:1"},
	{8, "R3", "3:1"},
	{9, "R3_5", "3.5:1"},
	{10, "R4", "4:1"},
	{11, "R5", "5:1"},
	{12, "R6", "6:1"},
	{13, "R8", "8:1"},
	{14, "R10", "10:1"},
	{15, "R12", "12:1"},
	{16, "R20", "20:1"},
	{17, "RInf", "Inf:1"},
})

func (v Ratio) String() string { return ratios.nameOf(v) }
func (v Ratio) Label() string { return ratios.labelOf(v) }
func (v Ratio) MarshalText() ([]byte, error) { return ratios.text(v) }

type ContourChoice uint8

const (
	ContourOff ContourChoice = iota
	Contour1
	Contour2
	Contour3
)

var contourChoices = newDomain("ContourChoice", []entry[ContourChoice]{
	{ContourOff, "Off", ""},
	{Contour1, "Contour1", ""},
	{Contour2, "Contour2", ""},
	{Contour3, "Contour3", ""},
})

func (v ContourChoice) String() string { return contourChoices.nameOf(v) }
func (v ContourChoice) MarshalText() ([]byte, error) { return contourChoices.text(v) }

type PedalFxType uint8

const (
	PedalFxWah    PedalFxType = 0
	PedalFxBend   PedalFxType = 1
	PedalFxWah95E PedalFxType = 2
)

var pedalFxTypes = newDomain("PedalFxType", []entry[PedalFxType]{
	{PedalFxWah, "Wah", ""},
	{PedalFxBend, "Bend", ""},
	{PedalFxWah95E, "Wah95E", ""},
})

func (v PedalFxType) String() string { return pedalFxTypes.nameOf(v) }
func (v PedalFxType) MarshalText() ([]byte, error) { return pedalFxTypes.text(v) }

type PedalWahType uint8

var pedalWahTypes = newDomain("PedalWahType", []entry[PedalWahType]{
	{0, "Cry", ""},
	{1, "Vo", ""},
	{2, "Fat", ""},
	{3, "Light", ""},
	{4, "SevenString", ""},
	{5, "Reso", ""},
})

func (v PedalWahType) String() string { return pedalWahTypes.nameOf(v) }
func (v PedalWahType) MarshalText() ([]byte, error) { return pedalWahTypes.text(v) }

type Phase uint8

var phases = newDomain("Phase", []entry[Phase]{
	{0, "Normal", ""},
	{1, "Inverse", ""},
})

func (v Phase) String() string { return phases.nameOf(v) }
func (v Phase) MarshalText() ([]byte, error) { return phases.text(v) }

// Range is the delay modulation bandwidth.
type Range uint8

var ranges = newDomain("Range", []entry[Range]{
	{0, "KHz8", "8 kHz"},
	{1, "KHz17", "17 kHz"},
})

func (v Range) String() string { return ranges.nameOf(v) }
func (v Range) MarshalText() ([]byte, error) { return ranges.text(v) }

type WahMode uint8

var wahModes = newDomain("WahMode", []entry[WahMode]{
	{0, "LPF", ""},
	{1, "BPF", ""},
})

func (v WahMode) String() string { return wahModes.nameOf(v) }
func (v WahMode) MarshalText() ([]byte, error) { return wahModes.text(v) }

type Polarity uint8

var polarities = newDomain("Polarity", []entry[Polarity]{
	{0, "Down", ""},
	{1, "Up", ""},
})

func (v Polarity) String() string { return polarities.nameOf(v) }
func (v Polarity) MarshalText() ([]byte, error) { return polarities.text(v) }

type CompressorType uint8

var compressorTypes = newDomain("CompressorType", []entry[CompressorType]{
	{0, "BossComp", ""},
	{1, "HiBand", ""},
	{2, "Light", ""},
	{3, "DComp", ""},
	{4, "Orange", ""},
	{5, "Fat", ""},
	{6, "Mild", ""},
})

func (v CompressorType) String() string { return compressorTypes.nameOf(v) }
func (v CompressorType) MarshalText() ([]byte, error) { return compressorTypes.text(v) }

type LimiterType uint8

var limiterTypes = newDomain("LimiterType", []entry[LimiterType]{
	{0, "BossLimiter", ""},
	{1, "Rack160D", ""},
	{2, "VintageRackU", ""},
})

func (v LimiterType) String() string { return limiterTypes.nameOf(v) }
func (v LimiterType) MarshalText() ([]byte, error) { return limiterTypes.text(v) }

type GuitarSimType uint8

var guitarSimTypes = newDomain("GuitarSimType", []entry[GuitarSimType]{
	{0, "SingleToHumbucker", ""},
	{1, "HumbuckerToSingle", ""},
	{2, "HumbuckerToHalfTone", ""},
	{3, "SingleToHollow", ""},
	{4, "HumbuckerToHollow", ""},
	{5, "SingleToAcoustic", ""},
	{6, "HumbuckerToAcoustic", ""},
	{7, "PiezoToAcoustic", ""},
})

func (v GuitarSimType) String() string { return guitarSimTypes.nameOf(v) }
func (v GuitarSimType) MarshalText() ([]byte, error) { return guitarSimTypes.text(v) }

type WaveSynthType uint8

var waveSynthTypes = newDomain("WaveSynthType", []entry[WaveSynthType]{
	{0, "Saw", ""},
	{1, "Square", ""},
})

func (v WaveSynthType) String() string { return waveSynthTypes.nameOf(v) }
func (v WaveSynthType) MarshalText() ([]byte, error) { return waveSynthTypes.text(v) }

type VoiceType uint8

var voiceTypes = newDomain("VoiceType", []entry[VoiceType]{
	{0, "Voice1", ""},
	{1, "Voice2", ""},
})

func (v VoiceType) String() string { return voiceTypes.nameOf(v) }
func (v VoiceType) MarshalText() ([]byte, error) { return voiceTypes.text(v) }

type PitchShifterMode uint8

var pitchShifterModes = newDomain("PitchShifterMode", []entry[PitchShifterMode]{
	{0, "Fast", ""},
	{1, "Medium", ""},
	{2, "Slow", ""},
	{3, "Mono", ""},
})

func (v PitchShifterMode) String() string { return pitchShifterModes.nameOf(v) }
func (v PitchShifterMode) MarshalText() ([]byte, error) { return pitchShifterModes.text(v) }

type AcProcessorType uint8

var acProcessorTypes = newDomain("AcProcessorType", []entry[AcProcessorType]{
	{0, "Small", ""},
	{1, "Medium", ""},
	{2, "Bright", ""},
	{3, "Power", ""},
})

func (v AcProcessorType) String() string { return acProcessorTypes.nameOf(v) }
func (v AcProcessorType) MarshalText() ([]byte, error) { return acProcessorTypes.text(v) }

type PhaserType uint8

var phaserTypes = newDomain("PhaserType", []entry[PhaserType]{
	{0, "Stage4", ""},
	{1, "Stage8", ""},
	{2, "Stage12", ""},
	{3, "BiPhase", ""},
})

func (v PhaserType) String() string { return phaserTypes.nameOf(v) }
func (v PhaserType) MarshalText() ([]byte, error) { return phaserTypes.text(v) }

type RingModMode uint8

var ringModModes = newDomain("RingModMode", []entry[RingModMode]{
	{0, "Normal", ""},
	{1, "Intelligent", ""},
})

func (v RingModMode) String() string { return ringModModes.nameOf(v) }
func (v RingModMode) MarshalText() ([]byte, error) { return ringModModes.text(v) }

type HumanizerMode uint8

var humanizerModes = newDomain("HumanizerMode", []entry[HumanizerMode]{
	{0, "Picking", ""},
	{1, "Auto", ""},
})

func (v HumanizerMode) String() string { return humanizerModes.nameOf(v) }
func (v HumanizerMode) MarshalText() ([]byte, error) { return humanizerModes.text(v) }

type Vowel uint8

var vowels = newDomain("Vowel", []entry[Vowel]{
	{0, "a", ""},
	{1, "e", ""},
	{2, "i", ""},
	{3, "o", ""},
	{4, "u", ""},
})

func (v Vowel) String() string { return vowels.nameOf(v) }
func (v Vowel) MarshalText() ([]byte, error) { return vowels.text(v) }

type DelayChorusType uint8

var delayChorusTypes = newDomain("DelayChorusType", []entry[DelayChorusType]{
	{0, "Chorus", ""},
	{1, "Echo", ""},
})

func (v DelayChorusType) String() string { return delayChorusTypes.nameOf(v) }
func (v DelayChorusType) MarshalText() ([]byte, error) { return delayChorusTypes.text(v) }

type DelayChorusOutput uint8

var delayChorusOutputs = newDomain("DelayChorusOutput", []entry[DelayChorusOutput]{
	{0, "DAndE", "D+E"},
	{1, "DOverE", "D/E"},
})

func (v DelayChorusOutput) String() string { return delayChorusOutputs.nameOf(v) }
func (v DelayChorusOutput) MarshalText() ([]byte, error) { return delayChorusOutputs.text(v) }

// ChainItem is a block position in the signal chain.
type ChainItem uint8

var chainItems = newDomain("ChainItem", []entry[ChainItem]{
	{0, "EQ2", ""},
	{1, "SendReturn", ""},
	{2, "Preamp", ""},
	{3, "Unknown3", ""},
	{4, "EQ", ""},
	{5, "Mod", ""},
	{6, "FX", ""},
	{7, "Delay", ""},
	{8, "Reverb", ""},
	{9, "Unknown1", ""},
	{10, "Solo", ""},
	{11, "PedalFX", ""},
	{12, "FootVolume", ""},
	{13, "NoiseGate", ""},
	{14, "Unknown4", ""},
	{15, "Booster", ""},
	{16, "Unknown5", ""},
	{17, "Delay2", ""},
	{18, "Unknown2", ""},
	{19, "Unknown6", ""},
})

func (v ChainItem) String() string { return chainItems.nameOf(v) }
func (v ChainItem) MarshalText() ([]byte, error) { return chainItems.text(v) }

type Footswitch uint8

var footswitches = newDomain("Footswitch", []entry[Footswitch]{
	{0, "ChannelSwitch", ""},
	{1, "BankAB", ""},
	{2, "SoloOnOff", ""},
})

func (v Footswitch) String() string { return footswitches.nameOf(v) }
func (v Footswitch) MarshalText() ([]byte, error) { return footswitches.text(v) }
