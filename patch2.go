package katanatsl

const patch2Size = 36

// ColorSet holds one selection per footswitch colour.
type ColorSet[T any] struct {
	Green  T `json:"green"`
	Red    T `json:"red"`
	Yellow T `json:"yellow"`
}

func colorsAt[T ~uint8](f *fieldReader, lo int, name string, d *enumDomain[T]) ColorSet[T] {
	return ColorSet[T]{
		Green:  enumAt(f, lo, name+"_green", d),
		Red:    enumAt(f, lo+1, name+"_red", d),
		Yellow: enumAt(f, lo+2, name+"_yellow", d),
	}
}

type Lights struct {
	Boost  Light `json:"boost"`
	Mod    Light `json:"mod"`
	Fx     Light `json:"fx"`
	Delay  Light `json:"delay"`
	Reverb Light `json:"reverb"`
}

// Routing is the decoded Patch_2 section: the block variation stored under
// each colour, the lit colour per block, and the cabinet resonance.
type Routing struct {
	Boost        ColorSet[BoostType]  `json:"boost"`
	Mod          ColorSet[ModFxType]  `json:"mod"`
	Fx           ColorSet[ModFxType]  `json:"fx"`
	Delay        ColorSet[DelayType]  `json:"delay"`
	Reverb       ColorSet[ReverbType] `json:"reverb"`
	Delay2       ColorSet[DelayType]  `json:"delay2"`
	ReverbMode   ColorSet[ReverbMode] `json:"reverb_mode"`
	Lights       Lights               `json:"lights"`
	CabResonance CabResonance         `json:"cab_resonance"`
	Gaps         []Gap                `json:"gaps,omitempty"`
}

func DecodeRouting(s Section) (*Routing, error) {
	f, err := newFieldReader(s, patch2Size)
	if err != nil {
		return nil, err
	}
	r := &Routing{
		Boost:      colorsAt(f, 4, "boost", boostTypes),
		Mod:        colorsAt(f, 7, "mod", modFxTypes),
		Fx:         colorsAt(f, 10, "fx", modFxTypes),
		Delay:      colorsAt(f, 13, "delay", delayTypes),
		Reverb:     colorsAt(f, 16, "reverb", reverbTypes),
		Delay2:     colorsAt(f, 19, "delay2", delayTypes),
		ReverbMode: colorsAt(f, 22, "reverb_mode", reverbModes),
		Lights: Lights{
			Boost:  enumAt(f, 25, "boost_light", lights),
			Mod:    enumAt(f, 26, "mod_light", lights),
			Fx:     enumAt(f, 27, "fx_light", lights),
			Delay:  enumAt(f, 28, "delay_light", lights),
			Reverb: enumAt(f, 29, "reverb_light", lights),
		},
		CabResonance: enumAt(f, 35, "cab_resonance", cabResonances),
	}
	if err := f.done(); err != nil {
		return nil, err
	}
	r.Gaps = f.gaps()
	return r, nil
}
