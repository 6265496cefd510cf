package katanatsl

import "math"

const delaySize = 26

// Delay is one of the two identical delay units. Level style fields are
// kept as raw integers; their hardware ranges differ per delay type.
type Delay struct {
	On            bool        `json:"on"`
	Type          DelayType   `json:"type"`
	Time          int         `json:"time"` // ms
	Feedback      int         `json:"feedback"`
	HighCut       HighCutFreq `json:"high_cut"`
	EffectLevel   int         `json:"effect_level"`
	DirectMix     int         `json:"direct_mix"`
	TapTime       int         `json:"tap_time"`
	ModRate       int         `json:"mod_rate"`
	ModDepth      int         `json:"mod_depth"`
	Range         Range       `json:"range"`
	FilterOn      bool        `json:"filter_on"`
	FeedbackPhase Phase       `json:"feedback_phase"`
	DelayPhase    Phase       `json:"delay_phase"`
	ModOn         bool        `json:"mod_on"`
	Gaps          []Gap       `json:"gaps,omitempty"`
}

func DecodeDelay(s Section) (*Delay, error) {
	f, err := newFieldReader(s, delaySize)
	if err != nil {
		return nil, err
	}
	d := &Delay{
		On:            f.flag(0, "on"),
		Type:          enumAt(f, 1, "type", delayTypes),
		Time:          f.varint(2, 4, "time", math.MaxInt32),
		Feedback:      f.num(4, "feedback"),
		HighCut:       enumAt(f, 5, "high_cut", highCutFreqs),
		EffectLevel:   f.num(6, "effect_level"),
		DirectMix:     f.num(7, "direct_mix"),
		TapTime:       f.num(8, "tap_time"),
		ModRate:       f.num(19, "mod_rate"),
		ModDepth:      f.num(20, "mod_depth"),
		Range:         enumAt(f, 21, "range", ranges),
		FilterOn:      f.flag(22, "filter_on"),
		FeedbackPhase: enumAt(f, 23, "feedback_phase", phases),
		DelayPhase:    enumAt(f, 24, "delay_phase", phases),
		ModOn:         f.flag(25, "mod_on"),
	}
	if err := f.done(); err != nil {
		return nil, err
	}
	d.Gaps = f.gaps()
	return d, nil
}
