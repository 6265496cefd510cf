package katanatsl

import (
	"encoding/json"
	"fmt"
	"math"
)

// Percent is an integer in 0..100.
type Percent int

func NewPercent(v int) (Percent, error) {
	if v < 0 || v > 100 {
		return 0, &DomainViolationError{Raw: v, Value: float64(v), Domain: "0..100"}
	}
	return Percent(v), nil
}

// ToggleablePercent is 0 for off, or n for on at level n-1.
type ToggleablePercent int

func NewToggleablePercent(v int) (ToggleablePercent, error) {
	if v < 0 || v > 101 {
		return 0, &DomainViolationError{Raw: v, Value: float64(v), Domain: "0..101"}
	}
	return ToggleablePercent(v), nil
}

func (t ToggleablePercent) On() bool { return t > 0 }

// Level is the level when on, and 0 when off.
func (t ToggleablePercent) Level() int {
	if t == 0 {
		return 0
	}
	return int(t) - 1
}

func (t ToggleablePercent) String() string {
	if t == 0 {
		return "Off"
	}
	return fmt.Sprintf("On<%d>", t.Level())
}

func (t ToggleablePercent) MarshalJSON() ([]byte, error) {
	if !t.On() {
		return []byte(`{"on":false}`), nil
	}
	return json.Marshal(struct {
		On    bool `json:"on"`
		Level int  `json:"level"`
	}{true, t.Level()})
}

// Gain12dB is a gain in -12..12 dB at 0.5 dB steps.
type Gain12dB float64

func NewGain12dB(v float64) (Gain12dB, error) {
	if v < -12 || v > 12 || math.Mod(v*2, 1) != 0 {
		return 0, &DomainViolationError{Value: v, Domain: "-12..12 step 0.5"}
	}
	return Gain12dB(v), nil
}

// Gain20dB is an integer gain in -20..20 dB.
type Gain20dB int

func NewGain20dB(v int) (Gain20dB, error) {
	if v < -20 || v > 20 {
		return 0, &DomainViolationError{Raw: v, Value: float64(v), Domain: "-20..20"}
	}
	return Gain20dB(v), nil
}

// Pitch is a shift in semitones, -24..24.
type Pitch int

func NewPitch(v int) (Pitch, error) {
	if v < -24 || v > 24 {
		return 0, &DomainViolationError{Raw: v, Value: float64(v), Domain: "-24..24"}
	}
	return Pitch(v), nil
}

// Q is a filter quality factor from the closed set {0.5, 1, 2, 4, 8, 16}.
type Q float64

var qValues = [...]float64{0.5, 1, 2, 4, 8, 16}

func NewQ(v float64) (Q, error) {
	for _, q := range qValues {
		if v == q {
			return Q(v), nil
		}
	}
	return 0, &DomainViolationError{Value: v, Domain: "{0.5,1,2,4,8,16}"}
}
