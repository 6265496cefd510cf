package katanatsl

import (
	"errors"
	"reflect"
	"testing"
)

func TestSectionLengths(t *testing.T) {
	tests := []struct {
		name   string
		decode func(Section) error
		ok     []int
		bad    []int
	}{
		{"Patch_0", func(s Section) error { _, err := DecodeBoostAmp(s); return err }, []int{72}, []int{0, 71, 73}},
		{"Fx(1)", func(s Section) error { _, err := DecodeFx(s); return err }, []int{221, 225}, []int{220, 224, 226}},
		{"Delay(1)", func(s Section) error { _, err := DecodeDelay(s); return err }, []int{26}, []int{25, 27}},
		{"Patch_2", func(s Section) error { _, err := DecodeRouting(s); return err }, []int{36}, []int{35}},
		{"Patch_Mk2V2", func(s Section) error { _, err := DecodeSoloEQ(s); return err }, []int{10}, []int{9}},
		{"Contour(1)", func(s Section) error { _, err := DecodeContour(s); return err }, []int{2, 8}, []int{1, 3, 7, 9}},
		{"Eq(2)", func(s Section) error { _, err := DecodeEqualizer(s); return err }, []int{24}, []int{23, 25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, n := range tt.ok {
				if err := tt.decode(section(tt.name, n, nil)); err != nil {
					t.Errorf("length %d: %v", n, err)
				}
			}
			for _, n := range tt.bad {
				err := tt.decode(section(tt.name, n, nil))
				var wl *WrongSectionLengthError
				if !errors.As(err, &wl) || wl.Actual != n || wl.Section != tt.name {
					t.Errorf("length %d: error = %v, want WrongSectionLengthError", n, err)
				}
			}
		})
	}
}

func TestPatch1Lengths(t *testing.T) {
	room := map[int]uint8{1: 1}
	for _, n := range []int{50, 91} {
		if _, err := DecodePatch1(section("Patch_1", n, room)); err != nil {
			t.Errorf("length %d: %v", n, err)
		}
	}
	for _, n := range []int{49, 51, 90, 92} {
		_, err := DecodePatch1(section("Patch_1", n, room))
		var wl *WrongSectionLengthError
		if !errors.As(err, &wl) {
			t.Errorf("length %d: error = %v", n, err)
		}
	}
	_, err := DecodePatch1(section("Patch_1", 49, room))
	if want := "section Patch_1: must contain exactly 50 or 91 items, not 49"; err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}
}

func TestDecodeBoostAmp(t *testing.T) {
	s := section("Patch_0", ampSize, map[int]uint8{
		0: 1, 1: uint8(BoostBluesDrive), 2: 70, 3: 50, 4: 100, 7: 80, 8: 100,
		17: uint8(AmpBrown), 18: 65, 24: 50,
		48: 1, 48 + 3: 40, 48 + 5: 3, 48 + 12: 20, 48 + 13: 48,
	})
	ba, err := DecodeBoostAmp(s)
	if err != nil {
		t.Fatal(err)
	}
	wantBoost := Booster{On: true, Type: BoostBluesDrive, Drive: 70, Bottom: 0, Tone: 50, Level: 80, DirectMix: 100}
	if ba.Boost != wantBoost {
		t.Errorf("boost = %+v, want %+v", ba.Boost, wantBoost)
	}
	if ba.Amp.Type != AmpBrown || ba.Amp.Gain != 65 || ba.Amp.Volume != 50 {
		t.Errorf("amp = %+v", ba.Amp)
	}
	eq := ba.EQ
	if !eq.On || eq.LowGain != 20 || eq.LowMidQ != 4 || eq.Level != 0 || eq.Bars.Hz31 != 12 || eq.Bars.Level != -12 {
		t.Errorf("eq = %+v", eq)
	}
	if got, want := gapOffsets(ba.Gaps), map[int]int{9: 8, 19: 1, 25: 23}; !reflect.DeepEqual(got, want) {
		t.Errorf("gaps = %v, want %v", got, want)
	}
}

func TestDecodeBoostAmpErrors(t *testing.T) {
	tests := []struct {
		name  string
		pokes map[int]uint8
		check func(error) bool
	}{
		{"boost type", map[int]uint8{1: 0xFF}, func(err error) bool {
			var ue *UnknownEnumCodeError
			return errors.As(err, &ue) && ue.Field == "Patch_0.boost_type" && ue.Code == 0xFF
		}},
		{"gain", map[int]uint8{18: 101}, func(err error) bool {
			var dv *DomainViolationError
			return errors.As(err, &dv) && dv.Field == "Patch_0.amp_gain" && dv.Raw == 101
		}},
		{"eq q", map[int]uint8{48 + 8: 6}, func(err error) bool {
			var dv *DomainViolationError
			return errors.As(err, &dv) && dv.Field == "Patch_0.eq.high_mid_q"
		}},
		{"first error wins", map[int]uint8{2: 101, 18: 101}, func(err error) bool {
			var dv *DomainViolationError
			return errors.As(err, &dv) && dv.Field == "Patch_0.boost_drive"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ba, err := DecodeBoostAmp(section("Patch_0", ampSize, tt.pokes))
			if ba != nil || !tt.check(err) {
				t.Errorf("DecodeBoostAmp = %v, %v", ba, err)
			}
		})
	}

	s := section("Patch_0", ampSize, nil)
	s.Tokens[30] = "x1"
	_, err := DecodeBoostAmp(s)
	var mt *MalformedTokenError
	if !errors.As(err, &mt) || mt.Offset != 30 {
		t.Errorf("malformed token in gap: %v", err)
	}
}

func TestDecodePatch1(t *testing.T) {
	p, err := DecodePatch1(section("Patch_1", patch1Size, map[int]uint8{
		0: 1, 1: uint8(ReverbPlate), 2: 24, 3: 0x03, 4: 0x74, 7: 10,
		17: uint8(PedalFxBend), 24: 36, 25: 100,
		38: 1, 39: 50,
		49: 9,
	}))
	if err != nil {
		t.Fatal(err)
	}
	r := p.Reverb
	if !r.On || r.Type != ReverbPlate || r.Time != 2.5 || r.PreDelay != 500 || r.Density != 10 {
		t.Errorf("reverb = %+v", r)
	}
	if p.PedalFx.Type != PedalFxBend || p.PedalFx.Bend.Pitch != 12 || p.PedalFx.Bend.PedalPos != 100 {
		t.Errorf("pedal fx = %+v", p.PedalFx)
	}
	if !p.NoiseSuppressor.On || p.NoiseSuppressor.Threshold != 50 {
		t.Errorf("noise suppressor = %+v", p.NoiseSuppressor)
	}
	if p.MasterKey != 9 || p.V2 != nil {
		t.Errorf("key = %v, v2 = %v", p.MasterKey, p.V2)
	}
	want := map[int]int{10: 1, 12: 5, 33: 5, 41: 8}
	if got := gapOffsets(p.Gaps); !reflect.DeepEqual(got, want) {
		t.Errorf("gaps = %v, want %v", got, want)
	}
}

func TestDecodePatch1Limits(t *testing.T) {
	tests := []struct {
		name  string
		pokes map[int]uint8
	}{
		{"time", map[int]uint8{2: 100}},
		{"pre delay", map[int]uint8{3: 0x03, 4: 0x75}},
		{"density", map[int]uint8{7: 11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.pokes[1] = uint8(ReverbRoom)
			_, err := DecodePatch1(section("Patch_1", patch1Size, tt.pokes))
			if !isDomainViolation(err) {
				t.Errorf("error = %v, want DomainViolationError", err)
			}
		})
	}
}

func TestContourPairs(t *testing.T) {
	tests := []struct {
		x, y uint8
		want ContourChoice
		ok   bool
	}{
		{0, 0, ContourOff, true},
		{1, 0, Contour1, true},
		{1, 1, Contour2, true},
		{1, 2, Contour3, true},
		{0, 1, 0, false},
		{1, 3, 0, false},
		{2, 0, 0, false},
	}
	for _, tt := range tests {
		got, err := ContourFromPair(tt.x, tt.y)
		if tt.ok {
			if err != nil || got != tt.want {
				t.Errorf("ContourFromPair(%d, %d) = %v, %v", tt.x, tt.y, got, err)
			}
			continue
		}
		var ic *InvalidContourPairError
		if !errors.As(err, &ic) || ic.X != int(tt.x) || ic.Y != int(tt.y) {
			t.Errorf("ContourFromPair(%d, %d) error = %v", tt.x, tt.y, err)
		}
	}

	p, err := DecodePatch1(section("Patch_1", patch1SizeV2, map[int]uint8{1: 1, 84: 1, 85: 70, 86: 1, 87: 2}))
	if err != nil {
		t.Fatal(err)
	}
	if p.V2 == nil || !p.V2.SoloOn || p.V2.SoloLevel != 70 || p.V2.Contour != Contour3 {
		t.Errorf("v2 = %+v", p.V2)
	}
	if got := gapOffsets(p.Gaps); got[50] != 34 || got[88] != 3 {
		t.Errorf("gaps = %v", got)
	}

	_, err = DecodePatch1(section("Patch_1", patch1SizeV2, map[int]uint8{1: 1, 86: 0, 87: 2}))
	var ic *InvalidContourPairError
	if !errors.As(err, &ic) {
		t.Errorf("error = %v, want InvalidContourPairError", err)
	}
}

func TestDecodeRouting(t *testing.T) {
	r, err := DecodeRouting(section("Patch_2", patch2Size, map[int]uint8{
		4: uint8(BoostBluesDrive), 11: uint8(FxPhaser),
		16: 1, 17: 1, 18: uint8(ReverbPlate),
		26: uint8(LightRed), 35: 2,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if r.Boost.Green != BoostBluesDrive || r.Fx.Red != FxPhaser || r.Reverb.Yellow != ReverbPlate {
		t.Errorf("routing = %+v", r)
	}
	if r.Lights.Mod != LightRed || r.CabResonance != 2 {
		t.Errorf("lights = %+v, cab = %v", r.Lights, r.CabResonance)
	}
	if got, want := gapOffsets(r.Gaps), map[int]int{0: 4, 30: 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("gaps = %v, want %v", got, want)
	}

	if _, err := DecodeRouting(section("Patch_2", patch2Size, nil)); err == nil {
		t.Error("expected error for reverb code 0")
	}
}

func TestDecodeDelay(t *testing.T) {
	d, err := DecodeDelay(section("Delay(1)", delaySize, map[int]uint8{
		0: 1, 1: uint8(DelayTapeEcho), 2: 0x0F, 3: 0x50, 4: 120, 21: 1, 24: 1, 25: 1,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !d.On || d.Type != DelayTapeEcho || d.Time != 0x0F*128+0x50 || d.Feedback != 120 {
		t.Errorf("delay = %+v", d)
	}
	if d.Range != 1 || d.DelayPhase != 1 || !d.ModOn {
		t.Errorf("delay flags = %+v", d)
	}
	if got, want := gapOffsets(d.Gaps), map[int]int{9: 10}; !reflect.DeepEqual(got, want) {
		t.Errorf("gaps = %v, want %v", got, want)
	}
}

func TestDecodeContour(t *testing.T) {
	c, err := DecodeContour(section("Contour(1)", 2, map[int]uint8{0: 2, 1: 30}))
	if err != nil {
		t.Fatal(err)
	}
	if c.Type != 3 || c.FreqShift != -20 || len(c.Gaps) != 0 {
		t.Errorf("contour = %+v", c)
	}
	c, err = DecodeContour(section("Contour(1)", 8, nil))
	if err != nil {
		t.Fatal(err)
	}
	if got := gapOffsets(c.Gaps); got[2] != 6 {
		t.Errorf("gaps = %v", got)
	}
}

func TestDecodeSoloEQ(t *testing.T) {
	eq, err := DecodeSoloEQ(section("Patch_Mk2V2", soloEqSize, map[int]uint8{0: 1, 1: 1, 3: 48, 5: 2, 9: 24}))
	if err != nil {
		t.Fatal(err)
	}
	if eq.Position != 1 || !eq.On || eq.LowGain != 12 || eq.MidQ != 2 || eq.Level != 0 {
		t.Errorf("solo eq = %+v", eq)
	}
}

func TestDecodeFx(t *testing.T) {
	fx, err := DecodeFx(section("Fx(1)", fxSize, map[int]uint8{0: 1, 1: uint8(FxTremolo), 147: 1, 148: 80}))
	if err != nil {
		t.Fatal(err)
	}
	if !fx.On || fx.Type != FxTremolo || fx.PedalBend != nil {
		t.Errorf("fx = %+v", fx)
	}
	name, params, ok := fx.Active()
	if !ok || name != "tremolo" {
		t.Fatalf("Active() = %q, %v", name, ok)
	}
	if _, isTremolo := params.(Tremolo); !isTremolo {
		t.Errorf("Active params = %T", params)
	}
	gaps := gapOffsets(fx.Gaps)
	if gaps[146] != 1 || gaps[151] != 2 {
		t.Errorf("gaps = %v, want runs at 146 and 151", gaps)
	}
}

func TestDecodeFxPedalBend(t *testing.T) {
	fx, err := DecodeFx(section("Fx(1)", fxSizePedalBend, map[int]uint8{1: uint8(FxPedalBend), 222: 48}))
	if err != nil {
		t.Fatal(err)
	}
	if fx.PedalBend == nil {
		t.Fatal("pedal bend tail not decoded")
	}
	if name, _, ok := fx.Active(); !ok || name != "pedal_bend" {
		t.Errorf("Active() = %q, %v", name, ok)
	}

	fx, err = DecodeFx(section("Fx(1)", fxSize, map[int]uint8{1: uint8(FxPedalBend)}))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, ok := fx.Active(); ok {
		t.Error("pedal bend without tail reported active")
	}
}

func TestDecodeFxBlockOffsets(t *testing.T) {
	tests := []struct {
		name  string
		pokes map[int]uint8
		check func(fx *Fx) bool
	}{
		{"rotary depth and level", map[int]uint8{153: 10, 156: 70, 157: 80}, func(fx *Fx) bool {
			return fx.Rotary == Modulation{Rate: 10, Depth: 70, Level: 80}
		}},
		{"vibrato level", map[int]uint8{166: 5, 167: 6, 170: 90}, func(fx *Fx) bool {
			return fx.Vibrato == Modulation{Rate: 5, Depth: 6, Level: 90}
		}},
		{"ac guitar sim order", map[int]uint8{193: 60, 194: 30, 195: 40, 197: 70}, func(fx *Fx) bool {
			return fx.AcGuitarSim == AcGuitarSim{High: 10, Body: 30, Low: -10, Level: 70}
		}},
		{"humanizer sens before rate", map[int]uint8{178: 11, 179: 22}, func(fx *Fx) bool {
			return fx.Humanizer.Sens == 11 && fx.Humanizer.Rate == 22
		}},
		{"dc30 input volume and echo", map[int]uint8{210: 33, 212: 4, 213: 88}, func(fx *Fx) bool {
			return fx.DelayChorus30.InputVolume == 33 && fx.DelayChorus30.EchoRepeatRate == 600
		}},
		{"pitch shifter feedback and pre-delay", map[int]uint8{78: 2, 79: 44, 87: 55}, func(fx *Fx) bool {
			return fx.PitchShifter.PS1PreDelay == 300 && fx.PitchShifter.PS1Feedback == 55
		}},
		{"harmonist user scales", map[int]uint8{100: 25, 111: 48, 112: 23, 123: 0}, func(fx *Fx) bool {
			h := fx.Harmonist
			return h.HR1User.E == 1 && h.HR1User.EFlat == 24 && h.HR2User.E == -1 && h.HR2User.EFlat == -24
		}},
		{"chorus pre-delay half steps", map[int]uint8{186: 80, 190: 1}, func(fx *Fx) bool {
			return fx.Chorus.Low.PreDelay == 40 && fx.Chorus.High.PreDelay == 0.5
		}},
		{"phaser step rate", map[int]uint8{136: 51}, func(fx *Fx) bool {
			return fx.Phaser.StepRate.On() && fx.Phaser.StepRate.Level() == 50
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx, err := DecodeFx(section("Fx(1)", fxSize, tt.pokes))
			if err != nil {
				t.Fatal(err)
			}
			if !tt.check(fx) {
				t.Errorf("fx decoded from %v = %+v", tt.pokes, fx)
			}
		})
	}
}

func TestDecodeFxBlockLimits(t *testing.T) {
	tests := []struct {
		name  string
		pokes map[int]uint8
		field string
	}{
		{"dc30 echo over 600", map[int]uint8{212: 4, 213: 89}, "Fx(1).dc30.echo_repeat_rate"},
		{"ps1 pre-delay over 300", map[int]uint8{78: 2, 79: 45}, "Fx(1).pitch_shifter.ps1_pre_delay"},
		{"ps2 pre-delay over 300", map[int]uint8{84: 3, 85: 0}, "Fx(1).pitch_shifter.ps2_pre_delay"},
		{"hr1 pre-delay over 300", map[int]uint8{91: 2, 92: 45}, "Fx(1).harmonist.hr1_pre_delay"},
		{"hr2 user last degree", map[int]uint8{123: 49}, "Fx(1).harmonist.hr2_user.e_flat"},
		{"chorus pre-delay over 40", map[int]uint8{186: 81}, "Fx(1).chorus.low.pre_delay"},
		{"phaser step rate over 101", map[int]uint8{136: 102}, "Fx(1).phaser.step_rate"},
		{"octave range", map[int]uint8{71: 4}, "Fx(1).octave.range"},
		{"slicer pattern", map[int]uint8{161: 20}, "Fx(1).slicer.pattern"},
		{"rotary level", map[int]uint8{157: 101}, "Fx(1).rotary.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFx(section("Fx(1)", fxSize, tt.pokes))
			var dv *DomainViolationError
			if !errors.As(err, &dv) || dv.Field != tt.field {
				t.Errorf("error = %v, want DomainViolationError on %s", err, tt.field)
			}
		})
	}
}
