package katanatsl

import (
	"encoding/json"
	"errors"
	"testing"
)

func isDomainViolation(err error) bool {
	var dv *DomainViolationError
	return errors.As(err, &dv)
}

func TestConstrainedConstructors(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
		ok   bool
	}{
		{"percent 0", func() error { _, err := NewPercent(0); return err }, true},
		{"percent 100", func() error { _, err := NewPercent(100); return err }, true},
		{"percent 101", func() error { _, err := NewPercent(101); return err }, false},
		{"percent -1", func() error { _, err := NewPercent(-1); return err }, false},
		{"toggle 101", func() error { _, err := NewToggleablePercent(101); return err }, true},
		{"toggle 102", func() error { _, err := NewToggleablePercent(102); return err }, false},
		{"gain12 -12", func() error { _, err := NewGain12dB(-12); return err }, true},
		{"gain12 0.5", func() error { _, err := NewGain12dB(0.5); return err }, true},
		{"gain12 0.25", func() error { _, err := NewGain12dB(0.25); return err }, false},
		{"gain12 12.5", func() error { _, err := NewGain12dB(12.5); return err }, false},
		{"gain20 20", func() error { _, err := NewGain20dB(20); return err }, true},
		{"gain20 21", func() error { _, err := NewGain20dB(21); return err }, false},
		{"pitch -24", func() error { _, err := NewPitch(-24); return err }, true},
		{"pitch 25", func() error { _, err := NewPitch(25); return err }, false},
		{"q 0.5", func() error { _, err := NewQ(0.5); return err }, true},
		{"q 16", func() error { _, err := NewQ(16); return err }, true},
		{"q 32", func() error { _, err := NewQ(32); return err }, false},
		{"q 3", func() error { _, err := NewQ(3); return err }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !isDomainViolation(err) {
				t.Errorf("error = %v, want DomainViolationError", err)
			}
		})
	}
}

func TestToggleablePercent(t *testing.T) {
	tests := []struct {
		raw   int
		on    bool
		level int
		str   string
		json  string
	}{
		{0, false, 0, "Off", `{"on":false}`},
		{1, true, 0, "On<0>", `{"on":true,"level":0}`},
		{51, true, 50, "On<50>", `{"on":true,"level":50}`},
		{101, true, 100, "On<100>", `{"on":true,"level":100}`},
	}
	for _, tt := range tests {
		v, err := NewToggleablePercent(tt.raw)
		if err != nil {
			t.Fatal(err)
		}
		if v.On() != tt.on || v.Level() != tt.level || v.String() != tt.str {
			t.Errorf("raw %d: got on=%v level=%d str=%q", tt.raw, v.On(), v.Level(), v.String())
		}
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != tt.json {
			t.Errorf("raw %d: json = %s, want %s", tt.raw, data, tt.json)
		}
	}
}

func TestFieldReaderScales(t *testing.T) {
	tests := []struct {
		name string
		code uint8
		read func(f *fieldReader) any
		want any
		ok   bool
	}{
		{"gain12 low", 0, func(f *fieldReader) any { return f.gain12(0, "g") }, Gain12dB(-12), true},
		{"gain12 mid", 24, func(f *fieldReader) any { return f.gain12(0, "g") }, Gain12dB(0), true},
		{"gain12 high", 48, func(f *fieldReader) any { return f.gain12(0, "g") }, Gain12dB(12), true},
		{"gain12 over", 49, func(f *fieldReader) any { return f.gain12(0, "g") }, nil, false},
		{"gain20 high", 40, func(f *fieldReader) any { return f.gain20(0, "g") }, Gain20dB(20), true},
		{"gain20 over", 41, func(f *fieldReader) any { return f.gain20(0, "g") }, nil, false},
		{"pitch low", 0, func(f *fieldReader) any { return f.pitch(0, "p") }, Pitch(-24), true},
		{"pitch high", 48, func(f *fieldReader) any { return f.pitch(0, "p") }, Pitch(24), true},
		{"pitch over", 49, func(f *fieldReader) any { return f.pitch(0, "p") }, nil, false},
		{"q 0", 0, func(f *fieldReader) any { return f.q(0, "q") }, Q(0.5), true},
		{"q 5", 5, func(f *fieldReader) any { return f.q(0, "q") }, Q(16), true},
		{"q 6", 6, func(f *fieldReader) any { return f.q(0, "q") }, nil, false},
		{"q 255", 255, func(f *fieldReader) any { return f.q(0, "q") }, nil, false},
		{"percent over", 101, func(f *fieldReader) any { return f.percent(0, "p") }, nil, false},
		{"centered low", 0, func(f *fieldReader) any { return f.centered(0, "c") }, -50, true},
		{"centered over", 101, func(f *fieldReader) any { return f.centered(0, "c") }, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := newFieldReader(Section{Name: "S", Tokens: Tokens{hex(tt.code)}}, 1)
			if err != nil {
				t.Fatal(err)
			}
			got := tt.read(f)
			err = f.done()
			if !tt.ok {
				var dv *DomainViolationError
				if !errors.As(err, &dv) {
					t.Fatalf("error = %v, want DomainViolationError", err)
				}
				if dv.Raw != int(tt.code) || dv.Field == "" {
					t.Errorf("violation = %+v, want raw %d and a field name", dv, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFieldReaderFirstErrorSticks(t *testing.T) {
	f, err := newFieldReader(Section{Name: "S", Tokens: Tokens{"zz", "FF"}}, 2)
	if err != nil {
		t.Fatal(err)
	}
	_ = f.num(0, "a")
	_ = f.percent(1, "b")
	var mt *MalformedTokenError
	if !errors.As(f.done(), &mt) || mt.Field != "S.a" || mt.Offset != 0 {
		t.Errorf("done() = %v, want malformed token at S.a", f.done())
	}
}
