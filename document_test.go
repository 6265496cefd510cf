package katanatsl

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"katanatsl/internal/tsltest"
)

func TestDecodeName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		err  any
	}{
		{"string", `"Lead"`, "Lead", nil},
		{"trailing spaces", `"Katana          "`, "Katana", nil},
		{"tokens", `["4B","61","74","61","6E","61","20","20","20","20","20","20","20","20","20","20"]`, "Katana", nil},
		{"sixteen", `"abcdefghijklmnop"`, "abcdefghijklmnop", nil},
		{"seventeen", `"abcdefghijklmnopq"`, "", &NameTooLongError{}},
		{"seventeen before trim", `"abcdefghijklmnop "`, "abcdefghijklmnop", nil},
		{"bad token", `["4B","G1"]`, "", &MalformedTokenError{}},
		{"number", `12`, "", nil},
		{"null", `null`, "", &MissingSectionError{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeName(json.RawMessage(tt.raw))
			switch want := tt.err.(type) {
			case *NameTooLongError:
				if !errors.As(err, &want) || want.Length != 17 {
					t.Errorf("error = %v, want NameTooLongError(17)", err)
				}
			case *MissingSectionError:
				if !errors.As(err, &want) || want.Section != "PatchName" {
					t.Errorf("error = %v, want MissingSectionError(PatchName)", err)
				}
			case *MalformedTokenError:
				if !errors.As(err, &want) || want.Field != "PatchName" || want.Offset != 1 {
					t.Errorf("error = %v, want MalformedTokenError at 1", err)
				}
			default:
				if tt.want == "" {
					if err == nil {
						t.Error("expected error")
					}
					return
				}
				if err != nil || got != tt.want {
					t.Errorf("DecodeName = %q, %v, want %q", got, err, tt.want)
				}
			}
		})
	}
}

func TestDecodeMemo(t *testing.T) {
	note := "second"
	tests := []struct {
		raw  string
		want *Memo
		ok   bool
	}{
		{``, nil, true},
		{`null`, nil, true},
		{`"hello"`, &Memo{Text: "hello"}, true},
		{`{"memo":"m","isToneCentralPatch":true,"note":"second"}`, &Memo{Text: "m", IsToneCentralPatch: true, Note: &note}, true},
		{`{"memo":"m","isToneCentralPatch":false,"note":null}`, &Memo{Text: "m"}, true},
		{`{"memo":"m","isToneCentralPatch":false}`, &Memo{Text: "m"}, true},
		{`{"memo":"m"}`, nil, false},
		{`{"memo":null,"isToneCentralPatch":false}`, nil, false},
		{`{"isToneCentralPatch":true}`, nil, false},
		{`12`, nil, false},
		{`["a"]`, nil, false},
		{`{"memo":3}`, nil, false},
	}
	for _, tt := range tests {
		got, err := DecodeMemo(json.RawMessage(tt.raw))
		if !tt.ok {
			var im *InvalidMemoError
			if !errors.As(err, &im) {
				t.Errorf("DecodeMemo(%s) error = %v, want InvalidMemoError", tt.raw, err)
			}
			continue
		}
		if err != nil || !reflect.DeepEqual(got, tt.want) {
			t.Errorf("DecodeMemo(%s) = %+v, %v", tt.raw, got, err)
		}
	}
}

func TestDecodeTSL(t *testing.T) {
	full := tsltest.NewPatch("Full")
	full.Memo = "all sections"
	fx := tsltest.Zeros(tsltest.FxSize)
	fx[1] = tsltest.Hex(uint8(FxChorus))
	full.Set("Fx(1)", fx).Set("Fx(2)", tsltest.Zeros(tsltest.FxSize+4))
	p1 := tsltest.Zeros(tsltest.Patch1SizeV2)
	p1[1], p1[86], p1[87] = "01", "01", "01"
	full.Set("Patch_1", p1)
	full.Set("Patch_Mk2V2", tsltest.Zeros(tsltest.SoloEQSize))
	full.Set("Contour(1)", tsltest.Zeros(tsltest.ContourSize))
	full.Set("Contour(2)", tsltest.Zeros(2))
	full.Set("Contour(3)", nil)
	full.Set("Eq(2)", tsltest.Zeros(tsltest.EqualizerSize))
	full.Set("SomethingNew", []string{"00"})

	data := tsltest.Document(SupportedDevice,
		[]*tsltest.Patch{tsltest.NewPatch("Clean"), full},
		[]*tsltest.Patch{tsltest.NewPatch("Katana      ")},
	)
	doc, err := DecodeTSL(data)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Device != SupportedDevice || doc.FormatRev != "0001" || doc.Name != "fixture" {
		t.Errorf("header = %q %q %q", doc.Name, doc.FormatRev, doc.Device)
	}
	if got, want := doc.Names(), []string{"Clean", "Full", "Katana"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	refs := doc.Patches()
	if refs[2].Bank != 1 || refs[2].Slot != 0 {
		t.Errorf("third patch at %d:%d", refs[2].Bank, refs[2].Slot)
	}

	clean := doc.Banks[0][0]
	if clean.Fx1 != nil || clean.SoloEQ != nil || clean.Patch1.V2 != nil || clean.Memo != nil {
		t.Errorf("optional sections set on minimal patch: %+v", clean)
	}

	p := doc.Banks[0][1]
	if p.Memo == nil || p.Memo.Text != "all sections" {
		t.Errorf("memo = %+v", p.Memo)
	}
	if p.Fx1 == nil || p.Fx1.Type != FxChorus || p.Fx2 == nil || p.Fx2.PedalBend == nil {
		t.Errorf("fx = %+v / %+v", p.Fx1, p.Fx2)
	}
	if p.Patch1.V2 == nil || p.Patch1.V2.Contour != Contour2 {
		t.Errorf("patch1 v2 = %+v", p.Patch1.V2)
	}
	if p.SoloEQ == nil || p.Contour1 == nil || p.Contour2 == nil || p.Contour3 != nil || p.EQ2 == nil {
		t.Errorf("optional sections = %+v", p)
	}

	if _, err := json.Marshal(doc); err != nil {
		t.Errorf("marshal decoded document: %v", err)
	}
}

func TestDecodeTSLErrors(t *testing.T) {
	badFx := tsltest.NewPatch("BadFx")
	badFx.Set("Fx(1)", tsltest.Zeros(tsltest.FxSize-1))

	badDelay := tsltest.NewPatch("BadDelay")
	badDelay.Poke("Delay(1)", 1, 0x7F)

	noDelay := tsltest.NewPatch("NoDelay").Set("Delay(2)", nil)
	noName := tsltest.NewPatch("x").Set("PatchName", nil)
	nullName := tsltest.NewPatch("x").Set("PatchName", json.RawMessage("null"))
	longTokenName := tsltest.NewPatch("x").Set("PatchName", nameTokens("abcdefghijklmnopq"))
	longName := tsltest.NewPatch("abcdefghijklmnopq")
	badMemo := tsltest.NewPatch("memo")
	badMemo.Memo = 42
	notTokens := tsltest.NewPatch("x").Set("Patch_0", "oops")

	tests := []struct {
		name  string
		data  []byte
		check func(error) bool
		where string
	}{
		{"device", tsltest.Names("KATANA MkI", "x"), func(err error) bool {
			var ud *UnsupportedDeviceError
			return errors.As(err, &ud) && ud.Device == "KATANA MkI"
		}, ""},
		{"envelope", []byte(`{"device":`), func(err error) bool { return err != nil }, ""},
		{"fx length", secondOf(badFx), func(err error) bool {
			var wl *WrongSectionLengthError
			return errors.As(err, &wl) && wl.Section == "Fx(1)" && wl.Actual == 220
		}, "bank 0 slot 1"},
		{"delay type", secondOf(badDelay), func(err error) bool {
			var ue *UnknownEnumCodeError
			return errors.As(err, &ue) && ue.Field == "Delay(1).type"
		}, "bank 0 slot 1"},
		{"missing section", secondOf(noDelay), func(err error) bool {
			var ms *MissingSectionError
			return errors.As(err, &ms) && ms.Section == "Delay(2)"
		}, "bank 0 slot 1"},
		{"missing name", secondOf(noName), func(err error) bool {
			var ms *MissingSectionError
			return errors.As(err, &ms) && ms.Section == "PatchName"
		}, ""},
		{"null name", secondOf(nullName), func(err error) bool {
			var ms *MissingSectionError
			return errors.As(err, &ms) && ms.Section == "PatchName"
		}, ""},
		{"long token name", secondOf(longTokenName), func(err error) bool {
			var nl *NameTooLongError
			return errors.As(err, &nl) && nl.Length == 17
		}, ""},
		{"long name", secondOf(longName), func(err error) bool {
			var nl *NameTooLongError
			return errors.As(err, &nl) && nl.Length == 17
		}, ""},
		{"memo", secondOf(badMemo), func(err error) bool {
			var im *InvalidMemoError
			return errors.As(err, &im)
		}, ""},
		{"section not tokens", secondOf(notTokens), func(err error) bool {
			return err != nil && strings.Contains(err.Error(), "section Patch_0")
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := DecodeTSL(tt.data)
			if d != nil || !tt.check(err) {
				t.Fatalf("DecodeTSL = %v, %v", d, err)
			}
			if tt.where != "" && !strings.Contains(err.Error(), tt.where) {
				t.Errorf("error %q does not name %q", err, tt.where)
			}
		})
	}
}

func TestDecodeTSLPokedFields(t *testing.T) {
	p := tsltest.NewPatch("x").Set("PatchName", nameTokens("Brown Lead      "))
	p.Poke("Patch_0", 0, 1)
	p.Poke("Patch_0", 17, uint8(AmpBrown))
	doc, err := DecodeTSL(tsltest.Document(SupportedDevice, []*tsltest.Patch{p}))
	if err != nil {
		t.Fatal(err)
	}
	got := doc.Banks[0][0]
	if got.Name != "Brown Lead" {
		t.Errorf("name = %q", got.Name)
	}
	if !got.BoostAmp.Boost.On || got.BoostAmp.Amp.Type != AmpBrown {
		t.Errorf("boost on = %v, amp type = %v", got.BoostAmp.Boost.On, got.BoostAmp.Amp.Type)
	}
}

// nameTokens spells s as character code tokens.
func nameTokens(s string) []string {
	out := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = hex(s[i])
	}
	return out
}

// secondOf puts p after one valid patch in a single bank.
func secondOf(p *tsltest.Patch) []byte {
	return tsltest.Document(SupportedDevice, []*tsltest.Patch{tsltest.NewPatch("ok"), p})
}

func TestDecodeWorkers(t *testing.T) {
	var banks [][]*tsltest.Patch
	for b := 0; b < 4; b++ {
		var bank []*tsltest.Patch
		for s := 0; s < 8; s++ {
			p := tsltest.NewPatch(string(rune('A'+b)) + string(rune('a'+s)))
			p.Poke("Patch_0", 18, uint8(b*8+s))
			bank = append(bank, p)
		}
		banks = append(banks, bank)
	}
	data := tsltest.Document(SupportedDevice, banks...)

	seq, err := DecodeTSL(data)
	if err != nil {
		t.Fatal(err)
	}
	par, err := DecodeTSL(data, WithWorkers(4))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(seq, par) {
		t.Error("concurrent decode differs from sequential decode")
	}

	// Two failures: the one at the lower position is reported whatever
	// order the workers finish in.
	banks[3][5].Poke("Patch_0", 18, 101)
	banks[1][2].Poke("Delay(2)", 1, 0x7F)
	data = tsltest.Document(SupportedDevice, banks...)
	for i := 0; i < 20; i++ {
		_, err := DecodeTSL(data, WithWorkers(8))
		if err == nil || !strings.HasPrefix(err.Error(), "bank 1 slot 2") {
			t.Fatalf("error = %v, want the bank 1 slot 2 failure", err)
		}
	}
}
