// Package tsltest builds TSL documents for tests. Sections start out as
// zero tokens, which every field accepts except the reverb type, so the
// builder sets reverb codes to Room.
package tsltest

import (
	"encoding/json"
	"fmt"
)

// Section sizes of the paramSet fields.
const (
	Patch0Size    = 72
	FxSize        = 221
	DelaySize     = 26
	Patch1Size    = 50
	Patch1SizeV2  = 91
	Patch2Size    = 36
	SoloEQSize    = 10
	ContourSize   = 8
	EqualizerSize = 24
)

const prefix = "UserPatch%"

// Zeros returns n "00" tokens.
func Zeros(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "00"
	}
	return out
}

// Hex formats v as a token.
func Hex(v uint8) string { return fmt.Sprintf("%02X", v) }

// Patch is one entry of the data array.
type Patch struct {
	Memo   any
	Params map[string]any
}

// NewPatch returns a patch carrying only the required sections.
func NewPatch(name string) *Patch {
	p1 := Zeros(Patch1Size)
	p1[1] = "01"
	p2 := Zeros(Patch2Size)
	p2[16], p2[17], p2[18] = "01", "01", "01"
	return &Patch{Params: map[string]any{
		prefix + "PatchName": name,
		prefix + "Patch_0":   Zeros(Patch0Size),
		prefix + "Delay(1)":  Zeros(DelaySize),
		prefix + "Delay(2)":  Zeros(DelaySize),
		prefix + "Patch_1":   p1,
		prefix + "Patch_2":   p2,
	}}
}

// Set stores value under the paramSet key; nil removes the key.
func (p *Patch) Set(key string, value any) *Patch {
	if value == nil {
		delete(p.Params, prefix+key)
		return p
	}
	p.Params[prefix+key] = value
	return p
}

// Tokens returns the token slice stored under key.
func (p *Patch) Tokens(key string) []string {
	t, _ := p.Params[prefix+key].([]string)
	return t
}

// Poke sets one token of the section under key.
func (p *Patch) Poke(key string, i int, v uint8) *Patch {
	p.Tokens(key)[i] = Hex(v)
	return p
}

func (p *Patch) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Memo     any            `json:"memo,omitempty"`
		ParamSet map[string]any `json:"paramSet"`
	}{p.Memo, p.Params})
}

// Document encodes a TSL file for device holding the given banks.
func Document(device string, banks ...[]*Patch) []byte {
	if banks == nil {
		banks = [][]*Patch{}
	}
	data, err := json.Marshal(map[string]any{
		"name":      "fixture",
		"formatRev": "0001",
		"device":    device,
		"data":      banks,
	})
	if err != nil {
		panic(err)
	}
	return data
}

// Names builds a single-bank document with one patch per name.
func Names(device string, names ...string) []byte {
	bank := make([]*Patch, len(names))
	for i, n := range names {
		bank[i] = NewPatch(n)
	}
	return Document(device, bank)
}
