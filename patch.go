package katanatsl

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// MaxNameLength is the longest patch name the device stores.
const MaxNameLength = 16

const paramPrefix = "UserPatch%"

// Patch is one decoded user patch. Optional sections are nil when the
// file predates them.
type Patch struct {
	Name     string     `json:"name"`
	Memo     *Memo      `json:"memo,omitempty"`
	BoostAmp *BoostAmp  `json:"boost_amp"`
	Fx1      *Fx        `json:"fx1,omitempty"`
	Fx2      *Fx        `json:"fx2,omitempty"`
	Delay1   *Delay     `json:"delay1"`
	Delay2   *Delay     `json:"delay2"`
	Patch1   *Patch1    `json:"patch1"`
	Routing  *Routing   `json:"routing"`
	SoloEQ   *SoloEQ    `json:"solo_eq,omitempty"`
	Contour1 *Contour   `json:"contour1,omitempty"`
	Contour2 *Contour   `json:"contour2,omitempty"`
	Contour3 *Contour   `json:"contour3,omitempty"`
	EQ2      *Equalizer `json:"eq2,omitempty"`
}

// Memo is the patch note. Files carry either bare text or an object with
// a Tone Central flag and an optional second note.
type Memo struct {
	Text               string  `json:"memo"`
	IsToneCentralPatch bool    `json:"is_tone_central_patch,omitempty"`
	Note               *string `json:"note,omitempty"`
}

// param binds a paramSet key to the decoder filling its Patch field.
type param struct {
	key      string
	required bool
	decode   func(p *Patch, s Section) error
}

var paramLayout = []param{
	{"Patch_0", true, func(p *Patch, s Section) (err error) { p.BoostAmp, err = DecodeBoostAmp(s); return }},
	{"Fx(1)", false, func(p *Patch, s Section) (err error) { p.Fx1, err = DecodeFx(s); return }},
	{"Fx(2)", false, func(p *Patch, s Section) (err error) { p.Fx2, err = DecodeFx(s); return }},
	{"Delay(1)", true, func(p *Patch, s Section) (err error) { p.Delay1, err = DecodeDelay(s); return }},
	{"Delay(2)", true, func(p *Patch, s Section) (err error) { p.Delay2, err = DecodeDelay(s); return }},
	{"Patch_1", true, func(p *Patch, s Section) (err error) { p.Patch1, err = DecodePatch1(s); return }},
	{"Patch_2", true, func(p *Patch, s Section) (err error) { p.Routing, err = DecodeRouting(s); return }},
	{"Patch_Mk2V2", false, func(p *Patch, s Section) (err error) { p.SoloEQ, err = DecodeSoloEQ(s); return }},
	{"Contour(1)", false, func(p *Patch, s Section) (err error) { p.Contour1, err = DecodeContour(s); return }},
	{"Contour(2)", false, func(p *Patch, s Section) (err error) { p.Contour2, err = DecodeContour(s); return }},
	{"Contour(3)", false, func(p *Patch, s Section) (err error) { p.Contour3, err = DecodeContour(s); return }},
	{"Eq(2)", false, func(p *Patch, s Section) (err error) { p.EQ2, err = DecodeEqualizer(s); return }},
}

// DecodePatch assembles a Patch from one raw entry. paramSet keys the
// decoder does not know are ignored.
func DecodePatch(raw RawPatch) (*Patch, error) {
	p := &Patch{}

	nameRaw, ok := raw.ParamSet[paramPrefix+"PatchName"]
	if !ok {
		return nil, &MissingSectionError{Section: "PatchName"}
	}
	name, err := DecodeName(nameRaw)
	if err != nil {
		return nil, err
	}
	p.Name = name

	if p.Memo, err = DecodeMemo(raw.Memo); err != nil {
		return nil, err
	}

	for _, pr := range paramLayout {
		v, ok := raw.ParamSet[paramPrefix+pr.key]
		if !ok || isNull(v) {
			if pr.required {
				return nil, &MissingSectionError{Section: pr.key}
			}
			continue
		}
		var toks Tokens
		if err := json.Unmarshal(v, &toks); err != nil {
			return nil, errors.Wrapf(err, "section %s", pr.key)
		}
		if err := pr.decode(p, Section{Name: pr.key, Tokens: toks}); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// DecodeName reads a patch name given as a string or as character code
// tokens. Trailing whitespace is dropped before the length check.
func DecodeName(raw json.RawMessage) (string, error) {
	if len(bytes.TrimSpace(raw)) == 0 || isNull(raw) {
		return "", &MissingSectionError{Section: "PatchName"}
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		var toks Tokens
		if err := json.Unmarshal(raw, &toks); err != nil {
			return "", errors.Wrap(err, "patch name is neither a string nor a token list")
		}
		var sb strings.Builder
		for i, t := range toks {
			c, err := ByteOf(t)
			if err != nil {
				return "", &MalformedTokenError{Field: "PatchName", Offset: i, Token: t}
			}
			sb.WriteRune(rune(c))
		}
		name = sb.String()
	}
	name = strings.TrimRightFunc(name, unicode.IsSpace)
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return "", &NameTooLongError{Length: n}
	}
	return name, nil
}

// DecodeMemo reads a memo given as null, a string or a memo object.
func DecodeMemo(raw json.RawMessage) (*Memo, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || isNull(raw) {
		return nil, nil
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, &InvalidMemoError{Reason: err.Error()}
		}
		return &Memo{Text: s}, nil
	case '{':
		var m struct {
			Memo               *string `json:"memo"`
			IsToneCentralPatch *bool   `json:"isToneCentralPatch"`
			Note               *string `json:"note"`
		}
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, &InvalidMemoError{Reason: err.Error()}
		}
		// The text and the Tone Central flag are both mandatory; only the
		// note may be left out or null.
		if m.Memo == nil {
			return nil, &InvalidMemoError{Reason: "memo object without memo text"}
		}
		if m.IsToneCentralPatch == nil {
			return nil, &InvalidMemoError{Reason: "memo object without isToneCentralPatch"}
		}
		return &Memo{Text: *m.Memo, IsToneCentralPatch: *m.IsToneCentralPatch, Note: m.Note}, nil
	}
	return nil, &InvalidMemoError{Reason: "expected string, object or null"}
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
