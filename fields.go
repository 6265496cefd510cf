package katanatsl

import (
	"strconv"

	"github.com/pkg/errors"
)

// Section is a named token slice taken from one paramSet field.
type Section struct {
	Name   string
	Tokens Tokens
}

// fieldReader pulls typed fields out of a section at fixed offsets. The
// first failure sticks; later reads return zero values and the error is
// collected once with done. Sub-readers share the parent's state, so
// offsets consumed anywhere in the section are known when gaps are
// computed.
type fieldReader struct {
	st     *sectionState
	path   string
	lo, hi int
}

type sectionState struct {
	values Tokens
	used   []bool
	err    error
}

func newFieldReader(s Section, lengths ...int) (*fieldReader, error) {
	n := len(s.Tokens)
	ok := false
	for _, l := range lengths {
		if n == l {
			ok = true
			break
		}
	}
	if !ok {
		return nil, &WrongSectionLengthError{Section: s.Name, Expected: lengths, Actual: n}
	}
	return &fieldReader{
		st:   &sectionState{values: s.Tokens, used: make([]bool, n)},
		path: s.Name,
		hi:   n,
	}, nil
}

func (f *fieldReader) len() int { return f.hi - f.lo }

func (f *fieldReader) sub(name string, lo, hi int) *fieldReader {
	return &fieldReader{st: f.st, path: f.path + "." + name, lo: f.lo + lo, hi: f.lo + hi}
}

func (f *fieldReader) field(name string) string { return f.path + "." + name }

func (f *fieldReader) fail(err error) {
	if f.st.err == nil {
		f.st.err = err
	}
}

// done returns the first failure. Tokens no field read must still be well
// formed, since they are kept verbatim in the gaps.
func (f *fieldReader) done() error {
	if f.st.err != nil {
		return f.st.err
	}
	for i, tok := range f.st.values {
		if f.st.used[i] {
			continue
		}
		if _, err := ByteOf(tok); err != nil {
			f.fail(&MalformedTokenError{Field: f.path, Offset: i, Token: tok})
			break
		}
	}
	return f.st.err
}

func (f *fieldReader) raw(i int, name string) (uint8, bool) {
	if f.st.err != nil {
		return 0, false
	}
	abs := f.lo + i
	if i < 0 || abs >= f.hi {
		f.fail(errors.Errorf("%s: offset %d outside block of %d tokens", f.field(name), i, f.len()))
		return 0, false
	}
	f.st.used[abs] = true
	tok := f.st.values[abs]
	v, err := ByteOf(tok)
	if err != nil {
		f.fail(&MalformedTokenError{Field: f.field(name), Offset: abs, Token: tok})
		return 0, false
	}
	return v, true
}

// domain attaches field and raw value to a constructor's domain error.
func (f *fieldReader) domain(name string, raw int, err error) {
	var dv *DomainViolationError
	if errors.As(err, &dv) {
		dv.Field = f.field(name)
		dv.Raw = raw
	}
	f.fail(err)
}

func (f *fieldReader) num(i int, name string) int {
	v, _ := f.raw(i, name)
	return int(v)
}

func (f *fieldReader) flag(i int, name string) bool {
	v, _ := f.raw(i, name)
	return v > 0
}

func (f *fieldReader) percent(i int, name string) Percent {
	v, ok := f.raw(i, name)
	if !ok {
		return 0
	}
	p, err := NewPercent(int(v))
	if err != nil {
		f.domain(name, int(v), err)
	}
	return p
}

func (f *fieldReader) toggle(i int, name string) ToggleablePercent {
	v, ok := f.raw(i, name)
	if !ok {
		return 0
	}
	t, err := NewToggleablePercent(int(v))
	if err != nil {
		f.domain(name, int(v), err)
	}
	return t
}

// ranged returns raw+k, checked against lo..hi.
func (f *fieldReader) ranged(i int, name string, k, lo, hi int) int {
	v, ok := f.raw(i, name)
	if !ok {
		return 0
	}
	return f.check(name, int(v), int(v)+k, lo, hi)
}

// centered is the ±50 knob used for tone, bottom and EQ style controls.
func (f *fieldReader) centered(i int, name string) int {
	return f.ranged(i, name, -50, -50, 50)
}

func (f *fieldReader) check(name string, raw, val, lo, hi int) int {
	if val < lo || val > hi {
		f.fail(&DomainViolationError{
			Field:  f.field(name),
			Raw:    raw,
			Value:  float64(val),
			Domain: strconv.Itoa(lo) + ".." + strconv.Itoa(hi),
		})
		return 0
	}
	return val
}

// varint folds tokens lo..hi-1 as VarintBE7 does and checks the result
// against 0..limit.
func (f *fieldReader) varint(lo, hi int, name string, limit int) int {
	var acc uint32
	for i := lo; i < hi; i++ {
		v, ok := f.raw(i, name)
		if !ok {
			return 0
		}
		acc = acc<<7 + uint32(v)
	}
	return f.check(name, int(acc), int(acc), 0, limit)
}

func (f *fieldReader) gain12(i int, name string) Gain12dB {
	v, ok := f.raw(i, name)
	if !ok {
		return 0
	}
	g, err := NewGain12dB(HalfDBStep(v))
	if err != nil {
		f.domain(name, int(v), err)
	}
	return g
}

func (f *fieldReader) gain20(i int, name string) Gain20dB {
	v, ok := f.raw(i, name)
	if !ok {
		return 0
	}
	g, err := NewGain20dB(DB20(v))
	if err != nil {
		f.domain(name, int(v), err)
	}
	return g
}

func (f *fieldReader) pitch(i int, name string) Pitch {
	v, ok := f.raw(i, name)
	if !ok {
		return 0
	}
	p, err := NewPitch(Offset(v, 24))
	if err != nil {
		f.domain(name, int(v), err)
	}
	return p
}

func (f *fieldReader) q(i int, name string) Q {
	v, ok := f.raw(i, name)
	if !ok {
		return 0
	}
	q, err := NewQ(QFactor(v))
	if err != nil {
		f.domain(name, int(v), err)
	}
	return q
}

func enumAt[T ~uint8](f *fieldReader, i int, name string, d *enumDomain[T]) T {
	v, ok := f.raw(i, name)
	if !ok {
		return 0
	}
	e, err := d.decode(v)
	if err != nil {
		var ue *UnknownEnumCodeError
		if errors.As(err, &ue) {
			ue.Field = f.field(name)
		}
		f.fail(err)
	}
	return e
}

// gaps returns the runs of tokens no field consumed.
func (f *fieldReader) gaps() []Gap {
	var out []Gap
	for i := f.lo; i < f.hi; {
		if f.st.used[i] {
			i++
			continue
		}
		j := i
		for j < f.hi && !f.st.used[j] {
			j++
		}
		toks := make(Tokens, j-i)
		copy(toks, f.st.values[i:j])
		out = append(out, Gap{Offset: i - f.lo, Tokens: toks})
		i = j
	}
	return out
}
