package katanatsl

import (
	"fmt"
	"sort"
	"strings"
)

// Variant is one named code of an enum domain.
type Variant struct {
	Code  uint8  `json:"code"`
	Name  string `json:"name"`
	Label string `json:"label,omitempty"`
}

// Domain is a closed, sparse code-to-variant mapping.
type Domain interface {
	Name() string
	Variants() []Variant
	Lookup(code uint8) (Variant, error)
}

var registry = map[string]Domain{}

// Domains returns every registered enum domain ordered by name.
func Domains() []Domain {
	out := make([]Domain, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// LookupDomain returns the registered domain with the given name.
func LookupDomain(name string) (Domain, bool) {
	d, ok := registry[name]
	return d, ok
}

type enumDomain[T ~uint8] struct {
	name     string
	variants []Variant
	index    map[uint8]int
}

type entry[T ~uint8] struct {
	code  T
	name  string
	label string
}

func newDomain[T ~uint8](name string, entries []entry[T]) *enumDomain[T] {
	d := &enumDomain[T]{
		name:     name,
		variants: make([]Variant, len(entries)),
		index:    make(map[uint8]int, len(entries)),
	}
	for i, e := range entries {
		code := uint8(e.code)
		if _, dup := d.index[code]; dup {
			panic(fmt.Sprintf("katanatsl: duplicate code 0x%02X in %s", code, name))
		}
		d.variants[i] = Variant{Code: code, Name: e.name, Label: e.label}
		d.index[code] = i
	}
	if _, dup := registry[name]; dup {
		panic("katanatsl: duplicate enum domain " + name)
	}
	registry[name] = d
	return d
}

func (d *enumDomain[T]) Name() string { return d.name }

func (d *enumDomain[T]) Variants() []Variant {
	out := make([]Variant, len(d.variants))
	copy(out, d.variants)
	return out
}

func (d *enumDomain[T]) Lookup(code uint8) (Variant, error) {
	i, ok := d.index[code]
	if !ok {
		return Variant{}, &UnknownEnumCodeError{Domain: d.name, Code: code}
	}
	return d.variants[i], nil
}

func (d *enumDomain[T]) decode(code uint8) (T, error) {
	if _, err := d.Lookup(code); err != nil {
		return 0, err
	}
	return T(code), nil
}

// parse finds a variant by name, ignoring case.
func (d *enumDomain[T]) parse(name string) (T, bool) {
	for _, v := range d.variants {
		if strings.EqualFold(v.Name, name) {
			return T(v.Code), true
		}
	}
	return 0, false
}

func (d *enumDomain[T]) nameOf(v T) string {
	if i, ok := d.index[uint8(v)]; ok {
		return d.variants[i].Name
	}
	return fmt.Sprintf("%s(0x%02X)", d.name, uint8(v))
}

func (d *enumDomain[T]) labelOf(v T) string {
	if i, ok := d.index[uint8(v)]; ok && d.variants[i].Label != "" {
		return d.variants[i].Label
	}
	return d.nameOf(v)
}

func (d *enumDomain[T]) text(v T) ([]byte, error) {
	v2, err := d.Lookup(uint8(v))
	if err != nil {
		return nil, err
	}
	return []byte(v2.Name), nil
}
