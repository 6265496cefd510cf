package katanatsl

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// SupportedDevice is the only device string a TSL file may target.
const SupportedDevice = "KATANA MkII"

// RawDocument is the TSL JSON envelope before any section is decoded.
type RawDocument struct {
	Name      string       `json:"name"`
	FormatRev string       `json:"formatRev"`
	Device    string       `json:"device"`
	Data      [][]RawPatch `json:"data"`
}

// RawPatch is one patch entry of the envelope.
type RawPatch struct {
	Memo     json.RawMessage            `json:"memo"`
	ParamSet map[string]json.RawMessage `json:"paramSet"`
}

// LoadTSL parses the envelope of a TSL file.
func LoadTSL(data []byte) (*RawDocument, error) {
	var raw RawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parse tsl envelope")
	}
	return &raw, nil
}

// ReadTSL parses the envelope from r.
func ReadTSL(r io.Reader) (*RawDocument, error) {
	var raw RawDocument
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "parse tsl envelope")
	}
	return &raw, nil
}

// Document is a decoded TSL file. Banks keep the file order: the outer
// index is the bank, the inner one the slot.
type Document struct {
	Name      string     `json:"name"`
	FormatRev string     `json:"format_rev"`
	Device    string     `json:"device"`
	Banks     [][]*Patch `json:"data"`
}

type decodeOptions struct {
	workers int
}

// Option tunes Decode.
type Option func(*decodeOptions)

// WithWorkers decodes up to n patches at once. n <= 1 decodes in order on
// the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *decodeOptions) { o.workers = n }
}

// Decode validates the device and decodes every patch. The first failure
// aborts the document; with several workers the failure reported is the
// one at the lowest bank and slot.
func Decode(raw *RawDocument, opts ...Option) (*Document, error) {
	o := decodeOptions{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if raw.Device != SupportedDevice {
		return nil, &UnsupportedDeviceError{Device: raw.Device}
	}

	doc := &Document{
		Name:      raw.Name,
		FormatRev: raw.FormatRev,
		Device:    raw.Device,
		Banks:     make([][]*Patch, len(raw.Data)),
	}
	for b, bank := range raw.Data {
		doc.Banks[b] = make([]*Patch, len(bank))
	}

	if o.workers <= 1 {
		for b, bank := range raw.Data {
			for s, rp := range bank {
				p, err := DecodePatch(rp)
				if err != nil {
					return nil, errors.Wrapf(err, "bank %d slot %d", b, s)
				}
				doc.Banks[b][s] = p
			}
		}
		return doc, nil
	}

	errs := make([][]error, len(raw.Data))
	var g errgroup.Group
	g.SetLimit(o.workers)
	for b, bank := range raw.Data {
		errs[b] = make([]error, len(bank))
		for s := range bank {
			g.Go(func() error {
				p, err := DecodePatch(raw.Data[b][s])
				if err != nil {
					errs[b][s] = err
					return nil
				}
				doc.Banks[b][s] = p
				return nil
			})
		}
	}
	_ = g.Wait()
	for b := range errs {
		for s, err := range errs[b] {
			if err != nil {
				return nil, errors.Wrapf(err, "bank %d slot %d", b, s)
			}
		}
	}
	return doc, nil
}

// DecodeTSL parses and decodes a TSL file in one step.
func DecodeTSL(data []byte, opts ...Option) (*Document, error) {
	raw, err := LoadTSL(data)
	if err != nil {
		return nil, err
	}
	return Decode(raw, opts...)
}

// PatchRef is a patch with its position in the file.
type PatchRef struct {
	Bank  int
	Slot  int
	Patch *Patch
}

// Patches lists every patch in file order.
func (d *Document) Patches() []PatchRef {
	var out []PatchRef
	for b, bank := range d.Banks {
		for s, p := range bank {
			out = append(out, PatchRef{Bank: b, Slot: s, Patch: p})
		}
	}
	return out
}

// Names lists patch names in file order.
func (d *Document) Names() []string {
	var out []string
	for _, ref := range d.Patches() {
		out = append(out, ref.Patch.Name)
	}
	return out
}
