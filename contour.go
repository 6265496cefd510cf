package katanatsl

// Contour is one of the three user contour curves. Newer firmware stores
// eight tokens; only the first two are understood and the rest are kept in
// Gaps.
type Contour struct {
	Type      int   `json:"type"`
	FreqShift int   `json:"freq_shift"`
	Gaps      []Gap `json:"gaps,omitempty"`
}

func DecodeContour(s Section) (*Contour, error) {
	f, err := newFieldReader(s, 2, 8)
	if err != nil {
		return nil, err
	}
	c := &Contour{
		Type:      f.num(0, "type") + 1,
		FreqShift: f.num(1, "freq_shift") - 50,
	}
	if err := f.done(); err != nil {
		return nil, err
	}
	c.Gaps = f.gaps()
	return c, nil
}
