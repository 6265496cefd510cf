package katanatsl

import "math"

// Tokens is a raw slice of two-hex-digit byte tokens as stored in a TSL file.
type Tokens []string

// Gap is a run of tokens a section carries but does not interpret.
type Gap struct {
	Offset int    `json:"offset"`
	Tokens Tokens `json:"tokens"`
}

// ByteOf parses a two-hex-digit token.
func ByteOf(tok string) (uint8, error) {
	if len(tok) != 2 {
		return 0, &MalformedTokenError{Token: tok}
	}
	hi, ok1 := hexNibble(tok[0])
	lo, ok2 := hexNibble(tok[1])
	if !ok1 || !ok2 {
		return 0, &MalformedTokenError{Token: tok}
	}
	return hi<<4 | lo, nil
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// VarintBE7 folds tokens big-endian at seven bits per token. Token values
// are added unmasked: acc = acc<<7 + v.
func VarintBE7(toks []string) (uint32, error) {
	var acc uint32
	for _, t := range toks {
		v, err := ByteOf(t)
		if err != nil {
			return 0, err
		}
		acc = acc<<7 + uint32(v)
	}
	return acc, nil
}

// Offset returns v-k; centred percentages use k=50, pitch uses k=24.
func Offset(v uint8, k int) int { return int(v) - k }

// HalfDBStep maps a code onto the ±12dB half-step scale.
func HalfDBStep(v uint8) float64 { return float64(int(v)-24) * 0.5 }

// DB20 maps a code onto the ±20dB integer scale.
func DB20(v uint8) int { return int(v) - 20 }

// QFactor maps a code onto 2^(v-1).
func QFactor(v uint8) float64 { return math.Pow(2, float64(int(v)-1)) }

// HalfStep maps a code onto 0.5 steps.
func HalfStep(v uint8) float64 { return float64(v) * 0.5 }
