package katanatsl

import "fmt"

func hex(v uint8) string { return fmt.Sprintf("%02X", v) }

func zeros(n int) Tokens {
	t := make(Tokens, n)
	for i := range t {
		t[i] = "00"
	}
	return t
}

// section builds n zero tokens with the given offsets overwritten.
func section(name string, n int, pokes map[int]uint8) Section {
	t := zeros(n)
	for i, v := range pokes {
		t[i] = hex(v)
	}
	return Section{Name: name, Tokens: t}
}

func gapOffsets(gaps []Gap) map[int]int {
	out := map[int]int{}
	for _, g := range gaps {
		out[g.Offset] = len(g.Tokens)
	}
	return out
}
