package unit

import "sort"

// prefixFactors is the supported decimal prefix table. "u" is an ASCII
// spelling of micro accepted on input; "µ" is the canonical form used for
// display.
var prefixFactors = map[string]float64{
	"Y":  1e24,
	"Z":  1e21,
	"E":  1e18,
	"P":  1e15,
	"T":  1e12,
	"G":  1e9,
	"M":  1e6,
	"k":  1e3,
	"h":  1e2,
	"da": 1e1,
	"d":  1e-1,
	"c":  1e-2,
	"m":  1e-3,
	"µ":  1e-6,
	"u":  1e-6,
	"n":  1e-9,
	"p":  1e-12,
	"f":  1e-15,
	"a":  1e-18,
	"z":  1e-21,
	"y":  1e-24,
}

// Prefix is a decimal prefix symbol with its scale factor.
type Prefix struct {
	Symbol string
	Factor float64
}

// prefixesLongestFirst orders prefixes for stripping: longer symbols before
// shorter ones ("da" before "d"), then lexicographically for determinism.
var prefixesLongestFirst = func() []Prefix {
	out := make([]Prefix, 0, len(prefixFactors))
	for sym, factor := range prefixFactors {
		out = append(out, Prefix{sym, factor})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Symbol) != len(out[j].Symbol) {
			return len(out[i].Symbol) > len(out[j].Symbol)
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}()

// displayPrefixes orders prefixes for BestPrefix selection: largest factor
// first, excluding the non-canonical "u" spelling.
var displayPrefixes = func() []Prefix {
	out := make([]Prefix, 0, len(prefixFactors))
	for sym, factor := range prefixFactors {
		if sym == "u" {
			continue
		}
		out = append(out, Prefix{sym, factor})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Factor > out[j].Factor
	})
	return out
}()

// Prefixes returns the supported prefix symbols with their factors, largest
// factor first. The ASCII micro spelling "u" is omitted.
func Prefixes() []Prefix {
	out := make([]Prefix, len(displayPrefixes))
	copy(out, displayPrefixes)
	return out
}
