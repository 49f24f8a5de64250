package unit

// Fundamental identifies one of the SI base dimensions, plus a dimensionless
// pseudo-dimension. The set is closed; declaration order is the canonical
// display order used by Composition rendering.
type Fundamental int

const (
	Mass Fundamental = iota
	Angle
	Length
	Time
	LuminousIntensity
	Temperature
	Current
	AmountOfSubstance
	Dimensionless
)

// fundamentalSymbols maps each dimension to its canonical symbol.
var fundamentalSymbols = [...]string{
	Mass:              "kg",
	Angle:             "rad",
	Length:            "m",
	Time:              "s",
	LuminousIntensity: "cd",
	Temperature:       "K",
	Current:           "A",
	AmountOfSubstance: "mol",
	Dimensionless:     "1",
}

// fundamentalNames maps each dimension to its descriptive name.
var fundamentalNames = [...]string{
	Mass:              "mass",
	Angle:             "angle",
	Length:            "length",
	Time:              "time",
	LuminousIntensity: "luminous intensity",
	Temperature:       "temperature",
	Current:           "electric current",
	AmountOfSubstance: "amount of substance",
	Dimensionless:     "dimensionless",
}

// symbolTable resolves a base symbol back to its dimension.
var symbolTable = func() map[string]Fundamental {
	m := make(map[string]Fundamental, len(fundamentalSymbols))
	for f, sym := range fundamentalSymbols {
		m[sym] = Fundamental(f)
	}
	return m
}()

// Symbol returns the canonical symbol for the dimension ("kg", "m", ...).
func (f Fundamental) Symbol() string {
	if f < 0 || int(f) >= len(fundamentalSymbols) {
		return "?"
	}
	return fundamentalSymbols[f]
}

func (f Fundamental) String() string {
	return f.Symbol()
}

// Name returns the descriptive name for the dimension ("mass", "time", ...).
func (f Fundamental) Name() string {
	if f < 0 || int(f) >= len(fundamentalNames) {
		return "unknown"
	}
	return fundamentalNames[f]
}

// FromSymbol resolves a base symbol to its dimension.
func FromSymbol(sym string) (Fundamental, bool) {
	f, ok := symbolTable[sym]
	return f, ok
}

// Fundamentals returns all dimensions in canonical display order.
func Fundamentals() []Fundamental {
	out := make([]Fundamental, 0, len(fundamentalSymbols))
	for f := range fundamentalSymbols {
		out = append(out, Fundamental(f))
	}
	return out
}
