package unit

import (
	"strconv"
	"strings"
)

// Unit is the public-facing unit value: the parsed formula text, the
// resolved composition and scale, and the alias name when one applies.
// Units are immutable; arithmetic returns new instances.
type Unit struct {
	formula  string
	prefixed Prefixed
	alias    string
}

// Parse parses a formula against DefaultAliases.
func Parse(formula string) (*Unit, error) {
	return ParseWith(formula, DefaultAliases)
}

// ParseWith parses a formula against an explicit alias registry. An
// "alias = expr" input registers the alias before returning. A formula that
// is exactly a registered alias symbol is recorded as that alias so it
// renders by name.
func ParseWith(formula string, aliases *AliasManager) (*Unit, error) {
	if aliases == nil {
		aliases = DefaultAliases
	}
	p := NewParser(formula, aliases)
	res, err := p.parse()
	if err != nil {
		return nil, err
	}

	alias := res.alias
	if alias == "" && aliases.Has(res.formula) {
		alias = res.formula
	}

	return &Unit{
		formula:  res.formula,
		prefixed: res.prefixed,
		alias:    alias,
	}, nil
}

// FromPrefixed constructs a Unit with a synthesized canonical formula and no
// alias.
func FromPrefixed(p Prefixed) *Unit {
	u := &Unit{prefixed: p}
	u.formula = u.render()
	return u
}

// FromComposition constructs an unprefixed Unit from a composition.
func FromComposition(c Composition) *Unit {
	return FromPrefixed(NewPrefixed(1, c))
}

// Formula returns the originally parsed (or re-derived) formula text.
func (u *Unit) Formula() string { return u.formula }

// Alias returns the alias name, empty when none applies.
func (u *Unit) Alias() string { return u.alias }

// Prefixed returns the resolved composition and scale.
func (u *Unit) Prefixed() Prefixed { return u.prefixed }

// Composition returns a copy of the resolved composition.
func (u *Unit) Composition() Composition { return NewComposition(u.prefixed.Comp) }

// Scale returns the resolved scale factor.
func (u *Unit) Scale() float64 { return u.prefixed.Scale }

// IsDimensionless reports whether the unit has no dimension.
func (u *Unit) IsDimensionless() bool { return u.prefixed.Comp.IsDimensionless() }

// Mul multiplies two units. The result carries a regenerated canonical
// formula and no alias.
func (u *Unit) Mul(o *Unit) *Unit {
	return FromPrefixed(u.prefixed.Mul(o.prefixed))
}

// Div divides two units.
func (u *Unit) Div(o *Unit) *Unit {
	return FromPrefixed(u.prefixed.Div(o.prefixed))
}

// Pow raises the unit to an integer power.
func (u *Unit) Pow(n int) (*Unit, error) {
	p, err := u.prefixed.Pow(n)
	if err != nil {
		return nil, err
	}
	return FromPrefixed(p), nil
}

// Equal reports composition and scale equality. Formula text and alias do
// not participate: parse("N") equals parse("kg*m/s**2").
func (u *Unit) Equal(o *Unit) bool {
	return u.prefixed.Equal(o.prefixed)
}

// SameDimension reports dimensional compatibility, ignoring scale: m and km
// share a dimension but are not Equal.
func (u *Unit) SameDimension(o *Unit) bool {
	return u.prefixed.SameDimension(o.prefixed)
}

// String renders the unit: the alias symbol when one applies, otherwise the
// best-prefix symbol concatenated with the canonical composition rendering.
// An explicit coefficient takes over when no prefix makes the residual scale
// 1, or when the leading term is powered and a prefix would not re-parse.
func (u *Unit) String() string {
	if u.alias != "" {
		return u.alias
	}
	return u.render()
}

func (u *Unit) render() string {
	comp := u.prefixed.Comp.String()
	if u.prefixed.Comp.IsDimensionless() {
		if scaleEqual(u.prefixed.Scale, 1) {
			return comp
		}
		return formatScale(u.prefixed.Scale)
	}

	// A leading prefix symbol would merge with a "1/..." rendering into an
	// unparseable token, so pure-denominator compositions carry an explicit
	// coefficient instead.
	if strings.HasPrefix(comp, "1/") {
		if scaleEqual(u.prefixed.Scale, 1) {
			return comp
		}
		return formatScale(u.prefixed.Scale) + comp[1:]
	}

	// A prefix symbol merges with the leading numerator term, so when that
	// term carries an exponent the prefix would re-parse raised to it
	// ("Mm^2" is (1e6 m)^2, not 1e6 m^2). Prefixes apply only to an
	// exponent-1 leading term.
	if u.prefixed.Comp.leadingExponent() == 1 {
		if sym, _ := u.prefixed.BestPrefix(); sym != "" {
			return sym + comp
		}
	}
	if scaleEqual(u.prefixed.Scale, 1) {
		return comp
	}
	// No prefix fits; emit an explicit coefficient. "*" keeps the rendering
	// parseable.
	var b strings.Builder
	b.WriteString(formatScale(u.prefixed.Scale))
	b.WriteString("*")
	b.WriteString(comp)
	return b.String()
}

func formatScale(s float64) string {
	return strconv.FormatFloat(s, 'g', -1, 64)
}
