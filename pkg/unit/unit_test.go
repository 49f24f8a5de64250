package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitsmith/unitsmith/pkg/unit"
)

func mustParse(t *testing.T, aliases *unit.AliasManager, formula string) *unit.Unit {
	t.Helper()
	u, err := unit.ParseWith(formula, aliases)
	require.NoError(t, err)
	return u
}

func TestUnitParseKilogram(t *testing.T) {
	u := mustParse(t, unit.NewDefaultAliases(), "kg")

	assert.True(t, u.Composition().Equal(unit.Base(unit.Mass)))
	assert.Equal(t, 1.0, u.Scale())
	assert.Equal(t, "kg", u.String())
}

func TestUnitParseForceRendersCanonically(t *testing.T) {
	u := mustParse(t, unit.NewDefaultAliases(), "kg*m/s**2")
	assert.Equal(t, "kg*m/s^2", u.String())
}

func TestUnitParseKilometre(t *testing.T) {
	u := mustParse(t, unit.NewDefaultAliases(), "km")

	assert.True(t, u.Composition().Equal(unit.Base(unit.Length)))
	assert.InEpsilon(t, 1000, u.Scale(), 1e-9)
	assert.Equal(t, "km", u.String(), "best prefix recovers km")
}

func TestUnitAliasRoundTrip(t *testing.T) {
	aliases := unit.NewAliasManager()

	defined := mustParse(t, aliases, "N = kg*m/s**2")
	byAlias := mustParse(t, aliases, "N")
	expanded := mustParse(t, aliases, "kg*m/s**2")

	assert.True(t, byAlias.Equal(expanded))
	assert.Equal(t, "N", byAlias.String())
	assert.Equal(t, "N", defined.String())
}

func TestUnitMul(t *testing.T) {
	aliases := unit.NewDefaultAliases()
	m := mustParse(t, aliases, "m")
	s := mustParse(t, aliases, "s")

	got := m.Mul(s)
	want := unit.NewComposition(map[unit.Fundamental]int{unit.Length: 1, unit.Time: 1})
	assert.True(t, got.Composition().Equal(want))
	assert.Equal(t, "m*s", got.String())
}

func TestUnitArithmeticClearsAlias(t *testing.T) {
	aliases := unit.NewDefaultAliases()
	n := mustParse(t, aliases, "N")
	one := unit.FromComposition(unit.Composition{})

	require.Equal(t, "N", n.String())
	got := n.Mul(one)
	assert.Empty(t, got.Alias())
	assert.Equal(t, "kg*m/s^2", got.String())
}

func TestUnitEqualIgnoresFormula(t *testing.T) {
	aliases := unit.NewDefaultAliases()

	a := mustParse(t, aliases, "kg*m/s**2")
	b := mustParse(t, aliases, "m/s**2*kg")
	assert.True(t, a.Equal(b))

	km := mustParse(t, aliases, "km")
	m := mustParse(t, aliases, "m")
	assert.False(t, km.Equal(m), "prefix is part of the value")
	assert.True(t, km.SameDimension(m))
}

func TestUnitDivCancels(t *testing.T) {
	aliases := unit.NewDefaultAliases()
	a := mustParse(t, aliases, "kg*m/s**2")
	b := mustParse(t, aliases, "kg")

	got := a.Div(b)
	want := unit.NewComposition(map[unit.Fundamental]int{unit.Length: 1, unit.Time: -2})
	assert.True(t, got.Composition().Equal(want))
}

func TestUnitPow(t *testing.T) {
	aliases := unit.NewDefaultAliases()
	m := mustParse(t, aliases, "m")

	cubed, err := m.Pow(3)
	require.NoError(t, err)
	assert.Equal(t, "m^3", cubed.String())

	identity, err := m.Pow(0)
	require.NoError(t, err)
	assert.True(t, identity.IsDimensionless())
	assert.Equal(t, "1", identity.String())
}

func TestUnitFromComposition(t *testing.T) {
	c := unit.NewComposition(map[unit.Fundamental]int{unit.Mass: 1, unit.Time: -1})
	u := unit.FromComposition(c)

	assert.Equal(t, "kg/s", u.Formula())
	assert.Empty(t, u.Alias())
	assert.Equal(t, 1.0, u.Scale())
}

func TestUnitFromPrefixedCoefficientRender(t *testing.T) {
	p := unit.NewPrefixed(3600, unit.Base(unit.Time))
	u := unit.FromPrefixed(p)

	assert.Equal(t, "3600*s", u.String(), "no prefix fits 3600 exactly")
}

func TestUnitRenderPrefixedDenominator(t *testing.T) {
	aliases := unit.NewDefaultAliases()

	khz := mustParse(t, aliases, "kHz")
	assert.Equal(t, "1000/s", khz.String())

	mhz := mustParse(t, aliases, "mHz")
	assert.Equal(t, "0.001/s", mhz.String())

	reparsed := mustParse(t, aliases, khz.String())
	assert.True(t, reparsed.Equal(khz))
}

func TestUnitRenderParseRoundTrip(t *testing.T) {
	aliases := unit.NewDefaultAliases()
	formulas := []string{
		"kg",
		"km",
		"m/s",
		"kg*m/s**2",
		"1/s",
		"kg/(m*s**2)",
		"µs",
		"mol*K/A",
		"m**3",
		"h",
		"bar",
		"cd*rad",
		"km*km",
		"km**2",
		"µs**2",
		"kg*km",
	}

	for _, formula := range formulas {
		t.Run(formula, func(t *testing.T) {
			u := mustParse(t, aliases, formula)
			rendered := u.String()
			reparsed := mustParse(t, aliases, rendered)
			assert.True(t, reparsed.Equal(u), "parse(%q) != original", rendered)
		})
	}
}

func TestUnitRenderPoweredLeadingTermTakesCoefficient(t *testing.T) {
	aliases := unit.NewDefaultAliases()

	km := mustParse(t, aliases, "km")
	area := km.Mul(km)
	assert.Equal(t, "1e+06*m^2", area.String(), "no prefix on a powered leading term")
	reparsed := mustParse(t, aliases, area.String())
	assert.True(t, reparsed.Equal(area), "parse(%q) round-trips", area.String())

	p := unit.NewPrefixed(1000, unit.NewComposition(map[unit.Fundamental]int{unit.Length: 2}))
	u := unit.FromPrefixed(p)
	assert.Equal(t, "1000*m^2", u.String())
	reparsed = mustParse(t, aliases, u.String())
	assert.True(t, reparsed.Equal(u), "parse(%q) round-trips", u.String())
}

func TestUnitRenderParseRoundTripAfterArithmetic(t *testing.T) {
	aliases := unit.NewDefaultAliases()

	hour := mustParse(t, aliases, "h")
	km := mustParse(t, aliases, "km")
	speed := km.Div(hour) // scale 1000/3600, no exact prefix

	rendered := speed.String()
	reparsed := mustParse(t, aliases, rendered)
	assert.True(t, reparsed.Equal(speed), "parse(%q) round-trips", rendered)
}

func TestUnitDimensionlessScale(t *testing.T) {
	aliases := unit.NewDefaultAliases()
	u := mustParse(t, aliases, "1000")

	assert.True(t, u.IsDimensionless())
	assert.Equal(t, "1000", u.String())
}

func TestUnitParseDefaultRegistry(t *testing.T) {
	u, err := unit.Parse("Pa")
	require.NoError(t, err)
	assert.True(t, u.Composition().Equal(unit.NewComposition(map[unit.Fundamental]int{
		unit.Mass: 1, unit.Length: -1, unit.Time: -2,
	})))
}
