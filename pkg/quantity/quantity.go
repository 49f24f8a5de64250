// Package quantity pairs a numeric magnitude with a unit and keeps the two
// consistent through arithmetic: adding quantities with incompatible units
// is an error at composition time, multiplying them combines the units.
package quantity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unitsmith/unitsmith/pkg/unit"
)

// Quantity is an immutable value-with-unit pairing.
type Quantity struct {
	value float64
	unit  *unit.Unit
}

// New builds a quantity from a magnitude and a unit.
func New(value float64, u *unit.Unit) Quantity {
	if u == nil {
		u = unit.FromComposition(unit.Composition{})
	}
	return Quantity{value: value, unit: u}
}

// Parse reads "value formula" text such as "9.81 m/s**2". A bare number is
// dimensionless; text without a leading number is a magnitude-1 unit.
func Parse(text string) (Quantity, error) {
	return ParseWith(text, nil)
}

// ParseWith is Parse against an explicit alias registry.
func ParseWith(text string, aliases *unit.AliasManager) (Quantity, error) {
	trimmed := strings.TrimSpace(text)
	value, rest := splitValue(trimmed)

	u, err := unit.ParseWith(rest, aliases)
	if err != nil {
		return Quantity{}, fmt.Errorf("parsing quantity %q: %w", text, err)
	}
	return Quantity{value: value, unit: u}, nil
}

// splitValue peels a leading float literal off the text. Without one the
// magnitude is 1 and the whole text is the unit formula.
func splitValue(text string) (float64, string) {
	i := 0
	seenDigit := false
	for i < len(text) {
		c := text[i]
		if c >= '0' && c <= '9' {
			seenDigit = true
			i++
			continue
		}
		if c == '.' || (i == 0 && (c == '-' || c == '+')) {
			i++
			continue
		}
		if (c == 'e' || c == 'E') && seenDigit && i+1 < len(text) {
			next := text[i+1]
			if next == '+' || next == '-' || (next >= '0' && next <= '9') {
				i += 2
				continue
			}
		}
		break
	}
	if !seenDigit {
		return 1, text
	}

	v, err := strconv.ParseFloat(text[:i], 64)
	if err != nil {
		return 1, text
	}
	rest := strings.TrimSpace(text[i:])
	if rest == "" {
		rest = "1"
	}
	return v, rest
}

// Value returns the magnitude.
func (q Quantity) Value() float64 { return q.value }

// Unit returns the unit.
func (q Quantity) Unit() *unit.Unit { return q.unit }

// Add sums two quantities. The units must be fully equal (composition and
// scale); same-dimension-different-prefix operands are rejected rather than
// silently converted.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if !q.unit.Equal(o.unit) {
		return Quantity{}, &IncompatibleUnitsError{Op: "add", A: q.unit, B: o.unit}
	}
	return Quantity{value: q.value + o.value, unit: q.unit}, nil
}

// Sub subtracts o, under the same compatibility rule as Add.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if !q.unit.Equal(o.unit) {
		return Quantity{}, &IncompatibleUnitsError{Op: "subtract", A: q.unit, B: o.unit}
	}
	return Quantity{value: q.value - o.value, unit: q.unit}, nil
}

// Neg flips the magnitude sign.
func (q Quantity) Neg() Quantity {
	return Quantity{value: -q.value, unit: q.unit}
}

// Mul multiplies magnitudes and combines units.
func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{value: q.value * o.value, unit: q.unit.Mul(o.unit)}
}

// Div divides magnitudes and units. Division by a zero magnitude is an
// error.
func (q Quantity) Div(o Quantity) (Quantity, error) {
	if o.value == 0 {
		return Quantity{}, &DivisionByZeroError{Divisor: o}
	}
	return Quantity{value: q.value / o.value, unit: q.unit.Div(o.unit)}, nil
}

// Pow raises the quantity to an integer power.
func (q Quantity) Pow(n int) (Quantity, error) {
	u, err := q.unit.Pow(n)
	if err != nil {
		return Quantity{}, err
	}
	v := 1.0
	for i := 0; i < abs(n); i++ {
		v *= q.value
	}
	if n < 0 {
		v = 1 / v
	}
	return Quantity{value: v, unit: u}, nil
}

// Equal reports equal magnitude and equal unit.
func (q Quantity) Equal(o Quantity) bool {
	return q.value == o.value && q.unit.Equal(o.unit)
}

// SameDimension reports dimensional compatibility of the two quantities.
func (q Quantity) SameDimension(o Quantity) bool {
	return q.unit.SameDimension(o.unit)
}

// IsDimensionless reports whether the quantity carries no dimension.
func (q Quantity) IsDimensionless() bool {
	return q.unit.IsDimensionless()
}

func (q Quantity) String() string {
	u := q.unit.String()
	if u == "1" {
		return formatValue(q.value)
	}
	return formatValue(q.value) + " " + u
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// IncompatibleUnitsError reports an additive operation over units that are
// not equal.
type IncompatibleUnitsError struct {
	Op string
	A  *unit.Unit
	B  *unit.Unit
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("cannot %s incompatible units: %s vs %s", e.Op, e.A, e.B)
}

// DivisionByZeroError reports division by a zero-magnitude quantity.
type DivisionByZeroError struct {
	Divisor Quantity
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero quantity %s", e.Divisor)
}
