package unit

import (
	"fmt"
	"strings"
)

// Composition is the exponent vector of a derived unit: a sparse map from
// fundamental dimension to a non-zero integer exponent. The empty composition
// is dimensionless. Compositions are value types; operations return new maps
// and never mutate their operands.
type Composition map[Fundamental]int

// NewComposition builds a composition from an exponent map, dropping
// zero-exponent entries.
func NewComposition(exponents map[Fundamental]int) Composition {
	c := make(Composition, len(exponents))
	for f, e := range exponents {
		if e != 0 && f != Dimensionless {
			c[f] = e
		}
	}
	return c
}

// Base returns the composition of a single fundamental dimension.
func Base(f Fundamental) Composition {
	if f == Dimensionless {
		return Composition{}
	}
	return Composition{f: 1}
}

// Exponent returns the exponent of f, 0 when absent.
func (c Composition) Exponent(f Fundamental) int {
	return c[f]
}

// IsDimensionless reports whether the composition has no non-zero exponents.
func (c Composition) IsDimensionless() bool {
	return len(c) == 0
}

// Mul adds exponents dimension-wise.
func (c Composition) Mul(o Composition) Composition {
	out := make(Composition, len(c)+len(o))
	for f, e := range c {
		out[f] = e
	}
	for f, e := range o {
		if n := out[f] + e; n != 0 {
			out[f] = n
		} else {
			delete(out, f)
		}
	}
	return out
}

// Div subtracts exponents dimension-wise.
func (c Composition) Div(o Composition) Composition {
	out := make(Composition, len(c)+len(o))
	for f, e := range c {
		out[f] = e
	}
	for f, e := range o {
		if n := out[f] - e; n != 0 {
			out[f] = n
		} else {
			delete(out, f)
		}
	}
	return out
}

// Pow scales every exponent by n. Pow(0) is the dimensionless composition.
// Returns an InvalidExponentError when a scaled exponent overflows.
func (c Composition) Pow(n int) (Composition, error) {
	if n == 0 {
		return Composition{}, nil
	}
	out := make(Composition, len(c))
	for f, e := range c {
		scaled := e * n
		if scaled/n != e {
			return nil, &InvalidExponentError{
				Message: fmt.Sprintf("exponent %d^%d overflows", e, n),
			}
		}
		out[f] = scaled
	}
	return out, nil
}

// Equal reports structural equality of the normalized exponent maps.
func (c Composition) Equal(o Composition) bool {
	if len(c) != len(o) {
		return false
	}
	for f, e := range c {
		if o[f] != e {
			return false
		}
	}
	return true
}

// String renders the canonical form: positive-exponent terms in display
// order joined by "*", then the negated negative-exponent terms after a
// single "/". An exponent of 1 is omitted; other exponents render as
// "sym^n". A denominator with more than one term is parenthesized so the
// rendering re-parses to the same composition. The empty composition
// renders as "1".
func (c Composition) String() string {
	var num, den []string
	for _, f := range Fundamentals() {
		e := c[f]
		switch {
		case e > 0:
			num = append(num, expTerm(f, e))
		case e < 0:
			den = append(den, expTerm(f, -e))
		}
	}

	numStr := "1"
	if len(num) > 0 {
		numStr = strings.Join(num, "*")
	}
	switch len(den) {
	case 0:
		return numStr
	case 1:
		return numStr + "/" + den[0]
	default:
		return numStr + "/(" + strings.Join(den, "*") + ")"
	}
}

// leadingExponent returns the exponent of the first positive-exponent term in
// display order, 0 when the composition has no numerator terms.
func (c Composition) leadingExponent() int {
	for _, f := range Fundamentals() {
		if e := c[f]; e > 0 {
			return e
		}
	}
	return 0
}

func expTerm(f Fundamental, e int) string {
	if e == 1 {
		return f.Symbol()
	}
	return fmt.Sprintf("%s^%d", f.Symbol(), e)
}
