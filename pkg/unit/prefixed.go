package unit

import "math"

// ScaleTolerance is the relative tolerance used when comparing scales.
// Scale arithmetic multiplies and divides powers of ten, so exact decimal
// scales stay well inside it; it only absorbs float rounding accumulated by
// chains of operations.
const ScaleTolerance = 1e-9

// Prefixed couples a composition with a strictly positive multiplicative
// scale. A scale of 1 means "no prefix". Prefixed values are immutable;
// arithmetic returns new values.
type Prefixed struct {
	Comp  Composition
	Scale float64
}

// One is the dimensionless prefixed unit with scale 1.
func One() Prefixed {
	return Prefixed{Comp: Composition{}, Scale: 1}
}

// NewPrefixed builds a prefixed unit. The scale must be strictly positive;
// parser and registry inputs are validated before reaching here.
func NewPrefixed(scale float64, comp Composition) Prefixed {
	return Prefixed{Comp: comp, Scale: scale}
}

// Mul combines compositions and multiplies scales.
func (p Prefixed) Mul(o Prefixed) Prefixed {
	return Prefixed{Comp: p.Comp.Mul(o.Comp), Scale: p.Scale * o.Scale}
}

// Div combines compositions and divides scales.
func (p Prefixed) Div(o Prefixed) Prefixed {
	return Prefixed{Comp: p.Comp.Div(o.Comp), Scale: p.Scale / o.Scale}
}

// Pow raises the composition and the scale to the n-th power.
func (p Prefixed) Pow(n int) (Prefixed, error) {
	comp, err := p.Comp.Pow(n)
	if err != nil {
		return Prefixed{}, err
	}
	return Prefixed{Comp: comp, Scale: math.Pow(p.Scale, float64(n))}, nil
}

// Equal reports composition equality and scale equality within
// ScaleTolerance. Units that differ only in prefix are not equal; use
// SameDimension for dimensional compatibility.
func (p Prefixed) Equal(o Prefixed) bool {
	return p.Comp.Equal(o.Comp) && scaleEqual(p.Scale, o.Scale)
}

// SameDimension reports whether both units share a composition, ignoring
// scale.
func (p Prefixed) SameDimension(o Prefixed) bool {
	return p.Comp.Equal(o.Comp)
}

// BestPrefix selects the display prefix for the current scale. When a
// supported prefix divides the scale to exactly 1 (within ScaleTolerance)
// its symbol is returned with residual 1; otherwise no prefix is chosen and
// the residual is the full scale, to be rendered as an explicit coefficient.
func (p Prefixed) BestPrefix() (string, float64) {
	if scaleEqual(p.Scale, 1) {
		return "", 1
	}
	for _, pr := range displayPrefixes {
		if scaleEqual(p.Scale/pr.Factor, 1) {
			return pr.Symbol, 1
		}
	}
	return "", p.Scale
}

func scaleEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	return diff <= ScaleTolerance*math.Max(math.Abs(a), math.Abs(b))
}
