// Package unit implements dimensional analysis over the SI base quantities.
//
// A unit is described by a composition (an exponent for each fundamental
// dimension) and a decimal scale. Units combine through multiplication,
// division, and integer exponentiation, and can be parsed from textual
// formulas:
//
//	u, err := unit.Parse("kg*m/s**2")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(u) // kg*m/s^2
//
// Formulas may also register aliases ("N = kg*m/s**2"), resolved against an
// AliasManager. Parse uses the package-level DefaultAliases registry, which
// comes pre-loaded with the common SI derived units; ParseWith accepts an
// explicit registry for callers that need isolated namespaces.
//
// # Grammar
//
//	formula := [ alias "=" ] expr
//	expr    := term ( ("*" | "/") term )*
//	term    := factor ( ("**" | "^") integer )?
//	factor  := "(" expr ")" | symbol | number
//	symbol  := [ prefix ] base_symbol
//
// Whitespace between tokens is insignificant. A bare number is a
// dimensionless coefficient folded into the scale.
package unit
