package unit

import "fmt"

// LexError reports an illegal character in formula text.
type LexError struct {
	Pos     Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// SyntaxError reports a grammar violation: an unexpected token, a missing
// operand, or an unterminated group.
type SyntaxError struct {
	Pos     Position
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// UnknownSymbolError reports a base symbol that matches neither the
// fundamental table nor a registered alias, after prefix-stripping attempts.
type UnknownSymbolError struct {
	Pos    Position
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown unit symbol %q at line %d, column %d", e.Symbol, e.Pos.Line, e.Pos.Column)
}

// InvalidExponentError reports a non-integer or out-of-range exponent.
type InvalidExponentError struct {
	Pos     Position
	Message string
}

func (e *InvalidExponentError) Error() string {
	return fmt.Sprintf("invalid exponent: %s", e.Message)
}

// UnknownAliasError reports a direct alias lookup miss.
type UnknownAliasError struct {
	Name string
}

func (e *UnknownAliasError) Error() string {
	return fmt.Sprintf("unknown unit alias %q", e.Name)
}

// AliasConflictError reports re-registration of an alias with a different
// definition.
type AliasConflictError struct {
	Name     string
	Existing Prefixed
	Proposed Prefixed
}

func (e *AliasConflictError) Error() string {
	return fmt.Sprintf("alias %q is already registered with a different definition (existing %s scale %s, proposed %s scale %s)",
		e.Name, e.Existing.Comp, formatScale(e.Existing.Scale), e.Proposed.Comp, formatScale(e.Proposed.Scale))
}
