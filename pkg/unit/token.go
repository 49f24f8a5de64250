package unit

// TokenType identifies a lexical token in a unit formula.
type TokenType int

const (
	EOF TokenType = iota
	ILLEGAL

	IDENT  // unit symbol or alias
	NUMBER // 2, 0.5, 1e3

	STAR   // *
	SLASH  // /
	POW    // ** or ^
	EQ     // =
	PLUS   // +
	MINUS  // -
	LPAREN // (
	RPAREN // )
)

var tokenNames = [...]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",
	IDENT:   "IDENT",
	NUMBER:  "NUMBER",
	STAR:    "*",
	SLASH:   "/",
	POW:     "**",
	EQ:      "=",
	PLUS:    "+",
	MINUS:   "-",
	LPAREN:  "(",
	RPAREN:  ")",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return "UNKNOWN"
	}
	return tokenNames[t]
}

// Position locates a token in the input (1-based line and column, 0-based
// byte offset).
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token is a lexical token with its literal text and position.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
