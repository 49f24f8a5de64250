package unit

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser parses a unit formula into a Prefixed value, resolving symbols
// against the fundamental table and an alias registry.
type Parser struct {
	lexer   *Lexer
	token   Token // current token
	peek    Token // lookahead token
	aliases *AliasManager
}

// NewParser creates a parser for the given formula. A nil registry resolves
// against DefaultAliases.
func NewParser(formula string, aliases *AliasManager) *Parser {
	if aliases == nil {
		aliases = DefaultAliases
	}
	p := &Parser{
		lexer:   NewLexer(formula),
		aliases: aliases,
	}
	// Read two tokens to initialize current and peek.
	p.nextToken()
	p.nextToken()
	return p
}

// result carries a successful parse: the resolved prefixed unit, the alias
// name when the input was "alias = expr", and the expression text with any
// alias prefix stripped.
type result struct {
	prefixed Prefixed
	alias    string
	formula  string
}

// parse drives the grammar:
//
//	formula := [ alias "=" ] expr
//
// On an "alias = expr" input the alias is registered before returning;
// registration conflicts surface as AliasConflictError.
func (p *Parser) parse() (result, error) {
	input := p.lexer.input

	alias := ""
	exprStart := 0
	if p.token.Type == IDENT && p.peek.Type == EQ {
		alias = p.token.Literal
		p.nextToken()
		p.nextToken()
		exprStart = p.token.Pos.Offset
	}

	prefixed, err := p.parseExpr()
	if err != nil {
		return result{}, err
	}
	if p.token.Type == ILLEGAL {
		return result{}, &LexError{Pos: p.token.Pos, Message: fmt.Sprintf("illegal character %q", p.token.Literal)}
	}
	if p.token.Type != EOF {
		return result{}, &SyntaxError{Pos: p.token.Pos, Message: fmt.Sprintf("unexpected token %q after formula", p.token.Literal)}
	}

	if alias != "" {
		if err := p.aliases.Register(alias, prefixed); err != nil {
			return result{}, err
		}
	}

	return result{
		prefixed: prefixed,
		alias:    alias,
		formula:  strings.TrimSpace(input[exprStart:]),
	}, nil
}

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.token = p.peek
	p.peek = p.lexer.NextToken()
}

// parseExpr parses: term ( ("*" | "/") term )*. Division is
// left-associative: a/b/c == (a/b)/c.
func (p *Parser) parseExpr() (Prefixed, error) {
	left, err := p.parseTerm()
	if err != nil {
		return Prefixed{}, err
	}

	for p.token.Type == STAR || p.token.Type == SLASH {
		op := p.token.Type
		p.nextToken()

		right, err := p.parseTerm()
		if err != nil {
			return Prefixed{}, err
		}
		if op == STAR {
			left = left.Mul(right)
		} else {
			left = left.Div(right)
		}
	}

	return left, nil
}

// parseTerm parses: factor ( ("**" | "^") integer )?.
func (p *Parser) parseTerm() (Prefixed, error) {
	factor, err := p.parseFactor()
	if err != nil {
		return Prefixed{}, err
	}

	if p.token.Type == POW {
		p.nextToken()
		n, err := p.parseExponent()
		if err != nil {
			return Prefixed{}, err
		}
		return factor.Pow(n)
	}

	return factor, nil
}

// parseFactor parses: "(" expr ")" | symbol | number.
func (p *Parser) parseFactor() (Prefixed, error) {
	switch p.token.Type {
	case LPAREN:
		open := p.token.Pos
		p.nextToken()
		inner, err := p.parseExpr()
		if err != nil {
			return Prefixed{}, err
		}
		if p.token.Type != RPAREN {
			return Prefixed{}, &SyntaxError{Pos: open, Message: "unterminated group"}
		}
		p.nextToken()
		return inner, nil

	case IDENT:
		tok := p.token
		p.nextToken()
		return p.resolveSymbol(tok)

	case NUMBER:
		tok := p.token
		p.nextToken()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return Prefixed{}, &SyntaxError{Pos: tok.Pos, Message: fmt.Sprintf("invalid number literal %q", tok.Literal)}
		}
		if v <= 0 {
			return Prefixed{}, &SyntaxError{Pos: tok.Pos, Message: fmt.Sprintf("coefficient must be positive, got %q", tok.Literal)}
		}
		return NewPrefixed(v, Composition{}), nil

	case ILLEGAL:
		return Prefixed{}, &LexError{Pos: p.token.Pos, Message: fmt.Sprintf("illegal character %q", p.token.Literal)}

	case EOF:
		return Prefixed{}, &SyntaxError{Pos: p.token.Pos, Message: "unexpected end of formula, expected operand"}

	default:
		return Prefixed{}, &SyntaxError{Pos: p.token.Pos, Message: fmt.Sprintf("unexpected token %q, expected unit symbol, number, or group", p.token.Literal)}
	}
}

// parseExponent parses an integer literal with optional sign.
func (p *Parser) parseExponent() (int, error) {
	sign := 1
	if p.token.Type == PLUS || p.token.Type == MINUS {
		if p.token.Type == MINUS {
			sign = -1
		}
		p.nextToken()
	}

	if p.token.Type != NUMBER {
		return 0, &InvalidExponentError{Pos: p.token.Pos, Message: fmt.Sprintf("expected integer exponent, found %q", p.token.Literal)}
	}

	n, err := strconv.Atoi(p.token.Literal)
	if err != nil {
		return 0, &InvalidExponentError{Pos: p.token.Pos, Message: fmt.Sprintf("exponent %q is not a representable integer", p.token.Literal)}
	}
	p.nextToken()

	return sign * n, nil
}

// resolveSymbol resolves an identifier token in order: exact base symbol,
// exact alias, prefix+base, prefix+alias. A prefix is only stripped when the
// remainder resolves on its own.
func (p *Parser) resolveSymbol(tok Token) (Prefixed, error) {
	ident := tok.Literal

	if f, ok := FromSymbol(ident); ok {
		return NewPrefixed(1, Base(f)), nil
	}
	if u, err := p.aliases.Resolve(ident); err == nil {
		return u, nil
	}

	for _, pr := range prefixesLongestFirst {
		rest, ok := strings.CutPrefix(ident, pr.Symbol)
		if !ok || rest == "" {
			continue
		}
		if f, ok := FromSymbol(rest); ok {
			return NewPrefixed(pr.Factor, Base(f)), nil
		}
		if u, err := p.aliases.Resolve(rest); err == nil {
			return NewPrefixed(pr.Factor*u.Scale, u.Comp), nil
		}
	}

	return Prefixed{}, &UnknownSymbolError{Pos: tok.Pos, Symbol: ident}
}
