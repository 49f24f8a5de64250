package unit

import (
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes unit formula text. It operates on runes so that non-ASCII
// symbols such as "µ" and "Ω" lex as identifiers.
type Lexer struct {
	input   string
	pos     int  // byte offset of current rune
	readPos int  // byte offset after current rune
	ch      rune // current rune under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next rune.
func (l *Lexer) readChar() {
	l.pos = l.readPos
	if l.readPos >= len(l.input) {
		l.ch = 0 // NUL = EOF
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPos:])
		l.ch = r
		l.readPos += w
	}

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next rune without advancing.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

// currentPos returns the current position.
func (l *Lexer) currentPos() Position {
	return Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.currentPos()

	var tok Token
	tok.Pos = pos

	switch l.ch {
	case 0:
		tok.Type = EOF
		tok.Literal = ""
		return tok
	case '*':
		if l.peekChar() == '*' {
			l.readChar()
			tok = Token{Type: POW, Literal: "**", Pos: pos}
		} else {
			tok = Token{Type: STAR, Literal: "*", Pos: pos}
		}
	case '^':
		tok = Token{Type: POW, Literal: "^", Pos: pos}
	case '/':
		tok = Token{Type: SLASH, Literal: "/", Pos: pos}
	case '=':
		tok = Token{Type: EQ, Literal: "=", Pos: pos}
	case '+':
		tok = Token{Type: PLUS, Literal: "+", Pos: pos}
	case '-':
		tok = Token{Type: MINUS, Literal: "-", Pos: pos}
	case '(':
		tok = Token{Type: LPAREN, Literal: "(", Pos: pos}
	case ')':
		tok = Token{Type: RPAREN, Literal: ")", Pos: pos}
	default:
		switch {
		case isSymbolRune(l.ch):
			tok.Literal = l.readIdentifier()
			tok.Type = IDENT
			return tok
		case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())):
			tok.Literal = l.readNumber()
			tok.Type = NUMBER
			return tok
		default:
			tok = Token{Type: ILLEGAL, Literal: string(l.ch), Pos: pos}
		}
	}

	l.readChar()
	return tok
}

// skipWhitespace skips insignificant whitespace between tokens.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier reads a unit symbol or alias: a run of letters.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isSymbolRune(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads a numeric literal (integer, decimal, or scientific).
func (l *Lexer) readNumber() string {
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // skip '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	// Exponent part (1e3, 1.6E-19), only when followed by digits so that a
	// trailing symbol like "2em" is not swallowed.
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) || next == '+' || next == '-' {
			mark := l.pos
			l.readChar() // skip 'e' or 'E'
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			if !isDigit(l.ch) {
				// Not an exponent after all; rewind to the 'e'.
				l.backtrack(mark)
			} else {
				for isDigit(l.ch) {
					l.readChar()
				}
			}
		}
	}

	return l.input[start:l.pos]
}

// backtrack resets the lexer to a previously recorded byte offset on the
// current line.
func (l *Lexer) backtrack(offset int) {
	l.col -= utf8.RuneCountInString(l.input[offset:l.pos]) + 1
	l.readPos = offset
	l.readChar()
}

func isSymbolRune(ch rune) bool {
	return unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all tokens from the input, ending with EOF.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			break
		}
	}
	return tokens
}
