package lexer

import (
	"newt/internal/token"
	"unicode"
	"unicode/utf8"
)

type Lexer struct {
	input        string
	position     int  // current byte position in input (points to start of current rune)
	readPosition int  // next byte position in input (start of next rune)
	ch           rune // current rune under examination; 0 means EOF
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	var tok token.Token
	switch l.ch {
	case '+':
		tok = newToken(token.PLUS, l.ch, l.position)
	case '-':
		tok = newToken(token.MINUS, l.ch, l.position)
	case '*':
		tok = l.handleCompoundToken(token.ASTERISK, '*', token.POWER)
	case '/':
		tok = newToken(token.SLASH, l.ch, l.position)
	case '%':
		tok = newToken(token.PERCENT, l.ch, l.position)
	case '(':
		tok = newToken(token.LPAREN, l.ch, l.position)
	case ')':
		tok = newToken(token.RPAREN, l.ch, l.position)
	case '{':
		tok = newToken(token.LBRACE, l.ch, l.position)
	case '}':
		tok = newToken(token.RBRACE, l.ch, l.position)
	case '"':
		startPosition := l.position
		str, ok := l.readString()
		if !ok {
			return token.Token{Type: token.ILLEGAL, Literal: str, Position: startPosition}
		}
		return token.Token{Type: token.STRING, Literal: str, Position: startPosition}
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
		tok.Position = l.position
	default:
		if isDigit(l.ch) {
			return l.readNumber()
		}
		tok = newToken(token.ILLEGAL, l.ch, l.position)
	}

	l.readChar()
	return tok
}

func (l *Lexer) handleCompoundToken(
	t token.TokenType,
	ch1 rune,
	t1 token.TokenType,
) token.Token {
	startPosition := l.position
	if l.peekChar() == ch1 {
		first := l.ch
		l.readChar()
		literal := string(first) + string(l.ch)
		return token.Token{Type: t1, Literal: literal, Position: startPosition}
	}
	return newToken(t, l.ch, startPosition)
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// readChar advances by one UTF-8 rune, updating byte positions
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
}

// peekChar returns the next rune without advancing; returns 0 at EOF
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// readNumber scans a numeric literal: an integer part, an optional fraction
// and exponent, or a trailing 'n' marking a BigInt literal (integer digits
// only).
func (l *Lexer) readNumber() token.Token {
	startPosition := l.position
	numStr := ""
	for isDigit(l.ch) {
		numStr += string(l.ch)
		l.readChar()
	}

	if l.ch == 'n' {
		l.readChar()
		return token.Token{Type: token.BIGINT, Literal: numStr, Position: startPosition}
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		numStr += string(l.ch)
		l.readChar()
		for isDigit(l.ch) {
			numStr += string(l.ch)
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		numStr += string(l.ch)
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			numStr += string(l.ch)
			l.readChar()
		}
		for isDigit(l.ch) {
			numStr += string(l.ch)
			l.readChar()
		}
	}
	return token.Token{Type: token.NUMBER, Literal: numStr, Position: startPosition}
}

// readString scans a double-quoted string with basic escapes; the opening
// quote is the current rune.
func (l *Lexer) readString() (string, bool) {
	out := ""
	for {
		l.readChar()
		switch l.ch {
		case '"':
			l.readChar()
			return out, true
		case 0:
			return out, false
		case '\\':
			l.readChar()
			switch l.ch {
			case 'n':
				out += "\n"
			case 't':
				out += "\t"
			case '"':
				out += "\""
			case '\\':
				out += "\\"
			case 0:
				return out, false
			default:
				out += string(l.ch)
			}
		default:
			out += string(l.ch)
		}
	}
}

func isDigit(ch rune) bool {
	return unicode.IsDigit(ch)
}

func newToken(tokenType token.TokenType, ch rune, position int) token.Token {
	return token.Token{Type: tokenType, Literal: string(ch), Position: position}
}
