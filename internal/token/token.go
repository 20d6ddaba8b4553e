package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Literals
	NUMBER = "NUMBER" // 1343456, 13.5, 2e10
	BIGINT = "BIGINT" // 1343456n
	STRING = "STRING" // "foobar"

	// Operators
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	PERCENT  = "%"
	POWER    = "**"

	// Delimiters
	LPAREN = "("
	RPAREN = ")"
	LBRACE = "{"
	RBRACE = "}"
)

type Token struct {
	Type     TokenType
	Literal  string
	Position int // the src index of the token
}
