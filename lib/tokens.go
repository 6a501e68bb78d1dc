package lib

type tokenType int

const (
	tokenTypeNumber tokenType = iota
	tokenTypeOperator
	tokenTypeWhitespace
	tokenTypeLParen
	tokenTypeRParen
	tokenTypeEnd
)

// A token is a coarse span of the raw input: a run of number, operator or
// whitespace characters, a single parenthesis, or the end-of-input marker.
// value is a sub-slice of the input runes and is only set for run tokens.
type token struct {
	tokType tokenType
	value   []rune
	pos     int
}

func (t token) text() string {
	return string(t.value)
}
