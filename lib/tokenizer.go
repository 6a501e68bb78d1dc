package lib

import (
	"unicode"
)

type tokenizerState int

const (
	tokenizerStateInitial tokenizerState = iota
	tokenizerStateNumber
	tokenizerStateOperator
	tokenizerStateWhitespace
)

// tokenize splits an expression into coarse tokens. Adjacent characters of
// the same category are grouped into a single run, so "43.5" is one number
// token and "**" (or garbage like "++//") is one operator token. Parentheses
// are always single-character tokens, and the stream always finishes with an
// end marker.
func tokenize(input string) ([]token, error) {
	t := newTokenizer(input)
	return t.scan()
}

type tokenizer struct {
	input  []rune
	tokens []token
	state  tokenizerState
	start  int
}

func newTokenizer(input string) *tokenizer {
	return &tokenizer{
		input:  []rune(input),
		tokens: []token{},
		state:  tokenizerStateInitial,
		start:  0,
	}
}

func (t *tokenizer) scan() ([]token, error) {
	for pos, ch := range t.input {
		switch {
		case isNumberChar(ch):
			t.continueRun(tokenizerStateNumber, pos)
		case unicode.IsSpace(ch):
			t.continueRun(tokenizerStateWhitespace, pos)
		case isOperatorChar(ch):
			t.continueRun(tokenizerStateOperator, pos)
		case ch == '(':
			t.emitParen(tokenTypeLParen, pos)
		case ch == ')':
			t.emitParen(tokenTypeRParen, pos)
		default:
			return nil, &TokenizerError{Pos: pos, Char: ch}
		}
	}

	t.closeRun(len(t.input))
	t.tokens = append(t.tokens, token{tokType: tokenTypeEnd, pos: len(t.input)})
	return t.tokens, nil
}

// continueRun extends the current run if the category matches, otherwise
// closes it and starts a new run at pos.
func (t *tokenizer) continueRun(state tokenizerState, pos int) {
	if t.state == state {
		return
	}
	t.closeRun(pos)
	t.state = state
	t.start = pos
}

func (t *tokenizer) emitParen(tokType tokenType, pos int) {
	t.closeRun(pos)
	t.tokens = append(t.tokens, token{tokType: tokType, pos: pos})
	t.state = tokenizerStateInitial
	t.start = pos + 1
}

func (t *tokenizer) closeRun(end int) {
	if t.state == tokenizerStateInitial || t.start >= end {
		return
	}

	var tokType tokenType
	switch t.state {
	case tokenizerStateNumber:
		tokType = tokenTypeNumber
	case tokenizerStateOperator:
		tokType = tokenTypeOperator
	case tokenizerStateWhitespace:
		tokType = tokenTypeWhitespace
	}

	t.tokens = append(t.tokens, token{
		tokType: tokType,
		value:   t.input[t.start:end],
		pos:     t.start,
	})
}

func isNumberChar(ch rune) bool {
	return isDigit(ch) || ch == '.'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isOperatorChar(ch rune) bool {
	return ch == '+' || ch == '-' || ch == '*' || ch == '/'
}
