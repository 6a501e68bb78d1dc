package lib

import (
	"strconv"
)

type lexerState int

const (
	lexerStateInitial lexerState = iota
	lexerStateLeadingSign
	lexerStateNumber
	lexerStateOperator
	lexerStateParOpen
	lexerStateParClose
	lexerStateEnd
)

// lexParse turns a token stream into a flat lexem sequence. It resolves
// leading signs onto numbers, classifies operator runs, drops whitespace
// where it is legal and rejects everything the grammar does not allow:
// dangling operators, misplaced or unbalanced parens, two numbers in a row.
//
// Number and operator runs are held as pending text and only emitted once
// the token that terminates them arrives, which is also when they are parsed
// and can fail.
func lexParse(tokens []token) ([]lexem, error) {
	l := &lexer{lexems: []lexem{}, state: lexerStateInitial}

	for pos, tok := range tokens {
		if err := l.next(pos, tok); err != nil {
			return nil, err
		}
	}

	// A valid stream lands in the end state via the end token with every
	// paren closed.
	if l.state != lexerStateEnd || l.depth != 0 {
		return nil, &LexerError{Pos: len(tokens)}
	}
	return l.lexems, nil
}

type lexer struct {
	lexems  []lexem
	state   lexerState
	sign    float64
	pending []rune
	depth   int
}

func (l *lexer) next(pos int, tok token) error {
	switch l.state {
	case lexerStateInitial:
		return l.nextInitial(pos, tok)
	case lexerStateLeadingSign:
		return l.nextLeadingSign(pos, tok)
	case lexerStateNumber:
		return l.nextNumber(pos, tok)
	case lexerStateOperator:
		return l.nextOperator(pos, tok)
	case lexerStateParOpen:
		return l.nextParOpen(pos, tok)
	case lexerStateParClose:
		return l.nextParClose(pos, tok)
	default:
		// Nothing may follow the end token.
		return &LexerError{Pos: pos}
	}
}

func (l *lexer) nextInitial(pos int, tok token) error {
	switch tok.tokType {
	case tokenTypeWhitespace:
		return nil
	case tokenTypeNumber:
		l.startNumber(tok, 1)
		return nil
	case tokenTypeOperator:
		if sign, ok := leadingSign(tok); ok {
			l.state = lexerStateLeadingSign
			l.sign = sign
			return nil
		}
	case tokenTypeLParen:
		l.state = lexerStateParOpen
		return nil
	}
	return &LexerError{Pos: pos}
}

func (l *lexer) nextLeadingSign(pos int, tok token) error {
	switch tok.tokType {
	case tokenTypeNumber:
		l.startNumber(tok, l.sign)
		return nil
	case tokenTypeLParen:
		// A sign directly before a parenthesis becomes an explicit
		// multiplication: -(...) is (-1)*(...).
		l.lexems = append(l.lexems, numberLexem(l.sign), operatorLexem(OperatorMul))
		l.state = lexerStateParOpen
		return nil
	}
	return &LexerError{Pos: pos}
}

func (l *lexer) nextNumber(pos int, tok token) error {
	if tok.tokType == tokenTypeWhitespace {
		return nil
	}

	value, err := strconv.ParseFloat(string(l.pending), 64)
	if err != nil {
		return &ParseNumberError{Text: string(l.pending), Err: err}
	}
	l.lexems = append(l.lexems, numberLexem(value*l.sign))

	switch tok.tokType {
	case tokenTypeOperator:
		l.startOperator(tok)
		return nil
	case tokenTypeRParen:
		l.state = lexerStateParClose
		return nil
	case tokenTypeEnd:
		l.state = lexerStateEnd
		return nil
	}
	return &LexerError{Pos: pos}
}

func (l *lexer) nextOperator(pos int, tok token) error {
	if tok.tokType == tokenTypeWhitespace {
		return nil
	}

	op, ok := operatorFromText(string(l.pending))
	if !ok {
		return &ParseOperatorError{Text: string(l.pending)}
	}
	l.lexems = append(l.lexems, operatorLexem(op))

	switch tok.tokType {
	case tokenTypeNumber:
		l.startNumber(tok, 1)
		return nil
	case tokenTypeLParen:
		l.state = lexerStateParOpen
		return nil
	}
	return &LexerError{Pos: pos}
}

func (l *lexer) nextParOpen(pos int, tok token) error {
	if tok.tokType == tokenTypeWhitespace {
		return nil
	}

	l.depth++
	l.lexems = append(l.lexems, lparenLexem())

	switch tok.tokType {
	case tokenTypeOperator:
		if sign, ok := leadingSign(tok); ok {
			l.state = lexerStateLeadingSign
			l.sign = sign
			return nil
		}
	case tokenTypeNumber:
		l.startNumber(tok, 1)
		return nil
	case tokenTypeLParen:
		l.state = lexerStateParOpen
		return nil
	}
	return &LexerError{Pos: pos}
}

func (l *lexer) nextParClose(pos int, tok token) error {
	if tok.tokType == tokenTypeWhitespace {
		return nil
	}

	l.depth--
	l.lexems = append(l.lexems, rparenLexem())

	switch tok.tokType {
	case tokenTypeOperator:
		l.startOperator(tok)
		return nil
	case tokenTypeRParen:
		l.state = lexerStateParClose
		return nil
	case tokenTypeEnd:
		l.state = lexerStateEnd
		return nil
	}
	return &LexerError{Pos: pos}
}

func (l *lexer) startNumber(tok token, sign float64) {
	l.state = lexerStateNumber
	l.pending = tok.value
	l.sign = sign
}

func (l *lexer) startOperator(tok token) {
	l.state = lexerStateOperator
	l.pending = tok.value
}

// leadingSign reports whether an operator token can act as a unary sign.
func leadingSign(tok token) (float64, bool) {
	switch tok.text() {
	case "+":
		return 1, true
	case "-":
		return -1, true
	}
	return 0, false
}
