package lib

import (
	"fmt"
)

// TokenizerError reports a character the tokenizer does not recognize.
// Pos is the rune offset into the input.
type TokenizerError struct {
	Pos  int
	Char rune
}

func (e *TokenizerError) Error() string {
	return fmt.Sprintf("Unexpected character %q at position %d", e.Char, e.Pos)
}

// LexerError reports a structurally invalid token sequence. Pos is the index
// of the offending token, or the token count when the failure is only
// detectable at end of stream (unbalanced parens).
type LexerError struct {
	Pos int
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("Unexpected token at %d", e.Pos)
}

// ParseNumberError reports a number run that does not parse as a decimal
// float, like "8.8.10".
type ParseNumberError struct {
	Text string
	Err  error
}

func (e *ParseNumberError) Error() string {
	return fmt.Sprintf("Cannot parse number '%s'", e.Text)
}

func (e *ParseNumberError) Unwrap() error {
	return e.Err
}

// ParseOperatorError reports an operator run outside the known set, like
// "++//".
type ParseOperatorError struct {
	Text string
}

func (e *ParseOperatorError) Error() string {
	return fmt.Sprintf("Unknown operator '%s'", e.Text)
}

// EvalError reports a postfix sequence that cannot be reduced to a single
// value.
type EvalError struct {
	Reason string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("Cannot evaluate expression: %s", e.Reason)
}
