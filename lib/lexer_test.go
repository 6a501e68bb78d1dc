package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func getLexems(t *testing.T, expr string) ([]lexem, error) {
	t.Helper()
	tokens, err := tokenize(expr)
	require.NoError(t, err)
	return lexParse(tokens)
}

func requireLexems(t *testing.T, expr string, expected []lexem) {
	t.Helper()
	lexems, err := getLexems(t, expr)
	require.NoError(t, err)
	require.Equal(t, expected, lexems)
}

func TestLexBasic(t *testing.T) {
	requireLexems(t, "12+13**10", []lexem{
		numberLexem(12),
		operatorLexem(OperatorAdd),
		numberLexem(13),
		operatorLexem(OperatorPow),
		numberLexem(10),
	})
}

func TestLexLeadingMinus(t *testing.T) {
	requireLexems(t, "-5*(-10)", []lexem{
		numberLexem(-5),
		operatorLexem(OperatorMul),
		lparenLexem(),
		numberLexem(-10),
		rparenLexem(),
	})
}

func TestLexLeadingPlus(t *testing.T) {
	requireLexems(t, "+5*(+10)", []lexem{
		numberLexem(5),
		operatorLexem(OperatorMul),
		lparenLexem(),
		numberLexem(10),
		rparenLexem(),
	})
}

func TestLexLeadingMinusBeforeParen(t *testing.T) {
	// The sign becomes a multiplication by -1.
	requireLexems(t, "-(-1)", []lexem{
		numberLexem(-1),
		operatorLexem(OperatorMul),
		lparenLexem(),
		numberLexem(-1),
		rparenLexem(),
	})
}

func TestLexFloats(t *testing.T) {
	requireLexems(t, "12.34+(-56.78)", []lexem{
		numberLexem(12.34),
		operatorLexem(OperatorAdd),
		lparenLexem(),
		numberLexem(-56.78),
		rparenLexem(),
	})
}

func TestLexPow(t *testing.T) {
	requireLexems(t, "2**3", []lexem{
		numberLexem(2),
		operatorLexem(OperatorPow),
		numberLexem(3),
	})
}

func TestLexWhitespaceAbsorption(t *testing.T) {
	compact, err := getLexems(t, "1+2")
	require.NoError(t, err)
	spaced, err := getLexems(t, " 1 + 2 ")
	require.NoError(t, err)
	require.Equal(t, compact, spaced)

	compact, err = getLexems(t, "2*(100+50)")
	require.NoError(t, err)
	spaced, err = getLexems(t, "2 * ( 100 + 50 )")
	require.NoError(t, err)
	require.Equal(t, compact, spaced)
}

func TestLexErrors(t *testing.T) {
	malformed := []string{
		"",
		"2+",
		"2+(",
		"11 22",
		"5+)",
		"8/()",
		"8/(2))",
		"8.8.10",
		"*2",
		"- 5",
		"(2)(3)",
	}

	for _, expr := range malformed {
		_, err := getLexems(t, expr)
		require.Error(t, err, "expression %q", expr)
	}
}

func TestLexErrorPositions(t *testing.T) {
	// Token index of the failure, not character offset.
	_, err := getLexems(t, "2+")
	var lexErr *LexerError
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, 2, lexErr.Pos)

	// An unclosed paren fails when the end token arrives.
	_, err = getLexems(t, "2+(")
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, 3, lexErr.Pos)

	// An extra close paren is only caught by the depth check at end of
	// stream, so the position is the token count.
	tokens, tokErr := tokenize("8/(2))")
	require.NoError(t, tokErr)
	_, err = lexParse(tokens)
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, len(tokens), lexErr.Pos)
}

func TestLexBadNumber(t *testing.T) {
	_, err := getLexems(t, "8.8.10")
	var numErr *ParseNumberError
	require.ErrorAs(t, err, &numErr)
	require.Equal(t, "8.8.10", numErr.Text)
	require.Error(t, numErr.Unwrap())
}

func TestLexBadOperator(t *testing.T) {
	_, err := getLexems(t, "2++3")
	var opErr *ParseOperatorError
	require.ErrorAs(t, err, &opErr)
	require.Equal(t, "++", opErr.Text)

	_, err = getLexems(t, "2+3**4/5*6++//")
	require.ErrorAs(t, err, &opErr)
	require.Equal(t, "++//", opErr.Text)
}
