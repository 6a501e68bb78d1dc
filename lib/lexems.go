package lib

type operatorType int

const (
	OperatorAdd operatorType = iota
	OperatorSub
	OperatorMul
	OperatorDiv
	OperatorPow
)

// priority ranks how tightly an operator binds. Higher pops first during
// postfix conversion, and equal priority pops too, which makes every
// operator left-associative (including pow).
func (op operatorType) priority() int {
	switch op {
	case OperatorAdd:
		return 0
	case OperatorSub:
		return 0
	case OperatorMul:
		return 1
	case OperatorDiv:
		return 1
	case OperatorPow:
		return 2
	default:
		return 0
	}
}

// operatorFromText matches a raw operator run against the closed operator
// set. Runs like "++//" come out of the tokenizer as one token and are
// rejected here.
func operatorFromText(text string) (operatorType, bool) {
	switch text {
	case "+":
		return OperatorAdd, true
	case "-":
		return OperatorSub, true
	case "*":
		return OperatorMul, true
	case "/":
		return OperatorDiv, true
	case "**":
		return OperatorPow, true
	}
	return 0, false
}

type lexemType int

const (
	lexemTypeNumber lexemType = iota
	lexemTypeOperator
	lexemTypeLParen
	lexemTypeRParen
)

// A lexem is a validated unit of meaning. The same type carries both the
// infix stream produced by the lexer and the postfix stream produced by the
// converter.
type lexem struct {
	lexType lexemType
	number  float64
	op      operatorType
}

func numberLexem(value float64) lexem {
	return lexem{lexType: lexemTypeNumber, number: value}
}

func operatorLexem(op operatorType) lexem {
	return lexem{lexType: lexemTypeOperator, op: op}
}

func lparenLexem() lexem {
	return lexem{lexType: lexemTypeLParen}
}

func rparenLexem() lexem {
	return lexem{lexType: lexemTypeRParen}
}
