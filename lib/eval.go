package lib

import (
	"math"
)

// Eval evaluates an arithmetic expression: numbers, + - * / **, parentheses
// and unary sign. It is the library's single entry point; every call is
// independent and the first stage failure short-circuits the pipeline.
func Eval(expr string) (float64, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return 0, err
	}

	lexems, err := lexParse(tokens)
	if err != nil {
		return 0, err
	}

	return evalPostfix(postfixRepr(lexems))
}

// evalPostfix reduces a postfix sequence with an operand stack. Operands
// keep their left-to-right order: for "a op b", b is popped first.
//
// The final result is the top of the stack. Leftover operands below it are
// not rejected; they cannot arise from postfixRepr's own output.
func evalPostfix(postfix []lexem) (float64, error) {
	stack := []float64{}

	for _, lx := range postfix {
		switch lx.lexType {
		case lexemTypeNumber:
			stack = append(stack, lx.number)
		case lexemTypeOperator:
			if len(stack) < 2 {
				return 0, &EvalError{Reason: "operator is missing an operand"}
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = append(stack[:len(stack)-2], applyOperator(lx.op, a, b))
		default:
			return 0, &EvalError{Reason: "parenthesis in postfix sequence"}
		}
	}

	if len(stack) == 0 {
		return 0, &EvalError{Reason: "no value left on the stack"}
	}
	return stack[len(stack)-1], nil
}

func applyOperator(op operatorType, a float64, b float64) float64 {
	switch op {
	case OperatorAdd:
		return a + b
	case OperatorSub:
		return a - b
	case OperatorMul:
		return a * b
	case OperatorDiv:
		// No zero check: IEEE division gives Inf/NaN.
		return a / b
	case OperatorPow:
		return math.Pow(a, b)
	default:
		return 0
	}
}
