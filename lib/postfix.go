package lib

// postfixRepr converts a well-formed infix lexem sequence to postfix
// (Reverse Polish) order using the shunting-yard algorithm. It cannot fail:
// structural validation already happened in the lexer.
//
// An incoming operator first pops every stacked operator of equal or higher
// priority, so all operators associate left to right.
func postfixRepr(infix []lexem) []lexem {
	postfix := []lexem{}
	stack := []lexem{}

	for _, lx := range infix {
		switch lx.lexType {
		case lexemTypeNumber:
			postfix = append(postfix, lx)
		case lexemTypeOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.lexType != lexemTypeOperator || top.op.priority() < lx.op.priority() {
					break
				}
				postfix = append(postfix, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, lx)
		case lexemTypeLParen:
			stack = append(stack, lx)
		case lexemTypeRParen:
			// Pop back to the matching open paren; the marker itself is
			// discarded.
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.lexType == lexemTypeLParen {
					break
				}
				postfix = append(postfix, top)
			}
		}
	}

	for len(stack) > 0 {
		postfix = append(postfix, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}

	return postfix
}
