package strmatch

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by InfixToPostfix.
var (
	// ErrBadToken indicates a character that is not a digit, operator,
	// parenthesis, or space.
	ErrBadToken = errors.New("strmatch: unexpected token in expression")

	// ErrUnbalanced indicates mismatched parentheses.
	ErrUnbalanced = errors.New("strmatch: unbalanced parentheses")
)

// precedence ranks binary operators; '(' sits below everything so it
// never gets popped by an operator comparison.
func precedence(c byte) int {
	switch c {
	case '*', '/':
		return 2
	case '+', '-':
		return 1
	default:
		return 0
	}
}

// InfixToPostfix converts an infix arithmetic expression into postfix
// (Reverse Polish) token order using Dijkstra's shunting yard.
//
// Supported input: multi-digit non-negative integers, the left-
// associative binary operators + - * /, parentheses, and spaces (which
// are skipped). Unary minus is not supported.
//
// Operands go straight to the output; operators wait on a stack until
// no operator of equal or higher precedence is pending, which is what
// forces higher-precedence operations to appear first in the postfix
// form.
func InfixToPostfix(expr string) ([]string, error) {
	var output []string
	var operators []byte // stack, top at the end

	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case c == ' ':
			continue

		case c >= '0' && c <= '9':
			// Greedily consume the whole number.
			start := i
			for i+1 < len(expr) && expr[i+1] >= '0' && expr[i+1] <= '9' {
				i++
			}
			output = append(output, expr[start:i+1])

		case c == '(':
			operators = append(operators, c)

		case c == ')':
			// Pop until the matching open bracket.
			for len(operators) > 0 && operators[len(operators)-1] != '(' {
				output = append(output, string(operators[len(operators)-1]))
				operators = operators[:len(operators)-1]
			}
			if len(operators) == 0 {
				return nil, fmt.Errorf("%w: ')' at offset %d", ErrUnbalanced, i)
			}
			operators = operators[:len(operators)-1] // discard '('

		case c == '+' || c == '-' || c == '*' || c == '/':
			// Left associativity: equal precedence pops too.
			for len(operators) > 0 && precedence(operators[len(operators)-1]) >= precedence(c) {
				output = append(output, string(operators[len(operators)-1]))
				operators = operators[:len(operators)-1]
			}
			operators = append(operators, c)

		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrBadToken, c, i)
		}
	}

	// Flush whatever operators remain.
	for len(operators) > 0 {
		top := operators[len(operators)-1]
		if top == '(' {
			return nil, fmt.Errorf("%w: unclosed '('", ErrUnbalanced)
		}
		output = append(output, string(top))
		operators = operators[:len(operators)-1]
	}

	return output, nil
}
