package calculator

import (
	"errors"
	"math"
	"strconv"
)

// Eval evaluates the expression. Division by zero and functions outside
// their domains are not errors here; they give infinities, NaN, or whatever
// the function computes, and Classify judges them. The error, if any, is a
// *StackError, *EmptyResultError, or *TokenError.
//
// If the expression leaves more than one value, the last one is the result.
func (e *Expr) Eval() (float64, error) {
	stack := make([]float64, 0, len(e.rpn))
	for _, tok := range e.rpn {
		switch tok.kind {
		case tokenNum:
			v, err := num(tok.text)
			if err != nil {
				return 0, &TokenError{Col: tok.pos, Text: tok.text}
			}
			stack = append(stack, v)
		case tokenOp:
			if len(stack) < 2 {
				return 0, &StackError{Col: tok.pos, Op: tok.text, Want: 2, Have: len(stack)}
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = binary(tok.text, a, b)
		case tokenFunc:
			if len(stack) < 1 {
				return 0, &StackError{Col: tok.pos, Op: tok.text, Want: 1, Have: 0}
			}
			a := &stack[len(stack)-1]
			*a = globalfuncs[tok.text](*a)
		case tokenOpen, tokenClose:
			// Left over from unbalanced parentheses.
		default:
			return 0, &TokenError{Col: tok.pos, Text: tok.text}
		}
	}
	if len(stack) == 0 {
		return 0, &EmptyResultError{Col: len(e.src)}
	}
	return stack[len(stack)-1], nil
}

// num parses a numeric literal. Literals too large for float64 are infinite.
func num(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return v, nil
}

// binary applies a binary operator.
func binary(op string, a, b float64) float64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "×":
		return a * b
	case "÷":
		return a / b
	case "%":
		return math.Mod(a, b)
	case "^":
		return math.Pow(a, b)
	default:
		panic("calculator: invalid operator " + strconv.Quote(op))
	}
}

// Evaluate is a shortcut to parse and evaluate an expression.
func Evaluate(src string) (float64, error) {
	return Parse(src).Eval()
}

// ErrorText is what Display shows for an expression that cannot be evaluated.
const ErrorText = "Error"

// Display evaluates an expression and produces the text a calculator screen
// shows for it: ErrorText if evaluation fails, the message from Classify if
// the result is mathematically undefined, and otherwise the formatted result.
func Display(src string) string {
	r, err := Evaluate(src)
	if err != nil {
		return ErrorText
	}
	if err := Classify(src, r); err != nil {
		return err.Error()
	}
	return Format(r)
}
