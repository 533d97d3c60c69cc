package calculator

import (
	"strings"
)

// Expr is an expression converted to postfix order, ready to evaluate.
type Expr struct {
	// src is the original expression text.
	src string
	// rpn is the postfix token sequence.
	rpn []lexToken
}

// Parse tokenizes an expression and converts it to postfix order using the
// shunting-yard algorithm. Parsing never fails; malformed expressions are
// reported when they are evaluated.
//
// Operators of equal precedence associate left, and that includes
// exponentiation: "2^3^2" is (2^3)^2.
func Parse(src string) *Expr {
	return &Expr{src: src, rpn: postfix(tokenize(src))}
}

// postfix reorders tokens from infix to postfix order. Unmatched closing
// parentheses are ignored. Unmatched opening parentheses are passed through
// to the output, where the evaluator skips them.
func postfix(toks []lexToken) []lexToken {
	out := make([]lexToken, 0, len(toks))
	var stack []lexToken
	pop := func() lexToken {
		tok := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return tok
	}
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum, tokenUnknown:
			out = append(out, tok)
		case tokenFunc, tokenOpen:
			stack = append(stack, tok)
		case tokenOp:
			p := precedence(tok)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind == tokenOpen || precedence(top) < p {
					break
				}
				out = append(out, pop())
			}
			stack = append(stack, tok)
		case tokenClose:
			for len(stack) > 0 && stack[len(stack)-1].kind != tokenOpen {
				out = append(out, pop())
			}
			if len(stack) > 0 {
				// Discard the matching open parenthesis.
				pop()
			}
			if len(stack) > 0 && stack[len(stack)-1].kind == tokenFunc {
				// The function applies to the group just closed.
				out = append(out, pop())
			}
		default:
			panic("calculator: unknown token: " + tok.String())
		}
	}
	for len(stack) > 0 {
		out = append(out, pop())
	}
	return out
}

// precedence gets the binding class of an operator or function token. Higher
// is more binding.
func precedence(tok lexToken) int8 {
	if tok.kind == tokenFunc {
		return funcprec
	}
	switch tok.text {
	case "+", "-":
		return 1
	case "×", "÷", "%":
		return 2
	case "^":
		return 3
	default:
		panic("calculator: no precedence for " + tok.String())
	}
}

// funcprec is the precedence of every unary function and the factorial.
const funcprec = 4

// String creates a string representation of the parsed expression as its
// postfix tokens separated by spaces.
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.rpn {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.text)
	}
	return b.String()
}

// Tokens returns the postfix token texts of the expression.
func (e *Expr) Tokens() []string {
	r := make([]string, len(e.rpn))
	for i, tok := range e.rpn {
		r[i] = tok.text
	}
	return r
}

// Source returns the text the expression was parsed from.
func (e *Expr) Source() string {
	return e.src
}
