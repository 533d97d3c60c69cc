package calculator

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	// pos is the byte offset of the token in the source. The implicit zero
	// inserted before a sign shares the position of the minus.
	pos int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is a numeric literal. It may fail to parse, e.g. 1.2.3.
	tokenNum
	// tokenOp is a binary operator.
	tokenOp
	// tokenFunc is a unary function name or the factorial mark.
	tokenFunc
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenUnknown is anything else. The evaluator rejects it.
	tokenUnknown
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token

// Operators contains the runes which are binary operators.
const Operators = "+-×÷%^"

// Root is the square root symbol. It lexes like a letter so that it can begin
// a function name.
const Root = '√'

type lexer struct {
	toks []lexToken
	buf  strings.Builder
	// start is the byte offset of the first rune in buf.
	start int
	// last is the last rune written to buf.
	last rune
}

// tokenize splits src into tokens. It never fails; text that isn't part of
// the calculator's grammar becomes tokenUnknown for later stages to reject.
// A minus in prefix position is preceded by an implicit zero so that it is
// always a binary subtraction. An empty expression, or one made only of
// zeros, is the single token 0.
func tokenize(src string) []lexToken {
	if strings.TrimFunc(src, zeroOrSpace) == "" {
		return []lexToken{{text: "0", kind: tokenNum}}
	}
	var l lexer
	for i, r := range src {
		switch {
		case '0' <= r && r <= '9', r == '.':
			l.extend(i, r)
		case unicode.IsLetter(r), r == Root:
			// Letters continue a function name but never a number.
			if !l.naming() {
				l.flush()
			}
			l.extend(i, r)
		case unicode.IsSpace(r):
			l.flush()
		default:
			l.flush()
			if r == '-' && l.signed() {
				l.toks = append(l.toks, lexToken{text: "0", kind: tokenNum, pos: i})
			}
			l.toks = append(l.toks, lexToken{text: string(r), kind: runeKind(r), pos: i})
		}
	}
	l.flush()
	return l.toks
}

func zeroOrSpace(r rune) bool {
	return r == '0' || unicode.IsSpace(r)
}

// extend adds a rune at byte offset i to the pending literal.
func (l *lexer) extend(i int, r rune) {
	if l.buf.Len() == 0 {
		l.start = i
	}
	l.buf.WriteRune(r)
	l.last = r
}

// naming reports whether the pending literal is accumulating a name.
func (l *lexer) naming() bool {
	return l.buf.Len() > 0 && (unicode.IsLetter(l.last) || l.last == Root)
}

// flush emits the pending literal, if any.
func (l *lexer) flush() {
	if l.buf.Len() == 0 {
		return
	}
	text := l.buf.String()
	l.buf.Reset()
	l.toks = append(l.toks, lexToken{text: text, kind: literalKind(text), pos: l.start})
}

// signed reports whether a minus at the current position is a sign. That is
// the case at the start of input and after an operator, a prefix function, or
// an open parenthesis. The factorial mark is postfix, so a minus after it is
// a subtraction.
func (l *lexer) signed() bool {
	if len(l.toks) == 0 {
		return true
	}
	switch tok := l.toks[len(l.toks)-1]; tok.kind {
	case tokenOp, tokenOpen:
		return true
	case tokenFunc:
		return tok.text != Factorial
	default:
		return false
	}
}

// literalKind classifies a flushed literal.
func literalKind(text string) tokenKind {
	r, _ := utf8.DecodeRuneInString(text)
	if '0' <= r && r <= '9' || r == '.' {
		return tokenNum
	}
	if _, ok := globalfuncs[text]; ok {
		return tokenFunc
	}
	return tokenUnknown
}

// runeKind classifies a single-rune token.
func runeKind(r rune) tokenKind {
	switch {
	case strings.ContainsRune(Operators, r):
		return tokenOp
	case r == '(':
		return tokenOpen
	case r == ')':
		return tokenClose
	case string(r) == Factorial:
		return tokenFunc
	default:
		return tokenUnknown
	}
}
