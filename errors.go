package calculator

import "strconv"

// StackError is an error indicating an operator or function that was
// evaluated without enough operands, as in "2×" or "×3". It implements
// InputError.
type StackError struct {
	// Col is the byte offset of the operator.
	Col int
	// Op is the operator or function token.
	Op string
	// Want is the number of operands the operator takes.
	Want int
	// Have is the number of operands that were available.
	Have int
}

func (err *StackError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Op)+" needs "+strconv.Itoa(err.Want)+" operands, have "+strconv.Itoa(err.Have))
}

func (err *StackError) Pos() int {
	return err.Col
}

// EmptyResultError is an error indicating an expression that produced no
// value, e.g. "()". It implements InputError.
type EmptyResultError struct {
	// Col is the length of the expression.
	Col int
}

func (err *EmptyResultError) Error() string {
	return errpos(err.Col, "no result")
}

func (err *EmptyResultError) Pos() int {
	return err.Col
}

// TokenError is an error indicating text that is not a number, operator,
// function, or parenthesis, or a number that cannot be parsed. It implements
// InputError.
type TokenError struct {
	// Col is the byte offset of the token.
	Col int
	// Text is the token.
	Text string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// evaluating a malformed expression implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset in the expression of the token that caused
	// the error.
	Pos() int
}

var (
	_ InputError = (*StackError)(nil)
	_ InputError = (*EmptyResultError)(nil)
	_ InputError = (*TokenError)(nil)
)
