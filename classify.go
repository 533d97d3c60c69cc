package calculator

import (
	"math"
	"regexp"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// DomainKind describes why a result is not meaningful.
type DomainKind int8

const (
	// NotReal is a result that is NaN or infinite.
	NotReal DomainKind = iota
	// Undefined is tan at an odd multiple of 90 degrees, or zero to a
	// non-positive power.
	Undefined
	// OutOfDomain is asin, acos, ln, log, or √ outside its domain.
	OutOfDomain
	// NegativeFactorial is the factorial of a negative number.
	NegativeFactorial
	// NonIntegerFactorial is the factorial of a non-integer.
	NonIntegerFactorial
	// DivideByZero is a division by zero.
	DivideByZero
	// NonRealPower is a negative number to a non-integer power.
	NonRealPower
)

// DomainError describes a mathematically undefined operation found in an
// expression. Its message is suitable to show in place of the result.
type DomainError struct {
	// Kind is the reason the operation is undefined.
	Kind DomainKind
	// Func is the function or operator name, or empty for NotReal.
	Func string
	// X is the operand of a function, or the left operand of an operator.
	X float64
	// Y is the right operand of an operator.
	Y float64
}

func (err *DomainError) Error() string {
	switch err.Kind {
	case NotReal:
		return "result is not a real number"
	case Undefined:
		if err.Func == "^" {
			return numstr(err.X) + "^" + numstr(err.Y) + " is undefined"
		}
		return err.Func + "(" + numstr(err.X) + ") is undefined"
	case OutOfDomain:
		name := err.Func
		if name == "√" {
			name = "sqrt"
		}
		return name + "(" + numstr(err.X) + ") domain error"
	case NegativeFactorial:
		return "factorial(" + numstr(err.X) + ") undefined (negative)"
	case NonIntegerFactorial:
		return "factorial(" + numstr(err.X) + ") undefined (non-integer)"
	case DivideByZero:
		return "cannot divide by zero"
	case NonRealPower:
		return numstr(err.X) + "^" + numstr(err.Y) + " is not a real number"
	default:
		return "undefined operation " + strconv.Quote(err.Func)
	}
}

func numstr(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// eps is the tolerance for treating a value as zero.
const eps = 1e-9

func iszero(x float64) bool {
	return math.Abs(x) < eps
}

func isint(x float64) bool {
	return math.Mod(x, 1) == 0
}

// numpat matches the operand text the classifier understands. It is loose on
// purpose: it takes in a subtraction next to the operand, which leftOperand
// and rightOperand split off. Captures that still don't parse as numbers are
// ignored.
const numpat = `([-0-9.]+)`

// callrules are the per-function checks, in the order they are scanned.
// sin, cos, and atan are defined everywhere and have no rule.
var callrules = []struct {
	name string
	re   *regexp.Regexp
	rule func(a float64) *DomainError
}{
	{"tan", callpat("tan"), func(a float64) *DomainError {
		if iszero(math.Mod(a-90, 180)) {
			return &DomainError{Kind: Undefined, Func: "tan", X: a}
		}
		return nil
	}},
	{"asin", callpat("asin"), unitrule("asin")},
	{"acos", callpat("acos"), unitrule("acos")},
	{"ln", callpat("ln"), logrule("ln")},
	{"log", callpat("log"), logrule("log")},
	{"√", callpat("√"), func(a float64) *DomainError {
		if a < 0 {
			return &DomainError{Kind: OutOfDomain, Func: "√", X: a}
		}
		return nil
	}},
	{Factorial, regexp.MustCompile(numpat + regexp.QuoteMeta(Factorial)), func(a float64) *DomainError {
		switch {
		case a < 0:
			return &DomainError{Kind: NegativeFactorial, Func: Factorial, X: a}
		case !isint(a):
			return &DomainError{Kind: NonIntegerFactorial, Func: Factorial, X: a}
		}
		return nil
	}},
}

func callpat(name string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(name) + `\(` + numpat + `\)`)
}

func unitrule(name string) func(float64) *DomainError {
	return func(a float64) *DomainError {
		if a < -1 || a > 1 {
			return &DomainError{Kind: OutOfDomain, Func: name, X: a}
		}
		return nil
	}
}

func logrule(name string) func(float64) *DomainError {
	return func(a float64) *DomainError {
		if a <= 0 {
			return &DomainError{Kind: OutOfDomain, Func: name, X: a}
		}
		return nil
	}
}

var (
	divpat    = regexp.MustCompile(numpat + `÷` + numpat)
	divsubpat = regexp.MustCompile(numpat + `÷\((.+)\)`)
	powpat    = regexp.MustCompile(numpat + `\^` + numpat)
)

// maxsub is the longest parenthesized divisor, in bytes, that Classify will
// evaluate.
const maxsub = 256

// Classify decides whether result, the value of the expression src, is
// mathematically meaningful. If it is not, the returned error is a
// *DomainError describing why. A NaN or infinite result is always
// NotReal. Otherwise, src is scanned for these patterns, in order:
//
//	tan(a)  asin(a)  acos(a)  ln(a)  log(a)  √(a)  a!
//	a÷b  a÷(expr)  a^b
//
// where a and b are literal numbers, possibly negative. A subtraction next to
// an operand is not part of it, so 5-0.5! checks 0.5!. The first pattern with
// an operand outside the operation's domain gives the error.
//
// The scan is textual. Domain errors in operands that are not literal
// numbers, as in "√(1-2)", are only found through the result.
func Classify(src string, result float64) error {
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return &DomainError{Kind: NotReal}
	}
	for _, c := range callrules {
		for _, m := range c.re.FindAllStringSubmatchIndex(src, -1) {
			if inname(src, m[0]) {
				// e.g. tan( inside atan(
				continue
			}
			parse := operand
			if c.name == Factorial {
				// Postfix, so the capture may begin with a subtraction.
				parse = leftOperand
			}
			a, ok := parse(src[m[2]:m[3]])
			if !ok {
				continue
			}
			if err := c.rule(a); err != nil {
				return err
			}
		}
	}
	for _, m := range divpat.FindAllStringSubmatch(src, -1) {
		a, ok := leftOperand(m[1])
		b, okb := rightOperand(m[2])
		if ok && okb && iszero(b) {
			return &DomainError{Kind: DivideByZero, Func: "÷", X: a, Y: b}
		}
	}
	for _, m := range divsubpat.FindAllStringSubmatch(src, -1) {
		a, ok := leftOperand(m[1])
		if !ok || len(m[2]) > maxsub {
			continue
		}
		b, err := Evaluate(m[2])
		if err != nil {
			continue
		}
		if iszero(b) {
			return &DomainError{Kind: DivideByZero, Func: "÷", X: a, Y: b}
		}
	}
	for _, m := range powpat.FindAllStringSubmatch(src, -1) {
		a, ok := leftOperand(m[1])
		b, okb := rightOperand(m[2])
		if !ok || !okb {
			continue
		}
		switch {
		case iszero(a) && b <= 0:
			return &DomainError{Kind: Undefined, Func: "^", X: a, Y: b}
		case a < 0 && !isint(b):
			return &DomainError{Kind: NonRealPower, Func: "^", X: a, Y: b}
		}
	}
	return nil
}

// inname reports whether the match at byte offset i continues a longer name.
func inname(src string, i int) bool {
	r, _ := utf8.DecodeLastRuneInString(src[:i])
	return unicode.IsLetter(r)
}

// operand parses captured operand text.
func operand(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

// leftOperand parses the text captured before an operator. If it holds a
// subtraction, as "5-0.5" does in 5-0.5!, the operand is what follows the
// last binary minus.
func leftOperand(s string) (float64, bool) {
	if v, ok := operand(s); ok {
		return v, true
	}
	if i := binminus(s, true); i >= 0 {
		return operand(s[i+1:])
	}
	return 0, false
}

// rightOperand parses the text captured after an operator. If it holds a
// subtraction, as "0-5" does in 1÷0-5, the operand is what precedes the
// first binary minus.
func rightOperand(s string) (float64, bool) {
	if v, ok := operand(s); ok {
		return v, true
	}
	if i := binminus(s, false); i >= 0 {
		return operand(s[:i])
	}
	return 0, false
}

// binminus finds the last or first minus in s that follows a digit or point,
// i.e. one that subtracts rather than negates. The result is -1 if there is
// none.
func binminus(s string, last bool) int {
	k := -1
	for i := 1; i < len(s); i++ {
		if s[i] == '-' && (s[i-1] == '.' || '0' <= s[i-1] && s[i-1] <= '9') {
			if !last {
				return i
			}
			k = i
		}
	}
	return k
}
