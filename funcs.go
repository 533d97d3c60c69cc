package calculator

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Factorial is the postfix factorial mark. It is the only function applied
// to the operand before it rather than to a parenthesized group after it.
const Factorial = "!"

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// globalfuncs maps each unary function token to its implementation. It is
// never modified. Trigonometric functions work in degrees.
var globalfuncs = map[string]func(float64) float64{
	"sin":  func(a float64) float64 { return math.Sin(a * deg2rad) },
	"cos":  func(a float64) float64 { return math.Cos(a * deg2rad) },
	"tan":  tan,
	"asin": func(a float64) float64 { return math.Asin(a) * rad2deg },
	"acos": func(a float64) float64 { return math.Acos(a) * rad2deg },
	"atan": func(a float64) float64 { return math.Atan(a) * rad2deg },
	"ln":   math.Log,
	"log":  log10,
	"√":    math.Sqrt,

	Factorial: factorial,
}

// tan is the tangent of a in degrees. It is NaN wherever the cosine is within
// 1e-10 of zero rather than a huge finite value.
func tan(a float64) float64 {
	r := a * deg2rad
	if math.Abs(math.Cos(r)) < 1e-10 {
		return math.NaN()
	}
	return math.Tan(r)
}

// logprec is the precision in bits of logarithms computed with bigfloat.
const logprec = 128

// ln10 is the natural logarithm of 10 to logprec bits. It is only read.
var ln10 = func() *big.Float {
	ten := new(big.Float).SetPrec(logprec).SetFloat64(10)
	return bigfloat.Log(ten, ten)
}()

// log10 is the base-10 logarithm of a. Positive finite arguments are computed
// at extended precision so that exact powers of ten give exact integers.
// Anything else follows math.Log10, giving NaN or -Inf.
func log10(a float64) float64 {
	if !(a > 0) || math.IsInf(a, 1) {
		return math.Log10(a)
	}
	out := new(big.Float).SetPrec(logprec)
	in := new(big.Float).SetPrec(logprec).SetFloat64(a)
	bigfloat.Log(out, in)
	r, _ := out.Quo(out, ln10).Float64()
	return r
}

// maxFactorial is the least n for which n! overflows float64.
const maxFactorial = 171

// factorial truncates a to an integer and computes its factorial. Negative
// operands give 1. It does no domain checking; Classify reports misuse.
func factorial(a float64) float64 {
	switch {
	case math.IsNaN(a), a < 0:
		a = 0
	case a > maxFactorial:
		a = maxFactorial
	}
	return fact(int(a))
}

func fact(n int) float64 {
	if n <= 1 {
		return 1
	}
	return float64(n) * fact(n-1)
}
