package calculator_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/zephyrtronium/calculator"
)

func TestClassify(t *testing.T) {
	inf := math.Inf(1)
	cases := []struct {
		name string
		src  string
		r    float64
		kind calculator.DomainKind
		msg  string
	}{
		{"nan", "√(-4)", math.NaN(), calculator.NotReal, "result is not a real number"},
		{"inf", "1÷0", inf, calculator.NotReal, "result is not a real number"},
		{"neg-inf", "ln(0)", math.Inf(-1), calculator.NotReal, "result is not a real number"},
		{"div-zero", "1÷0", 1, calculator.DivideByZero, "cannot divide by zero"},
		{"div-neg-zero", "1÷-0", 1, calculator.DivideByZero, "cannot divide by zero"},
		{"div-sub", "1÷(cos(90))", 1.633123935319537e16, calculator.DivideByZero, "cannot divide by zero"},
		{"div-sub-expr", "2÷(3-3)", 0, calculator.DivideByZero, "cannot divide by zero"},
		{"sqrt", "√(-4)", 0, calculator.OutOfDomain, "sqrt(-4) domain error"},
		{"tan", "tan(90)", 1, calculator.Undefined, "tan(90) is undefined"},
		{"tan-270", "tan(270)", 1, calculator.Undefined, "tan(270) is undefined"},
		{"tan-neg", "tan(-90)", 1, calculator.Undefined, "tan(-90) is undefined"},
		{"asin", "asin(2)", 1, calculator.OutOfDomain, "asin(2) domain error"},
		{"acos", "acos(-1.5)", 1, calculator.OutOfDomain, "acos(-1.5) domain error"},
		{"ln", "ln(0)", 1, calculator.OutOfDomain, "ln(0) domain error"},
		{"log", "log(-10)", 1, calculator.OutOfDomain, "log(-10) domain error"},
		{"fact-neg", "-3!", -6, calculator.NegativeFactorial, "factorial(-3) undefined (negative)"},
		{"fact-frac", "2.5!", 2, calculator.NonIntegerFactorial, "factorial(2.5) undefined (non-integer)"},
		{"pow-zero", "0^-1", 0, calculator.Undefined, "0^-1 is undefined"},
		{"pow-zero-zero", "0^0", 1, calculator.Undefined, "0^0 is undefined"},
		{"pow-neg", "-8^0.5", 1, calculator.NonRealPower, "-8^0.5 is not a real number"},
		{"fact-sub-frac", "5-0.5!", 4, calculator.NonIntegerFactorial, "factorial(0.5) undefined (non-integer)"},
		{"fact-sub-neg", "5--3!", -1, calculator.NegativeFactorial, "factorial(-3) undefined (negative)"},
		{"div-sub-lhs", "1-2÷0", 1, calculator.DivideByZero, "cannot divide by zero"},
		{"div-sub-rhs", "1÷0-5", 1, calculator.DivideByZero, "cannot divide by zero"},
		{"pow-zero-sub", "2-0^-1", 0, calculator.Undefined, "0^-1 is undefined"},
		{"pow-neg-sub", "-8^0.5-1", 1, calculator.NonRealPower, "-8^0.5 is not a real number"},
		// Functions are checked before division.
		{"order", "1÷0+√(-4)", 1, calculator.OutOfDomain, "sqrt(-4) domain error"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := calculator.Classify(c.src, c.r)
			if err == nil {
				t.Fatalf("%q with result %g: no error", c.src, c.r)
			}
			var de *calculator.DomainError
			if !errors.As(err, &de) {
				t.Fatalf("%q: error %T is not a DomainError", c.src, err)
			}
			if de.Kind != c.kind {
				t.Errorf("%q: want kind %d, got %d", c.src, c.kind, de.Kind)
			}
			if err.Error() != c.msg {
				t.Errorf("%q: want message %q, got %q", c.src, c.msg, err.Error())
			}
		})
	}
}

func TestClassifyDefined(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"plain", "2+3×4"},
		{"tan", "tan(45)"},
		{"atan", "atan(90)"},
		{"asin", "asin(1)"},
		{"sqrt", "√(0)"},
		{"ln", "ln(1)"},
		{"fact", "90!"},
		{"fact-sub", "5-3!"},
		{"div", "1÷2"},
		{"div-sub", "1÷(2-1)"},
		{"div-bad-sub", "1÷(2×)"},
		{"pow", "2^0.5"},
		{"pow-neg-int", "-8^2"},
		{"pow-sub", "2-8^0.5"},
		{"fact-mul-sub", "3×2-3!"},
		// Only literal operands are checked.
		{"nested", "√(1-2)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := calculator.Classify(c.src, 1); err != nil {
				t.Errorf("%q: unexpected error %v", c.src, err)
			}
		})
	}
}

func TestClassifyAgrees(t *testing.T) {
	// Both the result and the text mark 1÷0 as undefined.
	r, err := calculator.Evaluate("1÷0")
	if err != nil {
		t.Fatal(err)
	}
	if calculator.Classify("1÷0", r) == nil {
		t.Errorf("no error for result %g", r)
	}
	if calculator.Classify("1÷0", 0) == nil {
		t.Error("no error for finite result")
	}
}

func TestClassifyFactorialOverflow(t *testing.T) {
	r, err := calculator.Evaluate("90!")
	if err != nil {
		t.Fatal(err)
	}
	if err := calculator.Classify("90!", r); err != nil {
		t.Errorf("90! = %g: unexpected error %v", r, err)
	}
	r, err = calculator.Evaluate("200!")
	if err != nil {
		t.Fatal(err)
	}
	var de *calculator.DomainError
	if err := calculator.Classify("200!", r); !errors.As(err, &de) || de.Kind != calculator.NotReal {
		t.Errorf("200! = %g: want NotReal, got %v", r, err)
	}
}

func TestClassifyLongDivisor(t *testing.T) {
	src := "1÷(" + strings.Repeat("0+", 200) + "0)"
	r, err := calculator.Evaluate(src)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(r, 1) {
		t.Fatalf("want +Inf, got %g", r)
	}
	// The divisor is too long to evaluate, so only a finite result passes.
	if err := calculator.Classify(src, 5); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}
