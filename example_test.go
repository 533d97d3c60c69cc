package calculator_test

import (
	"fmt"

	"github.com/zephyrtronium/calculator"
)

func ExampleDisplay() {
	for _, src := range []string{"2+3×4", "(2+3)×4", "-5+3", "sin(30)", "1÷0", "√(-4)", "2.5!", "2×"} {
		fmt.Println(src, "=", calculator.Display(src))
	}

	// Output:
	// 2+3×4 = 14
	// (2+3)×4 = 20
	// -5+3 = -2
	// sin(30) = 0.5
	// 1÷0 = result is not a real number
	// √(-4) = result is not a real number
	// 2.5! = factorial(2.5) undefined (non-integer)
	// 2× = Error
}

func ExampleParse() {
	e := calculator.Parse("2^3^2+sin(90)")
	r, err := e.Eval()
	fmt.Println(e, "=", r, err)

	// Output:
	// 2 3 ^ 2 ^ 90 sin + = 65 <nil>
}

func ExampleClassify() {
	src := "1÷(cos(90))"
	r, _ := calculator.Evaluate(src)
	fmt.Println(r > 1e15)
	fmt.Println(calculator.Classify(src, r))

	// Output:
	// true
	// cannot divide by zero
}

func ExampleRemoveLastToken() {
	src := "2×sin("
	for src != "0" {
		src = calculator.RemoveLastToken(src)
		fmt.Println(src)
	}

	// Output:
	// 2×
	// 2
	// 0
}
