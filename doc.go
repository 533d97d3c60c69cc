// Package calculator implements the arithmetic engine of a scientific
// calculator.
//
// Expressions are written the way calculator buttons produce them: "2+3×4",
// "√(2)", "sin(30)÷cos(60)", "5!". Trigonometric functions work in degrees.
// A minus at the start of an expression or after an operator or open
// parenthesis is a sign. Operators of equal precedence associate left, so
// "2^3^2" is 64.
//
// Evaluation and validation are separate steps. Evaluate computes a float64
// for anything syntactically sound, including 1÷0 and √(-4). Classify then
// inspects the expression text and the result and reports operations that are
// mathematically undefined. Display combines both the way a calculator
// screen does.
//
package calculator
