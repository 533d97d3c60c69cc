package calculator

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Format renders a result for display. Magnitudes below 1e-10 are "0".
// Otherwise the value is written with the shortest digits that identify it,
// rounded to at most 15 fractional digits, and with no trailing zeros after
// the decimal point. Digits beyond float64 precision are never shown, so
// 1e23 is "100000000000000000000000".
func Format(v float64) string {
	if math.Abs(v) < 1e-10 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	k := strings.IndexByte(s, '.')
	if k < 0 {
		return s
	}
	if len(s)-k-1 > 15 {
		s = strconv.FormatFloat(v, 'f', 15, 64)
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// RemoveLastToken removes the last entry from an expression as a calculator's
// delete key does. A trailing number loses its last digit. A function call
// opener such as "sin(" is removed whole. Any other final token is removed.
// If nothing remains, the result is "0".
func RemoveLastToken(src string) string {
	if src == "" || src == "0" {
		return "0"
	}
	toks := tokenize(src)
	last := toks[len(toks)-1]
	cut := last.pos
	switch last.kind {
	case tokenNum:
		// Digits and points are one byte each.
		cut = last.pos + len(last.text) - 1
	case tokenOpen:
		if len(toks) < 2 {
			break
		}
		fn := toks[len(toks)-2]
		if fn.kind == tokenFunc && fn.text != Factorial && fn.pos+len(fn.text) == last.pos {
			cut = fn.pos
		}
	}
	r := strings.TrimRightFunc(src[:cut], unicode.IsSpace)
	if r == "" {
		return "0"
	}
	return r
}
