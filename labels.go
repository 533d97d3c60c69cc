package calculator

// buttons maps calculator button labels to the text they add to an
// expression. Labels not listed add themselves. It is never modified.
var buttons = map[string]string{
	"√x":   "√(",
	"xʸ":   "^",
	"sin":  "sin(",
	"cos":  "cos(",
	"tan":  "tan(",
	"asin": "asin(",
	"acos": "acos(",
	"atan": "atan(",
	"ln":   "ln(",
	"log":  "log(",
}

// Label returns the expression text for a button label. Function buttons
// open a parenthesized argument, e.g. "sin" gives "sin(" and "√x" gives "√(".
// Labels without a mapping, like digits and operators, are returned as is.
func Label(label string) string {
	if tok, ok := buttons[label]; ok {
		return tok
	}
	return label
}

// Labels returns a copy of the label table.
func Labels() map[string]string {
	m := make(map[string]string, len(buttons))
	for k, v := range buttons {
		m[k] = v
	}
	return m
}
