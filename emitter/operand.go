package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/liskarovh/ifj25c/token"
)

// InternalError reports a condition the emitter can reach only through
// a compiler bug or a deliberately unsupported construct (the `is`
// operator has no target instruction). It maps to exit code 99.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string { return e.Message }

var reservedOperandPrefixes = []string{"int@", "float@", "string@", "bool@", "nil@", "GF@", "LF@", "TF@"}

// varOperand applies the frame-prefix rule: `__`-prefixed
// names use GF@, everything else uses LF@, and a name that already
// carries a reserved prefix (a compiler-generated temp, or an operand
// string passed back in unchanged) is left untouched.
func varOperand(name string) string {
	for _, prefix := range reservedOperandPrefixes {
		if strings.HasPrefix(name, prefix) {
			return name
		}
	}
	if token.IsGlobal(name) {
		return "GF@" + name
	}
	return "LF@" + name
}

func intOperand(v int64) string {
	return "int@" + strconv.FormatInt(v, 10)
}

func floatOperand(v float64) string {
	return "float@" + strconv.FormatFloat(v, 'x', -1, 64)
}

func boolOperand(v bool) string {
	if v {
		return "bool@true"
	}
	return "bool@false"
}

// stringOperand escapes every byte in [0,32] ∪ {35, 92} as a
// zero-padded three-digit decimal escape.
func stringOperand(s string) string {
	var b strings.Builder
	b.WriteString("string@")
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= 32 || c == '#' || c == '\\' {
			fmt.Fprintf(&b, "\\%03d", c)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
