package arith

import (
	"math"
	"strconv"
	"strings"

	"newt/internal/value"
)

// operand pairs a coerced value with its ownership. Release is registered
// with defer right after a successful coercion, so every return path drops
// exactly the temporaries owned at that point.
type operand struct {
	val   value.Value
	owned bool
}

func (o operand) release() {
	if o.owned {
		value.Release(o.val)
	}
}

// toPrimitive converts a composite operand to a primitive through the
// default-value protocol. Non-composite values pass through unchanged and
// unowned.
func toPrimitive(v value.Value, hint value.Hint) operand {
	if composite, ok := v.(value.Composite); ok {
		return operand{val: composite.DefaultValue(hint), owned: true}
	}
	return operand{val: v}
}

// toNumber converts a primitive to a double. BigInt operands are rejected:
// the language forbids implicit BigInt to Number conversion.
func toNumber(v value.Value) (float64, *value.Error) {
	switch v := v.(type) {
	case *value.Number:
		return v.Value, nil
	case *value.Boolean:
		if v.Value {
			return 1, nil
		}
		return 0, nil
	case *value.String:
		return stringToNumber(v.Value), nil
	case *value.BigInt:
		return 0, newTypeError("BigInt value cannot be converted to a number")
	default:
		return 0, newTypeError("value cannot be converted to a number")
	}
}

// toString converts a primitive to its string form.
func toString(v value.Value) (string, *value.Error) {
	switch v := v.(type) {
	case *value.String:
		return v.Value, nil
	case *value.Number:
		return value.FormatNumber(v.Value), nil
	case *value.Boolean:
		return strconv.FormatBool(v.Value), nil
	case *value.BigInt:
		return v.String(), nil
	default:
		return "", newTypeError("value cannot be converted to a string")
	}
}

// stringToNumber applies the language's string-to-number rules: empty and
// blank strings are zero, named infinities are honored, prefixed integer
// literals are honored, anything else that fails to parse is NaN.
func stringToNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		var base int
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			u, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(u)
		}
	}

	// ParseFloat also accepts "inf", "nan" and hex floats, which are not part
	// of the numeric grammar; only plain decimal literals may reach it
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case ch >= '0' && ch <= '9':
		case ch == '.' || ch == '+' || ch == '-' || ch == 'e' || ch == 'E':
		default:
			return math.NaN()
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// numberRemainder is the language remainder operation: the result takes the
// dividend's sign, unlike a native modulo.
func numberRemainder(left, right float64) float64 {
	return math.Mod(left, right)
}

// numberPow is the language power operation. A base of magnitude one raised
// to an infinite exponent is NaN, where a native pow would answer one.
func numberPow(base, exponent float64) float64 {
	if math.Abs(base) == 1 && math.IsInf(exponent, 0) {
		return math.NaN()
	}
	return math.Pow(base, exponent)
}
