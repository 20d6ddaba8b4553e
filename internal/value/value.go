package value

import (
	"fmt"
	"math"
	"strconv"
)

const (
	NUMBER_VALUE  = "NUMBER"
	STRING_VALUE  = "STRING"
	BOOLEAN_VALUE = "BOOLEAN"
	OBJECT_VALUE  = "OBJECT"
	BIGINT_VALUE  = "BIGINT"
	EMPTY_VALUE   = "EMPTY"
	ERROR_VALUE   = "ERROR"
)

const (
	TYPE_ERROR   = "TypeError"
	RANGE_ERROR  = "RangeError"
	COMMON_ERROR = "Error"
)

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	EMPTY = &Empty{}
)

type ValueType string

// Hint is the type preference passed to the default-value protocol when a
// composite operand is converted to a primitive.
type Hint int

const (
	NoPreference Hint = iota
	PreferNumber
)

type Value interface {
	Type() ValueType
	Inspect() string
}

// Composite is a value that must be converted to a primitive through the
// default-value protocol before it can take part in arithmetic.
type Composite interface {
	Value
	DefaultValue(hint Hint) Value
}

type Number struct {
	Value float64
}

func (n *Number) Type() ValueType { return NUMBER_VALUE }
func (n *Number) Inspect() string { return FormatNumber(n.Value) }

type String struct {
	Value string
}

func (s *String) Type() ValueType { return STRING_VALUE }
func (s *String) Inspect() string { return s.Value }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ValueType { return BOOLEAN_VALUE }
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }

// Empty is the sentinel for "no value yet"; it never escapes to the
// embedding program.
type Empty struct{}

func (e *Empty) Type() ValueType { return EMPTY_VALUE }
func (e *Empty) Inspect() string { return "<empty>" }

// Error is the sentinel signaling that an exception has been raised and is
// being propagated through the call chain.
type Error struct {
	Kind    string
	Message string
}

func (e *Error) Type() ValueType { return ERROR_VALUE }
func (e *Error) Inspect() string { return e.Kind + ": " + e.Message }

func NewError(kind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

func IsError(v Value) bool {
	if v != nil {
		return v.Type() == ERROR_VALUE
	}
	return false
}

// Object is a composite operand with a pluggable default-value conversion.
// A plain object converts to "[object Object]" regardless of hint, like an
// ordinary ECMAScript object without custom valueOf/toString.
type Object struct {
	DefaultFn func(hint Hint) Value
}

func (o *Object) Type() ValueType { return OBJECT_VALUE }
func (o *Object) Inspect() string { return "[object Object]" }

func (o *Object) DefaultValue(hint Hint) Value {
	if o.DefaultFn != nil {
		return o.DefaultFn(hint)
	}
	return &String{Value: "[object Object]"}
}

// Release drops one reference from a reference-counted value. Numbers,
// booleans and strings carry no ownership and are left alone.
func Release(v Value) {
	if b, ok := v.(*BigInt); ok {
		b.Deref()
	}
}

// FormatNumber renders a double the way the language prints it: integral
// values without a decimal point, NaN and infinities by name. Precise
// exponent formatting of extreme values is delegated to the standard
// library.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	case f == math.Trunc(f) && math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}
