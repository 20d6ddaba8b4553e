package arith

// Evaluation of the binary and unary arithmetic operators over dynamically
// typed operands. Operands are coerced to primitives first; the operation
// then dispatches to either double arithmetic or the BigInt layer. Errors
// are sentinel values propagated by early return; no operator panics.

import (
	"fmt"
	"log/slog"

	"newt/internal/util"
	"newt/internal/value"
)

// Op selects a NumberArithmetic operation.
type Op int

const (
	OpSubtraction Op = iota
	OpMultiplication
	OpDivision
	OpRemainder
	OpExponentiation
)

func (op Op) String() string {
	switch op {
	case OpSubtraction:
		return "-"
	case OpMultiplication:
		return "*"
	case OpDivision:
		return "/"
	case OpRemainder:
		return "%"
	case OpExponentiation:
		return "**"
	default:
		return "?"
	}
}

// Arith evaluates arithmetic operators under a fixed set of capability
// flags. The flags are resolved at construction; dispatch itself is
// unconditional.
type Arith struct {
	cfg util.Configuration
}

func New(cfg util.Configuration) *Arith {
	return &Arith{cfg: cfg}
}

// NumberArithmetic evaluates "- * / % **". Both operands are coerced with a
// number preference; if both turn out to be BigInt values the operation is
// dispatched to the BigInt layer, otherwise both are converted to doubles.
func (a *Arith) NumberArithmetic(op Op, left, right value.Value) value.Value {
	lp := toPrimitive(left, value.PreferNumber)
	if value.IsError(lp.val) {
		return lp.val
	}
	defer lp.release()

	rp := toPrimitive(right, value.PreferNumber)
	if value.IsError(rp.val) {
		return rp.val
	}
	defer rp.release()

	if a.cfg.EnableBigInt {
		lb, lok := lp.val.(*value.BigInt)
		rb, rok := rp.val.(*value.BigInt)
		if lok && rok {
			slog.Debug("bigint arithmetic", slog.String("op", op.String()))
			switch op {
			case OpSubtraction:
				return value.BigIntAddSub(lb, rb, false)
			case OpMultiplication:
				return value.BigIntMul(lb, rb)
			case OpDivision:
				return value.BigIntDivMod(lb, rb, false)
			case OpRemainder:
				return value.BigIntDivMod(lb, rb, true)
			default:
				return newTypeError("unsupported BigInt operation")
			}
		}
	}

	leftNum, err := toNumber(lp.val)
	if err != nil {
		return err
	}
	rightNum, err := toNumber(rp.val)
	if err != nil {
		return err
	}

	var result float64
	switch op {
	case OpSubtraction:
		result = leftNum - rightNum
	case OpMultiplication:
		result = leftNum * rightNum
	case OpDivision:
		result = leftNum / rightNum
	case OpRemainder:
		result = numberRemainder(leftNum, rightNum)
	case OpExponentiation:
		if !a.cfg.EnableExponentiation {
			return newCommonError("unsupported arithmetic operation")
		}
		result = numberPow(leftNum, rightNum)
	default:
		return newCommonError("unsupported arithmetic operation")
	}

	return &value.Number{Value: result}
}

// Addition evaluates "+". Operands are coerced with no type preference, so
// a string-valued default wins before a numeric one. String concatenation
// takes precedence over the BigInt and numeric paths.
func (a *Arith) Addition(left, right value.Value) value.Value {
	lp := toPrimitive(left, value.NoPreference)
	if value.IsError(lp.val) {
		return lp.val
	}
	defer lp.release()

	rp := toPrimitive(right, value.NoPreference)
	if value.IsError(rp.val) {
		return rp.val
	}
	defer rp.release()

	if lp.val.Type() == value.STRING_VALUE || rp.val.Type() == value.STRING_VALUE {
		leftStr, err := toString(lp.val)
		if err != nil {
			return err
		}
		rightStr, err := toString(rp.val)
		if err != nil {
			return err
		}
		return &value.String{Value: leftStr + rightStr}
	}

	if a.cfg.EnableBigInt {
		lb, lok := lp.val.(*value.BigInt)
		rb, rok := rp.val.(*value.BigInt)
		if lok && rok {
			return value.BigIntAddSub(lb, rb, true)
		}
	}

	leftNum, err := toNumber(lp.val)
	if err != nil {
		return err
	}
	rightNum, err := toNumber(rp.val)
	if err != nil {
		return err
	}
	return &value.Number{Value: leftNum + rightNum}
}

// Unary evaluates unary "+" and "-". Unary plus on a BigInt is a type
// error. Unary minus on the BigInt zero returns the same reference with one
// more reference taken; zero has no sign to flip, so no allocation is
// needed.
func (a *Arith) Unary(v value.Value, isPlus bool) value.Value {
	p := toPrimitive(v, value.PreferNumber)
	if value.IsError(p.val) {
		return p.val
	}
	defer p.release()

	if a.cfg.EnableBigInt {
		if b, ok := p.val.(*value.BigInt); ok {
			if isPlus {
				return newTypeError("unary plus is not allowed for BigInt values")
			}
			if b.IsZero() {
				return b.Ref()
			}
			return b.Negate()
		}
	}

	num, err := toNumber(p.val)
	if err != nil {
		return err
	}
	if isPlus {
		return &value.Number{Value: num}
	}
	return &value.Number{Value: -num}
}

func newTypeError(format string, a ...interface{}) *value.Error {
	return &value.Error{Kind: value.TYPE_ERROR, Message: fmt.Sprintf(format, a...)}
}

func newCommonError(format string, a ...interface{}) *value.Error {
	return &value.Error{Kind: value.COMMON_ERROR, Message: fmt.Sprintf(format, a...)}
}
