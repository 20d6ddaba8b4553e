package value

import (
	"errors"

	"newt/internal/biguint"
)

// BigInt is the signed, reference-counted wrapper over a magnitude, exposed
// to the language as its arbitrary-precision integer type. Zero carries no
// sign; NewBigInt normalizes it.
type BigInt struct {
	magnitude *biguint.Magnitude
	negative  bool
	refs      int32
}

func NewBigInt(magnitude *biguint.Magnitude, negative bool) *BigInt {
	if magnitude.IsZero() {
		negative = false
	}
	return &BigInt{magnitude: magnitude, negative: negative, refs: 1}
}

// FromInt64 returns a BigInt representing v.
func FromInt64(v int64) *BigInt {
	if v < 0 {
		return NewBigInt(biguint.FromUint64(uint64(-v)), true)
	}
	return NewBigInt(biguint.FromUint64(uint64(v)), false)
}

// ParseBigInt converts the text of a BigInt literal (without the trailing
// "n") into a value.
func ParseBigInt(s string, radix uint32) Value {
	m, err := biguint.Parse(s, radix)
	if err != nil {
		return NewError(COMMON_ERROR, "invalid BigInt literal: %q", s)
	}
	return NewBigInt(m, false)
}

func (b *BigInt) Type() ValueType { return BIGINT_VALUE }
func (b *BigInt) Inspect() string { return b.String() + "n" }

func (b *BigInt) String() string {
	text, _ := b.magnitude.Text(10)
	if b.negative {
		return "-" + text
	}
	return text
}

func (b *BigInt) Magnitude() *biguint.Magnitude { return b.magnitude }
func (b *BigInt) Negative() bool                { return b.negative }
func (b *BigInt) IsZero() bool                  { return b.magnitude.IsZero() }

// Ref takes an additional reference and returns the same value.
func (b *BigInt) Ref() *BigInt {
	b.refs++
	return b
}

// Deref drops one reference.
func (b *BigInt) Deref() {
	if b.refs > 0 {
		b.refs--
	}
}

// Refs returns the current reference count.
func (b *BigInt) Refs() int32 { return b.refs }

// Negate returns a newly allocated BigInt with the opposite sign. The
// caller handles the zero case; negating zero still yields zero.
func (b *BigInt) Negate() Value {
	return NewBigInt(b.magnitude.Clone(), !b.negative)
}

// BigIntAddSub adds the operands, or subtracts the right one when isAdd is
// unset. Signs and ordering are resolved here so the magnitude layer only
// ever subtracts the smaller value from the larger one.
func BigIntAddSub(left, right *BigInt, isAdd bool) Value {
	rightNegative := right.negative
	if !isAdd {
		rightNegative = !rightNegative
	}

	if left.negative == rightNegative {
		sum, err := left.magnitude.Add(right.magnitude)
		if err != nil {
			return sizeError(err)
		}
		return NewBigInt(sum, left.negative)
	}

	switch left.magnitude.Compare(right.magnitude) {
	case 0:
		return NewBigInt(&biguint.Magnitude{}, false)
	case 1:
		return NewBigInt(left.magnitude.Sub(right.magnitude), left.negative)
	default:
		return NewBigInt(right.magnitude.Sub(left.magnitude), rightNegative)
	}
}

// BigIntMul multiplies the operands.
func BigIntMul(left, right *BigInt) Value {
	product, err := left.magnitude.Mul(right.magnitude)
	if err != nil {
		return sizeError(err)
	}
	return NewBigInt(product, left.negative != right.negative)
}

// BigIntDivMod divides left by right, returning the quotient truncated
// toward zero, or the remainder (which takes the dividend's sign) when
// wantRemainder is set. Division by zero is rejected here, before the
// magnitude layer is entered.
func BigIntDivMod(left, right *BigInt, wantRemainder bool) Value {
	if right.IsZero() {
		return NewError(RANGE_ERROR, "BigInt division by zero")
	}
	result := left.magnitude.DivMod(right.magnitude, wantRemainder)
	if wantRemainder {
		return NewBigInt(result, left.negative)
	}
	return NewBigInt(result, left.negative != right.negative)
}

func sizeError(err error) *Error {
	if errors.Is(err, biguint.ErrSizeLimit) {
		return NewError(RANGE_ERROR, "maximum BigInt size exceeded")
	}
	return NewError(COMMON_ERROR, "%s", err.Error())
}
