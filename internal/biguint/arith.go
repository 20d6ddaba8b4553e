package biguint

// Add returns the magnitude sum. The result grows by one digit only when the
// final carry is nonzero.
func (m *Magnitude) Add(other *Magnitude) (*Magnitude, error) {
	n := len(m.digits)
	if len(other.digits) > n {
		n = len(other.digits)
	}

	out := make([]uint32, n)
	var carry uint64
	for i := 0; i < n; i++ {
		t := uint64(m.Digit(i)) + uint64(other.Digit(i)) + carry
		out[i] = uint32(t)
		carry = t >> DigitBits
	}
	if carry != 0 {
		if n+1 > maxDigits {
			return nil, ErrSizeLimit
		}
		out = append(out, uint32(carry))
	}
	return &Magnitude{digits: out}, nil
}

// Sub returns the magnitude difference m - other. The caller must ensure
// m.Compare(other) >= 0; the result is unspecified otherwise.
func (m *Magnitude) Sub(other *Magnitude) *Magnitude {
	out := make([]uint32, len(m.digits))
	var borrow uint64
	for i := range out {
		x := uint64(m.digits[i])
		y := uint64(other.Digit(i)) + borrow
		if x < y {
			out[i] = uint32(x + (1 << DigitBits) - y)
			borrow = 1
		} else {
			out[i] = uint32(x - y)
			borrow = 0
		}
	}
	return &Magnitude{digits: trim(out)}
}

// Mul returns the magnitude product using schoolbook multiplication, one
// double-width partial product per digit pair.
func (m *Magnitude) Mul(other *Magnitude) (*Magnitude, error) {
	a, b := trim(m.digits), trim(other.digits)
	if len(a) == 0 || len(b) == 0 {
		return &Magnitude{}, nil
	}
	if len(a)+len(b) > maxDigits {
		return nil, ErrSizeLimit
	}

	out := make([]uint32, len(a)+len(b))
	for i, da := range a {
		var carry uint64
		for j, db := range b {
			t := uint64(da)*uint64(db) + uint64(out[i+j]) + carry
			out[i+j] = uint32(t)
			carry = t >> DigitBits
		}
		out[i+len(b)] = uint32(carry)
	}
	return &Magnitude{digits: trim(out)}, nil
}

// DivMod divides m by divisor and returns the quotient, or the remainder
// when wantRemainder is set. The caller must ensure the divisor is nonzero;
// sign and zero checks belong one layer up. The division is bitwise long
// division, which keeps the worst case at O(n*m) digit operations.
func (m *Magnitude) DivMod(divisor *Magnitude, wantRemainder bool) *Magnitude {
	d := trim(divisor.digits)

	if m.Compare(divisor) < 0 {
		if wantRemainder {
			return &Magnitude{digits: trim(append([]uint32(nil), m.digits...))}
		}
		return &Magnitude{}
	}

	quot := make([]uint32, len(m.digits))
	rem := make([]uint32, len(d)+1)
	for i := m.BitLen() - 1; i >= 0; i-- {
		shiftLeftOne(rem)
		if m.Bit(i) {
			rem[0] |= 1
		}
		if compareDigits(rem, d) >= 0 {
			subInPlace(rem, d)
			quot[i/DigitBits] |= 1 << (uint(i) % DigitBits)
		}
	}

	if wantRemainder {
		return &Magnitude{digits: trim(rem)}
	}
	return &Magnitude{digits: trim(quot)}
}

// ShiftLeft returns m shifted left by the given number of bits, growing the
// digit sequence as needed up to the size limit.
func (m *Magnitude) ShiftLeft(count uint32) (*Magnitude, error) {
	src := trim(m.digits)
	if len(src) == 0 {
		return &Magnitude{}, nil
	}

	digitShift := int(count / DigitBits)
	bitShift := uint(count % DigitBits)

	totalBits := m.BitLen() + int(count)
	n := (totalBits + DigitBits - 1) / DigitBits
	if n > maxDigits {
		return nil, ErrSizeLimit
	}

	out := make([]uint32, n)
	if bitShift == 0 {
		copy(out[digitShift:], src)
	} else {
		var carry uint32
		for i, d := range src {
			out[i+digitShift] = d<<bitShift | carry
			carry = d >> (DigitBits - bitShift)
		}
		if carry != 0 {
			out[len(src)+digitShift] = carry
		}
	}
	return &Magnitude{digits: out}, nil
}

// ShiftRight returns m shifted right by the given number of bits. Shifting
// past the total bit width yields the zero magnitude.
func (m *Magnitude) ShiftRight(count uint32) *Magnitude {
	src := trim(m.digits)
	digitShift := int(count / DigitBits)
	bitShift := uint(count % DigitBits)

	if digitShift >= len(src) {
		return &Magnitude{}
	}

	out := make([]uint32, len(src)-digitShift)
	if bitShift == 0 {
		copy(out, src[digitShift:])
	} else {
		for i := range out {
			d := src[i+digitShift] >> bitShift
			if i+digitShift+1 < len(src) {
				d |= src[i+digitShift+1] << (DigitBits - bitShift)
			}
			out[i] = d
		}
	}
	return &Magnitude{digits: trim(out)}
}

// shiftLeftOne shifts a digit slice left by one bit in place.
func shiftLeftOne(digits []uint32) {
	var carry uint32
	for i, d := range digits {
		digits[i] = d<<1 | carry
		carry = d >> (DigitBits - 1)
	}
}

// compareDigits compares two digit slices, zero-padding the shorter one.
func compareDigits(a, b []uint32) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := n - 1; i >= 0; i-- {
		var da, db uint32
		if i < len(a) {
			da = a[i]
		}
		if i < len(b) {
			db = b[i]
		}
		if da != db {
			if da < db {
				return -1
			}
			return 1
		}
	}
	return 0
}

// subInPlace subtracts b from a in place; a must not be smaller than b.
func subInPlace(a, b []uint32) {
	var borrow uint64
	for i := range a {
		x := uint64(a[i])
		var y uint64
		if i < len(b) {
			y = uint64(b[i])
		}
		y += borrow
		if x < y {
			a[i] = uint32(x + (1 << DigitBits) - y)
			borrow = 1
		} else {
			a[i] = uint32(x - y)
			borrow = 0
		}
	}
}
