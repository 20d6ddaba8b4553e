package biguint

// Arbitrary-precision unsigned integer arithmetic over little-endian uint32
// digit sequences. A Magnitude carries no sign; sign handling belongs to the
// value layer on top. Every operation treats its inputs as immutable and
// returns a freshly allocated result.

import (
	"errors"
	"math/bits"
	"strings"
)

const (
	// DigitBits is the width of a single digit.
	DigitBits = 32

	digitBytes = DigitBits / 8

	// MaxSize limits a magnitude to 65536 bytes. Operations that would grow
	// past the limit fail with ErrSizeLimit instead of truncating.
	MaxSize = 0x10000

	maxDigits = MaxSize / digitBytes
)

var (
	ErrSizeLimit = errors.New("magnitude exceeds the maximum size")
	ErrRadix     = errors.New("radix must be between 2 and 36")
	ErrSyntax    = errors.New("invalid digit for radix")
)

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// Magnitude is an unsigned big integer. The zero value represents zero.
// Leading (most significant) zero digits may be present after some
// operations; callers compare magnitudes with Compare, not by length.
type Magnitude struct {
	digits []uint32
}

// New returns a zero-filled magnitude of n digits.
func New(n int) (*Magnitude, error) {
	if n < 0 || n > maxDigits {
		return nil, ErrSizeLimit
	}
	return &Magnitude{digits: make([]uint32, n)}, nil
}

// FromUint64 returns the magnitude representing v.
func FromUint64(v uint64) *Magnitude {
	switch {
	case v == 0:
		return &Magnitude{}
	case v <= 0xFFFFFFFF:
		return &Magnitude{digits: []uint32{uint32(v)}}
	default:
		return &Magnitude{digits: []uint32{uint32(v), uint32(v >> DigitBits)}}
	}
}

// Len returns the number of digits, including any leading zero digits.
func (m *Magnitude) Len() int { return len(m.digits) }

// Size returns the size of the digit sequence in bytes.
func (m *Magnitude) Size() int { return len(m.digits) * digitBytes }

// IsZero reports whether the magnitude represents zero.
func (m *Magnitude) IsZero() bool {
	for _, d := range m.digits {
		if d != 0 {
			return false
		}
	}
	return true
}

// Digit returns the i-th digit, treating digits above Len as zero.
func (m *Magnitude) Digit(i int) uint32 {
	if i < 0 || i >= len(m.digits) {
		return 0
	}
	return m.digits[i]
}

// Clone returns a copy of the magnitude.
func (m *Magnitude) Clone() *Magnitude {
	out := make([]uint32, len(m.digits))
	copy(out, m.digits)
	return &Magnitude{digits: out}
}

// Extend returns a magnitude one digit wider, with d as the new most
// significant digit.
func (m *Magnitude) Extend(d uint32) (*Magnitude, error) {
	if len(m.digits)+1 > maxDigits {
		return nil, ErrSizeLimit
	}
	out := make([]uint32, len(m.digits)+1)
	copy(out, m.digits)
	out[len(out)-1] = d
	return &Magnitude{digits: out}, nil
}

// Compare returns -1, 0 or 1 depending on whether m is less than, equal to
// or greater than other. Shorter operands compare as if zero-padded at the
// top.
func (m *Magnitude) Compare(other *Magnitude) int {
	n := len(m.digits)
	if len(other.digits) > n {
		n = len(other.digits)
	}
	for i := n - 1; i >= 0; i-- {
		a, b := m.Digit(i), other.Digit(i)
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// MulDigitAdd multiplies the whole magnitude by mul and adds add into the
// least significant position in a single pass. This is the accumulation
// primitive behind radix parsing.
func (m *Magnitude) MulDigitAdd(mul, add uint32) (*Magnitude, error) {
	out := make([]uint32, len(m.digits))
	carry := uint64(add)
	for i, d := range m.digits {
		t := uint64(d)*uint64(mul) + carry
		out[i] = uint32(t)
		carry = t >> DigitBits
	}
	if carry != 0 {
		if len(out)+1 > maxDigits {
			return nil, ErrSizeLimit
		}
		out = append(out, uint32(carry))
	}
	return &Magnitude{digits: out}, nil
}

// Text renders the magnitude in the given radix (2 to 36) via repeated
// division. Zero renders as "0".
func (m *Magnitude) Text(radix uint32) (string, error) {
	if radix < 2 || radix > 36 {
		return "", ErrRadix
	}
	if m.IsZero() {
		return "0", nil
	}

	rest := trim(m.digits)
	var out []byte
	for len(rest) > 0 {
		var rem uint32
		rest, rem = divModDigit(rest, radix)
		out = append(out, digitChars[rem])
	}

	// digits come out least significant first
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

// Parse converts text in the given radix (2 to 36) into a magnitude,
// accumulating one character at a time through MulDigitAdd.
func Parse(s string, radix uint32) (*Magnitude, error) {
	if radix < 2 || radix > 36 {
		return nil, ErrRadix
	}
	if s == "" {
		return nil, ErrSyntax
	}

	m := &Magnitude{}
	for _, r := range strings.ToLower(s) {
		var v uint32
		switch {
		case r >= '0' && r <= '9':
			v = uint32(r - '0')
		case r >= 'a' && r <= 'z':
			v = uint32(r-'a') + 10
		default:
			return nil, ErrSyntax
		}
		if v >= radix {
			return nil, ErrSyntax
		}
		next, err := m.MulDigitAdd(radix, v)
		if err != nil {
			return nil, err
		}
		m = next
	}
	return m, nil
}

// BitLen returns the position of the highest set bit plus one, or zero for
// the zero magnitude.
func (m *Magnitude) BitLen() int {
	for i := len(m.digits) - 1; i >= 0; i-- {
		if m.digits[i] != 0 {
			return i*DigitBits + bits.Len32(m.digits[i])
		}
	}
	return 0
}

// Bit reports whether bit i is set.
func (m *Magnitude) Bit(i int) bool {
	return m.Digit(i/DigitBits)&(1<<(uint(i)%DigitBits)) != 0
}

// divModDigit divides a trimmed digit slice by a single digit, returning the
// trimmed quotient and the remainder.
func divModDigit(digits []uint32, d uint32) ([]uint32, uint32) {
	quot := make([]uint32, len(digits))
	var rem uint64
	for i := len(digits) - 1; i >= 0; i-- {
		t := rem<<DigitBits | uint64(digits[i])
		quot[i] = uint32(t / uint64(d))
		rem = t % uint64(d)
	}
	return trim(quot), uint32(rem)
}

// trim drops leading (most significant) zero digits.
func trim(digits []uint32) []uint32 {
	n := len(digits)
	for n > 0 && digits[n-1] == 0 {
		n--
	}
	return digits[:n]
}
