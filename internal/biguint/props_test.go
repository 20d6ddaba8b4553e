package biguint

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func propertyParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	// keep generated magnitudes to a handful of digits
	parameters.MaxSize = 8
	return parameters
}

func genMagnitude() gopter.Gen {
	return gen.SliceOf(gen.UInt32()).Map(func(digits []uint32) *Magnitude {
		return &Magnitude{digits: digits}
	})
}

func TestCompareIsATotalOrder(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("antisymmetric", prop.ForAll(
		func(a, b *Magnitude) bool {
			return a.Compare(b) == -b.Compare(a)
		},
		genMagnitude(), genMagnitude(),
	))

	properties.Property("transitive", prop.ForAll(
		func(a, b, c *Magnitude) bool {
			if a.Compare(b) > 0 || b.Compare(c) > 0 {
				return true
			}
			return a.Compare(c) <= 0
		},
		genMagnitude(), genMagnitude(), genMagnitude(),
	))

	properties.Property("reflexive on clones", prop.ForAll(
		func(a *Magnitude) bool {
			return a.Compare(a.Clone()) == 0
		},
		genMagnitude(),
	))

	properties.TestingRun(t)
}

func TestAdditiveInverse(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("sub(add(a,b), b) == a", prop.ForAll(
		func(a, b *Magnitude) bool {
			sum, err := a.Add(b)
			if err != nil {
				return false
			}
			return sum.Sub(b).Compare(a) == 0
		},
		genMagnitude(), genMagnitude(),
	))

	properties.TestingRun(t)
}

func TestDistributivity(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("mul(a, add(b,c)) == add(mul(a,b), mul(a,c))", prop.ForAll(
		func(a, b, c *Magnitude) bool {
			sum, err := b.Add(c)
			if err != nil {
				return false
			}
			left, err := a.Mul(sum)
			if err != nil {
				return false
			}
			ab, err := a.Mul(b)
			if err != nil {
				return false
			}
			ac, err := a.Mul(c)
			if err != nil {
				return false
			}
			right, err := ab.Add(ac)
			if err != nil {
				return false
			}
			return left.Compare(right) == 0
		},
		genMagnitude(), genMagnitude(), genMagnitude(),
	))

	properties.TestingRun(t)
}

func TestDivisionIdentity(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("a == div(a,d)*d + mod(a,d) and mod(a,d) < d", prop.ForAll(
		func(a, d *Magnitude) bool {
			if d.IsZero() {
				return true
			}
			quot := a.DivMod(d, false)
			rem := a.DivMod(d, true)
			if rem.Compare(d) >= 0 {
				return false
			}
			product, err := quot.Mul(d)
			if err != nil {
				return false
			}
			back, err := product.Add(rem)
			if err != nil {
				return false
			}
			return back.Compare(a) == 0
		},
		genMagnitude(), genMagnitude(),
	))

	properties.TestingRun(t)
}

func TestShiftRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("shift_right(shift_left(a,k), k) == a", prop.ForAll(
		func(a *Magnitude, k uint32) bool {
			shifted, err := a.ShiftLeft(k)
			if err != nil {
				return false
			}
			return shifted.ShiftRight(k).Compare(a) == 0
		},
		genMagnitude(), gen.UInt32Range(0, 200),
	))

	properties.Property("shift_left(shift_right(a,k), k) <= a", prop.ForAll(
		func(a *Magnitude, k uint32) bool {
			back, err := a.ShiftRight(k).ShiftLeft(k)
			if err != nil {
				return false
			}
			return back.Compare(a) <= 0
		},
		genMagnitude(), gen.UInt32Range(0, 200),
	))

	properties.TestingRun(t)
}

func TestRadixRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	for _, radix := range []uint32{2, 8, 10, 16, 36} {
		properties.Property(fmt.Sprintf("parse(text(a, %d), %d) == a", radix, radix), prop.ForAll(
			func(a *Magnitude) bool {
				text, err := a.Text(radix)
				if err != nil {
					return false
				}
				parsed, err := Parse(text, radix)
				if err != nil {
					return false
				}
				return parsed.Compare(a) == 0
			},
			genMagnitude(),
		))
	}

	properties.TestingRun(t)
}
