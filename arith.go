package bigint

import (
	"fmt"

	"fortio.org/safecast"
)

// Neg returns x with opposite sign.
func (x Int) Neg() Int {
	return newInt(!x.neg, x.segs)
}

// Abs returns absolute value of x.
func (x Int) Abs() Int {
	return Int{segs: x.segs}
}

// Add returns sum of x and y.
//
// When the signs differ, the smaller magnitude is subtracted
// from the larger one and the result takes the sign of the larger.
func (x Int) Add(y Int) Int {
	// Special cases
	switch {
	case y.IsZero():
		return x
	case x.IsZero():
		return y
	}

	// Same signs
	if x.neg == y.neg {
		return newInt(x.neg, addSegs(x.segs, y.segs))
	}

	// Different signs
	switch cmpSegs(x.segs, y.segs) {
	case 1:
		return newInt(x.neg, subSegs(x.segs, y.segs))
	case -1:
		return newInt(y.neg, subSegs(y.segs, x.segs))
	}
	return Int{}
}

// AddInt64 returns sum of x and v.
func (x Int) AddInt64(v int64) Int {
	// General case
	if v < 0 || x.neg {
		return x.Add(New(v))
	}

	// Fast path: non-negative operands
	z := make([]uint32, len(x.segs), len(x.segs)+3)
	copy(z, x.segs)
	z = addShifted(z, uint64(v), 0)
	return newInt(false, z)
}

// Sub returns difference of x and y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns product of x and y.
//
// If either operand has a single segment, the product is computed in one
// pass over the other operand.
// Otherwise the schoolbook method is used.
func (x Int) Mul(y Int) Int {
	var segs []uint32
	switch {
	case x.IsZero() || y.IsZero():
		return Int{}
	case len(y.segs) == 1:
		segs = mulScalar(x.segs, y.segs[0])
	case len(x.segs) == 1:
		segs = mulScalar(y.segs, x.segs[0])
	default:
		segs = mulSchool(x.segs, y.segs)
	}
	return newInt(x.neg != y.neg, segs)
}

// MulInt64 returns product of x and v.
func (x Int) MulInt64(v int64) Int {
	neg := v < 0
	mag := uint64(v)
	if neg {
		mag = -mag
	}
	return x.mulMag(neg, mag)
}

// mulMag calculates x * m, where m is the magnitude of a machine integer
// and neg is its sign.
func (x Int) mulMag(neg bool, m uint64) Int {
	s, err := safecast.Conv[uint32](m)
	if err != nil {
		return x.Mul(newInt(neg, segsFromUint64(m)))
	}
	return newInt(x.neg != neg, mulScalar(x.segs, s))
}

// Pow returns x raised to the power of exp.
// Pow returns 1 if exp is 0, including the case when x is 0.
//
// Pow returns an error if exp is negative, because the result
// would not be an integer in general.
func (x Int) Pow(exp int) (Int, error) {
	// Special cases
	switch {
	case exp < 0:
		return Int{}, fmt.Errorf("computing %v^%v: %w", x, exp, errNegativeExponent)
	case exp == 0:
		return New(1), nil
	}

	// General case
	var (
		z = New(1)
		b = x.Abs()
	)
	for e := exp; ; {
		if e&1 == 1 {
			z = z.Mul(b)
		}
		e >>= 1
		if e == 0 {
			break
		}
		b = b.Mul(b)
	}

	// Sign
	if x.IsNeg() && exp%2 == 1 {
		z = z.Neg()
	}

	return z, nil
}
