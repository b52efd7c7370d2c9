package bigint

// Base is the radix of a segment.
// Each segment holds 9 decimal digits.
const Base = 1_000_000_000

// segDigits is the number of decimal digits in a full segment.
const segDigits = 9

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]uint32{
	1,             // 10^0
	10,            // 10^1
	100,           // 10^2
	1_000,         // 10^3
	10_000,        // 10^4
	100_000,       // 10^5
	1_000_000,     // 10^6
	10_000_000,    // 10^7
	100_000_000,   // 10^8
	1_000_000_000, // 10^9
}

// trim removes most significant zero segments.
// It returns nil if all segments are zero.
func trim(z []uint32) []uint32 {
	for len(z) > 0 && z[len(z)-1] == 0 {
		z = z[:len(z)-1]
	}
	if len(z) == 0 {
		return nil
	}
	return z
}

// segsFromUint64 splits u into segments.
func segsFromUint64(u uint64) []uint32 {
	var z []uint32
	for u != 0 {
		z = append(z, uint32(u%Base))
		u /= Base
	}
	return z
}

// cmpSegs compares magnitudes x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
//
// Both x and y must be trimmed.
func cmpSegs(x, y []uint32) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// addSegs calculates x + y.
func addSegs(x, y []uint32) []uint32 {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]uint32, len(x)+1)
	var carry uint32
	for i := range x {
		sum := x[i] + carry
		if i < len(y) {
			sum += y[i]
		}
		z[i] = sum % Base
		carry = sum / Base
	}
	z[len(x)] = carry
	return trim(z)
}

// subSegs calculates x - y.
// x must be greater than or equal to y.
func subSegs(x, y []uint32) []uint32 {
	z := make([]uint32, len(x))
	var borrow int64
	for i := range x {
		diff := int64(x[i]) - borrow
		if i < len(y) {
			diff -= int64(y[i])
		}
		if diff < 0 {
			diff += Base
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = uint32(diff)
	}
	return trim(z)
}

// addShifted calculates z + v * Base^k.
// The addition is carried out in place, z is extended when the carry
// reaches past its end. The result is not trimmed.
func addShifted(z []uint32, v uint64, k int) []uint32 {
	for v != 0 {
		for len(z) <= k {
			z = append(z, 0)
		}
		t := uint64(z[k]) + v%Base
		z[k] = uint32(t % Base)
		v = v/Base + t/Base
		k++
	}
	return z
}

// addAt calculates z + x * Base^k in place.
func addAt(z, x []uint32, k int) []uint32 {
	for i, s := range x {
		z = addShifted(z, uint64(s), k+i)
	}
	return z
}

// mulScalar calculates x * m.
func mulScalar(x []uint32, m uint32) []uint32 {
	if m == 0 || len(x) == 0 {
		return nil
	}
	z := make([]uint32, len(x), len(x)+2)
	var carry uint64
	for i := range x {
		t := uint64(x[i])*uint64(m) + carry
		z[i] = uint32(t % Base)
		carry = t / Base
	}
	for carry != 0 {
		z = append(z, uint32(carry%Base))
		carry /= Base
	}
	return z
}

// mulRow calculates z + xi * y * Base^k in place.
func mulRow(z []uint32, xi uint32, y []uint32, k int) []uint32 {
	if xi == 0 {
		return z
	}
	for j := range y {
		z = addShifted(z, uint64(xi)*uint64(y[j]), k+j)
	}
	return z
}

// mulSchool calculates x * y using schoolbook multiplication.
// Every partial product x[i] * y[j] is accumulated at place value i + j.
func mulSchool(x, y []uint32) []uint32 {
	z := make([]uint32, len(x)+len(y))
	for i := range x {
		z = mulRow(z, x[i], y, i)
	}
	return trim(z)
}

// digitLen returns length of s in decimal digits.
// digitLen assumes that 0 has no digits.
func digitLen(s uint32) int {
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if s < pow10[mid] {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// ntz returns number of trailing zeros in s.
// ntz assumes that 0 has no trailing zeros.
func ntz(s uint32) int {
	left, right := 1, digitLen(s)
	for left < right {
		mid := (left + right) / 2
		if s%pow10[mid] == 0 {
			left = mid + 1
		} else {
			right = mid
		}
	}
	return left - 1
}
