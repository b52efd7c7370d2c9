package bigint

import "fmt"

// MaxFactorial is the largest argument accepted by [Factorial].
// Every paired term stays below 2^64 up to this bound.
const MaxFactorial = 1 << 32

// Factorial returns n! = n * (n - 1) * ... * 1.
// Factorial returns 1 if n is 0.
//
// The product is reduced in pairs to halve the number of multiplications.
// An odd n is multiplied in first, then the remaining even n contributes
// the terms n, n + (n - 2), n + (n - 2) + (n - 4), and so on, each of
// which is the product of a pair of factors from both ends of the range.
// For example, 10! = 10 * 18 * 24 * 28 * 30.
//
// Factorial returns an error if n is negative or greater than [MaxFactorial].
func Factorial(n int) (Int, error) {
	if n < 0 {
		return Int{}, fmt.Errorf("computing %v!: %w", n, errNegativeFactorial)
	}
	if uint64(n) > MaxFactorial {
		return Int{}, fmt.Errorf("computing %v!: %w", n, errFactorialRange)
	}

	z := New(1)
	if n%2 == 1 {
		z = New(int64(n))
		n--
	}

	var last uint64
	for m := uint64(n); m >= 2; m -= 2 {
		z = z.mulMag(false, m+last)
		last += m
	}

	return z, nil
}
