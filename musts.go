package bigint

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// MustPow is like [Int.Pow] but panics if computing error.
func (x Int) MustPow(exp int) Int {
	z, err := x.Pow(exp)
	if err != nil {
		panic(fmt.Sprintf("%q.MustPow(%v) failed: %v", x, exp, err))
	}
	return z
}

// MustFactorial is like [Factorial] but panics if computing error.
func MustFactorial(n int) Int {
	z, err := Factorial(n)
	if err != nil {
		panic(fmt.Sprintf("MustFactorial(%v) failed: %v", n, err))
	}
	return z
}
