/*
Package bigint implements immutable arbitrary-precision signed integers.
It is specifically designed for exact decimal computations, where values
are read from and written to decimal text far more often than they are
converted to other bases.

# Representation

[Int] is a struct with two fields:

  - Sign: a boolean indicating whether the integer is negative.
  - Segments: a sequence of base-1,000,000,000 digits, least significant first.
    Each segment holds exactly 9 decimal digits of the absolute value.
    For example, 12,345,678,901 is stored as segments [345678901, 12].

The numerical value of an integer is calculated as:

  - -(Segments[0] + Segments[1] * 10^9 + Segments[2] * 10^18 + ...), if Sign is true.
  - Segments[0] + Segments[1] * 10^9 + Segments[2] * 10^18 + ..., if Sign is false.

The representation is canonical: there are no most significant zero segments,
zero has no segments, and [negative zeros] are not supported.
Hence every integer has exactly one representation.

Because the radix is a power of 10, conversion to and from decimal text
is linear in the number of digits.

# Conversions

The package provides methods for converting integers:

  - from/to string:
    [Parse], [ParseLenient], [Int.String], [Int.Format], [Int.Scan].
  - from/to int64:
    [New], [Int.Int64].
  - from uint64:
    [NewFromUint64].
  - to/from encoded forms:
    [Int.MarshalText], [Int.UnmarshalText], [Int.EncodeMsgpack], [Int.DecodeMsgpack].

See the documentation for each method for more details.

# Operations

The following operations are supported:

  - [Int.Add], [Int.AddInt64], [Int.Sub]:
    segments are summed position by position with carry.
    When the signs of the operands differ, magnitudes are compared first
    and the smaller one is subtracted from the larger one.
  - [Int.Mul], [Int.MulInt64]:
    a multiplication by a value that fits in a single 32-bit scalar takes one
    pass over the segments.
    Other products use the schoolbook method, where every partial product
    of two segments is added into the result at its place value.
  - [Int.MulParallel]:
    the schoolbook method split across goroutines.
    It returns the same result as [Int.Mul].
  - [Int.Pow]:
    binary exponentiation by repeated squaring.
  - [Factorial]:
    the product of the range 1..n reduced in pairs.
  - [Int.Cmp], [Int.Equal], [Int.Less], [Int.Max], [Int.Min]:
    comparison by sign, then by number of segments, then segment by segment
    starting from the most significant one.

Division is not supported.

# Errors

All arithmetic methods are pure.
[Int.Add], [Int.Sub], and [Int.Mul] never fail, because there is no overflow:
the number of segments grows as needed.
Errors are returned in the following cases:

  - Invalid Input.
    [Parse] returns an error if the string is not a valid integer.
    [ParseLenient] accepts any string and silently discards everything
    before the last run of digits.

  - Invalid Operation.
    [Int.Pow] returns an error if the exponent is negative.
    [Factorial] returns an error if the argument is negative or greater than [MaxFactorial].

  - Cancellation.
    [Int.MulParallel] returns the context error if the context is done.

[negative zeros]: https://en.wikipedia.org/wiki/Signed_zero
*/
package bigint
