package bigint

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
)

// Int type is a representation of an arbitrary-precision signed integer.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// An integer is a struct with two parameters:
//
//   - Sign: a boolean indicating whether the integer is negative.
//   - Segments: a sequence of base-[Base] digits, least significant first.
//     For example, 12345678901 is stored as segments [345678901, 12].
//
// Integers are immutable.
// Operations never modify their receivers or arguments, they always
// return a new value, so copies of an Int can be shared freely.
type Int struct {
	neg  bool     // indicates whether the integer is negative
	segs []uint32 // segments of the magnitude, least significant first
}

var (
	errInvalidInt        = errors.New("invalid integer")
	errInvalidEncoding   = errors.New("invalid encoding")
	errNegativeExponent  = errors.New("negative exponent")
	errNegativeFactorial = errors.New("factorial of negative number")
	errDigitRange        = errors.New("digit index out of range")
	errFactorialRange    = errors.New("factorial argument too large")
)

// maxPrealloc is the largest number of segments reserved before decoding them.
const maxPrealloc = 1024

// newInt normalizes segments and returns an integer.
// Zero is always non-negative.
func newInt(neg bool, segs []uint32) Int {
	segs = trim(segs)
	if len(segs) == 0 {
		neg = false
	}
	return Int{neg: neg, segs: segs}
}

// New returns an integer equal to v.
func New(v int64) Int {
	neg := v < 0
	mag := uint64(v)
	if neg {
		mag = -mag
	}
	return newInt(neg, segsFromUint64(mag))
}

// NewFromUint64 returns an integer equal to v.
func NewFromUint64(v uint64) Int {
	return newInt(false, segsFromUint64(v))
}

// Parse converts a string to an integer.
// The input string must be in the following format:
//
//	sign   ::= '+' | '-'
//	digits ::= digit { digit }
//	int    ::= [sign] digits
//
// Leading zeros are allowed and removed, "-0" is parsed as 0.
//
// Parse returns an error if the string contains no digits or
// contains any character other than a leading sign and digits.
// Also see [ParseLenient].
func Parse(s string) (Int, error) {
	var (
		pos   int
		width int
		neg   bool
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Digits
	if pos == width {
		return Int{}, fmt.Errorf("no digits: %w", errInvalidInt)
	}
	for i := pos; i < width; i++ {
		if s[i] < '0' || s[i] > '9' {
			return Int{}, fmt.Errorf("invalid character %q at position %v: %w", s[i], i, errInvalidInt)
		}
	}

	return newInt(neg, parseSegs(s[pos:])), nil
}

// ParseLenient converts a string to an integer without reporting errors.
// A leading '-' makes the result negative.
// The rest of the string is read from the least significant end and
// reading stops at the first character that is not a digit, everything
// before that character is silently discarded.
// For example, "12a34" is parsed as 34 and "abc" is parsed as 0.
//
// ParseLenient exists for compatibility with inputs produced by legacy tools.
// Use [Parse] to reject malformed input.
func ParseLenient(s string) Int {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	start := len(s)
	for start > 0 && s[start-1] >= '0' && s[start-1] <= '9' {
		start--
	}
	return newInt(neg, parseSegs(s[start:]))
}

// parseSegs converts a string of decimal digits to segments.
// Digits are grouped in chunks of 9 counting from the least significant end.
func parseSegs(digits string) []uint32 {
	z := make([]uint32, 0, (len(digits)+segDigits-1)/segDigits)
	for end := len(digits); end > 0; end -= segDigits {
		start := max(end-segDigits, 0)
		var seg uint32
		for i := start; i < end; i++ {
			seg = seg*10 + uint32(digits[i]-'0')
		}
		z = append(z, seg)
	}
	return z
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of an integer.
// The returned string has no leading zeros and no digit separators,
// and is formatted according to the following EBNF grammar:
//
//	sign   ::= '-'
//	digits ::= digit { digit }
//	int    ::= [sign] digits
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Int) String() string {
	buf := make([]byte, 0, len(x.segs)*segDigits+1)
	if x.IsNeg() {
		buf = append(buf, '-')
	}
	buf = x.appendMag(buf)
	return string(buf)
}

// appendMag appends decimal digits of the absolute value of x to buf.
// The most significant segment is written without padding, every
// other segment is padded with zeros to 9 digits.
func (x Int) appendMag(buf []byte) []byte {
	// Special case: zero
	if len(x.segs) == 0 {
		return append(buf, '0')
	}

	// General case
	top := len(x.segs) - 1
	buf = strconv.AppendUint(buf, uint64(x.segs[top]), 10)
	for i := top - 1; i >= 0; i-- {
		var digs [segDigits]byte
		seg := x.segs[i]
		for j := segDigits - 1; j >= 0; j-- {
			digs[j] = byte(seg%10) + '0'
			seg /= 10
		}
		buf = append(buf, digs[:]...)
	}
	return buf
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: -12345
//	%q:        "-12345"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Int) Format(state fmt.State, verb rune) {
	// Digits
	digs := x.appendMag(nil)

	// Arithmetic sign
	rsign := 0
	if x.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(digs) + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case x.IsNeg():
			buf = append(buf, '-')
		case state.Flag(' '):
			buf = append(buf, ' ')
		default:
			buf = append(buf, '+')
		}
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, digs...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'd', 'q', 'Q', 's', 'S', 'v', 'V':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(bigint.Int="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Scan implements the [fmt.Scanner] interface.
// It reads one space-delimited token and converts it with [Parse].
//
// [fmt.Scanner]: https://pkg.go.dev/fmt#Scanner
func (x *Int) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'd', 's', 'v':
	default:
		return fmt.Errorf("verb %%%c: %w", verb, errInvalidInt)
	}
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	*x, err = Parse(string(tok))
	return err
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Int) UnmarshalText(text []byte) error {
	var err error
	*x, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Int.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// EncodeMsgpack implements [msgpack.CustomEncoder] interface.
// An integer is encoded as an array whose first item is the sign
// followed by the segments, least significant first.
//
// [msgpack.CustomEncoder]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v5#CustomEncoder
func (x Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(len(x.segs) + 1); err != nil {
		return err
	}
	if err := enc.EncodeBool(x.neg); err != nil {
		return err
	}
	for _, seg := range x.segs {
		if err := enc.EncodeUint32(seg); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack implements [msgpack.CustomDecoder] interface.
// Also see method [Int.EncodeMsgpack].
//
// [msgpack.CustomDecoder]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v5#CustomDecoder
func (x *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n < 1 {
		return fmt.Errorf("array of length %v: %w", n, errInvalidEncoding)
	}
	neg, err := dec.DecodeBool()
	if err != nil {
		return err
	}
	// The array length comes from the input and is not trusted for allocation.
	var segs []uint32
	if n > 1 {
		segs = make([]uint32, 0, min(n-1, maxPrealloc))
	}
	for i := 0; i < n-1; i++ {
		seg, err := dec.DecodeUint32()
		if err != nil {
			return err
		}
		if seg >= Base {
			return fmt.Errorf("segment %v is %v, which is not less than %v: %w", i, seg, Base, errInvalidEncoding)
		}
		segs = append(segs, seg)
	}
	switch {
	case len(segs) > 0 && segs[len(segs)-1] == 0:
		return fmt.Errorf("most significant segment is zero: %w", errInvalidEncoding)
	case neg && len(segs) == 0:
		return fmt.Errorf("negative zero: %w", errInvalidEncoding)
	}
	*x = Int{neg: neg, segs: segs}
	return nil
}

// Int64 returns x as an int64.
// If x cannot be represented as an int64, the result is (0, false).
func (x Int) Int64() (int64, bool) {
	var mag uint64
	for i := len(x.segs) - 1; i >= 0; i-- {
		seg := uint64(x.segs[i])
		if mag > (math.MaxUint64-seg)/Base {
			return 0, false
		}
		mag = mag*Base + seg
	}
	switch {
	case !x.neg && mag <= math.MaxInt64:
		return int64(mag), true
	case x.neg && mag <= math.MaxInt64:
		return -int64(mag), true
	case x.neg && mag == math.MaxInt64+1:
		return math.MinInt64, true
	}
	return 0, false
}

// Segments returns a copy of the base-[Base] digits of the absolute value
// of x, least significant first.
// Zero has no segments.
func (x Int) Segments() []uint32 {
	return slices.Clone(x.segs)
}

// Len returns number of segments in x.
// Zero has no segments.
func (x Int) Len() int {
	return len(x.segs)
}

// Prec returns number of decimal digits in x.
// Prec assumes that 0 has no digits.
func (x Int) Prec() int {
	if len(x.segs) == 0 {
		return 0
	}
	top := len(x.segs) - 1
	return segDigits*top + digitLen(x.segs[top])
}

// TrailingZeros returns number of trailing zeros in the decimal
// representation of x.
// TrailingZeros returns 1 for 0, because "0" has a single zero digit.
func (x Int) TrailingZeros() int {
	// Special case: zero
	if len(x.segs) == 0 {
		return 1
	}

	// General case
	z := 0
	i := 0
	for x.segs[i] == 0 {
		z += segDigits
		i++
	}
	return z + ntz(x.segs[i])
}

// Digit returns the decimal digit of the absolute value of x at position i,
// where position 0 is the most significant digit.
// For example, Digit(0) of 123 is 1 and Digit(2) is 3.
//
// Digit returns an error if i is negative or not less than the number of digits.
func (x Int) Digit(i int) (int, error) {
	prec := max(x.Prec(), 1)
	if i < 0 || i >= prec {
		return 0, fmt.Errorf("digit %v of %v-digit integer: %w", i, prec, errDigitRange)
	}
	// Special case: zero
	if len(x.segs) == 0 {
		return 0, nil
	}
	// General case
	k := prec - 1 - i
	seg := x.segs[k/segDigits]
	return int(seg / pow10[k%segDigits] % 10), nil
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Int) Sign() int {
	switch {
	case x.neg:
		return -1
	case len(x.segs) == 0:
		return 0
	}
	return 1
}

// IsPos returns true if x > 0.
func (x Int) IsPos() bool {
	return len(x.segs) != 0 && !x.neg
}

// IsNeg returns true if x < 0.
func (x Int) IsNeg() bool {
	return x.neg
}

// IsZero returns true if x == 0.
func (x Int) IsZero() bool {
	return len(x.segs) == 0
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Int) Cmp(y Int) int {
	// Special case: different signs
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	}

	// General case
	r := cmpSegs(x.segs, y.segs)
	if x.neg {
		return -r
	}
	return r
}

// Equal returns true if x == y.
// Also see method [Int.Cmp].
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Less returns true if x < y.
// Also see method [Int.Cmp].
func (x Int) Less(y Int) bool {
	return x.Cmp(y) < 0
}

// Max returns maximum of x and y.
// Also see method [Int.Cmp].
func (x Int) Max(y Int) Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Min returns minimum of x and y.
// Also see method [Int.Cmp].
func (x Int) Min(y Int) Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}
