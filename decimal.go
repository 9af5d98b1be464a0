package decimal

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Decimal type is a representation of a finite decimal number with a bounded
// number of significant digits.
// The zero value is the numeric value of 0 with the [DefaultWindow].
// Decimals are immutable: every operation returns a new value, so a decimal
// can be shared between goroutines.
//
// A decimal is a sequence of digits together with:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Exponent: the number of digits in the integer part. It is zero or
//     negative for values below 1, where it counts the leading fractional
//     zeros, and it may exceed the number of stored digits when the integer
//     part ends with zeros.
//   - Window: the maximum number of stored digits. Digits beyond the window
//     are rounded half-up into the retained ones.
//
// For example, the digits 1, 2, 3 with an exponent of 1 represent 1.23,
// with an exponent of 5 they represent 12300, and with an exponent of -1
// they represent 0.0123.
//
// Stored digits never start or end with zero, so every value has exactly
// one representation.
type Decimal struct {
	digits  []byte // digits, least significant first
	exp     int    // number of digits in the integer part
	neg     bool   // indicates whether the decimal is negative
	window  int    // maximum number of digits, 0 selects DefaultWindow
	inexact bool   // indicates whether digits were rounded away
}

// Window is the maximum number of significant digits a decimal retains.
// Values below 1 select [DefaultWindow].
type Window int

// DefaultWindow is the window used by package-level constructors and by the
// zero value of [Decimal].
const DefaultWindow Window = 25

func (w Window) size() int {
	if w < 1 {
		return int(DefaultWindow)
	}
	return int(w)
}

// New returns a decimal equal to n with the given window.
func (w Window) New(n int64) Decimal {
	u := uint64(n)
	if n < 0 {
		u = -u
	}
	return w.newFromUint64(n < 0, u)
}

// NewFromUint64 returns a decimal equal to u with the given window.
func (w Window) NewFromUint64(u uint64) Decimal {
	return w.newFromUint64(false, u)
}

func (w Window) newFromUint64(neg bool, u uint64) Decimal {
	c := coefficient{neg: neg}
	for u != 0 {
		c.digs = append(c.digs, int(u%10))
		u /= 10
	}
	return c.normalize(w.size())
}

// NewFromFloat64 converts a float to a decimal with the given window.
// The conversion uses the shortest decimal text that reads back as f,
// so it is bounded by the precision of float64 rather than being an exact
// binary expansion.
//
// NewFromFloat64 returns an error if f is NaN, and the special value
// [PositiveInfinity] or [NegativeInfinity] if f is infinite.
func (w Window) NewFromFloat64(f float64) (Decimal, error) {
	switch {
	case math.IsNaN(f):
		return Decimal{}, errors.Wrapf(ErrDomain, "converting %v", f)
	case math.IsInf(f, 1):
		return Decimal{}, errors.Wrapf(PositiveInfinity, "converting %v", f)
	case math.IsInf(f, -1):
		return Decimal{}, errors.Wrapf(NegativeInfinity, "converting %v", f)
	}
	return parseText(strconv.FormatFloat(f, 'f', -1, 64), w.size())
}

// Parse converts text to a (possibly rounded) decimal with the given window.
// The text must be in one of the following formats:
//
//	1234
//	-12.34
//	+0,001234
//	.5
//
// Either '.' or ',' separates the integer and fractional parts.
// Full-width digits, signs and separators are accepted as well.
// Empty text is parsed as 0.
//
// Parse returns an error wrapping [ErrParse] if the text contains any other
// character, more than one separator, or no digits.
func (w Window) Parse(s string) (Decimal, error) {
	return parseText(foldText(s), w.size())
}

// ParseRunes is like [Window.Parse] but takes wide text.
func (w Window) ParseRunes(r []rune) (Decimal, error) {
	return w.Parse(string(r))
}

// ParseUTF16 is like [Window.Parse] but takes UTF-16 encoded text.
// A byte order mark selects the byte order; little endian is assumed
// otherwise.
func (w Window) ParseUTF16(b []byte) (Decimal, error) {
	s, err := decodeUTF16(b)
	if err != nil {
		return Decimal{}, err
	}
	return w.Parse(s)
}

// New returns a decimal equal to n with the [DefaultWindow].
func New(n int64) Decimal {
	return DefaultWindow.New(n)
}

// NewFromUint64 returns a decimal equal to u with the [DefaultWindow].
func NewFromUint64(u uint64) Decimal {
	return DefaultWindow.NewFromUint64(u)
}

// NewFromFloat64 converts a float to a decimal with the [DefaultWindow].
// See [Window.NewFromFloat64] for details.
func NewFromFloat64(f float64) (Decimal, error) {
	return DefaultWindow.NewFromFloat64(f)
}

// Parse converts text to a decimal with the [DefaultWindow].
// See [Window.Parse] for the accepted format.
func Parse(s string) (Decimal, error) {
	return DefaultWindow.Parse(s)
}

// ParseRunes converts wide text to a decimal with the [DefaultWindow].
func ParseRunes(r []rune) (Decimal, error) {
	return DefaultWindow.ParseRunes(r)
}

// ParseUTF16 converts UTF-16 text to a decimal with the [DefaultWindow].
func ParseUTF16(b []byte) (Decimal, error) {
	return DefaultWindow.ParseUTF16(b)
}

// MustParse is like [Parse] but panics if the text cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// Window returns the maximum number of digits d retains.
func (d Decimal) Window() int {
	return Window(d.window).size()
}

// WithWindow returns d with a different window.
// Digits, sign and exponent are kept as they are; the new window applies
// to the results of subsequent operations on the returned decimal.
// Values of n below 1 select [DefaultWindow].
func (d Decimal) WithWindow(n int) Decimal {
	d.window = Window(n).size()
	return d
}

// Digits returns the stored digits of d, most significant first.
// The result is empty for zero.
func (d Decimal) Digits() []byte {
	buf := make([]byte, len(d.digits))
	for i := range buf {
		buf[i] = d.digits[len(d.digits)-1-i]
	}
	return buf
}

// Exponent returns the number of digits in the integer part of d.
// See [Decimal] for the meaning of zero and negative exponents.
func (d Decimal) Exponent() int {
	return d.exp
}

// Length returns the number of stored digits of d.
func (d Decimal) Length() int {
	return len(d.digits)
}

// Inexact reports whether rounding to a window discarded non-zero digits
// while computing d or any of the operands it was computed from.
func (d Decimal) Inexact() bool {
	return d.inexact
}

// digit returns the i-th digit counting from the most significant one.
// Positions outside of the stored digits are zero.
func (d Decimal) digit(i int) int {
	if i < 0 || i >= len(d.digits) {
		return 0
	}
	return int(d.digits[len(d.digits)-1-i])
}

// lo returns the power of ten of the least significant digit.
func (d Decimal) lo() int {
	return d.exp - len(d.digits)
}

func (d Decimal) coefficient() coefficient {
	c := coefficient{
		digs:    make([]int, len(d.digits), len(d.digits)+1),
		lo:      d.lo(),
		neg:     d.neg,
		inexact: d.inexact,
	}
	for i, v := range d.digits {
		c.digs[i] = int(v)
	}
	return c
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.IsZero():
		return 0
	case d.neg:
		return -1
	}
	return 1
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return len(d.digits) == 0
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return !d.neg && !d.IsZero()
}

// IsInt returns true if there are no significant digits after the decimal
// point.
func (d Decimal) IsInt() bool {
	return d.lo() >= 0
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of a decimal value.
// The returned string does not use scientific or engineering notation and is
// formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// The integer part always has at least one digit.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	n := len(d.digits) + 3
	if d.exp > 0 {
		n += d.exp
	} else {
		n -= d.exp
	}
	buf := make([]byte, 0, n)

	// Sign
	if d.neg {
		buf = append(buf, '-')
	}

	// Integer part
	if d.exp <= 0 {
		buf = append(buf, '0')
	}
	for i := 0; i < d.exp; i++ {
		buf = append(buf, byte(d.digit(i))+'0')
	}

	// Fractional part
	if d.lo() < 0 {
		buf = append(buf, '.')
		for i := d.exp; i < len(d.digits); i++ {
			buf = append(buf, byte(d.digit(i))+'0')
		}
	}

	return string(buf)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Window(d.window).Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// Strings, byte slices, integers and floats are accepted.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	w := Window(d.window)
	switch value := value.(type) {
	case string:
		*d, err = w.Parse(value)
	case []byte:
		*d, err = w.Parse(string(value))
	case int64:
		*d = w.New(value)
	case float64:
		*d, err = w.NewFromFloat64(value)
	default:
		err = errors.Newf("cannot scan %T into %T", value, d)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%f, %s, %v: -123.456
//	%q:        "-123.456"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for the %f verb; the value is rounded half-up
// to the requested number of fractional digits and padded with zeros.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	// Rescaling
	tzeroes := 0
	if verb == 'f' || verb == 'F' {
		if p, ok := state.Precision(); ok {
			if p < d.fracDigits() {
				d = d.roundFrac(p)
			}
			tzeroes = p - d.fracDigits()
		}
	}

	// Integer and fractional digits
	text := d.Abs().String()
	if tzeroes > 0 {
		if d.fracDigits() == 0 {
			text += "."
		}
		text += strings.Repeat("0", tzeroes)
	}

	// Arithmetic sign
	rsign := ""
	switch {
	case d.IsNeg():
		rsign = "-"
	case state.Flag('+'):
		rsign = "+"
	case state.Flag(' '):
		rsign = " "
	}

	// Quotes
	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	// Padding
	width := len(rsign) + len(text) + 2*len(quote)
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
	}

	var buf strings.Builder
	buf.WriteString(strings.Repeat(" ", lspaces))
	buf.WriteString(quote)
	buf.WriteString(rsign)
	buf.WriteString(strings.Repeat("0", lzeroes))
	buf.WriteString(text)
	buf.WriteString(quote)
	buf.WriteString(strings.Repeat(" ", tspaces))

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		fmt.Fprint(state, buf.String())
	default:
		fmt.Fprintf(state, "%%!%c(decimal.Decimal=%s)", verb, buf.String())
	}
}

func (d Decimal) fracDigits() int {
	if lo := d.lo(); lo < 0 {
		return -lo
	}
	return 0
}

// roundFrac rounds d half-up to the given number of fractional digits.
func (d Decimal) roundFrac(frac int) Decimal {
	return d.coefficient().roundAt(-frac).normalize(d.Window())
}

// Int64 returns the integer part of d, discarding the fractional digits.
// Int64 returns an error wrapping [ErrValueOutOfRange] if the integer part
// does not fit into int64.
func (d Decimal) Int64() (int64, error) {
	u, err := d.intPart()
	if err != nil {
		return 0, err
	}
	switch {
	case d.neg && u == 1<<63:
		return math.MinInt64, nil
	case u > math.MaxInt64:
		return 0, errors.Wrapf(ErrValueOutOfRange, "converting %v to int64", d)
	case d.neg:
		return -int64(u), nil
	}
	return int64(u), nil
}

// Uint64 is like [Decimal.Int64] but returns an unsigned integer.
func (d Decimal) Uint64() (uint64, error) {
	u, err := d.intPart()
	if err != nil {
		return 0, err
	}
	if d.neg && u != 0 {
		return 0, errors.Wrapf(ErrValueOutOfRange, "converting %v to uint64", d)
	}
	return u, nil
}

func (d Decimal) intPart() (uint64, error) {
	var u uint64
	for i := 0; i < d.exp; i++ {
		v := uint64(d.digit(i))
		if u > (math.MaxUint64-v)/10 {
			return 0, errors.Wrapf(ErrValueOutOfRange, "integer part of %v exceeds 64 bits", d)
		}
		u = u*10 + v
	}
	return u, nil
}

// Float64 returns the nearest binary floating-point number rounded
// using [round half to even] rule.
// Values beyond the range of float64 are returned as infinities.
//
// [round half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (d Decimal) Float64() float64 {
	f, _ := strconv.ParseFloat(d.String(), 64)
	return f
}

// Neg returns a decimal with the opposite sign.
func (d Decimal) Neg() Decimal {
	if !d.IsZero() {
		d.neg = !d.neg
	}
	return d
}

// Abs returns the absolute value of the decimal.
func (d Decimal) Abs() Decimal {
	d.neg = false
	return d
}

// Shift returns d * 10^n.
// Only the exponent changes, so the result is exact.
func (d Decimal) Shift(n int) Decimal {
	if !d.IsZero() {
		d.exp += n
	}
	return d
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {
	// Special case: different signs
	switch ds, es := d.Sign(), e.Sign(); {
	case ds > es:
		return 1
	case ds < es:
		return -1
	case ds == 0:
		return 0
	}

	// General case
	r := cmpAbs(d, e)
	if d.neg {
		return -r
	}
	return r
}

// cmpAbs compares the magnitudes of two non-zero decimals.
func cmpAbs(d, e Decimal) int {
	switch {
	case d.exp > e.exp:
		return 1
	case d.exp < e.exp:
		return -1
	}
	n := max(len(d.digits), len(e.digits))
	for i := 0; i < n; i++ {
		switch a, b := d.digit(i), e.digit(i); {
		case a > b:
			return 1
		case a < b:
			return -1
		}
	}
	return 0
}

// CmpInt64 is like [Decimal.Cmp] but compares d with an integer.
func (d Decimal) CmpInt64(n int64) int {
	return d.Cmp(New(n))
}

// Equal returns true if d == e.
// The windows and the inexact flags of the operands are not compared.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Less returns true if d < e.
func (d Decimal) Less(e Decimal) bool {
	return d.Cmp(e) < 0
}

// LessOrEqual returns true if d <= e.
func (d Decimal) LessOrEqual(e Decimal) bool {
	return d.Cmp(e) <= 0
}

// Greater returns true if d > e.
func (d Decimal) Greater(e Decimal) bool {
	return d.Cmp(e) > 0
}

// GreaterOrEqual returns true if d >= e.
func (d Decimal) GreaterOrEqual(e Decimal) bool {
	return d.Cmp(e) >= 0
}

// Max returns the larger decimal.
// See also method [Decimal.Cmp].
func (d Decimal) Max(e Decimal) Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns the smaller decimal.
// See also method [Decimal.Cmp].
func (d Decimal) Min(e Decimal) Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Add returns the (possibly rounded) sum of decimals d and e.
// The result has the window of d.
func (d Decimal) Add(e Decimal) Decimal {
	return add(d, e, 1)
}

// Sub returns the (possibly rounded) difference between decimals d and e.
// The result has the window of d.
func (d Decimal) Sub(e Decimal) Decimal {
	return add(d, e, -1)
}

// add computes d + sign*e.
// Operand digits are written into one aligned buffer, each negated when its
// sign is negative; normalization then settles the sign of the result.
func add(d, e Decimal, sign int) Decimal {
	c := coefficient{inexact: d.inexact || e.inexact}

	// Alignment
	var lo, hi int
	switch {
	case d.IsZero() && e.IsZero():
		return c.normalize(d.Window())
	case d.IsZero():
		lo, hi = e.lo(), e.exp
	case e.IsZero():
		lo, hi = d.lo(), d.exp
	default:
		window := d.Window()
		if d.exp >= e.exp {
			e = sticky(e, d, window)
		} else {
			d = sticky(d, e, window)
		}
		lo, hi = min(d.lo(), e.lo()), max(d.exp, e.exp)
	}
	c.lo = lo
	c.digs = make([]int, hi-lo, hi-lo+1)

	c.accumulate(d, 1)
	c.accumulate(e, sign)
	return c.normalize(d.Window())
}

// sticky replaces small by a single unit digit of the same sign when all of
// its digits lie below both the rounding digit of the sum and the digits of
// big. Such an operand only decides whether the dropped tail is non-zero,
// so the rounded sum and the inexact flag are unchanged while the buffer
// stays within the width of big.
func sticky(small, big Decimal, window int) Decimal {
	edge := min(big.exp-window-2, big.lo())
	if small.exp > edge {
		return small
	}
	small.digits = []byte{1}
	small.exp = edge
	return small
}

func (c *coefficient) accumulate(d Decimal, sign int) {
	if d.neg {
		sign = -sign
	}
	shift := d.lo() - c.lo
	for i, v := range d.digits {
		c.digs[shift+i] += sign * int(v)
	}
}

// Mul returns the (possibly rounded) product of decimals d and e.
// The result has the window of d.
func (d Decimal) Mul(e Decimal) Decimal {
	c := coefficient{
		lo:      d.lo() + e.lo(),
		neg:     d.neg != e.neg,
		inexact: d.inexact || e.inexact,
	}
	if d.IsZero() || e.IsZero() {
		return coefficient{inexact: c.inexact}.normalize(d.Window())
	}

	// Schoolbook product
	c.digs = make([]int, len(d.digits)+len(e.digits))
	for i, x := range e.digits {
		if x == 0 {
			continue
		}
		for j, y := range d.digits {
			k := i + j
			c.digs[k] += int(x) * int(y)
			if c.digs[k] > 9 {
				c.digs[k+1] += c.digs[k] / 10
				c.digs[k] %= 10
			}
		}
	}
	return c.normalize(d.Window())
}

// Quo returns the (possibly rounded) quotient of decimals d and e.
// The result has the window of d.
// Long division stops once the remainder is exhausted or one digit more than
// the window has been produced; that last digit rounds the result half-up.
//
// Quo returns the special value [Undefined] if both d and e are 0,
// and [ComplexInfinity] if only e is 0.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, errDivisionByZero(d)
	}
	window := d.Window()
	if d.IsZero() {
		return coefficient{inexact: d.inexact || e.inexact}.normalize(window), nil
	}

	var (
		divisor = newNat(e.digits, 0)
		rem     nat
		quo     []int // most significant first
		first   = -1  // position of the first non-zero quotient digit
	)
	for i := 0; ; i++ {
		rem = rem.shiftIn(d.digit(i))
		var q int
		q, rem = rem.divDigit(divisor)
		quo = append(quo, q)
		if first < 0 && q != 0 {
			first = i
		}
		if i >= len(d.digits)-1 && rem.isZero() {
			break
		}
		if first >= 0 && i-first >= window {
			break
		}
	}

	c := coefficient{
		digs:    make([]int, len(quo), len(quo)+1),
		lo:      len(d.digits) - len(quo) + d.lo() - e.lo(),
		neg:     d.neg != e.neg,
		inexact: d.inexact || e.inexact || !rem.isZero(),
	}
	for i, q := range quo {
		c.digs[len(quo)-1-i] = q
	}
	return c.normalize(window), nil
}

// Rem returns the remainder of the floor division of d by e,
// that is d - e * floor(d / e).
// The remainder is 0 or has the sign of e, and its magnitude is less than
// the magnitude of e.
// The result has the window of d. Rounding to that window can bring the
// magnitude up to that of e when d is tiny and the signs differ.
//
// Rem returns the special value [Undefined] if both d and e are 0,
// and [ComplexInfinity] if only e is 0.
func (d Decimal) Rem(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, errDivisionByZero(d)
	}
	c := coefficient{inexact: d.inexact || e.inexact}
	if d.IsZero() {
		return c.normalize(d.Window()), nil
	}

	// Special case: |d| < |e|, the floor quotient is 0 or -1
	if cmpAbs(d, e) < 0 {
		if d.neg == e.neg {
			c.digs = d.coefficient().digs
			c.lo = d.lo()
			c.neg = e.neg
			return c.normalize(d.Window()), nil
		}
		r := e.Abs().WithWindow(d.Window()).Sub(d.Abs())
		r.neg = e.neg
		return r, nil
	}

	// Both magnitudes as integers of the finest common unit.
	// When d is the coarser one, d = x * 10^k and x * (10^k mod y) is reduced
	// instead of widening x by k zero digits.
	c.lo = min(d.lo(), e.lo())
	x := newNat(d.digits, 0)
	y := newNat(e.digits, e.lo()-c.lo)

	r := x.rem(y)
	if k := d.lo() - c.lo; k > 0 && !r.isZero() {
		r = r.mul(pow10Mod(k, y)).rem(y)
	}
	if !r.isZero() && d.neg != e.neg {
		r = y.sub(r)
	}
	c.digs = r
	c.neg = e.neg
	return c.normalize(d.Window()), nil
}

// QuoRem returns the floor quotient q and the remainder r of decimals d and e
// such that d = q * e + r, where q is an integer and r is as in [Decimal.Rem].
//
// QuoRem returns the same special values as [Decimal.Quo].
func (d Decimal) QuoRem(e Decimal) (q, r Decimal, err error) {
	r, err = d.Rem(e)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	q, err = d.Sub(r).Quo(e)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	return q, r, nil
}

// Inc returns d + 1.
func (d Decimal) Inc() Decimal {
	return d.step(1)
}

// Dec returns d - 1.
func (d Decimal) Dec() Decimal {
	return d.step(-1)
}

// step adds delta to the units digit in place when the units place is
// stored, and falls back to addition otherwise.
func (d Decimal) step(delta int) Decimal {
	lo := d.lo()
	if lo > 0 || d.exp <= 0 {
		return d.Add(Window(d.window).New(int64(delta)))
	}
	c := d.coefficient()
	if d.neg {
		delta = -delta
	}
	c.digs[-lo] += delta
	return c.normalize(d.Window())
}
