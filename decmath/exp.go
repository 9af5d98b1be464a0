package decmath

import (
	"github.com/cockroachdb/errors"

	"github.com/decwindow/decimal"
)

// Exp returns e raised to the power of x using the default context.
func Exp(x decimal.Decimal) (decimal.Decimal, error) {
	return Context{}.Exp(x)
}

// Ln returns the natural logarithm of x using the default context.
func Ln(x decimal.Decimal) (decimal.Decimal, error) {
	return Context{}.Ln(x)
}

// Log2 returns the binary logarithm of x using the default context.
func Log2(x decimal.Decimal) (decimal.Decimal, error) {
	return Context{}.Log2(x)
}

// Log10 returns the decimal logarithm of x using the default context.
func Log10(x decimal.Decimal) (decimal.Decimal, error) {
	return Context{}.Log10(x)
}

// Log returns the logarithm of x to the given base using the default context.
func Log(base, x decimal.Decimal) (decimal.Decimal, error) {
	return Context{}.Log(base, x)
}

// Pow returns x raised to the power of y using the default context.
func Pow(x, y decimal.Decimal) (decimal.Decimal, error) {
	return Context{}.Pow(x, y)
}

// Sqrt returns the square root of x using the default context.
func Sqrt(x decimal.Decimal) (decimal.Decimal, error) {
	return Context{}.Sqrt(x)
}

// Exp returns e raised to the power of x.
// It sums the Taylor series of e^x until a term drops below the context's
// epsilon. Negative arguments are computed as 1 / e^-x to avoid
// cancellation between terms of alternating sign.
func (c Context) Exp(x decimal.Decimal) (decimal.Decimal, error) {
	eps, err := c.epsilon()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return c.exp(x, eps)
}

func (c Context) exp(x, eps decimal.Decimal) (decimal.Decimal, error) {
	if !x.IsNeg() {
		return c.expSeries(x, eps)
	}
	y, err := c.expSeries(x.Neg(), eps)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return windowOf(x).New(1).Quo(y)
}

func (c Context) expSeries(x, eps decimal.Decimal) (decimal.Decimal, error) {
	w := windowOf(x)
	term := w.New(1)
	sum := term
	for n := int64(1); n <= int64(c.limit()); n++ {
		term = term.Mul(x).MustQuo(w.New(n))
		sum = sum.Add(term)
		if term.Abs().Less(eps) {
			return sum, nil
		}
	}
	return decimal.Decimal{}, c.errNoConvergence("exp", x)
}

// Ln returns the natural logarithm of x.
// The argument is split as m * 10^k with 1 <= m < 10; ln(m) is found with
// the Newton iteration y = y + 2(m - e^y) / (m + e^y) seeded with m - 1,
// and k * ln(10) is added back.
//
// Ln returns the special value [decimal.NegativeInfinity] if x is 0 and an
// error wrapping [decimal.ErrDomain] if x is negative.
func (c Context) Ln(x decimal.Decimal) (decimal.Decimal, error) {
	eps, err := c.epsilon()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return c.ln(x, eps)
}

func (c Context) ln(x, eps decimal.Decimal) (decimal.Decimal, error) {
	switch x.Sign() {
	case 0:
		return decimal.Decimal{}, errors.Wrap(decimal.NegativeInfinity, "ln(0)")
	case -1:
		return decimal.Decimal{}, errors.Wrapf(decimal.ErrDomain, "ln(%v)", x)
	}
	w := windowOf(x)
	k := x.Exponent() - 1
	y, err := c.newtonLn(x.Shift(-k), eps)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if k == 0 {
		return y, nil
	}
	ln10, err := c.ln10(w, eps)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return y.Add(ln10.Mul(w.New(int64(k)))), nil
}

// newtonLn solves e^y = x for a positive x.
func (c Context) newtonLn(x, eps decimal.Decimal) (decimal.Decimal, error) {
	w := windowOf(x)
	one, two := w.New(1), w.New(2)
	if x.Equal(one) {
		return w.New(0), nil
	}
	y := x.Sub(one)
	for i := 0; i < c.limit(); i++ {
		e, err := c.exp(y, eps)
		if err != nil {
			return decimal.Decimal{}, err
		}
		next := y.Add(x.Sub(e).Mul(two).MustQuo(x.Add(e)))
		if next.Sub(y).Abs().Less(eps) {
			return next, nil
		}
		y = next
	}
	return decimal.Decimal{}, c.errNoConvergence("ln", x)
}

// Log2 returns the binary logarithm of x, ln(x) / ln(2).
func (c Context) Log2(x decimal.Decimal) (decimal.Decimal, error) {
	eps, err := c.epsilon()
	if err != nil {
		return decimal.Decimal{}, err
	}
	lnx, err := c.ln(x, eps)
	if err != nil {
		return decimal.Decimal{}, err
	}
	ln2, err := c.ln2(windowOf(x), eps)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return lnx.Quo(ln2)
}

// Log10 returns the decimal logarithm of x, ln(x) / ln(10).
func (c Context) Log10(x decimal.Decimal) (decimal.Decimal, error) {
	eps, err := c.epsilon()
	if err != nil {
		return decimal.Decimal{}, err
	}
	lnx, err := c.ln(x, eps)
	if err != nil {
		return decimal.Decimal{}, err
	}
	ln10, err := c.ln10(windowOf(x), eps)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return lnx.Quo(ln10)
}

// Log returns the logarithm of x to the given base, ln(x) / ln(base).
// A base of 1 yields the special value [decimal.ComplexInfinity], or
// [decimal.Undefined] when x is 1 as well.
func (c Context) Log(base, x decimal.Decimal) (decimal.Decimal, error) {
	eps, err := c.epsilon()
	if err != nil {
		return decimal.Decimal{}, err
	}
	lnx, err := c.ln(x, eps)
	if err != nil {
		return decimal.Decimal{}, err
	}
	lnb, err := c.ln(base.WithWindow(x.Window()), eps)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return lnx.Quo(lnb)
}

// Pow returns x raised to the power of y.
// Integer powers are computed by repeated squaring, negative ones as the
// inverse of the positive power. Other powers are computed as e^(y ln x),
// which requires a positive x.
//
// Pow returns:
//   - the special value [decimal.Undefined] if both x and y are 0;
//   - the special value [decimal.ComplexInfinity] if x is 0 and y is negative;
//   - an error wrapping [decimal.ErrDomain] if x is negative and y is not
//     an integer.
func (c Context) Pow(x, y decimal.Decimal) (decimal.Decimal, error) {
	eps, err := c.epsilon()
	if err != nil {
		return decimal.Decimal{}, err
	}
	w := windowOf(x)

	// Special cases
	switch {
	case x.IsZero() && y.IsZero():
		return decimal.Decimal{}, errors.Wrap(decimal.Undefined, "0^0")
	case x.IsZero() && y.IsNeg():
		return decimal.Decimal{}, errors.Wrapf(decimal.ComplexInfinity, "0^%v", y)
	case x.IsZero():
		return w.New(0), nil
	case y.IsZero():
		return w.New(1), nil
	}

	// Integer powers
	if y.IsInt() {
		if n, err := y.Int64(); err == nil {
			return powInt(x, n)
		}
	}

	// Other powers
	if x.IsNeg() {
		return decimal.Decimal{}, errors.Wrapf(decimal.ErrDomain, "%v^%v", x, y)
	}
	lnx, err := c.ln(x, eps)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return c.exp(lnx.Mul(y), eps)
}

// powInt computes x^n by repeated squaring for a non-zero x.
func powInt(x decimal.Decimal, n int64) (decimal.Decimal, error) {
	w := windowOf(x)
	u := uint64(n)
	if n < 0 {
		u = -u
	}
	res, base := w.New(1), x
	for u > 0 {
		if u&1 == 1 {
			res = res.Mul(base)
		}
		u >>= 1
		if u > 0 {
			base = base.Mul(base)
		}
	}
	if n < 0 {
		return w.New(1).Quo(res)
	}
	return res, nil
}

// Sqrt returns the square root of x, found with Newton's iteration
// y = (y + x / y) / 2 seeded with a power of ten close to the root.
// Sqrt returns an error wrapping [decimal.ErrDomain] if x is negative.
func (c Context) Sqrt(x decimal.Decimal) (decimal.Decimal, error) {
	eps, err := c.epsilon()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return c.sqrt(x, eps)
}

func (c Context) sqrt(x, eps decimal.Decimal) (decimal.Decimal, error) {
	switch x.Sign() {
	case 0:
		return x, nil
	case -1:
		return decimal.Decimal{}, errors.Wrapf(decimal.ErrDomain, "sqrt(%v)", x)
	}
	w := windowOf(x)
	half := w.New(5).Shift(-1)
	y := w.New(1).Shift(x.Exponent() / 2)
	for i := 0; i < c.limit(); i++ {
		next := y.Add(x.MustQuo(y)).Mul(half)
		if next.Sub(y).Abs().Less(eps) {
			return next, nil
		}
		y = next
	}
	return decimal.Decimal{}, c.errNoConvergence("sqrt", x)
}
