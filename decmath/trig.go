package decmath

import (
	"github.com/cockroachdb/errors"

	"github.com/decwindow/decimal"
)

// Sin returns the sine of x (in radians) using the default context.
func Sin(x decimal.Decimal) (decimal.Decimal, error) {
	return Context{}.Sin(x)
}

// Cos returns the cosine of x (in radians) using the default context.
func Cos(x decimal.Decimal) (decimal.Decimal, error) {
	return Context{}.Cos(x)
}

// Tan returns the tangent of x (in radians) using the default context.
func Tan(x decimal.Decimal) (decimal.Decimal, error) {
	return Context{}.Tan(x)
}

// Ctan returns the cotangent of x (in radians) using the default context.
func Ctan(x decimal.Decimal) (decimal.Decimal, error) {
	return Context{}.Ctan(x)
}

// Asin returns the arcsine of x using the default context.
func Asin(x decimal.Decimal) (decimal.Decimal, error) {
	return Context{}.Asin(x)
}

// Acos returns the arccosine of x using the default context.
func Acos(x decimal.Decimal) (decimal.Decimal, error) {
	return Context{}.Acos(x)
}

// Sin returns the sine of x (in radians).
// The argument is reduced into [-π, π] before the Taylor series is summed.
func (c Context) Sin(x decimal.Decimal) (decimal.Decimal, error) {
	s, _, err := c.sincos(x)
	return s, err
}

// Cos returns the cosine of x (in radians).
// The argument is reduced into [-π, π] before the Taylor series is summed.
func (c Context) Cos(x decimal.Decimal) (decimal.Decimal, error) {
	_, k, err := c.sincos(x)
	return k, err
}

// Tan returns the tangent of x (in radians), sin(x) / cos(x).
// Tan returns the special value [decimal.ComplexInfinity] if the magnitude
// of the cosine is below the context's epsilon.
func (c Context) Tan(x decimal.Decimal) (decimal.Decimal, error) {
	s, k, err := c.sincos(x)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return c.ratio("tan", x, s, k)
}

// Ctan returns the cotangent of x (in radians), cos(x) / sin(x).
// Ctan returns the special value [decimal.ComplexInfinity] if the magnitude
// of the sine is below the context's epsilon.
func (c Context) Ctan(x decimal.Decimal) (decimal.Decimal, error) {
	s, k, err := c.sincos(x)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return c.ratio("ctan", x, k, s)
}

func (c Context) ratio(fn string, x, num, den decimal.Decimal) (decimal.Decimal, error) {
	eps, err := c.epsilon()
	if err != nil {
		return decimal.Decimal{}, err
	}
	if den.Abs().Less(eps) {
		return decimal.Decimal{}, errors.Wrapf(decimal.ComplexInfinity, "%v(%v)", fn, x)
	}
	return num.Quo(den)
}

// sincos sums the sine and cosine series in lockstep and stops once the
// terms of both series are below epsilon.
func (c Context) sincos(x decimal.Decimal) (sin, cos decimal.Decimal, err error) {
	eps, err := c.epsilon()
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	w := windowOf(x)
	x, err = c.reduce(x, eps)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}

	xx := x.Mul(x).Neg()
	sterm, cterm := x, w.New(1)
	sin, cos = sterm, cterm
	for k := int64(1); k <= int64(c.limit()); k++ {
		sterm = sterm.Mul(xx).MustQuo(w.New((2 * k) * (2*k + 1)))
		cterm = cterm.Mul(xx).MustQuo(w.New((2*k - 1) * (2 * k)))
		sin = sin.Add(sterm)
		cos = cos.Add(cterm)
		if sterm.Abs().Less(eps) && cterm.Abs().Less(eps) {
			return sin, cos, nil
		}
	}
	return decimal.Decimal{}, decimal.Decimal{}, c.errNoConvergence("sincos", x)
}

// reduce maps x into [-π, π] modulo 2π.
func (c Context) reduce(x, eps decimal.Decimal) (decimal.Decimal, error) {
	w := windowOf(x)
	pi, err := c.pi(w, eps)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if x.Abs().LessOrEqual(pi) {
		return x, nil
	}
	tau := pi.Mul(w.New(2))
	r := x.MustRem(tau)
	if r.Greater(pi) {
		r = r.Sub(tau)
	}
	return r, nil
}

// Asin returns the arcsine of x in radians, in the range [-π/2, π/2].
// For |x| <= 0.7 the Taylor series is summed directly; larger arguments use
// asin(x) = π/2 - asin(sqrt(1 - x²)), which keeps the series argument small.
//
// Asin returns an error wrapping [decimal.ErrDomain] if |x| > 1.
func (c Context) Asin(x decimal.Decimal) (decimal.Decimal, error) {
	eps, err := c.epsilon()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return c.asin(x, eps)
}

func (c Context) asin(x, eps decimal.Decimal) (decimal.Decimal, error) {
	w := windowOf(x)
	one := w.New(1)
	a := x.Abs()
	switch {
	case a.Greater(one):
		return decimal.Decimal{}, errors.Wrapf(decimal.ErrDomain, "asin(%v)", x)
	case a.LessOrEqual(w.New(7).Shift(-1)):
		return c.asinSeries(x, eps)
	}

	pi, err := c.pi(w, eps)
	if err != nil {
		return decimal.Decimal{}, err
	}
	halfPi := pi.MustQuo(w.New(2))
	root, err := c.sqrt(one.Sub(a.Mul(a)), eps)
	if err != nil {
		return decimal.Decimal{}, err
	}
	y, err := c.asinSeries(root, eps)
	if err != nil {
		return decimal.Decimal{}, err
	}
	y = halfPi.Sub(y)
	if x.IsNeg() {
		y = y.Neg()
	}
	return y, nil
}

// asinSeries sums asin(x) = Σ (2n)! / (4^n (n!)^2 (2n+1)) x^(2n+1).
func (c Context) asinSeries(x, eps decimal.Decimal) (decimal.Decimal, error) {
	w := windowOf(x)
	xx := x.Mul(x)
	power, coef, sum := x, w.New(1), x
	for n := int64(1); n <= int64(c.limit()); n++ {
		power = power.Mul(xx)
		coef = coef.Mul(w.New(2*n - 1)).MustQuo(w.New(2 * n))
		term := coef.Mul(power).MustQuo(w.New(2*n + 1))
		sum = sum.Add(term)
		if term.Abs().Less(eps) {
			return sum, nil
		}
	}
	return decimal.Decimal{}, c.errNoConvergence("asin", x)
}

// Acos returns the arccosine of x in radians, π/2 - asin(x), in the range
// [0, π].
//
// Acos returns an error wrapping [decimal.ErrDomain] if |x| > 1.
func (c Context) Acos(x decimal.Decimal) (decimal.Decimal, error) {
	eps, err := c.epsilon()
	if err != nil {
		return decimal.Decimal{}, err
	}
	y, err := c.asin(x, eps)
	if err != nil {
		return decimal.Decimal{}, errors.Wrap(err, "acos")
	}
	w := windowOf(x)
	pi, err := c.pi(w, eps)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return pi.MustQuo(w.New(2)).Sub(y), nil
}
