package decmath

import (
	"github.com/cockroachdb/errors"

	"github.com/decwindow/decimal"
)

// Abs returns the absolute value of x.
func Abs(x decimal.Decimal) decimal.Decimal {
	return x.Abs()
}

// Sum returns the (possibly rounded) sum of xs in the window of the first
// argument. The sum of no arguments is 0.
func Sum(xs ...decimal.Decimal) decimal.Decimal {
	var sum decimal.Decimal
	for i, x := range xs {
		if i == 0 {
			sum = x
			continue
		}
		sum = sum.Add(x)
	}
	return sum
}

// Factorial returns n! using the default context.
func Factorial(n decimal.Decimal) (decimal.Decimal, error) {
	return Context{}.Factorial(n)
}

// PrimeFactorization returns the prime factors of x using the default
// context.
func PrimeFactorization(x decimal.Decimal) ([]decimal.Decimal, error) {
	return Context{}.PrimeFactorization(x)
}

// Factorial returns the (possibly rounded) product 1 * 2 * ... * n.
//
// Factorial returns an error wrapping [decimal.ErrDomain] if n is not a
// positive integer, and [ErrNoConvergence] if n exceeds the iteration limit
// of the context.
func (c Context) Factorial(n decimal.Decimal) (decimal.Decimal, error) {
	if !n.IsPos() || !n.IsInt() {
		return decimal.Decimal{}, errors.Wrapf(decimal.ErrDomain, "factorial(%v)", n)
	}
	k, err := n.Int64()
	if err != nil || k > int64(c.limit()) {
		return decimal.Decimal{}, c.errNoConvergence("factorial", n)
	}
	w := windowOf(n)
	f := w.New(1)
	for i := int64(2); i <= k; i++ {
		f = f.Mul(w.New(i))
	}
	return f, nil
}

// PrimeFactorization returns the prime factors of x in ascending order,
// each repeated according to its multiplicity. The factorization of 1 is
// empty.
//
// Candidates are 2 followed by the odd numbers, tried until the square of
// the candidate exceeds the remaining cofactor; each candidate counts
// against the iteration limit of the context.
//
// PrimeFactorization returns an error wrapping [decimal.ErrDomain] if x is
// not a positive integer, and [ErrNoConvergence] if the iteration limit is
// reached.
func (c Context) PrimeFactorization(x decimal.Decimal) ([]decimal.Decimal, error) {
	if !x.IsPos() || !x.IsInt() {
		return nil, errors.Wrapf(decimal.ErrDomain, "prime factorization of %v", x)
	}
	w := windowOf(x)
	var (
		factors []decimal.Decimal
		two     = w.New(2)
		p       = two
	)
	for i := 0; p.Mul(p).LessOrEqual(x); i++ {
		if i >= c.limit() {
			return nil, c.errNoConvergence("prime factorization", x)
		}
		for x.MustRem(p).IsZero() {
			factors = append(factors, p)
			x = x.MustQuo(p)
		}
		if p.Equal(two) {
			p = p.Inc()
		} else {
			p = p.Add(two)
		}
	}
	if x.CmpInt64(1) > 0 {
		factors = append(factors, x)
	}
	return factors, nil
}
