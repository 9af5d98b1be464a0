package decmath

import (
	"github.com/cockroachdb/errors"

	"github.com/decwindow/decimal"
)

// Floor returns the largest multiple of step that is less than or equal
// to x. Floor returns an error wrapping [decimal.ErrDomain] if step is not
// positive.
func Floor(x, step decimal.Decimal) (decimal.Decimal, error) {
	f, _, err := grid(x, step)
	return f, err
}

// Ceil returns the smallest multiple of step that is greater than or equal
// to x. Ceil returns an error wrapping [decimal.ErrDomain] if step is not
// positive.
func Ceil(x, step decimal.Decimal) (decimal.Decimal, error) {
	f, r, err := grid(x, step)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if r.IsZero() {
		return f, nil
	}
	return f.Add(step), nil
}

// Round returns the multiple of step nearest to x.
// Halfway values are rounded up, towards positive infinity:
//
//	Round(2.5, 1)  = 3
//	Round(-2.5, 1) = -2
//
// Round returns an error wrapping [decimal.ErrDomain] if step is not
// positive.
func Round(x, step decimal.Decimal) (decimal.Decimal, error) {
	f, r, err := grid(x, step)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if r.Add(r).GreaterOrEqual(step) {
		return f.Add(step), nil
	}
	return f, nil
}

// grid splits x into the floor multiple of step and the remainder.
func grid(x, step decimal.Decimal) (floor, rem decimal.Decimal, err error) {
	if step.Sign() <= 0 {
		return decimal.Decimal{}, decimal.Decimal{}, errors.Wrapf(decimal.ErrDomain, "step %v is not positive", step)
	}
	rem, err = x.Rem(step)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	return x.Sub(rem), rem, nil
}

// FloorDigits is like [Floor] but keeps the given number of significant
// digits of x. It returns an error wrapping [decimal.ErrDomain] if digits
// is not positive.
func FloorDigits(x decimal.Decimal, digits int) (decimal.Decimal, error) {
	step, err := digitStep(x, digits)
	switch {
	case err != nil:
		return decimal.Decimal{}, err
	case x.IsZero():
		return x, nil
	}
	return Floor(x, step)
}

// CeilDigits is like [Ceil] but keeps the given number of significant
// digits of x. It returns an error wrapping [decimal.ErrDomain] if digits
// is not positive.
func CeilDigits(x decimal.Decimal, digits int) (decimal.Decimal, error) {
	step, err := digitStep(x, digits)
	switch {
	case err != nil:
		return decimal.Decimal{}, err
	case x.IsZero():
		return x, nil
	}
	return Ceil(x, step)
}

// RoundDigits is like [Round] but keeps the given number of significant
// digits of x:
//
//	RoundDigits(27.5, 1)   = 30
//	RoundDigits(0.0123, 2) = 0.012
//
// It returns an error wrapping [decimal.ErrDomain] if digits is not
// positive.
func RoundDigits(x decimal.Decimal, digits int) (decimal.Decimal, error) {
	step, err := digitStep(x, digits)
	switch {
	case err != nil:
		return decimal.Decimal{}, err
	case x.IsZero():
		return x, nil
	}
	return Round(x, step)
}

// digitStep returns the grid step 10^(exponent - digits) of x.
func digitStep(x decimal.Decimal, digits int) (decimal.Decimal, error) {
	if digits <= 0 {
		return decimal.Decimal{}, errors.Wrapf(decimal.ErrDomain, "%v significant digits", digits)
	}
	return windowOf(x).New(1).Shift(x.Exponent() - digits), nil
}
