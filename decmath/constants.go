package decmath

import (
	"fmt"

	"github.com/decwindow/decimal"
)

// Pi returns π rounded to the given window.
// See [Context.Pi].
func Pi(window int) (decimal.Decimal, error) {
	return Context{}.Pi(window)
}

// E returns Euler's number rounded to the given window.
// See [Context.E].
func E(window int) (decimal.Decimal, error) {
	return Context{}.E(window)
}

// Ln2 returns the natural logarithm of 2 rounded to the given window.
func Ln2(window int) (decimal.Decimal, error) {
	return Context{}.Ln2(window)
}

// Ln10 returns the natural logarithm of 10 rounded to the given window.
func Ln10(window int) (decimal.Decimal, error) {
	return Context{}.Ln10(window)
}

// Phi returns the golden ratio rounded to the given window.
func Phi(window int) (decimal.Decimal, error) {
	return Context{}.Phi(window)
}

// Pi returns π rounded to the given window.
// Windows of up to 1024 digits are served from a precomputed table;
// wider windows compute π with Machin's formula to the precision of
// the context.
func (c Context) Pi(window int) (decimal.Decimal, error) {
	eps, err := c.epsilon()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return c.pi(windowFor(window), eps)
}

// E returns Euler's number rounded to the given window.
// Wider windows than the table compute exp(1).
func (c Context) E(window int) (decimal.Decimal, error) {
	eps, err := c.epsilon()
	if err != nil {
		return decimal.Decimal{}, err
	}
	w := windowFor(window)
	if d, ok := fromTable(eText, w); ok {
		return d, nil
	}
	return c.exp(w.New(1), eps)
}

// Ln2 returns the natural logarithm of 2 rounded to the given window.
func (c Context) Ln2(window int) (decimal.Decimal, error) {
	eps, err := c.epsilon()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return c.ln2(windowFor(window), eps)
}

// Ln10 returns the natural logarithm of 10 rounded to the given window.
func (c Context) Ln10(window int) (decimal.Decimal, error) {
	eps, err := c.epsilon()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return c.ln10(windowFor(window), eps)
}

// Phi returns the golden ratio rounded to the given window.
func (c Context) Phi(window int) (decimal.Decimal, error) {
	eps, err := c.epsilon()
	if err != nil {
		return decimal.Decimal{}, err
	}
	w := windowFor(window)
	if d, ok := fromTable(phiText, w); ok {
		return d, nil
	}
	root, err := c.sqrt(w.New(5), eps)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return root.Inc().Quo(w.New(2))
}

func (c Context) pi(w decimal.Window, eps decimal.Decimal) (decimal.Decimal, error) {
	if d, ok := fromTable(piText, w); ok {
		return d, nil
	}
	// π = 16 arctan(1/5) - 4 arctan(1/239)
	a, err := c.atanInv(w, 5, eps)
	if err != nil {
		return decimal.Decimal{}, err
	}
	b, err := c.atanInv(w, 239, eps)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return a.Mul(w.New(16)).Sub(b.Mul(w.New(4))), nil
}

func (c Context) ln2(w decimal.Window, eps decimal.Decimal) (decimal.Decimal, error) {
	if d, ok := fromTable(ln2Text, w); ok {
		return d, nil
	}
	return c.newtonLn(w.New(2), eps)
}

func (c Context) ln10(w decimal.Window, eps decimal.Decimal) (decimal.Decimal, error) {
	if d, ok := fromTable(ln10Text, w); ok {
		return d, nil
	}
	return c.newtonLn(w.New(10), eps)
}

// atanInv returns arctan(1/n) computed from its Taylor series.
func (c Context) atanInv(w decimal.Window, n int64, eps decimal.Decimal) (decimal.Decimal, error) {
	x := w.New(1).MustQuo(w.New(n))
	xx := x.Mul(x).Neg()
	power, sum := x, x
	for k := int64(1); k <= int64(c.limit()); k++ {
		power = power.Mul(xx)
		term := power.MustQuo(w.New(2*k + 1))
		sum = sum.Add(term)
		if term.Abs().Less(eps) {
			return sum, nil
		}
	}
	return decimal.Decimal{}, c.errNoConvergence("atan", x)
}

func fromTable(text string, w decimal.Window) (decimal.Decimal, bool) {
	if int(w) > tableDigits {
		return decimal.Decimal{}, false
	}
	d, err := w.Parse(text)
	if err != nil {
		panic(fmt.Sprintf("parsing constant table failed: %v", err))
	}
	return d, true
}

func windowFor(window int) decimal.Window {
	if window < 1 {
		return decimal.DefaultWindow
	}
	return decimal.Window(window)
}
