/*
Package decmath implements elementary functions over windowed decimals.

Every function is a convergent iteration built from the arithmetic of
package [decimal]; no floating-point transcendentals are involved.
Results are computed in the window of the (first) argument, so widening
the argument with [decimal.Decimal.WithWindow] widens the result.

# Context

Iterations are controlled by a [Context]:

  - Epsilon: a series stops once the magnitude of its last term is below
    Epsilon; a Newton iteration stops once two successive approximations
    differ by less than Epsilon.
  - MaxIterations: every loop gives up with [ErrNoConvergence] after this
    many steps.

The zero value of [Context] selects [DefaultEpsilon] and
[DefaultMaxIterations], and the package-level functions use it:

	y, err := decmath.Exp(x)                      // default context
	y, err := decmath.Context{Epsilon: eps}.Exp(x) // custom threshold

# Functions

  - exponential and logarithms:
    [Exp], [Ln], [Log2], [Log10], [Log], [Pow], [Sqrt].
  - trigonometry:
    [Sin], [Cos], [Tan], [Ctan], [Asin], [Acos].
  - rounding to a grid or to significant digits:
    [Round], [Ceil], [Floor], [RoundDigits], [CeilDigits], [FloorDigits].
  - integers:
    [Factorial], [PrimeFactorization], [Sum], [Abs].
  - constants:
    [Pi], [E], [Ln2], [Ln10], [Phi].

Constants are served from 1024-digit tables and computed on the fly for
wider windows.

# Errors

Results outside the finite decimal domain are reported as the special
values of package [decimal], for example [decimal.NegativeInfinity] for
Ln(0). Arguments outside a function's domain yield errors wrapping
[decimal.ErrDomain].
*/
package decmath
