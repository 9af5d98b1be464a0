package decmath

import (
	"github.com/cockroachdb/errors"

	"github.com/decwindow/decimal"
)

// DefaultMaxIterations is the iteration limit of a [Context] that does not
// set one.
const DefaultMaxIterations = 100_000

// DefaultEpsilon is the convergence threshold of a [Context] that does not
// set one.
var DefaultEpsilon = decimal.MustParse("0.0000000001")

// ErrNoConvergence is returned when an iteration does not reach its
// convergence threshold within the iteration limit.
var ErrNoConvergence = errors.New("no convergence within iteration limit")

// Context holds the parameters of iterative computations.
// The zero value is ready to use and selects [DefaultEpsilon] and
// [DefaultMaxIterations].
//
// Functions compute in the window of their (first) argument; see
// [decimal.Window].
type Context struct {
	// Epsilon is the convergence threshold: a series stops once the magnitude
	// of its last term is below Epsilon, an iteration once two successive
	// approximations differ by less than Epsilon.
	// Zero selects DefaultEpsilon; negative values are rejected.
	Epsilon decimal.Decimal

	// MaxIterations bounds every loop.
	// Zero or negative values select DefaultMaxIterations.
	MaxIterations int
}

// NewContext returns a context with the given convergence threshold.
// NewContext returns an error wrapping [decimal.ErrDomain] if eps is not
// positive.
func NewContext(eps decimal.Decimal) (Context, error) {
	if eps.Sign() <= 0 {
		return Context{}, errors.Wrapf(decimal.ErrDomain, "epsilon %v is not positive", eps)
	}
	return Context{Epsilon: eps}, nil
}

func (c Context) epsilon() (decimal.Decimal, error) {
	switch c.Epsilon.Sign() {
	case 0:
		return DefaultEpsilon, nil
	case -1:
		return decimal.Decimal{}, errors.Wrapf(decimal.ErrDomain, "epsilon %v is not positive", c.Epsilon)
	}
	return c.Epsilon, nil
}

func (c Context) limit() int {
	if c.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return c.MaxIterations
}

func (c Context) errNoConvergence(fn string, x decimal.Decimal) error {
	return errors.Wrapf(ErrNoConvergence, "%v(%v) after %v iterations", fn, x, c.limit())
}

// windowOf returns the window in which computations on x take place.
func windowOf(x decimal.Decimal) decimal.Window {
	return decimal.Window(x.Window())
}
