package decimal

import "github.com/cockroachdb/errors"

// Special is a result outside the finite decimal domain, such as the
// quotient of a non-zero number and zero.
// Operations report special results as errors so that callers can never
// mistake them for ordinary numbers; use [AsSpecial] or [errors.Is] to
// branch on them.
type Special struct {
	name   string
	symbol string
}

// Name returns the name of the special value, for example "ComplexInfinity".
func (s *Special) Name() string {
	return s.name
}

// Symbol returns the display symbol of the special value, for example "∞~".
func (s *Special) Symbol() string {
	return s.symbol
}

func (s *Special) Error() string {
	return s.name
}

// Special values.
var (
	ComplexInfinity  = &Special{name: "ComplexInfinity", symbol: "∞~"}
	NegativeInfinity = &Special{name: "NegativeInfinity", symbol: "-∞"}
	PositiveInfinity = &Special{name: "PositiveInfinity", symbol: "∞"}
	Undefined        = &Special{name: "Undefined", symbol: "0 ∞"}
)

// Errors that are not special values.
var (
	ErrDomain          = errors.New("argument outside of function domain")
	ErrParse           = errors.New("invalid decimal text")
	ErrValueOutOfRange = errors.New("value out of range")
)

// AsSpecial reports whether err carries a special value and returns it.
func AsSpecial(err error) (*Special, bool) {
	var s *Special
	if errors.As(err, &s) {
		return s, true
	}
	return nil, false
}

func errDivisionByZero(d Decimal) error {
	if d.IsZero() {
		return errors.Wrapf(Undefined, "%v / 0", d)
	}
	return errors.Wrapf(ComplexInfinity, "%v / 0", d)
}
