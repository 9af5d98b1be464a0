package cli

import (
	"strings"

	"github.com/decwindow/decimal"
	"github.com/decwindow/decimal/decmath"
)

// operation is a calculator command that maps decimal operands to a result.
type operation struct {
	name  string
	args  []string // operand names, for usage
	short string
	eval  func(c decmath.Context, w int, x []decimal.Decimal) (string, error)
}

func unary(f func(decmath.Context, decimal.Decimal) (decimal.Decimal, error)) func(decmath.Context, int, []decimal.Decimal) (string, error) {
	return func(c decmath.Context, _ int, x []decimal.Decimal) (string, error) {
		return str(f(c, x[0]))
	}
}

func binary(f func(decmath.Context, decimal.Decimal, decimal.Decimal) (decimal.Decimal, error)) func(decmath.Context, int, []decimal.Decimal) (string, error) {
	return func(c decmath.Context, _ int, x []decimal.Decimal) (string, error) {
		return str(f(c, x[0], x[1]))
	}
}

func constant(f func(decmath.Context, int) (decimal.Decimal, error)) func(decmath.Context, int, []decimal.Decimal) (string, error) {
	return func(c decmath.Context, w int, _ []decimal.Decimal) (string, error) {
		return str(f(c, w))
	}
}

func digits(f func(decimal.Decimal, int) (decimal.Decimal, error)) func(decmath.Context, int, []decimal.Decimal) (string, error) {
	return func(_ decmath.Context, _ int, x []decimal.Decimal) (string, error) {
		n, err := x[1].Int64()
		if err != nil {
			return "", err
		}
		return str(f(x[0], int(n)))
	}
}

func str(d decimal.Decimal, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

var operations = []operation{
	{
		name: "add", args: []string{"x", "y"}, short: "x + y",
		eval: binary(func(_ decmath.Context, x, y decimal.Decimal) (decimal.Decimal, error) { return x.Add(y), nil }),
	},
	{
		name: "sub", args: []string{"x", "y"}, short: "x - y",
		eval: binary(func(_ decmath.Context, x, y decimal.Decimal) (decimal.Decimal, error) { return x.Sub(y), nil }),
	},
	{
		name: "mul", args: []string{"x", "y"}, short: "x * y",
		eval: binary(func(_ decmath.Context, x, y decimal.Decimal) (decimal.Decimal, error) { return x.Mul(y), nil }),
	},
	{
		name: "quo", args: []string{"x", "y"}, short: "x / y",
		eval: binary(func(_ decmath.Context, x, y decimal.Decimal) (decimal.Decimal, error) { return x.Quo(y) }),
	},
	{
		name: "rem", args: []string{"x", "y"}, short: "x mod y, with the sign of y",
		eval: binary(func(_ decmath.Context, x, y decimal.Decimal) (decimal.Decimal, error) { return x.Rem(y) }),
	},
	{name: "exp", args: []string{"x"}, short: "e^x", eval: unary(decmath.Context.Exp)},
	{name: "ln", args: []string{"x"}, short: "natural logarithm of x", eval: unary(decmath.Context.Ln)},
	{name: "log2", args: []string{"x"}, short: "binary logarithm of x", eval: unary(decmath.Context.Log2)},
	{name: "log10", args: []string{"x"}, short: "decimal logarithm of x", eval: unary(decmath.Context.Log10)},
	{name: "log", args: []string{"base", "x"}, short: "logarithm of x to base", eval: binary(decmath.Context.Log)},
	{name: "pow", args: []string{"x", "y"}, short: "x^y", eval: binary(decmath.Context.Pow)},
	{name: "sqrt", args: []string{"x"}, short: "square root of x", eval: unary(decmath.Context.Sqrt)},
	{name: "sin", args: []string{"x"}, short: "sine of x radians", eval: unary(decmath.Context.Sin)},
	{name: "cos", args: []string{"x"}, short: "cosine of x radians", eval: unary(decmath.Context.Cos)},
	{name: "tan", args: []string{"x"}, short: "tangent of x radians", eval: unary(decmath.Context.Tan)},
	{name: "ctan", args: []string{"x"}, short: "cotangent of x radians", eval: unary(decmath.Context.Ctan)},
	{name: "asin", args: []string{"x"}, short: "arcsine of x", eval: unary(decmath.Context.Asin)},
	{name: "acos", args: []string{"x"}, short: "arccosine of x", eval: unary(decmath.Context.Acos)},
	{
		name: "round", args: []string{"x", "step"}, short: "x rounded half-up to a multiple of step",
		eval: binary(func(_ decmath.Context, x, s decimal.Decimal) (decimal.Decimal, error) { return decmath.Round(x, s) }),
	},
	{
		name: "ceil", args: []string{"x", "step"}, short: "x rounded up to a multiple of step",
		eval: binary(func(_ decmath.Context, x, s decimal.Decimal) (decimal.Decimal, error) { return decmath.Ceil(x, s) }),
	},
	{
		name: "floor", args: []string{"x", "step"}, short: "x rounded down to a multiple of step",
		eval: binary(func(_ decmath.Context, x, s decimal.Decimal) (decimal.Decimal, error) { return decmath.Floor(x, s) }),
	},
	{name: "round-digits", args: []string{"x", "digits"}, short: "x rounded half-up to significant digits", eval: digits(decmath.RoundDigits)},
	{name: "ceil-digits", args: []string{"x", "digits"}, short: "x rounded up to significant digits", eval: digits(decmath.CeilDigits)},
	{name: "floor-digits", args: []string{"x", "digits"}, short: "x rounded down to significant digits", eval: digits(decmath.FloorDigits)},
	{name: "factorial", args: []string{"n"}, short: "n!", eval: unary(decmath.Context.Factorial)},
	{
		name: "factor", args: []string{"n"}, short: "prime factors of n",
		eval: func(c decmath.Context, _ int, x []decimal.Decimal) (string, error) {
			factors, err := c.PrimeFactorization(x[0])
			if err != nil {
				return "", err
			}
			s := make([]string, len(factors))
			for i, f := range factors {
				s[i] = f.String()
			}
			return strings.Join(s, " "), nil
		},
	},
	{name: "pi", short: "π in the configured window", eval: constant(decmath.Context.Pi)},
	{name: "e", short: "Euler's number in the configured window", eval: constant(decmath.Context.E)},
	{name: "ln2", short: "natural logarithm of 2 in the configured window", eval: constant(decmath.Context.Ln2)},
	{name: "ln10", short: "natural logarithm of 10 in the configured window", eval: constant(decmath.Context.Ln10)},
	{name: "phi", short: "golden ratio in the configured window", eval: constant(decmath.Context.Phi)},
}
