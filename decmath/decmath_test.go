package decmath

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decwindow/decimal"
)

var (
	loose = decimal.MustParse("0.000000001")
	tight = decimal.MustParse("0.000000000000000000001")
)

// near reports whether got is within tol of want, relative to |want| once
// |want| exceeds 1.
func near(got decimal.Decimal, want string, tol decimal.Decimal) bool {
	w := decimal.MustParse(want)
	scale := w.Abs().Max(decimal.New(1))
	return got.Sub(w).Abs().LessOrEqual(tol.Mul(scale))
}

func requireNear(t *testing.T, got decimal.Decimal, want string, tol decimal.Decimal) {
	t.Helper()
	require.True(t, near(got, want, tol), "got %v, want %v", got, want)
}

func requireSpecial(t *testing.T, err error, want *decimal.Special) {
	t.Helper()
	s, ok := decimal.AsSpecial(err)
	require.True(t, ok, "expected special %v, got %v", want.Name(), err)
	require.Equal(t, want, s)
}

func TestContext(t *testing.T) {
	t.Run("zero value", func(t *testing.T) {
		eps, err := Context{}.epsilon()
		require.NoError(t, err)
		require.True(t, eps.Equal(DefaultEpsilon))
		require.Equal(t, DefaultMaxIterations, Context{}.limit())
		require.Equal(t, DefaultMaxIterations, Context{MaxIterations: -5}.limit())
	})

	t.Run("NewContext", func(t *testing.T) {
		c, err := NewContext(tight)
		require.NoError(t, err)
		require.True(t, c.Epsilon.Equal(tight))

		for _, s := range []string{"0", "-0.001"} {
			_, err := NewContext(decimal.MustParse(s))
			require.ErrorIs(t, err, decimal.ErrDomain, s)
		}
	})

	t.Run("negative epsilon", func(t *testing.T) {
		c := Context{Epsilon: decimal.MustParse("-1")}
		one := decimal.New(1)
		_, err := c.Exp(one)
		require.ErrorIs(t, err, decimal.ErrDomain)
		_, err = c.Ln(one)
		require.ErrorIs(t, err, decimal.ErrDomain)
		_, err = c.Sin(one)
		require.ErrorIs(t, err, decimal.ErrDomain)
		_, err = c.Asin(one)
		require.ErrorIs(t, err, decimal.ErrDomain)
		_, err = c.Pi(0)
		require.ErrorIs(t, err, decimal.ErrDomain)
	})

	t.Run("iteration limit", func(t *testing.T) {
		c := Context{MaxIterations: 2}
		x := decimal.New(2)
		for name, fn := range map[string]func(decimal.Decimal) (decimal.Decimal, error){
			"exp":  c.Exp,
			"ln":   c.Ln,
			"sqrt": c.Sqrt,
			"sin":  c.Sin,
			"cos":  c.Cos,
			"pow":  func(x decimal.Decimal) (decimal.Decimal, error) { return c.Pow(x, decimal.MustParse("0.5")) },
		} {
			_, err := fn(x)
			require.ErrorIs(t, err, ErrNoConvergence, name)
		}
		_, err := c.Asin(decimal.MustParse("0.5"))
		require.ErrorIs(t, err, ErrNoConvergence)
		_, err = c.Pi(1100)
		require.ErrorIs(t, err, ErrNoConvergence)
	})
}

func TestConstants(t *testing.T) {
	testCases := []struct {
		name     string
		fn       func(int) (decimal.Decimal, error)
		window   int
		expected string
	}{
		{"pi", Pi, 0, "3.141592653589793238462643"},
		{"pi", Pi, 30, "3.14159265358979323846264338328"},
		{"pi", Pi, 1, "3"},
		{"e", E, 0, "2.718281828459045235360287"},
		{"e", E, 10, "2.718281828"},
		{"ln2", Ln2, 5, "0.69315"},
		{"ln10", Ln10, 10, "2.302585093"},
		{"phi", Phi, 8, "1.618034"},
		{"phi", Phi, 25, "1.618033988749894848204587"},
	}
	for _, tc := range testCases {
		got, err := tc.fn(tc.window)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.expected, got.String(), "%v(%v)", tc.name, tc.window)
	}
}

func TestConstants_Computed(t *testing.T) {
	if testing.Short() {
		t.Skip("wide constants are slow")
	}
	c := Context{}
	for name, fn := range map[string]func(int) (decimal.Decimal, error){
		"pi":   c.Pi,
		"e":    c.E,
		"ln2":  c.Ln2,
		"ln10": c.Ln10,
		"phi":  c.Phi,
	} {
		table, err := fn(tableDigits)
		require.NoError(t, err, name)
		wide, err := fn(tableDigits + 20)
		require.NoError(t, err, name)
		require.Equal(t, tableDigits+20, wide.Window(), name)
		requireNear(t, wide, table.String(), loose)
	}
}

func TestExp(t *testing.T) {
	testCases := []struct {
		x, expected string
	}{
		{"0", "1"},
		{"1", "2.718281828459045235360287471"},
		{"2", "7.389056098930650227230427461"},
		{"-1", "0.3678794411714423215955237702"},
		{"0.5", "1.648721270700128146848650788"},
		{"10", "22026.46579480671651695790065"},
		{"-10", "0.00004539992976248485153559151556"},
	}
	for _, tc := range testCases {
		got, err := Exp(decimal.MustParse(tc.x))
		require.NoError(t, err, tc.x)
		requireNear(t, got, tc.expected, loose)
	}

	got, err := Exp(decimal.New(0))
	require.NoError(t, err)
	require.Equal(t, "1", got.String())

	t.Run("tight", func(t *testing.T) {
		got, err := Context{Epsilon: tight}.Exp(decimal.New(1))
		require.NoError(t, err)
		requireNear(t, got, "2.718281828459045235360287471", tight)
	})

	t.Run("window", func(t *testing.T) {
		got, err := Exp(decimal.Window(10).New(1))
		require.NoError(t, err)
		require.Equal(t, 10, got.Window())
		requireNear(t, got, "2.718281828", decimal.MustParse("0.00000001"))
	})
}

func TestLn(t *testing.T) {
	testCases := []struct {
		x, expected string
	}{
		{"2", "0.6931471805599453094172321215"},
		{"4.5", "1.504077396776274073373258352"},
		{"8.01", "2.080690761080267853072323105"},
		{"13.74", "2.620311286794203281217730053"},
		{"27.12", "3.300271463072194820193090186"},
		{"0.5", "-0.6931471805599453094172321215"},
		{"0.001", "-6.907755278982137052053974364"},
		{"1000", "6.907755278982137052053974364"},
	}
	for _, tc := range testCases {
		got, err := Ln(decimal.MustParse(tc.x))
		require.NoError(t, err, tc.x)
		requireNear(t, got, tc.expected, loose)
	}

	got, err := Ln(decimal.New(1))
	require.NoError(t, err)
	require.True(t, got.IsZero())

	_, err = Ln(decimal.New(0))
	requireSpecial(t, err, decimal.NegativeInfinity)

	_, err = Ln(decimal.New(-1))
	require.ErrorIs(t, err, decimal.ErrDomain)

	t.Run("tight", func(t *testing.T) {
		got, err := Context{Epsilon: tight}.Ln(decimal.MustParse("4.5"))
		require.NoError(t, err)
		requireNear(t, got, "1.504077396776274073373258352", tight.Shift(1))
	})
}

func TestLogs(t *testing.T) {
	got, err := Log10(decimal.New(1000))
	require.NoError(t, err)
	require.Equal(t, "3", got.String())

	got, err = Log10(decimal.MustParse("0.01"))
	require.NoError(t, err)
	require.Equal(t, "-2", got.String())

	got, err = Log10(decimal.New(2))
	require.NoError(t, err)
	requireNear(t, got, "0.3010299956639811952137388947", loose)

	got, err = Log2(decimal.New(8))
	require.NoError(t, err)
	requireNear(t, got, "3", loose)

	got, err = Log(decimal.New(2), decimal.New(1024))
	require.NoError(t, err)
	requireNear(t, got, "10", loose)

	got, err = Log(decimal.New(3), decimal.New(81))
	require.NoError(t, err)
	requireNear(t, got, "4", loose)

	_, err = Log(decimal.New(1), decimal.New(5))
	requireSpecial(t, err, decimal.ComplexInfinity)

	_, err = Log(decimal.New(1), decimal.New(1))
	requireSpecial(t, err, decimal.Undefined)

	_, err = Log2(decimal.New(0))
	requireSpecial(t, err, decimal.NegativeInfinity)

	_, err = Log(decimal.New(-2), decimal.New(4))
	require.ErrorIs(t, err, decimal.ErrDomain)

	_, err = Log10(decimal.New(-4))
	require.ErrorIs(t, err, decimal.ErrDomain)
}

func TestPow(t *testing.T) {
	exact := []struct {
		x, y, expected string
	}{
		{"2", "10", "1024"},
		{"2", "-2", "0.25"},
		{"-2", "3", "-8"},
		{"-2", "-1", "-0.5"},
		{"0.5", "-1", "2"},
		{"10", "30", "1000000000000000000000000000000"},
		{"1.1", "2", "1.21"},
		{"5", "0", "1"},
		{"-5", "0", "1"},
		{"0", "2", "0"},
		{"0", "0.5", "0"},
	}
	for _, tc := range exact {
		got, err := Pow(decimal.MustParse(tc.x), decimal.MustParse(tc.y))
		require.NoError(t, err, "%v^%v", tc.x, tc.y)
		assert.Equal(t, tc.expected, got.String(), "%v^%v", tc.x, tc.y)
	}

	approx := []struct {
		x, y, expected string
	}{
		{"2", "0.5", "1.414213562373095048801688724"},
		{"1.5", "2.5", "2.755675960631075360471944584"},
		{"4", "-0.5", "0.5"},
		{"10", "0.3010299956639811952137388947", "2"},
	}
	for _, tc := range approx {
		got, err := Pow(decimal.MustParse(tc.x), decimal.MustParse(tc.y))
		require.NoError(t, err, "%v^%v", tc.x, tc.y)
		requireNear(t, got, tc.expected, loose)
	}

	_, err := Pow(decimal.New(0), decimal.New(0))
	requireSpecial(t, err, decimal.Undefined)

	_, err = Pow(decimal.New(0), decimal.New(-1))
	requireSpecial(t, err, decimal.ComplexInfinity)

	_, err = Pow(decimal.New(-2), decimal.MustParse("0.5"))
	require.ErrorIs(t, err, decimal.ErrDomain)
}

func TestSqrt(t *testing.T) {
	testCases := []struct {
		x, expected string
	}{
		{"4", "2"},
		{"2", "1.414213562373095048801688724"},
		{"0.0001", "0.01"},
		{"10000000000", "100000"},
		{"0.5", "0.7071067811865475244008443621"},
		{"123456789", "11111.11106055555544054166614"},
	}
	for _, tc := range testCases {
		got, err := Sqrt(decimal.MustParse(tc.x))
		require.NoError(t, err, tc.x)
		requireNear(t, got, tc.expected, loose)
	}

	got, err := Sqrt(decimal.New(0))
	require.NoError(t, err)
	require.True(t, got.IsZero())

	_, err = Sqrt(decimal.New(-1))
	require.ErrorIs(t, err, decimal.ErrDomain)
}

func TestTrig(t *testing.T) {
	testCases := []struct {
		x                string
		sin, cos, tan, c string
	}{
		{
			"1",
			"0.8414709848078965066525023216", "0.5403023058681397174009366074",
			"1.557407724654902230506974807", "0.6420926159343307030064199866",
		},
		{
			"0.5",
			"0.4794255386042030002732879352", "0.8775825618903727161162815826",
			"0.5463024898437905132551794658", "1.830487721712451919268019439",
		},
		{
			"10",
			"-0.5440211108893698134047476619", "-0.8390715290764524522588639478",
			"0.6483608274590866712591249330", "1.542351045356920048277469356",
		},
		{
			"-10",
			"0.5440211108893698134047476619", "-0.8390715290764524522588639478",
			"-0.6483608274590866712591249330", "-1.542351045356920048277469356",
		},
		{
			"100",
			"-0.5063656411097587936565576105", "0.8623188722876839341019385140",
			"-0.5872139151569290766778096356", "-1.702956919426469216098731460",
		},
	}
	for _, tc := range testCases {
		x := decimal.MustParse(tc.x)
		got, err := Sin(x)
		require.NoError(t, err)
		requireNear(t, got, tc.sin, loose)
		got, err = Cos(x)
		require.NoError(t, err)
		requireNear(t, got, tc.cos, loose)
		got, err = Tan(x)
		require.NoError(t, err)
		requireNear(t, got, tc.tan, loose)
		got, err = Ctan(x)
		require.NoError(t, err)
		requireNear(t, got, tc.c, loose)
	}

	// Reduction of large arguments keeps the accuracy of the context
	ctx := Context{Epsilon: tight}
	hundred := decimal.New(100)
	got, err := ctx.Sin(hundred)
	require.NoError(t, err)
	requireNear(t, got, "-0.5063656411097587936565576105", tight.Shift(3))
	got, err = ctx.Cos(hundred)
	require.NoError(t, err)
	requireNear(t, got, "0.8623188722876839341019385140", tight.Shift(3))

	pi, err := Pi(0)
	require.NoError(t, err)
	two := decimal.New(2)

	got, err = Sin(pi.MustQuo(decimal.New(6)))
	require.NoError(t, err)
	requireNear(t, got, "0.5", loose)

	got, err = Sin(pi.MustQuo(two))
	require.NoError(t, err)
	requireNear(t, got, "1", loose)

	got, err = Cos(pi)
	require.NoError(t, err)
	requireNear(t, got, "-1", loose)

	got, err = Tan(pi.MustQuo(decimal.New(4)))
	require.NoError(t, err)
	requireNear(t, got, "1", loose)

	got, err = Sin(decimal.New(0))
	require.NoError(t, err)
	require.True(t, got.IsZero())

	got, err = Cos(decimal.New(0))
	require.NoError(t, err)
	require.Equal(t, "1", got.String())

	_, err = Tan(pi.MustQuo(two))
	requireSpecial(t, err, decimal.ComplexInfinity)

	_, err = Ctan(decimal.New(0))
	requireSpecial(t, err, decimal.ComplexInfinity)

	_, err = Ctan(pi)
	requireSpecial(t, err, decimal.ComplexInfinity)
}

func TestInverseTrig(t *testing.T) {
	testCases := []struct {
		x, asin, acos string
	}{
		{"0", "0", "1.570796326794896619231321692"},
		{"0.5", "0.5235987755982988730771072305", "1.047197551196597746154214461"},
		{"-0.3", "-0.3046926540153975079720029612", "1.875488980810294127203324653"},
		{"0.7", "0.7753974966107530637403533527", "0.7953988301841435554909683389"},
		{"0.71", "0.7894982093461719730076188609", "0.7812981174487246462237028308"},
		{"0.9", "1.119769514998634186686677056", "0.4510268117962624325446446358"},
		{"1", "1.570796326794896619231321692", "0"},
		{"-1", "-1.570796326794896619231321692", "3.141592653589793238462643383"},
	}
	for _, tc := range testCases {
		x := decimal.MustParse(tc.x)
		got, err := Asin(x)
		require.NoError(t, err, tc.x)
		requireNear(t, got, tc.asin, loose)
		got, err = Acos(x)
		require.NoError(t, err, tc.x)
		requireNear(t, got, tc.acos, loose)
	}

	for _, s := range []string{"1.0001", "-2"} {
		_, err := Asin(decimal.MustParse(s))
		require.ErrorIs(t, err, decimal.ErrDomain, s)
		_, err = Acos(decimal.MustParse(s))
		require.ErrorIs(t, err, decimal.ErrDomain, s)
	}
}

func TestRound(t *testing.T) {
	testCases := []struct {
		x, step               string
		floor, ceil, expected string
	}{
		{"2.5", "1", "2", "3", "3"},
		{"-2.5", "1", "-3", "-2", "-2"},
		{"2.4", "1", "2", "3", "2"},
		{"-2.6", "1", "-3", "-2", "-3"},
		{"3", "1", "3", "3", "3"},
		{"27.5", "10", "20", "30", "30"},
		{"1.234", "0.05", "1.2", "1.25", "1.25"},
		{"1.224", "0.05", "1.2", "1.25", "1.2"},
		{"0", "0.1", "0", "0", "0"},
		{"2.718281828459045235360287", "0.0000000001", "2.7182818284", "2.7182818285", "2.7182818285"},
	}
	for _, tc := range testCases {
		x, step := decimal.MustParse(tc.x), decimal.MustParse(tc.step)
		got, err := Floor(x, step)
		require.NoError(t, err)
		assert.Equal(t, tc.floor, got.String(), "floor(%v, %v)", tc.x, tc.step)
		got, err = Ceil(x, step)
		require.NoError(t, err)
		assert.Equal(t, tc.ceil, got.String(), "ceil(%v, %v)", tc.x, tc.step)
		got, err = Round(x, step)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, got.String(), "round(%v, %v)", tc.x, tc.step)
	}

	for _, s := range []string{"0", "-1"} {
		_, err := Round(decimal.New(1), decimal.MustParse(s))
		require.ErrorIs(t, err, decimal.ErrDomain)
		_, err = Floor(decimal.New(1), decimal.MustParse(s))
		require.ErrorIs(t, err, decimal.ErrDomain)
		_, err = Ceil(decimal.New(1), decimal.MustParse(s))
		require.ErrorIs(t, err, decimal.ErrDomain)
	}

	e, err := Exp(decimal.New(1))
	require.NoError(t, err)
	got, err := Round(e, decimal.MustParse("0.0000000001"))
	require.NoError(t, err)
	require.Equal(t, "2.7182818285", got.String())
}

func TestRoundDigits(t *testing.T) {
	testCases := []struct {
		x                     string
		digits                int
		floor, ceil, expected string
	}{
		{"27.5", 1, "20", "30", "30"},
		{"-27.5", 1, "-30", "-20", "-30"},
		{"0.0123", 2, "0.012", "0.013", "0.012"},
		{"123456", 3, "123000", "124000", "123000"},
		{"987.654", 5, "987.65", "987.66", "987.65"},
		{"987.655", 5, "987.65", "987.66", "987.66"},
		{"0", 3, "0", "0", "0"},
		{"5", 10, "5", "5", "5"},
	}
	for _, tc := range testCases {
		x := decimal.MustParse(tc.x)
		got, err := FloorDigits(x, tc.digits)
		require.NoError(t, err)
		assert.Equal(t, tc.floor, got.String(), "floor(%v, %v)", tc.x, tc.digits)
		got, err = CeilDigits(x, tc.digits)
		require.NoError(t, err)
		assert.Equal(t, tc.ceil, got.String(), "ceil(%v, %v)", tc.x, tc.digits)
		got, err = RoundDigits(x, tc.digits)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, got.String(), "round(%v, %v)", tc.x, tc.digits)
	}

	for _, n := range []int{0, -1} {
		_, err := RoundDigits(decimal.New(1), n)
		require.ErrorIs(t, err, decimal.ErrDomain)
		_, err = FloorDigits(decimal.New(1), n)
		require.ErrorIs(t, err, decimal.ErrDomain)
		_, err = CeilDigits(decimal.New(1), n)
		require.ErrorIs(t, err, decimal.ErrDomain)
	}
}

func TestAbsSum(t *testing.T) {
	require.Equal(t, "5.67", Abs(decimal.MustParse("-5.67")).String())
	require.Equal(t, "5.67", Abs(decimal.MustParse("5.67")).String())

	got := Sum()
	require.True(t, got.IsZero())
	require.Equal(t, int(decimal.DefaultWindow), got.Window())

	got = Sum(decimal.New(1), decimal.MustParse("2.5"), decimal.MustParse("-0.5"))
	require.Equal(t, "3", got.String())

	got = Sum(decimal.Window(3).New(1), decimal.MustParse("0.001"))
	require.Equal(t, "1", got.String())
	require.True(t, got.Inexact())
}

func TestFactorial(t *testing.T) {
	testCases := []struct {
		n, expected string
	}{
		{"1", "1"},
		{"2", "2"},
		{"5", "120"},
		{"10", "3628800"},
		{"25", "15511210043330985984000000"},
		{"30", "265252859812191058636308500000000"},
	}
	for _, tc := range testCases {
		got, err := Factorial(decimal.MustParse(tc.n))
		require.NoError(t, err, tc.n)
		assert.Equal(t, tc.expected, got.String(), "%v!", tc.n)
	}

	for _, s := range []string{"0", "-1", "2.5"} {
		_, err := Factorial(decimal.MustParse(s))
		require.ErrorIs(t, err, decimal.ErrDomain, s)
	}

	_, err := Context{MaxIterations: 5}.Factorial(decimal.New(10))
	require.ErrorIs(t, err, ErrNoConvergence)
}

func TestPrimeFactorization(t *testing.T) {
	testCases := []struct {
		x        string
		expected []string
	}{
		{"1", nil},
		{"2", []string{"2"}},
		{"97", []string{"97"}},
		{"360", []string{"2", "2", "2", "3", "3", "5"}},
		{"1001", []string{"7", "11", "13"}},
		{"1024", []string{"2", "2", "2", "2", "2", "2", "2", "2", "2", "2"}},
		{"600851475143", []string{"71", "839", "1471", "6857"}},
	}
	for _, tc := range testCases {
		factors, err := PrimeFactorization(decimal.MustParse(tc.x))
		require.NoError(t, err, tc.x)
		var got []string
		for _, f := range factors {
			got = append(got, f.String())
		}
		if diff := cmp.Diff(tc.expected, got); diff != "" {
			t.Errorf("PrimeFactorization(%v) mismatch (-want +got):\n%s", tc.x, diff)
		}
	}

	for _, s := range []string{"0", "-4", "1.5"} {
		_, err := PrimeFactorization(decimal.MustParse(s))
		require.ErrorIs(t, err, decimal.ErrDomain, s)
	}

	_, err := Context{MaxIterations: 3}.PrimeFactorization(decimal.New(97))
	require.ErrorIs(t, err, ErrNoConvergence)
	require.True(t, errors.Is(err, ErrNoConvergence))
	require.Contains(t, err.Error(), "after 3 iterations")
}
