/*
Package decimal implements immutable decimal floating-point numbers with a
bounded number of significant digits.
Elementary functions over these numbers live in the [decmath] subpackage.

# Representation

[Decimal] is a struct with the following fields:

  - Digits: the significant digits of the value, stored least significant
    first. Stored digits never start or end with zero.
  - Exponent: the number of digits in the integer part.
    It is zero or negative for values below 1, where its magnitude counts the
    leading fractional zeros.
    For example, the digits 1, 2, 3 represent 1.23 with an exponent of 1,
    12300 with an exponent of 5, and 0.0123 with an exponent of -1.
  - Sign: a boolean indicating whether the decimal is negative.
  - Window: the maximum number of stored digits.
  - Inexact: a flag recording that digits were rounded away.

Because leading and trailing zeros are never stored, every value has exactly
one representation: 1, 1.0 and 1.00 are the same decimal.
There is no negative zero.

# Window

The window is fixed when a decimal is constructed.
Package-level constructors such as [New] and [Parse] use the
[DefaultWindow] of 25 digits; [Window] offers the same constructors for any
other width:

	d := decimal.Window(50).New(1)

Binary operations produce a result in the window of the receiver.
The operand is read at its full length, the exact result is computed and
then rounded to the receiver's window.
[Decimal.WithWindow] changes the window of an existing value; the new width
applies from the next operation on.

# Rounding

Results that need more digits than the window are rounded half-up on the
first dropped digit:

	| Window | Exact value | Result  |
	| ------ | ----------- | ------- |
	| 3      | 1.2345      | 1.23    |
	| 3      | 1.235       | 1.24    |
	| 3      | -1.235      | -1.24   |
	| 3      | 99950       | 100000  |

Division stops after one digit beyond the window and rounds on that digit.
Every rounding sets the flag reported by [Decimal.Inexact], and the flag is
carried into the results of later operations.

Explicit rounding to a step or to a number of significant digits is
provided by [decmath.Round], [decmath.Floor], [decmath.Ceil] and their
Digits variants.

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [ParseRunes], [ParseUTF16], [Decimal.String], [Decimal.Format].
    Both '.' and ',' are accepted as the separator, full-width digits are
    folded to ASCII, and the empty string parses as 0.
  - from/to float64:
    [NewFromFloat64], [Decimal.Float64].
  - from/to int64 and uint64:
    [New], [NewFromUint64], [Decimal.Int64], [Decimal.Uint64].
  - encoding and database/sql:
    [Decimal.MarshalText], [Decimal.UnmarshalText], [Decimal.Scan],
    [Decimal.Value].

See the documentation for each method for more details.

# Special values

Some operations have results outside the finite decimal domain.
These are returned as errors of type [*Special]:

	| Value              | Symbol | Example   |
	| ------------------ | ------ | --------- |
	| [ComplexInfinity]  | ∞~     | 5 / 0     |
	| [Undefined]        | 0 ∞    | 0 / 0     |
	| [NegativeInfinity] | -∞     | ln(0)     |
	| [PositiveInfinity] | ∞      | +Inf      |

Use [AsSpecial] or [errors.Is] to tell them apart from ordinary failures.

# Errors

All methods are pure and, apart from the Must variants, panic-free.
Errors wrap one of the following:

  - [ErrParse] for text that does not follow the decimal grammar.
  - [ErrValueOutOfRange] for integer conversions that overflow.
  - [ErrDomain] for arguments outside of a function's domain, such as NaN.
  - a [*Special] value, as described above.

[decmath]: https://pkg.go.dev/github.com/decwindow/decimal/decmath
[errors.Is]: https://pkg.go.dev/errors#Is
*/
package decimal
