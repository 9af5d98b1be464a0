package decimal

import "fmt"

// MustQuo is like [Decimal.Quo] but panics if the quotient is a special value.
func (d Decimal) MustQuo(e Decimal) Decimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustRem is like [Decimal.Rem] but panics if the remainder is a special value.
func (d Decimal) MustRem(e Decimal) Decimal {
	f, err := d.Rem(e)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", e, err))
	}
	return f
}

// MustInt64 is like [Decimal.Int64] but panics if the integer part does not
// fit into int64.
func (d Decimal) MustInt64() int64 {
	n, err := d.Int64()
	if err != nil {
		panic(fmt.Sprintf("MustInt64() failed: %v", err))
	}
	return n
}
