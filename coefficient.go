package decimal

// coefficient is a raw digit buffer used between arithmetic steps.
// Digits are stored least significant first and may temporarily lie outside
// the range 0..9 until normalize resolves carries and borrows.
type coefficient struct {
	digs    []int // digs[0] has weight 10^lo
	lo      int
	neg     bool
	inexact bool
}

// normalize restores the invariants of a decimal and rounds the result
// to the given window.
//
// The sign of the buffer is taken from its most significant non-zero digit.
// This is sound as long as every other digit lies within -9..9 whenever the
// buffer mixes digit signs, which holds for all arithmetic in this package.
func (c coefficient) normalize(window int) Decimal {
	digs := c.digs
	neg := c.neg

	// Sign correction
	top := len(digs) - 1
	for top >= 0 && digs[top] == 0 {
		top--
	}
	if top < 0 {
		return Decimal{window: window, inexact: c.inexact}
	}
	if digs[top] < 0 {
		neg = !neg
		for i := range digs {
			digs[i] = -digs[i]
		}
	}

	// Carries and borrows
	carry := 0
	for i := range digs {
		v := digs[i] + carry
		carry = floorDiv10(v)
		digs[i] = v - 10*carry
	}
	for carry > 0 {
		digs = append(digs, carry%10)
		carry /= 10
	}

	digs, lo := trim(digs, c.lo)
	inexact := c.inexact

	// Window rounding
	if cut := len(digs) - window; cut > 0 {
		up := digs[cut-1] >= 5
		for _, d := range digs[:cut] {
			if d != 0 {
				inexact = true
				break
			}
		}
		digs = digs[cut:]
		lo += cut
		if up {
			digs = increment(digs)
		}
		digs, lo = trim(digs, lo)
	}

	buf := make([]byte, len(digs))
	for i, d := range digs {
		buf[i] = byte(d)
	}
	return Decimal{
		digits:  buf,
		exp:     lo + len(buf),
		neg:     neg,
		window:  window,
		inexact: inexact,
	}
}

// trim removes zero digits from both ends of digs.
// Removing low digits moves the weight of the buffer, hence the new lo.
func trim(digs []int, lo int) ([]int, int) {
	for len(digs) > 0 && digs[len(digs)-1] == 0 {
		digs = digs[:len(digs)-1]
	}
	for len(digs) > 0 && digs[0] == 0 {
		digs = digs[1:]
		lo++
	}
	return digs, lo
}

// increment adds one to the lowest digit and propagates the carry.
func increment(digs []int) []int {
	for i := range digs {
		if digs[i] < 9 {
			digs[i]++
			return digs
		}
		digs[i] = 0
	}
	return append(digs, 1)
}

// roundAt rounds half-up so that no digit below 10^lo remains.
func (c coefficient) roundAt(lo int) coefficient {
	cut := lo - c.lo
	if cut <= 0 {
		return c
	}
	if cut > len(c.digs) {
		c.digs = c.digs[:0]
		c.lo = lo
		return c
	}
	up := c.digs[cut-1] >= 5
	c.digs = c.digs[cut:]
	c.lo = lo
	if up {
		c.digs = increment(c.digs)
	}
	return c
}

func floorDiv10(v int) int {
	if v >= 0 {
		return v / 10
	}
	return -((-v + 9) / 10)
}

// nat is an unsigned integer held as decimal digits, least significant first,
// without high-order zeros. It backs long division and modulo.
type nat []int

func newNat(digits []byte, shift int) nat {
	z := make(nat, shift+len(digits))
	for i, d := range digits {
		z[shift+i] = int(d)
	}
	return z.norm()
}

func (z nat) norm() nat {
	for len(z) > 0 && z[len(z)-1] == 0 {
		z = z[:len(z)-1]
	}
	return z
}

func (z nat) isZero() bool {
	return len(z) == 0
}

// shiftIn returns z*10 + d.
func (z nat) shiftIn(d int) nat {
	if len(z) == 0 && d == 0 {
		return z
	}
	r := make(nat, len(z)+1)
	r[0] = d
	copy(r[1:], z)
	return r
}

func (z nat) cmp(y nat) int {
	switch {
	case len(z) < len(y):
		return -1
	case len(z) > len(y):
		return 1
	}
	for i := len(z) - 1; i >= 0; i-- {
		switch {
		case z[i] < y[i]:
			return -1
		case z[i] > y[i]:
			return 1
		}
	}
	return 0
}

// sub returns z - y. It requires z >= y.
func (z nat) sub(y nat) nat {
	r := make(nat, len(z))
	borrow := 0
	for i := range z {
		v := z[i] - borrow
		if i < len(y) {
			v -= y[i]
		}
		borrow = 0
		if v < 0 {
			v += 10
			borrow = 1
		}
		r[i] = v
	}
	return r.norm()
}

// divDigit subtracts y from z as many times as it fits and returns
// the count together with the remainder.
func (z nat) divDigit(y nat) (int, nat) {
	q := 0
	for z.cmp(y) >= 0 {
		z = z.sub(y)
		q++
	}
	return q, z
}

// rem returns z mod y. It requires y > 0.
func (z nat) rem(y nat) nat {
	var r nat
	for i := len(z) - 1; i >= 0; i-- {
		r = r.shiftIn(z[i])
		_, r = r.divDigit(y)
	}
	return r
}

// mul returns z * y.
func (z nat) mul(y nat) nat {
	if z.isZero() || y.isZero() {
		return nil
	}
	r := make(nat, len(z)+len(y))
	for i, a := range z {
		carry := 0
		for j, b := range y {
			v := r[i+j] + a*b + carry
			r[i+j] = v % 10
			carry = v / 10
		}
		for k := i + len(y); carry > 0; k++ {
			v := r[k] + carry
			r[k] = v % 10
			carry = v / 10
		}
	}
	return r.norm()
}

// pow10Mod returns 10^k mod y by repeated squaring. It requires y > 0.
func pow10Mod(k int, y nat) nat {
	res := nat{1}.rem(y)
	base := nat{0, 1}.rem(y)
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			res = res.mul(base).rem(y)
		}
		base = base.mul(base).rem(y)
	}
	return res
}
