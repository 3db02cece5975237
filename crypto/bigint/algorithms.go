// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

// Abs returns the absolute value of a.
func Abs(a *Int) *Int {
	if a.IsNegative() {
		return a.Neg()
	}
	return a
}

// GCD computes the greatest common divisor of two nonzero values using
// the binary GCD (Stein's) algorithm, which only needs shifts and
// subtraction — useful here since this package has no native division
// remainder operator.
func GCD(a, b *Int) *Int {
	requireSameWidth(a, b)
	width := a.Width()
	g := FromUint64(width, 1)
	x, y := a.Clone(), b.Clone()
	if x.Cmp(y) < 0 {
		x, y = y, x
	}
	for !x.IsOdd() && !y.IsOdd() {
		x = x.Shr(1)
		y = y.Shr(1)
		g = g.Shl(1)
	}
	zero := New(width)
	for x.Cmp(zero) != 0 {
		for !x.IsOdd() {
			x = x.Shr(1)
		}
		for !y.IsOdd() {
			y = y.Shr(1)
		}
		t := Abs(x.Sub(y)).Shr(1)
		if x.Cmp(y) >= 0 {
			x = t
		} else {
			y = t
		}
	}
	return g.Mul(y)
}

// LCM computes the least common multiple via a*b/gcd(a,b).
func LCM(a, b *Int) *Int {
	g := GCD(a, b)
	return a.Mul(b).Div(g)
}

// ModInverse computes a^-1 mod m using the binary extended Euclidean
// algorithm. Panics if a and m are not coprime.
func ModInverse(a, m *Int) *Int {
	requireSameWidth(a, m)
	width := m.Width()
	u, v := m.Clone(), a.Clone()
	one := FromUint64(width, 1)
	zero := New(width)
	a0, b0, c0, d0 := one.Clone(), zero.Clone(), zero.Clone(), one.Clone()

	// The halving steps below drop factors of two independently, so a
	// shared factor of two (or a zero a) must be rejected up front.
	if v.IsZero() || (!u.IsOdd() && !v.IsOdd()) {
		panic("bigint: modular inverse does not exist (operands not coprime)")
	}

	for u.Cmp(zero) != 0 {
		for !u.IsOdd() {
			u = u.Shr(1)
			if !a0.IsOdd() && !b0.IsOdd() {
				a0 = a0.Shr(1)
				b0 = b0.Shr(1)
			} else {
				a0 = a0.Add(a).Shr(1)
				b0 = b0.Sub(m).Shr(1)
			}
		}
		for !v.IsOdd() {
			v = v.Shr(1)
			if !c0.IsOdd() && !d0.IsOdd() {
				c0 = c0.Shr(1)
				d0 = d0.Shr(1)
			} else {
				c0 = c0.Add(a).Shr(1)
				d0 = d0.Sub(m).Shr(1)
			}
		}
		if u.Cmp(v) >= 0 {
			u = u.Sub(v)
			a0 = a0.Sub(c0)
			b0 = b0.Sub(d0)
		} else {
			v = v.Sub(u)
			c0 = c0.Sub(a0)
			d0 = d0.Sub(b0)
		}
	}

	if v.Cmp(one) != 0 {
		panic("bigint: modular inverse does not exist (operands not coprime)")
	}
	if d0.IsNegative() {
		d0 = d0.Add(m)
	}
	return d0
}

// QuotientRemainder returns (a/b, a-b*(a/b)) for non-negative a, b.
func QuotientRemainder(a, b *Int) (*Int, *Int) {
	if a.IsNegative() || b.IsNegative() {
		panic("bigint: quotient/remainder require non-negative operands")
	}
	q := a.Div(b)
	r := a.Sub(q.Mul(b))
	return q, r
}
