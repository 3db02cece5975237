// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

import "fmt"

// barrettMaxCorrections bounds Barrett reduction's final subtraction
// loop. The textbook bound is 2 when the scratch width exceeds the
// modulus's bit length by at least 2 limbs; callers that occasionally
// feed Barrett a larger-than-expected operand (RSA's CRT products, most
// notably) get a wider margin here instead of a hard panic on iteration
// 3. If reduction still hasn't converged after this many subtractions,
// something upstream picked too narrow a working width and that is a
// programmer error, not a recoverable one.
const barrettMaxCorrections = 8

// Mod pairs an Int with a modulus and an optional cached Barrett
// reciprocal. All arithmetic between two Mod values requires identical
// moduli (by value); mismatches panic rather than silently producing a
// meaningless result.
type Mod struct {
	Integer *Int
	Modulus *Int
	mu      *Int
}

// NewMod wraps integer with modulus, without reducing or caching mu.
func NewMod(integer, modulus *Int) *Mod {
	return &Mod{Integer: integer, Modulus: modulus}
}

// NewModWithMu wraps integer with modulus and a precomputed Barrett
// reciprocal, then reduces immediately.
func NewModWithMu(integer, modulus, mu *Int) *Mod {
	m := &Mod{Integer: integer, Modulus: modulus, mu: mu}
	m.BarrettReduce()
	return m
}

// NewModReduced wraps integer with modulus and mu, reducing immediately;
// alias kept for call sites that already have mu in hand after a prior
// reduction (same behavior as NewModWithMu).
func NewModReduced(integer, modulus, mu *Int) *Mod {
	return NewModWithMu(integer, modulus, mu)
}

func requireSameModulus(a, b *Mod) {
	if !a.Modulus.Equal(b.Modulus) {
		panic("bigintmod: operands have different moduli")
	}
}

// Clone returns an independent copy.
func (m *Mod) Clone() *Mod {
	return &Mod{Integer: m.Integer.Clone(), Modulus: m.Modulus, mu: m.mu}
}

// CalculateMu computes the Barrett reciprocal μ = floor(2^(128k)/modulus)
// where k = floor(log2(modulus)/64) + 1, at the modulus's own width.
// Callers needing Barrett reduction against operands wider than the
// modulus must resize both the modulus and this mu to that wider width
// before use (mu's value is unaffected by zero-extension).
func CalculateMu(modulus *Int) *Int {
	width := modulus.Width()
	k := modulus.Log2()/64 + 1
	one := FromUint64(width, 1)
	return one.Shl(uint(2 * k * 64)).Div(modulus)
}

// SlowReduce reduces via a single division, bypassing Barrett. Used for
// RSA's CRT path, where the modulus (p or q) is much narrower than the
// ciphertext's working width and a Barrett reciprocal isn't worth
// precomputing for a one-off reduction.
func (m *Mod) SlowReduce() *Mod {
	q := m.Integer.Div(m.Modulus)
	r := m.Integer.Sub(q.Mul(m.Modulus))
	return &Mod{Integer: r, Modulus: m.Modulus}
}

// BarrettReduce reduces m.Integer in place against m.Modulus, computing
// and caching the reciprocal if it isn't already cached. Panics if the
// post-condition (result < modulus) cannot be reached within
// barrettMaxCorrections subtractions — see that constant's doc comment.
func (m *Mod) BarrettReduce() {
	width := m.Integer.Width()
	if m.Modulus.Width() != width {
		panic(fmt.Sprintf("bigintmod: modulus width %d does not match operand width %d", m.Modulus.Width(), width))
	}
	k := m.Modulus.Log2()/64 + 1
	if m.mu == nil {
		m.mu = CalculateMu(m.Modulus).Resize(width)
	}

	q1 := m.Integer.Shr(uint(64 * (k - 1)))
	q2 := q1.Mul(m.mu)
	q3 := q2.Shr(uint(64 * (k + 1)))

	r1 := m.Integer.ModParts(int(1 + k))
	r2 := q3.Mul(m.Modulus).ModParts(int(1 + k))
	r := r1.Sub(r2)
	if r.IsNegative() {
		r = r.Add(FromUint64(width, 1).Shl(uint(64 * (k + 1))))
	}

	for i := 0; i < barrettMaxCorrections && r.Cmp(m.Modulus) >= 0; i++ {
		r = r.Sub(m.Modulus)
	}
	if r.Cmp(m.Modulus) >= 0 {
		panic("bigintmod: barrett reduction post-condition violated (result >= modulus)")
	}
	m.Integer = r
}

// Add returns (m+other) mod modulus via a single conditional subtraction
// (both operands are already < modulus, so the sum is < 2*modulus).
func (m *Mod) Add(other *Mod) *Mod {
	requireSameModulus(m, other)
	sum := m.Integer.Add(other.Integer)
	if sum.Cmp(m.Modulus) >= 0 {
		sum = sum.Sub(m.Modulus)
	}
	return &Mod{Integer: sum, Modulus: m.Modulus, mu: preferMu(m, other)}
}

// Sub returns (m-other) mod modulus via a single conditional addition.
func (m *Mod) Sub(other *Mod) *Mod {
	requireSameModulus(m, other)
	diff := m.Integer.Sub(other.Integer)
	if diff.IsNegative() {
		diff = diff.Add(m.Modulus)
	}
	return &Mod{Integer: diff, Modulus: m.Modulus, mu: preferMu(m, other)}
}

// Mul returns (m*other) mod modulus via full-width multiplication
// followed by Barrett reduction.
func (m *Mod) Mul(other *Mod) *Mod {
	requireSameModulus(m, other)
	result := &Mod{Integer: m.Integer.Mul(other.Integer), Modulus: m.Modulus, mu: preferMu(m, other)}
	result.BarrettReduce()
	return result
}

// Square returns m*m mod modulus.
func (m *Mod) Square() *Mod {
	return m.Mul(m)
}

// Pow computes m^exponent mod modulus by square-and-multiply, scanning
// exponent's bits from least to most significant.
func (m *Mod) Pow(exponent *Int) *Mod {
	result := NewMod(FromUint64(m.Modulus.Width(), 1), m.Modulus)
	result.BarrettReduce()
	base := m.Clone()
	exp := exponent.Clone()
	zero := New(exp.Width())
	for exp.Cmp(zero) > 0 {
		if exp.IsOdd() {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp = exp.Shr(1)
	}
	return result
}

func preferMu(a, b *Mod) *Int {
	if a.mu != nil {
		return a.mu
	}
	return b.mu
}

func (m *Mod) String() string {
	return m.Integer.String()
}
