// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const modTestWidth = 6

func TestModAddMatchesReducedSum(t *testing.T) {
	m := FromUint64(modTestWidth, 97)
	a := NewMod(FromUint64(modTestWidth, 60), m.Clone())
	b := NewMod(FromUint64(modTestWidth, 50), m.Clone())
	got := a.Add(b)
	assert.True(t, got.Integer.Equal(FromUint64(modTestWidth, (60+50)%97)))
}

func TestModMulMatchesReducedProduct(t *testing.T) {
	m := FromUint64(modTestWidth, 97)
	a := NewMod(FromUint64(modTestWidth, 60), m.Clone())
	b := NewMod(FromUint64(modTestWidth, 50), m.Clone())
	got := a.Mul(b)
	want := (60 * 50) % 97
	assert.True(t, got.Integer.Equal(FromUint64(modTestWidth, uint64(want))))
}

func TestBarrettReduceMatchesSlowReduce(t *testing.T) {
	m := FromUint64(modTestWidth, 1000003)
	x := FromUint64(modTestWidth, 999999999)

	barrett := NewMod(x.Clone(), m.Clone())
	barrett.BarrettReduce()

	slow := NewMod(x.Clone(), m.Clone()).SlowReduce()

	assert.True(t, barrett.Integer.Equal(slow.Integer))
	assert.Equal(t, -1, barrett.Integer.Cmp(m))
}

func TestFermatLittleTheorem(t *testing.T) {
	// 13 is prime; a^(p-1) == 1 mod p for a coprime to p.
	p := FromUint64(modTestWidth, 13)
	a := NewMod(FromUint64(modTestWidth, 7), p.Clone())
	result := a.Pow(FromUint64(modTestWidth, 12))
	assert.True(t, result.Integer.Equal(FromUint64(modTestWidth, 1)))
}

func TestDifferentModuliPanic(t *testing.T) {
	a := NewMod(FromUint64(modTestWidth, 1), FromUint64(modTestWidth, 5))
	b := NewMod(FromUint64(modTestWidth, 1), FromUint64(modTestWidth, 7))
	assert.Panics(t, func() { a.Add(b) })
	assert.Panics(t, func() { a.Mul(b) })
}

func TestNewModWithMuReducesUsingPrecomputedMu(t *testing.T) {
	m := FromUint64(modTestWidth, 97)
	mu := CalculateMu(m)
	a := NewModWithMu(FromUint64(modTestWidth, 250), m.Clone(), mu.Clone())
	assert.True(t, a.Integer.Equal(FromUint64(modTestWidth, 250%97)))
}
