// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerforge/pedacoin/crypto/bigint"
)

func TestGeneratorSatisfiesCurveEquation(t *testing.T) {
	// y^2 == x^3 + 7 (mod P)
	x := modP(gx)
	y := modP(gy)
	lhs := y.Square()
	rhs := x.Square().Mul(x).Add(modPFromUint(7))
	assert.True(t, lhs.Integer.Equal(rhs.Integer))
}

func TestScalarMultiplyByOrderIsInfinity(t *testing.T) {
	result := G.ScalarMultiply(N)
	assert.True(t, result.IsInfinity())
}

func TestScalarMultiplyByZeroIsInfinity(t *testing.T) {
	result := G.ScalarMultiply(bigint.New(FieldWidth))
	assert.True(t, result.IsInfinity())
}

func TestAffineJacobianRoundTrip(t *testing.T) {
	two := bigint.FromUint64(FieldWidth, 2)
	p := G.ScalarMultiply(two).ToAffine()
	back := FromAffine(p).ToAffine()
	assert.True(t, p.Equal(back))
}

func TestScalarMultiplyDistributesOverAddition(t *testing.T) {
	a := bigint.FromUint64(FieldWidth, 7)
	b := bigint.FromUint64(FieldWidth, 11)
	sum := a.Add(b)

	left := G.ScalarMultiply(sum).ToAffine()

	aG := G.ScalarMultiply(a)
	bG := G.ScalarMultiply(b)
	right := aG.Add(bG).ToAffine()

	assert.True(t, left.Equal(right))
}

func TestDoublingMatchesSelfAddition(t *testing.T) {
	p := G.ScalarMultiply(bigint.FromUint64(FieldWidth, 5))
	doubled := p.Double().ToAffine()
	added := p.Add(p).ToAffine()
	assert.True(t, doubled.Equal(added))
}

func TestMixedAdditionMatchesGenericAddition(t *testing.T) {
	a := G.ScalarMultiply(bigint.FromUint64(FieldWidth, 3))
	bAffine := G.ScalarMultiply(bigint.FromUint64(FieldWidth, 4)).ToAffine()

	mixed := a.AddAffine(bAffine).ToAffine()
	generic := a.Add(FromAffine(bAffine)).ToAffine()
	assert.True(t, mixed.Equal(generic))
}

func TestAddInfinityIsIdentity(t *testing.T) {
	p := G.ScalarMultiply(bigint.FromUint64(FieldWidth, 9))
	sum := p.Add(FromAffine(InfinityAffine())).ToAffine()
	assert.True(t, sum.Equal(p.ToAffine()))
}

func TestAffinePointBytesEncodesUncompressedForm(t *testing.T) {
	b := G.Bytes()
	assert.Len(t, b, 65)
	assert.Equal(t, byte(0x04), b[0])
}

func TestInfinityAffineBytesIsSingleZeroByte(t *testing.T) {
	assert.Equal(t, []byte{0x00}, InfinityAffine().Bytes())
}
