// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ec

import (
	"fmt"

	"github.com/ledgerforge/pedacoin/crypto/bigint"
)

// AffinePoint is a point on the curve in (x, y) form, or the point at
// infinity (the group identity).
type AffinePoint struct {
	X, Y     *bigint.Int
	infinity bool
}

// NewAffinePoint builds a finite affine point. Callers are responsible
// for passing coordinates that actually satisfy the curve equation;
// this constructor does not check membership.
func NewAffinePoint(x, y *bigint.Int) *AffinePoint {
	return &AffinePoint{X: x, Y: y}
}

// InfinityAffine returns the point at infinity.
func InfinityAffine() *AffinePoint {
	return &AffinePoint{X: bigint.New(FieldWidth), Y: bigint.New(FieldWidth), infinity: true}
}

// IsInfinity reports whether p is the point at infinity.
func (p *AffinePoint) IsInfinity() bool {
	return p.infinity
}

// Equal reports whether p and other represent the same point.
func (p *AffinePoint) Equal(other *AffinePoint) bool {
	if p.IsInfinity() || other.IsInfinity() {
		return p.IsInfinity() == other.IsInfinity()
	}
	return p.X.Equal(other.X) && p.Y.Equal(other.Y)
}

// Bytes serializes p in uncompressed SEC1 form: a single 0x00 byte for
// infinity, otherwise 0x04 followed by the big-endian x and y
// coordinates, each padded to 32 bytes.
func (p *AffinePoint) Bytes() []byte {
	if p.IsInfinity() {
		return []byte{0x00}
	}
	out := make([]byte, 0, 65)
	out = append(out, 0x04)
	out = append(out, fixedBE(p.X)...)
	out = append(out, fixedBE(p.Y)...)
	return out
}

func fixedBE(x *bigint.Int) []byte {
	b := x.ToBytesBE()
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

// String renders p as "04" + hex(x) + hex(y), matching the wire
// encoding used for public keys and signature points.
func (p *AffinePoint) String() string {
	return fmt.Sprintf("04%s%s", p.X.ToHex(), p.Y.ToHex())
}

// ScalarMultiply computes scalar*p via left-to-right double-and-add,
// returning the result in Jacobian form.
func (p *AffinePoint) ScalarMultiply(scalar *bigint.Int) *JacobianPoint {
	if p.IsInfinity() || scalar.IsZero() {
		return FromAffine(InfinityAffine())
	}
	result := FromAffine(InfinityAffine())
	bits := scalar.Width() * 64
	for i := bits - 1; i >= 0; i-- {
		result = result.Double()
		limb := scalar.Limb(i / 64)
		if limb&(1<<uint(i%64)) != 0 {
			result = result.AddAffine(p)
		}
	}
	return result
}

// JacobianPoint is a point in Jacobian projective coordinates
// (X, Y, Z), representing the affine point (X/Z^2, Y/Z^3). Z == 0
// represents the point at infinity.
type JacobianPoint struct {
	X, Y, Z *bigint.Int
}

// NewJacobianPoint builds a Jacobian point directly from its
// coordinates.
func NewJacobianPoint(x, y, z *bigint.Int) *JacobianPoint {
	return &JacobianPoint{X: x, Y: y, Z: z}
}

// FromAffine lifts an affine point into Jacobian coordinates.
func FromAffine(p *AffinePoint) *JacobianPoint {
	if p.IsInfinity() {
		return &JacobianPoint{
			X: bigint.FromUint64(FieldWidth, 1),
			Y: bigint.FromUint64(FieldWidth, 1),
			Z: bigint.New(FieldWidth),
		}
	}
	return &JacobianPoint{X: p.X.Clone(), Y: p.Y.Clone(), Z: bigint.FromUint64(FieldWidth, 1)}
}

// IsInfinity reports whether j represents the point at infinity.
func (j *JacobianPoint) IsInfinity() bool {
	return j.Z.IsZero()
}

// ToAffine converts j back to affine coordinates, computing Z^-1 mod P
// once and deriving Z^-2 and Z^-3 from it.
func (j *JacobianPoint) ToAffine() *AffinePoint {
	if j.IsInfinity() {
		return InfinityAffine()
	}
	px := modP(j.X)
	py := modP(j.Y)
	pz := modP(j.Z)

	zInv := bigint.NewModWithMu(bigint.ModInverse(pz.Integer, pWide), pWide.Clone(), muP.Clone())
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)

	x := px.Mul(zInv2)
	y := py.Mul(zInv3)
	return NewAffinePoint(x.Integer.Resize(FieldWidth), y.Integer.Resize(FieldWidth))
}

// Double computes 2*j using the Bernstein-Lange (2007) doubling
// formulas for a=0 curves.
func (j *JacobianPoint) Double() *JacobianPoint {
	if j.IsInfinity() {
		return FromAffine(InfinityAffine())
	}
	x1 := modP(j.X)
	y1 := modP(j.Y)
	z1 := modP(j.Z)

	two := modPFromUint(2)
	three := modPFromUint(3)
	eight := modPFromUint(8)

	a := x1.Square()
	b := y1.Square()
	c := b.Square()
	d := two.Mul(x1.Add(b).Square().Sub(a).Sub(c))
	e := three.Mul(a)
	f := e.Square()

	x3 := f.Sub(two.Mul(d))
	y3 := e.Mul(d.Sub(x3)).Sub(eight.Mul(c))
	z3 := two.Mul(y1).Mul(z1)

	return &JacobianPoint{
		X: x3.Integer.Resize(FieldWidth),
		Y: y3.Integer.Resize(FieldWidth),
		Z: z3.Integer.Resize(FieldWidth),
	}
}

// AddAffine adds an affine point to j (mixed addition), which avoids a
// field inversion on the affine side.
func (j *JacobianPoint) AddAffine(other *AffinePoint) *JacobianPoint {
	if j.IsInfinity() {
		return FromAffine(other)
	}
	if other.IsInfinity() {
		return j
	}
	x1 := modP(j.X)
	y1 := modP(j.Y)
	z1 := modP(j.Z)
	x2 := modP(other.X)
	y2 := modP(other.Y)

	z1sq := z1.Square()
	u2 := x2.Mul(z1sq)
	s2 := y2.Mul(z1sq).Mul(z1)
	h := u2.Sub(x1)
	r := s2.Sub(y1)

	if h.Integer.IsZero() {
		if r.Integer.IsZero() {
			return j.Double()
		}
		return FromAffine(InfinityAffine())
	}

	h2 := h.Square()
	h3 := h.Mul(h2)
	u1h2 := x1.Mul(h2)
	two := modPFromUint(2)

	x3 := r.Square().Sub(h3).Sub(two.Mul(u1h2))
	y3 := r.Mul(u1h2.Sub(x3)).Sub(y1.Mul(h3))
	z3 := z1.Mul(h)

	return &JacobianPoint{
		X: x3.Integer.Resize(FieldWidth),
		Y: y3.Integer.Resize(FieldWidth),
		Z: z3.Integer.Resize(FieldWidth),
	}
}

// Add computes the generic Jacobian+Jacobian sum of j and other.
// Infinity in either operand short-circuits to the other; a zero
// difference in the X coordinates with nonzero Y difference
// short-circuits to infinity (the operands are additive inverses).
func (j *JacobianPoint) Add(other *JacobianPoint) *JacobianPoint {
	if j.IsInfinity() {
		return other
	}
	if other.IsInfinity() {
		return j
	}
	x1 := modP(j.X)
	y1 := modP(j.Y)
	z1 := modP(j.Z)
	x2 := modP(other.X)
	y2 := modP(other.Y)
	z2 := modP(other.Z)

	z1z1 := z1.Square()
	z2z2 := z2.Square()
	u1 := x1.Mul(z2z2)
	u2 := x2.Mul(z1z1)
	s1 := y1.Mul(z2).Mul(z2z2)
	s2 := y2.Mul(z1).Mul(z1z1)
	h := u2.Sub(u1)
	r := s2.Sub(s1)

	if h.Integer.IsZero() {
		if r.Integer.IsZero() {
			return j.Double()
		}
		return FromAffine(InfinityAffine())
	}

	hh := h.Square()
	hhh := h.Mul(hh)
	v := u1.Mul(hh)
	two := modPFromUint(2)

	x3 := r.Square().Sub(hhh).Sub(two.Mul(v))
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(hhh))
	z3 := z1.Mul(z2).Mul(h)

	return &JacobianPoint{
		X: x3.Integer.Resize(FieldWidth),
		Y: y3.Integer.Resize(FieldWidth),
		Z: z3.Integer.Resize(FieldWidth),
	}
}
