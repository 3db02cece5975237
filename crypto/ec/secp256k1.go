// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ec implements affine and Jacobian point arithmetic over the
// secp256k1 curve y^2 = x^3 + 7 used by crypto/ecdsa, built entirely on
// crypto/bigint rather than any platform elliptic-curve library.
package ec

import "github.com/ledgerforge/pedacoin/crypto/bigint"

// FieldWidth is the limb width of field elements and scalars (256 bits).
const FieldWidth = 4

// BarrettWidth is the scratch width used for Barrett-reduced field and
// scalar arithmetic: wide enough to hold a full-width product (2*256
// bits) plus the Barrett algorithm's k+1 headroom limbs.
const BarrettWidth = 12

var (
	// P is the secp256k1 field prime.
	P = bigint.FromLimbsLE(0xFFFFFFFEFFFFFC2F, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF)

	// N is the order of the base point G.
	N = bigint.FromLimbsLE(0xBFD25E8CD0364141, 0xBAAEDCE6AF48A03B, 0xFFFFFFFFFFFFFFFE, 0xFFFFFFFFFFFFFFFF)

	gx = bigint.FromLimbsLE(0x59F2815B16F81798, 0x029BFCDB2DCE28D9, 0x55A06295CE870B07, 0x79BE667EF9DCBBAC)
	gy = bigint.FromLimbsLE(0x9C47D08FFB10D4B8, 0xFD17B448A6855419, 0x5DA4FBFC0E1108A8, 0x483ADA7726A3C465)

	// G is the secp256k1 base point.
	G = NewAffinePoint(gx, gy)

	// muP and muN are precomputed Barrett reciprocals for P and N,
	// widened to BarrettWidth so field/scalar Mod arithmetic never has
	// to recompute them.
	muP = bigint.FromLimbsLE(
		0x0, 0x0, 0x00000001000003d1, 0x0, 0x0, 0x0,
		0x1, 0x0, 0x0, 0x0, 0x0, 0x0,
	)
	muN = bigint.FromLimbsLE(
		0xe697f5e45bcd07c7, 0x9d671cd581c69bc5, 0x402da1732fc9bec0, 0x4551231950b75fc4, 0x1, 0x0,
		0x1, 0x0, 0x0, 0x0, 0x0, 0x0,
	)

	pWide = P.Resize(BarrettWidth)
	nWide = N.Resize(BarrettWidth)
)

// modP returns x reduced mod P at BarrettWidth, with the precomputed
// reciprocal already attached.
func modP(x *bigint.Int) *bigint.Mod {
	return bigint.NewModWithMu(x.Resize(BarrettWidth), pWide.Clone(), muP.Clone())
}

func modPFromUint(v uint64) *bigint.Mod {
	return modP(bigint.FromUint64(FieldWidth, v))
}

// ModN returns x reduced mod N (the curve order) at BarrettWidth, with
// the precomputed reciprocal already attached. Exported for crypto/ecdsa,
// which does all of its scalar arithmetic mod N.
func ModN(x *bigint.Int) *bigint.Mod {
	return bigint.NewModWithMu(x.Resize(BarrettWidth), nWide.Clone(), muN.Clone())
}
