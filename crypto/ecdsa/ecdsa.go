// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ecdsa implements key generation, signing, and verification
// over secp256k1 (crypto/ec), with DER-encoded, base64-on-disk key
// files rather than any standard PEM/PKCS8 container.
package ecdsa

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/ledgerforge/pedacoin/crypto/bigint"
	"github.com/ledgerforge/pedacoin/crypto/ec"
	"github.com/ledgerforge/pedacoin/crypto/sha256"
	"github.com/ledgerforge/pedacoin/internal/der"
)

// PrivateKey is a secp256k1 scalar in [1, N).
type PrivateKey struct {
	Key *bigint.Int
}

// PublicKey is a secp256k1 curve point.
type PublicKey struct {
	Key *ec.AffinePoint
}

// Signature is an (r, s) pair. Bytes serializes it with the affine
// point wire layout purely for convenience; it is never treated as a
// curve point.
type Signature struct {
	R, S *bigint.Int
}

// GenerateKeyPair produces a uniformly random private key in [1, N)
// and its corresponding public key.
func GenerateKeyPair() (*PublicKey, *PrivateKey) {
	priv := randomScalarBelow(ec.N)
	pub := ec.G.ScalarMultiply(priv).ToAffine()
	return &PublicKey{Key: pub}, &PrivateKey{Key: priv}
}

func randomScalarBelow(bound *bigint.Int) *bigint.Int {
	for {
		k := bigint.RandFull(ec.FieldWidth)
		if !k.IsZero() && k.Cmp(bound) < 0 {
			return k
		}
	}
}

// Sign produces a deterministic-shape (but randomized-nonce) ECDSA
// signature over message's SHA-256 digest.
func Sign(message []byte, priv *PrivateKey) *Signature {
	z := sha256.Sum(message).ToBigInt()
	zMod := ec.ModN(z)
	da := ec.ModN(priv.Key)

	for {
		k := randomScalarBelow(ec.N)
		p := ec.G.ScalarMultiply(k).ToAffine()
		r := ec.ModN(p.X)
		if r.Integer.IsZero() {
			continue
		}

		kInv := bigint.ModInverse(k.Resize(ec.BarrettWidth), ec.N.Resize(ec.BarrettWidth))
		kInvMod := ec.ModN(kInv)

		s := kInvMod.Mul(zMod.Add(r.Mul(da)))
		if s.Integer.IsZero() {
			continue
		}
		return &Signature{R: r.Integer.Resize(ec.FieldWidth), S: s.Integer.Resize(ec.FieldWidth)}
	}
}

// Verify reports whether sig is a valid ECDSA signature over message's
// SHA-256 digest under pub.
func Verify(sig *Signature, message []byte, pub *PublicKey) bool {
	zero := bigint.New(ec.FieldWidth)
	if sig.R.Equal(zero) || sig.S.Equal(zero) || sig.R.Cmp(ec.N) >= 0 || sig.S.Cmp(ec.N) >= 0 {
		return false
	}

	z := sha256.Sum(message).ToBigInt()
	zMod := ec.ModN(z)

	sInv := bigint.ModInverse(sig.S.Resize(ec.BarrettWidth), ec.N.Resize(ec.BarrettWidth))
	sInvMod := ec.ModN(sInv)

	u1 := zMod.Mul(sInvMod)
	u2 := ec.ModN(sig.R).Mul(sInvMod)

	p1 := ec.G.ScalarMultiply(u1.Integer.Resize(ec.FieldWidth))
	p2 := pub.Key.ScalarMultiply(u2.Integer.Resize(ec.FieldWidth))
	p := p1.Add(p2).ToAffine()

	x1 := ec.ModN(p.X)
	return x1.Integer.Equal(sig.R.Resize(ec.BarrettWidth))
}

// Bytes serializes sig using the AffinePoint uncompressed wire form
// (0x04 ∥ r(32B) ∥ s(32B)), reusing the point encoding purely as a
// convenient fixed-size container for the (r, s) pair.
func (sig *Signature) Bytes() []byte {
	return ec.NewAffinePoint(sig.R, sig.S).Bytes()
}

// GetDEREncoding returns the DER encoding of priv.
func (priv *PrivateKey) GetDEREncoding() []byte {
	return der.EncodeSequence([]*bigint.Int{priv.Key})
}

// Save writes priv to file as base64-encoded DER.
func (priv *PrivateKey) Save(file string) error {
	return os.WriteFile(file, []byte(base64.StdEncoding.EncodeToString(priv.GetDEREncoding())), 0o600)
}

// LoadPrivateKey reads a private key previously written by Save.
func LoadPrivateKey(file string) (*PrivateKey, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("ecdsa: reading private key file: %w", err)
	}
	decoded, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("ecdsa: decoding private key base64: %w", err)
	}
	fields := der.DecodeSequence(ec.FieldWidth, decoded)
	if len(fields) != 1 {
		panic(fmt.Sprintf("ecdsa: invalid DER encoding for private key, expected 1 field, got %d", len(fields)))
	}
	return &PrivateKey{Key: fields[0]}, nil
}

// String renders priv's raw scalar as fixed-width hex.
func (priv *PrivateKey) String() string {
	return priv.Key.ToHex()
}

// GetDEREncoding returns the DER encoding of pub's (x, y) coordinates.
func (pub *PublicKey) GetDEREncoding() []byte {
	return der.EncodeSequence([]*bigint.Int{pub.Key.X, pub.Key.Y})
}

// Save writes pub to file as base64-encoded DER.
func (pub *PublicKey) Save(file string) error {
	return os.WriteFile(file, []byte(base64.StdEncoding.EncodeToString(pub.GetDEREncoding())), 0o600)
}

// LoadPublicKey reads a public key previously written by Save.
func LoadPublicKey(file string) (*PublicKey, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("ecdsa: reading public key file: %w", err)
	}
	decoded, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("ecdsa: decoding public key base64: %w", err)
	}
	fields := der.DecodeSequence(ec.FieldWidth, decoded)
	if len(fields) != 2 {
		panic(fmt.Sprintf("ecdsa: invalid DER encoding for public key, expected 2 fields, got %d", len(fields)))
	}
	return &PublicKey{Key: ec.NewAffinePoint(fields[0], fields[1])}, nil
}

// String renders pub in the "04" + hex(x) + hex(y) form.
func (pub *PublicKey) String() string {
	return pub.Key.String()
}
