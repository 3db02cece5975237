// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rsa implements RSA key generation, CRT-accelerated
// decryption, and sign/verify from scratch on top of crypto/bigint,
// including a multi-goroutine Miller-Rabin prime search rather than
// relying on the standard library's crypto/rsa.
package rsa

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/ledgerforge/pedacoin/crypto/bigint"
	"github.com/ledgerforge/pedacoin/crypto/sha256"
	"github.com/ledgerforge/pedacoin/internal/der"
)

// KeySize is the limb width of RSA key material (50 limbs = 3200 bits
// of storage; actual prime candidates found by the search are narrower
// than this, see primegen.go).
const KeySize = 50

// wideKeySize is the scratch width used for modulus-sized arithmetic
// (n = p*q, phi, d), double KeySize to hold a full product.
const wideKeySize = 2 * KeySize

// MillerRounds is the number of Miller-Rabin witness rounds run per
// prime candidate.
const MillerRounds = 16

var publicExponent = bigint.FromUint64(wideKeySize, 65537)

// PublicKey holds the RSA modulus and public exponent.
type PublicKey struct {
	N *bigint.Int
	E *bigint.Int
}

// PrivateKey holds the RSA modulus, exponents, and the CRT parameters
// used to accelerate decryption and signing.
type PrivateKey struct {
	N    *bigint.Int
	E    *bigint.Int
	D    *bigint.Int
	P    *bigint.Int
	Q    *bigint.Int
	Dp   *bigint.Int
	Dq   *bigint.Int
	Qinv *bigint.Int
}

// GenerateKeyPair generates two probable primes in parallel and derives
// an RSA key pair with public exponent 65537, retrying from scratch if
// 65537 turns out not to be coprime with phi(n).
func GenerateKeyPair() (*PublicKey, *PrivateKey) {
	for {
		primes := generatePrimes(2)
		p, q := primes[0], primes[1]

		n := p.Resize(wideKeySize).Mul(q.Resize(wideKeySize))
		one := bigint.FromUint64(wideKeySize, 1)
		phi := bigint.LCM(p.Resize(wideKeySize).Sub(one), q.Resize(wideKeySize).Sub(one))

		if publicExponent.Cmp(phi) >= 0 || !bigint.GCD(publicExponent, phi).Equal(one) {
			continue
		}

		d := bigint.ModInverse(publicExponent, phi)
		dp := bigint.NewMod(d.Clone(), p.Resize(wideKeySize).Sub(one)).SlowReduce()
		dq := bigint.NewMod(d.Clone(), q.Resize(wideKeySize).Sub(one)).SlowReduce()
		qinv := bigint.ModInverse(q.Resize(KeySize), p.Resize(KeySize))

		pub := &PublicKey{N: n.Resize(KeySize), E: publicExponent.Resize(KeySize)}
		priv := &PrivateKey{
			N:    n.Resize(KeySize),
			E:    publicExponent.Resize(KeySize),
			D:    d.Resize(KeySize),
			P:    p.Resize(KeySize),
			Q:    q.Resize(KeySize),
			Dp:   dp.Integer.Resize(KeySize),
			Dq:   dq.Integer.Resize(KeySize),
			Qinv: qinv.Resize(KeySize),
		}
		return pub, priv
	}
}

// Encrypt computes message^e mod n.
func Encrypt(message *bigint.Int, pub *PublicKey) *bigint.Int {
	m := bigint.NewMod(message.Resize(wideKeySize), pub.N.Resize(wideKeySize))
	return m.Pow(pub.E.Resize(wideKeySize)).Integer.Resize(KeySize)
}

// Decrypt computes ciphertext^d mod n using the CRT shortcut through p
// and q, with the standard correction when the CRT combination step
// underflows.
func Decrypt(ciphertext *bigint.Int, priv *PrivateKey) *bigint.Int {
	m1 := bigint.NewMod(ciphertext.Resize(wideKeySize), priv.P.Resize(wideKeySize)).SlowReduce()
	m2 := bigint.NewMod(ciphertext.Resize(wideKeySize), priv.Q.Resize(wideKeySize)).SlowReduce()
	m1 = m1.Pow(priv.Dp.Resize(wideKeySize))
	m2 = m2.Pow(priv.Dq.Resize(wideKeySize))

	if m1.Integer.Cmp(m2.Integer) < 0 {
		quotient, remainder := bigint.QuotientRemainder(priv.Q, priv.P)
		qpp := quotient
		if !remainder.IsZero() {
			qpp = qpp.Add(bigint.FromUint64(KeySize, 1))
		}
		qpp = qpp.Mul(priv.P)
		m1.Integer = m1.Integer.Add(qpp.Resize(wideKeySize))
	}

	h := bigint.NewMod(m1.Integer.Sub(m2.Integer).Mul(priv.Qinv.Resize(wideKeySize)), priv.P.Resize(wideKeySize)).SlowReduce()
	return m2.Integer.Add(h.Integer.Mul(priv.Q.Resize(wideKeySize))).Resize(KeySize)
}

// Sign decrypts (with the private key) the SHA-256 digest of data.
func Sign(data []byte, priv *PrivateKey) *bigint.Int {
	digest := sha256.Sum(data).ToBigInt().Resize(KeySize)
	return Decrypt(digest, priv)
}

// Verify reports whether signature is a valid RSA signature over
// data's SHA-256 digest under pub.
func Verify(signature *bigint.Int, data []byte, pub *PublicKey) bool {
	digest := sha256.Sum(data).ToBigInt().Resize(KeySize)
	return Encrypt(signature, pub).Equal(digest)
}

// GetDEREncoding returns the DER encoding of priv's eight fields, in
// the fixed order n, e, d, p, q, dp, dq, qinv.
func (priv *PrivateKey) GetDEREncoding() []byte {
	return der.EncodeSequence([]*bigint.Int{priv.N, priv.E, priv.D, priv.P, priv.Q, priv.Dp, priv.Dq, priv.Qinv})
}

// Save writes priv to file as base64-encoded DER.
func (priv *PrivateKey) Save(file string) error {
	return os.WriteFile(file, []byte(base64.StdEncoding.EncodeToString(priv.GetDEREncoding())), 0o600)
}

// LoadPrivateKey reads a private key previously written by Save.
func LoadPrivateKey(file string) (*PrivateKey, error) {
	fields, err := loadDERFields(file, 8)
	if err != nil {
		return nil, fmt.Errorf("rsa: loading private key: %w", err)
	}
	return &PrivateKey{
		N: fields[0], E: fields[1], D: fields[2], P: fields[3],
		Q: fields[4], Dp: fields[5], Dq: fields[6], Qinv: fields[7],
	}, nil
}

// GetDEREncoding returns the DER encoding of pub's modulus and
// exponent.
func (pub *PublicKey) GetDEREncoding() []byte {
	return der.EncodeSequence([]*bigint.Int{pub.N, pub.E})
}

// Save writes pub to file as base64-encoded DER.
func (pub *PublicKey) Save(file string) error {
	return os.WriteFile(file, []byte(base64.StdEncoding.EncodeToString(pub.GetDEREncoding())), 0o600)
}

// LoadPublicKey reads a public key previously written by Save.
func LoadPublicKey(file string) (*PublicKey, error) {
	fields, err := loadDERFields(file, 2)
	if err != nil {
		return nil, fmt.Errorf("rsa: loading public key: %w", err)
	}
	return &PublicKey{N: fields[0], E: fields[1]}, nil
}

func loadDERFields(file string, want int) ([]*bigint.Int, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	decoded, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding base64: %w", err)
	}
	fields := der.DecodeSequence(KeySize, decoded)
	if len(fields) != want {
		panic(fmt.Sprintf("rsa: invalid DER encoding, expected %d fields, got %d", want, len(fields)))
	}
	return fields, nil
}
