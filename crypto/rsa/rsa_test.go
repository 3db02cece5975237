// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rsa

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerforge/pedacoin/crypto/bigint"
)

// TestGenerateSmallPrimesSieve exercises the sieve in isolation, which
// is fast, before any test reaches for the much slower full key
// generation.
func TestGenerateSmallPrimesSieve(t *testing.T) {
	primes := generateSmallPrimes(30)
	assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, primes)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	pub, priv := GenerateKeyPair()
	message := bigint.FromUint64(KeySize, 424242)

	ciphertext := Encrypt(message, pub)
	recovered := Decrypt(ciphertext, priv)
	assert.True(t, recovered.Equal(message))
}

func TestSignVerifyRoundTrip(t *testing.T) {
	pub, priv := GenerateKeyPair()
	data := []byte("coinbase transaction body")

	sig := Sign(data, priv)
	assert.True(t, Verify(sig, data, pub))
}

func TestVerifyFailsOnTamperedData(t *testing.T) {
	pub, priv := GenerateKeyPair()
	sig := Sign([]byte("original"), priv)
	assert.False(t, Verify(sig, []byte("tampered"), pub))
}

func TestKeyFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	pub, priv := GenerateKeyPair()

	privFile := filepath.Join(dir, "rsa_priv.key")
	pubFile := filepath.Join(dir, "rsa_pub.key")
	require.NoError(t, priv.Save(privFile))
	require.NoError(t, pub.Save(pubFile))

	loadedPriv, err := LoadPrivateKey(privFile)
	require.NoError(t, err)
	loadedPub, err := LoadPublicKey(pubFile)
	require.NoError(t, err)

	assert.True(t, loadedPriv.N.Equal(priv.N))
	assert.True(t, loadedPub.N.Equal(pub.N))

	message := bigint.FromUint64(KeySize, 99)
	ciphertext := Encrypt(message, loadedPub)
	assert.True(t, Decrypt(ciphertext, loadedPriv).Equal(message))
}
