// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignThenVerifySucceeds(t *testing.T) {
	pub, priv := GenerateKeyPair()
	msg := []byte("pay alice 5 coins")
	sig := Sign(msg, priv)
	assert.True(t, Verify(sig, msg, pub))
}

func TestVerifyFailsOnTamperedMessage(t *testing.T) {
	pub, priv := GenerateKeyPair()
	sig := Sign([]byte("original message"), priv)
	assert.False(t, Verify(sig, []byte("tampered message"), pub))
}

func TestVerifyFailsWithWrongKey(t *testing.T) {
	pub1, _ := GenerateKeyPair()
	_, priv2 := GenerateKeyPair()
	msg := []byte("shared message")
	sig := Sign(msg, priv2)
	assert.False(t, Verify(sig, msg, pub1))
}

func TestKeyFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	pub, priv := GenerateKeyPair()

	privFile := filepath.Join(dir, "priv.key")
	pubFile := filepath.Join(dir, "pub.key")
	require.NoError(t, priv.Save(privFile))
	require.NoError(t, pub.Save(pubFile))

	loadedPriv, err := LoadPrivateKey(privFile)
	require.NoError(t, err)
	loadedPub, err := LoadPublicKey(pubFile)
	require.NoError(t, err)

	assert.True(t, loadedPriv.Key.Equal(priv.Key))
	assert.True(t, loadedPub.Key.Equal(pub.Key))

	msg := []byte("roundtrip message")
	sig := Sign(msg, loadedPriv)
	assert.True(t, Verify(sig, msg, loadedPub))
}
