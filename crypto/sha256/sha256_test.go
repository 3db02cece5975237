// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sha256

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// NIST FIPS 180-4 test vectors.
func TestSumMatchesNISTVectors(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	}
	for _, c := range cases {
		got := Sum([]byte(c.input))
		assert.Equal(t, c.want, got.String())
	}
}

func TestFromBytesRoundTrip(t *testing.T) {
	h := Sum([]byte("round trip"))
	back := FromBytes(h.Bytes())
	assert.True(t, h.Equal(back))
}

func TestFromBytesWrongLengthPanics(t *testing.T) {
	assert.Panics(t, func() { FromBytes([]byte{1, 2, 3}) })
}

func TestIsValidRespectsDifficulty(t *testing.T) {
	// An all-zero hash is below every target.
	zero := Hash{}
	assert.True(t, zero.IsValid(0))
	assert.True(t, zero.IsValid(63))
}

func TestToBigIntPreservesHexValue(t *testing.T) {
	h := Sum([]byte("to-bigint"))
	n := h.ToBigInt()
	assert.Equal(t, h.String(), n.ToHex())
}
