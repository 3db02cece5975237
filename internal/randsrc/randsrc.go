// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package randsrc is the single leaf dependency on the OS entropy source.
// Every higher-level package that needs randomness (key generation,
// nonce selection, the RSA prime search, the coinbase salt) goes through
// here so the endianness convention lives in exactly one place.
package randsrc

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// RandomWords reads n*8 bytes from the OS entropy source in a single
// blocking read and interprets each 8-byte group as a big-endian uint64.
// Pinning big-endian (rather than the host's native endianness) keeps
// recorded entropy streams reproducible across platforms.
func RandomWords(n int) []uint64 {
	buf := RandomBytes(n * 8)
	words := make([]uint64, n)
	for i := 0; i < n; i++ {
		words[i] = binary.BigEndian.Uint64(buf[i*8 : i*8+8])
	}
	return words
}

// RandomBytes reads n bytes from the OS entropy source.
func RandomBytes(n int) []byte {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("randsrc: entropy source failed: %v", err))
	}
	return buf
}
