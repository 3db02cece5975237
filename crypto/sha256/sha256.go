// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sha256 implements the SHA-256 hash function from scratch,
// rather than delegating to crypto/sha256 in the standard library, and
// wraps the resulting digest in the Hash type used throughout the
// ledger as a block/transaction identifier and proof-of-work target.
package sha256

import (
	"encoding/hex"
	"fmt"

	"github.com/ledgerforge/pedacoin/crypto/bigint"
)

var h0 = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Size is the length in bytes of a SHA-256 digest.
const Size = 32

// Hash is a 32-byte SHA-256 digest, used as a block hash, transaction
// ID, and Merkle node value.
type Hash struct {
	bytes [Size]byte
}

// Sum computes the SHA-256 digest of input.
func Sum(input []byte) Hash {
	var out Hash
	out.bytes = sum(input)
	return out
}

// FromBytes wraps an existing 32-byte digest without recomputing it.
// Panics if b is not exactly Size bytes.
func FromBytes(b []byte) Hash {
	if len(b) != Size {
		panic(fmt.Sprintf("sha256: digest must be %d bytes, got %d", Size, len(b)))
	}
	var out Hash
	copy(out.bytes[:], b)
	return out
}

// Bytes returns the digest's raw bytes.
func (h Hash) Bytes() []byte {
	return h.bytes[:]
}

// ToBigInt reinterprets the digest as a big-endian unsigned integer at
// a 4-limb (256-bit) width, for use as an EC scalar or field value.
func (h Hash) ToBigInt() *bigint.Int {
	return bigint.FromBytesBE(4, h.bytes[:])
}

// IsValid reports whether h meets a proof-of-work target defined by
// difficulty: the top 64 bits of h, read as a big-endian integer, must
// be strictly less than (2^64-1) >> difficulty. Higher difficulty means a
// smaller target and fewer valid hashes.
func (h Hash) IsValid(difficulty uint64) bool {
	target := uint64(0xFFFFFFFFFFFFFFFF) >> difficulty
	value := uint64(h.bytes[0])<<56 | uint64(h.bytes[1])<<48 | uint64(h.bytes[2])<<40 | uint64(h.bytes[3])<<32 |
		uint64(h.bytes[4])<<24 | uint64(h.bytes[5])<<16 | uint64(h.bytes[6])<<8 | uint64(h.bytes[7])
	return value < target
}

// Equal reports whether h and other are the same digest.
func (h Hash) Equal(other Hash) bool {
	return h.bytes == other.bytes
}

// String renders the digest as lowercase hex.
func (h Hash) String() string {
	return hex.EncodeToString(h.bytes[:])
}

func sum(input []byte) [Size]byte {
	bitLen := uint64(len(input)) * 8
	padded := make([]byte, len(input), len(input)+128)
	copy(padded, input)
	padded = append(padded, 0x80)
	for len(padded)%64 != 56 {
		padded = append(padded, 0x00)
	}
	var lengthBytes [8]byte
	for i := 0; i < 8; i++ {
		lengthBytes[7-i] = byte(bitLen >> (8 * i))
	}
	padded = append(padded, lengthBytes[:]...)

	h := h0
	var w [64]uint32
	for off := 0; off < len(padded); off += 64 {
		chunk := padded[off : off+64]
		for i := 0; i < 16; i++ {
			w[i] = uint32(chunk[i*4])<<24 | uint32(chunk[i*4+1])<<16 | uint32(chunk[i*4+2])<<8 | uint32(chunk[i*4+3])
		}
		for i := 16; i < 64; i++ {
			s0 := rotr(w[i-15], 7) ^ rotr(w[i-15], 18) ^ (w[i-15] >> 3)
			s1 := rotr(w[i-2], 17) ^ rotr(w[i-2], 19) ^ (w[i-2] >> 10)
			w[i] = w[i-16] + s0 + w[i-7] + s1
		}

		a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
		for i := 0; i < 64; i++ {
			s1 := rotr(e, 6) ^ rotr(e, 11) ^ rotr(e, 25)
			ch := (e & f) ^ (^e & g)
			temp1 := hh + s1 + ch + k[i] + w[i]
			s0 := rotr(a, 2) ^ rotr(a, 13) ^ rotr(a, 22)
			maj := (a & b) ^ (a & c) ^ (b & c)
			temp2 := s0 + maj

			hh = g
			g = f
			f = e
			e = d + temp1
			d = c
			c = b
			b = a
			a = temp1 + temp2
		}

		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e
		h[5] += f
		h[6] += g
		h[7] += hh
	}

	var result [Size]byte
	for i, v := range h {
		result[i*4] = byte(v >> 24)
		result[i*4+1] = byte(v >> 16)
		result[i*4+2] = byte(v >> 8)
		result[i*4+3] = byte(v)
	}
	return result
}

func rotr(x uint32, n uint) uint32 {
	return (x >> n) | (x << (32 - n))
}
