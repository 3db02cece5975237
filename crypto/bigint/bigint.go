// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bigint implements a fixed-width, arbitrary-precision integer
// on top of a slice of 64-bit limbs, least-significant first, interpreted
// as two's-complement. All arithmetic on a given value happens at a
// caller-chosen width; results wrap silently within that width exactly
// like a fixed-width machine register, and callers pick a wide enough
// width when they need headroom (most visibly BigIntMod's Barrett path,
// which borrows a wider scratch width than its modulus).
package bigint

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/bits"

	"github.com/ledgerforge/pedacoin/internal/randsrc"
)

// Int is an N-limb two's-complement integer. The zero value is not
// meaningful; use New or one of the From* constructors.
type Int struct {
	limbs []uint64
}

// New returns a zero-valued Int of the given width (limb count).
func New(width int) *Int {
	if width <= 0 {
		panic("bigint: width must be positive")
	}
	return &Int{limbs: make([]uint64, width)}
}

// FromUint64 returns an Int of the given width whose value is v.
func FromUint64(width int, v uint64) *Int {
	a := New(width)
	a.limbs[0] = v
	return a
}

// FromLimbsLE builds an Int directly from its limb representation,
// least-significant limb first. Used for hardcoding domain constants
// (curve parameters, Barrett reciprocals) at their canonical width.
func FromLimbsLE(limbs ...uint64) *Int {
	a := New(len(limbs))
	copy(a.limbs, limbs)
	return a
}

// FromBytesBE parses a big-endian byte string into an Int of the given
// width. Bytes beyond the width are silently dropped from the top, as
// for Resize; this mirrors to_bytes_be/from_bytes_be round-tripping
// values that already fit in width limbs.
func FromBytesBE(width int, b []byte) *Int {
	a := New(width)
	idx := len(b)
	for limb := 0; limb < width && idx > 0; limb++ {
		start := idx - 8
		if start < 0 {
			start = 0
		}
		var part [8]byte
		copy(part[8-(idx-start):], b[start:idx])
		a.limbs[limb] = binary.BigEndian.Uint64(part[:])
		idx = start
	}
	return a
}

// FromHex parses a fixed-width*16 lowercase hex string (as produced by
// ToHex) into an Int of the given width.
func FromHex(width int, s string) (*Int, error) {
	if len(s) != width*16 {
		return nil, fmt.Errorf("bigint: hex string must be %d characters, got %d", width*16, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("bigint: invalid hex: %w", err)
	}
	return FromBytesBE(width, b), nil
}

// Rand draws a random Int of the given width with a random "size class":
// it reads high+1 fresh random words, uses the first to choose a limb
// count r in [low, high], and fills the low r limbs with the remaining
// words, zeroing the rest. This is NOT uniform over [0, 2^(64*high)); it
// is uniform over a random limb-count class, as specified.
func Rand(width, low, high int) *Int {
	if high < low || low < 0 || low >= width || high >= width {
		panic("bigint: invalid random range")
	}
	words := randsrc.RandomWords(high + 1)
	r := low + int(words[0]%uint64(high-low+1))
	a := New(width)
	for i := 0; i < r; i++ {
		a.limbs[i] = words[i+1]
	}
	return a
}

// RandFull draws a uniformly random Int with every limb filled, i.e.
// uniform over [0, 2^(64*width)). ECDSA nonces and private keys need
// this full-entropy form rather than Rand's random-limb-count form
// (whose low/high bounds can never
// reach a width's top limb, since both must stay strictly below
// width).
func RandFull(width int) *Int {
	a := New(width)
	copy(a.limbs, randsrc.RandomWords(width))
	return a
}

// Width returns the number of limbs.
func (a *Int) Width() int { return len(a.limbs) }

// Clone returns an independent copy.
func (a *Int) Clone() *Int {
	b := New(a.Width())
	copy(b.limbs, a.limbs)
	return b
}

// Limb returns the i-th limb (0 = least significant), or 0 if out of range.
func (a *Int) Limb(i int) uint64 {
	if i < 0 || i >= len(a.limbs) {
		return 0
	}
	return a.limbs[i]
}

func requireSameWidth(a, b *Int) {
	if a.Width() != b.Width() {
		panic(fmt.Sprintf("bigint: width mismatch (%d vs %d)", a.Width(), b.Width()))
	}
}

// IsNegative reports whether the top bit of the top limb is set.
func (a *Int) IsNegative() bool {
	top := a.limbs[len(a.limbs)-1]
	return top&0x8000000000000000 != 0
}

// IsOdd reports whether the least significant bit is set.
func (a *Int) IsOdd() bool {
	return a.limbs[0]&1 != 0
}

// IsZero reports whether every limb is zero.
func (a *Int) IsZero() bool {
	for _, l := range a.limbs {
		if l != 0 {
			return false
		}
	}
	return true
}

// Equal reports bitwise equality (same width required).
func (a *Int) Equal(b *Int) bool {
	requireSameWidth(a, b)
	for i := range a.limbs {
		if a.limbs[i] != b.limbs[i] {
			return false
		}
	}
	return true
}

// Cmp compares the raw limb representations of a and b, most-significant
// limb first, as unsigned 64-bit words. Returns -1, 0, or 1. Note this is
// NOT a signed comparison: the sign bit participates only as the top bit
// of the top limb, exactly as every algorithm in this package expects
// (values are kept non-negative except transiently inside Neg/Shr/Shl).
func (a *Int) Cmp(b *Int) int {
	requireSameWidth(a, b)
	for i := len(a.limbs) - 1; i >= 0; i-- {
		if a.limbs[i] > b.limbs[i] {
			return 1
		}
		if a.limbs[i] < b.limbs[i] {
			return -1
		}
	}
	return 0
}

// Add returns a+b, wrapping silently within the shared width.
func (a *Int) Add(b *Int) *Int {
	requireSameWidth(a, b)
	r := New(a.Width())
	var carry uint64
	for i := range a.limbs {
		sum, c := bits.Add64(a.limbs[i], b.limbs[i], carry)
		r.limbs[i] = sum
		carry = c
	}
	return r
}

// Sub returns a-b, wrapping silently within the shared width.
func (a *Int) Sub(b *Int) *Int {
	requireSameWidth(a, b)
	r := New(a.Width())
	var borrow uint64
	for i := range a.limbs {
		d, bo := bits.Sub64(a.limbs[i], b.limbs[i], borrow)
		r.limbs[i] = d
		borrow = bo
	}
	return r
}

// Not returns the bitwise complement.
func (a *Int) Not() *Int {
	r := New(a.Width())
	for i := range a.limbs {
		r.limbs[i] = ^a.limbs[i]
	}
	return r
}

// Neg returns the two's-complement negation.
func (a *Int) Neg() *Int {
	return a.Not().Add(FromUint64(a.Width(), 1))
}

// fitsUint64 reports whether every limb but the lowest is zero, i.e. the
// raw representation fits in a single 64-bit word.
func (a *Int) fitsUint64() bool {
	for i := 1; i < len(a.limbs); i++ {
		if a.limbs[i] != 0 {
			return false
		}
	}
	return true
}

// singlePartMul multiplies every limb of a by a single 64-bit word,
// propagating carry across the whole width (and dropping overflow past
// the top limb, per the wraparound invariant).
func (a *Int) singlePartMul(other uint64) *Int {
	r := New(a.Width())
	var carry uint64
	for i := range a.limbs {
		hi, lo := bits.Mul64(a.limbs[i], other)
		sum, c := bits.Add64(lo, carry, 0)
		r.limbs[i] = sum
		carry = hi + c
	}
	return r
}

// Mul returns a*b, wrapping silently within the shared width. Single-limb
// operands take a fast path; larger ones use Karatsuba recursion split at
// the midpoint of the operands' significant limbs.
func (a *Int) Mul(b *Int) *Int {
	requireSameWidth(a, b)
	width := a.Width()

	aFits := a.fitsUint64()
	bFits := b.fitsUint64()
	if aFits && bFits {
		hi, lo := bits.Mul64(a.limbs[0], b.limbs[0])
		r := New(width)
		r.limbs[0] = lo
		if width > 1 {
			r.limbs[1] = hi
		}
		return r
	}
	if aFits {
		return b.singlePartMul(a.limbs[0])
	}
	if bFits {
		return a.singlePartMul(b.limbs[0])
	}

	n1, n2 := 1, 1
	for i := 0; i < width; i++ {
		if a.limbs[i] != 0 {
			n1 = i + 1
		}
		if b.limbs[i] != 0 {
			n2 = i + 1
		}
	}
	n := n1
	if n2 > n {
		n = n2
	}
	m := (n + 1) / 2

	x0, y0, x1, y1 := New(width), New(width), New(width), New(width)
	for i := 0; i < m; i++ {
		if i < width {
			x0.limbs[i] = a.limbs[i]
			y0.limbs[i] = b.limbs[i]
		}
		if i+m < width {
			x1.limbs[i] = a.limbs[i+m]
			y1.limbs[i] = b.limbs[i+m]
		}
	}

	z2 := x1.Mul(y1)
	z0 := x0.Mul(y0)
	z1 := x1.Add(x0).Mul(y1.Add(y0)).Sub(z2).Sub(z0)

	return z2.Shl(uint(2 * m * 64)).Add(z1.Shl(uint(m * 64))).Add(z0)
}

// Div performs long division by repeated-doubling restoring division,
// returning the quotient only; the remainder is a-q*b if needed. Panics
// on division by zero. Operands are assumed non-negative, as everywhere
// this package is used (moduli and reduced residues).
func (a *Int) Div(b *Int) *Int {
	requireSameWidth(a, b)
	if b.IsZero() {
		panic("bigint: division by zero")
	}
	width := a.Width()
	q := New(width)
	r := New(width)
	for i := width*64 - 1; i >= 0; i-- {
		r = r.Shl(1)
		bit := (a.limbs[i/64] >> uint(i%64)) & 1
		r.limbs[0] |= bit
		if r.Cmp(b) >= 0 {
			r = r.Sub(b)
			q.limbs[i/64] |= uint64(1) << uint(i%64)
		}
	}
	return q
}

// ModU64 reduces a by a small modulus, used for trial division and 6k±1
// alignment. Panics if m is zero.
func (a *Int) ModU64(m uint64) uint64 {
	if m == 0 {
		panic("bigint: mod by zero")
	}
	var rem uint64
	for i := len(a.limbs) - 1; i >= 0; i-- {
		_, r := bits.Div64(rem, a.limbs[i], m)
		rem = r
	}
	return rem
}

// Shr performs a sign-preserving arithmetic right shift: negative values
// are negated, shifted as their absolute value, then re-negated. Shifts
// of n >= width*64 bits return zero.
func (a *Int) Shr(n uint) *Int {
	width := a.Width()
	if n >= uint(width)*64 {
		return New(width)
	}
	if a.IsNegative() {
		return a.Neg().Shr(n).Neg()
	}
	r := New(width)
	partsShift := int(n / 64)
	bitsShift := n % 64
	for i := 0; i < width-partsShift; i++ {
		r.limbs[i] = a.limbs[i+partsShift]
	}
	if bitsShift != 0 {
		for i := 0; i < width; i++ {
			var next uint64
			if i+1 < width {
				next = r.limbs[i+1]
			}
			r.limbs[i] = (r.limbs[i] >> bitsShift) | (next << (64 - bitsShift))
		}
	}
	return r
}

// Shl performs a sign-preserving arithmetic left shift, mirroring Shr.
// Shifts of n >= width*64 bits return zero.
func (a *Int) Shl(n uint) *Int {
	width := a.Width()
	if n >= uint(width)*64 {
		return New(width)
	}
	if a.IsNegative() {
		return a.Neg().Shl(n).Neg()
	}
	r := New(width)
	partsShift := int(n / 64)
	bitsShift := n % 64
	for i := 0; i < width-partsShift; i++ {
		r.limbs[i+partsShift] = a.limbs[i]
	}
	if bitsShift != 0 {
		for i := width - 1; i >= 0; i-- {
			var prev uint64
			if i > 0 {
				prev = r.limbs[i-1]
			}
			r.limbs[i] = (r.limbs[i] << bitsShift) | (prev >> (64 - bitsShift))
		}
	}
	return r
}

// Log2 returns floor(log2(|a|))+1 for nonzero a (the bit length), 0 for
// a zero value. Used to size Barrett's k parameter.
func (a *Int) Log2() uint64 {
	for i := len(a.limbs) - 1; i >= 0; i-- {
		if a.limbs[i] != 0 {
			result := uint64(i) * 64
			j := 63
			for j > 0 && (a.limbs[i]>>uint(j)) == 0 {
				j--
			}
			return result + uint64(j) + 1
		}
	}
	return 0
}

// ModParts zeroes every limb at index >= k, keeping only the low k limbs.
// Used by Barrett reduction to take x mod 2^(64k) without a division.
func (a *Int) ModParts(k int) *Int {
	r := a.Clone()
	for i := k; i < len(r.limbs); i++ {
		r.limbs[i] = 0
	}
	return r
}

// Resize widens (zero-extending) or narrows (truncating) a to a new
// width, preserving the low min(width, newWidth) limbs.
func (a *Int) Resize(newWidth int) *Int {
	r := New(newWidth)
	n := len(a.limbs)
	if newWidth < n {
		n = newWidth
	}
	copy(r.limbs[:n], a.limbs[:n])
	return r
}

// ToBytesBE returns the big-endian byte string with leading zero bytes
// stripped (minimum length 1).
func (a *Int) ToBytesBE() []byte {
	buf := make([]byte, len(a.limbs)*8)
	for i, limb := range a.limbs {
		binary.BigEndian.PutUint64(buf[(len(a.limbs)-1-i)*8:], limb)
	}
	start := 0
	for start < len(buf)-1 && buf[start] == 0 {
		start++
	}
	return buf[start:]
}

// ToHex returns a fixed width*16 lowercase hex string, zero-padded.
func (a *Int) ToHex() string {
	buf := make([]byte, len(a.limbs)*8)
	for i, limb := range a.limbs {
		binary.BigEndian.PutUint64(buf[(len(a.limbs)-1-i)*8:], limb)
	}
	return hex.EncodeToString(buf)
}

// ToBase64 returns the RFC 4648 (standard, padded) base64 encoding of
// the minimal big-endian byte form.
func (a *Int) ToBase64() string {
	return base64Encode(a.ToBytesBE())
}

func (a *Int) String() string {
	return a.ToBase64()
}
