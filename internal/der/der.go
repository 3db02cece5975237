// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package der implements the minimal subset of DER encoding needed to
// serialize key material: a SEQUENCE of unsigned INTEGER fields, with
// no sign byte since every field this package is asked to encode is
// already known non-negative.
package der

import (
	"fmt"

	"github.com/ledgerforge/pedacoin/crypto/bigint"
)

const (
	tagInteger  = 0x02
	tagSequence = 0x30
)

// EncodeSequence encodes fields as a DER SEQUENCE of INTEGER values.
func EncodeSequence(fields []*bigint.Int) []byte {
	var content []byte
	for _, field := range fields {
		b := field.ToBytesBE()
		content = append(content, tagInteger)
		content = appendLength(content, len(b))
		content = append(content, b...)
	}
	out := []byte{tagSequence}
	out = appendLength(out, len(content))
	return append(out, content...)
}

// DecodeSequence decodes a DER SEQUENCE of INTEGER values, each resized
// to width limbs. Malformed input is a programmer/data-corruption error,
// not a recoverable one, so it panics rather than returning an error.
func DecodeSequence(width int, data []byte) []*bigint.Int {
	if len(data) == 0 || data[0] != tagSequence {
		panic(fmt.Sprintf("der: expected SEQUENCE tag, got %x", data))
	}
	idx := 1
	contentLen := readLength(data, &idx)
	end := idx + contentLen
	if end > len(data) {
		panic(fmt.Sprintf("der: sequence length %d exceeds input", contentLen))
	}

	var fields []*bigint.Int
	for idx < end {
		if data[idx] != tagInteger {
			panic(fmt.Sprintf("der: expected INTEGER tag at offset %d, got %x", idx, data[idx]))
		}
		idx++
		intLen := readLength(data, &idx)
		if idx+intLen > len(data) {
			panic(fmt.Sprintf("der: integer length %d exceeds input", intLen))
		}
		fields = append(fields, bigint.FromBytesBE(width, data[idx:idx+intLen]))
		idx += intLen
	}
	return fields
}

func appendLength(dst []byte, length int) []byte {
	if length < 0x80 {
		return append(dst, byte(length))
	}
	var lenBytes []byte
	for shift := 56; shift >= 0; shift -= 8 {
		b := byte(length >> shift)
		if b != 0 || len(lenBytes) > 0 {
			lenBytes = append(lenBytes, b)
		}
	}
	dst = append(dst, 0x80|byte(len(lenBytes)))
	return append(dst, lenBytes...)
}

func readLength(data []byte, idx *int) int {
	if *idx >= len(data) {
		panic("der: truncated length")
	}
	lenByte := data[*idx]
	*idx++
	if lenByte&0x80 == 0 {
		return int(lenByte)
	}
	numBytes := int(lenByte & 0x7F)
	if *idx+numBytes > len(data) {
		panic("der: truncated long-form length")
	}
	length := 0
	for i := 0; i < numBytes; i++ {
		length = (length << 8) | int(data[*idx])
		*idx++
	}
	return length
}
