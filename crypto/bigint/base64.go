// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

import "encoding/base64"

// base64Encode/base64Decode use the RFC 4648 standard alphabet with '='
// padding, same as the key-file encoding in crypto/ecdsa and crypto/rsa.
// Base64 is an encoding, not a cryptographic primitive, so there is no
// from-scratch requirement here the way there is for the arithmetic
// above; the stdlib codec is the idiomatic choice.
func base64Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func base64Decode(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// FromBase64 decodes a base64 string into an Int of the given width.
func FromBase64(width int, s string) (*Int, error) {
	b, err := base64Decode(s)
	if err != nil {
		return nil, err
	}
	return FromBytesBE(width, b), nil
}
