// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg holds the consensus constants shared by blockchain,
// mempool, and node. There is a single implicit network here, unlike
// the teacher's multi-network mainnet/testnet/simnet split: no peer
// protocol exists to make networks diverge over.
package chaincfg

const (
	// MiningReward is the fixed coinbase payout per mined block.
	MiningReward = 50

	// DefaultDifficulty is the number of leading zero bits required of
	// a block hash, absent an operator override.
	DefaultDifficulty = 5

	// RSAPublicExponent is the fixed RSA public exponent used by every
	// generated key pair.
	RSAPublicExponent = 65537

	// MillerRounds is the number of Miller-Rabin rounds run against
	// each RSA prime candidate that survives trial division.
	MillerRounds = 16

	// SmallPrimeSieveLimit bounds the trial-division sieve used to
	// cheaply reject composite RSA prime candidates.
	SmallPrimeSieveLimit = 65536
)
