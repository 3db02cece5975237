// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"time"

	"github.com/ledgerforge/pedacoin/crypto/merkle"
	"github.com/ledgerforge/pedacoin/crypto/sha256"
)

// Block is a batch of transactions, header fields, and the proof of
// work tying it to its predecessor.
type Block struct {
	Timestamp         uint64
	PreviousBlockHash sha256.Hash
	Nonce             uint64
	Difficulty        uint64
	Transactions      []*Transaction
	MerkleTree        *merkle.Tree
	Hash              sha256.Hash
}

// NewBlock builds an unmined block over transactions (which must
// include exactly one coinbase, at any position, to pass verification
// later), deriving its Merkle tree from their hashes. transactions
// must not be empty: the Merkle tree cannot be built over zero leaves.
func NewBlock(previousHash sha256.Hash, difficulty uint64, transactions []*Transaction) *Block {
	return &Block{
		PreviousBlockHash: previousHash,
		Difficulty:        difficulty,
		Transactions:      transactions,
		MerkleTree:        BuildMerkleTree(transactions),
	}
}

// BuildMerkleTree hashes transactions in order and builds the tree
// over those hashes. Exposed so Blockchain can re-derive and compare
// a stored block's Merkle root during verification.
func BuildMerkleTree(transactions []*Transaction) *merkle.Tree {
	hashes := make([]sha256.Hash, len(transactions))
	for i, tx := range transactions {
		hashes[i] = tx.Hash()
	}
	return merkle.New(hashes)
}

// ComputeHash recomputes the block's identity hash from its current
// fields, without consulting the stored Hash field.
func (b *Block) ComputeHash() sha256.Hash {
	buf := make([]byte, 0, sha256.Size*2+8*3)
	buf = append(buf, b.PreviousBlockHash.Bytes()...)
	buf = append(buf, b.MerkleTree.Root().Bytes()...)
	buf = appendUint64BE(buf, b.Timestamp)
	buf = appendUint64BE(buf, b.Nonce)
	buf = appendUint64BE(buf, b.Difficulty)
	return sha256.Sum(buf)
}

// Mine refreshes the timestamp and searches nonces until the computed
// hash satisfies the block's difficulty, then records it in Hash.
func (b *Block) Mine() {
	b.MineObserved(nil)
}

// MineObserved mines exactly like Mine, additionally invoking onAttempt
// once per nonce tried (including the first), so a caller can track
// hash-rate style counters without duplicating the search loop.
func (b *Block) MineObserved(onAttempt func()) {
	for {
		b.Timestamp = uint64(time.Now().Unix())
		h := b.ComputeHash()
		if onAttempt != nil {
			onAttempt()
		}
		if h.IsValid(b.Difficulty) {
			b.Hash = h
			return
		}
		b.Nonce++
	}
}
