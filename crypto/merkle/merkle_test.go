// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerforge/pedacoin/crypto/sha256"
)

func hashOf(s string) sha256.Hash {
	return sha256.Sum([]byte(s))
}

func TestSingleLeafRootDiffersFromLeaf(t *testing.T) {
	leaf := hashOf("only transaction")
	tree := New([]sha256.Hash{leaf})
	assert.False(t, tree.Root().Equal(leaf))
}

func TestAllLeavesHaveValidProofs(t *testing.T) {
	leaves := []sha256.Hash{hashOf("a"), hashOf("b"), hashOf("c"), hashOf("d"), hashOf("e")}
	tree := New(leaves)
	for i, leaf := range leaves {
		proof, err := tree.Proof(i)
		require.NoError(t, err)
		assert.True(t, VerifyProof(leaf, proof, tree.Root()), "leaf %d should verify", i)
	}
}

func TestSingleLeafTreeProofHasLengthOne(t *testing.T) {
	leaf := hashOf("solo")
	tree := New([]sha256.Hash{leaf})
	proof, err := tree.Proof(0)
	require.NoError(t, err)
	assert.Len(t, proof, 1)
	assert.True(t, VerifyProof(leaf, proof, tree.Root()))
}

func TestProofFailsForWrongLeaf(t *testing.T) {
	leaves := []sha256.Hash{hashOf("a"), hashOf("b"), hashOf("c")}
	tree := New(leaves)
	proof, err := tree.Proof(0)
	require.NoError(t, err)
	assert.False(t, VerifyProof(hashOf("not in tree"), proof, tree.Root()))
}

func TestTamperedSiblingHashBreaksProof(t *testing.T) {
	leaves := []sha256.Hash{hashOf("a"), hashOf("b"), hashOf("c"), hashOf("d")}
	tree := New(leaves)
	proof, err := tree.Proof(0)
	require.NoError(t, err)
	proof[0].Hash = hashOf("corrupted")
	assert.False(t, VerifyProof(leaves[0], proof, tree.Root()))
}

func TestProofOutOfRangeReturnsError(t *testing.T) {
	tree := New([]sha256.Hash{hashOf("a"), hashOf("b")})
	_, err := tree.Proof(5)
	assert.Error(t, err)
}

func TestIndexOfFindsLeaf(t *testing.T) {
	leaves := []sha256.Hash{hashOf("a"), hashOf("b"), hashOf("c")}
	tree := New(leaves)
	idx, ok := tree.IndexOf(hashOf("b"))
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = tree.IndexOf(hashOf("nope"))
	assert.False(t, ok)
}

func TestOddLeafCountDuplicatesLastLeaf(t *testing.T) {
	three := New([]sha256.Hash{hashOf("a"), hashOf("b"), hashOf("c")})
	fourDuplicated := New([]sha256.Hash{hashOf("a"), hashOf("b"), hashOf("c"), hashOf("c")})
	assert.True(t, three.Root().Equal(fourDuplicated.Root()))
}
