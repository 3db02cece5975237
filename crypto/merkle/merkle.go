// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package merkle builds a binary Merkle tree over a list of leaf
// hashes and produces/verifies inclusion proofs, independent of what
// the leaves represent (the wire package feeds it transaction hashes).
package merkle

import (
	"fmt"

	"github.com/ledgerforge/pedacoin/crypto/sha256"
)

// Node is an internal or leaf node of the tree. Leaf nodes have nil
// children.
type Node struct {
	Hash        sha256.Hash
	Left, Right *Node
}

// Tree is a Merkle tree over an ordered list of leaf hashes.
type Tree struct {
	root   *Node
	leaves []sha256.Hash
}

// New builds a tree over leaves. A single leaf is duplicated so the
// root differs from the lone leaf hash. Panics if leaves is empty.
func New(leaves []sha256.Hash) *Tree {
	if len(leaves) == 0 {
		panic("merkle: cannot build a tree from zero leaves")
	}
	t := &Tree{leaves: leaves}
	t.root = build(t.workingLeaves())
	return t
}

func (t *Tree) workingLeaves() []sha256.Hash {
	if len(t.leaves) == 1 {
		return []sha256.Hash{t.leaves[0], t.leaves[0]}
	}
	return t.leaves
}

func build(leaves []sha256.Hash) *Node {
	if len(leaves) == 1 {
		return &Node{Hash: leaves[0]}
	}
	if len(leaves)%2 != 0 {
		padded := make([]sha256.Hash, len(leaves)+1)
		copy(padded, leaves)
		padded[len(padded)-1] = leaves[len(leaves)-1]
		leaves = padded
	}
	mid := len(leaves) / 2
	left := build(leaves[:mid])
	right := build(leaves[mid:])
	return &Node{Hash: hashPair(left.Hash, right.Hash), Left: left, Right: right}
}

func hashPair(left, right sha256.Hash) sha256.Hash {
	buf := make([]byte, 0, sha256.Size*2)
	buf = append(buf, left.Bytes()...)
	buf = append(buf, right.Bytes()...)
	return sha256.Sum(buf)
}

// Root returns the tree's root hash.
func (t *Tree) Root() sha256.Hash {
	return t.root.Hash
}

// IndexOf returns the position of the first leaf equal to h.
func (t *Tree) IndexOf(h sha256.Hash) (int, bool) {
	for i, leaf := range t.leaves {
		if leaf.Equal(h) {
			return i, true
		}
	}
	return 0, false
}

// Side indicates which side of h a proof step's sibling hash sits on.
type Side int

const (
	// SideLeft means the sibling hash is h's left sibling: the
	// verifier must prepend it (sibling ∥ h).
	SideLeft Side = 0
	// SideRight means the sibling hash is h's right sibling: the
	// verifier must append it (h ∥ sibling).
	SideRight Side = 1
)

// ProofStep is one sibling hash on the path from a leaf to the root.
type ProofStep struct {
	Hash sha256.Hash
	Side Side
}

// Proof returns the leaf-to-root inclusion proof for the leaf at
// index i.
func (t *Tree) Proof(i int) ([]ProofStep, error) {
	if i < 0 || i >= len(t.leaves) {
		return nil, fmt.Errorf("merkle: index %d out of range [0, %d)", i, len(t.leaves))
	}
	steps := proofSteps(t.workingLeaves(), i)
	reverse(steps)
	return steps, nil
}

// proofSteps walks root-to-leaf, collecting sibling hashes in that
// order; callers reverse the result to get leaf-to-root.
func proofSteps(leaves []sha256.Hash, index int) []ProofStep {
	if len(leaves) == 1 {
		return nil
	}
	if len(leaves)%2 != 0 {
		padded := make([]sha256.Hash, len(leaves)+1)
		copy(padded, leaves)
		padded[len(padded)-1] = leaves[len(leaves)-1]
		leaves = padded
	}
	mid := len(leaves) / 2
	if index >= mid {
		sibling := build(leaves[:mid]).Hash
		rest := proofSteps(leaves[mid:], index-mid)
		return append([]ProofStep{{Hash: sibling, Side: SideLeft}}, rest...)
	}
	sibling := build(leaves[mid:]).Hash
	rest := proofSteps(leaves[:mid], index)
	return append([]ProofStep{{Hash: sibling, Side: SideRight}}, rest...)
}

func reverse(steps []ProofStep) {
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
}

// VerifyProof reports whether proof reconstructs root starting from
// leafHash.
func VerifyProof(leafHash sha256.Hash, proof []ProofStep, root sha256.Hash) bool {
	h := leafHash
	for _, step := range proof {
		if step.Side == SideRight {
			h = hashPair(h, step.Hash)
		} else {
			h = hashPair(step.Hash, h)
		}
	}
	return h.Equal(root)
}
