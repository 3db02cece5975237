// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerforge/pedacoin/crypto/ecdsa"
	"github.com/ledgerforge/pedacoin/crypto/sha256"
)

func TestCoinbaseHashIsUniqueAcrossIdenticalRewards(t *testing.T) {
	pub, _ := ecdsa.GenerateKeyPair()
	a := NewCoinbaseTransaction(pub, 50)
	b := NewCoinbaseTransaction(pub, 50)
	assert.False(t, a.Hash().Equal(b.Hash()))
}

func TestSignInputThenVerifySucceeds(t *testing.T) {
	pub, priv := ecdsa.GenerateKeyPair()
	tx := NewTransaction(
		[]*TxInput{{TxID: sha256.Sum([]byte("prev")), Vout: 0, PubKey: pub}},
		[]*TxOutput{{Value: 10, ScriptPubKey: pub}},
	)
	tx.SignInput(0, priv)
	assert.True(t, tx.VerifyInputSignature(0))
}

func TestVerifyInputSignatureFailsAfterOutputsChange(t *testing.T) {
	pub, priv := ecdsa.GenerateKeyPair()
	tx := NewTransaction(
		[]*TxInput{{TxID: sha256.Sum([]byte("prev")), Vout: 0, PubKey: pub}},
		[]*TxOutput{{Value: 10, ScriptPubKey: pub}},
	)
	tx.SignInput(0, priv)
	tx.Outputs[0].Value = 999
	assert.False(t, tx.VerifyInputSignature(0))
}

func TestDuplicatedInputChangesHash(t *testing.T) {
	pub, priv := ecdsa.GenerateKeyPair()
	tx := NewTransaction(
		[]*TxInput{{TxID: sha256.Sum([]byte("prev")), Vout: 0, PubKey: pub}},
		[]*TxOutput{{Value: 10, ScriptPubKey: pub}},
	)
	tx.SignInput(0, priv)
	original := tx.Hash()

	tx.Inputs = append(tx.Inputs, tx.Inputs[0])
	assert.False(t, tx.Hash().Equal(original))
}

func TestBlockMineProducesValidHash(t *testing.T) {
	pub, priv := ecdsa.GenerateKeyPair()
	coinbase := NewCoinbaseTransaction(pub, 50)
	tx := NewTransaction(
		[]*TxInput{{TxID: sha256.Sum([]byte("prev")), Vout: 0, PubKey: pub}},
		[]*TxOutput{{Value: 10, ScriptPubKey: pub}},
	)
	tx.SignInput(0, priv)

	block := NewBlock(sha256.Hash{}, 2, []*Transaction{coinbase, tx})
	block.Mine()

	assert.True(t, block.Hash.Equal(block.ComputeHash()))
	assert.True(t, block.Hash.IsValid(block.Difficulty))
}

func TestTamperedNonceInvalidatesStoredHash(t *testing.T) {
	pub, _ := ecdsa.GenerateKeyPair()
	block := NewBlock(sha256.Hash{}, 1, []*Transaction{NewCoinbaseTransaction(pub, 50)})
	block.Mine()

	block.Nonce++
	assert.False(t, block.Hash.Equal(block.ComputeHash()))
}
