// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerforge/pedacoin/blockchain"
	"github.com/ledgerforge/pedacoin/crypto/ecdsa"
	"github.com/ledgerforge/pedacoin/wire"
)

func newFundedChain(t *testing.T) (*blockchain.Blockchain, *ecdsa.PublicKey, *ecdsa.PrivateKey) {
	t.Helper()
	pub, priv := ecdsa.GenerateKeyPair()
	chain := blockchain.New(wire.NewCoinbaseTransaction(pub, blockchain.MiningReward))
	return chain, pub, priv
}

func TestAddTransactionMarksInputsTentativelySpent(t *testing.T) {
	chain, pub, priv := newFundedChain(t)
	funds := chain.GetUserFunds(pub)
	require.Len(t, funds, 1)

	receiver, _ := ecdsa.GenerateKeyPair()
	tx := wire.NewTransaction(
		[]*wire.TxInput{{TxID: funds[0].TxID, Vout: funds[0].Vout, PubKey: pub}},
		[]*wire.TxOutput{{Value: blockchain.MiningReward, ScriptPubKey: receiver}},
	)
	tx.SignInput(0, priv)

	pool := New(chain)
	require.NoError(t, pool.AddTransaction(tx))
	assert.Equal(t, 1, pool.Len())
	assert.Empty(t, chain.GetUserFunds(pub), "spending input should no longer count as unspent")
}

func TestAddTransactionRejectsSpendingAnAlreadyPendingOutput(t *testing.T) {
	chain, pub, priv := newFundedChain(t)
	funds := chain.GetUserFunds(pub)
	receiver, _ := ecdsa.GenerateKeyPair()

	build := func() *wire.Transaction {
		tx := wire.NewTransaction(
			[]*wire.TxInput{{TxID: funds[0].TxID, Vout: funds[0].Vout, PubKey: pub}},
			[]*wire.TxOutput{{Value: blockchain.MiningReward, ScriptPubKey: receiver}},
		)
		tx.SignInput(0, priv)
		return tx
	}

	pool := New(chain)
	require.NoError(t, pool.AddTransaction(build()))
	require.Error(t, pool.AddTransaction(build()))
	assert.Equal(t, 1, pool.Len())
}

func TestRemoveTransactionUndoesSpendMarking(t *testing.T) {
	chain, pub, priv := newFundedChain(t)
	funds := chain.GetUserFunds(pub)
	receiver, _ := ecdsa.GenerateKeyPair()

	tx := wire.NewTransaction(
		[]*wire.TxInput{{TxID: funds[0].TxID, Vout: funds[0].Vout, PubKey: pub}},
		[]*wire.TxOutput{{Value: blockchain.MiningReward, ScriptPubKey: receiver}},
	)
	tx.SignInput(0, priv)

	pool := New(chain)
	require.NoError(t, pool.AddTransaction(tx))
	pool.RemoveTransaction(tx.Hash())

	assert.Equal(t, 0, pool.Len())
	assert.False(t, pool.Contains(tx.Hash()))
	assert.Len(t, chain.GetUserFunds(pub), 1, "removing the pending transaction should restore spendability")
}

func TestRemoveAllClearsEveryPendingTransaction(t *testing.T) {
	chain, pub, priv := newFundedChain(t)
	funds := chain.GetUserFunds(pub)
	receiver, _ := ecdsa.GenerateKeyPair()

	tx := wire.NewTransaction(
		[]*wire.TxInput{{TxID: funds[0].TxID, Vout: funds[0].Vout, PubKey: pub}},
		[]*wire.TxOutput{{Value: blockchain.MiningReward, ScriptPubKey: receiver}},
	)
	tx.SignInput(0, priv)

	pool := New(chain)
	require.NoError(t, pool.AddTransaction(tx))
	pool.RemoveAll()

	assert.Equal(t, 0, pool.Len())
	assert.Len(t, chain.GetUserFunds(pub), 1)
}
