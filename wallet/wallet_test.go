// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerforge/pedacoin/blockchain"
	"github.com/ledgerforge/pedacoin/crypto/ecdsa"
	"github.com/ledgerforge/pedacoin/crypto/sha256"
)

func newUser(t *testing.T, name string) *User {
	t.Helper()
	pub, priv := ecdsa.GenerateKeyPair()
	return New(name, pub, priv)
}

func TestTryTransactionFailsWithNoFunds(t *testing.T) {
	u := newUser(t, "Alice")
	receiver, _ := ecdsa.GenerateKeyPair()
	_, err := u.TryTransaction([]Receiver{{PublicKey: receiver, Value: 10}})
	require.Error(t, err)
	assert.Equal(t, ErrInsufficientFunds, err)
}

func TestTryTransactionProducesChangeOutput(t *testing.T) {
	u := newUser(t, "Alice")
	u.Funds = []blockchain.Fund{{TxID: sha256.Sum([]byte("coinbase")), Vout: 0, Value: 100}}

	receiver, _ := ecdsa.GenerateKeyPair()
	tx, err := u.TryTransaction([]Receiver{{PublicKey: receiver, Value: 30}})
	require.NoError(t, err)
	require.Len(t, tx.Outputs, 2)
	assert.Equal(t, uint64(30), tx.Outputs[0].Value)
	assert.Equal(t, uint64(70), tx.Outputs[1].Value)
	assert.Equal(t, u.PublicKey.String(), tx.Outputs[1].ScriptPubKey.String())
	assert.True(t, tx.VerifyInputSignature(0))
}

func TestTryTransactionOmitsChangeWhenExact(t *testing.T) {
	u := newUser(t, "Alice")
	u.Funds = []blockchain.Fund{{TxID: sha256.Sum([]byte("coinbase")), Vout: 0, Value: 50}}

	receiver, _ := ecdsa.GenerateKeyPair()
	tx, err := u.TryTransaction([]Receiver{{PublicKey: receiver, Value: 50}})
	require.NoError(t, err)
	require.Len(t, tx.Outputs, 1)
}

func TestTryTransactionAccumulatesMultipleFunds(t *testing.T) {
	u := newUser(t, "Alice")
	u.Funds = []blockchain.Fund{
		{TxID: sha256.Sum([]byte("a")), Vout: 0, Value: 10},
		{TxID: sha256.Sum([]byte("b")), Vout: 0, Value: 10},
		{TxID: sha256.Sum([]byte("c")), Vout: 0, Value: 10},
	}

	receiver, _ := ecdsa.GenerateKeyPair()
	tx, err := u.TryTransaction([]Receiver{{PublicKey: receiver, Value: 25}})
	require.NoError(t, err)
	assert.Len(t, tx.Inputs, 3)
	assert.Equal(t, uint64(5), tx.Outputs[1].Value)
}

func TestUpdateFundsAddsAndRemoves(t *testing.T) {
	u := newUser(t, "Alice")
	coinbaseTxID := sha256.Sum([]byte("coinbase"))
	u.Funds = []blockchain.Fund{{TxID: coinbaseTxID, Vout: 0, Value: 100}}

	receiver, _ := ecdsa.GenerateKeyPair()
	tx, err := u.TryTransaction([]Receiver{{PublicKey: receiver, Value: 40}})
	require.NoError(t, err)

	u.UpdateFunds(tx)
	// The spent coinbase output is gone; the change output back to u
	// remains as a new fund.
	require.Len(t, u.Funds, 1)
	assert.Equal(t, uint64(60), u.Funds[0].Value)
	assert.Equal(t, tx.Hash(), u.Funds[0].TxID)
}

func TestUpdateFundsFromChainReplacesWholesale(t *testing.T) {
	u := newUser(t, "Alice")
	u.Funds = []blockchain.Fund{{TxID: sha256.Sum([]byte("stale")), Vout: 0, Value: 1}}

	fresh := []blockchain.Fund{
		{TxID: sha256.Sum([]byte("fresh1")), Vout: 0, Value: 5},
		{TxID: sha256.Sum([]byte("fresh2")), Vout: 1, Value: 7},
	}
	u.UpdateFundsFromChain(fresh)
	assert.Equal(t, uint64(12), u.TotalFunds())
}
