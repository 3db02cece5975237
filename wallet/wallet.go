// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet tracks one identity's spendable funds and builds
// signed transactions against them, independent of any particular
// Blockchain or Node instance.
package wallet

import (
	"github.com/ledgerforge/pedacoin/blockchain"
	"github.com/ledgerforge/pedacoin/crypto/ecdsa"
	"github.com/ledgerforge/pedacoin/crypto/sha256"
	"github.com/ledgerforge/pedacoin/wire"
)

// ErrInsufficientFunds is returned by TryTransaction when the user's
// known funds cannot cover the requested total output value.
var ErrInsufficientFunds = &UserError{}

// UserError reports why a wallet operation could not complete. It
// currently has a single cause, kept as a distinct type (rather than a
// sentinel error value) so future variants don't break callers doing
// type assertions.
type UserError struct{}

func (e *UserError) Error() string {
	return "wallet: insufficient funds"
}

// User holds a keypair and the set of unspent outputs it believes it
// can spend.
type User struct {
	Name       string
	PublicKey  *ecdsa.PublicKey
	PrivateKey *ecdsa.PrivateKey
	Funds      []blockchain.Fund
}

// New creates a user around an existing keypair with no known funds.
func New(name string, pub *ecdsa.PublicKey, priv *ecdsa.PrivateKey) *User {
	return &User{Name: name, PublicKey: pub, PrivateKey: priv}
}

// TotalFunds sums every known fund's value.
func (u *User) TotalFunds() uint64 {
	var total uint64
	for _, f := range u.Funds {
		total += f.Value
	}
	return total
}

// Receiver is one requested payment: an amount to a destination key.
type Receiver struct {
	PublicKey *ecdsa.PublicKey
	Value     uint64
}

// TryTransaction consumes funds in list order until their sum covers
// the receivers' total value, emitting one output per receiver plus a
// change output back to u (omitted if there is no change), then signs
// every input. It fails with ErrInsufficientFunds if u's funds cannot
// cover the total, without mutating u.Funds — callers update funds via
// UpdateFunds once the transaction is actually accepted.
func (u *User) TryTransaction(receivers []Receiver) (*wire.Transaction, error) {
	var totalOutput uint64
	for _, r := range receivers {
		totalOutput += r.Value
	}

	var totalInput uint64
	var inputs []*wire.TxInput
	for _, fund := range u.Funds {
		totalInput += fund.Value
		inputs = append(inputs, &wire.TxInput{TxID: fund.TxID, Vout: fund.Vout, PubKey: u.PublicKey})

		if totalInput < totalOutput {
			continue
		}

		outputs := make([]*wire.TxOutput, 0, len(receivers)+1)
		for _, r := range receivers {
			outputs = append(outputs, &wire.TxOutput{Value: r.Value, ScriptPubKey: r.PublicKey})
		}
		if change := totalInput - totalOutput; change != 0 {
			outputs = append(outputs, &wire.TxOutput{Value: change, ScriptPubKey: u.PublicKey})
		}

		tx := wire.NewTransaction(inputs, outputs)
		for i := range tx.Inputs {
			tx.SignInput(i, u.PrivateKey)
		}
		return tx, nil
	}

	return nil, ErrInsufficientFunds
}

// UpdateFunds scans tx's outputs for ones paying u, adding a Fund for
// each, then drops any Fund tx consumed as an input.
func (u *User) UpdateFunds(tx *wire.Transaction) {
	txid := tx.Hash()
	for vout, out := range tx.Outputs {
		if out.ScriptPubKey.String() == u.PublicKey.String() {
			u.Funds = append(u.Funds, blockchain.Fund{TxID: txid, Vout: uint32(vout), Value: out.Value})
		}
	}

	for _, in := range tx.Inputs {
		u.Funds = removeFund(u.Funds, in.TxID, in.Vout)
	}
}

func removeFund(funds []blockchain.Fund, txid sha256.Hash, vout uint32) []blockchain.Fund {
	kept := funds[:0]
	for _, f := range funds {
		if f.TxID.Equal(txid) && f.Vout == vout {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// UpdateFundsFromChain replaces u's fund list wholesale with a fresh
// snapshot, typically the result of Blockchain.GetUserFunds.
func (u *User) UpdateFundsFromChain(funds []blockchain.Fund) {
	u.Funds = append([]blockchain.Fund(nil), funds...)
}
