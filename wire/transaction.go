// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire defines the ledger's on-chain data types — Transaction
// and Block — and their canonical byte encodings, replacing the
// teacher's network wire-protocol package with the pedacoin consensus
// object model.
package wire

import (
	"github.com/ledgerforge/pedacoin/crypto/ecdsa"
	"github.com/ledgerforge/pedacoin/crypto/sha256"
	"github.com/ledgerforge/pedacoin/internal/randsrc"
)

// coinbaseSaltSize is the number of random bytes folded into a
// coinbase transaction's hash preimage, so that two coinbases with
// identical miner and reward still produce distinct transaction ids.
const coinbaseSaltSize = 32

// TxInput spends a previously unspent output, proving ownership with
// an ECDSA signature over the transaction's per-input hash.
type TxInput struct {
	TxID      sha256.Hash
	Vout      uint32
	Signature *ecdsa.Signature
	PubKey    *ecdsa.PublicKey
}

// TxOutput pays value to whoever holds the private key behind
// ScriptPubKey. Spent is ledger bookkeeping (the UTXO index), not part
// of the output's identity.
type TxOutput struct {
	Value        uint64
	ScriptPubKey *ecdsa.PublicKey
	Spent        bool
}

// Transaction is an ordered list of inputs and outputs. A transaction
// with no inputs is a coinbase.
type Transaction struct {
	Inputs       []*TxInput
	Outputs      []*TxOutput
	coinbaseSalt []byte
}

// NewTransaction builds a transaction from already-constructed inputs
// and outputs. Inputs still need their Signature filled via SignInput.
func NewTransaction(inputs []*TxInput, outputs []*TxOutput) *Transaction {
	return &Transaction{Inputs: inputs, Outputs: outputs}
}

// NewCoinbaseTransaction builds the one coinbase transaction a block
// is allowed to carry: no inputs, a single reward output to minerKey.
func NewCoinbaseTransaction(minerKey *ecdsa.PublicKey, reward uint64) *Transaction {
	return &Transaction{
		Outputs:      []*TxOutput{{Value: reward, ScriptPubKey: minerKey}},
		coinbaseSalt: randsrc.RandomBytes(coinbaseSaltSize),
	}
}

// IsCoinbase reports whether tx has no inputs.
func (tx *Transaction) IsCoinbase() bool {
	return len(tx.Inputs) == 0
}

// TotalOutputValue sums every output's value.
func (tx *Transaction) TotalOutputValue() uint64 {
	var total uint64
	for _, out := range tx.Outputs {
		total += out.Value
	}
	return total
}

// SigningPreimage builds the byte string signed for input i: every
// input's (txid, vout), with input i additionally carrying the DER
// encoding of its declared public key, followed by every output's
// (value, DER script_pubkey).
func (tx *Transaction) SigningPreimage(i int) []byte {
	buf := []byte{byte(len(tx.Inputs))}
	for j, in := range tx.Inputs {
		buf = append(buf, in.TxID.Bytes()...)
		buf = appendUint32BE(buf, in.Vout)
		if j == i {
			buf = append(buf, in.PubKey.GetDEREncoding()...)
		}
	}
	buf = append(buf, byte(len(tx.Outputs)))
	for _, out := range tx.Outputs {
		buf = appendUint64BE(buf, out.Value)
		buf = append(buf, out.ScriptPubKey.GetDEREncoding()...)
	}
	return buf
}

// SignInput fills input i's signature by signing its per-input hash
// with priv. The input's PubKey must already be set.
func (tx *Transaction) SignInput(i int, priv *ecdsa.PrivateKey) {
	tx.Inputs[i].Signature = ecdsa.Sign(tx.SigningPreimage(i), priv)
}

// VerifyInputSignature reports whether input i's signature is valid
// over its per-input hash under its declared public key.
func (tx *Transaction) VerifyInputSignature(i int) bool {
	in := tx.Inputs[i]
	if in.Signature == nil || in.PubKey == nil {
		return false
	}
	return ecdsa.Verify(in.Signature, tx.SigningPreimage(i), in.PubKey)
}

// Hash is the transaction's identity: every input's full script_sig
// (signature and public key, not just the one being signed), a
// coinbase's random salt if present, then every output.
func (tx *Transaction) Hash() sha256.Hash {
	buf := []byte{byte(len(tx.Inputs))}
	for _, in := range tx.Inputs {
		buf = append(buf, in.TxID.Bytes()...)
		buf = appendUint32BE(buf, in.Vout)
		buf = append(buf, in.Signature.Bytes()...)
		buf = append(buf, in.PubKey.GetDEREncoding()...)
	}
	if tx.IsCoinbase() {
		buf = append(buf, tx.coinbaseSalt...)
	}
	buf = append(buf, byte(len(tx.Outputs)))
	for _, out := range tx.Outputs {
		buf = appendUint64BE(buf, out.Value)
		buf = append(buf, out.ScriptPubKey.GetDEREncoding()...)
	}
	return sha256.Sum(buf)
}
