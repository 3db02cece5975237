// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockchain holds the append-only ledger of mined blocks and
// the UTXO index derived from them, plus the verification rules new
// blocks and transactions must satisfy before they are admitted.
package blockchain

import (
	"github.com/ledgerforge/pedacoin/chaincfg"
	"github.com/ledgerforge/pedacoin/crypto/ecdsa"
	"github.com/ledgerforge/pedacoin/crypto/sha256"
	"github.com/ledgerforge/pedacoin/wire"
)

// MiningReward is the coinbase payout, re-exported from chaincfg for
// callers that build coinbase transactions against this package.
const MiningReward = chaincfg.MiningReward

// Fund names one spendable output: the transaction that created it,
// its position among that transaction's outputs, and its value.
type Fund struct {
	TxID  sha256.Hash
	Vout  uint32
	Value uint64
}

// utxoEntry is the set of outputs created by one transaction, tracked
// together so a fully-spent transaction's entry can be dropped in one
// check.
type utxoEntry []*wire.TxOutput

// Blockchain is the ordered chain of accepted blocks plus the UTXO set
// they imply. It is not safe for concurrent use; callers coordinate
// externally if a chain must be shared.
type Blockchain struct {
	Blocks     []*wire.Block
	Difficulty uint64
	utxo       map[sha256.Hash]utxoEntry
}

// New mines and commits a genesis block containing only coinbase,
// leaving the chain never observably empty, at the default difficulty.
func New(coinbase *wire.Transaction) *Blockchain {
	return NewWithDifficulty(coinbase, chaincfg.DefaultDifficulty)
}

// NewWithDifficulty is New with an operator-chosen difficulty, for
// callers (cmd/pedacoind's --difficulty flag) that want something
// other than chaincfg.DefaultDifficulty.
func NewWithDifficulty(coinbase *wire.Transaction, difficulty uint64) *Blockchain {
	bc := &Blockchain{Difficulty: difficulty, utxo: make(map[sha256.Hash]utxoEntry)}
	block := bc.CreateBlock(coinbase, nil)
	block.Mine()
	if err := bc.AddBlock(block); err != nil {
		panic(err)
	}
	log.Infof("genesis block committed, hash %s", block.Hash)
	return bc
}

// CreateBlock assembles an unmined block with coinbase first, followed
// by transactions in order, chained onto the current tip.
func (bc *Blockchain) CreateBlock(coinbase *wire.Transaction, transactions []*wire.Transaction) *wire.Block {
	previousHash := sha256.Sum(nil)
	if len(bc.Blocks) > 0 {
		previousHash = bc.Blocks[len(bc.Blocks)-1].Hash
	}
	all := make([]*wire.Transaction, 0, 1+len(transactions))
	all = append(all, coinbase)
	all = append(all, transactions...)
	return wire.NewBlock(previousHash, bc.Difficulty, all)
}

// AddBlock verifies b against the current chain tip and UTXO set, and
// on success commits it: every verification failure leaves state
// untouched.
func (bc *Blockchain) AddBlock(b *wire.Block) error {
	if err := bc.verifyNewBlock(b); err != nil {
		log.Errorf("rejecting block: %v", err)
		return err
	}
	for _, tx := range b.Transactions {
		txHash := tx.Hash()
		entry := make(utxoEntry, len(tx.Outputs))
		for i, out := range tx.Outputs {
			cloned := *out
			entry[i] = &cloned
		}
		bc.utxo[txHash] = entry
		for _, in := range tx.Inputs {
			entry := bc.utxo[in.TxID]
			if int(in.Vout) < len(entry) {
				entry[in.Vout].Spent = true
			}
			if allSpent(entry) {
				delete(bc.utxo, in.TxID)
			}
		}
	}
	bc.Blocks = append(bc.Blocks, b)
	log.Debugf("block committed, hash %s, %d transactions", b.Hash, len(b.Transactions))
	return nil
}

func allSpent(entry utxoEntry) bool {
	for _, out := range entry {
		if !out.Spent {
			return false
		}
	}
	return true
}

func (bc *Blockchain) verifyNewBlock(b *wire.Block) error {
	if len(bc.Blocks) > 0 && !b.PreviousBlockHash.Equal(bc.Blocks[len(bc.Blocks)-1].Hash) {
		return &BlockError{Code: ErrInvalidPreviousBlockHash}
	}
	if len(bc.Blocks) == 0 && !b.PreviousBlockHash.Equal(sha256.Sum(nil)) {
		return &BlockError{Code: ErrInvalidPreviousBlockHash}
	}

	if !b.Hash.Equal(b.ComputeHash()) || !b.Hash.IsValid(b.Difficulty) {
		return &BlockError{Code: ErrInvalidHash}
	}

	if !wire.BuildMerkleTree(b.Transactions).Root().Equal(b.MerkleTree.Root()) {
		return &BlockError{Code: ErrInvalidMerkleRoot}
	}

	var txErrors []*TransactionError
	coinbaseCount := 0
	for i, tx := range b.Transactions {
		if tx.IsCoinbase() {
			coinbaseCount++
		}
		if err := bc.VerifyNewTransaction(tx); err != nil {
			err.Index = i
			txErrors = append(txErrors, err)
		}
	}

	if coinbaseCount != 1 {
		return &BlockError{Code: ErrInvalidCoinbase}
	}

	if len(txErrors) > 0 {
		return &BlockError{Code: ErrInvalidTransactions, Transactions: txErrors}
	}

	return nil
}

// VerifyNewTransaction checks tx against the current UTXO snapshot:
// every input must reference an unspent output whose script_pubkey
// matches the input's declared key and whose signature verifies: and
// total input value must equal total output value, except a coinbase
// which must pay exactly MiningReward.
func (bc *Blockchain) VerifyNewTransaction(tx *wire.Transaction) *TransactionError {
	var totalInput uint64
	for i, in := range tx.Inputs {
		entry, ok := bc.utxo[in.TxID]
		if !ok || int(in.Vout) >= len(entry) || entry[in.Vout].Spent {
			return &TransactionError{Code: ErrInsufficientFunds}
		}
		refOutput := entry[in.Vout]
		if refOutput.ScriptPubKey.String() != in.PubKey.String() {
			return &TransactionError{Code: ErrUnallowedTransaction}
		}
		if !tx.VerifyInputSignature(i) {
			return &TransactionError{Code: ErrInvalidSignature}
		}
		totalInput += refOutput.Value
	}

	totalOutput := tx.TotalOutputValue()
	if tx.IsCoinbase() {
		if totalOutput != chaincfg.MiningReward {
			return &TransactionError{Code: ErrMismatchedOutput}
		}
		return nil
	}
	if totalInput != totalOutput {
		return &TransactionError{Code: ErrMismatchedOutput}
	}
	return nil
}

// HasTransaction reports whether the UTXO set contains tx's outputs
// under tx's own hash, exactly as stored (including spent markers).
func (bc *Blockchain) HasTransaction(tx *wire.Transaction) bool {
	entry, ok := bc.utxo[tx.Hash()]
	if !ok {
		return false
	}
	return outputsEqual(entry, tx.Outputs)
}

// GetUserFunds scans the UTXO set for unspent outputs paying pubkey.
func (bc *Blockchain) GetUserFunds(pubkey *ecdsa.PublicKey) []Fund {
	var funds []Fund
	for txid, entry := range bc.utxo {
		for vout, out := range entry {
			if !out.Spent && out.ScriptPubKey.String() == pubkey.String() {
				funds = append(funds, Fund{TxID: txid, Vout: uint32(vout), Value: out.Value})
			}
		}
	}
	return funds
}

// GetUTXO returns a snapshot copy of the UTXO index: mutating the
// result does not affect the live set.
func (bc *Blockchain) GetUTXO() map[sha256.Hash][]*wire.TxOutput {
	snapshot := make(map[sha256.Hash][]*wire.TxOutput, len(bc.utxo))
	for txid, entry := range bc.utxo {
		copied := make([]*wire.TxOutput, len(entry))
		for i, out := range entry {
			cloned := *out
			copied[i] = &cloned
		}
		snapshot[txid] = copied
	}
	return snapshot
}

// SetOutputSpent sets a specific output's spent flag. The mempool uses
// it both to place tentative spend markings and to undo them.
func (bc *Blockchain) SetOutputSpent(txid sha256.Hash, vout uint32, spent bool) {
	entry, ok := bc.utxo[txid]
	if !ok || int(vout) >= len(entry) {
		return
	}
	entry[vout].Spent = spent
}

func outputsEqual(a utxoEntry, b []*wire.TxOutput) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Value != b[i].Value || a[i].Spent != b[i].Spent || a[i].ScriptPubKey.String() != b[i].ScriptPubKey.String() {
			return false
		}
	}
	return true
}
