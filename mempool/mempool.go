// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mempool holds transactions a Node has accepted but not yet
// mined into a block, together with the tentative spend markings those
// transactions impose on the chain's UTXO set.
package mempool

import (
	"sync"

	"github.com/davecgh/go-spew/spew"

	"github.com/ledgerforge/pedacoin/blockchain"
	"github.com/ledgerforge/pedacoin/crypto/sha256"
	"github.com/ledgerforge/pedacoin/wire"
)

// Pool is an ordered set of pending transactions, backed by a
// blockchain whose UTXO set it tentatively marks as spent. It is not
// safe for use by more than one Node at a time.
type Pool struct {
	mu      sync.Mutex
	chain   *blockchain.Blockchain
	pending []*wire.Transaction
	byID    map[sha256.Hash]*wire.Transaction
}

// New creates an empty pool backed by chain.
func New(chain *blockchain.Blockchain) *Pool {
	return &Pool{
		chain: chain,
		byID:  make(map[sha256.Hash]*wire.Transaction),
	}
}

// AddTransaction verifies tx against the chain's current UTXO view
// (including any prior pool members' tentative spends) and, if valid,
// marks its inputs spent and appends it to the pool.
func (p *Pool) AddTransaction(tx *wire.Transaction) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.chain.VerifyNewTransaction(tx); err != nil {
		log.Debugf("rejecting mempool transaction: %v", err)
		return err
	}

	for _, in := range tx.Inputs {
		p.chain.SetOutputSpent(in.TxID, in.Vout, true)
	}
	p.pending = append(p.pending, tx)
	p.byID[tx.Hash()] = tx
	log.Debugf("accepted mempool transaction:\n%s", spew.Sdump(tx))
	return nil
}

// RemoveTransaction undoes the tentative spend markings of the
// transaction identified by txid, if present, and drops it from the
// pool. A missing txid is a no-op.
func (p *Pool) RemoveTransaction(txid sha256.Hash) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.removeLocked(txid)
}

func (p *Pool) removeLocked(txid sha256.Hash) {
	tx, ok := p.byID[txid]
	if !ok {
		return
	}
	for _, in := range tx.Inputs {
		p.chain.SetOutputSpent(in.TxID, in.Vout, false)
	}
	delete(p.byID, txid)
	for i, pending := range p.pending {
		if pending == tx {
			p.pending = append(p.pending[:i], p.pending[i+1:]...)
			break
		}
	}
}

// Contains reports whether a transaction with the given id is pending.
func (p *Pool) Contains(txid sha256.Hash) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.byID[txid]
	return ok
}

// Len returns the number of pending transactions.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// Transactions returns a snapshot of the pending transactions in
// acceptance order.
func (p *Pool) Transactions() []*wire.Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*wire.Transaction, len(p.pending))
	copy(out, p.pending)
	return out
}

// RemoveAll removes every pending transaction, reverting every
// tentative spend marking it held.
func (p *Pool) RemoveAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for len(p.pending) > 0 {
		p.removeLocked(p.pending[0].Hash())
	}
}
