// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node drives one participant's view of the ledger: it owns a
// Blockchain, a mempool of tentatively-accepted transactions, and the
// mining loop that turns pending transactions into new blocks.
package node

import (
	"github.com/ledgerforge/pedacoin/blockchain"
	"github.com/ledgerforge/pedacoin/crypto/ecdsa"
	"github.com/ledgerforge/pedacoin/mempool"
	"github.com/ledgerforge/pedacoin/metrics"
	"github.com/ledgerforge/pedacoin/wire"
)

// Node owns a Blockchain exclusively: sharing one across goroutines or
// processes needs external coordination, since nothing here takes a
// lock.
type Node struct {
	Chain    *blockchain.Blockchain
	Mempool  *mempool.Pool
	Metrics  *metrics.Set
	minerKey *ecdsa.PublicKey
}

// New wires a Node around an already-constructed chain, mining future
// blocks' coinbase reward to minerKey.
func New(chain *blockchain.Blockchain, minerKey *ecdsa.PublicKey) *Node {
	return &Node{
		Chain:    chain,
		Mempool:  mempool.New(chain),
		Metrics:  metrics.New(),
		minerKey: minerKey,
	}
}

// AddTransaction verifies tx against the node's tentative UTXO view
// and, on success, admits it to the mempool.
func (n *Node) AddTransaction(tx *wire.Transaction) error {
	if err := n.Mempool.AddTransaction(tx); err != nil {
		return err
	}
	n.Metrics.MempoolTransactions.Set(float64(n.Mempool.Len()))
	return nil
}

// Mine assembles a coinbase plus the current mempool in order, mines
// the resulting block, clears the mempool, and commits the block.
func (n *Node) Mine() (*wire.Block, error) {
	pending := n.Mempool.Transactions()
	coinbase := wire.NewCoinbaseTransaction(n.minerKey, blockchain.MiningReward)
	block := n.Chain.CreateBlock(coinbase, pending)
	block.MineObserved(func() {
		n.Metrics.MiningHashesPerformed.Inc()
	})

	n.Mempool.RemoveAll()

	if err := n.Chain.AddBlock(block); err != nil {
		n.recordRejection(err)
		return nil, err
	}
	n.Metrics.BlocksMined.Inc()
	n.Metrics.MempoolTransactions.Set(0)
	log.Infof("mined block %s with %d transactions", block.Hash, len(block.Transactions))
	return block, nil
}

// AcceptBlock attempts to commit an externally-produced block. Any
// mempool transaction included in b has its tentative spend markings
// cancelled first; if the commit then fails, those mempool entries are
// reinstated so observable state is unchanged.
func (n *Node) AcceptBlock(b *wire.Block) error {
	var removed []*wire.Transaction
	for _, tx := range b.Transactions {
		txid := tx.Hash()
		if n.Mempool.Contains(txid) {
			removed = append(removed, tx)
			n.Mempool.RemoveTransaction(txid)
		}
	}

	if err := n.Chain.AddBlock(b); err != nil {
		for _, tx := range removed {
			if reErr := n.Mempool.AddTransaction(tx); reErr != nil {
				log.Warnf("could not reinstate mempool transaction %s after failed block accept: %v", tx.Hash(), reErr)
			}
		}
		n.recordRejection(err)
		return err
	}

	n.Metrics.BlocksAccepted.Inc()
	n.Metrics.MempoolTransactions.Set(float64(n.Mempool.Len()))
	log.Infof("accepted block %s with %d transactions", b.Hash, len(b.Transactions))
	return nil
}

func (n *Node) recordRejection(err error) {
	n.Metrics.BlockAcceptFailures.WithLabelValues(metrics.BlockErrorReason(err)).Inc()
}

// IsTransactionConfirmed reports whether tx has been committed to the
// chain (as opposed to merely pending in the mempool).
func (n *Node) IsTransactionConfirmed(tx *wire.Transaction) bool {
	return n.Chain.HasTransaction(tx)
}
