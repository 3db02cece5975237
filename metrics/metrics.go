// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics defines a Node's Prometheus collectors: mempool
// depth, blocks mined/accepted, rejection reasons, and mining hash
// throughput.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ledgerforge/pedacoin/blockchain"
)

// Set holds one node's collectors, registered against a private
// Registry rather than the global default so multiple Nodes in the
// same process never collide.
type Set struct {
	Registry *prometheus.Registry

	MempoolTransactions   prometheus.Gauge
	BlocksMined           prometheus.Counter
	BlocksAccepted        prometheus.Counter
	BlockAcceptFailures   *prometheus.CounterVec
	MiningHashesPerformed prometheus.Counter
}

// New builds and registers a fresh collector set.
func New() *Set {
	s := &Set{
		Registry: prometheus.NewRegistry(),
		MempoolTransactions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pedacoin",
			Name:      "mempool_transactions",
			Help:      "Current number of pending transactions in the mempool.",
		}),
		BlocksMined: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pedacoin",
			Name:      "blocks_mined_total",
			Help:      "Total blocks this node has mined.",
		}),
		BlocksAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pedacoin",
			Name:      "blocks_accepted_total",
			Help:      "Total blocks accepted from peers.",
		}),
		BlockAcceptFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pedacoin",
			Name:      "block_accept_failures_total",
			Help:      "Rejected blocks by BlockError code.",
		}, []string{"reason"}),
		MiningHashesPerformed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pedacoin",
			Name:      "mining_hashes_total",
			Help:      "Nonce attempts performed while mining.",
		}),
	}
	s.Registry.MustRegister(
		s.MempoolTransactions,
		s.BlocksMined,
		s.BlocksAccepted,
		s.BlockAcceptFailures,
		s.MiningHashesPerformed,
	)
	return s
}

// BlockErrorReason extracts the BlockError code name from err for use
// as the BlockAcceptFailures label, or "unknown" if err isn't one.
func BlockErrorReason(err error) string {
	var blockErr *blockchain.BlockError
	if errors.As(err, &blockErr) {
		return blockErr.Code.String()
	}
	return "unknown"
}
