// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// pedacoind is a local single-node demo driver: it generates or loads a
// miner keypair, builds a chain (mining its genesis block), and
// optionally runs the mining loop. It never opens a network listener;
// there is no peer protocol to serve.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/davecgh/go-spew/spew"

	"github.com/ledgerforge/pedacoin/blockchain"
	"github.com/ledgerforge/pedacoin/chaincfg"
	"github.com/ledgerforge/pedacoin/crypto/ecdsa"
	"github.com/ledgerforge/pedacoin/node"
	"github.com/ledgerforge/pedacoin/wire"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := initLogRotator(cfg.logFile); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	defer logRotator.Close()
	setLogLevels(cfg.LogLevel)

	minerPub, _, err := loadOrCreateMinerKey(cfg)
	if err != nil {
		return fmt.Errorf("loading miner key: %w", err)
	}
	nodeLog.Infof("miner public key: %s", minerPub)

	difficulty := cfg.Difficulty
	if difficulty == 0 {
		difficulty = chaincfg.DefaultDifficulty
	}
	coinbase := wire.NewCoinbaseTransaction(minerPub, blockchain.MiningReward)
	chain := blockchain.NewWithDifficulty(coinbase, difficulty)
	n := node.New(chain, minerPub)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	if !cfg.Mine {
		nodeLog.Info("mining disabled (pass --mine to run the mining loop); exiting")
		return nil
	}

	return mineLoop(n, cfg.Blocks, interrupt)
}

// mineLoop mines blocks, one at a time, until limit blocks have been
// produced (0 meaning no limit) or interrupt fires.
func mineLoop(n *node.Node, limit uint, interrupt <-chan os.Signal) error {
	var mined uint
	for limit == 0 || mined < limit {
		select {
		case <-interrupt:
			nodeLog.Info("interrupted, shutting down")
			dumpMetrics(n)
			return nil
		default:
		}

		block, err := n.Mine()
		if err != nil {
			return fmt.Errorf("mining block: %w", err)
		}
		mined++
		nodeLog.Infof("mined block %d: %s", len(n.Chain.Blocks)-1, block.Hash)
	}
	dumpMetrics(n)
	return nil
}

// dumpMetrics logs a snapshot of the node's Prometheus collectors.
// cmd/pedacoind never serves them over HTTP, since it opens no network
// listener; this is the local-only equivalent of scraping /metrics.
func dumpMetrics(n *node.Node) {
	families, err := n.Metrics.Registry.Gather()
	if err != nil {
		nodeLog.Warnf("gathering metrics: %v", err)
		return
	}
	nodeLog.Debugf("metrics snapshot:\n%s", spew.Sdump(families))
}

func loadOrCreateMinerKey(cfg *config) (*ecdsa.PublicKey, *ecdsa.PrivateKey, error) {
	priv, err := ecdsa.LoadPrivateKey(cfg.minerKeyFile())
	if err == nil {
		pub, err := ecdsa.LoadPublicKey(cfg.minerPubFile())
		if err == nil {
			return pub, priv, nil
		}
	}

	pub, priv := ecdsa.GenerateKeyPair()
	if err := priv.Save(cfg.minerKeyFile()); err != nil {
		return nil, nil, fmt.Errorf("saving miner private key: %w", err)
	}
	if err := pub.Save(cfg.minerPubFile()); err != nil {
		return nil, nil, fmt.Errorf("saving miner public key: %w", err)
	}
	return pub, priv, nil
}
