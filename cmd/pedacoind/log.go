// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"

	"github.com/ledgerforge/pedacoin/blockchain"
	"github.com/ledgerforge/pedacoin/mempool"
	"github.com/ledgerforge/pedacoin/node"
)

// logRotator is the rotated log file in the configured log directory;
// logWriter copies every logged line into it.
var logRotator *rotator.Rotator

// logWriter implements io.Writer and outputs to both standard output
// and the log rotator.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	logRotator.Write(p)
	return len(p), nil
}

// backendLog is the logging backend used to create all subsystem
// loggers. The backend itself does nothing unless UseLogger is called
// on each subsystem.
var backendLog = btclog.NewBackend(logWriter{})

var (
	nodeLog       = backendLog.Logger("NODE")
	blockchainLog = backendLog.Logger("CHAN")
	mempoolLog    = backendLog.Logger("MEMP")
)

func init() {
	node.UseLogger(nodeLog)
	blockchain.UseLogger(blockchainLog)
	mempool.UseLogger(mempoolLog)
}

// initLogRotator initializes the logging rotator to write logs to
// logFile and create roll files in the same directory. It must be
// called before the logging system can be used.
func initLogRotator(logFile string) error {
	logDir := filepath.Dir(logFile)
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	r, err := rotator.New(logFile, 10*1024*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}
	logRotator = r
	return nil
}

// setLogLevels sets the logging level for every subsystem logger.
func setLogLevels(levelStr string) {
	level, ok := btclog.LevelFromString(levelStr)
	if !ok {
		level = btclog.LevelInfo
	}
	for _, logger := range []btclog.Logger{nodeLog, blockchainLog, mempoolLog} {
		logger.SetLevel(level)
	}
}
