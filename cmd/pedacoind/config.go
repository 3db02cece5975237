// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
)

const (
	defaultDataDirname  = "data"
	defaultLogFilename  = "pedacoind.log"
	defaultLogLevel     = "info"
	defaultMinerKeyFile = "miner.key"
)

// config defines the command-line and config-file options pedacoind
// accepts. Unlike the teacher's multi-network daemon, there is exactly
// one ledger here, so there is no network-selection flag.
type config struct {
	HomeDir    string `long:"homedir" description:"Directory to store keys and logs"`
	Mine       bool   `long:"mine" description:"Run the mining loop after startup"`
	Blocks     uint   `long:"blocks" description:"Number of blocks to mine before exiting (0 = run until interrupted)"`
	Difficulty uint64 `long:"difficulty" description:"Override the default proof-of-work difficulty"`
	LogLevel   string `long:"loglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}"`

	dataDir string
	logFile string
}

func defaultHomeDir() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, ".pedacoin")
}

// loadConfig parses command-line flags, applying defaults for anything
// left unset, and derives the data directory and log file paths.
func loadConfig() (*config, error) {
	cfg := config{
		HomeDir:  defaultHomeDir(),
		LogLevel: defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	cfg.dataDir = filepath.Join(cfg.HomeDir, defaultDataDirname)
	cfg.logFile = filepath.Join(cfg.HomeDir, "logs", defaultLogFilename)

	if err := os.MkdirAll(cfg.dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &cfg, nil
}

func (cfg *config) minerKeyFile() string {
	return filepath.Join(cfg.dataDir, defaultMinerKeyFile)
}

func (cfg *config) minerPubFile() string {
	return filepath.Join(cfg.dataDir, defaultMinerKeyFile+".pub")
}
