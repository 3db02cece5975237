// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerforge/pedacoin/blockchain"
)

func TestNewRegistersDistinctCollectorsPerSet(t *testing.T) {
	a := New()
	b := New()

	a.BlocksMined.Inc()
	assert.Equal(t, float64(1), testutil.ToFloat64(a.BlocksMined))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.BlocksMined))
}

func TestBlockErrorReasonExtractsCode(t *testing.T) {
	err := &blockchain.BlockError{Code: blockchain.ErrInvalidHash}
	assert.Equal(t, "invalid hash", BlockErrorReason(err))
}

func TestBlockErrorReasonDefaultsToUnknown(t *testing.T) {
	assert.Equal(t, "unknown", BlockErrorReason(errors.New("not a block error")))
}
