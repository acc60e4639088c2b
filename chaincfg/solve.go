// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"context"
	"time"

	"github.com/darksaga/darksagad/blockchainutil"
	"github.com/darksaga/darksagad/wire"
)

// solveProgressInterval is how often SolveGenesisBlock reports its hash rate.
const solveProgressInterval = 15 * time.Second

// SolveGenesisBlock searches for a header nonce that makes the hash of the
// block meet the target encoded in its bits.  The search starts from the nonce
// already in the header, which is left untouched when it is already a
// solution.  Each time the nonce wraps around to zero the header timestamp is
// moved forward by one second.
//
// The header is updated in place.  The search only stops early when the
// context is canceled, in which case the context error is returned and the
// header holds the last nonce tried.
//
// This is only needed when the values of a genesis block change and is never
// used when building the parameters of a network.
func SolveGenesisBlock(ctx context.Context, block *wire.MsgBlock) error {
	// Create a couple of convenience variables.
	header := &block.Header
	target := blockchainutil.NewDifficultyFromCompact(header.Bits)

	ticker := time.NewTicker(solveProgressInterval)
	defer ticker.Stop()

	start := time.Now()
	hashesCompleted := uint64(0)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			elapsed := time.Since(start).Seconds()
			log.Infof("Genesis search at timestamp %d nonce %d (%.0f "+
				"hashes/s)", header.Timestamp.Unix(), header.Nonce,
				float64(hashesCompleted)/elapsed)

		default:
			// Non-blocking select to fall through
		}

		hash := header.BlockHash()
		hashesCompleted++
		if target.HashMeets(&hash) {
			log.Debugf("Genesis block solved after %d hashes: %v",
				hashesCompleted, hash)
			return nil
		}

		// Move the timestamp forward once the nonce space is exhausted.
		header.Nonce++
		if header.Nonce == 0 {
			log.Debugf("Nonce wrapped at timestamp %d",
				header.Timestamp.Unix())
			header.Timestamp = header.Timestamp.Add(time.Second)
		}
	}
}
