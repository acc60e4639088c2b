// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/decred/dcrd/chaincfg/chainhash"
)

// hashMerkleBranches combines the two passed hashes into a parent node using
// double sha256.
func hashMerkleBranches(left, right *chainhash.Hash) chainhash.Hash {
	var hash [chainhash.HashSize * 2]byte
	copy(hash[:chainhash.HashSize], left[:])
	copy(hash[chainhash.HashSize:], right[:])
	return DoubleHashH(hash[:])
}

// CalcMerkleRootInPlace is an in-place version of CalcMerkleRoot that reuses
// the backing array of the provided slice to perform the calculation thereby
// preventing extra allocations.  It is the caller's responsibility to ensure
// it is safe to mutate the entries in the provided slice.
func CalcMerkleRootInPlace(leaves []chainhash.Hash) chainhash.Hash {
	if len(leaves) == 0 {
		return chainhash.Hash{}
	}

	// Each level of the tree pairs adjacent nodes.  When a level has an odd
	// number of nodes the final node is paired with itself.
	for len(leaves) > 1 {
		if len(leaves)&1 != 0 {
			leaves = append(leaves, leaves[len(leaves)-1])
		}
		for i := 0; i < len(leaves)/2; i++ {
			leaves[i] = hashMerkleBranches(&leaves[i*2], &leaves[i*2+1])
		}
		leaves = leaves[:len(leaves)/2]
	}
	return leaves[0]
}

// CalcMerkleRoot treats the provided slice of hashes as leaves of a merkle
// tree and returns the resulting merkle root.  The provided leaves are not
// modified.
func CalcMerkleRoot(leaves []chainhash.Hash) chainhash.Hash {
	if len(leaves) == 0 {
		return chainhash.Hash{}
	}

	leavesCopy := make([]chainhash.Hash, len(leaves), len(leaves)+1)
	copy(leavesCopy, leaves)
	return CalcMerkleRootInPlace(leavesCopy)
}
