// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"crypto/sha256"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"golang.org/x/crypto/scrypt"
)

// Proof of work scrypt parameters.
const (
	scryptN = 1024
	scryptR = 1
	scryptP = 1
)

// DoubleHashB calculates sha256(sha256(b)) and returns the resulting bytes.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates sha256(sha256(b)) and returns the resulting bytes as a
// chainhash.Hash.
func DoubleHashH(b []byte) chainhash.Hash {
	first := sha256.Sum256(b)
	return chainhash.Hash(sha256.Sum256(first[:]))
}

// PowHashH calculates the proof of work hash of b, which is scrypt with b as
// both the password and the salt, N=1024, r=1 and p=1.
func PowHashH(b []byte) chainhash.Hash {
	key, err := scrypt.Key(b, b, scryptN, scryptR, scryptP, chainhash.HashSize)
	if err != nil {
		// The parameters are constants that scrypt always accepts.
		panic(err)
	}
	var hash chainhash.Hash
	copy(hash[:], key)
	return hash
}
