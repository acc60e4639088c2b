package blockchainutil

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/decred/dcrd/blockchain/standalone/v2"
	"github.com/decred/dcrd/chaincfg/chainhash"
)

// Difficulty is a struct modeling the concept of how difficult it
// is to find a hash below a given target (https://en.bitcoin.it/wiki/Difficulty)
//
// Difficulty has at least three different representations:
//  1. Hex string
//     example: `00000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffff`
//  2. big.Int
//     example: `new(big.Int).Rsh(maxUint256, 20)`
//  3. Bits, or in a compact form
//     example: `0x1e0fffff`
//
// All the examples above represent the same entity.
//
// The purpose of this struct is to properly handle all the representations
// and to avoid creating multiple occurrences of the same constants in different
// forms.  A Difficulty is never mutated after construction.
type Difficulty struct {
	bigInt big.Int
}

// String returns Difficulty in all representations for debug purposes.
func (dif *Difficulty) String() string {
	return fmt.Sprintf("hexstring: %s bits: %08x", dif.ToHexString(),
		dif.ToCompact())
}

// ToCompact projects instance into compact representation
func (dif *Difficulty) ToCompact() uint32 {
	return standalone.BigToCompact(&dif.bigInt)
}

// ToBigInt projects instance into big integer representation.  The returned
// value is a copy and may be modified by the caller.
func (dif *Difficulty) ToBigInt() *big.Int {
	return new(big.Int).Set(&dif.bigInt)
}

// ToHexString projects instance into hex string representation
func (dif *Difficulty) ToHexString() string {
	return fmt.Sprintf("%064x", &dif.bigInt)
}

// HashMeets reports whether hash, interpreted as a little endian 256-bit
// integer, is less than or equal to the target.
func (dif *Difficulty) HashMeets(hash *chainhash.Hash) bool {
	return standalone.HashToBig(hash).Cmp(&dif.bigInt) <= 0
}

// NewDifficultyFromHashString creates a new instance from 64-digits hex
// string. Spaces are allowed for readability. Valid examples include:
// 00 00 0f ff ffffffffffffffffffffffffffffffffffffffffffffffffffffffff
// 00 00 ff ff ffffffffffffffffffffffffffffffffffffffffffffffffffffffff
// 7f ff ff ff ffffffffffffffffffffffffffffffffffffffffffffffffffffffff
//
// It panics on invalid input so it must only be called with hard-coded
// values.
func NewDifficultyFromHashString(hexstring string) *Difficulty {
	noSpaces := strings.Replace(hexstring, " ", "", -1)
	bytes, e := hex.DecodeString(noSpaces)
	if e != nil {
		panic(e)
	}
	if len(bytes) > 32 {
		panic(fmt.Sprintf("difficulty %q exceeds 256 bits", hexstring))
	}

	bigInt := new(big.Int)
	bigInt.SetBytes(bytes)
	return &Difficulty{*bigInt}
}

// NewDifficultyFromCompact creates a new instance from compact form (Bits)
func NewDifficultyFromCompact(compact uint32) *Difficulty {
	bigInt := standalone.CompactToBig(compact)
	return &Difficulty{*bigInt}
}

// NewDifficultyFromShift creates a new instance equal to the maximum 256-bit
// value shifted right by the given number of bits, which is how proof of work
// limits are usually expressed.
func NewDifficultyFromShift(shift uint) *Difficulty {
	maxUint256 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256),
		big.NewInt(1))
	return &Difficulty{*maxUint256.Rsh(maxUint256, shift)}
}
