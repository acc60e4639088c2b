// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/darksaga/darksagad/wire"
	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/txscript/v4"
)

// genesisMessage is the text embedded in the coinbase of the genesis block of
// every network.
const genesisMessage = "Genesis Sagacoin To The Moon sagacoin.net Sunday, " +
	"December 3, 2017 12:00:00 AM"

// genesisTime is both the coinbase transaction time and the block time of the
// genesis block of every network.
var genesisTime = time.Unix(1512259200, 0) // Sun, 03 Dec 2017 00:00:00 UTC

// genesisCoinbaseValue is the value pushed between OP_0 and the message in the
// genesis coinbase signature script.
const genesisCoinbaseValue = 42

// GenesisTemplate holds the values that define a genesis block.
type GenesisTemplate struct {
	// Message is the text embedded in the coinbase signature script.
	Message string

	// TxTime is the timestamp of the coinbase transaction.
	TxTime time.Time

	// Version is the block version.
	Version int32

	// Timestamp is the block time.
	Timestamp time.Time

	// Bits is the compact difficulty target.
	Bits uint32

	// Nonce is the proof of work nonce.
	Nonce uint32
}

// genesisCheck holds the hard-coded values a built genesis block must match.
type genesisCheck struct {
	hash       *chainhash.Hash
	merkleRoot *chainhash.Hash
}

// BuildGenesisBlock returns the genesis block described by the template.  The
// block holds a single coinbase transaction whose only input spends the null
// outpoint with the signature script OP_0 <42> <message> and whose only output
// is empty.  The previous block hash is zero and the merkle root is computed
// from the transaction.
func BuildGenesisBlock(tmpl *GenesisTemplate) (*wire.MsgBlock, error) {
	sigScript, err := txscript.NewScriptBuilder().
		AddOp(txscript.OP_0).
		AddInt64(genesisCoinbaseValue).
		AddData([]byte(tmpl.Message)).
		Script()
	if err != nil {
		return nil, fmt.Errorf("unable to build genesis signature script: %w",
			err)
	}

	coinbase := &wire.MsgTx{
		Version:   wire.TxVersion,
		Timestamp: time.Unix(tmpl.TxTime.Unix(), 0),
		TxIn: []*wire.TxIn{{
			// Fully null.
			PreviousOutPoint: wire.OutPoint{
				Hash:  chainhash.Hash{},
				Index: wire.MaxPrevOutIndex,
			},
			SignatureScript: sigScript,
			Sequence:        wire.MaxTxInSequenceNum,
		}},
		TxOut: []*wire.TxOut{{
			Value:    0,
			PkScript: nil,
		}},
		LockTime: 0,
	}

	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:   tmpl.Version,
			PrevBlock: chainhash.Hash{}, // All zero.
			// MerkleRoot: Calculated below.
			Timestamp: time.Unix(tmpl.Timestamp.Unix(), 0),
			Bits:      tmpl.Bits,
			Nonce:     tmpl.Nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
	block.Header.MerkleRoot = block.CalcMerkleRoot()
	return block, nil
}

// checkGenesis returns the hash of the genesis block after ensuring it and the
// merkle root match the expected values.  A nil check accepts any block.
func checkGenesis(network string, block *wire.MsgBlock, check *genesisCheck) (chainhash.Hash, error) {
	hash := block.BlockHash()
	if check == nil {
		return hash, nil
	}

	if check.hash != nil && hash != *check.hash {
		str := fmt.Sprintf("%s genesis block hash %v does not match "+
			"expected %v", network, hash, check.hash)
		return chainhash.Hash{}, paramsError(ErrIntegrityViolation, str)
	}
	merkleRoot := block.Header.MerkleRoot
	if check.merkleRoot != nil && merkleRoot != *check.merkleRoot {
		str := fmt.Sprintf("%s genesis merkle root %v does not match "+
			"expected %v", network, merkleRoot, check.merkleRoot)
		return chainhash.Hash{}, paramsError(ErrIntegrityViolation, str)
	}
	return hash, nil
}

// GenesisTemplateFor returns the values the genesis block of the identified
// network is built from.
func GenesisTemplateFor(id NetworkID) (*GenesisTemplate, error) {
	var cfg *netConfig
	switch id {
	case MainNet:
		cfg = mainNetConfig()
	case TestNet:
		cfg = testNetConfig()
	default:
		str := fmt.Sprintf("network %v is not supported", id)
		return nil, paramsError(ErrUnrecognizedNetwork, str)
	}
	tmpl := cfg.genesis
	return &tmpl, nil
}
