// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/darksaga/darksagad/blockchainutil"
	"github.com/darksaga/darksagad/wire"
)

// mainNetPowLimitShift defines the highest proof of work value a block can
// have for the main network.  It is the value 2^236 - 1, which is the maximum
// 256-bit value shifted right by 20 bits.
const mainNetPowLimitShift = 20

// mainNetSeeds are the packed IPv4 addresses of the hard-coded main network
// seed nodes.  Each value holds the address octets in network byte order.
var mainNetSeeds = []uint32{}

// mainNetConfig returns the literal values that define the main network.
func mainNetConfig() *netConfig {
	// The genesis block difficulty is the proof of work limit in its
	// compact representation, 0x1e0fffff.
	genesisBits := blockchainutil.NewDifficultyFromShift(mainNetPowLimitShift).
		ToCompact()

	return &netConfig{
		id:            MainNet,
		name:          "mainnet",
		net:           wire.MainNet,
		defaultPort:   62620,
		rpcPort:       62720,
		alertPubKey:   hexDecode(""),
		powLimitShift: mainNetPowLimitShift,
		addressVersions: [numAddressKinds][]byte{
			PubKeyAddr:        {125},
			ScriptAddr:        {44},
			SecretKey:         {142},
			StealthAddr:       {142},
			ExtendedPublicKey: {0x04, 0x88, 0xb2, 0x1e}, // xpub
			ExtendedSecretKey: {0x04, 0x88, 0xad, 0xe4}, // xprv
		},
		dnsSeeds: []DNSSeed{
			{Name: "darkseed1.darksaga.xyz", Host: "darkseed1.darksaga.xyz"},
		},
		fixedSeeds: mainNetSeeds,

		// The genesis block of the main network.  The block and coinbase
		// transaction share the same timestamp.
		genesis: GenesisTemplate{
			Message:   genesisMessage,
			TxTime:    genesisTime,
			Version:   1,
			Timestamp: genesisTime,
			Bits:      genesisBits,
			Nonce:     214187,
		},
		genesisCheck: &genesisCheck{
			hash: newHashFromStr("e523a92cbe17c3e13fbc1bf191e79138c9dfbe6" +
				"1199ede7870b4d5abd89c0e93"),
			merkleRoot: newHashFromStr("13482ce8d40851efa8f6d175c5a88683" +
				"3f8d1f84fe8edfc66e53c20a4cf738cc"),
		},

		lastPOWBlock:        999999999,
		posStartBlock:       1,
		dataDirSuffix:       "",
		poolMaxTransactions: 3,
		dummyPoolAddress:    "sWxwp7bnJNXiuBAkDBLqLmbKRWrn5URQ7S",
	}
}

// MainNetParams returns the network parameters for the main DarkSaga network.
// An error with kind ErrIntegrityViolation is returned when the genesis block
// built from the parameters does not match the hard-coded genesis hash and
// merkle root.
func MainNetParams() (*Params, error) {
	return newParams(mainNetConfig())
}
