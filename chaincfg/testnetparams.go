// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/darksaga/darksagad/wire"
)

// testNetPowLimitShift defines the highest proof of work value a block can
// have for the test network.  It is the value 2^240 - 1.
const testNetPowLimitShift = 16

// testNetSeeds are the packed IPv4 addresses of the hard-coded test network
// seed nodes.
var testNetSeeds = []uint32{}

// testNetConfig returns the literal values that define the test network.  It
// starts from the main network and overrides what differs.
func testNetConfig() *netConfig {
	cfg := mainNetConfig()
	cfg.id = TestNet
	cfg.name = "testnet"
	cfg.net = wire.TestNet
	cfg.powLimitShift = testNetPowLimitShift
	cfg.alertPubKey = hexDecode("")

	// The ports have always been configured as 95850 and 95951, which do
	// not fit in 16 bits.  These are the values they truncate to and that
	// nodes have actually listened on.
	cfg.defaultPort = 30314 // 95850 & 0xffff
	cfg.rpcPort = 30415     // 95951 & 0xffff
	cfg.dataDirSuffix = "testnet"

	// The genesis block differs from the main network only in its bits and
	// nonce.  It is not checked against hard-coded values.
	cfg.genesis.Bits = 0x593b06c8 // 1497040584
	cfg.genesis.Nonce = 213861
	cfg.genesisCheck = nil

	cfg.dnsSeeds = nil
	cfg.fixedSeeds = testNetSeeds

	cfg.addressVersions = [numAddressKinds][]byte{
		PubKeyAddr:        {61},
		ScriptAddr:        {196},
		SecretKey:         {229},
		StealthAddr:       {229},
		ExtendedPublicKey: {0x04, 0x35, 0x87, 0xcf}, // tpub
		ExtendedSecretKey: {0x04, 0x35, 0x83, 0x94}, // tprv
	}

	cfg.lastPOWBlock = 0x7fffffff
	return cfg
}

// TestNetParams returns the network parameters for the test network.
func TestNetParams() (*Params, error) {
	return newParams(testNetConfig())
}
