// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines chain configuration parameters.
//
// In addition to the main DarkSaga network, which is intended for the transfer
// of monetary value, there also exists a test network.  These networks are
// incompatible with each other (each sharing a different genesis block and
// network magic) and software should handle errors where input intended for
// one network is used on an application instance running on a different
// network.
//
// Parameters are built explicitly, never at package initialization, so that a
// failed genesis integrity check is reported as an error the caller can act
// on.  A Registry holds the parameters of every supported network along with
// the currently active one.
//
//	package main
//
//	import (
//		"flag"
//		"fmt"
//		"log"
//
//		"github.com/darksaga/darksagad/chaincfg"
//	)
//
//	func main() {
//		var testnet = flag.Bool("testnet", false, "operate on the test network")
//		flag.Parse()
//
//		registry, err := chaincfg.NewRegistry()
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		// By default (without -testnet), use mainnet.
//		if *testnet {
//			if err := registry.SelectNetwork(chaincfg.TestNet); err != nil {
//				log.Fatal(err)
//			}
//		}
//
//		// later...
//
//		params := registry.CurrentParameters()
//		fmt.Printf("%s magic %x port %d\n", params.Name(), params.MagicBytes(),
//			params.DefaultPort())
//	}
//
// As a general rule of thumb, all network parameters should be unique to the
// network.  NewRegistry refuses to build when the network magic or any address
// version prefix is shared between networks.
package chaincfg
