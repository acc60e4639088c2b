// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/darksaga/darksagad/chaincfg"
)

// writeParams writes a human-readable summary of the network parameters to w.
func writeParams(w io.Writer, params *chaincfg.Params) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	row := func(name string, format string, args ...interface{}) {
		fmt.Fprintf(tw, "%s:\t%s\n", name, fmt.Sprintf(format, args...))
	}

	genesis := params.GenesisBlock()
	row("Network", "%s (%v)", params.Name(), params.Net())
	row("Magic", "%x", params.MagicBytes())
	row("P2P port", "%d", params.DefaultPort())
	row("RPC port", "%d", params.RPCPort())
	row("Genesis hash", "%v", params.GenesisHash())
	row("Genesis merkle root", "%v", genesis.Header.MerkleRoot)
	row("Genesis time", "%d", genesis.Header.Timestamp.Unix())
	row("Genesis bits", "%08x", genesis.Header.Bits)
	row("Genesis nonce", "%d", genesis.Header.Nonce)
	row("PoW limit", "%064x", params.PowLimit())
	row("PoW limit bits", "%08x", params.PowLimitBits())
	row("Last PoW block", "%d", params.LastPOWBlock())
	row("PoS start block", "%d", params.POSStartBlock())
	for _, kind := range chaincfg.AddressKinds() {
		version, err := params.AddressVersion(kind)
		if err != nil {
			return err
		}
		row(kind.String()+" version", "%x", version)
	}

	hosts := make([]string, 0, len(params.DNSSeeds()))
	for _, seed := range params.DNSSeeds() {
		hosts = append(hosts, seed.String())
	}
	row("DNS seeds", "%s", strings.Join(hosts, ", "))
	row("Fixed seeds", "%d", len(params.FixedSeeds()))
	row("Data dir suffix", "%q", params.DataDirSuffix())
	row("Pool max transactions", "%d", params.PoolMaxTransactions())
	row("Dummy pool address", "%s", params.DummyPoolAddress())
	return tw.Flush()
}
