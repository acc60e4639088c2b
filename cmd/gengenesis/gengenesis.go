// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// gengenesis searches for the nonce of a genesis block built from the genesis
// template of a network with optional overrides, and prints the values needed
// to hard-code the result.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/darksaga/darksagad/chaincfg"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
)

// log is the logger of the tool.  It discards everything until main sets it.
var log = slog.Disabled

type config struct {
	TestNet bool    `long:"testnet" description:"start from the test network genesis template"`
	Message *string `short:"m" long:"message" description:"text embedded in the coinbase signature script"`
	Time    *int64  `short:"t" long:"time" description:"unix time of both the coinbase transaction and the block"`
	Bits    *uint32 `short:"b" long:"bits" base:"16" description:"compact difficulty target in hex"`
	Nonce   *uint32 `short:"n" long:"nonce" description:"nonce to start the search from"`
	Debug   bool    `short:"d" long:"debug" description:"show debug logging"`
}

// template returns the genesis template of the selected network with every
// override from the config applied.
func (cfg *config) template() (*chaincfg.GenesisTemplate, error) {
	id := chaincfg.MainNet
	if cfg.TestNet {
		id = chaincfg.TestNet
	}
	tmpl, err := chaincfg.GenesisTemplateFor(id)
	if err != nil {
		return nil, err
	}

	if cfg.Message != nil {
		tmpl.Message = *cfg.Message
	}
	if cfg.Time != nil {
		tmpl.TxTime = time.Unix(*cfg.Time, 0)
		tmpl.Timestamp = tmpl.TxTime
	}
	if cfg.Bits != nil {
		tmpl.Bits = *cfg.Bits
	}
	if cfg.Nonce != nil {
		tmpl.Nonce = *cfg.Nonce
	}
	return tmpl, nil
}

// run builds the genesis block described by the config, solves it and writes
// the result to w.
func run(ctx context.Context, cfg *config, w io.Writer) error {
	tmpl, err := cfg.template()
	if err != nil {
		return err
	}
	block, err := chaincfg.BuildGenesisBlock(tmpl)
	if err != nil {
		return err
	}

	header := &block.Header
	log.Infof("Searching for a genesis block with bits %08x from nonce %d",
		header.Bits, header.Nonce)
	start := time.Now()
	if err := chaincfg.SolveGenesisBlock(ctx, block); err != nil {
		return err
	}
	log.Infof("Solved in %v", time.Since(start).Round(time.Millisecond))

	fmt.Fprintf(w, "hash:        %v\n", block.BlockHash())
	fmt.Fprintf(w, "merkle root: %v\n", header.MerkleRoot)
	fmt.Fprintf(w, "time:        %d\n", header.Timestamp.Unix())
	fmt.Fprintf(w, "bits:        0x%08x\n", header.Bits)
	fmt.Fprintf(w, "nonce:       %d\n", header.Nonce)
	return nil
}

func main() {
	var cfg config
	parser := flags.NewParser(&cfg, flags.Default)
	_, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	backend := slog.NewBackend(os.Stderr)
	log = backend.Logger("GNGN")
	chcfLog := backend.Logger("CHCF")
	if cfg.Debug {
		log.SetLevel(slog.LevelDebug)
		chcfLog.SetLevel(slog.LevelDebug)
	}
	chaincfg.UseLogger(chcfLog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, &cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "gengenesis: %v\n", err)
		stop()
		os.Exit(1)
	}
}
