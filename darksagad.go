// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/darksaga/darksagad/chaincfg"
	"github.com/darksaga/darksagad/internal/version"
	flags "github.com/jessevdk/go-flags"
)

var cfg *config

// darksagadMain is the real main function for darksagad.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func darksagadMain() error {
	// Build the parameters of every supported network before anything else
	// so a failed genesis integrity check aborts startup.
	registry, err := chaincfg.NewRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load network parameters: %v\n",
			err)
		return err
	}

	// Load configuration and parse command line.  This function also
	// selects the network and initializes logging and configures it
	// accordingly.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	tcfg, _, err := loadConfig(appName, os.Args[1:], registry)
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			return nil
		}
		usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)
		fmt.Fprintln(os.Stderr, err)
		var e errSuppressUsage
		if !errors.As(err, &e) {
			fmt.Fprintln(os.Stderr, usageMessage)
		}
		return err
	}
	cfg = tcfg
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Show the active parameters and exit if requested.
	params := registry.CurrentParameters()
	if cfg.ShowParams {
		return writeParams(os.Stdout, params)
	}

	// Get a context that will be canceled when a shutdown signal has been
	// triggered either from an OS signal such as SIGINT (Ctrl+C) or from
	// another subsystem.
	ctx := shutdownListener()
	defer dsgdLog.Info("Shutdown complete")

	// Show version and home dir at startup.
	dsgdLog.Infof("Version %s (Go version %s %s/%s)", version.String(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
	dsgdLog.Infof("Home dir: %s", cfg.HomeDir)
	if cfg.NoFileLogging {
		dsgdLog.Info("File logging disabled")
	}

	// Create the data directory of the active network.
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		dsgdLog.Errorf("Unable to create data directory: %v", err)
		return err
	}

	dsgdLog.Infof("Active network: %s (magic %x, port %d, genesis %v)",
		params.Name(), params.MagicBytes(), params.DefaultPort(),
		params.GenesisHash())
	dsgdLog.Infof("Data dir: %s", cfg.DataDir)
	for _, seed := range params.DNSSeeds() {
		dsgdLog.Debugf("DNS seed %s (%s)", seed.Name, seed.Host)
	}
	dsgdLog.Debugf("%d fixed seed addresses", len(params.FixedSeeds()))

	// Block until a shutdown is requested.
	<-ctx.Done()
	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := darksagadMain(); err != nil {
		os.Exit(1)
	}
}
