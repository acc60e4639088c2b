// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
darksagad is the DarkSaga node daemon.

On startup it builds and verifies the parameters of every supported network,
selects the network requested by the user, and makes those parameters
available to the rest of the node.  The main network is used unless the test
network is requested with --testnet or the DARKSAGAD_TESTNET environment
variable.

The long form of every option (except -C) can be specified in a configuration
file that is automatically parsed when darksagad starts up.  By default, the
configuration file is located at ~/.darksagad/darksagad.conf on POSIX-style
operating systems and %LOCALAPPDATA%\darksagad\darksagad.conf on Windows.  A
commented sample is written there on first run.  The -C (--configfile) flag,
as shown below, can be used to override this location.

Usage:

	darksagad [OPTIONS]

Application Options:

	-V, --version        Display version information and exit
	-A, --appdata=       Path to application home directory
	-C, --configfile=    Path to configuration file
	-b, --datadir=       Directory to store data
	    --logdir=        Directory to log output
	    --nofilelogging  Disable file logging
	    --testnet        Use the test network [$DARKSAGAD_TESTNET]
	    --showparams     Display the parameters of the active network and exit
	-d, --debuglevel=    Logging level for all subsystems {trace, debug, info,
	                     warn, error, critical} -- You may also specify
	                     <subsystem>=<level>,<subsystem2>=<level>,... to set
	                     the log level for individual subsystems -- Use show
	                     to list available subsystems

Help Options:

	-h, --help           Show this help message
*/
package main
