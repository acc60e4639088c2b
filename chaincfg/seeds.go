// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"net"
	"time"

	"github.com/darksaga/darksagad/wire"
	"github.com/decred/dcrd/crypto/rand"
)

// oneWeek is the length of the window the synthetic last seen time of a fixed
// seed is picked from, and how far before the current time that window ends.
const oneWeek = 7 * 24 * time.Hour

// DecodeSeeds converts packed IPv4 seed addresses into network addresses on the
// given port.  Each packed value holds the four address octets with the first
// octet in the most significant byte, so 0x5db8d822 decodes to 93.184.216.34.
//
// Every returned address advertises full node service and is given a last seen
// time picked uniformly at random between two weeks and one week ago, which
// keeps hard-coded seeds from looking fresher than addresses learned from
// peers.  The result preserves the order of the input.
func DecodeSeeds(seeds []uint32, port uint16) []*wire.NetAddress {
	return decodeSeeds(seeds, port, time.Now(), rand.Duration)
}

// decodeSeeds is DecodeSeeds with the current time and random source supplied
// by the caller.  randDuration must return a duration in [0, n).
func decodeSeeds(seeds []uint32, port uint16, now time.Time,
	randDuration func(n time.Duration) time.Duration) []*wire.NetAddress {

	now = now.Truncate(time.Second)
	addrs := make([]*wire.NetAddress, 0, len(seeds))
	for _, packed := range seeds {
		ip := make(net.IP, net.IPv4len)
		binary.BigEndian.PutUint32(ip, packed)

		age := oneWeek + randDuration(oneWeek).Truncate(time.Second)
		na := wire.NewNetAddressTimestamp(now.Add(-age), wire.SFNodeNetwork,
			ip, port)
		addrs = append(addrs, na)
	}
	return addrs
}
