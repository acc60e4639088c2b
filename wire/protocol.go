// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxBlockPayload is the maximum number of bytes a serialized block may
// occupy.  It also bounds every variable length field read while decoding.
const MaxBlockPayload = 1000000

// ServiceFlag identifies services supported by a peer.
type ServiceFlag uint64

const (
	// SFNodeNetwork is a flag used to indicate a peer is a full node.
	SFNodeNetwork ServiceFlag = 1 << iota
)

// String returns the ServiceFlag in human-readable form.
func (f ServiceFlag) String() string {
	if f == 0 {
		return "0x0"
	}

	var s []string
	if f&SFNodeNetwork == SFNodeNetwork {
		s = append(s, "SFNodeNetwork")
		f -= SFNodeNetwork
	}
	if f != 0 {
		s = append(s, "0x"+strconv.FormatUint(uint64(f), 16))
	}
	return strings.Join(s, "|")
}

// CurrencyNet represents which network a message belongs to.  The four
// message start bytes are the little endian encoding of the value.
type CurrencyNet uint32

// Constants used to indicate the message network.  They can also be used to
// seek to the next message when a stream's state is unknown.
const (
	// MainNet represents the main network.  Wire bytes: aa a3 b2 c4.
	MainNet CurrencyNet = 0xc4b2a3aa

	// TestNet represents the test network.  Wire bytes: a1 79 a4 a2.
	TestNet CurrencyNet = 0xa2a479a1
)

// cnStrings is a map of networks back to their constant names for pretty
// printing.
var cnStrings = map[CurrencyNet]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
}

// String returns the CurrencyNet in human-readable form.
func (n CurrencyNet) String() string {
	if s, ok := cnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown CurrencyNet (%d)", uint32(n))
}

// Bytes returns the network magic in the order it appears on the wire.
func (n CurrencyNet) Bytes() [4]byte {
	var b [4]byte
	littleEndian.PutUint32(b[:], uint32(n))
	return b
}
