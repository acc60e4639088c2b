// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"net"
	"testing"
	"time"
)

// TestNetAddress tests the NetAddress API.
func TestNetAddress(t *testing.T) {
	t.Parallel()

	ip := net.ParseIP("127.0.0.1")
	port := uint16(62620)

	na := NewNetAddressIPPort(ip, port, 0)
	if !na.IP.Equal(ip) {
		t.Errorf("NetNetAddress: wrong ip - got %v, want %v", na.IP, ip)
	}
	if na.Port != port {
		t.Errorf("NetNetAddress: wrong port - got %v, want %v", na.Port, port)
	}
	if na.Services != 0 {
		t.Errorf("NetNetAddress: wrong services - got %v, want %v",
			na.Services, 0)
	}
	if na.HasService(SFNodeNetwork) {
		t.Errorf("HasService: SFNodeNetwork service is set")
	}

	na.AddService(SFNodeNetwork)
	if na.Services != SFNodeNetwork {
		t.Errorf("AddService: wrong services - got %v, want %v",
			na.Services, SFNodeNetwork)
	}
	if !na.HasService(SFNodeNetwork) {
		t.Errorf("HasService: SFNodeNetwork service not set")
	}

	if na.Key() != "127.0.0.1:62620" {
		t.Errorf("Key: got %s, want 127.0.0.1:62620", na.Key())
	}
}

// TestNetAddressTimestamp ensures timestamps are truncated to whole seconds.
func TestNetAddressTimestamp(t *testing.T) {
	t.Parallel()

	ts := time.Unix(1512259200, 999999999)
	na := NewNetAddressTimestamp(ts, SFNodeNetwork, net.IPv4(93, 184, 216, 34),
		30314)
	if !na.Timestamp.Equal(time.Unix(1512259200, 0)) {
		t.Errorf("NewNetAddressTimestamp: wrong timestamp - got %v, want %v",
			na.Timestamp, time.Unix(1512259200, 0))
	}
	if na.String() != "93.184.216.34:30314" {
		t.Errorf("String: got %s, want 93.184.216.34:30314", na.String())
	}
}
