// Copyright (c) 2019-2021 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/darksaga/darksagad/wire"
	"github.com/davecgh/go-spew/spew"
)

// mustParams returns the parameters of the main and test networks and fails
// the test when either cannot be built.
func mustParams(t *testing.T) (*Params, *Params) {
	t.Helper()

	mainNet, err := MainNetParams()
	if err != nil {
		t.Fatalf("MainNetParams: unexpected error: %v", err)
	}
	testNet, err := TestNetParams()
	if err != nil {
		t.Fatalf("TestNetParams: unexpected error: %v", err)
	}
	return mainNet, testNet
}

// TestNetworkConstants ensures the parameters of every network carry the
// expected constants.
func TestNetworkConstants(t *testing.T) {
	t.Parallel()

	mainNet, testNet := mustParams(t)
	tests := []struct {
		params      *Params
		id          NetworkID
		name        string
		net         wire.CurrencyNet
		magic       [4]byte
		port        uint16
		rpcPort     uint16
		powLimit    *big.Int
		powBits     uint32
		dnsSeeds    []DNSSeed
		lastPOW     int32
		posStart    int32
		dataDir     string
		pool        int
		dummyAddr   string
		hdPubKey    [4]byte
		hdPrivKey   [4]byte
		alertPubKey []byte
	}{{
		params:   mainNet,
		id:       MainNet,
		name:     "mainnet",
		net:      wire.MainNet,
		magic:    [4]byte{0xaa, 0xa3, 0xb2, 0xc4},
		port:     62620,
		rpcPort:  62720,
		powLimit: new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 236), big.NewInt(1)),
		powBits:  0x1e0fffff,
		dnsSeeds: []DNSSeed{{
			Name: "darkseed1.darksaga.xyz",
			Host: "darkseed1.darksaga.xyz",
		}},
		lastPOW:   999999999,
		posStart:  1,
		dataDir:   "",
		pool:      3,
		dummyAddr: "sWxwp7bnJNXiuBAkDBLqLmbKRWrn5URQ7S",
		hdPubKey:  [4]byte{0x04, 0x88, 0xb2, 0x1e},
		hdPrivKey: [4]byte{0x04, 0x88, 0xad, 0xe4},
	}, {
		params:    testNet,
		id:        TestNet,
		name:      "testnet",
		net:       wire.TestNet,
		magic:     [4]byte{0xa1, 0x79, 0xa4, 0xa2},
		port:      30314,
		rpcPort:   30415,
		powLimit:  new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 240), big.NewInt(1)),
		powBits:   0x1f00ffff,
		dnsSeeds:  nil,
		lastPOW:   0x7fffffff,
		posStart:  1,
		dataDir:   "testnet",
		pool:      3,
		dummyAddr: "sWxwp7bnJNXiuBAkDBLqLmbKRWrn5URQ7S",
		hdPubKey:  [4]byte{0x04, 0x35, 0x87, 0xcf},
		hdPrivKey: [4]byte{0x04, 0x35, 0x83, 0x94},
	}}

	for _, test := range tests {
		p := test.params
		if p.ID() != test.id || p.Name() != test.name {
			t.Errorf("%s: unexpected identity - got %v/%q", test.name,
				p.ID(), p.Name())
		}
		if p.Net() != test.net || p.MagicBytes() != test.magic {
			t.Errorf("%s: unexpected magic - got %v (%x), want %v (%x)",
				test.name, p.Net(), p.MagicBytes(), test.net, test.magic)
		}
		if p.DefaultPort() != test.port || p.RPCPort() != test.rpcPort {
			t.Errorf("%s: unexpected ports - got %d/%d, want %d/%d",
				test.name, p.DefaultPort(), p.RPCPort(), test.port,
				test.rpcPort)
		}
		if p.PowLimit().Cmp(test.powLimit) != 0 {
			t.Errorf("%s: unexpected pow limit - got %x, want %x",
				test.name, p.PowLimit(), test.powLimit)
		}
		if p.PowLimitBits() != test.powBits {
			t.Errorf("%s: unexpected pow limit bits - got %08x, want %08x",
				test.name, p.PowLimitBits(), test.powBits)
		}
		if len(p.DNSSeeds()) != len(test.dnsSeeds) {
			t.Errorf("%s: unexpected DNS seeds - got %v, want %v",
				test.name, spew.Sdump(p.DNSSeeds()),
				spew.Sdump(test.dnsSeeds))
		}
		for i, seed := range p.DNSSeeds() {
			if i < len(test.dnsSeeds) && seed != test.dnsSeeds[i] {
				t.Errorf("%s: unexpected DNS seed %d - got %v, want %v",
					test.name, i, seed, test.dnsSeeds[i])
			}
		}
		if len(p.FixedSeeds()) != 0 {
			t.Errorf("%s: unexpected fixed seeds %v", test.name,
				spew.Sdump(p.FixedSeeds()))
		}
		if p.LastPOWBlock() != test.lastPOW ||
			p.POSStartBlock() != test.posStart {

			t.Errorf("%s: unexpected heights - got %d/%d, want %d/%d",
				test.name, p.LastPOWBlock(), p.POSStartBlock(),
				test.lastPOW, test.posStart)
		}
		if p.DataDirSuffix() != test.dataDir {
			t.Errorf("%s: unexpected data dir suffix - got %q, want %q",
				test.name, p.DataDirSuffix(), test.dataDir)
		}
		if p.PoolMaxTransactions() != test.pool ||
			p.DummyPoolAddress() != test.dummyAddr {

			t.Errorf("%s: unexpected pool settings - got %d/%q",
				test.name, p.PoolMaxTransactions(), p.DummyPoolAddress())
		}
		if p.HDPubKeyVersion() != test.hdPubKey ||
			p.HDPrivKeyVersion() != test.hdPrivKey {

			t.Errorf("%s: unexpected HD versions - got %x/%x", test.name,
				p.HDPubKeyVersion(), p.HDPrivKeyVersion())
		}
		if !bytes.Equal(p.AlertPubKey(), test.alertPubKey) {
			t.Errorf("%s: unexpected alert key %x", test.name,
				p.AlertPubKey())
		}
	}
}

// TestAddressVersions ensures the address version prefixes of every network
// are as expected and differ between the networks for every kind.
func TestAddressVersions(t *testing.T) {
	t.Parallel()

	mainNet, testNet := mustParams(t)
	tests := []struct {
		kind AddressKind
		main []byte
		test []byte
	}{
		{PubKeyAddr, []byte{125}, []byte{61}},
		{ScriptAddr, []byte{44}, []byte{196}},
		{SecretKey, []byte{142}, []byte{229}},
		{StealthAddr, []byte{142}, []byte{229}},
		{ExtendedPublicKey, []byte{0x04, 0x88, 0xb2, 0x1e}, []byte{0x04, 0x35, 0x87, 0xcf}},
		{ExtendedSecretKey, []byte{0x04, 0x88, 0xad, 0xe4}, []byte{0x04, 0x35, 0x83, 0x94}},
	}

	if len(tests) != len(AddressKinds()) {
		t.Fatalf("test does not cover every address kind - got %d, want %d",
			len(tests), len(AddressKinds()))
	}

	for _, test := range tests {
		mainVersion, err := mainNet.AddressVersion(test.kind)
		if err != nil {
			t.Errorf("%v: unexpected main error: %v", test.kind, err)
			continue
		}
		testVersion, err := testNet.AddressVersion(test.kind)
		if err != nil {
			t.Errorf("%v: unexpected test error: %v", test.kind, err)
			continue
		}
		if !bytes.Equal(mainVersion, test.main) {
			t.Errorf("%v: unexpected main version - got %x, want %x",
				test.kind, mainVersion, test.main)
		}
		if !bytes.Equal(testVersion, test.test) {
			t.Errorf("%v: unexpected test version - got %x, want %x",
				test.kind, testVersion, test.test)
		}
		if bytes.Equal(mainVersion, testVersion) {
			t.Errorf("%v: version %x shared by both networks", test.kind,
				mainVersion)
		}
	}
}

// TestUnknownAddressKind ensures requesting the version of an address kind
// outside of the enumerated set fails.
func TestUnknownAddressKind(t *testing.T) {
	t.Parallel()

	mainNet, _ := mustParams(t)
	for _, kind := range []AddressKind{numAddressKinds, 0xff} {
		_, err := mainNet.AddressVersion(kind)
		if !errors.Is(err, ErrUnknownAddressKind) {
			t.Errorf("%v: unexpected error - got %v, want %v", kind, err,
				ErrUnknownAddressKind)
		}
	}
}

// TestAccessorsReturnCopies ensures modifying values returned by the accessors
// does not modify the parameters.
func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	mainNet, _ := mustParams(t)

	version, _ := mainNet.AddressVersion(PubKeyAddr)
	version[0] = 0
	if again, _ := mainNet.AddressVersion(PubKeyAddr); again[0] != 125 {
		t.Fatalf("address version was modified - got %x", again)
	}

	seeds := mainNet.DNSSeeds()
	seeds[0].Host = "example.com"
	if mainNet.DNSSeeds()[0].Host != "darkseed1.darksaga.xyz" {
		t.Fatalf("DNS seeds were modified - got %v", mainNet.DNSSeeds())
	}

	powLimit := mainNet.PowLimit()
	powLimit.SetInt64(0)
	if mainNet.PowLimitBits() != 0x1e0fffff {
		t.Fatalf("pow limit was modified - got %08x", mainNet.PowLimitBits())
	}
}

// TestConsensusHeights ensures the proof of work and proof of stake height
// checks honor the thresholds of each network.
func TestConsensusHeights(t *testing.T) {
	t.Parallel()

	mainNet, testNet := mustParams(t)
	tests := []struct {
		name   string
		params *Params
		height int32
		isPOW  bool
		isPOS  bool
	}{
		{"main genesis", mainNet, 0, true, false},
		{"main first", mainNet, 1, true, true},
		{"main last pow", mainNet, 999999999, true, true},
		{"main after last pow", mainNet, 1000000000, false, true},
		{"test genesis", testNet, 0, true, false},
		{"test max height", testNet, 0x7fffffff, true, true},
	}

	for _, test := range tests {
		if got := test.params.IsPOWHeight(test.height); got != test.isPOW {
			t.Errorf("%s: IsPOWHeight(%d) - got %v, want %v", test.name,
				test.height, got, test.isPOW)
		}
		if got := test.params.IsPOSHeight(test.height); got != test.isPOS {
			t.Errorf("%s: IsPOSHeight(%d) - got %v, want %v", test.name,
				test.height, got, test.isPOS)
		}
	}
}

// TestParseNetworkID ensures network names are parsed as expected.
func TestParseNetworkID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    NetworkID
		wantErr error
	}{
		{"main", MainNet, nil},
		{"mainnet", MainNet, nil},
		{"MainNet", MainNet, nil},
		{"test", TestNet, nil},
		{"testnet", TestNet, nil},
		{"regnet", 0, ErrUnrecognizedNetwork},
		{"", 0, ErrUnrecognizedNetwork},
	}

	for _, test := range tests {
		id, err := ParseNetworkID(test.name)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%q: unexpected error - got %v, want %v", test.name,
				err, test.wantErr)
			continue
		}
		if err == nil && id != test.want {
			t.Errorf("%q: unexpected network - got %v, want %v",
				test.name, id, test.want)
		}
	}
}

// TestStringers ensures the network identifiers and address kinds print as
// expected.
func TestStringers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   interface{ String() string }
		want string
	}{
		{MainNet, "mainnet"},
		{TestNet, "testnet"},
		{NetworkID(5), "unknown network (5)"},
		{PubKeyAddr, "PubKeyAddr"},
		{ExtendedSecretKey, "ExtendedSecretKey"},
		{AddressKind(0xff), "Unknown AddressKind (255)"},
		{DNSSeed{Name: "seed", Host: "seed.example.com"}, "seed.example.com"},
	}

	for i, test := range tests {
		if got := test.in.String(); got != test.want {
			t.Errorf("String #%d: got %q, want %q", i, got, test.want)
		}
	}
}

// TestInvalidAddressVersions ensures networks that do not define a usable
// version for every address kind are rejected.
func TestInvalidAddressVersions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(cfg *netConfig)
	}{{
		name: "missing pubkey version",
		modify: func(cfg *netConfig) {
			cfg.addressVersions[PubKeyAddr] = nil
		},
	}, {
		name: "short extended public key version",
		modify: func(cfg *netConfig) {
			cfg.addressVersions[ExtendedPublicKey] = []byte{0x04, 0x88}
		},
	}, {
		name: "long extended secret key version",
		modify: func(cfg *netConfig) {
			cfg.addressVersions[ExtendedSecretKey] = []byte{1, 2, 3, 4, 5}
		},
	}}

	for _, test := range tests {
		cfg := testNetConfig()
		test.modify(cfg)
		_, err := newParams(cfg)
		if !errors.Is(err, ErrInvalidAddressVersion) {
			t.Errorf("%s: unexpected error - got %v, want %v", test.name,
				err, ErrInvalidAddressVersion)
		}
	}
}

// TestUnsupportedNetworkConfig ensures a configuration for a network outside
// the supported set is rejected.
func TestUnsupportedNetworkConfig(t *testing.T) {
	t.Parallel()

	cfg := testNetConfig()
	cfg.id = numNetworks
	_, err := newParams(cfg)
	if !errors.Is(err, ErrUnrecognizedNetwork) {
		t.Fatalf("unexpected error - got %v, want %v", err,
			ErrUnrecognizedNetwork)
	}
}
