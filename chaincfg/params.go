// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/darksaga/darksagad/blockchainutil"
	"github.com/darksaga/darksagad/wire"
	"github.com/decred/dcrd/chaincfg/chainhash"
)

// NetworkID identifies one of the supported networks.
type NetworkID uint8

const (
	// MainNet identifies the main network.
	MainNet NetworkID = iota

	// TestNet identifies the test network.
	TestNet

	// numNetworks is the number of supported networks.  It MUST be the last
	// entry.
	numNetworks
)

// networkNames maps the supported networks to their canonical names.
var networkNames = [numNetworks]string{
	MainNet: "mainnet",
	TestNet: "testnet",
}

// String returns the canonical name of the network.
func (id NetworkID) String() string {
	if id < numNetworks {
		return networkNames[id]
	}
	return fmt.Sprintf("unknown network (%d)", uint8(id))
}

// ParseNetworkID returns the network identified by name.  Both the short
// ("main", "test") and canonical ("mainnet", "testnet") forms are accepted.
func ParseNetworkID(name string) (NetworkID, error) {
	switch strings.ToLower(name) {
	case "main", "mainnet":
		return MainNet, nil
	case "test", "testnet":
		return TestNet, nil
	}
	str := fmt.Sprintf("network %q is not supported", name)
	return 0, paramsError(ErrUnrecognizedNetwork, str)
}

// AddressKind identifies the kind of key or address an encoded version prefix
// applies to.
type AddressKind uint8

const (
	// PubKeyAddr is the prefix of pay-to-pubkey-hash addresses.
	PubKeyAddr AddressKind = iota

	// ScriptAddr is the prefix of pay-to-script-hash addresses.
	ScriptAddr

	// SecretKey is the prefix of WIF encoded private keys.
	SecretKey

	// StealthAddr is the prefix of stealth addresses.
	StealthAddr

	// ExtendedPublicKey is the prefix of BIP32 extended public keys.
	ExtendedPublicKey

	// ExtendedSecretKey is the prefix of BIP32 extended private keys.
	ExtendedSecretKey

	// numAddressKinds is the number of address kinds.  It MUST be the last
	// entry.
	numAddressKinds
)

// addressKindNames maps address kinds to their names for pretty printing.
var addressKindNames = [numAddressKinds]string{
	PubKeyAddr:        "PubKeyAddr",
	ScriptAddr:        "ScriptAddr",
	SecretKey:         "SecretKey",
	StealthAddr:       "StealthAddr",
	ExtendedPublicKey: "ExtendedPublicKey",
	ExtendedSecretKey: "ExtendedSecretKey",
}

// String returns the AddressKind in human-readable form.
func (k AddressKind) String() string {
	if k < numAddressKinds {
		return addressKindNames[k]
	}
	return fmt.Sprintf("Unknown AddressKind (%d)", uint8(k))
}

// AddressKinds returns every address kind a network defines a version for.
func AddressKinds() []AddressKind {
	kinds := make([]AddressKind, 0, numAddressKinds)
	for k := AddressKind(0); k < numAddressKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is a label for the seed used in logs.
	Name string

	// Host defines the hostname of the seed.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// Params defines a DarkSaga network by its parameters.  These parameters may be
// used by applications to differentiate networks as well as addresses and keys
// for one network from those intended for use on another network.
//
// Params are only created by MainNetParams, TestNetParams and NewRegistry and
// are never modified afterwards, so they are safe for concurrent reads.
type Params struct {
	id                  NetworkID
	name                string
	net                 wire.CurrencyNet
	defaultPort         uint16
	rpcPort             uint16
	alertPubKey         []byte
	powLimit            *blockchainutil.Difficulty
	addressVersions     [numAddressKinds][]byte
	dnsSeeds            []DNSSeed
	fixedSeeds          []*wire.NetAddress
	genesisBlock        *wire.MsgBlock
	genesisHash         chainhash.Hash
	lastPOWBlock        int32
	posStartBlock       int32
	dataDirSuffix       string
	poolMaxTransactions int
	dummyPoolAddress    string
}

// ID returns the identifier of the network.
func (p *Params) ID() NetworkID {
	return p.id
}

// Name returns a human-readable identifier for the network.
func (p *Params) Name() string {
	return p.name
}

// Net returns the network magic.
func (p *Params) Net() wire.CurrencyNet {
	return p.net
}

// MagicBytes returns the four message start bytes in the order they appear on
// the wire.
func (p *Params) MagicBytes() [4]byte {
	return p.net.Bytes()
}

// DefaultPort returns the default peer-to-peer port for the network.
func (p *Params) DefaultPort() uint16 {
	return p.defaultPort
}

// RPCPort returns the default RPC server port for the network.
func (p *Params) RPCPort() uint16 {
	return p.rpcPort
}

// AlertPubKey returns the public key alerts must be signed with.  It is empty
// when the network does not accept alerts.
func (p *Params) AlertPubKey() []byte {
	return append([]byte(nil), p.alertPubKey...)
}

// PowLimit returns the highest allowed proof of work value for a block.
func (p *Params) PowLimit() *big.Int {
	return p.powLimit.ToBigInt()
}

// PowLimitBits returns the highest allowed proof of work value for a block in
// compact form.
func (p *Params) PowLimitBits() uint32 {
	return p.powLimit.ToCompact()
}

// AddressVersion returns the version prefix encoded addresses and keys of the
// given kind carry on the network.
func (p *Params) AddressVersion(kind AddressKind) ([]byte, error) {
	if kind >= numAddressKinds {
		str := fmt.Sprintf("address kind %d is not defined", uint8(kind))
		return nil, paramsError(ErrUnknownAddressKind, str)
	}
	return append([]byte(nil), p.addressVersions[kind]...), nil
}

// HDPubKeyVersion returns the BIP32 extended public key version prefix.
func (p *Params) HDPubKeyVersion() [4]byte {
	var v [4]byte
	copy(v[:], p.addressVersions[ExtendedPublicKey])
	return v
}

// HDPrivKeyVersion returns the BIP32 extended private key version prefix.
func (p *Params) HDPrivKeyVersion() [4]byte {
	var v [4]byte
	copy(v[:], p.addressVersions[ExtendedSecretKey])
	return v
}

// DNSSeeds returns the DNS seeds of the network in order of preference.
func (p *Params) DNSSeeds() []DNSSeed {
	return append([]DNSSeed(nil), p.dnsSeeds...)
}

// FixedSeeds returns the hard-coded seed addresses of the network, each with
// a synthetic last seen time between one and two weeks before the parameters
// were built.
func (p *Params) FixedSeeds() []*wire.NetAddress {
	seeds := make([]*wire.NetAddress, 0, len(p.fixedSeeds))
	for _, na := range p.fixedSeeds {
		dup := *na
		seeds = append(seeds, &dup)
	}
	return seeds
}

// GenesisBlock returns the first block of the chain.  It must be treated as
// read only.
func (p *Params) GenesisBlock() *wire.MsgBlock {
	return p.genesisBlock
}

// GenesisHash returns the hash of the genesis block.
func (p *Params) GenesisHash() chainhash.Hash {
	return p.genesisHash
}

// LastPOWBlock returns the last height at which proof of work blocks are
// accepted.
func (p *Params) LastPOWBlock() int32 {
	return p.lastPOWBlock
}

// POSStartBlock returns the first height at which proof of stake blocks are
// accepted.
func (p *Params) POSStartBlock() int32 {
	return p.posStartBlock
}

// IsPOWHeight reports whether a proof of work block may be at the height.
func (p *Params) IsPOWHeight(height int32) bool {
	return height <= p.lastPOWBlock
}

// IsPOSHeight reports whether a proof of stake block may be at the height.
func (p *Params) IsPOSHeight(height int32) bool {
	return height >= p.posStartBlock
}

// DataDirSuffix returns the subdirectory of the data directory the network
// stores its data in.  It is empty for the main network.
func (p *Params) DataDirSuffix() string {
	return p.dataDirSuffix
}

// PoolMaxTransactions returns the number of transactions a mixing pool
// gathers before it is submitted.
func (p *Params) PoolMaxTransactions() int {
	return p.poolMaxTransactions
}

// DummyPoolAddress returns the address used as a placeholder output by the
// mixing pool.
func (p *Params) DummyPoolAddress() string {
	return p.dummyPoolAddress
}

// netConfig holds the literal values a network is defined by.  It is turned
// into Params by newParams.
type netConfig struct {
	id                  NetworkID
	name                string
	net                 wire.CurrencyNet
	defaultPort         uint16
	rpcPort             uint16
	alertPubKey         []byte
	powLimitShift       uint
	addressVersions     [numAddressKinds][]byte
	dnsSeeds            []DNSSeed
	fixedSeeds          []uint32
	genesis             GenesisTemplate
	genesisCheck        *genesisCheck
	lastPOWBlock        int32
	posStartBlock       int32
	dataDirSuffix       string
	poolMaxTransactions int
	dummyPoolAddress    string
}

// validateAddressVersions ensures every address kind has a version prefix and
// the extended key prefixes are four bytes.
func validateAddressVersions(name string, versions *[numAddressKinds][]byte) error {
	for kind, version := range versions {
		if len(version) == 0 {
			str := fmt.Sprintf("%s network defines no %v version", name,
				AddressKind(kind))
			return paramsError(ErrInvalidAddressVersion, str)
		}
	}
	for _, kind := range []AddressKind{ExtendedPublicKey, ExtendedSecretKey} {
		if len(versions[kind]) != 4 {
			str := fmt.Sprintf("%s network %v version %x is not 4 bytes",
				name, kind, versions[kind])
			return paramsError(ErrInvalidAddressVersion, str)
		}
	}
	return nil
}

// newParams builds the parameters of a network from its configuration.  The
// genesis block is built and, when the configuration carries the expected
// values, checked against them.
func newParams(cfg *netConfig) (*Params, error) {
	if cfg.id >= numNetworks {
		str := fmt.Sprintf("network %v is not supported", cfg.id)
		return nil, paramsError(ErrUnrecognizedNetwork, str)
	}
	if err := validateAddressVersions(cfg.name, &cfg.addressVersions); err != nil {
		return nil, err
	}

	genesisBlock, err := BuildGenesisBlock(&cfg.genesis)
	if err != nil {
		return nil, err
	}
	genesisHash, err := checkGenesis(cfg.name, genesisBlock, cfg.genesisCheck)
	if err != nil {
		return nil, err
	}

	params := &Params{
		id:                  cfg.id,
		name:                cfg.name,
		net:                 cfg.net,
		defaultPort:         cfg.defaultPort,
		rpcPort:             cfg.rpcPort,
		alertPubKey:         append([]byte(nil), cfg.alertPubKey...),
		powLimit:            blockchainutil.NewDifficultyFromShift(cfg.powLimitShift),
		dnsSeeds:            append([]DNSSeed(nil), cfg.dnsSeeds...),
		fixedSeeds:          DecodeSeeds(cfg.fixedSeeds, cfg.defaultPort),
		genesisBlock:        genesisBlock,
		genesisHash:         genesisHash,
		lastPOWBlock:        cfg.lastPOWBlock,
		posStartBlock:       cfg.posStartBlock,
		dataDirSuffix:       cfg.dataDirSuffix,
		poolMaxTransactions: cfg.poolMaxTransactions,
		dummyPoolAddress:    cfg.dummyPoolAddress,
	}
	for kind, version := range cfg.addressVersions {
		params.addressVersions[kind] = append([]byte(nil), version...)
	}

	log.Debugf("Built %s parameters: genesis %v, %d DNS seeds, %d fixed "+
		"seeds", params.name, params.genesisHash, len(params.dnsSeeds),
		len(params.fixedSeeds))
	return params, nil
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes.  Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}

// hexDecode decodes the passed hex string and returns the resulting bytes.  It
// panics if an error occurs.  This is only provided for the hard-coded
// constants so errors in the source code can be detected.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}
