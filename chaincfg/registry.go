// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"fmt"
	"sync/atomic"
)

// Environment provides the choice of network made by the user, typically
// through a command line flag or an environment variable.
type Environment interface {
	// UseTestNet reports whether the test network was requested.
	UseTestNet() bool
}

// Registry holds the parameters of every supported network along with the
// network that is currently active.  The active network defaults to the main
// network.
//
// It is safe for concurrent access, though the active network is expected to
// be selected once during startup before the parameters are handed out.
type Registry struct {
	params [numNetworks]*Params
	active atomic.Pointer[Params]
}

// NewRegistry builds the parameters of every supported network, ensures no two
// networks can be confused for one another, and returns a registry with the
// main network active.  Any error from building a network, such as a failed
// genesis integrity check, is returned as is.
func NewRegistry() (*Registry, error) {
	mainNet, err := MainNetParams()
	if err != nil {
		return nil, err
	}
	testNet, err := TestNetParams()
	if err != nil {
		return nil, err
	}
	return newRegistry(mainNet, testNet)
}

// newRegistry returns a registry holding the passed parameters with the main
// network active.  Exactly one set of parameters for every supported network
// must be provided.
func newRegistry(networks ...*Params) (*Registry, error) {
	var r Registry
	for _, params := range networks {
		if params.id >= numNetworks {
			str := fmt.Sprintf("network %v is not supported", params.id)
			return nil, paramsError(ErrUnrecognizedNetwork, str)
		}
		if r.params[params.id] != nil {
			str := fmt.Sprintf("network %v is defined more than once",
				params.id)
			return nil, paramsError(ErrParamsCollision, str)
		}
		for _, other := range r.params {
			if other == nil {
				continue
			}
			if err := checkCollision(params, other); err != nil {
				return nil, err
			}
		}
		r.params[params.id] = params
	}
	for id, params := range r.params {
		if params == nil {
			str := fmt.Sprintf("no parameters for network %v",
				NetworkID(id))
			return nil, paramsError(ErrUnrecognizedNetwork, str)
		}
	}

	r.active.Store(r.params[MainNet])
	return &r, nil
}

// checkCollision returns an error when the two networks share their magic or
// the version prefix of any address kind.
func checkCollision(a, b *Params) error {
	if a.net == b.net {
		str := fmt.Sprintf("networks %s and %s share magic %v", a.name,
			b.name, a.net)
		return paramsError(ErrParamsCollision, str)
	}
	for kind := AddressKind(0); kind < numAddressKinds; kind++ {
		if bytes.Equal(a.addressVersions[kind], b.addressVersions[kind]) {
			str := fmt.Sprintf("networks %s and %s share %v version %x",
				a.name, b.name, kind, a.addressVersions[kind])
			return paramsError(ErrParamsCollision, str)
		}
	}
	return nil
}

// Params returns the parameters of the identified network without changing
// the active network.
func (r *Registry) Params(id NetworkID) (*Params, error) {
	if id >= numNetworks {
		str := fmt.Sprintf("network %v is not supported", id)
		return nil, paramsError(ErrUnrecognizedNetwork, str)
	}
	return r.params[id], nil
}

// Networks returns the parameters of every supported network ordered by their
// identifier.
func (r *Registry) Networks() []*Params {
	networks := make([]*Params, 0, numNetworks)
	return append(networks, r.params[:]...)
}

// SelectNetwork makes the identified network the active one.  The active
// network is left unchanged when the identifier does not name a supported
// network.
func (r *Registry) SelectNetwork(id NetworkID) error {
	params, err := r.Params(id)
	if err != nil {
		return err
	}
	prev := r.active.Swap(params)
	if prev != params {
		log.Infof("Active network changed from %s to %s", prev.name,
			params.name)
	}
	return nil
}

// CurrentParameters returns the parameters of the active network.
func (r *Registry) CurrentParameters() *Params {
	return r.active.Load()
}

// SelectFromEnvironment makes the network requested by the environment the
// active one and returns its parameters.  The main network is selected unless
// the environment requests the test network.
func (r *Registry) SelectFromEnvironment(env Environment) (*Params, error) {
	id := MainNet
	if env.UseTestNet() {
		id = TestNet
	}
	if err := r.SelectNetwork(id); err != nil {
		return nil, err
	}
	return r.CurrentParameters(), nil
}
