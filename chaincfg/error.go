// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrIntegrityViolation indicates a genesis block built from the
	// network parameters does not hash to the hard-coded genesis hash or
	// merkle root.
	ErrIntegrityViolation = ErrorKind("ErrIntegrityViolation")

	// ErrUnrecognizedNetwork indicates a network identifier that does not
	// name a supported network.
	ErrUnrecognizedNetwork = ErrorKind("ErrUnrecognizedNetwork")

	// ErrUnknownAddressKind indicates an address kind outside of the
	// enumerated set was requested.
	ErrUnknownAddressKind = ErrorKind("ErrUnknownAddressKind")

	// ErrInvalidAddressVersion indicates a network does not define a usable
	// version prefix for every address kind.
	ErrInvalidAddressVersion = ErrorKind("ErrInvalidAddressVersion")

	// ErrParamsCollision indicates two networks share a value that must be
	// unique to each network, such as the network magic or an address
	// version prefix.
	ErrParamsCollision = ErrorKind("ErrParamsCollision")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to building or selecting network
// parameters.  It has full support for errors.Is and errors.As, so the caller
// can ascertain the specific reason for the error by checking the underlying
// error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// paramsError creates an Error given a set of arguments.
func paramsError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
