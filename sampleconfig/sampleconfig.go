// Copyright (c) 2017-2022 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sampleconfig provides the commented example config for darksagad.
package sampleconfig

import (
	_ "embed"
)

// sampleDarksagadConf is a string containing the commented example config for
// darksagad.
//
//go:embed sample-darksagad.conf
var sampleDarksagadConf string

// Darksagad returns a string containing the commented example config for
// darksagad.
func Darksagad() string {
	return sampleDarksagadConf
}
