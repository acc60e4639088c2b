// Copyright (c) 2020-2022 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"io"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrIntegrityViolation, "ErrIntegrityViolation"},
		{ErrUnrecognizedNetwork, "ErrUnrecognizedNetwork"},
		{ErrUnknownAddressKind, "ErrUnknownAddressKind"},
		{ErrInvalidAddressVersion, "ErrInvalidAddressVersion"},
		{ErrParamsCollision, "ErrParamsCollision"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		Error{Description: "human-readable error"},
		"human-readable error",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrIntegrityViolation == ErrIntegrityViolation",
		err:       ErrIntegrityViolation,
		target:    ErrIntegrityViolation,
		wantMatch: true,
		wantAs:    ErrIntegrityViolation,
	}, {
		name:      "Error.ErrIntegrityViolation == ErrIntegrityViolation",
		err:       paramsError(ErrIntegrityViolation, ""),
		target:    ErrIntegrityViolation,
		wantMatch: true,
		wantAs:    ErrIntegrityViolation,
	}, {
		name:      "Error.ErrIntegrityViolation == Error.ErrIntegrityViolation",
		err:       paramsError(ErrIntegrityViolation, ""),
		target:    paramsError(ErrIntegrityViolation, ""),
		wantMatch: true,
		wantAs:    ErrIntegrityViolation,
	}, {
		name:      "ErrUnrecognizedNetwork != ErrParamsCollision",
		err:       ErrUnrecognizedNetwork,
		target:    ErrParamsCollision,
		wantMatch: false,
		wantAs:    ErrUnrecognizedNetwork,
	}, {
		name:      "Error.ErrUnrecognizedNetwork != ErrParamsCollision",
		err:       paramsError(ErrUnrecognizedNetwork, ""),
		target:    ErrParamsCollision,
		wantMatch: false,
		wantAs:    ErrUnrecognizedNetwork,
	}, {
		name:      "ErrUnknownAddressKind != io.EOF",
		err:       ErrUnknownAddressKind,
		target:    io.EOF,
		wantMatch: false,
		wantAs:    ErrUnknownAddressKind,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped and is the
		// expected kind.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
