// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the DarkSaga serialization of blocks, block headers
and proof-of-stake transactions.

Transactions carry a creation timestamp directly after their version and are
identified by the double sha256 of their serialized form.  Blocks are
identified by the scrypt (N=1024, r=1, p=1) hash of their 80-byte serialized
header, which is also the proof of work hash.  A serialized block ends with the
signature of the staker that produced it, which is empty for proof of work
blocks.

# Errors

Errors returned by this package are either the raw errors provided by
underlying calls to read/write from streams such as io.EOF,
io.ErrUnexpectedEOF, and io.ErrShortWrite, or of type wire.MessageError.  This
allows the caller to differentiate between general IO errors and malformed
data through type assertions.
*/
package wire
