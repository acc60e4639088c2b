// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// genesisBlock is the main network genesis block.
var genesisBlock = MsgBlock{
	Header:       genesisHeader,
	Transactions: []*MsgTx{&genesisCoinbaseTx},
}

// genesisBlockBytes is the serialized form of genesisBlock: the header, a
// single transaction and an empty block signature.
var genesisBlockBytes = func() []byte {
	b := make([]byte, 0, len(genesisHeaderBytes)+len(genesisCoinbaseTxBytes)+2)
	b = append(b, genesisHeaderBytes...)
	b = append(b, 0x01)
	b = append(b, genesisCoinbaseTxBytes...)
	return append(b, 0x00)
}()

// TestBlock tests the MsgBlock API.
func TestBlock(t *testing.T) {
	t.Parallel()

	bh := NewBlockHeader(1, &genesisHeader.PrevBlock,
		&genesisHeader.MerkleRoot, genesisHeader.Bits, genesisHeader.Nonce)
	msg := NewMsgBlock(bh)
	if !msg.Header.PrevBlock.IsEqual(&genesisHeader.PrevBlock) {
		t.Errorf("NewMsgBlock: wrong prev block - got %v, want %v",
			msg.Header.PrevBlock, genesisHeader.PrevBlock)
	}

	msg.AddTransaction(&genesisCoinbaseTx)
	if len(msg.Transactions) != 1 {
		t.Errorf("AddTransaction: wrong transaction count - got %d, want 1",
			len(msg.Transactions))
	}

	msg.ClearTransactions()
	if len(msg.Transactions) != 0 {
		t.Errorf("ClearTransactions: wrong transaction count - got %d, "+
			"want 0", len(msg.Transactions))
	}
}

// TestBlockHashes ensures the block and merkle hashes of the genesis block
// match the known values.
func TestBlockHashes(t *testing.T) {
	t.Parallel()

	blockHash := genesisBlock.BlockHash()
	wantHash := "e523a92cbe17c3e13fbc1bf191e79138c9dfbe61199ede7870b4d5abd89c0e93"
	if blockHash.String() != wantHash {
		t.Errorf("BlockHash: got %v, want %v", blockHash, wantHash)
	}

	merkleRoot := genesisBlock.CalcMerkleRoot()
	if merkleRoot != genesisMerkleRoot {
		t.Errorf("CalcMerkleRoot: got %v, want %v", merkleRoot,
			genesisMerkleRoot)
	}

	hashes := genesisBlock.TxHashes()
	if len(hashes) != 1 || hashes[0] != genesisMerkleRoot {
		t.Errorf("TxHashes: got %v, want [%v]", hashes, genesisMerkleRoot)
	}
}

// TestBlockSerialize tests MsgBlock serialize and deserialize.
func TestBlockSerialize(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := genesisBlock.Serialize(&buf)
	if err != nil {
		t.Fatalf("Serialize error %v", err)
	}
	if !bytes.Equal(buf.Bytes(), genesisBlockBytes) {
		t.Fatalf("Serialize\n got: %s want: %s", spew.Sdump(buf.Bytes()),
			spew.Sdump(genesisBlockBytes))
	}
	if genesisBlock.SerializeSize() != len(genesisBlockBytes) {
		t.Fatalf("SerializeSize: got %d, want %d",
			genesisBlock.SerializeSize(), len(genesisBlockBytes))
	}

	b, err := genesisBlock.Bytes()
	if err != nil {
		t.Fatalf("Bytes error %v", err)
	}
	if !bytes.Equal(b, genesisBlockBytes) {
		t.Fatalf("Bytes\n got: %s want: %s", spew.Sdump(b),
			spew.Sdump(genesisBlockBytes))
	}

	var block MsgBlock
	err = block.Deserialize(bytes.NewReader(genesisBlockBytes))
	if err != nil {
		t.Fatalf("Deserialize error %v", err)
	}
	if block.BlockHash() != genesisBlock.BlockHash() {
		t.Fatalf("Deserialize: wrong block hash - got %v, want %v",
			block.BlockHash(), genesisBlock.BlockHash())
	}
	if len(block.Transactions) != 1 {
		t.Fatalf("Deserialize: wrong transaction count - got %d, want 1",
			len(block.Transactions))
	}
	if block.Transactions[0].TxHash() != genesisMerkleRoot {
		t.Fatalf("Deserialize: wrong transaction hash - got %v, want %v",
			block.Transactions[0].TxHash(), genesisMerkleRoot)
	}
	if len(block.Signature) != 0 {
		t.Fatalf("Deserialize: unexpected signature %x", block.Signature)
	}

	// A signed block must carry its signature through a round trip.
	signed := genesisBlock
	signed.Signature = []byte{0x30, 0x44, 0x02, 0x20}
	b, err = signed.Bytes()
	if err != nil {
		t.Fatalf("Bytes error %v", err)
	}
	var signedBlock MsgBlock
	err = signedBlock.Deserialize(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("Deserialize error %v", err)
	}
	if !bytes.Equal(signedBlock.Signature, signed.Signature) {
		t.Fatalf("Deserialize: wrong signature - got %x, want %x",
			signedBlock.Signature, signed.Signature)
	}
}

// TestBlockSerializeErrors performs negative tests against block serialize and
// deserialize to confirm error paths work correctly.
func TestBlockSerializeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		max      int   // Max size of fixed buffer to induce errors
		writeErr error // Expected write error
		readErr  error // Expected read error
	}{
		// Force error in header.
		{0, io.ErrShortWrite, io.EOF},
		// Force error in transaction count.
		{80, io.ErrShortWrite, io.EOF},
		// Force error in transactions.
		{81, io.ErrShortWrite, io.EOF},
		// Force error in signature.
		{228, io.ErrShortWrite, io.EOF},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		w := newFixedWriter(test.max)
		err := genesisBlock.Serialize(w)
		if !errors.Is(err, test.writeErr) {
			t.Errorf("Serialize #%d wrong error got: %v, want: %v", i,
				err, test.writeErr)
			continue
		}

		var block MsgBlock
		rbuf := bytes.NewReader(genesisBlockBytes[0:test.max])
		err = block.Deserialize(rbuf)
		if !errors.Is(err, test.readErr) {
			t.Errorf("Deserialize #%d wrong error got: %v, want: %v", i,
				err, test.readErr)
			continue
		}
	}
}

// TestBlockOverflowErrors performs tests to ensure deserializing blocks which
// are intentionally crafted to use large values for the number of
// transactions or the signature length are handled properly.
func TestBlockOverflowErrors(t *testing.T) {
	t.Parallel()

	tooManyTxs := append(append([]byte{}, genesisHeaderBytes...),
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)

	longSig := append([]byte{}, genesisBlockBytes[:len(genesisBlockBytes)-1]...)
	longSig = append(longSig, MaxBlockSignatureSize+1)

	tests := []struct {
		name string
		buf  []byte
		err  error
	}{
		{"too many transactions", tooManyTxs, ErrTooManyTxs},
		{"signature too long", longSig, ErrVarBytesTooLong},
	}

	for _, test := range tests {
		var block MsgBlock
		err := block.Deserialize(bytes.NewReader(test.buf))
		if !errors.Is(err, test.err) {
			t.Errorf("%s: wrong error got: %v, want: %v", test.name, err,
				test.err)
		}
	}
}
