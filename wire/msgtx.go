// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2024-2026 The DarkSaga developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"
)

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion = 1

	// MaxPrevOutIndex is the maximum index the index field of a previous
	// outpoint can be.
	MaxPrevOutIndex uint32 = 0xffffffff

	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// outPointSize is the serialized size of an outpoint.
	// Hash 32 bytes + Index 4 bytes.
	outPointSize = chainhash.HashSize + 4

	// minTxInPayload is the minimum payload size for a transaction input.
	// PreviousOutPoint + Sequence 4 bytes + script length varint 1 byte.
	minTxInPayload = outPointSize + 4 + 1

	// minTxOutPayload is the minimum payload size for a transaction output.
	// Value 8 bytes + script length varint 1 byte.
	minTxOutPayload = 8 + 1

	// maxTxInPerBlock is the maximum number of transaction inputs that
	// could possibly fit into a block.
	maxTxInPerBlock = MaxBlockPayload/minTxInPayload + 1

	// maxTxOutPerBlock is the maximum number of transaction outputs that
	// could possibly fit into a block.
	maxTxOutPerBlock = MaxBlockPayload/minTxOutPayload + 1
)

// OutPoint defines a data type that is used to track previous transaction
// outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new transaction outpoint point with the provided hash
// and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	buf := make([]byte, 2*chainhash.HashSize+1, 2*chainhash.HashSize+1+10)
	copy(buf, o.Hash.String())
	buf[2*chainhash.HashSize] = ':'
	buf = strconv.AppendUint(buf, uint64(o.Index), 10)
	return string(buf)
}

// IsNull returns whether the outpoint references nothing, which is the case
// for the sole input of a coinbase transaction.
func (o *OutPoint) IsNull() bool {
	return o.Index == MaxPrevOutIndex && o.Hash == chainhash.Hash{}
}

// TxIn defines a transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction input.
func (t *TxIn) SerializeSize() int {
	return outPointSize + 4 + VarIntSerializeSize(uint64(len(t.SignatureScript))) +
		len(t.SignatureScript)
}

// NewTxIn returns a new transaction input with the provided previous outpoint
// and signature script with a default sequence of MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
	}
}

// TxOut defines a transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// SerializeSize returns the number of bytes it would take to serialize the
// the transaction output.
func (t *TxOut) SerializeSize() int {
	return 8 + VarIntSerializeSize(uint64(len(t.PkScript))) + len(t.PkScript)
}

// NewTxOut returns a new transaction output with the provided transaction
// value and public key script.
func NewTxOut(value int64, pkScript []byte) *TxOut {
	return &TxOut{
		Value:    value,
		PkScript: pkScript,
	}
}

// MsgTx is a proof-of-stake transaction.  Unlike a plain bitcoin
// transaction it carries the time it was created, serialized directly after
// the version.
type MsgTx struct {
	Version   int32
	Timestamp time.Time
	TxIn      []*TxIn
	TxOut     []*TxOut
	LockTime  uint32
}

// NewMsgTx returns a new transaction with the current time truncated to one
// second and no inputs or outputs.
func NewMsgTx() *MsgTx {
	return &MsgTx{
		Version:   TxVersion,
		Timestamp: time.Unix(time.Now().Unix(), 0),
		TxIn:      make([]*TxIn, 0, 1),
		TxOut:     make([]*TxOut, 0, 1),
	}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// IsCoinBase returns whether the transaction has exactly one input and that
// input spends the null outpoint.
func (msg *MsgTx) IsCoinBase() bool {
	return len(msg.TxIn) == 1 && msg.TxIn[0].PreviousOutPoint.IsNull()
}

// TxHash generates the hash for the transaction, which is the double sha256
// of its serialized form.
func (msg *MsgTx) TxHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSize()))
	_ = msg.Serialize(buf)
	return DoubleHashH(buf.Bytes())
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction.
func (msg *MsgTx) SerializeSize() int {
	// Version 4 bytes + Timestamp 4 bytes + LockTime 4 bytes + serialized
	// varint size for the number of transaction inputs and outputs.
	n := 12 + VarIntSerializeSize(uint64(len(msg.TxIn))) +
		VarIntSerializeSize(uint64(len(msg.TxOut)))

	for _, txIn := range msg.TxIn {
		n += txIn.SerializeSize()
	}
	for _, txOut := range msg.TxOut {
		n += txOut.SerializeSize()
	}
	return n
}

// Serialize encodes the transaction to w.
func (msg *MsgTx) Serialize(w io.Writer) error {
	err := writeElements(w, msg.Version, uint32Time(msg.Timestamp))
	if err != nil {
		return err
	}

	err = WriteVarInt(w, uint64(len(msg.TxIn)))
	if err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		err = writeTxIn(w, ti)
		if err != nil {
			return err
		}
	}

	err = WriteVarInt(w, uint64(len(msg.TxOut)))
	if err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		err = writeTxOut(w, to)
		if err != nil {
			return err
		}
	}

	return writeUint32LE(w, msg.LockTime)
}

// Deserialize decodes a transaction from r into the receiver.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	const op = "MsgTx.Deserialize"
	var ts uint32Time
	err := readElements(r, &msg.Version, &ts)
	if err != nil {
		return err
	}
	msg.Timestamp = time.Time(ts)

	count, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	if count > maxTxInPerBlock {
		str := fmt.Sprintf("too many input transactions to fit into "+
			"max block payload [count %d, max %d]", count, maxTxInPerBlock)
		return messageError(op, ErrTooManyTxIns, str)
	}
	msg.TxIn = make([]*TxIn, count)
	for i := range msg.TxIn {
		ti := new(TxIn)
		err = readTxIn(r, ti)
		if err != nil {
			return err
		}
		msg.TxIn[i] = ti
	}

	count, err = ReadVarInt(r)
	if err != nil {
		return err
	}
	if count > maxTxOutPerBlock {
		str := fmt.Sprintf("too many output transactions to fit into "+
			"max block payload [count %d, max %d]", count, maxTxOutPerBlock)
		return messageError(op, ErrTooManyTxOuts, str)
	}
	msg.TxOut = make([]*TxOut, count)
	for i := range msg.TxOut {
		to := new(TxOut)
		err = readTxOut(r, to)
		if err != nil {
			return err
		}
		msg.TxOut[i] = to
	}

	return readUint32LE(r, &msg.LockTime)
}

// readTxIn reads the next sequence of bytes from r as a transaction input.
func readTxIn(r io.Reader, ti *TxIn) error {
	err := readElements(r, &ti.PreviousOutPoint.Hash, &ti.PreviousOutPoint.Index)
	if err != nil {
		return err
	}

	ti.SignatureScript, err = ReadVarBytes(r, MaxBlockPayload,
		"transaction input signature script")
	if err != nil {
		return err
	}

	return readUint32LE(r, &ti.Sequence)
}

// writeTxIn encodes ti to w.
func writeTxIn(w io.Writer, ti *TxIn) error {
	err := writeElements(w, &ti.PreviousOutPoint.Hash, ti.PreviousOutPoint.Index)
	if err != nil {
		return err
	}

	err = WriteVarBytes(w, ti.SignatureScript)
	if err != nil {
		return err
	}

	return writeUint32LE(w, ti.Sequence)
}

// readTxOut reads the next sequence of bytes from r as a transaction output.
func readTxOut(r io.Reader, to *TxOut) error {
	err := readElement(r, &to.Value)
	if err != nil {
		return err
	}

	to.PkScript, err = ReadVarBytes(r, MaxBlockPayload,
		"transaction output public key script")
	return err
}

// writeTxOut encodes to into w.
func writeTxOut(w io.Writer, to *TxOut) error {
	err := writeElement(w, to.Value)
	if err != nil {
		return err
	}

	return WriteVarBytes(w, to.PkScript)
}
