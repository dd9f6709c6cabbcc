// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package bitcoin

import (
	"bytes"
	"fmt"
)

const (
	MaxTxInputs           = 8
	MaxTxOutputs          = 8
	MaxUnlockingScriptLen = 256
	MaxLockingScriptLen   = 128
)

// Outpoint references the previously mined output being spent by an
// input. The hash is in display order.
type Outpoint struct {
	Hash  [32]byte
	Index uint32
}

type TransactionInput struct {
	PrevOutpoint    Outpoint
	UnlockingScript []byte
	Sequence        uint32
}

type TransactionOutput struct {
	Value         uint64
	LockingScript []byte
}

type Transaction struct {
	Version  uint32
	Inputs   []TransactionInput
	Outputs  []TransactionOutput
	LockTime uint32
}

// ParseTransaction decodes a serialized Bitcoin transaction. Input and
// output counts above the protocol maximum fail immediately without
// reading any element bytes, and any short read aborts the whole parse
// with no partial transaction returned.
func ParseTransaction(data []byte) (*Transaction, error) {
	c := NewCursor(data)
	var tx Transaction
	var err error
	if tx.Version, c, err = c.ReadUint32(); err != nil {
		return nil, err
	}
	inCount, c, err := c.ReadVarInt()
	if err != nil {
		return nil, err
	}
	if inCount > MaxTxInputs {
		return nil, fmt.Errorf("%w: %d declared", ErrTooManyInputs, inCount)
	}
	tx.Inputs = make([]TransactionInput, 0, inCount)
	for range inCount {
		var tmpInput TransactionInput
		if tmpInput, c, err = parseTransactionInput(c); err != nil {
			return nil, err
		}
		tx.Inputs = append(tx.Inputs, tmpInput)
	}
	outCount, c, err := c.ReadVarInt()
	if err != nil {
		return nil, err
	}
	if outCount > MaxTxOutputs {
		return nil, fmt.Errorf("%w: %d declared", ErrTooManyOutputs, outCount)
	}
	tx.Outputs = make([]TransactionOutput, 0, outCount)
	for range outCount {
		var tmpOutput TransactionOutput
		if tmpOutput, c, err = parseTransactionOutput(c); err != nil {
			return nil, err
		}
		tx.Outputs = append(tx.Outputs, tmpOutput)
	}
	if tx.LockTime, c, err = c.ReadUint32(); err != nil {
		return nil, err
	}
	return &tx, nil
}

func parseTransactionInput(c Cursor) (TransactionInput, Cursor, error) {
	var ret TransactionInput
	hash, c, err := c.ReadSlice(32)
	if err != nil {
		return ret, c, err
	}
	// Outpoint hashes are serialized in wire order
	ret.PrevOutpoint.Hash = ReverseBytes32([32]byte(hash))
	if ret.PrevOutpoint.Index, c, err = c.ReadUint32(); err != nil {
		return ret, c, err
	}
	script, c, err := c.ReadVarSlice(MaxUnlockingScriptLen)
	if err != nil {
		return ret, c, err
	}
	ret.UnlockingScript = bytes.Clone(script)
	if ret.Sequence, c, err = c.ReadUint32(); err != nil {
		return ret, c, err
	}
	return ret, c, nil
}

func parseTransactionOutput(c Cursor) (TransactionOutput, Cursor, error) {
	var ret TransactionOutput
	var err error
	if ret.Value, c, err = c.ReadUint64(); err != nil {
		return ret, c, err
	}
	script, c, err := c.ReadVarSlice(MaxLockingScriptLen)
	if err != nil {
		return ret, c, err
	}
	ret.LockingScript = bytes.Clone(script)
	return ret, c, nil
}
