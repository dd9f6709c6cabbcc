// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package bitcoin

import (
	"encoding/binary"
	"fmt"
)

// HeaderLen is the exact serialized size of a block header
const HeaderLen = 80

// BlockHeader is a decoded 80-byte block header. ParentHash and
// MerkleRoot are in display order.
type BlockHeader struct {
	Version    uint32
	ParentHash [32]byte
	MerkleRoot [32]byte
	Timestamp  uint32
	Bits       uint32
	Nonce      uint32
}

// ParseBlockHeader decodes an 80-byte serialized block header. Any
// other buffer length fails with ErrBadHeader; the field lengths are
// fixed and sum to exactly 80, so no individual field read can fail
// once the length check passes.
func ParseBlockHeader(data []byte) (*BlockHeader, error) {
	if len(data) != HeaderLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrBadHeader, len(data))
	}
	c := NewCursor(data)
	var h BlockHeader
	var err error
	if h.Version, c, err = c.ReadUint32(); err != nil {
		return nil, err
	}
	parentHash, c, err := c.ReadSlice(32)
	if err != nil {
		return nil, err
	}
	h.ParentHash = ReverseBytes32([32]byte(parentHash))
	merkleRoot, c, err := c.ReadSlice(32)
	if err != nil {
		return nil, err
	}
	h.MerkleRoot = ReverseBytes32([32]byte(merkleRoot))
	if h.Timestamp, c, err = c.ReadUint32(); err != nil {
		return nil, err
	}
	if h.Bits, c, err = c.ReadUint32(); err != nil {
		return nil, err
	}
	if h.Nonce, c, err = c.ReadUint32(); err != nil {
		return nil, err
	}
	return &h, nil
}

// Encode returns the canonical 80-byte serialization. The output is
// byte-identical to what ParseBlockHeader would decode back into the
// same fields.
func (h *BlockHeader) Encode() []byte {
	ret := make([]byte, 0, HeaderLen)
	ret = binary.LittleEndian.AppendUint32(ret, h.Version)
	parentHash := ReverseBytes32(h.ParentHash)
	ret = append(ret, parentHash[:]...)
	merkleRoot := ReverseBytes32(h.MerkleRoot)
	ret = append(ret, merkleRoot[:]...)
	ret = binary.LittleEndian.AppendUint32(ret, h.Timestamp)
	ret = binary.LittleEndian.AppendUint32(ret, h.Bits)
	ret = binary.LittleEndian.AppendUint32(ret, h.Nonce)
	return ret
}

// Hash returns the display-order block hash
func (h *BlockHeader) Hash() [32]byte {
	return ReverseBytes32(DoubleSha256(h.Encode()))
}
