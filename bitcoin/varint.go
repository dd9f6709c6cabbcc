// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package bitcoin

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ReadVarInt consumes a CompactSize variable-length integer. A prefix
// byte below 0xfd is the value itself; 0xfd, 0xfe, and 0xff prefix a
// little-endian uint16, uint32, or uint64 respectively.
func (c Cursor) ReadVarInt() (uint64, Cursor, error) {
	prefix, next, err := c.ReadSlice(1)
	if err != nil {
		return 0, c, err
	}
	switch prefix[0] {
	case 0xff:
		val, next, err := next.ReadUint64()
		if err != nil {
			return 0, c, err
		}
		return val, next, nil
	case 0xfe:
		val, next, err := next.ReadUint32()
		if err != nil {
			return 0, c, err
		}
		return uint64(val), next, nil
	case 0xfd:
		val, next, err := next.ReadUint16()
		if err != nil {
			return 0, c, err
		}
		return uint64(val), next, nil
	default:
		return uint64(prefix[0]), next, nil
	}
}

// ReadVarSlice consumes a CompactSize length followed by that many
// bytes. A declared length beyond maxLen fails with ErrVarSliceTooLong
// rather than truncating.
func (c Cursor) ReadVarSlice(maxLen int) ([]byte, Cursor, error) {
	length, next, err := c.ReadVarInt()
	if err != nil {
		return nil, c, err
	}
	if length > uint64(maxLen) { // nolint:gosec // maxLen is a small protocol constant
		return nil, c, fmt.Errorf(
			"%w: %d bytes declared, maximum %d",
			ErrVarSliceTooLong,
			length,
			maxLen,
		)
	}
	ret, next, err := next.ReadSlice(int(length))
	if err != nil {
		return nil, c, err
	}
	return ret, next, nil
}

// WriteVarInt encodes a value in CompactSize form
func WriteVarInt(val uint64) []byte {
	var ret []byte
	switch {
	case val < 0xfd:
		ret = []byte{uint8(val)}
	case val <= math.MaxUint16:
		ret = make([]byte, 3)
		ret[0] = 0xfd
		binary.LittleEndian.PutUint16(ret[1:], uint16(val))
	case val <= math.MaxUint32:
		ret = make([]byte, 5)
		ret[0] = 0xfe
		binary.LittleEndian.PutUint32(ret[1:], uint32(val))
	default:
		ret = make([]byte, 9)
		ret[0] = 0xff
		binary.LittleEndian.PutUint64(ret[1:], val)
	}
	return ret
}
