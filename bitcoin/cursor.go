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

// ReadSlice returns data[offset:offset+size] after checking bounds.
func ReadSlice(data []byte, offset int, size int) ([]byte, error) {
	if offset < 0 || size < 0 || offset+size > len(data) {
		return nil, fmt.Errorf(
			"%w: %d byte read at offset %d in %d byte buffer",
			ErrOutOfBounds,
			size,
			offset,
			len(data),
		)
	}
	return data[offset : offset+size], nil
}

// Cursor is a read position within an immutable byte buffer. A read
// never mutates its receiver: it returns the decoded value along with
// a new cursor advanced past the consumed bytes, which the caller
// threads into the next read. A failed read leaves the caller's
// cursor usable and unchanged.
type Cursor struct {
	data   []byte
	offset int
}

func NewCursor(data []byte) Cursor {
	return Cursor{data: data}
}

// Offset returns the number of bytes consumed so far
func (c Cursor) Offset() int {
	return c.offset
}

// Remaining returns the number of unread bytes
func (c Cursor) Remaining() int {
	return len(c.data) - c.offset
}

// ReadSlice consumes the next size bytes
func (c Cursor) ReadSlice(size int) ([]byte, Cursor, error) {
	ret, err := ReadSlice(c.data, c.offset, size)
	if err != nil {
		return nil, c, err
	}
	c.offset += size
	return ret, c, nil
}

// ReadUint16 consumes a 2-byte little-endian integer
func (c Cursor) ReadUint16() (uint16, Cursor, error) {
	data, next, err := c.ReadSlice(2)
	if err != nil {
		return 0, c, err
	}
	return binary.LittleEndian.Uint16(data), next, nil
}

// ReadUint32 consumes a 4-byte little-endian integer
func (c Cursor) ReadUint32() (uint32, Cursor, error) {
	data, next, err := c.ReadSlice(4)
	if err != nil {
		return 0, c, err
	}
	return binary.LittleEndian.Uint32(data), next, nil
}

// ReadUint64 consumes an 8-byte little-endian integer
func (c Cursor) ReadUint64() (uint64, Cursor, error) {
	data, next, err := c.ReadSlice(8)
	if err != nil {
		return 0, c, err
	}
	return binary.LittleEndian.Uint64(data), next, nil
}
