// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package bitcoin

import (
	"crypto/sha256"
)

// DoubleSha256 returns SHA-256 applied twice, Bitcoin's canonical hash
// for transaction IDs, header identity, and Merkle tree nodes
func DoubleSha256(data []byte) [32]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// ReverseBytes32 reverses the byte order of a 32-byte hash, converting
// between wire (little-endian) order and display order
func ReverseBytes32(data [32]byte) [32]byte {
	var ret [32]byte
	for i := range data {
		ret[i] = data[31-i]
	}
	return ret
}

// TransactionId returns the display-order ID for serialized
// transaction bytes
func TransactionId(txBytes []byte) [32]byte {
	return ReverseBytes32(DoubleSha256(txBytes))
}

// TransactionIdLE returns the wire-order ID for serialized transaction
// bytes. This is the form hashed into the Merkle tree.
func TransactionIdLE(txBytes []byte) [32]byte {
	return DoubleSha256(txBytes)
}
