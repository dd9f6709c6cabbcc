// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package bitcoin

import (
	"fmt"
)

// MaxMerkleDepth bounds the proof walk; a depth-12 tree covers 4096
// transactions per block
const MaxMerkleDepth = 12

// MerkleProof is an inclusion proof for a single transaction. TxIndex
// is the 0-based position of the leaf in the block and determines the
// left/right ordering at each tree level. Hashes are sibling hashes in
// wire order, leaf level first.
type MerkleProof struct {
	TxIndex   uint32
	Hashes    [][32]byte
	TreeDepth int
}

// VerifyMerkleProof reports whether wireTxid is a leaf of the Merkle
// tree committed to by wireRoot, per the supplied proof. Both hashes
// are in wire order. A proof declaring a deeper tree than it has
// sibling hashes for fails with ErrProofTooShort before any hashing;
// every other malformed proof is a false verdict.
func VerifyMerkleProof(
	wireTxid [32]byte,
	wireRoot [32]byte,
	proof MerkleProof,
) (bool, error) {
	if proof.TreeDepth < 0 || proof.TreeDepth > len(proof.Hashes) {
		return false, fmt.Errorf(
			"%w: depth %d with %d sibling hashes",
			ErrProofTooShort,
			proof.TreeDepth,
			len(proof.Hashes),
		)
	}
	// A single-transaction block has no proof steps: the transaction
	// hash is the root itself. Any supplied sibling hashes are
	// unreachable by a zero-step path and are ignored.
	if proof.TreeDepth == 0 {
		return wireTxid == wireRoot, nil
	}
	// The leaf position as a bit path, one bit longer than the depth.
	// Bit i selects the child ordering at tree level i.
	path := uint64(1)<<proof.TreeDepth + uint64(proof.TxIndex)
	currentHash := wireTxid
	verified := false
	for i := 0; i < MaxMerkleDepth; i++ {
		if verified || i >= proof.TreeDepth {
			continue
		}
		sibling := proof.Hashes[i]
		var node [64]byte
		if path&(1<<i) == 0 {
			// Leaf path goes left, sibling fills the right side
			copy(node[:32], currentHash[:])
			copy(node[32:], sibling[:])
		} else {
			copy(node[:32], sibling[:])
			copy(node[32:], currentHash[:])
		}
		currentHash = DoubleSha256(node[:])
		if i+1 == len(proof.Hashes) && currentHash == wireRoot {
			verified = true
		}
	}
	return verified, nil
}
