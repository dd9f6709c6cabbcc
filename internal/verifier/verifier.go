// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package verifier

import (
	"bytes"

	"github.com/blinklabs-io/bspvd/bitcoin"
)

// HeaderOracle looks up the canonical (display order) header hash
// recorded at a chain height. A nil hash with a nil error means the
// height is unknown. The oracle is an append-only historical ledger;
// the verifier only ever reads it.
type HeaderOracle interface {
	LookupHeaderHash(height uint64) ([]byte, error)
}

// Verifier decides whether transactions were mined in known blocks.
// Every verdict is a pure function of the inputs and the oracle's
// answer at the given height, so a single Verifier may be used
// concurrently.
type Verifier struct {
	oracle HeaderOracle
}

func New(oracle HeaderOracle) *Verifier {
	return &Verifier{
		oracle: oracle,
	}
}

// VerifyBlockHeader reports whether headerBytes hashes to the
// canonical header hash recorded at the given height. An unknown
// height or a hash mismatch is a false verdict, not an error; errors
// are reserved for oracle failures.
func (v *Verifier) VerifyBlockHeader(
	headerBytes []byte,
	height uint64,
) (bool, error) {
	metricHeaderChecks.Inc()
	expectedHash, err := v.oracle.LookupHeaderHash(height)
	if err != nil {
		return false, err
	}
	if expectedHash == nil {
		return false, nil
	}
	headerHash := bitcoin.ReverseBytes32(bitcoin.DoubleSha256(headerBytes))
	return bytes.Equal(expectedHash, headerHash[:]), nil
}

// WasTransactionMined reports whether the transaction serialized in
// txBytes is included in the block whose header is headerBytes at the
// given chain height. A header that doesn't match the oracle's record
// is a false verdict; structural failures (malformed header, proof
// shorter than its declared depth) and oracle failures are errors,
// meaning no verdict could be determined.
func (v *Verifier) WasTransactionMined(
	headerBytes []byte,
	height uint64,
	txBytes []byte,
	proof bitcoin.MerkleProof,
) (bool, error) {
	headerOk, err := v.VerifyBlockHeader(headerBytes, height)
	if err != nil {
		metricVerifications.WithLabelValues(outcomeError).Inc()
		return false, err
	}
	if !headerOk {
		metricVerifications.WithLabelValues(outcomeNotMined).Inc()
		return false, nil
	}
	header, err := bitcoin.ParseBlockHeader(headerBytes)
	if err != nil {
		metricVerifications.WithLabelValues(outcomeError).Inc()
		return false, err
	}
	mined, err := bitcoin.VerifyMerkleProof(
		bitcoin.TransactionIdLE(txBytes),
		bitcoin.ReverseBytes32(header.MerkleRoot),
		proof,
	)
	switch {
	case err != nil:
		metricVerifications.WithLabelValues(outcomeError).Inc()
	case mined:
		metricVerifications.WithLabelValues(outcomeMined).Inc()
	default:
		metricVerifications.WithLabelValues(outcomeNotMined).Inc()
	}
	return mined, err
}
