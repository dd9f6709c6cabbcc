// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package bitcoin_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"reflect"
	"testing"

	"github.com/blinklabs-io/bspvd/bitcoin"
)

// Bitcoin mainnet genesis block header
const genesisHeaderHex = "0100000000000000000000000000000000000000000000000000000000000000000000003ba3edfd7a7b12b27ac72c3e67768f617fc81bc3888a51323a9fb8aa4b1e5e4a29ab5f49ffff001d1dac2b7c"

const genesisHashHex = "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"

func TestParseBlockHeaderGenesis(t *testing.T) {
	header, err := bitcoin.ParseBlockHeader(decodeHex(genesisHeaderHex))
	if err != nil {
		t.Fatalf("unexpected error decoding header: %s", err)
	}
	expectedHeader := &bitcoin.BlockHeader{
		Version:    1,
		ParentHash: [32]byte{},
		MerkleRoot: [32]byte(
			decodeHex(
				"4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b",
			),
		),
		Timestamp: 1231006505,
		Bits:      0x1d00ffff,
		Nonce:     2083236893,
	}
	if !reflect.DeepEqual(header, expectedHeader) {
		t.Fatalf(
			"did not get expected header: got %#v, wanted %#v",
			header,
			expectedHeader,
		)
	}
	headerHash := header.Hash()
	if hex.EncodeToString(headerHash[:]) != genesisHashHex {
		t.Fatalf(
			"did not get expected block hash: got %x, wanted %s",
			headerHash,
			genesisHashHex,
		)
	}
}

func TestParseBlockHeaderBadLength(t *testing.T) {
	for _, size := range []int{0, 1, 79, 81, 160} {
		if _, err := bitcoin.ParseBlockHeader(make([]byte, size)); !errors.Is(err, bitcoin.ErrBadHeader) {
			t.Errorf(
				"did not get expected error for %d byte header: got %v",
				size,
				err,
			)
		}
	}
}

func TestBlockHeaderEncodeRoundTrip(t *testing.T) {
	testDefs := []string{
		genesisHeaderHex,
		// Block 100000 from Bitcoin mainnet
		"0100000050120119172a610421a6c3011dd330d9df07b63616c2cc1f1cd00200000000006657a9252aacd5c0b2940996ecff952228c3067cc38d4885efb5a4ac4247e9f337221b4d4c86041b0f2b5710",
	}
	for _, testDef := range testDefs {
		headerBytes := decodeHex(testDef)
		header, err := bitcoin.ParseBlockHeader(headerBytes)
		if err != nil {
			t.Fatalf("unexpected error decoding header: %s", err)
		}
		if !bytes.Equal(header.Encode(), headerBytes) {
			t.Fatalf(
				"did not get byte-identical encoding: got %x, wanted %x",
				header.Encode(),
				headerBytes,
			)
		}
	}
}

func TestBlockHeaderHashChangesWithNonce(t *testing.T) {
	header, err := bitcoin.ParseBlockHeader(decodeHex(genesisHeaderHex))
	if err != nil {
		t.Fatalf("unexpected error decoding header: %s", err)
	}
	origHash := header.Hash()
	header.Nonce++
	if header.Hash() == origHash {
		t.Fatal("block hash did not change with nonce")
	}
}
