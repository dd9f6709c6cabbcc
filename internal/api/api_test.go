// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blinklabs-io/bspvd/internal/config"
	"github.com/blinklabs-io/bspvd/internal/logging"
	"github.com/blinklabs-io/bspvd/internal/state"
)

const (
	genesisHeaderHex = "0100000000000000000000000000000000000000000000000000000000000000000000003ba3edfd7a7b12b27ac72c3e67768f617fc81bc3888a51323a9fb8aa4b1e5e4a29ab5f49ffff001d1dac2b7c"
	genesisHashHex   = "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"
	genesisTxHex     = "01000000010000000000000000000000000000000000000000000000000000000000000000ffffffff4d04ffff001d0104455468652054696d65732030332f4a616e2f32303039204368616e63656c6c6f72206f6e206272696e6b206f66207365636f6e64206261696c6f757420666f722062616e6b73ffffffff0100f2052a01000000434104678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5fac00000000"
)

func setupTest(t *testing.T) {
	t.Helper()
	config.GetConfig().State.Directory = t.TempDir()
	logging.Setup()
	if err := state.GetState().Load(); err != nil {
		t.Fatalf("failed to load state: %s", err)
	}
}

func doJsonRequest(
	t *testing.T,
	handler http.HandlerFunc,
	method string,
	body any,
) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %s", err)
		}
	}
	req := httptest.NewRequest(method, "/", &reqBody)
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestApiVerifyFlow(t *testing.T) {
	setupTest(t)

	// Register the genesis header hash
	w := doJsonRequest(
		t,
		handleAddHeader,
		http.MethodPost,
		addHeaderRequest{
			Height: 0,
			Hash:   genesisHashHex,
		},
	)
	if w.Code != http.StatusCreated {
		t.Fatalf(
			"did not get expected status: got %d, wanted %d: %s",
			w.Code,
			http.StatusCreated,
			w.Body.String(),
		)
	}

	// The cursor advances to the registered header
	w = doJsonRequest(t, handleTip, http.MethodGet, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("did not get expected status: got %d", w.Code)
	}
	var tip tipResponse
	if err := json.NewDecoder(w.Body).Decode(&tip); err != nil {
		t.Fatalf("failed to decode response: %s", err)
	}
	if tip.Height != 0 || tip.Hash != genesisHashHex {
		t.Fatalf("did not get expected tip: got %d, %s", tip.Height, tip.Hash)
	}

	// Verify the genesis coinbase TX with a zero-depth proof
	w = doJsonRequest(
		t,
		handleVerify,
		http.MethodPost,
		verifyRequest{
			Header: genesisHeaderHex,
			Height: 0,
			Tx:     genesisTxHex,
			Proof: merkleProofEnvelope{
				TxIndex:   0,
				Hashes:    nil,
				TreeDepth: 0,
			},
		},
	)
	if w.Code != http.StatusOK {
		t.Fatalf(
			"did not get expected status: got %d: %s",
			w.Code,
			w.Body.String(),
		)
	}
	var resp verifyResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %s", err)
	}
	if !resp.Mined {
		t.Fatal("did not get expected mined verdict")
	}
	if resp.BlockHash != genesisHashHex {
		t.Fatalf(
			"did not get expected block hash: got %s, wanted %s",
			resp.BlockHash,
			genesisHashHex,
		)
	}

	// Unknown height is a negative verdict, not an error
	w = doJsonRequest(
		t,
		handleVerify,
		http.MethodPost,
		verifyRequest{
			Header: genesisHeaderHex,
			Height: 12345,
			Tx:     genesisTxHex,
		},
	)
	if w.Code != http.StatusOK {
		t.Fatalf("did not get expected status: got %d", w.Code)
	}
	resp = verifyResponse{}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %s", err)
	}
	if resp.Mined {
		t.Fatal("did not get expected negative verdict for unknown height")
	}

	// Malformed inputs are rejected before verification
	w = doJsonRequest(
		t,
		handleVerify,
		http.MethodPost,
		verifyRequest{
			Header: genesisHeaderHex[:20],
			Height: 0,
			Tx:     genesisTxHex,
		},
	)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("did not get expected status: got %d", w.Code)
	}
	w = doJsonRequest(
		t,
		handleVerify,
		http.MethodPost,
		verifyRequest{
			Header: genesisHeaderHex,
			Height: 0,
			Tx:     "0100",
		},
	)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("did not get expected status: got %d", w.Code)
	}
	// Proof declaring a deeper tree than its hash count
	w = doJsonRequest(
		t,
		handleVerify,
		http.MethodPost,
		verifyRequest{
			Header: genesisHeaderHex,
			Height: 0,
			Tx:     genesisTxHex,
			Proof: merkleProofEnvelope{
				TreeDepth: 2,
			},
		},
	)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("did not get expected status: got %d", w.Code)
	}
}

func TestApiAddHeaderValidation(t *testing.T) {
	logging.Setup()
	// Short hash
	w := doJsonRequest(
		t,
		handleAddHeader,
		http.MethodPost,
		addHeaderRequest{
			Height: 0,
			Hash:   "0011",
		},
	)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("did not get expected status: got %d", w.Code)
	}
	// Non-hex hash
	w = doJsonRequest(
		t,
		handleAddHeader,
		http.MethodPost,
		addHeaderRequest{
			Height: 0,
			Hash:   "zz",
		},
	)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("did not get expected status: got %d", w.Code)
	}
}
