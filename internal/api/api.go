// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package api

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/blinklabs-io/bspvd/bitcoin"
	"github.com/blinklabs-io/bspvd/internal/config"
	"github.com/blinklabs-io/bspvd/internal/logging"
	"github.com/blinklabs-io/bspvd/internal/state"
	"github.com/blinklabs-io/bspvd/internal/verifier"
)

// The production verifier reads header hashes from the badger-backed
// state store
var globalVerifier = verifier.New(state.GetState())

func Start() error {
	cfg := config.GetConfig()
	listenAddr := fmt.Sprintf(
		"%s:%d",
		cfg.Api.ListenAddress,
		cfg.Api.ListenPort,
	)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/headers", handleAddHeader)
	mux.HandleFunc("POST /api/v1/verify", handleVerify)
	mux.HandleFunc("GET /api/v1/tip", handleTip)
	go func() {
		if err := http.ListenAndServe(listenAddr, mux); err != nil {
			logging.GetLogger().Fatalf("failed to start API listener: %s", err)
		}
	}()
	return nil
}

type addHeaderRequest struct {
	// Chain height and display order header hash
	Height uint64 `json:"height"`
	Hash   string `json:"hash"`
}

type merkleProofEnvelope struct {
	TxIndex   uint32   `json:"txIndex"`
	Hashes    []string `json:"hashes"`
	TreeDepth int      `json:"treeDepth"`
}

type verifyRequest struct {
	// Header and tx are hex-encoded serialized bytes; proof hashes are
	// hex-encoded wire order hashes
	Header string              `json:"header"`
	Height uint64              `json:"height"`
	Tx     string              `json:"tx"`
	Proof  merkleProofEnvelope `json:"proof"`
}

type verifyResponse struct {
	Mined     bool   `json:"mined"`
	TxId      string `json:"txId"`
	BlockHash string `json:"blockHash"`
}

type tipResponse struct {
	Height uint64 `json:"height"`
	Hash   string `json:"hash"`
}

func handleAddHeader(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLogger()
	var req addHeaderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	hash, err := hex.DecodeString(req.Hash)
	if err != nil || len(hash) != 32 {
		writeErrorResponse(w, http.StatusBadRequest, "hash must be 32 hex-encoded bytes")
		return
	}
	if err := state.GetState().AddHeaderHash(req.Height, hash); err != nil {
		logger.Errorf("failed to store header hash: %s", err)
		writeErrorResponse(w, http.StatusInternalServerError, "failed to store header hash")
		return
	}
	// Advance the cursor if this is the highest height seen
	tipHeight, _, err := state.GetState().GetCursor()
	if err != nil {
		logger.Errorf("failed to read cursor: %s", err)
		writeErrorResponse(w, http.StatusInternalServerError, "failed to read cursor")
		return
	}
	if req.Height >= tipHeight {
		if err := state.GetState().UpdateCursor(req.Height, req.Hash); err != nil {
			logger.Errorf("failed to update cursor: %s", err)
			writeErrorResponse(w, http.StatusInternalServerError, "failed to update cursor")
			return
		}
	}
	logger.Infof("registered header hash %s at height %d", req.Hash, req.Height)
	writeJsonResponse(w, http.StatusCreated, map[string]any{})
}

func handleVerify(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLogger()
	cfg := config.GetConfig()
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	headerBytes, err := hex.DecodeString(req.Header)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "header is not valid hex")
		return
	}
	txBytes, err := hex.DecodeString(req.Tx)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "tx is not valid hex")
		return
	}
	proof := bitcoin.MerkleProof{
		TxIndex:   req.Proof.TxIndex,
		TreeDepth: req.Proof.TreeDepth,
	}
	for _, hashHex := range req.Proof.Hashes {
		hash, err := hex.DecodeString(hashHex)
		if err != nil || len(hash) != 32 {
			writeErrorResponse(w, http.StatusBadRequest, "proof hashes must be 32 hex-encoded bytes")
			return
		}
		proof.Hashes = append(proof.Hashes, [32]byte(hash))
	}
	// Structural check on the claimed transaction before any
	// verification work
	if _, err := bitcoin.ParseTransaction(txBytes); err != nil {
		writeErrorResponse(
			w,
			http.StatusBadRequest,
			fmt.Sprintf("malformed transaction: %s", err),
		)
		return
	}
	header, err := bitcoin.ParseBlockHeader(headerBytes)
	if err != nil {
		writeErrorResponse(
			w,
			http.StatusBadRequest,
			fmt.Sprintf("malformed header: %s", err),
		)
		return
	}
	mined, err := globalVerifier.WasTransactionMined(
		headerBytes,
		req.Height,
		txBytes,
		proof,
	)
	if err != nil {
		if errors.Is(err, bitcoin.ErrProofTooShort) {
			writeErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Errorf("failed to verify transaction: %s", err)
		writeErrorResponse(w, http.StatusInternalServerError, "verification failed")
		return
	}
	txId := bitcoin.TransactionId(txBytes)
	blockHash := header.Hash()
	if cfg.Logging.QueryLog {
		logger.Infof(
			"verify: height: %d, txid: %x, mined: %v",
			req.Height,
			txId,
			mined,
		)
	}
	writeJsonResponse(
		w,
		http.StatusOK,
		verifyResponse{
			Mined:     mined,
			TxId:      hex.EncodeToString(txId[:]),
			BlockHash: hex.EncodeToString(blockHash[:]),
		},
	)
}

func handleTip(w http.ResponseWriter, r *http.Request) {
	height, hash, err := state.GetState().GetCursor()
	if err != nil {
		logging.GetLogger().Errorf("failed to read cursor: %s", err)
		writeErrorResponse(w, http.StatusInternalServerError, "failed to read cursor")
		return
	}
	writeJsonResponse(
		w,
		http.StatusOK,
		tipResponse{
			Height: height,
			Hash:   hash,
		},
	)
}

func writeJsonResponse(w http.ResponseWriter, statusCode int, val any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(val); err != nil {
		logging.GetLogger().Errorf("failed to write response: %s", err)
	}
}

func writeErrorResponse(w http.ResponseWriter, statusCode int, msg string) {
	writeJsonResponse(
		w,
		statusCode,
		map[string]string{
			"error": msg,
		},
	)
}
