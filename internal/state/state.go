// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package state

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/blinklabs-io/bspvd/internal/config"
	"github.com/blinklabs-io/bspvd/internal/logging"
	"github.com/dgraph-io/badger/v4"
)

const (
	chainCursorKey      = "chain_cursor"
	headerHashKeyPrefix = "header_hash_"
)

// State is the persistent ledger of canonical block header hashes
// keyed by chain height. It backs the header oracle used during
// verification and is append-only: heights are registered once and
// never removed.
type State struct {
	db *badger.DB
}

var globalState = &State{}

func (s *State) Load() error {
	cfg := config.GetConfig()
	badgerOpts := badger.DefaultOptions(cfg.State.Directory).
		WithLogger(NewBadgerLogger()).
		// The default INFO logging is a bit verbose
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(badgerOpts)
	// TODO: setup automatic GC for Badger
	if err != nil {
		return err
	}
	s.db = db
	return nil
}

// AddHeaderHash records the canonical (display order) header hash for
// a chain height
func (s *State) AddHeaderHash(height uint64, hash []byte) error {
	if len(hash) != 32 {
		return fmt.Errorf("header hash must be 32 bytes, got %d", len(hash))
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		key := fmt.Sprintf("%s%d", headerHashKeyPrefix, height)
		return txn.Set([]byte(key), []byte(hex.EncodeToString(hash)))
	})
	return err
}

// LookupHeaderHash returns the canonical header hash recorded at the
// given height, or nil if the height is unknown
func (s *State) LookupHeaderHash(height uint64) ([]byte, error) {
	var ret []byte
	err := s.db.View(func(txn *badger.Txn) error {
		key := fmt.Sprintf("%s%d", headerHashKeyPrefix, height)
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		err = item.Value(func(v []byte) error {
			tmpHash, err := hex.DecodeString(string(v))
			if err != nil {
				return err
			}
			ret = tmpHash
			return nil
		})
		if err != nil {
			return err
		}
		return nil
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *State) UpdateCursor(height uint64, blockHash string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		val := fmt.Sprintf("%d,%s", height, blockHash)
		if err := txn.Set([]byte(chainCursorKey), []byte(val)); err != nil {
			return err
		}
		return nil
	})
	return err
}

func (s *State) GetCursor() (uint64, string, error) {
	var height uint64
	var blockHash string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(chainCursorKey))
		if err != nil {
			return err
		}
		err = item.Value(func(v []byte) error {
			var err error
			cursorParts := strings.Split(string(v), ",")
			height, err = strconv.ParseUint(cursorParts[0], 10, 64)
			if err != nil {
				return err
			}
			blockHash = cursorParts[1]
			return nil
		})
		if err != nil {
			return err
		}
		return nil
	})
	if err == badger.ErrKeyNotFound {
		return 0, "", nil
	}
	return height, blockHash, err
}

func GetState() *State {
	return globalState
}

// BadgerLogger is a wrapper type to give our logger the expected interface
type BadgerLogger struct {
	*logging.Logger
}

func NewBadgerLogger() *BadgerLogger {
	return &BadgerLogger{
		Logger: logging.GetLogger(),
	}
}

func (b *BadgerLogger) Warningf(msg string, args ...any) {
	b.Logger.Warnf(msg, args...)
}
