// Copyright 2026 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package bitcoin

import (
	"errors"
)

// Parse and verification failures are fail-fast: the first error
// encountered aborts the call and no partial result is returned. A
// negative verification verdict is a plain false, never an error.
var (
	// ErrOutOfBounds is returned when a read would consume bytes past
	// the end of the buffer
	ErrOutOfBounds = errors.New("read out of bounds")
	// ErrTooManyInputs is returned when a transaction declares more
	// than MaxTxInputs inputs
	ErrTooManyInputs = errors.New("too many transaction inputs")
	// ErrTooManyOutputs is returned when a transaction declares more
	// than MaxTxOutputs outputs
	ErrTooManyOutputs = errors.New("too many transaction outputs")
	// ErrVarSliceTooLong is returned when a length-prefixed field
	// declares a length beyond its maximum capacity
	ErrVarSliceTooLong = errors.New("var slice exceeds maximum length")
	// ErrBadHeader is returned when a block header buffer is not
	// exactly HeaderLen bytes
	ErrBadHeader = errors.New("bad block header length")
	// ErrProofTooShort is returned when a Merkle proof declares a tree
	// depth larger than its sibling hash count
	ErrProofTooShort = errors.New("merkle proof shorter than tree depth")
)
