// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package rlp

import "fmt"

var (
	// ErrNegativeInt is returned when Encode is asked to encode a negative
	// big.Int; RLP only represents non-negative integers.
	ErrNegativeInt = fmt.Errorf("rlp: cannot encode negative integer")
	// ErrLengthOverflow is returned when a string or list length would not
	// fit below the 2^256 ceiling imposed by the length-of-length encoding.
	ErrLengthOverflow = fmt.Errorf("rlp: length exceeds 2^256")
	// ErrUnsupportedKind is returned by Encode for Go values it has no
	// RLP representation for.
	ErrUnsupportedKind = fmt.Errorf("rlp: unsupported value kind")
	// ErrUnexpectedEOF is returned when a header declares more payload
	// than remains in the input.
	ErrUnexpectedEOF = fmt.Errorf("rlp: unexpected end of input")
	// ErrCanonSize is reserved for parity with go-ethereum's rlp package,
	// which rejects non-canonical size encodings. This decoder is
	// deliberately tolerant of them (see DESIGN.md), so the error is
	// never returned; it is kept so callers type-switching against the
	// go-ethereum rlp package's error set still compile against this one.
	ErrCanonSize = fmt.Errorf("rlp: non-canonical size information")
	// ErrElemTooLarge is returned when a string or list header claims a
	// payload larger than the bytes actually available.
	ErrElemTooLarge = fmt.Errorf("rlp: element is larger than containing list")
	// ErrTrailingData is declared for parity with go-ethereum's rlp
	// package but is never returned: Decode wraps several concatenated
	// top-level items into a synthetic list instead of rejecting them.
	ErrTrailingData = fmt.Errorf("rlp: trailing data after RLP value")
)

// EncodingError wraps a failure to encode a Go value to RLP.
type EncodingError struct {
	Value any
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("rlp: encode %T: %v", e.Value, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// DecodingError wraps a failure to decode an RLP byte stream, annotated
// with the byte offset at which the failure was detected.
type DecodingError struct {
	Offset int
	Err    error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("rlp: decode at byte %d: %v", e.Offset, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }
