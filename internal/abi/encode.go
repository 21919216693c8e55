// Copyright 2018 The go-ethereum Authors
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

package abi

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Word is a 32-byte ABI-encoded word, the unit every EIP-712 field
// contributes to encodeData (spec §4.2).
type Word [32]byte

var (
	// ErrOutOfRange is returned when an integer doesn't fit the declared width.
	ErrOutOfRange = errors.New("abi: value out of range for declared width")
	// ErrBadWidth is returned for an unsupported bit or byte width.
	ErrBadWidth = errors.New("abi: unsupported width")
	// ErrWrongSize is returned when fixed-size bytes don't match the declared length.
	ErrWrongSize = errors.New("abi: byte length does not match declared size")
)

// EncodeBool ABI-encodes a boolean as a 32-byte word.
func EncodeBool(v bool) Word {
	var w Word
	if v {
		w[31] = 1
	}
	return w
}

// EncodeAddress left-pads a 20-byte address into a 32-byte word.
func EncodeAddress(a Address) Word {
	var w Word
	copy(w[12:], a[:])
	return w
}

// EncodeBytesFixed right-pads a fixed-size byte value (bytes1..bytes32) into
// a 32-byte word. The spec does not require n to be validated as 1..32 at
// this layer (§4.2's "numeric type parsing" note applies the same
// pass-through philosophy to bytesN) but callers in this module always
// supply a validated n.
func EncodeBytesFixed(n int, b []byte) (Word, error) {
	var w Word
	if n < 0 || n > 32 {
		return w, ErrBadWidth
	}
	if len(b) != n {
		return w, ErrWrongSize
	}
	copy(w[:], b)
	return w, nil
}

// EncodeUint ABI-encodes an unsigned integer of the given bit width as a
// 32-byte big-endian word. bits need not be a multiple of 8 or within
// 1..256 — spec §4.2 explicitly passes invalid widths through to this
// layer rather than validating them earlier.
func EncodeUint(bits int, v *big.Int) (Word, error) {
	var w Word
	if bits <= 0 {
		return w, fmt.Errorf("%w: uint%d", ErrBadWidth, bits)
	}
	if v.Sign() < 0 {
		return w, fmt.Errorf("%w: negative value for unsigned type", ErrOutOfRange)
	}
	if v.BitLen() > bits {
		return w, fmt.Errorf("%w: uint%d", ErrOutOfRange, bits)
	}
	u, overflow := uint256.FromBig(v)
	if overflow {
		return w, fmt.Errorf("%w: uint%d", ErrOutOfRange, bits)
	}
	return u.Bytes32(), nil
}

// EncodeInt ABI-encodes a signed integer of the given bit width as a
// 32-byte big-endian two's-complement word.
func EncodeInt(bits int, v *big.Int) (Word, error) {
	var w Word
	if bits <= 0 {
		return w, fmt.Errorf("%w: int%d", ErrBadWidth, bits)
	}
	// Signed range check: -2^(bits-1) <= v < 2^(bits-1).
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	minVal := new(big.Int).Neg(limit)
	if v.Cmp(minVal) < 0 || v.Cmp(limit) >= 0 {
		return w, fmt.Errorf("%w: int%d", ErrOutOfRange, bits)
	}
	if v.Sign() >= 0 {
		u, overflow := uint256.FromBig(v)
		if overflow {
			return w, fmt.Errorf("%w: int%d", ErrOutOfRange, bits)
		}
		return u.Bytes32(), nil
	}
	// Two's complement over the full 256-bit word: value + 2^256.
	mod := new(big.Int).Lsh(big.NewInt(1), 256)
	twos := new(big.Int).Add(v, mod)
	u, overflow := uint256.FromBig(twos)
	if overflow {
		return w, fmt.Errorf("%w: int%d", ErrOutOfRange, bits)
	}
	return u.Bytes32(), nil
}
