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

// Package crypto exposes the single hash primitive the rest of this
// module depends on: Keccak-256. This is the original Keccak
// (0x01 padding), not NIST SHA3-256 (0x06 padding) — golang.org/x/crypto/sha3
// calls this variant "LegacyKeccak" for exactly that reason.
package crypto

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// HashLength is the length in bytes of a Keccak-256 digest.
const HashLength = 32

// KeccakState wraps sha3's hash.Hash with the Read method, which squeezes
// output from the sponge directly. Unlike Sum it does not copy the
// internal state, so it is cheaper, but it advances that state: write all
// input before the first Read.
type KeccakState interface {
	hash.Hash
	Read([]byte) (int, error)
}

// NewKeccakState returns a new Keccak-256 sponge.
func NewKeccakState() KeccakState {
	return sha3.NewLegacyKeccak256().(KeccakState)
}

// Keccak256 computes the Keccak-256 digest of the concatenation of data.
func Keccak256(data ...[]byte) []byte {
	b := make([]byte, HashLength)
	d := NewKeccakState()
	for _, item := range data {
		d.Write(item)
	}
	d.Read(b)
	return b
}

// Keccak256Array computes the Keccak-256 digest and returns it as a
// fixed-size array, the "byte array view" surface op from the spec's
// Hash Facade.
func Keccak256Array(data ...[]byte) [HashLength]byte {
	var h [HashLength]byte
	d := NewKeccakState()
	for _, item := range data {
		d.Write(item)
	}
	d.Read(h[:])
	return h
}

// Keccak256String hashes the UTF-8 bytes of s directly, with no length
// framing — the third surface op from the spec's Hash Facade.
func Keccak256String(s string) []byte {
	return Keccak256([]byte(s))
}
