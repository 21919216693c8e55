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

// Package abi implements the sliver of Ethereum's ABI single-type encoding
// that EIP-712 field encoding depends on, plus address parsing. The spec
// treats both as external collaborators ("abiEncodeSingle", "parseAddress")
// supplied by the caller; this module supplies concrete, self-contained
// implementations grounded on go-ethereum's common/types.go Address shape
// and signer/core/apitypes.go's EncodePrimitiveValue.
package abi

import (
	"encoding/hex"
	"errors"
	"strings"
)

// AddressLength is the length in bytes of an Ethereum address.
const AddressLength = 20

// Address is a 20-byte Ethereum account address.
type Address [AddressLength]byte

// ErrInvalidAddress is returned when a string is not a well-formed
// 20-byte hex address.
var ErrInvalidAddress = errors.New("abi: invalid address")

// ParseAddress validates and decodes an Ethereum address string. The 0x
// prefix is optional; case is not checked against EIP-55 (the spec leaves
// checksum validation to the address-parsing collaborator's own contract,
// and go-ethereum's HexToAddress is similarly lenient).
func ParseAddress(s string) (Address, error) {
	var a Address
	h := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(h) != AddressLength*2 {
		return a, ErrInvalidAddress
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return a, ErrInvalidAddress
	}
	copy(a[:], b)
	return a, nil
}

// IsHexAddress reports whether s parses as a valid address string.
func IsHexAddress(s string) bool {
	_, err := ParseAddress(s)
	return err == nil
}

// Bytes returns the address as a byte slice.
func (a Address) Bytes() []byte { return a[:] }

// Hex returns the 0x-prefixed lowercase hex form of the address.
func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}
