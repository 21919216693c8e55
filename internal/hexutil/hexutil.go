// Copyright 2015 The go-ethereum Authors
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

// Package hexutil implements the "0x"-prefixed hex encoding used pervasively
// on Ethereum's wire formats. The full go-ethereum common/hexutil package
// wasn't present in the retrieved source tree; this rebuilds the slice of
// its API that apitypes.go and the rest of this module actually call
// (Encode/Decode/MustDecode/Has0xPrefix), in the same style.
package hexutil

import (
	"encoding/hex"
	"errors"
	"strings"
)

// ErrEmptyString is returned when decoding an empty hex string.
var ErrEmptyString = errors.New("hexutil: empty hex string")

// ErrMissingPrefix is returned when a hex string is missing the "0x" prefix.
var ErrMissingPrefix = errors.New("hexutil: hex string without 0x prefix")

// ErrOddLength is returned when a hex string has an odd number of nibbles.
var ErrOddLength = errors.New("hexutil: hex string of odd length")

// ErrSyntax is returned for invalid hex characters.
var ErrSyntax = errors.New("hexutil: invalid hex string")

// Has0xPrefix reports whether str begins with "0x" or "0X".
func Has0xPrefix(str string) bool {
	return len(str) >= 2 && str[0] == '0' && (str[1] == 'x' || str[1] == 'X')
}

// Decode decodes a hex string with a mandatory 0x prefix.
func Decode(input string) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrEmptyString
	}
	if !Has0xPrefix(input) {
		return nil, ErrMissingPrefix
	}
	b, err := hex.DecodeString(input[2:])
	if err != nil {
		err = mapError(err)
	}
	return b, err
}

// MustDecode decodes a hex string with 0x prefix. It panics for invalid input.
func MustDecode(input string) []byte {
	dec, err := Decode(input)
	if err != nil {
		panic(err)
	}
	return dec
}

// DecodeFlexible decodes a hex string whether or not it carries a 0x/0X
// prefix, and rejects odd-length input. This is the lenient variant the RLP
// string-parsing rule (spec §4.1: "interpreted first as hex ... when
// parseable as even-length hex") needs, as opposed to Decode's strict
// wire-format contract.
func DecodeFlexible(input string) ([]byte, error) {
	s := strings.TrimPrefix(strings.TrimPrefix(input, "0x"), "0X")
	if len(s)%2 != 0 {
		return nil, ErrOddLength
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, mapError(err)
	}
	return b, nil
}

// Encode encodes b as a 0x-prefixed hex string.
func Encode(b []byte) string {
	enc := make([]byte, len(b)*2+2)
	copy(enc, "0x")
	hex.Encode(enc[2:], b)
	return string(enc)
}

func mapError(err error) error {
	if _, ok := err.(hex.InvalidByteError); ok {
		return ErrSyntax
	}
	if errors.Is(err, hex.ErrLength) {
		return ErrOddLength
	}
	return err
}
