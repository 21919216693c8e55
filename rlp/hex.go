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

import "github.com/lishuailibertine/web3go/internal/hexutil"

// EncodeToHex encodes value as RLP and returns it as a 0x-prefixed hex
// string, for callers (such as cmd/rlpdump) that move RLP around as text.
func EncodeToHex(value any) (string, error) {
	b, err := Encode(value)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(b), nil
}

// DecodeHex decodes a 0x-prefixed (or bare) hex string as RLP.
func DecodeHex(s string) (*Value, error) {
	b, err := hexutil.DecodeFlexible(s)
	if err != nil {
		return nil, err
	}
	return Decode(b)
}
