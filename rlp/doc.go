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

// Package rlp implements the Recursive Length Prefix encoding used by the
// Ethereum protocol, in terms of a recursive value tree instead of
// reflection over Go struct tags.
//
// Encoding rules
//
// A byte, strictly below 0x80, encodes as itself.
//
// A byte string 0 <= len < 56 encodes as a single prefix byte 0x80+len
// followed by the string.
//
// A byte string of length >= 56 encodes as a prefix byte 0xB7+lengthSize
// followed by the length (big endian, no leading zero bytes), followed by
// the string.
//
// A list whose encoded payload is shorter than 56 bytes encodes as a
// prefix byte 0xC0+len followed by the concatenated encodings of its
// items.
//
// A list whose encoded payload is 56 bytes or longer encodes as a prefix
// byte 0xF7+lengthSize followed by the payload length, followed by the
// concatenated encodings.
//
// Unlike go-ethereum's struct-tag-driven rlp package, the decoder here
// does not reject non-canonical inputs (a long-form header used where the
// short form would have fit): see the "non-canonical RLP" note in
// DESIGN.md for why that tolerance is load-bearing here.
package rlp
